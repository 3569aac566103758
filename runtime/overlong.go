package utf

// UTF-8 overlong encoding index functions.
//
// There are 0x04210880 overlong (code-point, length) pairs, giving a
// maximum encodable overlong index of 0x0421087F. Index 0 corresponds to
// the Java style 2-byte NULL encoding; the remaining indices are
// potentially available for other private signalling. Other than the Java
// NULL no standards exist for overlong forms, and strict decoders treat
// them all as decode failures.

// OverlongIndexCount is the size of the dense overlong index space.
const OverlongIndexCount uint32 = 0x04210880

// IsOverlongUTF8 reports whether encoding r in the given number of bytes
// (2..6) would be an overlong form.
func IsOverlongUTF8(r Rune, bytes uint32) bool {
	if bytes-2 >= 5 {
		return false
	}
	return uint32(r) < uint32(1)<<BitCountUTF8(bytes-1)
}

// OverlongToIndexUTF8 maps an overlong (code-point, length) pair to its
// dense index. It returns false when the pair is not a representable
// overlong form.
func OverlongToIndexUTF8(r Rune, bytes uint32) (index uint32, ok bool) {
	if r < 0 {
		return 0, false
	}
	switch bytes {
	case 2:
		if r < 0x80 {
			return uint32(r), true
		}
	case 3:
		if r < 0x800 {
			return uint32(r) + 0x80, true
		}
	case 4:
		if r < 0x10000 {
			return uint32(r) + 0x880, true
		}
	case 5:
		if r < 0x200000 {
			return uint32(r) + 0x10880, true
		}
	case 6:
		if r < 0x4000000 {
			return uint32(r) + 0x210880, true
		}
	}
	return 0, false
}

// IndexToOverlongUTF8 maps a dense index back to its overlong
// (code-point, length) pair. It returns false for indices at or above
// OverlongIndexCount.
func IndexToOverlongUTF8(index uint32) (r Rune, bytes uint32, ok bool) {
	switch {
	case index < 0x80:
		return Rune(index), 2, true
	case index < 0x880:
		return Rune(index - 0x80), 3, true
	case index < 0x10880:
		return Rune(index - 0x880), 4, true
	case index < 0x210880:
		return Rune(index - 0x10880), 5, true
	case index < OverlongIndexCount:
		return Rune(index - 0x210880), 6, true
	}
	return 0, 0, false
}
