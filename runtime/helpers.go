package utf

// UTF-8 byte identification helpers.

// IsLeadUTF8 reports whether b can start a UTF-8 sequence (not a
// continuation byte and not 0xFE/0xFF).
func IsLeadUTF8(b byte) bool { return b&0xc0 != 0x80 && b < 0xfe }

// IsContUTF8 reports whether b is a UTF-8 continuation byte (10xxxxxx).
func IsContUTF8(b byte) bool { return b&0xc0 == 0x80 }

// IsBadUTF8 reports whether b is illegal anywhere in UTF-8 (0xFE or 0xFF).
func IsBadUTF8(b byte) bool { return b >= 0xfe }

// BitCountUTF8 returns the number of code-point bits encodable in a UTF-8
// sequence of the given byte length (7, 11, 16, 21, 26 or 31), or 0 for
// lengths outside 1..6.
func BitCountUTF8(bytes uint32) uint32 {
	if bytes-1 >= 6 {
		return 0
	}
	n := int32(bytes+(bytes<<2)) - 6
	return uint32(n&((^n)>>31)) + 7
}

// MaxRuneUTF8 returns the maximum code-point encodable in the given number
// of UTF-8 bytes, or -1 for lengths outside 1..6.
func MaxRuneUTF8(bytes uint32) Rune {
	if bytes-1 >= 6 {
		return -1
	}
	return Rune(1)<<BitCountUTF8(bytes) - 1
}

// LeadToBytesUTF8 returns the sequence length implied by a lead byte.
// Continuation and illegal bytes map to 1.
func LeadToBytesUTF8(lead byte) uint32 {
	switch {
	case lead <= 0xbf || lead >= 0xfe:
		// 1 byte (0x00-0x7f), unexpected continuation (0x80-0xbf)
		// or illegal lead (0xfe-0xff)
		return 1
	case lead <= 0xef:
		// 2 bytes (0xc0-0xdf) or 3 bytes (0xe0-0xef)
		return uint32(lead>>5) & 3
	case lead <= 0xf7:
		// 4 bytes (0xf0-0xf7)
		return 4
	default:
		// extended: 5 bytes (0xf8-0xfb) or 6 bytes (0xfc-0xfd)
		return (uint32(lead>>2) & 3) + 3
	}
}
