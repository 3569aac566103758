package utf

// Low level code-point encoders. All of them write at Buffer[Offset],
// return the byte count written plus diagnostics, and leave the cursor
// untouched. On any hard error the byte count is 0 and nothing is written.

// EncodeBYTE writes r as a single raw byte (or 7-bit ASCII when useASCII
// is set).
func EncodeBYTE(t *Text, r Rune, useASCII bool) (bytes uint32, errs Diag) {
	errs = checkText(t)
	limit := Rune(0xff)
	if useASCII {
		limit = 0x7f
	}
	if r <= 0 {
		if r != 0 {
			errs |= Failed | NotEncodable | InvalidPoint | NotEnoughBits
		} else {
			errs |= DelimitString
		}
	} else if r > limit {
		errs |= Failed | NotEncodable | NotEnoughBits
		errs |= classifyUnencodable(r)
	}
	if errs.NoError() {
		if t.Remaining() < 1 {
			errs |= Failed | WriteOverflow
		} else {
			t.Buffer[t.Offset] = byte(r)
			bytes = 1
		}
	}
	return bytes, errs
}

// classifyUnencodable adds the range warnings an encoder reports alongside
// NotEncodable for a code-point at or above the surrogate block.
func classifyUnencodable(r Rune) Diag {
	var errs Diag
	if r < 0xd800 {
		return errs
	}
	if r > 0x10ffff {
		errs |= ExtendedUCS4
	} else if r >= 0xfdd0 {
		if r <= 0xfdef || r&0xfffe == 0xfffe {
			errs |= NonCharacter
		}
		if r > 0xffff {
			errs |= Supplementary
		}
	} else if uint32(r)&0xfffff800 == 0xd800 {
		if r&0x0400 != 0 {
			errs |= LowSurrogate
		} else {
			errs |= HighSurrogate
		}
	}
	return errs
}

// EncodeUTF8 writes r in UTF-8. Surrogate code-points are still written as
// three bytes, flagged HighSurrogate/LowSurrogate plus IrregularForm; this
// permissiveness is intentional. With useCESU, supplementary code-points
// become a six-byte surrogate pair; with useJava, U+0000 becomes the
// two-byte C0 80. The extended ranges up to U+7FFFFFFF are written as 4,
// 5 or 6 byte forms with the matching warnings.
func EncodeUTF8(t *Text, r Rune, useCESU, useJava bool) (bytes uint32, errs Diag) {
	errs = checkText(t)
	if r <= 0 {
		switch {
		case r != 0:
			errs |= Failed | NotEncodable | InvalidPoint | NotEnoughBits
		case useJava:
			errs |= ModifiedUTF8
		default:
			errs |= DelimitString
		}
	} else if r >= 0xd800 {
		if r > 0x10ffff {
			if r > 0x1fffff {
				errs |= ExtendedUTF8 | ExtendedUCS4 | IrregularForm
			} else {
				errs |= ExtendedUCS4 | IrregularForm
			}
		} else if r >= 0xfdd0 {
			if r <= 0xfdef || r&0xfffe == 0xfffe {
				errs |= NonCharacter
			}
			if r > 0xffff {
				errs |= Supplementary
				if useCESU {
					errs |= SurrogatePair
				}
			}
		} else if uint32(r)&0xfffff800 == 0xd800 {
			if r&0x0400 != 0 {
				errs |= LowSurrogate | IrregularForm
			} else {
				errs |= HighSurrogate | IrregularForm
			}
		}
	}
	if errs.Error() {
		return 0, errs
	}
	limit := t.Remaining()
	need := uint32(1)
	switch {
	case r <= 0x7f:
		if errs.AnyOf(ModifiedUTF8) {
			need = 2
		}
	case r <= 0x7ff:
		need = 2
	case r <= 0xffff:
		need = 3
	case r <= 0x10ffff && errs.AnyOf(SurrogatePair):
		need = 6
	case r <= 0x1fffff:
		need = 4
	case r <= 0x3ffffff:
		need = 5
	default:
		need = 6
	}
	if limit < need {
		return 0, errs | Failed | WriteOverflow
	}
	buf := t.Buffer[t.Offset:]
	switch {
	case r <= 0x7f && errs.AnyOf(ModifiedUTF8):
		// 2 bytes (modified NULL)
		buf[0] = 0xc0
		buf[1] = 0x80
	case r <= 0x7f:
		// 1 byte (7 bits)
		buf[0] = byte(r)
	case r <= 0x7ff:
		// 2 bytes (11 bits)
		buf[0] = byte(r>>6) | 0xc0
		buf[1] = byte(r)&0x3f | 0x80
	case r <= 0xffff:
		// 3 bytes (16 bits)
		buf[0] = byte(r>>12) | 0xe0
		buf[1] = byte(r>>6)&0x3f | 0x80
		buf[2] = byte(r)&0x3f | 0x80
	case r <= 0x10ffff && errs.AnyOf(SurrogatePair):
		// 6 bytes (CESU: the UTF16 surrogates each as a 3-byte sequence)
		high, low := splitSurrogatePair(r)
		buf[0] = byte(high>>12)&0x0f | 0xe0
		buf[1] = byte(high>>6)&0x3f | 0x80
		buf[2] = byte(high)&0x3f | 0x80
		buf[3] = byte(low>>12)&0x0f | 0xe0
		buf[4] = byte(low>>6)&0x3f | 0x80
		buf[5] = byte(low)&0x3f | 0x80
	case r <= 0x1fffff:
		// 4 bytes (21 bits)
		buf[0] = byte(r>>18) | 0xf0
		buf[1] = byte(r>>12)&0x3f | 0x80
		buf[2] = byte(r>>6)&0x3f | 0x80
		buf[3] = byte(r)&0x3f | 0x80
	case r <= 0x3ffffff:
		// 5 bytes (26 bits)
		buf[0] = byte(r>>24) | 0xf8
		buf[1] = byte(r>>18)&0x3f | 0x80
		buf[2] = byte(r>>12)&0x3f | 0x80
		buf[3] = byte(r>>6)&0x3f | 0x80
		buf[4] = byte(r)&0x3f | 0x80
	default:
		// 6 bytes (31 bits)
		buf[0] = byte(r>>30) | 0xfc
		buf[1] = byte(r>>24)&0x3f | 0x80
		buf[2] = byte(r>>18)&0x3f | 0x80
		buf[3] = byte(r>>12)&0x3f | 0x80
		buf[4] = byte(r>>6)&0x3f | 0x80
		buf[5] = byte(r)&0x3f | 0x80
	}
	return need, errs
}

// splitSurrogatePair splits a supplementary code-point into its high and
// low UTF-16 surrogates.
func splitSurrogatePair(r Rune) (high, low Rune) {
	s := r - 0x10000
	return s>>10 | 0xd800, s&0x3ff | 0xdc00
}

// joinSurrogatePair combines a high and low surrogate into the
// supplementary code-point.
func joinSurrogatePair(high, low Rune) Rune {
	return (high&0x3ff)<<10 + low&0x3ff + 0x10000
}

// EncodeUTF8Len writes r in UTF-8 using an explicit sequence length of 1
// to 6 bytes. If r fits in fewer bytes the overlong form is still written,
// flagged OverlongUTF8 plus IrregularForm (or ModifiedUTF8 for the
// two-byte U+0000). Lengths outside 1..6 fail with BadSizeUTF8; a length
// too short for r fails with NotEnoughBits.
func EncodeUTF8Len(t *Text, r Rune, bytes uint32, useJava bool) Diag {
	errs := checkText(t)
	if bytes-1 < 6 {
		if r == 0 {
			switch {
			case bytes < 2:
				errs |= DelimitString
			case bytes > 2:
				errs |= OverlongUTF8 | IrregularForm
			case useJava:
				errs |= ModifiedUTF8
			default:
				errs |= ModifiedUTF8 | IrregularForm
			}
		} else {
			if uint32(r)>>BitCountUTF8(bytes) != 0 {
				errs |= Failed | NotEncodable | NotEnoughBits
			} else if bytes > 1 && uint32(r)>>BitCountUTF8(bytes-1) == 0 {
				errs |= OverlongUTF8 | IrregularForm
			}
		}
	} else {
		errs |= Failed | NotEncodable | BadSizeUTF8
	}
	if r < 0 {
		errs |= Failed | NotEncodable | InvalidPoint | NotEnoughBits
	} else if r >= 0xd800 {
		if r > 0x10ffff {
			if r > 0x1fffff {
				errs |= ExtendedUTF8 | ExtendedUCS4 | IrregularForm
			} else {
				errs |= ExtendedUCS4 | IrregularForm
			}
		} else if r >= 0xfdd0 {
			if r <= 0xfdef || r&0xfffe == 0xfffe {
				errs |= NonCharacter
			}
			if r > 0xffff {
				errs |= Supplementary
			}
		} else if uint32(r)&0xfffff800 == 0xd800 {
			if r&0x0400 != 0 {
				errs |= LowSurrogate | IrregularForm
			} else {
				errs |= HighSurrogate | IrregularForm
			}
		}
	}
	if errs.Error() {
		return errs
	}
	if t.Remaining() < bytes {
		return errs | Failed | WriteOverflow
	}
	buf := t.Buffer[t.Offset:]
	value := uint32(r)
	for index := bytes - 1; index != 0; index-- {
		buf[index] = byte(value)&0x3f | 0x80
		value >>= 6
	}
	mask := byte(0x7f)
	if bytes > 1 {
		mask = 0x7f >> bytes
	}
	buf[0] = byte(value)&mask | ^mask<<1
	return errs
}

// EncodeUTF16 writes r as one or two 16-bit units in the given byte order.
// Supplementary code-points become a surrogate pair unless useUCS2, which
// fails them with NotEnoughBits. Isolated surrogate values are written
// with an IrregularForm warning.
func EncodeUTF16(t *Text, r Rune, le, useUCS2 bool) (bytes uint32, errs Diag) {
	errs = checkTextAligned(t, 1)
	if r <= 0 {
		if r != 0 {
			errs |= Failed | NotEncodable | InvalidPoint | NotEnoughBits
		} else {
			errs |= DelimitString
		}
	} else if r >= 0xd800 {
		if r > 0x10ffff {
			errs |= Failed | ExtendedUCS4 | NotEnoughBits
		} else if r >= 0xfdd0 {
			if r <= 0xfdef || r&0xfffe == 0xfffe {
				errs |= NonCharacter
			}
			if r > 0xffff {
				if useUCS2 {
					errs |= Failed | Supplementary | NotEnoughBits
				} else {
					errs |= Supplementary | SurrogatePair
				}
			}
		} else if uint32(r)&0xfffff800 == 0xd800 {
			if r&0x0400 != 0 {
				errs |= LowSurrogate | IrregularForm
			} else {
				errs |= HighSurrogate | IrregularForm
			}
		}
	}
	if errs.Error() {
		return 0, errs
	}
	buf := t.Buffer[t.Offset:]
	if errs.AnyOf(SurrogatePair) {
		if t.Remaining() < 4 {
			return 0, errs | Failed | WriteOverflow
		}
		high, low := splitSurrogatePair(r)
		if le {
			buf[0] = byte(high)
			buf[1] = byte(high >> 8)
			buf[2] = byte(low)
			buf[3] = byte(low >> 8)
		} else {
			buf[0] = byte(high >> 8)
			buf[1] = byte(high)
			buf[2] = byte(low >> 8)
			buf[3] = byte(low)
		}
		return 4, errs
	}
	if t.Remaining() < 2 {
		return 0, errs | Failed | WriteOverflow
	}
	if le {
		buf[0] = byte(r)
		buf[1] = byte(r >> 8)
	} else {
		buf[0] = byte(r >> 8)
		buf[1] = byte(r)
	}
	return 2, errs
}

// EncodeUTF32 writes r as one 32-bit unit in the given byte order, or as
// two units holding a surrogate pair when useCESU covers a supplementary
// code-point (the upper 16 bits of each unit are zero). Negative values
// are written raw with an InvalidPoint warning; the extended range is
// IrregularForm unless useUCS4 blesses it.
func EncodeUTF32(t *Text, r Rune, le, useCESU, useUCS4 bool) (bytes uint32, errs Diag) {
	errs = checkTextAligned(t, 3)
	if r <= 0 {
		if r != 0 {
			errs |= InvalidPoint
		} else {
			errs |= DelimitString
		}
	} else if r >= 0xd800 {
		if r > 0x10ffff {
			if useUCS4 {
				errs |= ExtendedUCS4
			} else {
				errs |= ExtendedUCS4 | IrregularForm
			}
		} else if r >= 0xfdd0 {
			if r <= 0xfdef || r&0xfffe == 0xfffe {
				errs |= NonCharacter
			}
			if r > 0xffff {
				errs |= Supplementary
				if useCESU {
					errs |= SurrogatePair
				}
			}
		} else if uint32(r)&0xfffff800 == 0xd800 {
			if r&0x0400 != 0 {
				errs |= LowSurrogate | IrregularForm
			} else {
				errs |= HighSurrogate | IrregularForm
			}
		}
	}
	if errs.Error() {
		return 0, errs
	}
	buf := t.Buffer[t.Offset:]
	if errs.AnyOf(SurrogatePair) {
		if t.Remaining() < 8 {
			return 0, errs | Failed | WriteOverflow
		}
		high, low := splitSurrogatePair(r)
		if le {
			buf[0] = byte(high)
			buf[1] = byte(high >> 8)
			buf[2], buf[3] = 0, 0
			buf[4] = byte(low)
			buf[5] = byte(low >> 8)
			buf[6], buf[7] = 0, 0
		} else {
			buf[0], buf[1] = 0, 0
			buf[2] = byte(high >> 8)
			buf[3] = byte(high)
			buf[4], buf[5] = 0, 0
			buf[6] = byte(low >> 8)
			buf[7] = byte(low)
		}
		return 8, errs
	}
	if t.Remaining() < 4 {
		return 0, errs | Failed | WriteOverflow
	}
	if le {
		buf[0] = byte(r)
		buf[1] = byte(r >> 8)
		buf[2] = byte(r >> 16)
		buf[3] = byte(r >> 24)
	} else {
		buf[0] = byte(r >> 24)
		buf[1] = byte(r >> 16)
		buf[2] = byte(r >> 8)
		buf[3] = byte(r)
	}
	return 4, errs
}

// EncodeCP1252 writes r as its code-page 1252 byte. Misses of the inverse
// translation fail with NotEncodable plus the range warnings describing r.
func EncodeCP1252(t *Text, r Rune, strict bool) (bytes uint32, errs Diag) {
	errs = checkText(t)
	strictness := WindowsCompatible
	if strict {
		strictness = StrictUndefined
	}
	var cp1252 byte
	if r <= 0 {
		if r != 0 {
			errs |= Failed | NotEncodable | InvalidPoint | NotEnoughBits
		} else {
			errs |= DelimitString
		}
	} else if b, ok := RuneToCP1252(r, strictness); !ok {
		errs |= Failed | NotEncodable
		errs |= classifyUnencodable(r)
	} else {
		cp1252 = b
	}
	if errs.NoError() {
		if t.Remaining() < 1 {
			errs |= Failed | WriteOverflow
		} else {
			t.Buffer[t.Offset] = cp1252
			bytes = 1
		}
	}
	return bytes, errs
}
