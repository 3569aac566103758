package utf

// Low level code-point decoders. All of them read at Buffer[Offset],
// return the decoded code-point and byte count plus diagnostics, and leave
// the cursor untouched.
//
// Failure contract: when a decode fails on an unexpected or illegal byte,
// the returned code-point is the FIRST byte of the offending sequence
// (which is not necessarily the byte that caused the failure), so callers
// can cheaply forward or substitute the raw byte. UTF-16 and UTF-32
// truncation failures return 0 with bytes 0.

// DecodeBYTE reads one raw byte (or 7-bit ASCII when useASCII is set).
// A high byte under useASCII fails with DisallowedByte; with coalesce the
// whole run of consecutive high bytes is consumed as one invalid
// code-point.
func DecodeBYTE(t *Text, useASCII, coalesce bool) (r Rune, bytes uint32, errs Diag) {
	errs = checkText(t)
	if errs.Error() {
		return 0, 0, errs
	}
	limit := t.Remaining()
	if limit < 1 {
		return 0, 0, errs | ReadExhausted
	}
	buf := t.Buffer[t.Offset:]
	r = Rune(buf[0])
	bytes = 1
	if useASCII && r&0x80 != 0 {
		errs |= Failed | NotDecodable | DisallowedByte
		if coalesce {
			count := limit
			for index := uint32(1); index < count; index++ {
				if buf[index]&0x80 != 0x80 {
					count = index
					break
				}
			}
			bytes = count
		}
	} else if r == 0 {
		errs |= DelimitString
	}
	return r, bytes, errs
}

// fetchUTF8 is the helper for DecodeUTF8: it assembles one raw UTF-8
// sequence from buf, reporting only the fetch-level diagnostics
// (truncation, bad bytes, overlong/modified/extended forms).
//
// The coalesce flag controls the byte count reported for sequences that
// begin with an illegal or invalid byte: false consumes exactly one byte,
// true consumes up to the next valid lead byte or the end of the buffer.
func fetchUTF8(buf []byte, r *Rune, coalesce bool) (bytes uint32, errs Diag) {
	size := uint32(len(buf))
	*r = 0
	if size < 1 {
		return 0, ReadExhausted
	}
	b := buf[0]
	*r = Rune(b)
	if b <= 0xbf || b >= 0xfe {
		// 1 byte (0x00-0x7f), unexpected continuation (0x80-0xbf) or
		// illegal lead (0xfe-0xff)
		bytes = 1
		if b > 0x7f {
			if b >= 0xfe {
				errs |= Failed | NotDecodable | DisallowedByte
			} else {
				errs |= Failed | NotDecodable | UnexpectedByte
			}
			if coalesce {
				count := size
				for index := uint32(1); index < count; index++ {
					if IsLeadUTF8(buf[index]) {
						count = index
						break
					}
				}
				bytes = count
			}
		}
		return bytes, errs
	}
	var count uint32
	switch {
	case b <= 0xef:
		// 2 bytes (11 bits: 0xc0-0xdf) or 3 bytes (16 bits: 0xe0-0xef)
		count = uint32(b>>5) & 3
	case b <= 0xf7:
		// 4 bytes (21 bits: 0xf0-0xf7)
		count = 4
	default:
		// extended: 5 bytes (26 bits: 0xf8-0xfb) or 6 bytes (31 bits: 0xfc-0xfd)
		count = (uint32(b>>2) & 7) - 1
		errs |= ExtendedUTF8
	}
	if count > size {
		// truncated continuation
		count = size
		errs |= Failed | NotDecodable | ReadTruncated
	}
	value := Rune(b) & (Rune(1)<<(7-count) - 1)
	for index := uint32(1); index < count; index++ {
		b = buf[index]
		if !IsContUTF8(b) {
			errs &^= ReadTruncated
			if b >= 0xfe {
				errs |= Failed | NotDecodable | DisallowedByte
			} else {
				errs |= Failed | NotDecodable | UnexpectedByte
			}
			errs = errs.WithByteIndex(index)
			count = index
			break
		}
		value = value<<6 | Rune(b)&0x3f
	}
	bytes = count
	if errs.NoError() {
		*r = value
		if count > 1 && uint32(value)>>BitCountUTF8(count-1) == 0 {
			// overlong or modified encoding: the 2-byte form of U+0000
			// is the common exception, notably used by Java
			if value == 0 && count == 2 {
				errs |= ModifiedUTF8
			} else {
				errs |= OverlongUTF8
			}
		}
	}
	return bytes, errs
}

// DecodeUTF8 reads one UTF-8 code-point.
//
// With useCESU a decoded high surrogate attempts to join the following
// sequence as its low partner, producing the supplementary code-point and
// the SurrogatePair warning. With useJava the two-byte NULL is a standard
// form (ModifiedUTF8 warning only). The strict flag turns any irregular
// form into a hard failure consuming one byte; coalesce groups a run of
// undecodable bytes into one failed code-point.
func DecodeUTF8(t *Text, useCESU, useJava, strict, coalesce bool) (r Rune, bytes uint32, errs Diag) {
	errs = checkText(t)
	if errs.Error() {
		return 0, 0, errs
	}
	buf := t.Buffer[t.Offset:]
	bytes, fetched := fetchUTF8(buf, &r, coalesce && !strict)
	errs |= fetched
	if errs.Error() {
		if strict && bytes > 1 {
			bytes = 1
		}
		return r, bytes, errs
	}
	// successfully read a UTF8 code-point
	if r >= 0xd800 {
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
				// unpaired low surrogate
				errs |= LowSurrogate
			} else {
				// unpaired or leading high surrogate
				errs |= HighSurrogate
				if useCESU {
					var low Rune
					extra, check := fetchUTF8(buf[bytes:], &low, false)
					if check.AnyOf(ReadTruncated | ReadExhausted) {
						errs |= TruncatedPair
					} else if check.NoError() && uint32(low)&0xfffffc00 == 0xdc00 {
						// found the low surrogate: a valid pair
						r = joinSurrogatePair(r, low)
						bytes += extra
						errs |= check
						errs ^= SurrogatePair | Supplementary | HighSurrogate
						if r&0xfffe == 0xfffe {
							errs |= NonCharacter
						}
					}
				}
			}
		}
	} else if r == 0 && errs.NoneOf(ModifiedUTF8|OverlongUTF8) {
		errs |= DelimitString
	}
	irregular := OverlongUTF8 | ExtendedUTF8 | ExtendedUCS4 | HighSurrogate | LowSurrogate
	if !useJava {
		irregular |= ModifiedUTF8
	}
	if errs.AnyOf(irregular) {
		errs |= IrregularForm
		if strict {
			errs |= Failed | NotDecodable
			r = Rune(buf[0])
			bytes = 1
		}
	}
	return r, bytes, errs
}

// DecodeUTF16 reads one code-point as one or two 16-bit units in the given
// byte order. A high surrogate pairs with the following low surrogate
// unless useUCS2; an unpairable surrogate stays isolated with the
// IrregularForm warning, and a pair cut off by the buffer end adds
// TruncatedPair.
func DecodeUTF16(t *Text, le, useUCS2 bool) (r Rune, bytes uint32, errs Diag) {
	errs = checkTextAligned(t, 1)
	if errs.Error() {
		return 0, 0, errs
	}
	limit := t.Remaining()
	if limit < 2 {
		if limit != 0 {
			return 0, 0, errs | Failed | ReadTruncated
		}
		return 0, 0, errs | ReadExhausted
	}
	buf := t.Buffer[t.Offset:]
	r = unit16(buf, le)
	bytes = 2
	if r >= 0xd800 {
		if r >= 0xfdd0 {
			if r <= 0xfdef || r&0xfffe == 0xfffe {
				errs |= NonCharacter
			}
		} else if uint32(r)&0xfffff800 == 0xd800 {
			errs |= IrregularForm
			if r&0x0400 != 0 {
				// unpaired low surrogate
				errs |= LowSurrogate
			} else {
				// unpaired or leading high surrogate
				errs |= HighSurrogate
				if !useUCS2 {
					if limit < 4 {
						errs |= TruncatedPair
					} else if low := unit16(buf[2:], le); uint32(low)&0xfffffc00 == 0xdc00 {
						// found the low surrogate: a valid pair
						r = joinSurrogatePair(r, low)
						bytes = 4
						errs ^= SurrogatePair | Supplementary | HighSurrogate | IrregularForm
						if r&0xfffe == 0xfffe {
							errs |= NonCharacter
						}
					}
				}
			}
		}
	} else if r == 0 {
		errs |= DelimitString
	}
	return r, bytes, errs
}

func unit16(buf []byte, le bool) Rune {
	if le {
		return Rune(buf[1])<<8 + Rune(buf[0])
	}
	return Rune(buf[0])<<8 + Rune(buf[1])
}

func unit32(buf []byte, le bool) Rune {
	if le {
		return ((Rune(buf[3])<<8+Rune(buf[2]))<<8+Rune(buf[1]))<<8 + Rune(buf[0])
	}
	return ((Rune(buf[0])<<8+Rune(buf[1]))<<8+Rune(buf[2]))<<8 + Rune(buf[3])
}

// DecodeUTF32 reads one code-point as one 32-bit unit in the given byte
// order, or two units when useCESU joins a surrogate pair (eight bytes).
// The extended range is IrregularForm unless useUCS4; a unit with the
// high bit set warns InvalidPoint.
func DecodeUTF32(t *Text, le, useCESU, useUCS4 bool) (r Rune, bytes uint32, errs Diag) {
	errs = checkTextAligned(t, 3)
	if errs.Error() {
		return 0, 0, errs
	}
	limit := t.Remaining()
	if limit < 4 {
		if limit != 0 {
			return 0, 0, errs | Failed | ReadTruncated
		}
		return 0, 0, errs | ReadExhausted
	}
	buf := t.Buffer[t.Offset:]
	r = unit32(buf, le)
	bytes = 4
	if r <= 0 {
		if r != 0 {
			errs |= InvalidPoint | IrregularForm
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
			}
		} else if uint32(r)&0xfffff800 == 0xd800 {
			errs |= IrregularForm
			if r&0x0400 != 0 {
				// unpaired low surrogate
				errs |= LowSurrogate
			} else {
				// unpaired or leading high surrogate
				errs |= HighSurrogate
				if useCESU {
					if limit < 8 {
						errs |= TruncatedPair
					} else if low := unit32(buf[4:], le); uint32(low)&0xfffffc00 == 0xdc00 {
						// found the low surrogate: a valid pair
						r = joinSurrogatePair(r, low)
						bytes = 8
						errs ^= SurrogatePair | Supplementary | HighSurrogate | IrregularForm
						if r&0xfffe == 0xfffe {
							errs |= NonCharacter
						}
					}
				}
			}
		}
	}
	return r, bytes, errs
}

// DecodeCP1252 reads one code-page 1252 byte. Strict mode refuses the five
// undefined C1 slots; with coalesce a failed decode consumes the whole run
// of consecutive undecodable bytes.
func DecodeCP1252(t *Text, strict, coalesce bool) (r Rune, bytes uint32, errs Diag) {
	errs = checkText(t)
	if errs.Error() {
		return 0, 0, errs
	}
	limit := t.Remaining()
	if limit < 1 {
		return 0, 0, errs | ReadExhausted
	}
	strictness := WindowsCompatible
	if strict {
		strictness = StrictUndefined
	}
	buf := t.Buffer[t.Offset:]
	bytes = 1
	var ok bool
	if r, ok = CP1252ToRune(buf[0], strictness); !ok {
		r = Rune(buf[0])
		errs |= Failed | NotDecodable
		if coalesce {
			count := limit
			for index := uint32(1); index < count; index++ {
				if _, ok := CP1252ToRune(buf[index], strictness); ok {
					count = index
					break
				}
			}
			bytes = count
		}
	} else if r == 0 {
		errs |= DelimitString
	}
	return r, bytes, errs
}
