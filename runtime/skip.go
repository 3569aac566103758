package utf

// Forward and backward code-point skip functions. These move the cursor by
// whole code-points without materializing them and return the count of
// code-points actually consumed (at most the requested count). They walk
// exactly the boundaries the matching decoder produces with the same
// flags.

// StepBYTE moves forward over raw bytes. Under useASCII with coalesce, a
// run of consecutive high bytes counts as one code-point.
func StepBYTE(t *Text, count uint32, useASCII, coalesce bool) uint32 {
	if count == 0 || checkText(t).Error() {
		return 0
	}
	var points uint32
	limit := t.Remaining()
	if useASCII && coalesce {
		buf := t.Buffer[t.Offset:]
		ascii := true
		var index uint32
		for points < count && limit > 0 {
			limit--
			if buf[index]&0x80 != 0x80 {
				points++
				ascii = true
			} else if ascii {
				points++
				ascii = false
			}
			index++
		}
		// a final invalid-run point extends to the end of its run
		if !ascii {
			for limit > 0 && buf[index]&0x80 == 0x80 {
				limit--
				index++
			}
		}
		t.Offset = t.Length() - limit
	} else {
		points = count
		if points > limit {
			points = limit
		}
		t.Offset += points
	}
	return points
}

// BackBYTE moves backward over raw bytes, mirroring StepBYTE.
func BackBYTE(t *Text, count uint32, useASCII, coalesce bool) uint32 {
	if count == 0 || checkText(t).Error() {
		return 0
	}
	var points uint32
	limit := t.Offset
	if useASCII && coalesce {
		ascii := true
		for points < count && limit > 0 {
			limit--
			if t.Buffer[limit]&0x80 != 0x80 {
				points++
				ascii = true
			} else if ascii {
				points++
				ascii = false
			}
		}
		// a final invalid-run point extends to the start of its run
		if !ascii {
			for limit > 0 && t.Buffer[limit-1]&0x80 == 0x80 {
				limit--
			}
		}
		t.Offset = limit
	} else {
		points = count
		if points > limit {
			points = limit
		}
		t.Offset -= points
	}
	return points
}

// StepUTF8 moves forward over UTF-8 sequences, honouring the CESU, Java,
// strict and coalesce flags the way DecodeUTF8 does.
func StepUTF8(t *Text, count uint32, useCESU, useJava, strict, coalesce bool) uint32 {
	if count == 0 || checkText(t).Error() {
		return 0
	}
	var points uint32
	offset := t.Offset
	limit := t.Length() - offset
	var bytes, extra uint32
	for points < count && limit > 0 {
		if extra != 0 {
			if coalesce && !strict {
				points++
				offset += extra
				limit -= extra
			} else {
				points += extra
				offset += extra
				limit -= extra
				if points > count {
					offset -= points - count
					points = count
				}
			}
			extra = 0
		} else {
			win := t.Buffer[offset : offset+limit]
			if strict {
				bytes, extra = stepSeqUTF8Strict(win, useCESU, useJava)
			} else {
				bytes, extra = stepSeqUTF8(win, useCESU)
			}
			if bytes != 0 {
				points++
				offset += bytes
				limit -= bytes
				bytes = 0
			}
		}
	}
	t.Offset = offset
	return points
}

// BackUTF8 moves backward over UTF-8 sequences. The invalid run adjoining
// the cursor is consumed before the sequence in front of it, so stepping
// and backing visit the same boundaries in opposite orders.
func BackUTF8(t *Text, count uint32, useCESU, useJava, strict, coalesce bool) uint32 {
	if count == 0 || checkText(t).Error() {
		return 0
	}
	var points uint32
	offset := t.Offset
	var bytes, extra uint32
	for points < count && offset > 0 {
		if bytes != 0 {
			points++
			offset -= bytes
			bytes = 0
		} else {
			win := t.Buffer[:offset]
			if strict {
				bytes, extra = backSeqUTF8Strict(win, useCESU, useJava)
			} else {
				bytes, extra = backSeqUTF8(win, useCESU)
			}
			if extra != 0 {
				if coalesce && !strict {
					points++
					offset -= extra
				} else {
					points += extra
					offset -= extra
					if points > count {
						offset += points - count
						points = count
					}
				}
				extra = 0
			}
		}
	}
	t.Offset = offset
	return points
}

// StepUTF16 moves forward over 16-bit units, pairing a high surrogate with
// the following low surrogate unless useUCS2.
func StepUTF16(t *Text, count uint32, le, useUCS2 bool) uint32 {
	if count == 0 || checkTextAligned(t, 1).Error() {
		return 0
	}
	var points uint32
	limit := t.Remaining()
	if useUCS2 {
		points = limit >> 1
		if points > count {
			points = count
		}
		limit -= points << 1
	} else {
		buf := t.Buffer[t.Offset:]
		pairing := false
		var index uint32
		for points < count && limit >= 2 {
			points++
			limit -= 2
			u := unit16(buf[index:], le)
			if uint32(u)&0xfffff800 == 0xd800 {
				if u&0x0400 == 0 {
					// high surrogate: a pair may follow
					pairing = true
				} else if pairing {
					// valid surrogate pair
					points--
					pairing = false
				}
			} else {
				pairing = false
			}
			index += 2
		}
		if pairing && limit >= 2 {
			// the final point was a high surrogate; absorb its low
			// partner so the cursor lands on a decode boundary
			if u := unit16(buf[index:], le); uint32(u)&0xfffffc00 == 0xdc00 {
				limit -= 2
			}
		}
	}
	t.Offset = t.Length() - limit
	return points
}

// BackUTF16 moves backward over 16-bit units, mirroring StepUTF16.
func BackUTF16(t *Text, count uint32, le, useUCS2 bool) uint32 {
	if count == 0 || checkTextAligned(t, 1).Error() {
		return 0
	}
	var points uint32
	limit := t.Offset
	if useUCS2 {
		points = limit >> 1
		if points > count {
			points = count
		}
		limit -= points << 1
	} else {
		pairing := false
		for points < count && limit >= 2 {
			points++
			limit -= 2
			u := unit16(t.Buffer[limit:], le)
			if uint32(u)&0xfffff800 == 0xd800 {
				if u&0x0400 != 0 {
					// low surrogate: a pair may precede
					pairing = true
				} else if pairing {
					// valid surrogate pair
					points--
					pairing = false
				}
			} else {
				pairing = false
			}
		}
		if pairing && limit >= 2 {
			// the final point was a low surrogate; absorb the high
			// partner in front of it
			if u := unit16(t.Buffer[limit-2:], le); uint32(u)&0xfffffc00 == 0xd800 {
				limit -= 2
			}
		}
	}
	t.Offset = limit
	return points
}

// StepUTF32 moves forward over 32-bit units; useCESU joins two adjacent
// surrogate units into one code-point.
func StepUTF32(t *Text, count uint32, le, useCESU bool) uint32 {
	if count == 0 || checkTextAligned(t, 3).Error() {
		return 0
	}
	var points uint32
	limit := t.Remaining()
	if useCESU {
		buf := t.Buffer[t.Offset:]
		pairing := false
		var index uint32
		for points < count && limit >= 4 {
			points++
			limit -= 4
			u := unit32(buf[index:], le)
			if uint32(u)&0xfffff800 == 0xd800 {
				if u&0x0400 == 0 {
					pairing = true
				} else if pairing {
					points--
					pairing = false
				}
			} else {
				pairing = false
			}
			index += 4
		}
		if pairing && limit >= 4 {
			// absorb the low partner of a pending high surrogate unit
			if u := unit32(buf[index:], le); uint32(u)&0xfffffc00 == 0xdc00 {
				limit -= 4
			}
		}
	} else {
		points = limit >> 2
		if points > count {
			points = count
		}
		limit -= points << 2
	}
	t.Offset = t.Length() - limit
	return points
}

// BackUTF32 moves backward over 32-bit units, mirroring StepUTF32.
func BackUTF32(t *Text, count uint32, le, useCESU bool) uint32 {
	if count == 0 || checkTextAligned(t, 3).Error() {
		return 0
	}
	var points uint32
	limit := t.Offset
	if useCESU {
		pairing := false
		for points < count && limit >= 4 {
			points++
			limit -= 4
			u := unit32(t.Buffer[limit:], le)
			if uint32(u)&0xfffff800 == 0xd800 {
				if u&0x0400 != 0 {
					pairing = true
				} else if pairing {
					points--
					pairing = false
				}
			} else {
				pairing = false
			}
		}
		if pairing && limit >= 4 {
			// absorb the high partner in front of a pending low
			// surrogate unit
			if u := unit32(t.Buffer[limit-4:], le); uint32(u)&0xfffffc00 == 0xd800 {
				limit -= 4
			}
		}
	} else {
		points = limit >> 2
		if points > count {
			points = count
		}
		limit -= points << 2
	}
	t.Offset = limit
	return points
}

// StepCP1252 moves forward over code-page 1252 bytes; with coalesce a run
// of undecodable bytes counts as one code-point.
func StepCP1252(t *Text, count uint32, strict, coalesce bool) uint32 {
	if count == 0 || checkText(t).Error() {
		return 0
	}
	var points uint32
	limit := t.Remaining()
	if coalesce {
		strictness := WindowsCompatible
		if strict {
			strictness = StrictUndefined
		}
		buf := t.Buffer[t.Offset:]
		valid := true
		var index uint32
		for points < count && limit > 0 {
			limit--
			if _, ok := CP1252ToRune(buf[index], strictness); ok {
				points++
				valid = true
			} else if valid {
				points++
				valid = false
			}
			index++
		}
		// a final invalid-run point extends to the end of its run
		if !valid {
			for limit > 0 {
				if _, ok := CP1252ToRune(buf[index], strictness); ok {
					break
				}
				limit--
				index++
			}
		}
		t.Offset = t.Length() - limit
	} else {
		points = count
		if points > limit {
			points = limit
		}
		t.Offset += points
	}
	return points
}

// BackCP1252 moves backward over code-page 1252 bytes, mirroring
// StepCP1252.
func BackCP1252(t *Text, count uint32, strict, coalesce bool) uint32 {
	if count == 0 || checkText(t).Error() {
		return 0
	}
	var points uint32
	limit := t.Offset
	if coalesce {
		strictness := WindowsCompatible
		if strict {
			strictness = StrictUndefined
		}
		valid := true
		for points < count && limit > 0 {
			limit--
			if _, ok := CP1252ToRune(t.Buffer[limit], strictness); ok {
				points++
				valid = true
			} else if valid {
				points++
				valid = false
			}
		}
		// a final invalid-run point extends to the start of its run
		if !valid {
			for limit > 0 {
				if _, ok := CP1252ToRune(t.Buffer[limit-1], strictness); ok {
					break
				}
				limit--
			}
		}
		t.Offset = limit
	} else {
		points = count
		if points > limit {
			points = limit
		}
		t.Offset -= points
	}
	return points
}
