package utf

// Internal UTF-8 sequence scanners backing StepUTF8 and BackUTF8. Each
// scanner examines one candidate code-point at the near edge of the window
// and reports two counts:
//
//	bytes - the size of the qualifying code-point found (0 if none)
//	extra - the invalid or illegal bytes that follow it in buffer order:
//	        up to the next lead byte when scanning forward, up to the end
//	        of the window when scanning backward
//
// The scanners must land on exactly the boundaries the decoder produces
// with the same flags; StepUTF8/BackUTF8 alternate between consuming the
// sequence and consuming the invalid run.

// stepSeqUTF8 scans forward from the start of win (permissive mode).
//
// In CESU mode a three-to-six byte high surrogate peeks ahead for a valid
// low surrogate sequence and attaches it, so a stored surrogate pair moves
// as one code-point.
func stepSeqUTF8(win []byte, useCESU bool) (bytes, extra uint32) {
	limit := uint32(len(win))
	if limit == 0 {
		return 0, 0
	}
	b := win[0]
	count := uint32(1)
	index := uint32(1)
	if IsLeadUTF8(b) {
		// sequence starts with a lead byte: walk its continuation run
		for limit > count && IsContUTF8(win[index]) {
			count++
			index++
		}
		check := count
		if useCESU {
			bytes = check
			switch {
			case b <= 0x7f:
				bytes = 1
			case b <= 0xdf:
				if check >= 2 {
					bytes = 2
				}
			default:
				highSurrogate := false
				switch {
				case b <= 0xef:
					if check >= 3 {
						highSurrogate = b == 0xed && win[1]&0xf0 == 0xa0
						bytes = 3
					}
				case b <= 0xf7:
					if check >= 4 {
						highSurrogate = b == 0xf0 && win[1] == 0x8d && win[2]&0xf0 == 0xa0
						bytes = 4
					}
				case b <= 0xfb:
					if check >= 5 {
						highSurrogate = b == 0xf8 && win[2] == 0x8d && win[3]&0xf0 == 0xa0
						bytes = 5
					}
				default:
					if check >= 6 {
						highSurrogate = b == 0xfc && win[3] == 0x8d && win[4]&0xf0 == 0xa0
						bytes = 6
					}
				}
				if highSurrogate && limit-bytes >= 3 {
					// a trailing low surrogate is possible
					verify := win[bytes:]
					rem := limit - bytes
					var attach uint32
					switch verify[0] {
					case 0xed:
						attach = 3
					case 0xf0:
						if rem >= 4 && verify[1] == 0x8d {
							attach = 4
						}
					case 0xf8:
						if rem >= 5 && IsContUTF8(verify[1]) && verify[2] == 0x8d {
							attach = 5
						}
					case 0xfc:
						if rem >= 6 && IsContUTF8(verify[1]) && IsContUTF8(verify[2]) && verify[3] == 0x8d {
							attach = 6
						}
					}
					if attach != 0 && verify[attach-2]&0xf0 == 0xb0 && IsContUTF8(verify[attach-1]) {
						// found a surrogate pair
						bytes += attach
						count += attach
						index += attach
					}
				}
			}
		} else {
			switch {
			case b <= 0xdf:
				bytes = 2
				if b <= 0x7f {
					bytes = 1
				}
			case b <= 0xf7:
				bytes = 4
				if b <= 0xef {
					bytes = 3
				}
			default:
				bytes = 6
				if b <= 0xfb {
					bytes = 5
				}
			}
			if bytes > check {
				bytes = check
			}
		}
		count -= bytes
	}
	// count trailing invalid bytes up to the next lead byte
	for index < limit && !IsLeadUTF8(win[index]) {
		count++
		index++
	}
	return bytes, count
}

// backSeqUTF8 scans backward from the end of win (permissive mode).
//
// The CESU case is the delicate one: having identified what looks like a
// low surrogate sequence, the scanner looks back through it for a leading
// high surrogate of any supported width (3, 4, 5 or 6 bytes) and merges
// the two atomically.
func backSeqUTF8(win []byte, useCESU bool) (bytes, extra uint32) {
	limit := uint32(len(win))
	var check, count uint32
	index := limit
	for limit > count {
		index--
		count++
		b := win[index]
		if b > 0xfd {
			// illegal byte
			check = 0
			continue
		}
		check++
		if IsContUTF8(b) {
			continue
		}
		// lead byte
		if useCESU {
			bytes = check
			switch {
			case b <= 0x7f:
				bytes = 1
			case b <= 0xdf:
				if check >= 2 {
					bytes = 2
				}
			default:
				verify := win[index:]
				lowSurrogate := false
				switch {
				case b <= 0xef:
					if check >= 3 {
						lowSurrogate = b == 0xed && verify[1]&0xf0 == 0xb0
						bytes = 3
					}
				case b <= 0xf7:
					if check >= 4 {
						lowSurrogate = b == 0xf0 && verify[1] == 0x8d && verify[2]&0xf0 == 0xb0
						bytes = 4
					}
				case b <= 0xfb:
					if check >= 5 {
						lowSurrogate = b == 0xf8 && verify[2] == 0x8d && verify[3]&0xf0 == 0xb0
						bytes = 5
					}
				default:
					if check >= 6 {
						lowSurrogate = b == 0xfc && verify[3] == 0x8d && verify[4]&0xf0 == 0xb0
						bytes = 6
					}
				}
				if lowSurrogate && limit-count >= 3 {
					// found a low surrogate with room for a leading high
					// surrogate; the initial bytes must match before the
					// width is identified
					if IsContUTF8(win[index-1]) && win[index-2]&0xf0 == 0xa0 {
						ahead := limit - count
						var attach uint32
						switch {
						case win[index-3] == 0xed:
							attach = 3
						case win[index-3] == 0x8d && ahead >= 4:
							switch {
							case win[index-4] == 0xf0:
								attach = 4
							case win[index-4] == 0x80 && ahead >= 5:
								switch {
								case win[index-5] == 0xf8:
									attach = 5
								case win[index-5] == 0x80 && ahead >= 6:
									if win[index-6] == 0xfc {
										attach = 6
									}
								}
							}
						}
						bytes += attach
						count += attach
					}
				}
			}
		} else {
			switch {
			case b <= 0xdf:
				bytes = 2
				if b <= 0x7f {
					bytes = 1
				}
			case b <= 0xf7:
				bytes = 4
				if b <= 0xef {
					bytes = 3
				}
			default:
				bytes = 6
				if b <= 0xfb {
					bytes = 5
				}
			}
			if bytes > check {
				bytes = check
			}
		}
		count -= bytes
		break
	}
	return bytes, count
}

// stepSeqUTF8Strict scans forward accepting only strictly valid sequences:
// minimal forms, the Java NULL when enabled, and CESU pairs when enabled.
// Everything else is reported through extra, one byte per position.
func stepSeqUTF8Strict(win []byte, useCESU, useJava bool) (bytes, extra uint32) {
	limit := uint32(len(win))
	if limit == 0 {
		return 0, 0
	}
	b := win[0]
	if b&0xc0 != 0x80 && b <= 0xf7 {
		// sequence starts with a strict lead byte
		if b <= 0x7f {
			bytes = 1
		} else if limit >= 2 && IsContUTF8(win[1]) {
			leading := uint16(b)<<8 | uint16(win[1])
			if b <= 0xdf {
				if leading >= 0xc280 || (useJava && leading == 0xc080) {
					// at least U+0080, or the Java modified NULL
					bytes = 2
				}
			} else if limit >= 3 && IsContUTF8(win[2]) {
				if b <= 0xef {
					if leading >= 0xe0a0 {
						if leading&0xffe0 != 0xeda0 {
							// at least U+0800 and not a surrogate
							bytes = 3
						} else if useCESU && leading&0xfff0 == 0xeda0 && limit >= 6 {
							// a high surrogate; a full pair needs a low
							// surrogate sequence right behind it
							if win[3] == 0xed && win[4]&0xf0 == 0xb0 && IsContUTF8(win[5]) {
								bytes = 6
							}
						}
					}
				} else if limit >= 4 && IsContUTF8(win[3]) {
					if leading >= 0xf090 && leading <= 0xf48f {
						// U+10000 to U+10FFFF
						bytes = 4
					}
				}
			}
		}
	}
	count := bytes
	if count == 0 {
		count = 1
	}
	for index := count; index < limit; index++ {
		if win[index]&0xc0 != 0x80 && win[index] <= 0xf7 {
			// found the next strict lead byte
			break
		}
		count++
	}
	return bytes, count - bytes
}

// backSeqUTF8Strict scans backward accepting only strictly valid
// sequences, pairing a low surrogate with the high surrogate in front of
// it when CESU is enabled.
func backSeqUTF8Strict(win []byte, useCESU, useJava bool) (bytes, extra uint32) {
	limit := uint32(len(win))
	var check, count uint32
	index := limit
	for limit > count {
		index--
		count++
		b := win[index]
		if b > 0xf7 {
			// illegal byte
			check = 0
			continue
		}
		check++
		if IsContUTF8(b) {
			continue
		}
		// lead byte
		if b <= 0x7f {
			bytes = 1
		} else if check >= 2 && IsContUTF8(win[index+1]) {
			leading := uint16(b)<<8 | uint16(win[index+1])
			if b <= 0xdf {
				if leading >= 0xc280 || (useJava && leading == 0xc080) {
					bytes = 2
				}
			} else if check >= 3 && IsContUTF8(win[index+2]) {
				if b <= 0xef {
					if leading >= 0xe0a0 {
						if leading&0xffe0 != 0xeda0 {
							bytes = 3
						} else if useCESU && leading&0xfff0 == 0xedb0 && limit-count >= 3 {
							// a low surrogate with room for the leading
							// high surrogate
							if IsContUTF8(win[index-1]) && win[index-2]&0xf0 == 0xa0 && win[index-3] == 0xed {
								// found a surrogate pair
								bytes = 6
								count += 3
							}
						}
					}
				} else if check >= 4 && IsContUTF8(win[index+3]) {
					if leading >= 0xf090 && leading <= 0xf48f {
						bytes = 4
					}
				}
			}
		}
		count -= bytes
		break
	}
	return bytes, count
}
