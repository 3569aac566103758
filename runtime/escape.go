package utf

// Short escape and hexadecimal digit conversions used when emitting or
// parsing escaped text.

// RuneToHex converts a hexadecimal digit code-point ("0123456789abcdef" or
// "0123456789ABCDEF") to its 4-bit value, returning -1 for anything else.
func RuneToHex(r Rune) int32 {
	switch {
	case r >= '0' && r <= '9':
		return int32(r - '0')
	case r|0x20 >= 'a' && r|0x20 <= 'f':
		return int32(r|0x20-'a') + 10
	default:
		return -1
	}
}

// HexToLowerRune converts a 4-bit value to its lower case hex digit
// ("0123456789abcdef").
func HexToLowerRune(hex int32) Rune {
	a := hex&15 - 10
	return Rune(a + 'a' - (a>>31)&39)
}

// HexToUpperRune converts a 4-bit value to its upper case hex digit
// ("0123456789ABCDEF").
func HexToUpperRune(hex int32) Rune {
	a := hex&15 - 10
	return Rune(a + 'A' - (a>>31)&7)
}

// ToShortEscape converts a code-point to its standard short escape
// character (the x of \x), returning -1 when there is no conversion.
func ToShortEscape(r Rune) Rune {
	switch r {
	case 0x0007: // bell
		return 'a'
	case 0x0008: // back-space
		return 'b'
	case 0x0009: // tab
		return 't'
	case 0x000a: // line-feed
		return 'n'
	case 0x000b: // vertical tab
		return 'v'
	case 0x000c: // form-feed
		return 'f'
	case 0x000d: // carriage return
		return 'r'
	case '"', '\'', '/', '?', '\\':
		return r
	default:
		return -1
	}
}

// FromShortEscape converts a standard short escape character back to its
// code-point, returning -1 when there is no conversion.
func FromShortEscape(r Rune) Rune {
	switch r {
	case '"', '\'', '/', '?', '\\':
		return r
	case 'a':
		return 0x0007
	case 'b':
		return 0x0008
	case 'f':
		return 0x000c
	case 'n':
		return 0x000a
	case 'r':
		return 0x000d
	case 't':
		return 0x0009
	case 'v':
		return 0x000b
	default:
		return -1
	}
}

// ToShortEscapeJSON converts a code-point to its JSON short escape
// character. JSON uses a subset of the standard escapes (no \a \v \' \?).
func ToShortEscapeJSON(r Rune) Rune {
	switch r {
	case 0x0008: // back-space
		return 'b'
	case 0x0009: // tab
		return 't'
	case 0x000a: // line-feed
		return 'n'
	case 0x000c: // form-feed
		return 'f'
	case 0x000d: // carriage return
		return 'r'
	case '"', '/', '\\':
		return r
	default:
		return -1
	}
}

// FromShortEscapeJSON converts a JSON short escape character back to its
// code-point, returning -1 when there is no conversion.
func FromShortEscapeJSON(r Rune) Rune {
	switch r {
	case '"', '/', '\\':
		return r
	case 'b':
		return 0x0008
	case 'f':
		return 0x000c
	case 'n':
		return 0x000a
	case 'r':
		return 0x000d
	case 't':
		return 0x0009
	default:
		return -1
	}
}
