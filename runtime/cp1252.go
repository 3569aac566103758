package utf

// CP1252Strictness selects how the five C1 slots left undefined by Windows
// code-page 1252 (0x81, 0x8D, 0x8F, 0x90, 0x9D) are handled.
type CP1252Strictness uint8

const (
	// WindowsCompatible passes the undefined slots through as their C1
	// control code-points, matching Windows API behaviour.
	WindowsCompatible CP1252Strictness = iota
	// StrictUndefined refuses the undefined slots.
	StrictUndefined
)

// cp1252Translate maps the 0x80..0x9F region to Unicode. The five
// undefined slots map to themselves.
var cp1252Translate = [32]uint16{
	0x20ac, 0x0081, 0x201a, 0x0192, 0x201e, 0x2026, 0x2020, 0x2021,
	0x02c6, 0x2030, 0x0160, 0x2039, 0x0152, 0x008d, 0x017d, 0x008f,
	0x0090, 0x2018, 0x2019, 0x201c, 0x201d, 0x2022, 0x2013, 0x2014,
	0x02dc, 0x2122, 0x0161, 0x203a, 0x0153, 0x009d, 0x017e, 0x0178,
}

func isCP1252UndefinedC1(r Rune) bool {
	return r == 0x0081 || r == 0x008d || r == 0x008f || r == 0x0090 || r == 0x009d
}

// CP1252ToRune converts a code-page 1252 byte to a Unicode code-point.
// It returns false when the byte is one of the undefined C1 slots and
// strictness is StrictUndefined.
func CP1252ToRune(cp1252 byte, strictness CP1252Strictness) (Rune, bool) {
	index := cp1252 ^ 0x80
	r := Rune(cp1252)
	if index < 32 {
		r = Rune(cp1252Translate[index])
	}
	if strictness == StrictUndefined && isCP1252UndefinedC1(r) {
		return 0, false
	}
	return r, true
}

// RuneToCP1252 converts a Unicode code-point to its code-page 1252 byte.
// It returns false when the code-point has no CP-1252 representation.
func RuneToCP1252(r Rune, strictness CP1252Strictness) (byte, bool) {
	if uint32(r) <= 0xff {
		if r <= 0x7f || r >= 0xa0 || (strictness == WindowsCompatible && isCP1252UndefinedC1(r)) {
			return byte(r), true
		}
		return 0, false
	}
	switch r {
	case 0x0152:
		return 0x8c, true
	case 0x0153:
		return 0x9c, true
	case 0x0160:
		return 0x8a, true
	case 0x0161:
		return 0x9a, true
	case 0x0178:
		return 0x9f, true
	case 0x017d:
		return 0x8e, true
	case 0x017e:
		return 0x9e, true
	case 0x0192:
		return 0x83, true
	case 0x02c6:
		return 0x88, true
	case 0x02dc:
		return 0x98, true
	case 0x2013:
		return 0x96, true
	case 0x2014:
		return 0x97, true
	case 0x2018:
		return 0x91, true
	case 0x2019:
		return 0x92, true
	case 0x201a:
		return 0x82, true
	case 0x201c:
		return 0x93, true
	case 0x201d:
		return 0x94, true
	case 0x201e:
		return 0x84, true
	case 0x2020:
		return 0x86, true
	case 0x2021:
		return 0x87, true
	case 0x2022:
		return 0x95, true
	case 0x2026:
		return 0x85, true
	case 0x2030:
		return 0x89, true
	case 0x2039:
		return 0x8b, true
	case 0x203a:
		return 0x9b, true
	case 0x20ac:
		return 0x80, true
	case 0x2122:
		return 0x99, true
	default:
		return 0, false
	}
}
