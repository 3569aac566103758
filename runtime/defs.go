// This package is a toolkit for transcoding between Unicode code-points and
// byte-level text encodings (UTF-8, UTF-16, UTF-32, raw bytes, ASCII and
// Windows code-page 1252, with Java-modified, CESU and UCS2/UCS4 variants).
//
// It is aimed at code that ingests text of unknown provenance and needs
// precise control over which deviations from the standards are accepted,
// warned about, or rejected.
//
// The package defines four "families" of functions per encoding:
//   - LenXxxx() computes the encoded byte length of a code-point.
//   - EncodeXxxx() writes one code-point at the cursor position.
//   - DecodeXxxx() reads one code-point at the cursor position.
//   - StepXxxx()/BackXxxx() move the cursor by whole code-points.
//
// Every encode and decode returns a Diag bitset classifying what was seen.
// Encoders and decoders never move the cursor themselves; the Handler
// Read/Write wrappers do. Buffers are owned by the caller and nothing is
// retained or allocated by the codec paths.
//
// Handlers bundle a fixed flag combination per encoding tag:
//
//	h := utf.GetHandler(utf.SubUTF8st)
//	r, errs := h.Read(&text)
//
// Decoder standards compliance: the UTF8ns and JUTF8ns tags pass Markus
// Kuhn's decoder stress test with correct alignment; the UTF8st and JUTF8st
// tags pass the malformed-sequence-as-single-bytes variation, matching the
// behaviour of most web browsers. A replacement character should be
// substituted whenever Diag.UseReplacementCharacter reports true.
package utf

// Rune holds a candidate Unicode code-point. Valid Unicode is
// U+0000..U+10FFFF excluding the surrogate block; the extended UCS-4 range
// up to U+7FFFFFFF is representable but non-standard. Values with the high
// bit set are invalid sentinels.
type Rune = rune

// Text is an encoded code-point stream cursor: a byte buffer plus a read or
// write position. The invariant 0 <= Offset <= len(Buffer) holds for every
// valid cursor. Codec calls report violations through the buffer-error Diag
// bits instead of panicking.
type Text struct {
	Buffer []byte
	Offset uint32
}

// Length returns the buffer size in bytes.
func (t *Text) Length() uint32 { return uint32(len(t.Buffer)) }

// Remaining returns the byte count from Offset to the end of the buffer,
// or 0 when the offset is out of range.
func (t *Text) Remaining() uint32 {
	if t.Offset > t.Length() {
		return 0
	}
	return t.Length() - t.Offset
}

// checkText validates the cursor ahead of a codec call.
func checkText(t *Text) Diag {
	var errs Diag
	if t.Buffer == nil {
		errs |= Failed | InvalidBuffer
	}
	if t.Offset > t.Length() {
		errs |= Failed | InvalidOffset
	}
	return errs
}

// checkTextAligned additionally validates offset and length against a
// code-unit alignment mask (1 for 16-bit units, 3 for 32-bit units).
func checkTextAligned(t *Text, alignMask uint32) Diag {
	errs := checkText(t)
	if t.Offset&alignMask != 0 {
		errs |= Failed | MisalignedOffset
	}
	if t.Length()&alignMask != 0 {
		errs |= Failed | MisalignedLength
	}
	return errs
}

// Type names an encoding family.
type Type int32

// Encoding families.
const (
	TypeUTF8    Type = iota // UTF8
	TypeUTF16le             // little endian UTF16
	TypeUTF16be             // big endian UTF16
	TypeUTF32le             // little endian UTF32
	TypeUTF32be             // big endian UTF32
	TypeOther               // non-UTF or unidentified (defaults to Java style UTF8)

	typeCount
)

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case TypeUTF8:
		return "UTF8"
	case TypeUTF16le:
		return "UTF16le"
	case TypeUTF16be:
		return "UTF16be"
	case TypeUTF32le:
		return "UTF32le"
	case TypeUTF32be:
		return "UTF32be"
	case TypeOther:
		return "OTHER"
	default:
		return "<invalid>"
	}
}

// SubType names a concrete (family, variant, endianness) encoding tag.
//
// Naming:
//   - The J prefix is Java-style modified UTF-8: U+0000 is stored as the
//     two-byte overlong C0 80 so a zero byte can terminate strings.
//   - The CESU prefix stores supplementary-plane code-points as UTF-16
//     style surrogate pairs in the target code-unit (suffix digits name
//     the unit size: 8/16/32 in bits, 1/2/4 in bytes).
//   - The UCS2 tags disable UTF-16 surrogate pairs and limit Unicode to
//     the BMP; the UCS4 tags treat U+110000..U+7FFFFFFF as standards
//     compliant for UTF-32.
//   - The ns ("non-skipping") suffix makes a malformed decode consume one
//     byte instead of coalescing a run of bad bytes.
//   - The st ("strict") suffix marks irregular forms as decode failures
//     and makes every failure consume one byte.
//   - le/be suffixes name the byte order.
type SubType int32

// Encoding tags. One handler exists per tag.
const (
	SubUTF8     SubType = iota // UTF8 (permissive)
	SubUTF8ns                  // UTF8 (non-skipping)
	SubUTF8st                  // UTF8 (strict)
	SubJUTF8                   // Java style UTF8 (permissive)
	SubJUTF8ns                 // Java style UTF8 (non-skipping)
	SubJUTF8st                 // Java style UTF8 (strict)
	SubCESU8                   // CESU8 (permissive)
	SubCESU8ns                 // CESU8 (non-skipping)
	SubCESU8st                 // CESU8 (strict)
	SubJCESU8                  // Java style CESU8 (permissive)
	SubJCESU8ns                // Java style CESU8 (non-skipping)
	SubJCESU8st                // Java style CESU8 (strict)
	SubUTF16le                 // UTF16 (little endian)
	SubUTF16be                 // UTF16 (big endian)
	SubUCS2le                  // UCS2 (little endian)
	SubUCS2be                  // UCS2 (big endian)
	SubUTF32le                 // UTF32 (little endian)
	SubUTF32be                 // UTF32 (big endian)
	SubUCS4le                  // UCS4 (little endian)
	SubUCS4be                  // UCS4 (big endian)
	SubCESU32le                // CESU UTF32 (little endian)
	SubCESU32be                // CESU UTF32 (big endian)
	SubCESU4le                 // CESU UCS4 (little endian); reports CESU32le
	SubCESU4be                 // CESU UCS4 (big endian); reports CESU32be
	SubBYTE                    // ISO-8859-1
	SubBYTEns                  // ISO-8859-1 (non-skipping)
	SubASCII                   // ASCII
	SubASCIIns                 // ASCII (non-skipping)
	SubCP1252                  // Windows code-page 1252 (permissive)
	SubCP1252ns                // Windows code-page 1252 (non-skipping)
	SubCP1252st                // Windows code-page 1252 (strict)

	subTypeCount
)

var subTypeNames = [subTypeCount]string{
	"UTF8", "UTF8ns", "UTF8st",
	"JUTF8", "JUTF8ns", "JUTF8st",
	"CESU8", "CESU8ns", "CESU8st",
	"JCESU8", "JCESU8ns", "JCESU8st",
	"UTF16le", "UTF16be", "UCS2le", "UCS2be",
	"UTF32le", "UTF32be", "UCS4le", "UCS4be",
	"CESU32le", "CESU32be", "CESU4le", "CESU4be",
	"BYTE", "BYTEns", "ASCII", "ASCIIns",
	"CP1252", "CP1252ns", "CP1252st",
}

// String implements fmt.Stringer.
func (s SubType) String() string {
	if s < 0 || s >= subTypeCount {
		return "<invalid>"
	}
	return subTypeNames[s]
}

// ParseSubType resolves an encoding tag by its name (as rendered by
// String). It reports false for unknown names.
func ParseSubType(name string) (SubType, bool) {
	for s, n := range subTypeNames {
		if n == name {
			return SubType(s), true
		}
	}
	return 0, false
}

// SubTypes returns all encoding tags in declaration order.
func SubTypes() []SubType {
	subs := make([]SubType, subTypeCount)
	for s := range subs {
		subs[s] = SubType(s)
	}
	return subs
}

// OtherType names the non-UTF and non-strict encodings selectable through
// GetOtherHandler.
type OtherType int32

// Non-UTF encoding selectors.
const (
	OtherJUTF8  OtherType = iota // Java style UTF8 (default)
	OtherLatin1                  // ISO-8859-1 (8-bit Unicode)
	OtherASCII                   // strict ASCII
	OtherCP1252                  // Windows code-page 1252

	otherTypeCount
)

// String implements fmt.Stringer.
func (o OtherType) String() string {
	switch o {
	case OtherJUTF8:
		return "JUTF8"
	case OtherLatin1:
		return "ISO8859-1"
	case OtherASCII:
		return "ASCII"
	case OtherCP1252:
		return "CP1252"
	default:
		return "<invalid>"
	}
}
