package utf

import "strings"

// Diag is the result of every encode and decode call: a packed set of hard
// errors and warnings plus a small byte-index field. The three low bits
// carry the relative offset (0..7) of the first offending byte inside a
// failed sequence and are excluded from Any and the error/warning masks.
//
// Combine diagnostics across calls with |= to accumulate a report for a
// whole buffer. The zero value means "clean".
type Diag uint32

// Diagnostic bits.
const (
	Failed           Diag = 1 << 31 // the operation failed (one or more errors were encountered)
	InvalidBuffer    Diag = 1 << 30 // error   : r/w : the Text buffer is nil
	InvalidOffset    Diag = 1 << 29 // error   : r/w : the Text offset is greater than the buffer length
	MisalignedOffset Diag = 1 << 28 // error   : r/w : the Text offset is misaligned for the code-unit size
	MisalignedLength Diag = 1 << 27 // error   : r/w : the Text length is misaligned for the code-unit size
	WriteOverflow    Diag = 1 << 26 // error   : w   : the write would overflow the buffer
	ReadTruncated    Diag = 1 << 25 // error   : r   : the read would overrun the buffer (returned code-point is the lead byte)
	ReadExhausted    Diag = 1 << 24 // warning : r   : the read is at the end of the buffer (returned code-point is 0)
	NotEncodable     Diag = 1 << 23 // error   : w   : the code-point is not encodable using the specified encoding
	NotDecodable     Diag = 1 << 22 // error   : r   : the byte sequence is not decodable using the specified encoding
	InvalidPoint     Diag = 1 << 21 // warning : r/w : the code-point is in the invalid range (U+80000000 to U+FFFFFFFF)
	ExtendedUCS4     Diag = 1 << 20 // warning : r/w : the code-point is in the extended UCS4 range (U+00110000 to U+7FFFFFFF)
	Supplementary    Diag = 1 << 19 // warning : r/w : the code-point is in the supplementary planes (U+00010000 to U+0010FFFF)
	NonCharacter     Diag = 1 << 18 // warning : r/w : the code-point is a Unicode non-character
	TruncatedPair    Diag = 1 << 17 // warning : r   : a high surrogate lead whose low partner was truncated
	SurrogatePair    Diag = 1 << 16 // warning : r/w : the code-point is encoded as a surrogate pair
	HighSurrogate    Diag = 1 << 15 // warning : r/w : the code-point is an unpaired high surrogate (U+D800 to U+DBFF)
	LowSurrogate     Diag = 1 << 14 // warning : r/w : the code-point is an unpaired low surrogate (U+DC00 to U+DFFF)
	DelimitString    Diag = 1 << 13 // warning : r/w : the code-point is the string delimiter U+0000 (neither overlong nor modified)
	IrregularForm    Diag = 1 << 12 // warning : r/w : the encoding is parseable but not compliant with the encoding standard
	BadSizeUTF8      Diag = 1 << 11 // error   : w   : the requested UTF8 encoding length is outside 1..6
	ModifiedUTF8     Diag = 1 << 10 // warning : r/w : the encoding is the modified 2-byte U+0000
	OverlongUTF8     Diag = 1 << 9  // warning : r/w : the encoding is overlong
	ExtendedUTF8     Diag = 1 << 8  // warning : r/w : the encoding is more than 4 bytes long
	Untransformable  Diag = 1 << 7  // error   : r/w : the code-point cannot be transformed between Unicode and the encoding
	NotEnoughBits    Diag = 1 << 6  // error   : w   : the code-point needs more bits than the encoding provides
	DisallowedByte   Diag = 1 << 5  // error   : r   : found an illegal byte (not allowed by the encoding specification)
	UnexpectedByte   Diag = 1 << 4  // error   : r   : found a valid byte in an unexpected position
)

// ModifiedUTF8 and OverlongUTF8 are exclusive of each other; check both to
// test for all overlong encodings.

const (
	errorsMask = Failed | InvalidBuffer | InvalidOffset | MisalignedOffset |
		MisalignedLength | WriteOverflow | ReadTruncated | NotEncodable |
		NotDecodable | BadSizeUTF8 | Untransformable | NotEnoughBits |
		DisallowedByte | UnexpectedByte

	warningsMask = ReadExhausted | InvalidPoint | ExtendedUCS4 | Supplementary |
		NonCharacter | TruncatedPair | SurrogatePair | HighSurrogate |
		LowSurrogate | DelimitString | IrregularForm | ModifiedUTF8 |
		OverlongUTF8 | ExtendedUTF8

	bufferErrorsMask = InvalidBuffer | InvalidOffset | MisalignedOffset | MisalignedLength

	// byteIndexMask covers the three low bits reserved for the offending
	// byte index; they never count as diagnostics.
	byteIndexMask Diag = 0x7

	// runeDisallowedMask: bits that disqualify a plain rune value. The
	// complement is the set a caller treating the result as a rune may
	// still see on success.
	runeDisallowedMask = ^(Supplementary | NonCharacter | SurrogatePair |
		IrregularForm | ModifiedUTF8 | OverlongUTF8 | ExtendedUTF8)

	utf16RuneDisallowedMask    = ^(Supplementary | NonCharacter | SurrogatePair)
	nonUTF16RuneDisallowedMask = ^(Supplementary | NonCharacter)

	useReplacementMask = NotDecodable | NonCharacter | IrregularForm
)

// Any reports whether any diagnostic outside the reserved byte-index bits
// is set.
func (d Diag) Any() bool { return d&^byteIndexMask != 0 }

// None reports whether no diagnostic is set.
func (d Diag) None() bool { return !d.Any() }

// AnyOf reports whether any bit of mask is set.
func (d Diag) AnyOf(mask Diag) bool { return d&mask != 0 }

// NoneOf reports whether no bit of mask is set.
func (d Diag) NoneOf(mask Diag) bool { return d&mask == 0 }

// All reports whether every bit of mask is set.
func (d Diag) All(mask Diag) bool { return d&mask == mask }

// HasFailed reports whether the summary Failed bit is set.
func (d Diag) HasFailed() bool { return d.AnyOf(Failed) }

// Error reports whether any hard-error bit is set.
func (d Diag) Error() bool { return d.AnyOf(errorsMask) }

// NoError reports whether no hard-error bit is set. Warnings may still be
// present.
func (d Diag) NoError() bool { return !d.Error() }

// BufferError reports whether the cursor itself was rejected (nil buffer,
// bad offset, misalignment).
func (d Diag) BufferError() bool { return d.AnyOf(bufferErrorsMask) }

// IsRuneValue reports whether no bit is set other than Supplementary,
// NonCharacter, SurrogatePair and the irregular-form warnings
// (IrregularForm, ModifiedUTF8, OverlongUTF8, ExtendedUTF8). Errors,
// unpaired surrogates, DelimitString, the extended and invalid ranges,
// TruncatedPair and ReadExhausted all disqualify the value.
func (d Diag) IsRuneValue() bool { return d.NoneOf(runeDisallowedMask) }

// IsStrictRune is the stricter per-encoding variant of IsRuneValue: the
// UTF-8 and UTF-32 strict tags tolerate the supplementary and
// non-character warnings, and the UTF-16 tags additionally tolerate the
// surrogate-pair warning since pairing is the normal encoding there.
func (d Diag) IsStrictRune(sub SubType) bool {
	switch sub {
	case SubUTF8ns, SubUTF8st, SubUTF32le, SubUTF32be:
		return d.NoneOf(nonUTF16RuneDisallowedMask)
	case SubUTF16le, SubUTF16be:
		return d.NoneOf(utf16RuneDisallowedMask)
	default:
		return false
	}
}

// UseReplacementCharacter reports whether a consumer rendering the result
// should substitute U+FFFD.
func (d Diag) UseReplacementCharacter() bool { return d.AnyOf(useReplacementMask) }

// ErrorsOnly returns the hard-error bits.
func (d Diag) ErrorsOnly() Diag { return d & errorsMask }

// WarningsOnly returns the warning bits.
func (d Diag) WarningsOnly() Diag { return d & warningsMask }

// BufferErrorsOnly returns the buffer-error bits.
func (d Diag) BufferErrorsOnly() Diag { return d & bufferErrorsMask }

// ByteIndex returns the relative offset (0..7) of the first offending byte
// within the failed sequence, or 0 when not applicable.
func (d Diag) ByteIndex() uint32 { return uint32(d & byteIndexMask) }

// WithByteIndex returns a copy of d carrying the given byte index in the
// reserved low bits.
func (d Diag) WithByteIndex(index uint32) Diag {
	return (d &^ byteIndexMask) | (Diag(index) & byteIndexMask)
}

var diagNames = []struct {
	bit  Diag
	name string
}{
	{Failed, "Failed"},
	{InvalidBuffer, "InvalidBuffer"},
	{InvalidOffset, "InvalidOffset"},
	{MisalignedOffset, "MisalignedOffset"},
	{MisalignedLength, "MisalignedLength"},
	{WriteOverflow, "WriteOverflow"},
	{ReadTruncated, "ReadTruncated"},
	{ReadExhausted, "ReadExhausted"},
	{NotEncodable, "NotEncodable"},
	{NotDecodable, "NotDecodable"},
	{InvalidPoint, "InvalidPoint"},
	{ExtendedUCS4, "ExtendedUCS4"},
	{Supplementary, "Supplementary"},
	{NonCharacter, "NonCharacter"},
	{TruncatedPair, "TruncatedPair"},
	{SurrogatePair, "SurrogatePair"},
	{HighSurrogate, "HighSurrogate"},
	{LowSurrogate, "LowSurrogate"},
	{DelimitString, "DelimitString"},
	{IrregularForm, "IrregularForm"},
	{BadSizeUTF8, "BadSizeUTF8"},
	{ModifiedUTF8, "ModifiedUTF8"},
	{OverlongUTF8, "OverlongUTF8"},
	{ExtendedUTF8, "ExtendedUTF8"},
	{Untransformable, "Untransformable"},
	{NotEnoughBits, "NotEnoughBits"},
	{DisallowedByte, "DisallowedByte"},
	{UnexpectedByte, "UnexpectedByte"},
}

// String renders the set bits as "A|B|C" for logs and test failures, with
// the byte index appended as "@n" when non-zero. The clean value renders
// as "None".
func (d Diag) String() string {
	if d.None() && d.ByteIndex() == 0 {
		return "None"
	}
	var sb strings.Builder
	for _, n := range diagNames {
		if d.AnyOf(n.bit) {
			if sb.Len() > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(n.name)
		}
	}
	if i := d.ByteIndex(); i != 0 {
		sb.WriteByte('@')
		sb.WriteByte('0' + byte(i))
	}
	return sb.String()
}
