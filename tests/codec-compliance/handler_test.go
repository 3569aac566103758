package tests

import (
	"bytes"
	"testing"

	utf "github.com/suiteutf/utf.go/runtime"
)

func TestHandlerTable(t *testing.T) {
	for _, sub := range utf.SubTypes() {
		h := utf.GetHandler(sub)
		if h == nil {
			t.Fatalf("%v: no handler", sub)
		}
		switch sub {
		case utf.SubCESU4le:
			if h.SubType() != utf.SubCESU32le {
				t.Errorf("CESU4le reports %v", h.SubType())
			}
		case utf.SubCESU4be:
			if h.SubType() != utf.SubCESU32be {
				t.Errorf("CESU4be reports %v", h.SubType())
			}
		default:
			if h.SubType() != sub {
				t.Errorf("%v reports %v", sub, h.SubType())
			}
		}
		switch h.UnitSize() {
		case 1, 2, 4:
		default:
			t.Errorf("%v: unit size %d", sub, h.UnitSize())
		}
		if h.LenNull() != h.UnitSize() {
			t.Errorf("%v: NULL length %d, unit %d", sub, h.LenNull(), h.UnitSize())
		}
		if bom := h.LenBOM(); bom != 0 && bom%h.UnitSize() != 0 {
			t.Errorf("%v: BOM length %d not a unit multiple", sub, bom)
		}
	}
}

func TestHandlerFactoryDefaults(t *testing.T) {
	// unknown values map to the Java-modified strict UTF-8 handler
	fallback := utf.GetHandler(utf.SubJUTF8st)
	if utf.GetHandler(-1) != fallback || utf.GetHandler(1000) != fallback {
		t.Fatal("unknown SubType does not fall back to JUTF8st")
	}
	if utf.GetTypeHandler(-1) != fallback || utf.GetTypeHandler(1000) != fallback {
		t.Fatal("unknown Type does not fall back to JUTF8st")
	}
	if utf.GetOtherHandler(-1) != fallback || utf.GetOtherHandler(1000) != fallback {
		t.Fatal("unknown OtherType does not fall back to JUTF8st")
	}

	typeWant := map[utf.Type]utf.SubType{
		utf.TypeUTF8:    utf.SubUTF8st,
		utf.TypeUTF16le: utf.SubUTF16le,
		utf.TypeUTF16be: utf.SubUTF16be,
		utf.TypeUTF32le: utf.SubUTF32le,
		utf.TypeUTF32be: utf.SubUTF32be,
		utf.TypeOther:   utf.SubJUTF8st,
	}
	for typ, sub := range typeWant {
		if got := utf.GetTypeHandler(typ).SubType(); got != sub {
			t.Errorf("GetTypeHandler(%v) = %v, want %v", typ, got, sub)
		}
		if utf.GetTypeHandler(typ).Type() != utf.GetHandler(sub).Type() {
			t.Errorf("GetTypeHandler(%v) family mismatch", typ)
		}
	}

	otherWant := map[utf.OtherType]utf.SubType{
		utf.OtherJUTF8:  utf.SubJUTF8st,
		utf.OtherLatin1: utf.SubBYTEns,
		utf.OtherASCII:  utf.SubASCIIns,
		utf.OtherCP1252: utf.SubCP1252st,
	}
	for other, sub := range otherWant {
		if got := utf.GetOtherHandler(other).SubType(); got != sub {
			t.Errorf("GetOtherHandler(%v) = %v, want %v", other, got, sub)
		}
	}
}

func TestBOMSequences(t *testing.T) {
	cases := []struct {
		sub utf.SubType
		bom []byte
	}{
		{utf.SubUTF8, []byte{0xef, 0xbb, 0xbf}},
		{utf.SubJUTF8st, []byte{0xef, 0xbb, 0xbf}},
		{utf.SubCESU8, []byte{0xef, 0xbb, 0xbf}},
		{utf.SubUTF16le, []byte{0xff, 0xfe}},
		{utf.SubUTF16be, []byte{0xfe, 0xff}},
		{utf.SubUCS2le, []byte{0xff, 0xfe}},
		{utf.SubUTF32le, []byte{0xff, 0xfe, 0x00, 0x00}},
		{utf.SubUTF32be, []byte{0x00, 0x00, 0xfe, 0xff}},
		{utf.SubCESU4be, []byte{0x00, 0x00, 0xfe, 0xff}},
		{utf.SubBYTE, []byte{0xef, 0xbb, 0xbf}},
		{utf.SubASCIIns, []byte{0xef, 0xbb, 0xbf}},
		{utf.SubCP1252, nil},
		{utf.SubCP1252st, nil},
	}
	for _, tc := range cases {
		h := utf.GetHandler(tc.sub)
		buf := make([]byte, 4)
		enc := utf.Text{Buffer: buf}
		errs := h.WriteBOM(&enc)
		if errs.Any() {
			t.Errorf("%v: WriteBOM diagnostics %v", tc.sub, errs)
			continue
		}
		if enc.Offset != uint32(len(tc.bom)) {
			t.Errorf("%v: BOM wrote %d bytes, want %d", tc.sub, enc.Offset, len(tc.bom))
			continue
		}
		if !bytes.Equal(buf[:len(tc.bom)], tc.bom) {
			t.Errorf("%v: BOM % x, want % x", tc.sub, buf[:len(tc.bom)], tc.bom)
		}
		if h.LenBOM() != uint32(len(tc.bom)) {
			t.Errorf("%v: LenBOM %d, want %d", tc.sub, h.LenBOM(), len(tc.bom))
		}
	}
}

func TestNullSequences(t *testing.T) {
	for _, sub := range utf.SubTypes() {
		h := utf.GetHandler(sub)
		buf := []byte{0xaa, 0xaa, 0xaa, 0xaa}
		enc := utf.Text{Buffer: buf}
		if errs := h.WriteNull(&enc); errs.Any() {
			t.Errorf("%v: WriteNull diagnostics %v", sub, errs)
			continue
		}
		if enc.Offset != h.LenNull() {
			t.Errorf("%v: NULL wrote %d bytes, want %d", sub, enc.Offset, h.LenNull())
		}
		for i := uint32(0); i < enc.Offset; i++ {
			if buf[i] != 0 {
				t.Errorf("%v: NULL byte %d = %#x", sub, i, buf[i])
			}
		}
	}
}

// sample of valid, non-surrogate, non-non-character code-points covering
// every encoded width
var roundTripSample = []utf.Rune{
	0x00, 0x01, 'A', 0x7f, 0x80, 0xff, 0x100, 0x7ff,
	0x800, 0x20ac, 0xd7ff, 0xe000, 0xfffd,
	0x10000, 0x1f600, 0x10ffff,
}

// TestRoundTripAllHandlers: decode(encode(s)) == s with consistent byte
// counts for every handler and every encodable sample code-point.
func TestRoundTripAllHandlers(t *testing.T) {
	for _, sub := range utf.SubTypes() {
		h := utf.GetHandler(sub)
		for _, r := range roundTripSample {
			want := h.Len(r)
			if want == 0 {
				continue
			}
			buf := make([]byte, 16)
			enc := utf.Text{Buffer: buf}
			n, errs := h.Set(&enc, r)
			if errs.Error() {
				t.Errorf("%v U+%04X: encode failed: %v", sub, r, errs)
				continue
			}
			if n != want {
				t.Errorf("%v U+%04X: encode bytes %d, want Len %d", sub, r, n, want)
				continue
			}
			dec := utf.Text{Buffer: buf[:n]}
			got, m, errs := h.Get(&dec)
			if errs.Error() {
				t.Errorf("%v U+%04X: decode failed: %v", sub, r, errs)
				continue
			}
			if got != r || m != n {
				t.Errorf("%v U+%04X: decode = U+%04X in %d bytes (encoded %d)", sub, r, got, m, n)
			}
		}
	}
}

// TestStreamingRoundTrip: concatenated encode then streaming decode
// yields the original sequence.
func TestStreamingRoundTrip(t *testing.T) {
	for _, sub := range utf.SubTypes() {
		h := utf.GetHandler(sub)
		var wrote []utf.Rune
		enc := utf.Text{Buffer: make([]byte, 256)}
		for _, r := range roundTripSample {
			if r == 0 || h.Len(r) == 0 {
				continue
			}
			if errs := h.Write(&enc, r); errs.Error() {
				t.Fatalf("%v U+%04X: write failed: %v", sub, r, errs)
			}
			wrote = append(wrote, r)
		}
		dec := utf.Text{Buffer: enc.Buffer[:enc.Offset]}
		var read []utf.Rune
		for dec.Offset < dec.Length() {
			r, errs := h.Read(&dec)
			if errs.Error() {
				t.Fatalf("%v: read failed at offset %d: %v", sub, dec.Offset, errs)
			}
			read = append(read, r)
		}
		if len(read) != len(wrote) {
			t.Fatalf("%v: read %d code-points, wrote %d", sub, len(read), len(wrote))
		}
		for i := range read {
			if read[i] != wrote[i] {
				t.Fatalf("%v: position %d = U+%04X, want U+%04X", sub, i, read[i], wrote[i])
			}
		}
	}
}

func TestValidate(t *testing.T) {
	h := utf.GetHandler(utf.SubUTF8)

	clean := utf.Text{Buffer: []byte("caf\xc3\xa9 \xf0\x9f\x98\x80")}
	if errs := h.Validate(&clean); errs.Any() {
		if errs.Error() {
			t.Fatalf("clean text failed validation: %v", errs)
		}
		if errs != utf.Supplementary {
			t.Fatalf("clean text warnings: %v", errs)
		}
	}
	if clean.Offset != 0 {
		t.Fatal("Validate moved the caller's cursor")
	}

	// a noncharacter accumulates a warning without stopping the scan
	warn := utf.Text{Buffer: []byte("a\xef\xb7\x90b")} // U+FDD0
	errs := h.Validate(&warn)
	if errs.Error() {
		t.Fatalf("warning-only text failed: %v", errs)
	}
	if !errs.AnyOf(utf.NonCharacter) {
		t.Fatalf("noncharacter warning lost: %v", errs)
	}

	// a hard failure stops the scan
	bad := utf.Text{Buffer: []byte{'a', 0xfe, 'b'}}
	errs = h.Validate(&bad)
	if !errs.HasFailed() || !errs.AnyOf(utf.NotDecodable) {
		t.Fatalf("malformed text passed: %v", errs)
	}
}

func TestReadLine(t *testing.T) {
	h := utf.GetHandler(utf.SubUTF8)
	buf := utf.Text{Buffer: []byte("abc\r\ndef\nghi")}

	line, errs := h.ReadLine(&buf)
	if errs.Error() {
		t.Fatalf("line 1: %v", errs)
	}
	if string(line.Buffer) != "abc" {
		t.Fatalf("line 1 = %q", line.Buffer)
	}
	if buf.Offset != 5 {
		t.Fatalf("line 1 consumed %d bytes, want 5", buf.Offset)
	}

	line, errs = h.ReadLine(&buf)
	if errs.Error() || string(line.Buffer) != "def" {
		t.Fatalf("line 2 = %q, %v", line.Buffer, errs)
	}
	if buf.Offset != 9 {
		t.Fatalf("line 2 consumed to offset %d, want 9", buf.Offset)
	}

	// the unterminated remainder is the final line
	line, errs = h.ReadLine(&buf)
	if errs.Error() || string(line.Buffer) != "ghi" {
		t.Fatalf("line 3 = %q, %v", line.Buffer, errs)
	}
	if buf.Offset != buf.Length() {
		t.Fatalf("line 3 left offset %d", buf.Offset)
	}
}

func TestReadLineNullTerminated(t *testing.T) {
	h := utf.GetHandler(utf.SubUTF16le)
	// "hi\x00" in UTF-16 LE
	buf := utf.Text{Buffer: []byte{'h', 0, 'i', 0, 0, 0}}
	line, errs := h.ReadLine(&buf)
	if errs.Error() {
		t.Fatalf("null-terminated line: %v", errs)
	}
	if !bytes.Equal(line.Buffer, []byte{'h', 0, 'i', 0}) {
		t.Fatalf("line = % x", line.Buffer)
	}
	if buf.Offset != 6 {
		t.Fatalf("offset = %d, want 6", buf.Offset)
	}
}
