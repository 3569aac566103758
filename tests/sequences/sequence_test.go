package tests

import (
	"testing"

	utf "github.com/suiteutf/utf.go/runtime"
)

// Buffers exercising clean text, surrogate pairs of every width, overlong
// and modified forms, truncation, illegal bytes and junk runs.
var utf8Corpus = [][]byte{
	{},
	{0x41},
	[]byte("A\xc3\xa9\xe2\x82\xac\xf0\x9f\x98\x80B"),
	{0xed, 0xa0, 0xbd, 0xed, 0xb8, 0x80},                   // CESU pair
	{0xed, 0xa0, 0xbd, 0x41},                               // lone high surrogate
	{0xed, 0xb0, 0x80},                                     // lone low surrogate
	{0xc0, 0x80},                                           // modified NULL
	{0xc1, 0x81},                                           // overlong
	{0xe0, 0x80, 0x80},                                     // overlong NULL
	{0xe0, 0xa0},                                           // truncated
	{0xe0, 0xa0, 0x41, 0x42},                               // bad continuation
	{0xfe, 0xff, 0x41},                                     // illegal bytes
	{0x80, 0x80, 0x80},                                     // junk continuations
	{0x80, 0x80, 0x41, 0x80},                               // junk around a scalar
	{0xf8, 0x88, 0x80, 0x80, 0x80},                         // 5-byte extended
	{0xfc, 0x84, 0x80, 0x80, 0x80, 0x80},                   // 6-byte extended
	{0xf0, 0x8d, 0xa0, 0x80, 0xed, 0xb0, 0x80},             // overlong high + low pair
	{0xed, 0xa0, 0x80, 0xf0, 0x8d, 0xb0, 0x80},             // high + overlong low pair
	{0x41, 0xed, 0xa0, 0xbd, 0xed, 0xb8, 0x80, 0xfe, 0x42}, // mixed
	{0xc2},             // truncated 2-byte
	{0x00, 0x41, 0x00}, // embedded delimiters
}

var utf16Corpus = [][]byte{
	{},
	{0x41, 0x00, 0x42, 0x00},
	{0x3d, 0xd8, 0x00, 0xde},             // surrogate pair (LE)
	{0x3d, 0xd8, 0x41, 0x00},             // lone high + scalar
	{0x00, 0xdc, 0x3d, 0xd8},             // low then high
	{0x3d, 0xd8},                         // high at end
	{0xfe, 0xff, 0x00, 0x00},             // nonchar + null
	{0x41, 0x00, 0x3d, 0xd8, 0x00, 0xde}, // scalar then pair
}

var utf32Corpus = [][]byte{
	{},
	{0x41, 0x00, 0x00, 0x00},
	{0x00, 0xd8, 0x00, 0x00, 0x00, 0xdc, 0x00, 0x00}, // surrogate pair units (LE)
	{0x00, 0xd8, 0x00, 0x00},                         // lone high unit
	{0x00, 0x00, 0x11, 0x00},                         // extended range
	{0x00, 0x00, 0x00, 0x80},                         // invalid range
}

var byteCorpus = [][]byte{
	{},
	{0x41, 0x42, 0x43},
	{0x41, 0x81, 0x42},
	{0x80, 0x81, 0x8d, 0x41, 0xff},
	{0x00, 0x41},
}

func corpusFor(sub utf.SubType) [][]byte {
	h := utf.GetHandler(sub)
	switch h.Type() {
	case utf.TypeUTF8:
		return utf8Corpus
	case utf.TypeUTF16le, utf.TypeUTF16be:
		return utf16Corpus
	case utf.TypeUTF32le, utf.TypeUTF32be:
		return utf32Corpus
	default:
		return byteCorpus
	}
}

// decodeOffsets walks the buffer with Get, returning the byte offset after
// every code-point.
func decodeOffsets(t *testing.T, h *utf.Handler, buf []byte) []uint32 {
	t.Helper()
	scan := utf.Text{Buffer: buf}
	var offsets []uint32
	for scan.Offset < scan.Length() {
		_, n, errs := h.Get(&scan)
		if errs.BufferError() {
			t.Fatalf("%v: buffer error mid-walk at %d: %v", h.SubType(), scan.Offset, errs)
		}
		if n == 0 {
			t.Fatalf("%v: no progress at offset %d (% x): %v", h.SubType(), scan.Offset, buf, errs)
		}
		scan.Offset += n
		offsets = append(offsets, scan.Offset)
	}
	return offsets
}

// stepOffsets walks the same buffer with Step(1).
func stepOffsets(t *testing.T, h *utf.Handler, buf []byte) []uint32 {
	t.Helper()
	scan := utf.Text{Buffer: buf}
	var offsets []uint32
	for scan.Offset < scan.Length() {
		if h.Step(&scan, 1) != 1 {
			t.Fatalf("%v: step stalled at offset %d (% x)", h.SubType(), scan.Offset, buf)
		}
		offsets = append(offsets, scan.Offset)
	}
	return offsets
}

// TestStepMatchesDecode: iterative decoding and iterative stepping visit
// identical byte offsets for every tag and corpus buffer.
func TestStepMatchesDecode(t *testing.T) {
	for _, sub := range utf.SubTypes() {
		h := utf.GetHandler(sub)
		for _, buf := range corpusFor(sub) {
			if uint32(len(buf))%h.UnitSize() != 0 {
				continue
			}
			decoded := decodeOffsets(t, h, buf)
			stepped := stepOffsets(t, h, buf)
			if len(decoded) != len(stepped) {
				t.Errorf("%v % x: decode %d points %v, step %d points %v",
					sub, buf, len(decoded), decoded, len(stepped), stepped)
				continue
			}
			for i := range decoded {
				if decoded[i] != stepped[i] {
					t.Errorf("%v % x: boundary %d: decode %d, step %d",
						sub, buf, i, decoded[i], stepped[i])
					break
				}
			}
		}
	}
}

// TestStepBackInverse: stepping n code-points forward then backing n
// returns the cursor to its start.
func TestStepBackInverse(t *testing.T) {
	for _, sub := range utf.SubTypes() {
		h := utf.GetHandler(sub)
		for _, buf := range corpusFor(sub) {
			if uint32(len(buf))%h.UnitSize() != 0 {
				continue
			}
			for request := uint32(1); request <= uint32(len(buf))+1; request++ {
				scan := utf.Text{Buffer: buf}
				stepped := h.Step(&scan, request)
				if stepped == 0 {
					if scan.Offset != 0 {
						t.Errorf("%v % x: zero steps moved the cursor to %d", sub, buf, scan.Offset)
					}
					continue
				}
				mid := scan.Offset
				backed := h.Back(&scan, stepped)
				if backed != stepped || scan.Offset != 0 {
					t.Errorf("%v % x: step(%d)=%d to offset %d; back(%d)=%d to offset %d",
						sub, buf, request, stepped, mid, stepped, backed, scan.Offset)
				}
			}
		}
	}
}

// TestStepCounts: skippers report the exact number of code-points the
// decoder finds, and never exceed the request.
func TestStepCounts(t *testing.T) {
	for _, sub := range utf.SubTypes() {
		h := utf.GetHandler(sub)
		for _, buf := range corpusFor(sub) {
			if uint32(len(buf))%h.UnitSize() != 0 {
				continue
			}
			total := uint32(len(decodeOffsets(t, h, buf)))
			scan := utf.Text{Buffer: buf}
			if got := h.Step(&scan, total+5); got != total {
				t.Errorf("%v % x: step(all) = %d, decode count %d", sub, buf, got, total)
			}
			if scan.Offset != scan.Length() {
				t.Errorf("%v % x: step(all) left offset %d of %d", sub, buf, scan.Offset, scan.Length())
			}

			if total > 1 {
				scan = utf.Text{Buffer: buf}
				if got := h.Step(&scan, total-1); got != total-1 {
					t.Errorf("%v % x: partial step = %d, want %d", sub, buf, got, total-1)
				}
			}
		}
	}
}

func FuzzStepMatchesDecode(f *testing.F) {
	for _, buf := range utf8Corpus {
		f.Add(buf)
	}
	subs := []utf.SubType{
		utf.SubUTF8, utf.SubUTF8ns, utf.SubUTF8st,
		utf.SubJUTF8, utf.SubJCESU8, utf.SubCESU8, utf.SubCESU8ns, utf.SubCESU8st,
		utf.SubBYTE, utf.SubASCII, utf.SubASCIIns, utf.SubCP1252, utf.SubCP1252st,
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 1024 {
			data = data[:1024]
		}
		for _, sub := range subs {
			h := utf.GetHandler(sub)

			scan := utf.Text{Buffer: data}
			var decoded []uint32
			for scan.Offset < scan.Length() {
				_, n, _ := h.Get(&scan)
				if n == 0 {
					t.Fatalf("%v: decode stalled at %d", sub, scan.Offset)
				}
				scan.Offset += n
				decoded = append(decoded, scan.Offset)
			}

			scan = utf.Text{Buffer: data}
			var stepped []uint32
			for scan.Offset < scan.Length() {
				if h.Step(&scan, 1) != 1 {
					t.Fatalf("%v: step stalled at %d", sub, scan.Offset)
				}
				stepped = append(stepped, scan.Offset)
			}

			if len(decoded) != len(stepped) {
				t.Fatalf("%v: decode %v != step %v", sub, decoded, stepped)
			}
			for i := range decoded {
				if decoded[i] != stepped[i] {
					t.Fatalf("%v: boundary %d: decode %d, step %d", sub, i, decoded[i], stepped[i])
				}
			}

			// forward then backward is the identity
			scan = utf.Text{Buffer: data}
			points := h.Step(&scan, uint32(len(data))+1)
			if backed := h.Back(&scan, points); backed != points || scan.Offset != 0 {
				t.Fatalf("%v: step %d, back %d, final offset %d", sub, points, backed, scan.Offset)
			}
		}
	})
}
