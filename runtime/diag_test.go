package utf

import "testing"

func TestDiagZeroValue(t *testing.T) {
	var d Diag
	if d.Any() {
		t.Fatal("zero Diag reports Any")
	}
	if !d.None() {
		t.Fatal("zero Diag reports !None")
	}
	if d.HasFailed() || d.Error() {
		t.Fatal("zero Diag reports failure")
	}
	if d.String() != "None" {
		t.Fatalf("zero Diag renders %q", d.String())
	}
}

func TestDiagErrorAndWarningPartition(t *testing.T) {
	d := Failed | InvalidBuffer | ReadExhausted | InvalidPoint

	errs := d.ErrorsOnly()
	warns := d.WarningsOnly()

	if !errs.AnyOf(Failed) || !errs.AnyOf(InvalidBuffer) {
		t.Fatalf("ErrorsOnly lost error bits: %v", errs)
	}
	if errs.AnyOf(ReadExhausted) || errs.AnyOf(InvalidPoint) {
		t.Fatalf("ErrorsOnly kept warning bits: %v", errs)
	}
	if warns.AnyOf(Failed) || warns.AnyOf(InvalidBuffer) {
		t.Fatalf("WarningsOnly kept error bits: %v", warns)
	}
	if !warns.AnyOf(ReadExhausted) || !warns.AnyOf(InvalidPoint) {
		t.Fatalf("WarningsOnly lost warning bits: %v", warns)
	}
}

func TestDiagBufferErrors(t *testing.T) {
	d := InvalidBuffer | InvalidOffset
	if !d.BufferError() {
		t.Fatal("buffer errors not classified")
	}
	if Failed.BufferError() {
		t.Fatal("Failed alone classified as buffer error")
	}
}

func TestDiagByteIndex(t *testing.T) {
	var d Diag
	d = d.WithByteIndex(5)
	if d.ByteIndex() != 5 {
		t.Fatalf("ByteIndex = %d, want 5", d.ByteIndex())
	}
	// the reserved bits never count as diagnostics
	if d.Any() {
		t.Fatal("byte index alone satisfies Any")
	}
	d = d.WithByteIndex(0)
	if d.ByteIndex() != 0 {
		t.Fatalf("ByteIndex = %d, want 0", d.ByteIndex())
	}

	d = (NotDecodable | Failed).WithByteIndex(3)
	if d.ByteIndex() != 3 || !d.AnyOf(NotDecodable) {
		t.Fatalf("byte index clobbered flags: %v", d)
	}
}

func TestDiagReplacementCharacter(t *testing.T) {
	for _, d := range []Diag{NotDecodable, NonCharacter, IrregularForm} {
		if !d.UseReplacementCharacter() {
			t.Fatalf("%v should request replacement", d)
		}
	}
	if (Supplementary | SurrogatePair).UseReplacementCharacter() {
		t.Fatal("plain supplementary decode requests replacement")
	}
}

func TestDiagIsRuneValue(t *testing.T) {
	cases := []struct {
		d    Diag
		want bool
	}{
		{0, true},
		{Supplementary, true},
		{Supplementary | SurrogatePair, true},
		{NonCharacter, true},
		{ModifiedUTF8 | IrregularForm, true},
		{Failed | NotDecodable, false},
		{HighSurrogate, false},
		{DelimitString, false},
		{ReadExhausted, false},
	}
	for _, tc := range cases {
		if got := tc.d.IsRuneValue(); got != tc.want {
			t.Errorf("IsRuneValue(%v) = %v, want %v", tc.d, got, tc.want)
		}
	}
}

func TestDiagIsStrictRune(t *testing.T) {
	d := Supplementary | SurrogatePair
	if d.IsStrictRune(SubUTF8st) {
		t.Fatal("UTF8st tolerates the surrogate-pair bit")
	}
	if !d.IsStrictRune(SubUTF16le) {
		t.Fatal("UTF16le rejects its own pairing bit")
	}
	if !(Supplementary | NonCharacter).IsStrictRune(SubUTF32be) {
		t.Fatal("UTF32be rejects supplementary + non-character")
	}
	if (Diag(0)).IsStrictRune(SubCP1252) {
		t.Fatal("strict rune defined for a byte encoding")
	}
}

func TestDiagString(t *testing.T) {
	d := (Failed | NotDecodable | UnexpectedByte).WithByteIndex(2)
	if got := d.String(); got != "Failed|NotDecodable|UnexpectedByte@2" {
		t.Fatalf("String = %q", got)
	}
}
