package utf

// Handler bundles the codec primitives for one encoding tag with a fixed
// flag combination. Handlers are process-wide singletons obtained from
// GetHandler, GetTypeHandler or GetOtherHandler; they are stateless,
// immutable and safe for concurrent use.
//
// Get/Set/SetBOM/SetNull report the byte count without moving the cursor;
// the Read/Write wrappers advance Text.Offset by the reported count.
type Handler struct {
	typ    Type
	report SubType // what SubType() reports (differs for the CESU4 aliases)
	unit   uint32
	bom    uint32
	family family

	cesu     bool
	java     bool
	strict   bool
	coalesce bool
	le       bool
	ucs2     bool
	ucs4     bool
	ascii    bool
}

// family selects the primitive set a handler dispatches to.
type family uint8

const (
	familyUTF8 family = iota
	familyUTF16
	familyUTF32
	familyBYTE
	familyCP1252
)

// Type returns the handler's encoding family tag.
func (h *Handler) Type() Type { return h.typ }

// SubType returns the handler's encoding tag. The CESU4le and CESU4be
// handlers report CESU32le and CESU32be; whether those are intentional
// aliases or distinct encodings is an open question, so both tags resolve
// to the UCS4-enabled CESU-32 behaviour.
func (h *Handler) SubType() SubType { return h.report }

// UnitSize returns the code-unit size in bytes (1, 2 or 4).
func (h *Handler) UnitSize() uint32 { return h.unit }

// Len returns the encoded byte length of r under this handler, or 0 when
// r is not encodable.
func (h *Handler) Len(r Rune) uint32 {
	switch h.family {
	case familyUTF8:
		return LenUTF8(r, h.cesu, h.java)
	case familyUTF16:
		return LenUTF16(r, h.ucs2)
	case familyUTF32:
		return LenUTF32(r, h.cesu, h.ucs4)
	case familyBYTE:
		return LenBYTE(r, h.ascii)
	default:
		return LenCP1252(r, h.strictness())
	}
}

// LenBOM returns the byte length of the handler's byte order mark (0 when
// the encoding has none).
func (h *Handler) LenBOM() uint32 { return h.bom }

// LenNull returns the byte length of the encoded U+0000.
func (h *Handler) LenNull() uint32 { return h.unit }

func (h *Handler) strictness() CP1252Strictness {
	if h.strict {
		return StrictUndefined
	}
	return WindowsCompatible
}

// Get decodes one code-point at the cursor position.
func (h *Handler) Get(t *Text) (r Rune, bytes uint32, errs Diag) {
	switch h.family {
	case familyUTF8:
		return DecodeUTF8(t, h.cesu, h.java, h.strict, h.coalesce)
	case familyUTF16:
		return DecodeUTF16(t, h.le, h.ucs2)
	case familyUTF32:
		return DecodeUTF32(t, h.le, h.cesu, h.ucs4)
	case familyBYTE:
		return DecodeBYTE(t, h.ascii, h.coalesce)
	default:
		return DecodeCP1252(t, h.strict, h.coalesce)
	}
}

// Set encodes one code-point at the cursor position.
func (h *Handler) Set(t *Text, r Rune) (bytes uint32, errs Diag) {
	switch h.family {
	case familyUTF8:
		return EncodeUTF8(t, r, h.cesu, h.java)
	case familyUTF16:
		return EncodeUTF16(t, r, h.le, h.ucs2)
	case familyUTF32:
		return EncodeUTF32(t, r, h.le, h.cesu, h.ucs4)
	case familyBYTE:
		return EncodeBYTE(t, r, h.ascii)
	default:
		return EncodeCP1252(t, r, h.strict)
	}
}

// SetBOM writes the handler's byte order mark at the cursor position.
// CP-1252 has no BOM: zero bytes and success.
func (h *Handler) SetBOM(t *Text) (bytes uint32, errs Diag) {
	switch h.family {
	case familyUTF16:
		return EncodeBOMUTF16(t, h.le)
	case familyUTF32:
		return EncodeBOMUTF32(t, h.le)
	case familyCP1252:
		return 0, 0
	default:
		return EncodeBOMUTF8(t)
	}
}

// SetNull writes the encoded U+0000 at the cursor position.
func (h *Handler) SetNull(t *Text) (bytes uint32, errs Diag) {
	switch h.family {
	case familyUTF16:
		return EncodeNullUTF16(t)
	case familyUTF32:
		return EncodeNullUTF32(t)
	default:
		return EncodeNullUTF8(t)
	}
}

// Step moves the cursor forward by up to count code-points and returns
// the count consumed.
func (h *Handler) Step(t *Text, count uint32) uint32 {
	switch h.family {
	case familyUTF8:
		return StepUTF8(t, count, h.cesu, h.java, h.strict, h.coalesce)
	case familyUTF16:
		return StepUTF16(t, count, h.le, h.ucs2)
	case familyUTF32:
		return StepUTF32(t, count, h.le, h.cesu)
	case familyBYTE:
		return StepBYTE(t, count, h.ascii, h.coalesce)
	default:
		return StepCP1252(t, count, h.strict, h.coalesce)
	}
}

// Back moves the cursor backward by up to count code-points and returns
// the count consumed.
func (h *Handler) Back(t *Text, count uint32) uint32 {
	switch h.family {
	case familyUTF8:
		return BackUTF8(t, count, h.cesu, h.java, h.strict, h.coalesce)
	case familyUTF16:
		return BackUTF16(t, count, h.le, h.ucs2)
	case familyUTF32:
		return BackUTF32(t, count, h.le, h.cesu)
	case familyBYTE:
		return BackBYTE(t, count, h.ascii, h.coalesce)
	default:
		return BackCP1252(t, count, h.strict, h.coalesce)
	}
}

// Read decodes one code-point and advances the cursor by the consumed
// byte count.
func (h *Handler) Read(t *Text) (Rune, Diag) {
	r, bytes, errs := h.Get(t)
	t.Offset += bytes
	return r, errs
}

// Write encodes one code-point and advances the cursor by the written
// byte count.
func (h *Handler) Write(t *Text, r Rune) Diag {
	bytes, errs := h.Set(t, r)
	t.Offset += bytes
	return errs
}

// WriteBOM writes the byte order mark and advances the cursor.
func (h *Handler) WriteBOM(t *Text) Diag {
	bytes, errs := h.SetBOM(t)
	t.Offset += bytes
	return errs
}

// WriteNull writes the encoded U+0000 and advances the cursor.
func (h *Handler) WriteNull(t *Text) Diag {
	bytes, errs := h.SetNull(t)
	t.Offset += bytes
	return errs
}

// Validate reads the buffer from the cursor position to the end,
// accumulating warnings and stopping at the first hard error. The
// caller's cursor is not moved.
func (h *Handler) Validate(t *Text) Diag {
	errs := checkText(t)
	if errs.Error() {
		return errs
	}
	scan := *t
	for scan.Offset < scan.Length() {
		_, read := h.Read(&scan)
		errs |= read
		if errs.Error() {
			break
		}
	}
	return errs
}

// GetNLF decodes one code-point with line feeds normalized: U+000A,
// U+000B, U+000C, U+000D, U+0085, U+2028 and U+2029 all produce U+000A,
// and the two-scalar sequences CR LF and LF CR collapse into a single
// U+000A consuming both. The pairing rule: when the first code-point is
// LF or CR and the next one is its XOR with 7 (CR<->LF), both are
// consumed.
func (h *Handler) GetNLF(t *Text) (r Rune, bytes uint32, errs Diag) {
	r, bytes, errs = h.Get(t)
	if errs.Error() {
		return r, bytes, errs
	}
	switch r {
	case 0x0a, 0x0d:
		// possible { CR, LF } or { LF, CR } pairing
		next := Text{Buffer: t.Buffer, Offset: t.Offset + bytes}
		pairing, extra, check := h.Get(&next)
		if pairing == r^0x07 {
			bytes += extra
			errs |= check
		}
		r = 0x0a
	case 0x0b, 0x0c, 0x85, 0x2028, 0x2029:
		r = 0x0a
	}
	return r, bytes, errs
}

// ReadNLF is GetNLF plus cursor advance.
func (h *Handler) ReadNLF(t *Text) (Rune, Diag) {
	r, bytes, errs := h.GetNLF(t)
	t.Offset += bytes
	return r, errs
}

// GetLine reads normalized code-points until a line feed or U+0000 is
// produced and returns a sub-view covering the bytes before the
// terminator, plus the byte count including the terminator. At the end of
// the buffer the remainder is returned as the final line.
func (h *Handler) GetLine(t *Text) (line Text, bytes uint32, errs Diag) {
	errs = checkText(t)
	if errs.Error() {
		return line, 0, errs
	}
	scan := Text{Buffer: t.Buffer[t.Offset:]}
	for {
		r, b, e := h.GetNLF(&scan)
		bytes = b
		errs |= e
		if errs.Error() {
			return line, bytes, errs
		}
		if r == 0x0a || r == 0x0000 {
			bytes += scan.Offset
			line = Text{Buffer: scan.Buffer[:scan.Offset]}
			return line, bytes, errs
		}
		scan.Offset += bytes
	}
}

// ReadLine is GetLine plus cursor advance past the line and its
// terminator.
func (h *Handler) ReadLine(t *Text) (line Text, errs Diag) {
	line, bytes, errs := h.GetLine(t)
	t.Offset += bytes
	return line, errs
}
