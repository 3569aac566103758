package utf

// Byte order marker and NULL code-point fast encoders. Like the code-point
// encoders these write at the cursor position without moving it.

// EncodeBOMUTF8 writes the UTF-8 byte order mark EF BB BF.
func EncodeBOMUTF8(t *Text) (bytes uint32, errs Diag) {
	errs = checkText(t)
	if errs.NoError() {
		if t.Remaining() < 3 {
			errs |= Failed | WriteOverflow
		} else {
			buf := t.Buffer[t.Offset:]
			buf[0] = 0xef
			buf[1] = 0xbb
			buf[2] = 0xbf
			bytes = 3
		}
	}
	return bytes, errs
}

// EncodeBOMUTF16 writes the UTF-16 byte order mark (FF FE or FE FF).
func EncodeBOMUTF16(t *Text, le bool) (bytes uint32, errs Diag) {
	errs = checkTextAligned(t, 1)
	if errs.NoError() {
		if t.Remaining() < 2 {
			errs |= Failed | WriteOverflow
		} else {
			buf := t.Buffer[t.Offset:]
			if le {
				buf[0] = 0xff
				buf[1] = 0xfe
			} else {
				buf[0] = 0xfe
				buf[1] = 0xff
			}
			bytes = 2
		}
	}
	return bytes, errs
}

// EncodeBOMUTF32 writes the UTF-32 byte order mark (FF FE 00 00 or
// 00 00 FE FF).
func EncodeBOMUTF32(t *Text, le bool) (bytes uint32, errs Diag) {
	errs = checkTextAligned(t, 3)
	if errs.NoError() {
		if t.Remaining() < 4 {
			errs |= Failed | WriteOverflow
		} else {
			buf := t.Buffer[t.Offset:]
			if le {
				buf[0] = 0xff
				buf[1] = 0xfe
				buf[2], buf[3] = 0, 0
			} else {
				buf[0], buf[1] = 0, 0
				buf[2] = 0xfe
				buf[3] = 0xff
			}
			bytes = 4
		}
	}
	return bytes, errs
}

// EncodeNullUTF8 writes a single zero byte.
func EncodeNullUTF8(t *Text) (bytes uint32, errs Diag) {
	errs = checkText(t)
	if errs.NoError() {
		if t.Remaining() < 1 {
			errs |= Failed | WriteOverflow
		} else {
			t.Buffer[t.Offset] = 0
			bytes = 1
		}
	}
	return bytes, errs
}

// EncodeNullUTF16 writes two zero bytes.
func EncodeNullUTF16(t *Text) (bytes uint32, errs Diag) {
	errs = checkTextAligned(t, 1)
	if errs.NoError() {
		if t.Remaining() < 2 {
			errs |= Failed | WriteOverflow
		} else {
			buf := t.Buffer[t.Offset:]
			buf[0], buf[1] = 0, 0
			bytes = 2
		}
	}
	return bytes, errs
}

// EncodeNullUTF32 writes four zero bytes.
func EncodeNullUTF32(t *Text) (bytes uint32, errs Diag) {
	errs = checkTextAligned(t, 3)
	if errs.NoError() {
		if t.Remaining() < 4 {
			errs |= Failed | WriteOverflow
		} else {
			buf := t.Buffer[t.Offset:]
			buf[0], buf[1], buf[2], buf[3] = 0, 0, 0, 0
			bytes = 4
		}
	}
	return bytes, errs
}
