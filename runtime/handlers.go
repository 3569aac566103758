package utf

// The handler table: one immutable entry per encoding tag. Every method of
// a handler derives from the same flag record, so Get, Set, Step and Back
// always agree on boundaries for a given tag.

func utf8Handler(sub SubType, cesu, java, strict, coalesce bool) Handler {
	return Handler{
		typ: TypeUTF8, report: sub, unit: 1, bom: 3,
		family: familyUTF8, cesu: cesu, java: java, strict: strict, coalesce: coalesce,
	}
}

func utf16Handler(sub SubType, le, ucs2 bool) Handler {
	typ := TypeUTF16be
	if le {
		typ = TypeUTF16le
	}
	return Handler{
		typ: typ, report: sub, unit: 2, bom: 2,
		family: familyUTF16, le: le, ucs2: ucs2,
	}
}

func utf32Handler(sub, report SubType, le, cesu, ucs4 bool) Handler {
	typ := TypeUTF32be
	if le {
		typ = TypeUTF32le
	}
	return Handler{
		typ: typ, report: report, unit: 4, bom: 4,
		family: familyUTF32, le: le, cesu: cesu, ucs4: ucs4,
	}
}

func byteHandler(sub SubType, ascii, coalesce bool) Handler {
	return Handler{
		typ: TypeOther, report: sub, unit: 1, bom: 3,
		family: familyBYTE, ascii: ascii, coalesce: coalesce,
	}
}

func cp1252Handler(sub SubType, strict, coalesce bool) Handler {
	return Handler{
		typ: TypeOther, report: sub, unit: 1, bom: 0,
		family: familyCP1252, strict: strict, coalesce: coalesce,
	}
}

var handlers = [subTypeCount]Handler{
	SubUTF8:     utf8Handler(SubUTF8, false, false, false, true),
	SubUTF8ns:   utf8Handler(SubUTF8ns, false, false, false, false),
	SubUTF8st:   utf8Handler(SubUTF8st, false, false, true, false),
	SubJUTF8:    utf8Handler(SubJUTF8, false, true, false, true),
	SubJUTF8ns:  utf8Handler(SubJUTF8ns, false, true, false, false),
	SubJUTF8st:  utf8Handler(SubJUTF8st, false, true, true, false),
	SubCESU8:    utf8Handler(SubCESU8, true, false, false, true),
	SubCESU8ns:  utf8Handler(SubCESU8ns, true, false, false, false),
	SubCESU8st:  utf8Handler(SubCESU8st, true, false, true, false),
	SubJCESU8:   utf8Handler(SubJCESU8, true, true, false, true),
	SubJCESU8ns: utf8Handler(SubJCESU8ns, true, true, false, false),
	SubJCESU8st: utf8Handler(SubJCESU8st, true, true, true, false),
	SubUTF16le:  utf16Handler(SubUTF16le, true, false),
	SubUTF16be:  utf16Handler(SubUTF16be, false, false),
	SubUCS2le:   utf16Handler(SubUCS2le, true, true),
	SubUCS2be:   utf16Handler(SubUCS2be, false, true),
	SubUTF32le:  utf32Handler(SubUTF32le, SubUTF32le, true, false, false),
	SubUTF32be:  utf32Handler(SubUTF32be, SubUTF32be, false, false, false),
	SubUCS4le:   utf32Handler(SubUCS4le, SubUCS4le, true, false, true),
	SubUCS4be:   utf32Handler(SubUCS4be, SubUCS4be, false, false, true),
	SubCESU32le: utf32Handler(SubCESU32le, SubCESU32le, true, true, false),
	SubCESU32be: utf32Handler(SubCESU32be, SubCESU32be, false, true, false),
	SubCESU4le:  utf32Handler(SubCESU4le, SubCESU32le, true, true, true),
	SubCESU4be:  utf32Handler(SubCESU4be, SubCESU32be, false, true, true),
	SubBYTE:     byteHandler(SubBYTE, false, true),
	SubBYTEns:   byteHandler(SubBYTEns, false, false),
	SubASCII:    byteHandler(SubASCII, true, true),
	SubASCIIns:  byteHandler(SubASCIIns, true, false),
	SubCP1252:   cp1252Handler(SubCP1252, false, true),
	SubCP1252ns: cp1252Handler(SubCP1252ns, false, false),
	SubCP1252st: cp1252Handler(SubCP1252st, true, false),
}

// GetHandler returns the handler for an encoding tag. Unknown tags map to
// the Java-modified strict UTF-8 handler, the safe default for text of
// unknown provenance.
func GetHandler(sub SubType) *Handler {
	if sub < 0 || sub >= subTypeCount {
		return &handlers[SubJUTF8st]
	}
	return &handlers[sub]
}

// typeDefaults maps each encoding family to its default tag.
var typeDefaults = [typeCount]SubType{
	TypeUTF8:    SubUTF8st,
	TypeUTF16le: SubUTF16le,
	TypeUTF16be: SubUTF16be,
	TypeUTF32le: SubUTF32le,
	TypeUTF32be: SubUTF32be,
	TypeOther:   SubJUTF8st,
}

// GetTypeHandler returns the default handler for an encoding family.
// Unknown values map to the Java-modified strict UTF-8 handler.
func GetTypeHandler(typ Type) *Handler {
	if typ < 0 || typ >= typeCount {
		return &handlers[SubJUTF8st]
	}
	return &handlers[typeDefaults[typ]]
}

// otherDefaults maps the non-UTF selectors to their tags.
var otherDefaults = [otherTypeCount]SubType{
	OtherJUTF8:  SubJUTF8st,
	OtherLatin1: SubBYTEns,
	OtherASCII:  SubASCIIns,
	OtherCP1252: SubCP1252st,
}

// GetOtherHandler returns the handler for a non-UTF encoding selector.
// Unknown values map to the Java-modified strict UTF-8 handler.
func GetOtherHandler(other OtherType) *Handler {
	if other < 0 || other >= otherTypeCount {
		return &handlers[SubJUTF8st]
	}
	return &handlers[otherDefaults[other]]
}
