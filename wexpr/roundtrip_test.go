package wexpr

import "testing"

// buildSample constructs an expression tree exercising every variant:
// nested arrays and maps, binary data, and values requiring escaping.
func buildSample() *Expression {
	root := CreateMap()
	root.MapSetValueForKey("name", CreateValue("wexpr"))
	root.MapSetValueForKey("quoted", CreateValue("needs \"quotes\" and spaces"))
	root.MapSetValueForKey("empty", CreateValue(""))
	root.MapSetValueForKey("blob", CreateBinaryData([]byte{0x00, 0x01, 0x02, 0xfe, 0xff}))

	list := CreateArray()
	list.ArrayAppend(CreateValue("a"))
	list.ArrayAppend(CreateNull())
	list.ArrayAppend(CreateValue("nil"))
	nested := CreateArray()
	nested.ArrayAppend(CreateValue("deep"))
	list.ArrayAppend(nested)
	root.MapSetValueForKey("list", list)

	return root
}

func TestTextRoundTripCompact(t *testing.T) {
	orig := buildSample()
	text := orig.ToText(0, WriteFlagCompact)

	got, err := ParseText(text, ParseFlagNone)
	if err != nil {
		t.Fatalf("ParseText(compact output) error = %v\noutput: %s", err, text)
	}
	if !got.Equal(orig) {
		t.Fatalf("compact round-trip mismatch\noutput: %s", text)
	}
}

func TestTextRoundTripHumanReadable(t *testing.T) {
	orig := buildSample()
	text := orig.ToText(0, WriteFlagHumanReadable)

	got, err := ParseText(text, ParseFlagNone)
	if err != nil {
		t.Fatalf("ParseText(human-readable output) error = %v\noutput: %s", err, text)
	}
	if !got.Equal(orig) {
		t.Fatalf("human-readable round-trip mismatch\noutput: %s", text)
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	orig := buildSample()
	chunk := orig.ToBinaryChunk()

	got, err := ParseBinaryChunk(chunk)
	if err != nil {
		t.Fatalf("ParseBinaryChunk error = %v", err)
	}
	if !got.Equal(orig) {
		t.Fatalf("binary round-trip mismatch")
	}
}

func TestCrossCodecEquivalence(t *testing.T) {
	orig := buildSample()

	fromText, err := ParseText(orig.ToText(0, WriteFlagCompact), ParseFlagNone)
	if err != nil {
		t.Fatalf("ParseText error = %v", err)
	}
	fromBinary, err := ParseBinaryChunk(orig.ToBinaryChunk())
	if err != nil {
		t.Fatalf("ParseBinaryChunk error = %v", err)
	}

	if !fromText.Equal(fromBinary) {
		t.Fatalf("text-parsed and binary-parsed trees are not structurally equal")
	}
}

func TestDocumentRoundTripViaReadDocument(t *testing.T) {
	orig := buildSample()

	textDoc := orig.ToText(0, WriteFlagHumanReadable)
	gotFromText, err := ReadDocument(textDoc)
	if err != nil {
		t.Fatalf("ReadDocument(text) error = %v", err)
	}
	if !gotFromText.Equal(orig) {
		t.Fatalf("ReadDocument(text) round-trip mismatch")
	}

	binDoc := append(FileHeader(), orig.ToBinaryChunk()...)
	gotFromBinary, err := ReadDocument(binDoc)
	if err != nil {
		t.Fatalf("ReadDocument(binary) error = %v", err)
	}
	if !gotFromBinary.Equal(orig) {
		t.Fatalf("ReadDocument(binary) round-trip mismatch")
	}
}

func TestReferenceExpansionDoesNotAppearInOutput(t *testing.T) {
	e := mustParse(t, "#( [x] shared *[x] )")
	text := string(e.ToText(0, WriteFlagCompact))
	want := "#(shared shared)"
	if text != want {
		t.Fatalf("ToText() = %q, want %q (reference table must not leak into output)", text, want)
	}
}
