package wexpr

import "testing"

func TestEmitCompactScenarios(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Expression
		want  string
	}{
		{"null", CreateNull, "nil"},
		{"invalid", CreateInvalid, ""},
		{"unquoted value", func() *Expression { return CreateValue("abc") }, "abc"},
		{"value needing quotes", func() *Expression { return CreateValue("has space") }, `"has space"`},
		{"value with quote and backslash", func() *Expression { return CreateValue(`a"b\c`) }, `"a\"b\\c"`},
		{"empty value quoted", func() *Expression { return CreateValue("") }, `""`},
		{"literal nil text quoted", func() *Expression { return CreateValue("nil") }, `"nil"`},
		{"binary data", func() *Expression { return CreateBinaryData([]byte("Hello")) }, "<SGVsbG8=>"},
		{"array", func() *Expression {
			a := CreateArray()
			a.ArrayAppend(CreateValue("a"))
			a.ArrayAppend(CreateValue("b"))
			a.ArrayAppend(CreateValue("c"))
			return a
		}, "#(a b c)"},
		{"map", func() *Expression {
			m := CreateMap()
			m.MapSetValueForKey("key1", CreateValue("value1"))
			m.MapSetValueForKey("key2", CreateValue("value with space"))
			return m
		}, `@(key1 value1 key2 "value with space")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(tt.build().ToText(0, WriteFlagCompact))
			if got != tt.want {
				t.Fatalf("ToText(0, Compact) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEmitHumanReadableArray(t *testing.T) {
	a := CreateArray()
	a.ArrayAppend(CreateValue("a"))
	a.ArrayAppend(CreateValue("b"))

	got := string(a.ToText(0, WriteFlagHumanReadable))
	want := "#(\n\ta\n\tb\n)"
	if got != want {
		t.Fatalf("ToText(0, HumanReadable) = %q, want %q", got, want)
	}
}

func TestEmitHumanReadableNestedIndent(t *testing.T) {
	inner := CreateArray()
	inner.ArrayAppend(CreateValue("x"))

	outer := CreateArray()
	outer.ArrayAppend(inner)

	got := string(outer.ToText(0, WriteFlagHumanReadable))
	want := "#(\n\t#(\n\t\tx\n\t)\n)"
	if got != want {
		t.Fatalf("ToText(0, HumanReadable) = %q, want %q", got, want)
	}
}

func TestEmitHumanReadableMap(t *testing.T) {
	m := CreateMap()
	m.MapSetValueForKey("a", CreateValue("1"))
	m.MapSetValueForKey("b", CreateValue("2"))

	got := string(m.ToText(0, WriteFlagHumanReadable))
	want := "@(\n\ta 1\n\tb 2\n)"
	if got != want {
		t.Fatalf("ToText(0, HumanReadable) = %q, want %q", got, want)
	}
}

func TestEmitStartIndent(t *testing.T) {
	a := CreateArray()
	a.ArrayAppend(CreateValue("x"))

	got := string(a.ToText(2, WriteFlagHumanReadable))
	want := "#(\n\t\t\tx\n\t\t)"
	if got != want {
		t.Fatalf("ToText(2, HumanReadable) = %q, want %q", got, want)
	}
}
