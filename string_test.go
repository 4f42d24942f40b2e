package jsondom

import (
	"testing"
)

func TestSprintf(t *testing.T) {
	tests := []struct {
		v    *Value
		spec string
		want string
	}{
		{FromNumber(3.5), "%.1f", "3.5"},
		{FromNumber(3.5), "%8.3f", "   3.500"},
		{FromNumber(1234.5), "%e", "1.234500e+03"},
		{FromNumber(0.5), "%G", "0.5"},
		{FromNumber(42), "%05d", "00042"},
		{FromNumber(42), "%i", "42"},
		{FromNumber(42), "%u", "42"},
		{FromNumber(-1), "%lu", "18446744073709551615"},
		{FromNumber(-1), "%x", "ffffffffffffffff"},
		{FromNumber(-2), "%o", "1777777777777777777776"},
		{FromNumber(42), "%lld", "42"},
		{FromNumber(42), "%ld", "42"},
		{FromNumber(42.9), "%d", "42"},
		{FromNumber(-3), "%+d", "-3"},
		{FromNumber(255), "%x", "ff"},
		{FromNumber(255), "%X", "FF"},
		{FromNumber(8), "%o", "10"},
		{FromNumber(65), "%c", "A"},
		{FromNumber(255), "%p", "0xff"},
		{FromNumber(1), "%s", "{wrong fmt}"},
		{FromNumber(1), "%q", "{wrong fmt}"},
		{FromBool(true), "%d", "1"},
		{FromBool(false), "%.1f", "0.0"},
		{Null(), "%s", "null"},
		{Null(), "%6s", "  null"},
		{FromString("abc"), "%s", "abc"},
		{FromString("abc"), "%-5s|", "abc  |"},
		{FromString("abc"), "%5s", "  abc"},
		{NewObject(), "%s", ""},
		{FromNumbers([]int{1}), "%d", ""},
		{FromRaw("1"), "%d", ""},
		{&Value{}, "%d", ""},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			if got := tt.v.Sprintf(tt.spec); got != tt.want {
				t.Errorf("Sprintf(%q) of %s = %q, want %q", tt.spec, tt.v.Type(), got, tt.want)
			}
		})
	}
}

func TestSprintfBadSpec(t *testing.T) {
	for _, spec := range []string{"", "d", "x%d"} {
		expectPanic(t, ErrBadFormatSpec, func() { FromNumber(1).Sprintf(spec) })
	}
}

func TestStrings(t *testing.T) {
	v := mustParse(t, `{"a":[1,{"b":"c"}],"e":{}}`)
	if got := v.String(); got != `{"a":[1,{"b":"c"}],"e":{}}` {
		t.Errorf("String() = %s", got)
	}
	want := "{\n  \"a\": [\n    1,\n    {\n      \"b\": \"c\"\n    }\n  ],\n  \"e\": {}\n}"
	if got := v.FormattedString(); got != want {
		t.Errorf("FormattedString() = %q, want %q", got, want)
	}
	if got := v.Lookup("a[1]").String(); got != `{"b":"c"}` {
		t.Errorf("String() of a subtree = %s", got)
	}
	if (&Value{}).String() != "" || (&Value{}).FormattedString() != "" {
		t.Error("empty handle prints")
	}
	if _, err := (&Value{}).YAML(); err == nil {
		t.Error("YAML() of an empty handle succeeded")
	}
}
