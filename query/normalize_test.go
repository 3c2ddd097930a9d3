package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePipeDelimitedList(t *testing.T) {
	out := Normalize(map[string]string{"storage": "128|256|512"})

	v := out["storage"]
	assert.Equal(t, List, v.Kind)
	assert.Equal(t, []Item{NumItem(128), NumItem(256), NumItem(512)}, v.List)
}

func TestNormalizeListMixesWordsAndNumbers(t *testing.T) {
	out := Normalize(map[string]string{"color": "space-gray|black|8"})

	v := out["color"]
	assert.Equal(t, List, v.Kind)
	assert.Equal(t, []Item{TextItem("space gray"), TextItem("black"), NumItem(8)}, v.List)
}

func TestNormalizeHyphenatedWordRestoresSpaces(t *testing.T) {
	out := Normalize(map[string]string{"color": "midnight-blue"})

	assert.Equal(t, TextValue("midnight blue"), out["color"])
}

func TestNormalizeRangeLiteralStaysText(t *testing.T) {
	// "100-200" has a numeric prefix, so the hyphen is a range separator
	// for the compiler, not a collapsed space.
	out := Normalize(map[string]string{"price": "100-200"})

	assert.Equal(t, TextValue("100-200"), out["price"])
}

func TestNormalizeBooleanKeys(t *testing.T) {
	out := Normalize(map[string]string{
		"freeCargo":   "true",
		"quickCharge": "false",
		"nfc":         "yes",
	})

	assert.Equal(t, BoolValue(true), out["freeCargo"])
	assert.Equal(t, BoolValue(false), out["quickCharge"])
	assert.Equal(t, BoolValue(false), out["nfc"])
}

func TestNormalizePlainNumber(t *testing.T) {
	out := Normalize(map[string]string{"ram": "16", "page": "3"})

	assert.Equal(t, NumberValue(16), out["ram"])
	assert.Equal(t, NumberValue(3), out["page"])
}

func TestNormalizeNumberTruncatesFraction(t *testing.T) {
	out := Normalize(map[string]string{"screenSize": "6.7"})

	assert.Equal(t, NumberValue(6), out["screenSize"])
}

func TestNormalizePlainTextFallsThrough(t *testing.T) {
	out := Normalize(map[string]string{"os": "android", "sort": "PRICE_BY_ASC"})

	assert.Equal(t, TextValue("android"), out["os"])
	assert.Equal(t, TextValue("PRICE_BY_ASC"), out["sort"])
}

func TestParseLeadingFloat(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"100", 100, true},
		{"100-200", 100, true},
		{"12.5kg", 12.5, true},
		{"-5", -5, true},
		{" 42", 42, true},
		{".5", 0.5, true},
		{"abc", 0, false},
		{"-lte", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseLeadingFloat(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, tc.in)
		}
	}
}
