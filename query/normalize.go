package query

import (
	"strings"
)

// Keys whose values are coerced to booleans during normalization.
var booleanKeys = map[string]bool{
	"quickCharge":     true,
	"wirelessCharge":  true,
	"fiveG":           true,
	"nfc":             true,
	"externalStorage": true,
	"freeCargo":       true,
}

// IsBooleanKey reports whether values under key are boolean-coerced. The
// facet builder uses the same set to emit fixed true/false filter values.
func IsBooleanKey(key string) bool { return booleanKeys[key] }

// Normalize converts raw URL query parameters into typed values.
//
// Rules, in priority order per key:
//  1. a value containing "|" becomes a list; each element is either a number
//     (when it has a parseable numeric prefix) or a word with hyphens
//     restored to spaces
//  2. a hyphenated value with no numeric prefix is a word; hyphens become
//     spaces ("space-gray" was "space gray" before URL encoding). A value
//     like "100-200" has a numeric prefix and is left alone for the range
//     compiler
//  3. values under a boolean key become true only for the literal "true"
//  4. a numeric value without hyphens becomes an integer
//  5. everything else stays a string
func Normalize(raw map[string]string) map[string]Value {
	out := make(map[string]Value, len(raw))
	for key, v := range raw {
		switch {
		case strings.Contains(v, "|"):
			parts := strings.Split(v, "|")
			items := make([]Item, 0, len(parts))
			for _, el := range parts {
				if strings.Contains(el, "-") {
					items = append(items, TextItem(strings.ReplaceAll(el, "-", " ")))
				} else if n, ok := leadingInt(el); ok {
					items = append(items, NumItem(n))
				} else {
					items = append(items, TextItem(el))
				}
			}
			out[key] = ListValue(items)
		case strings.Contains(v, "-") && !hasNumericPrefix(v):
			out[key] = TextValue(strings.ReplaceAll(v, "-", " "))
		case booleanKeys[key]:
			out[key] = BoolValue(v == "true")
		default:
			if n, ok := leadingInt(v); ok && !strings.Contains(v, "-") {
				out[key] = NumberValue(n)
			} else {
				out[key] = TextValue(v)
			}
		}
	}
	return out
}

// hasNumericPrefix reports whether s starts with a parseable number after
// optional whitespace and sign, e.g. "100-200" or "12.5kg" but not "abc"
// or "-lte". This mirrors how the range syntax is distinguished from
// hyphenated words.
func hasNumericPrefix(s string) bool {
	_, ok := parseLeadingFloat(s)
	return ok
}

// leadingInt extracts the integer portion of a numeric prefix, truncating
// any fractional part ("12.9" becomes 12).
func leadingInt(s string) (int, bool) {
	f, ok := parseLeadingFloat(s)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func parseLeadingFloat(s string) (float64, bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	var intPart, fracPart float64
	var fracScale float64 = 1
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		intPart = intPart*10 + float64(s[i]-'0')
		digits++
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			fracPart = fracPart*10 + float64(s[i]-'0')
			fracScale *= 10
			digits++
			i++
		}
	}
	if digits == 0 {
		return 0, false
	}
	f := intPart + fracPart/fracScale
	if neg {
		f = -f
	}
	return f, true
}
