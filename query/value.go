package query

// Kind tags the shape a raw query parameter normalized into.
type Kind uint8

const (
	Text Kind = iota
	Number
	Bool
	List
)

// Item is a single element of a pipe-delimited list value. Elements keep
// their numeric or textual nature so the compiler can emit the right
// literal inside an $in array.
type Item struct {
	Text  string
	Num   int
	IsNum bool
}

// Value is the normalized form of one query parameter.
type Value struct {
	Kind Kind
	Text string
	Num  int
	Bool bool
	List []Item
}

func TextValue(s string) Value     { return Value{Kind: Text, Text: s} }
func NumberValue(n int) Value      { return Value{Kind: Number, Num: n} }
func BoolValue(b bool) Value       { return Value{Kind: Bool, Bool: b} }
func ListValue(items []Item) Value { return Value{Kind: List, List: items} }

func NumItem(n int) Item     { return Item{Num: n, IsNum: true} }
func TextItem(s string) Item { return Item{Text: s} }

// Interface returns the value as the literal the database driver should
// marshal: int, bool, string, or []interface{} for lists.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case Number:
		return v.Num
	case Bool:
		return v.Bool
	case List:
		out := make([]interface{}, len(v.List))
		for i, it := range v.List {
			if it.IsNum {
				out[i] = it.Num
			} else {
				out[i] = it.Text
			}
		}
		return out
	default:
		return v.Text
	}
}
