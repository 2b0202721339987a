package surql

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// Ascending is the dialect's default and the zero value.
	DirAsc Dir = 0
	// Descending.
	DirDesc Dir = 1
)

// Short for "direction". Enum for ordering direction. The zero value is
// ascending, matching the dialect's default when no direction is given.
type Dir byte

// Implement the `Expr` interface, making this a statement fragment.
func (self Dir) Append(text []byte) []byte {
	return append(text, self.String()...)
}

// Implement `fmt.Stringer` for debug purposes.
func (self Dir) String() string {
	if self == DirDesc {
		return `DESC`
	}
	return `ASC`
}

// Parses from a string, which must be either empty, "asc" or "desc",
// case-insensitively.
func (self *Dir) Parse(src string) error {
	switch strings.ToLower(src) {
	case ``, `asc`:
		*self = DirAsc
		return nil
	case `desc`:
		*self = DirDesc
		return nil
	default:
		return errInvalid(
			`parsing order direction`,
			fmt.Errorf(`unrecognized direction %q`, src),
		)
	}
}

/*
Structured representation of one element of an "order by" clause. Rendering
order is fixed: field, then COLLATE if set, then NUMERIC if set, then the
direction keyword. A zero `Dir` renders as ASC.
*/
type OrderTerm struct {
	Field   string
	Dir     Dir
	Numeric bool
	Collate bool
}

// Implement the `Expr` interface, making this a statement fragment.
func (self OrderTerm) Append(text []byte) []byte {
	text = append(text, self.Field...)
	if self.Collate {
		text = append(text, ` COLLATE`...)
	}
	if self.Numeric {
		text = append(text, ` NUMERIC`...)
	}
	text = append(text, ` `...)
	return self.Dir.Append(text)
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self OrderTerm) String() string { return exprString(self) }

/*
Parses a client ordering string such as "name desc" or
"score collate numeric desc" into the receiver. Keywords are
case-insensitive; the field must be a plain dot-separated identifier path.
Useful for decoding ordering inputs from URL queries and form-encoded data.
*/
func (self *OrderTerm) Parse(src string) error {
	match := ordReg.FindStringSubmatch(src)
	if match == nil {
		return errInvalid(
			`parsing order term`,
			fmt.Errorf(`%q is not a valid ordering string; expected format: "<ident> [collate] [numeric] [asc|desc]"`, src),
		)
	}

	self.Field = match[1]
	self.Collate = match[2] != ``
	self.Numeric = match[3] != ``
	return self.Dir.Parse(match[4])
}

var ordReg = regexp.MustCompile(
	`^\s*((?:\w+\.)*\w+)(?i)(?:\s+(collate))?(?:\s+(numeric))?(?:\s+(asc|desc))?\s*$`,
)

// Shortcut for an ascending `OrderTerm` without modifiers.
func OrderAsc(field string) OrderTerm { return OrderTerm{Field: field} }

// Shortcut for a descending `OrderTerm` without modifiers.
func OrderDesc(field string) OrderTerm { return OrderTerm{Field: field, Dir: DirDesc} }

/*
Random-order token. Renders as the fixed literal "RAND()". Activating random
order on a select statement replaces any previously accumulated order terms;
order terms added afterwards accumulate alongside it. See
`SelectQuery.OrderRandom`.
*/
type OrderRand struct{}

// Implement the `Expr` interface, making this a statement fragment.
func (self OrderRand) Append(text []byte) []byte {
	return append(text, `RAND()`...)
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self OrderRand) String() string { return `RAND()` }

/*
Strips trailing order modifier keywords (ASC, DESC, NUMERIC, COLLATE) from the
end of a field string, case-insensitively. The stripped modifiers are
discarded; ordering is always determined by the explicit `OrderTerm` fields,
never by keywords smuggled inside the field text.
*/
func SanitizeOrderField(src string) string {
	out := strings.TrimRight(src, ` `)

outer:
	for {
		upper := strings.ToUpper(out)
		for _, mod := range orderModifiers {
			if strings.HasSuffix(upper, ` `+mod) {
				out = strings.TrimRight(out[:len(out)-len(mod)-1], ` `)
				continue outer
			}
		}
		return out
	}
}

var orderModifiers = []string{`ASC`, `DESC`, `NUMERIC`, `COLLATE`}
