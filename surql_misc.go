package surql

import (
	"fmt"
	"time"
)

/*
Shortcut for embedding raw statement text. Because this implements `Expr`,
it can be used anywhere a fragment is expected; the text is appended verbatim,
unescaped and unvalidated.
*/
type Str string

// Implement the `Expr` interface, making this a statement fragment.
func (self Str) Append(text []byte) []byte { return append(text, self...) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Str) String() string { return string(self) }

/*
Represents one "field = value" assignment, as used by "SET" and
"ON DUPLICATE KEY UPDATE" clauses. Both sides are raw text supplied by the
caller; the value must be already quoted if it's a string literal.
*/
type Assign struct {
	Field string
	Value string
}

// Implement the `Expr` interface, making this a statement fragment.
func (self Assign) Append(text []byte) []byte {
	text = append(text, self.Field...)
	text = append(text, ` = `...)
	return append(text, self.Value...)
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Assign) String() string { return exprString(self) }

const (
	// Zero value: no return clause.
	ReturnUnset ReturnMode = 0
	// `RETURN NONE`.
	ReturnNone ReturnMode = 1
	// `RETURN BEFORE`.
	ReturnBefore ReturnMode = 2
	// `RETURN AFTER`.
	ReturnAfter ReturnMode = 3
	// `RETURN DIFF`.
	ReturnDiff ReturnMode = 4
	// `RETURN <field>, ...`.
	ReturnFields ReturnMode = 5
	// `RETURN VALUE <field>`.
	ReturnValue ReturnMode = 6
)

// Enum for the return-clause mode of a mutation statement.
type ReturnMode byte

/*
Structured representation of a "RETURN" clause. The zero value represents an
absent clause and renders as nothing. A statement holds at most one: setting
it again discards the previous value.
*/
type Return struct {
	Mode   ReturnMode
	Fields []string
}

// Implement the `Expr` interface, making this a statement fragment.
func (self Return) Append(text []byte) []byte {
	switch self.Mode {
	case ReturnNone:
		return append(text, `RETURN NONE`...)
	case ReturnBefore:
		return append(text, `RETURN BEFORE`...)
	case ReturnAfter:
		return append(text, `RETURN AFTER`...)
	case ReturnDiff:
		return append(text, `RETURN DIFF`...)
	case ReturnFields:
		text = append(text, `RETURN `...)
		for ind, val := range self.Fields {
			if ind > 0 {
				text = append(text, `, `...)
			}
			text = append(text, val...)
		}
		return text
	case ReturnValue:
		text = append(text, `RETURN VALUE `...)
		return append(text, self.Fields[0]...)
	default:
		return text
	}
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Return) String() string { return exprString(self) }

// True if the clause is set.
func (self Return) IsSet() bool { return self.Mode != ReturnUnset }

const (
	// Zero value: no explain clause.
	ExplainUnset Explain = 0
	// `EXPLAIN`.
	ExplainSimple Explain = 1
	// `EXPLAIN FULL`.
	ExplainFull Explain = 2
)

/*
Enum for the explain-clause mode of a statement. The zero value represents an
absent clause. A statement holds at most one: setting it again discards the
previous value.
*/
type Explain byte

// Implement the `Expr` interface, making this a statement fragment.
func (self Explain) Append(text []byte) []byte {
	return append(text, self.String()...)
}

// Implement `fmt.Stringer` for debug purposes.
func (self Explain) String() string {
	switch self {
	case ExplainSimple:
		return `EXPLAIN`
	case ExplainFull:
		return `EXPLAIN FULL`
	default:
		return ``
	}
}

/*
Converts a timeout input to its duration literal text. Accepts a raw literal
string (trusted verbatim, such as "5s"), a `time.Duration`, or a `Duration`.
Any other type panics with `Err`. Used internally by the `Timeout` methods of
the statement types.
*/
func timeoutLiteral(val any) string {
	switch val := val.(type) {
	case string:
		return val
	case time.Duration:
		return Duration(val).String()
	case Duration:
		return val.String()
	default:
		panic(errInvalid(
			`encoding timeout`,
			fmt.Errorf(`unsupported timeout type %T; expected string, time.Duration, or surql.Duration`, val),
		))
	}
}

/*
Renders a fragment, converting panics to errors. Fragments that scan structs,
such as `StructContent`, panic on invalid input; apps that insist on
errors-as-values should reify statements through this function rather than
calling `String` directly.
*/
func Render(val Expr) (out string, err error) {
	defer rec(&err)
	if val != nil {
		out = exprString(val)
	}
	return
}
