package surql

import "fmt"

/*
Fragment of a SurrealQL statement. The method appends arbitrary statement text
verbatim. Space separation between adjacent fragments is the responsibility of
the caller, usually via `Bui`. Unlike SQL builders, there are no ordinal
parameters or arguments: every value embedded in a statement is an opaque
string the caller has already escaped/quoted.

All `Expr` types in this package also implement `fmt.Stringer`.
*/
type Expr interface {
	Append([]byte) []byte
}

/*
Structured representation of a SurrealQL predicate. Implemented by `Simple`,
`And`, `Or`. The combinators consume the receiver and return a rebuilt tree;
treat condition values as single-owner and don't retain references into a tree
after composing it further.

The `And` combinator flattens at the construction site: composing onto an
existing `And` node appends to its child list. The `Or` combinator always
wraps the receiver and the operand in a new two-child `Or` node:

	a.And(b).And(c) // (a AND b AND c)
	a.Or(b).Or(c)   // ((a OR b) OR c)
*/
type Cond interface {
	Expr
	fmt.Stringer

	// Composes the receiver with the operand under `AND`.
	And(Cond) Cond

	// Composes the receiver with the operand under `OR`.
	Or(Cond) Cond
}
