package surql

/*
Leaf condition: a raw predicate string such as "price > 50", rendered
verbatim. The text is not escaped or validated; the caller is responsible for
correct quoting of any embedded literals.
*/
type Simple string

// Implement the `Expr` interface, making this a statement fragment.
func (self Simple) Append(text []byte) []byte {
	return append(text, self...)
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Simple) String() string { return string(self) }

// Implement the `Cond` combinator. Wraps both operands in a new `And` node.
func (self Simple) And(val Cond) Cond { return And{self, val} }

// Implement the `Cond` combinator. Wraps both operands in a new `Or` node.
func (self Simple) Or(val Cond) Cond { return Or{self, val} }

/*
Composite condition: children joined by " AND ". Rendering always wraps the
group in parens, even for a single child; parenthesization depth mirrors tree
depth exactly. An empty child list renders as "()" and is a caller error to
avoid, not guarded against.
*/
type And []Cond

// Implement the `Expr` interface, making this a statement fragment.
func (self And) Append(text []byte) []byte {
	return appendCondList(text, self, ` AND `)
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self And) String() string { return exprString(self) }

/*
Implement the `Cond` combinator. Appends to the existing child list rather
than nesting, so chained `And` composition renders as one flat parenthesized
group. The flattening happens only here, at the construction site; rendering
never merges groups.
*/
func (self And) And(val Cond) Cond { return append(self, val) }

// Implement the `Cond` combinator. Wraps both operands in a new `Or` node.
func (self And) Or(val Cond) Cond { return Or{self, val} }

/*
Composite condition: children joined by " OR ". Rendering always wraps the
group in parens; see `And`. Unlike `And`, the `Or` combinator never flattens:
chained `Or` composition nests, one parenthesized group per composition.
*/
type Or []Cond

// Implement the `Expr` interface, making this a statement fragment.
func (self Or) Append(text []byte) []byte {
	return appendCondList(text, self, ` OR `)
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Or) String() string { return exprString(self) }

// Implement the `Cond` combinator. Wraps both operands in a new `And` node.
func (self Or) And(val Cond) Cond { return And{self, val} }

// Implement the `Cond` combinator. Wraps both operands in a new `Or` node.
func (self Or) Or(val Cond) Cond { return Or{self, val} }

func appendCondList(text []byte, vals []Cond, sep string) []byte {
	text = append(text, `(`...)
	for ind, val := range vals {
		if ind > 0 {
			text = append(text, sep...)
		}
		text = val.Append(text)
	}
	return append(text, `)`...)
}

/*
Appends statement-level predicates: entries joined by " AND " WITHOUT wrapping
the whole group in parens. Only nested composites parenthesize. Used
internally by the statement types for their "where" clauses.
*/
func appendWhere(bui *Bui, vals []Cond) {
	if len(vals) == 0 {
		return
	}

	bui.Str(`WHERE`)
	for ind, val := range vals {
		if ind > 0 {
			bui.Str(`AND`)
		}
		bui.Expr(val)
	}
}
