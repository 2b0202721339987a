package surql

import "strconv"

/*
Starts a select statement with the given field projections. No fields projects
the whole entity (`*`). The returned builder accepts projection-side
configuration (graph traversals, subquery fields); call `From` or `FromOnly`
to name the target and unlock the clause methods. This two-stage shape makes
"cannot filter before naming a target" a compile-time property.
*/
func Select(fields ...Field) SelectBuilder {
	return SelectBuilder{Fields: fields}
}

/*
First stage of a select statement: the projection list and target version,
before a target table is named. The methods consume and return the value;
a statement under construction is single-owner.
*/
type SelectBuilder struct {
	Fields []Field
	Ver    Version
}

/*
Appends the projected field(s) for a graph traversal. The rendering is
version-dependent; see `Version`. A nil version behaves as `V2`.
*/
func (self SelectBuilder) Traverse(val Traversal) SelectBuilder {
	self.Fields = self.version().TraversalFields(self.Fields, val)
	return self
}

// Appends a parenthesized subquery as one projected field.
func (self SelectBuilder) Subquery(val SelectQuery) SelectBuilder {
	self.Fields = append(self.Fields, Subquery(val))
	return self
}

// Appends a parenthesized subquery with an alias as one projected field.
func (self SelectBuilder) SubqueryAs(val SelectQuery, alias string) SelectBuilder {
	self.Fields = append(self.Fields, SubqueryAs(val, alias))
	return self
}

// Names the target table, transitioning to the clause stage.
func (self SelectBuilder) From(table string) SelectQuery {
	return SelectQuery{Data: SelectData{Fields: self.Fields, Table: table}}
}

// Names the target table with the `ONLY` modifier, transitioning to the
// clause stage.
func (self SelectBuilder) FromOnly(table string) SelectQuery {
	return SelectQuery{Data: SelectData{Fields: self.Fields, Table: table, Only: true}}
}

func (self SelectBuilder) version() Version {
	if self.Ver == nil {
		return V2{}
	}
	return self.Ver
}

/*
Pending state of a select statement: one slot per clause. The statement
methods populate it; rendering reads it in fixed grammar order, regardless of
the order the slots were populated.
*/
type SelectData struct {
	Fields   []Field
	Table    string
	Only     bool
	Where    []Cond
	Order    []Expr
	Limit    int64
	HasLimit bool
	Start    int64
	HasStart bool
	Fetch    []string
	Timeout  string
	Explain  Explain
}

/*
Second stage of a select statement, returned by `SelectBuilder.From`. Each
method consumes the receiver and returns the updated statement; render with
`String` or `Append`.
*/
type SelectQuery struct {
	Data SelectData
}

// Appends a predicate. Multiple predicates are joined with `AND`.
func (self SelectQuery) Where(val Cond) SelectQuery {
	self.Data.Where = append(self.Data.Where, val)
	return self
}

// Appends an order term. Multiple terms are comma-joined.
func (self SelectQuery) OrderBy(val OrderTerm) SelectQuery {
	self.Data.Order = append(self.Data.Order, val)
	return self
}

/*
Activates random ordering, REPLACING any previously accumulated order terms.
Order terms added after this call accumulate alongside the random token:

	.OrderBy(OrderAsc(`name`)).OrderRandom()  // ORDER BY RAND()
	.OrderRandom().OrderBy(OrderAsc(`name`))  // ORDER BY RAND(), name ASC
*/
func (self SelectQuery) OrderRandom() SelectQuery {
	self.Data.Order = []Expr{OrderRand{}}
	return self
}

// Sets the limit. Setting it again discards the previous value.
func (self SelectQuery) Limit(val int64) SelectQuery {
	self.Data.Limit = val
	self.Data.HasLimit = true
	return self
}

// Sets the pagination offset (`START AT`). Setting it again discards the
// previous value.
func (self SelectQuery) StartAt(val int64) SelectQuery {
	self.Data.Start = val
	self.Data.HasStart = true
	return self
}

// Appends fields to the fetch list.
func (self SelectQuery) Fetch(fields ...string) SelectQuery {
	self.Data.Fetch = append(self.Data.Fetch, fields...)
	return self
}

// Sets the timeout. Accepts a raw literal string, `time.Duration`, or
// `Duration`; see `timeoutLiteral`. Setting it again discards the previous
// value.
func (self SelectQuery) Timeout(val any) SelectQuery {
	self.Data.Timeout = timeoutLiteral(val)
	return self
}

// Sets the explain clause to `EXPLAIN`. Setting an explain mode again
// discards the previous one.
func (self SelectQuery) Explain() SelectQuery {
	self.Data.Explain = ExplainSimple
	return self
}

// Sets the explain clause to `EXPLAIN FULL`.
func (self SelectQuery) ExplainFull() SelectQuery {
	self.Data.Explain = ExplainFull
	return self
}

// Implement the `Expr` interface. Renders the statement in fixed grammar
// order; see the package documentation.
func (self SelectQuery) Append(text []byte) []byte {
	bui := Bui{text}
	data := &self.Data

	bui.Str(`SELECT`)

	if len(data.Fields) == 0 {
		bui.Str(`*`)
	} else {
		for ind, val := range data.Fields {
			if ind > 0 {
				bui.Text = append(bui.Text, `,`...)
			}
			bui.Expr(val)
		}
	}

	if data.Only {
		bui.Str(`FROM ONLY`)
	} else {
		bui.Str(`FROM`)
	}
	bui.Str(data.Table)

	appendWhere(&bui, data.Where)

	if len(data.Order) > 0 {
		bui.Str(`ORDER BY`)
		bui.CommaExprs(data.Order...)
	}

	if data.HasLimit {
		bui.Str(`LIMIT`)
		bui.Str(strconv.FormatInt(data.Limit, 10))
	}

	if data.HasStart {
		bui.Str(`START AT`)
		bui.Str(strconv.FormatInt(data.Start, 10))
	}

	if len(data.Fetch) > 0 {
		bui.Str(`FETCH`)
		for ind, val := range data.Fetch {
			if ind > 0 {
				bui.Text = append(bui.Text, `,`...)
			}
			bui.Str(val)
		}
	}

	if data.Timeout != `` {
		bui.Str(`TIMEOUT`)
		bui.Str(data.Timeout)
	}

	if data.Explain != ExplainUnset {
		bui.Expr(data.Explain)
	}

	return bui.Text
}

// Implement the `fmt.Stringer` interface. Returns the rendered statement.
func (self SelectQuery) String() string { return exprString(self) }
