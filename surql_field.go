package surql

/*
One projected field of a select statement: a name (or any raw field
expression, such as a parenthesized subquery) with an optional alias.
Renders as `<name>` or `<name> AS <alias>`.
*/
type Field struct {
	Name  string
	Alias string
}

// Implement the `Expr` interface, making this a statement fragment.
func (self Field) Append(text []byte) []byte {
	text = append(text, self.Name...)
	if self.Alias != `` {
		text = append(text, ` AS `...)
		text = append(text, self.Alias...)
	}
	return text
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Field) String() string { return exprString(self) }

// Field descriptor: a bare field name.
func Name(name string) Field { return Field{Name: name} }

// Field descriptor: a field name with an alias.
func NameAs(name, alias string) Field { return Field{Name: name, Alias: alias} }

// Field descriptor: a nested select statement, wrapped in parens.
func Subquery(val SelectQuery) Field {
	return Field{Name: `(` + val.String() + `)`}
}

// Field descriptor: a nested select statement with an alias.
func SubqueryAs(val SelectQuery, alias string) Field {
	return Field{Name: `(` + val.String() + `)`, Alias: alias}
}

const (
	// Outgoing traversal arrow: `->`.
	DirectionOut Direction = 0
	// Incoming traversal arrow: `<-`.
	DirectionIn Direction = 1
)

// Direction of one graph traversal arrow.
type Direction byte

// Implement the `Expr` interface, making this a statement fragment.
func (self Direction) Append(text []byte) []byte {
	return append(text, self.String()...)
}

// Implement `fmt.Stringer` for debug purposes.
func (self Direction) String() string {
	if self == DirectionIn {
		return `<-`
	}
	return `->`
}

// One directional hop across a named relation in a graph traversal path.
type Step struct {
	Dir   Direction
	Table string
}

// Implement the `Expr` interface, making this a statement fragment.
func (self Step) Append(text []byte) []byte {
	text = self.Dir.Append(text)
	return append(text, self.Table...)
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Step) String() string { return exprString(self) }

/*
Graph traversal projection: a sequence of directional steps, an optional
field projection, and an optional alias for the whole expansion. An empty
`Fields` list projects the whole entity (`.*`). How the projection renders
depends on the target version; see `Version`.

The chainable methods consume and return the value; treat a traversal as
single-owner while composing it.
*/
type Traversal struct {
	Steps  []Step
	Fields []Field
	Alias  string
}

// Starts a traversal with an outgoing hop.
func TraverseOut(table string) Traversal {
	return Traversal{Steps: []Step{{DirectionOut, table}}}
}

// Starts a traversal with an incoming hop.
func TraverseIn(table string) Traversal {
	return Traversal{Steps: []Step{{DirectionIn, table}}}
}

// Appends an outgoing hop.
func (self Traversal) Out(table string) Traversal {
	self.Steps = append(self.Steps, Step{DirectionOut, table})
	return self
}

// Appends an incoming hop.
func (self Traversal) In(table string) Traversal {
	self.Steps = append(self.Steps, Step{DirectionIn, table})
	return self
}

// Sets the field projection. Without this, the traversal projects the whole
// entity.
func (self Traversal) Project(fields ...Field) Traversal {
	self.Fields = fields
	return self
}

// Sets the alias for the expansion.
func (self Traversal) As(alias string) Traversal {
	self.Alias = alias
	return self
}

// Renders the step path, such as "->friends<-posts".
func (self Traversal) path() []byte {
	var text []byte
	for _, val := range self.Steps {
		text = val.Append(text)
	}
	return text
}
