package surql

/*
Target SurrealDB version for statement rendering. Controls how one construct
is emitted: graph-traversal field destructuring. This is polymorphism over a
capability, not configuration: the selector types are zero-sized, and a nil
version behaves as `V2`, the destructuring-capable default.

	V2, V3 — object destructuring: `->edge->table.{one, two AS t}` as one
	projected field.

	V1 — no object destructuring: an explicit field list expands into one
	projected field per requested field, each carrying the shared path prefix
	and its own alias. Whole-entity projection (`.*`) renders identically on
	all versions.
*/
type Version interface {
	// Appends the projected field(s) for the given traversal.
	TraversalFields(fields []Field, val Traversal) []Field
}

// SurrealDB v1.
type V1 struct{}

// Implement `Version` with the expanded, non-destructuring rendering.
func (self V1) TraversalFields(fields []Field, val Traversal) []Field {
	path := val.path()

	if len(val.Fields) == 0 {
		return append(fields, Field{
			Name:  string(path) + `.*`,
			Alias: val.Alias,
		})
	}

	for _, field := range val.Fields {
		fields = append(fields, Field{
			Name:  string(path) + `.` + field.Name,
			Alias: field.Alias,
		})
	}
	return fields
}

// SurrealDB v2 (default).
type V2 struct{}

// Implement `Version` with the destructuring rendering.
func (self V2) TraversalFields(fields []Field, val Traversal) []Field {
	return destructuredTraversalFields(fields, val)
}

// SurrealDB v3. Renders like `V2`.
type V3 struct{}

// Implement `Version` with the destructuring rendering.
func (self V3) TraversalFields(fields []Field, val Traversal) []Field {
	return destructuredTraversalFields(fields, val)
}

func destructuredTraversalFields(fields []Field, val Traversal) []Field {
	text := val.path()
	text = append(text, `.`...)

	if len(val.Fields) == 0 {
		text = append(text, `*`...)
	} else {
		text = append(text, `{`...)
		for ind, field := range val.Fields {
			if ind > 0 {
				text = append(text, `, `...)
			}
			text = field.Append(text)
		}
		text = append(text, `}`...)
	}

	return append(fields, Field{
		Name:  bytesToMutableString(text),
		Alias: val.Alias,
	})
}

/*
Statement constructors bound to a specific target version. Created via
`WithVersion`. Currently only select statements render differently across
versions; the other constructors are provided for uniformity.
*/
type Versioned struct {
	Ver Version
}

// Returns statement constructors targeting the given version.
func WithVersion(ver Version) Versioned { return Versioned{Ver: ver} }

// Version-aware counterpart to the package-level `Select`.
func (self Versioned) Select(fields ...Field) SelectBuilder {
	return SelectBuilder{Fields: fields, Ver: self.Ver}
}

// Counterpart to the package-level `Create`.
func (self Versioned) Create(target string) CreateQuery {
	return Create(target)
}

// Counterpart to the package-level `Insert`.
func (self Versioned) Insert(target string) InsertQuery {
	return Insert(target)
}

// Counterpart to the package-level `Delete`.
func (self Versioned) Delete(targets string) DeleteQuery {
	return Delete(targets)
}
