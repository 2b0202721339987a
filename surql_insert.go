package surql

/*
Starts an insert statement for the given target table. Data can be provided
either as a verbatim value fragment (`Content`) or as a field list with value
rows (`Fields` + `Values`); the two modes are mutually exclusive.
*/
func Insert(target string) InsertQuery {
	return InsertQuery{Data: InsertData{Target: target}}
}

/*
Pending state of an insert statement. `Value` and `Fields`/`Rows` are
mutually exclusive data modes; populating one clears the other.
*/
type InsertData struct {
	Target      string
	Relation    bool
	Ignore      bool
	Value       Expr
	Fields      []string
	Rows        [][]string
	OnDuplicate []Assign
	Ret         Return
}

/*
An insert statement under construction. Each method consumes the receiver and
returns the updated statement; render with `String` or `Append`.
*/
type InsertQuery struct {
	Data InsertData
}

// Adds the `RELATION` modifier, inserting graph edges rather than records.
func (self InsertQuery) Relation() InsertQuery {
	self.Data.Relation = true
	return self
}

// Adds the `IGNORE` modifier, skipping records whose id already exists.
func (self InsertQuery) Ignore() InsertQuery {
	self.Data.Ignore = true
	return self
}

/*
Sets the inserted value to the given fragment, rendered verbatim after the
target. May be an object literal, an array of objects, or a subquery.
Switches the statement to value mode, discarding any accumulated field list
and value rows.
*/
func (self InsertQuery) Content(val Expr) InsertQuery {
	self.Data.Value = val
	self.Data.Fields = nil
	self.Data.Rows = nil
	return self
}

// Shortcut for `.Content(StructContent{...})`: derives the inserted object
// from the "db"-tagged fields of the given struct.
func (self InsertQuery) ContentStruct(val any) InsertQuery {
	return self.Content(StructContent{val})
}

/*
Sets the field list for row-based insertion, REPLACING any previous list.
Switches the statement to row mode, discarding any previously set value.
*/
func (self InsertQuery) Fields(fields ...string) InsertQuery {
	self.Data.Fields = fields
	self.Data.Value = nil
	return self
}

/*
Appends one row of values, rendered verbatim in parens after `VALUES`.
Multiple rows are comma-joined. Like `Fields`, switches the statement to row
mode. A field list is optional: rows without one render as a bare `VALUES`
clause.
*/
func (self InsertQuery) Values(vals ...string) InsertQuery {
	self.Data.Rows = append(self.Data.Rows, vals)
	self.Data.Value = nil
	return self
}

// Appends one `ON DUPLICATE KEY UPDATE` assignment. The value is rendered
// verbatim.
func (self InsertQuery) OnDuplicate(field string, value string) InsertQuery {
	self.Data.OnDuplicate = append(self.Data.OnDuplicate, Assign{field, value})
	return self
}

// Sets the return clause to `RETURN NONE`. Setting a return mode again
// discards the previous one.
func (self InsertQuery) ReturnNone() InsertQuery {
	self.Data.Ret = Return{Mode: ReturnNone}
	return self
}

// Sets the return clause to `RETURN BEFORE`.
func (self InsertQuery) ReturnBefore() InsertQuery {
	self.Data.Ret = Return{Mode: ReturnBefore}
	return self
}

// Sets the return clause to `RETURN AFTER`.
func (self InsertQuery) ReturnAfter() InsertQuery {
	self.Data.Ret = Return{Mode: ReturnAfter}
	return self
}

// Sets the return clause to `RETURN DIFF`.
func (self InsertQuery) ReturnDiff() InsertQuery {
	self.Data.Ret = Return{Mode: ReturnDiff}
	return self
}

// Sets the return clause to the given field list.
func (self InsertQuery) ReturnFields(fields ...string) InsertQuery {
	self.Data.Ret = Return{Mode: ReturnFields, Fields: fields}
	return self
}

// Sets the return clause to `RETURN VALUE <field>`.
func (self InsertQuery) ReturnValue(field string) InsertQuery {
	self.Data.Ret = Return{Mode: ReturnValue, Fields: []string{field}}
	return self
}

// Implement the `Expr` interface.
func (self InsertQuery) Append(text []byte) []byte {
	bui := Bui{text}
	data := &self.Data

	bui.Str(`INSERT`)
	if data.Relation {
		bui.Str(`RELATION`)
	}
	if data.Ignore {
		bui.Str(`IGNORE`)
	}
	bui.Str(`INTO`)
	bui.Str(data.Target)

	if data.Value != nil {
		bui.Expr(data.Value)
	} else {
		if len(data.Fields) > 0 {
			bui.Space()
			bui.Text = appendParenList(bui.Text, data.Fields)
		}
		if len(data.Rows) > 0 {
			bui.Str(`VALUES`)
			for ind, row := range data.Rows {
				if ind > 0 {
					bui.Text = append(bui.Text, `,`...)
				}
				bui.Space()
				bui.Text = appendParenList(bui.Text, row)
			}
		}
	}

	if len(data.OnDuplicate) > 0 {
		bui.Str(`ON DUPLICATE KEY UPDATE`)
		for ind, val := range data.OnDuplicate {
			if ind > 0 {
				bui.Text = append(bui.Text, `,`...)
			}
			bui.Expr(val)
		}
	}

	if data.Ret.IsSet() {
		bui.Expr(data.Ret)
	}

	return bui.Text
}

// Implement the `fmt.Stringer` interface. Returns the rendered statement.
func (self InsertQuery) String() string { return exprString(self) }

func appendParenList(text []byte, vals []string) []byte {
	text = append(text, `(`...)
	for ind, val := range vals {
		if ind > 0 {
			text = append(text, `, `...)
		}
		text = append(text, val...)
	}
	return append(text, `)`...)
}
