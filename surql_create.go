package surql

/*
Starts a create statement for the given target, which may be a table name or
a specific record id such as `person:tobie`.
*/
func Create(target string) CreateQuery {
	return CreateQuery{Data: CreateData{Target: target}}
}

// Same as `Create`, with the `ONLY` modifier. The result is a single object
// rather than an array.
func CreateOnly(target string) CreateQuery {
	return CreateQuery{Data: CreateData{Target: target, Only: true}}
}

/*
Pending state of a create statement. `Content` and `Set` are mutually
exclusive data modes; populating one clears the other.
*/
type CreateData struct {
	Target  string
	Only    bool
	Content Expr
	Set     []Expr
	Ret     Return
	Timeout string
}

/*
A create statement under construction. Each method consumes the receiver and
returns the updated statement; render with `String` or `Append`.
*/
type CreateQuery struct {
	Data CreateData
}

/*
Sets the record content to the given fragment, rendered verbatim after
`CONTENT`. Switches the statement to content mode, discarding any accumulated
`SET` assignments. Use `Str` for a prerendered object literal, or
`StructContent` to derive the object from a struct.
*/
func (self CreateQuery) Content(val Expr) CreateQuery {
	self.Data.Content = val
	self.Data.Set = nil
	return self
}

// Shortcut for `.Content(StructContent{...})`: derives the `CONTENT` object
// from the "db"-tagged fields of the given struct.
func (self CreateQuery) ContentStruct(val any) CreateQuery {
	return self.Content(StructContent{val})
}

/*
Appends one `SET` assignment. The value is rendered verbatim; values requiring
quoting must be prerendered, or derived from a struct via `SetStruct`.
Switches the statement to assignment mode, discarding any previously set
content.
*/
func (self CreateQuery) Set(field string, value string) CreateQuery {
	self.Data.Set = append(self.Data.Set, Assign{field, value})
	self.Data.Content = nil
	return self
}

// Appends `SET` assignments derived from the "db"-tagged fields of the given
// struct. Like `Set`, switches the statement to assignment mode.
func (self CreateQuery) SetStruct(val any) CreateQuery {
	self.Data.Set = append(self.Data.Set, StructAssign{val})
	self.Data.Content = nil
	return self
}

// Sets the return clause to `RETURN NONE`. Setting a return mode again
// discards the previous one.
func (self CreateQuery) ReturnNone() CreateQuery {
	self.Data.Ret = Return{Mode: ReturnNone}
	return self
}

// Sets the return clause to `RETURN BEFORE`.
func (self CreateQuery) ReturnBefore() CreateQuery {
	self.Data.Ret = Return{Mode: ReturnBefore}
	return self
}

// Sets the return clause to `RETURN AFTER`.
func (self CreateQuery) ReturnAfter() CreateQuery {
	self.Data.Ret = Return{Mode: ReturnAfter}
	return self
}

// Sets the return clause to `RETURN DIFF`.
func (self CreateQuery) ReturnDiff() CreateQuery {
	self.Data.Ret = Return{Mode: ReturnDiff}
	return self
}

// Sets the return clause to the given field list.
func (self CreateQuery) ReturnFields(fields ...string) CreateQuery {
	self.Data.Ret = Return{Mode: ReturnFields, Fields: fields}
	return self
}

// Sets the return clause to `RETURN VALUE <field>`.
func (self CreateQuery) ReturnValue(field string) CreateQuery {
	self.Data.Ret = Return{Mode: ReturnValue, Fields: []string{field}}
	return self
}

// Sets the timeout. Accepts a raw literal string, `time.Duration`, or
// `Duration`. Setting it again discards the previous value.
func (self CreateQuery) Timeout(val any) CreateQuery {
	self.Data.Timeout = timeoutLiteral(val)
	return self
}

// Implement the `Expr` interface.
func (self CreateQuery) Append(text []byte) []byte {
	bui := Bui{text}
	data := &self.Data

	if data.Only {
		bui.Str(`CREATE ONLY`)
	} else {
		bui.Str(`CREATE`)
	}
	bui.Str(data.Target)

	if data.Content != nil {
		bui.Str(`CONTENT`)
		bui.Expr(data.Content)
	} else if len(data.Set) > 0 {
		bui.Str(`SET`)
		bui.CommaExprs(data.Set...)
	}

	if data.Ret.IsSet() {
		bui.Expr(data.Ret)
	}

	if data.Timeout != `` {
		bui.Str(`TIMEOUT`)
		bui.Str(data.Timeout)
	}

	return bui.Text
}

// Implement the `fmt.Stringer` interface. Returns the rendered statement.
func (self CreateQuery) String() string { return exprString(self) }
