package surql

/*
Starts a delete statement for the given targets, rendered as
`DELETE FROM <targets>`. Targets may be a table name, a record id, or a
prerendered list of either.
*/
func Delete(targets string) DeleteQuery {
	return DeleteQuery{Data: DeleteData{Targets: targets}}
}

// Same as `Delete`, with the `ONLY` modifier. Rendered as
// `DELETE ONLY <target>`, without `FROM`.
func DeleteOnly(target string) DeleteQuery {
	return DeleteQuery{Data: DeleteData{Targets: target, Only: true}}
}

// Pending state of a delete statement.
type DeleteData struct {
	Targets string
	Only    bool
	Where   []Cond
	Ret     Return
	Timeout string
	Explain Explain
}

/*
A delete statement under construction. Each method consumes the receiver and
returns the updated statement; render with `String` or `Append`.
*/
type DeleteQuery struct {
	Data DeleteData
}

// Appends a predicate. Multiple predicates are joined with `AND`.
func (self DeleteQuery) Where(val Cond) DeleteQuery {
	self.Data.Where = append(self.Data.Where, val)
	return self
}

// Sets the return clause to `RETURN NONE`. Setting a return mode again
// discards the previous one.
func (self DeleteQuery) ReturnNone() DeleteQuery {
	self.Data.Ret = Return{Mode: ReturnNone}
	return self
}

// Sets the return clause to `RETURN BEFORE`, returning the deleted records.
func (self DeleteQuery) ReturnBefore() DeleteQuery {
	self.Data.Ret = Return{Mode: ReturnBefore}
	return self
}

// Sets the return clause to `RETURN AFTER`.
func (self DeleteQuery) ReturnAfter() DeleteQuery {
	self.Data.Ret = Return{Mode: ReturnAfter}
	return self
}

// Sets the return clause to `RETURN DIFF`.
func (self DeleteQuery) ReturnDiff() DeleteQuery {
	self.Data.Ret = Return{Mode: ReturnDiff}
	return self
}

// Sets the return clause to the given field list.
func (self DeleteQuery) ReturnFields(fields ...string) DeleteQuery {
	self.Data.Ret = Return{Mode: ReturnFields, Fields: fields}
	return self
}

// Sets the return clause to `RETURN VALUE <field>`.
func (self DeleteQuery) ReturnValue(field string) DeleteQuery {
	self.Data.Ret = Return{Mode: ReturnValue, Fields: []string{field}}
	return self
}

// Sets the timeout. Accepts a raw literal string, `time.Duration`, or
// `Duration`. Setting it again discards the previous value.
func (self DeleteQuery) Timeout(val any) DeleteQuery {
	self.Data.Timeout = timeoutLiteral(val)
	return self
}

// Sets the explain clause to `EXPLAIN`. Setting an explain mode again
// discards the previous one.
func (self DeleteQuery) Explain() DeleteQuery {
	self.Data.Explain = ExplainSimple
	return self
}

// Sets the explain clause to `EXPLAIN FULL`.
func (self DeleteQuery) ExplainFull() DeleteQuery {
	self.Data.Explain = ExplainFull
	return self
}

// Implement the `Expr` interface.
func (self DeleteQuery) Append(text []byte) []byte {
	bui := Bui{text}
	data := &self.Data

	if data.Only {
		bui.Str(`DELETE ONLY`)
	} else {
		bui.Str(`DELETE FROM`)
	}
	bui.Str(data.Targets)

	appendWhere(&bui, data.Where)

	if data.Ret.IsSet() {
		bui.Expr(data.Ret)
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
func (self DeleteQuery) String() string { return exprString(self) }
