package surql

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/mitranim/refut"
)

/*
Scans a struct, rendering fields tagged with `db` as an object literal
suitable for a `CONTENT` clause. The input must be a struct or a struct
pointer. A nil pointer is fine and produces an empty object. Panics on other
inputs. Treats embedded structs as part of enclosing structs.

For example, this:

	val := struct {
		Name string `db:"name"`
		Age  int64  `db:"age"`
	}{
		Name: `Tobie`,
		Age:  30,
	}

	text := StructContent{val}.String()

Is equivalent to:

	text := `{ name: 'Tobie', age: 30 }`

Rendering is lazy: the struct is scanned by `Append`, and malformed inputs
panic at render time, where `Render` converts the panic to an error.
*/
type StructContent [1]any

// Implement the `Expr` interface, making this a statement fragment.
func (self StructContent) Append(text []byte) []byte {
	text = append(text, `{`...)

	first := true
	traverseStructDbFields(self[0], func(name string, value any) {
		if first {
			text = append(text, ` `...)
			first = false
		} else {
			text = append(text, `, `...)
		}
		text = append(text, name...)
		text = append(text, `: `...)
		text = appendValueLiteral(text, value)
	})

	if !first {
		text = append(text, ` `...)
	}
	return append(text, `}`...)
}

// Implement the `fmt.Stringer` interface. Returns the rendered object.
func (self StructContent) String() string { return exprString(self) }

/*
Scans a struct, rendering fields tagged with `db` as a comma-separated
sequence of assignments suitable for a `SET` clause. The input must be a
struct or a struct pointer. A nil pointer is fine and produces empty text.
Panics on other inputs.

For example, this:

	val := struct {
		Name string `db:"name"`
		Age  int64  `db:"age"`
	}{
		Name: `Tobie`,
		Age:  30,
	}

	text := StructAssign{val}.String()

Is equivalent to:

	text := `name = 'Tobie', age = 30`
*/
type StructAssign [1]any

// Implement the `Expr` interface, making this a statement fragment.
func (self StructAssign) Append(text []byte) []byte {
	first := true
	traverseStructDbFields(self[0], func(name string, value any) {
		if !first {
			text = append(text, `, `...)
		}
		first = false
		text = append(text, name...)
		text = append(text, ` = `...)
		text = appendValueLiteral(text, value)
	})
	return text
}

// Implement the `fmt.Stringer` interface. Returns the rendered assignments.
func (self StructAssign) String() string { return exprString(self) }

/*
TODO: consider validating that the field name is a valid identifier. We might
return an error, or panic.
*/
func sfieldName(sfield reflect.StructField) string {
	return refut.TagIdent(sfield.Tag.Get(`db`))
}

func traverseStructDbFields(input any, fun func(string, any)) {
	rval := reflect.ValueOf(input)
	rtype := refut.RtypeDeref(rval.Type())

	if rtype.Kind() != reflect.Struct {
		panic(errInvalid(
			`traversing struct fields`,
			fmt.Errorf(`expected struct, got %q`, rtype),
		))
	}

	if refut.IsRvalNil(rval) {
		return
	}

	err := refut.TraverseStructRval(rval, func(rval reflect.Value, sfield reflect.StructField, _ []int) error {
		name := sfieldName(sfield)
		if name == `` {
			return nil
		}
		fun(name, rval.Interface())
		return nil
	})
	try(err)
}

/*
Encodes a Go value as a SurrealQL value literal. Strings are single-quoted
with `'` escaped by doubling via `\`. Times become datetime literals.
Fragments are rendered recursively. Nil pointers and interfaces become
`NONE`. Panics on types without a literal representation.
*/
func appendValueLiteral(text []byte, val any) []byte {
	switch val := val.(type) {
	case nil:
		return append(text, `NONE`...)
	case Expr:
		return val.Append(text)
	case string:
		return appendStringLiteral(text, val)
	case bool:
		return strconv.AppendBool(text, val)
	case int:
		return strconv.AppendInt(text, int64(val), 10)
	case int8:
		return strconv.AppendInt(text, int64(val), 10)
	case int16:
		return strconv.AppendInt(text, int64(val), 10)
	case int32:
		return strconv.AppendInt(text, int64(val), 10)
	case int64:
		return strconv.AppendInt(text, val, 10)
	case uint:
		return strconv.AppendUint(text, uint64(val), 10)
	case uint8:
		return strconv.AppendUint(text, uint64(val), 10)
	case uint16:
		return strconv.AppendUint(text, uint64(val), 10)
	case uint32:
		return strconv.AppendUint(text, uint64(val), 10)
	case uint64:
		return strconv.AppendUint(text, val, 10)
	case float32:
		return strconv.AppendFloat(text, float64(val), 'f', -1, 32)
	case float64:
		return strconv.AppendFloat(text, val, 'f', -1, 64)
	case time.Duration:
		return Duration(val).Append(text)
	case time.Time:
		text = append(text, `d'`...)
		text = val.UTC().AppendFormat(text, time.RFC3339)
		return append(text, `'`...)
	}

	rval := reflect.ValueOf(val)
	switch rval.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rval.IsNil() {
			return append(text, `NONE`...)
		}
		return appendValueLiteral(text, rval.Elem().Interface())
	}

	panic(errInvalid(
		`encoding value literal`,
		fmt.Errorf(`no literal representation for type %q`, rval.Type()),
	))
}

func appendStringLiteral(text []byte, val string) []byte {
	text = append(text, `'`...)
	for _, char := range []byte(val) {
		if char == '\'' || char == '\\' {
			text = append(text, `\`...)
		}
		text = append(text, char)
	}
	return append(text, `'`...)
}
