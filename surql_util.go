package surql

import "unsafe"

/*
Allocation-free conversion. Reinterprets a byte slice as a string. Borrowed
from the standard library. Reasonably safe, as long as the underlying byte
array is not mutated after the conversion.
*/
func bytesToMutableString(bytes []byte) string {
	return *(*string)(unsafe.Pointer(&bytes))
}

func maybeAppendSpace(val []byte) []byte {
	if len(val) == 0 || val[len(val)-1] == ' ' {
		return val
	}
	return append(val, ` `...)
}

func appendMaybeSpaced(text []byte, suffix string) []byte {
	if len(suffix) == 0 {
		return text
	}
	if len(text) > 0 && text[len(text)-1] != ' ' && suffix[0] != ',' {
		text = append(text, ` `...)
	}
	return append(text, suffix...)
}

func exprString[A Expr](expr A) string {
	return bytesToMutableString(expr.Append(nil))
}

func try(err error) {
	if err != nil {
		panic(err)
	}
}

// Must be deferred.
func rec(ptr *error) {
	val := recover()
	if val == nil {
		return
	}

	err, _ := val.(error)
	if err != nil {
		*ptr = err
		return
	}

	panic(val)
}
