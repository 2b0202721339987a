package surql

import (
	"errors"
	"fmt"
	r "reflect"
	"runtime"
	"strings"
	"testing"
	"time"
)

type Embed struct {
	Id   string `json:"embedId"   db:"embed_id"`
	Name string `json:"embedName" db:"embed_name"`
}

type Outer struct {
	Embed
	Id       string `json:"outerId"   db:"outer_id"`
	Name     string `json:"outerName" db:"outer_name"`
	OnlyJson string `json:"onlyJson"`
	private  string `db:"private"`
	Untagged string ``
	Skipped  string `db:"-"`
}

var testOuter = Outer{
	Id:   `outer id`,
	Name: `outer name`,
	Embed: Embed{
		Id:   `embed id`,
		Name: `embed name`,
	},
	private:  `private`,
	Untagged: `untagged`,
	Skipped:  `skipped`,
}

type Encoder interface {
	fmt.Stringer
	Expr
}

func testEncoder(t testing.TB, exp string, val Encoder) {
	t.Helper()
	eq(t, exp, val.String())
	eq(t, exp, string(val.Append(nil)))

	out, err := Render(val)
	eq(t, nil, err)
	eq(t, exp, out)
}

func eq(t testing.TB, exp, act any) {
	t.Helper()
	if !r.DeepEqual(exp, act) {
		t.Fatalf(`
expected (detailed):
	%#[1]v
actual (detailed):
	%#[2]v
expected (simple):
	%[1]v
actual (simple):
	%[2]v
`, exp, act)
	}
}

func panics(t testing.TB, msg string, fun func()) {
	t.Helper()
	val := catchAny(fun)

	if val == nil {
		t.Fatalf(`expected %v to panic, found no panic`, funcName(fun))
	}

	str := fmt.Sprint(val)
	if !strings.Contains(str, msg) {
		t.Fatalf(
			`expected %v to panic with a message containing %q, found %q`,
			funcName(fun), msg, str,
		)
	}
}

func funcName(val any) string {
	return runtime.FuncForPC(r.ValueOf(val).Pointer()).Name()
}

func catchAny(fun func()) (val any) {
	defer recAny(&val)
	fun()
	return
}

func recAny(ptr *any) { *ptr = recover() }

func errIs(err, target error) bool { return errors.Is(err, target) }

func parseTime(str string) time.Time {
	inst, err := time.Parse(time.RFC3339, str)
	try(err)
	return inst
}
