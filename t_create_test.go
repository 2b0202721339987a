package surql

import (
	"testing"
	"time"
)

func TestCreate_basic(t *testing.T) {
	testEncoder(t, `CREATE person`, Create(`person`))
	testEncoder(t, `CREATE person:tobie`, Create(`person:tobie`))
	testEncoder(t, `CREATE ONLY person:tobie`, CreateOnly(`person:tobie`))
}

func TestCreate_content(t *testing.T) {
	testEncoder(
		t,
		`CREATE person CONTENT { name: 'Tobie' }`,
		Create(`person`).Content(Str(`{ name: 'Tobie' }`)),
	)
}

func TestCreate_set(t *testing.T) {
	testEncoder(
		t,
		`CREATE person SET name = 'Tobie'`,
		Create(`person`).Set(`name`, `'Tobie'`),
	)
	testEncoder(
		t,
		`CREATE person SET name = 'Tobie', age = 30`,
		Create(`person`).Set(`name`, `'Tobie'`).Set(`age`, `30`),
	)
}

func TestCreate_modeSwitch(t *testing.T) {
	// Switching to assignments discards the content, and vice versa.
	testEncoder(
		t,
		`CREATE person SET age = 30`,
		Create(`person`).Content(Str(`{ name: 'Tobie' }`)).Set(`age`, `30`),
	)
	testEncoder(
		t,
		`CREATE person CONTENT { name: 'Tobie' }`,
		Create(`person`).Set(`age`, `30`).Content(Str(`{ name: 'Tobie' }`)),
	)
}

func TestCreate_return(t *testing.T) {
	testEncoder(t, `CREATE person RETURN NONE`, Create(`person`).ReturnNone())
	testEncoder(t, `CREATE person RETURN BEFORE`, Create(`person`).ReturnBefore())
	testEncoder(t, `CREATE person RETURN AFTER`, Create(`person`).ReturnAfter())
	testEncoder(t, `CREATE person RETURN DIFF`, Create(`person`).ReturnDiff())
	testEncoder(
		t,
		`CREATE person RETURN id, name`,
		Create(`person`).ReturnFields(`id`, `name`),
	)
	testEncoder(
		t,
		`CREATE person RETURN VALUE id`,
		Create(`person`).ReturnValue(`id`),
	)

	// Last write wins.
	testEncoder(
		t,
		`CREATE person RETURN NONE`,
		Create(`person`).ReturnDiff().ReturnNone(),
	)
}

func TestCreate_timeout(t *testing.T) {
	testEncoder(
		t,
		`CREATE person TIMEOUT 5s`,
		Create(`person`).Timeout(5*time.Second),
	)
}

func TestCreate_clauseOrder(t *testing.T) {
	exp := `CREATE ONLY person:tobie SET name = 'Tobie' RETURN AFTER TIMEOUT 5s`

	testEncoder(
		t,
		exp,
		CreateOnly(`person:tobie`).
			Set(`name`, `'Tobie'`).
			ReturnAfter().
			Timeout(`5s`),
	)

	// Clauses render in grammar order regardless of call order.
	testEncoder(
		t,
		exp,
		CreateOnly(`person:tobie`).
			Timeout(`5s`).
			ReturnAfter().
			Set(`name`, `'Tobie'`),
	)
}
