package surql

import "testing"

func TestInsert_content(t *testing.T) {
	testEncoder(
		t,
		`INSERT INTO person { name: 'Tobie' }`,
		Insert(`person`).Content(Str(`{ name: 'Tobie' }`)),
	)
	testEncoder(
		t,
		`INSERT INTO person [{ name: 'Tobie' }, { name: 'Jaime' }]`,
		Insert(`person`).Content(Str(`[{ name: 'Tobie' }, { name: 'Jaime' }]`)),
	)
}

func TestInsert_modifiers(t *testing.T) {
	testEncoder(
		t,
		`INSERT IGNORE INTO person { name: 'Tobie' }`,
		Insert(`person`).Ignore().Content(Str(`{ name: 'Tobie' }`)),
	)
	testEncoder(
		t,
		`INSERT RELATION INTO likes { in: person:tobie, out: post:123 }`,
		Insert(`likes`).Relation().Content(Str(`{ in: person:tobie, out: post:123 }`)),
	)
	testEncoder(
		t,
		`INSERT RELATION IGNORE INTO likes { in: person:tobie, out: post:123 }`,
		Insert(`likes`).Ignore().Relation().Content(Str(`{ in: person:tobie, out: post:123 }`)),
	)
}

func TestInsert_rows(t *testing.T) {
	testEncoder(
		t,
		`INSERT INTO person (name, age) VALUES ('Tobie', 30)`,
		Insert(`person`).Fields(`name`, `age`).Values(`'Tobie'`, `30`),
	)
	testEncoder(
		t,
		`INSERT INTO person (name, age) VALUES ('Tobie', 30), ('Jaime', 40)`,
		Insert(`person`).
			Fields(`name`, `age`).
			Values(`'Tobie'`, `30`).
			Values(`'Jaime'`, `40`),
	)

	// Setting the field list again replaces it; rows accumulate.
	testEncoder(
		t,
		`INSERT INTO person (name) VALUES ('Tobie'), ('Jaime')`,
		Insert(`person`).
			Fields(`ignored`).
			Fields(`name`).
			Values(`'Tobie'`).
			Values(`'Jaime'`),
	)
}

func TestInsert_valuesWithoutFields(t *testing.T) {
	testEncoder(
		t,
		`INSERT INTO person VALUES ('Tobie', 30)`,
		Insert(`person`).Values(`'Tobie'`, `30`),
	)
	testEncoder(
		t,
		`INSERT INTO person VALUES ('Tobie', 30), ('Jaime', 40)`,
		Insert(`person`).Values(`'Tobie'`, `30`).Values(`'Jaime'`, `40`),
	)
}

func TestInsert_fieldsWithoutValues(t *testing.T) {
	testEncoder(
		t,
		`INSERT INTO person (name, age)`,
		Insert(`person`).Fields(`name`, `age`),
	)
}

func TestInsert_modeSwitch(t *testing.T) {
	// Switching to row mode discards the value, and vice versa.
	testEncoder(
		t,
		`INSERT INTO person (name) VALUES ('Tobie')`,
		Insert(`person`).
			Content(Str(`{ name: 'Jaime' }`)).
			Fields(`name`).
			Values(`'Tobie'`),
	)
	testEncoder(
		t,
		`INSERT INTO person { name: 'Jaime' }`,
		Insert(`person`).
			Fields(`name`).
			Values(`'Tobie'`).
			Content(Str(`{ name: 'Jaime' }`)),
	)
}

func TestInsert_onDuplicate(t *testing.T) {
	testEncoder(
		t,
		`INSERT INTO person { name: 'Tobie' } ON DUPLICATE KEY UPDATE visits = visits + 1`,
		Insert(`person`).
			Content(Str(`{ name: 'Tobie' }`)).
			OnDuplicate(`visits`, `visits + 1`),
	)
	testEncoder(
		t,
		`INSERT INTO person { name: 'Tobie' } ON DUPLICATE KEY UPDATE visits = visits + 1, name = 'Tobie'`,
		Insert(`person`).
			Content(Str(`{ name: 'Tobie' }`)).
			OnDuplicate(`visits`, `visits + 1`).
			OnDuplicate(`name`, `'Tobie'`),
	)
}

func TestInsert_return(t *testing.T) {
	testEncoder(
		t,
		`INSERT INTO person { name: 'Tobie' } RETURN NONE`,
		Insert(`person`).Content(Str(`{ name: 'Tobie' }`)).ReturnNone(),
	)
	testEncoder(
		t,
		`INSERT INTO person { name: 'Tobie' } RETURN VALUE id`,
		Insert(`person`).Content(Str(`{ name: 'Tobie' }`)).ReturnValue(`id`),
	)
}
