/*
SurrealQL Builder: simple programmatic constructor for SurrealQL statements
(select / create / insert / delete). Oriented towards text: callers assemble a
statement from typed fragments, and the package renders one syntactically
correct statement string. There is no connection handling, no execution, and
no validation of identifiers or value expressions; those are opaque strings
the caller supplies already escaped/quoted.

See the sibling library https://github.com/mitranim/sqlb for the SQL
counterpart.

Key Features

• Clause order is a function of statement kind, never of call order. Configure
clauses in any order; the output is canonical.

• Structured predicate trees (`Simple`, `And`, `Or`) with precedence-correct,
always-parenthesized rendering of composites.

• Duration codec converting `time.Duration` into compound SurrealQL duration
literals such as "1h1m1s", and back.

• Version-aware rendering of graph-traversal projections: SurrealDB v2+ emits
object destructuring (`->edge->table.{one, two}`), v1 expands each field into
its own projection.

• Supports converting `db`-tagged structs into `SET` assignments and `CONTENT`
object literals.

Examples

	text := surql.Select(surql.Name(`id`)).
		From(`users`).
		Where(surql.Simple(`age > 18`)).
		OrderBy(surql.OrderDesc(`score`)).
		Limit(10).
		String()

	// `SELECT id FROM users WHERE age > 18 ORDER BY score DESC LIMIT 10`

Also see the tests for a catalog of rendered statements.
*/
package surql
