package surql

import (
	"fmt"
	"strconv"
	"time"
)

const (
	Nanosecond  Duration = 1
	Microsecond          = 1000 * Nanosecond
	Millisecond          = 1000 * Microsecond
	Second               = 1000 * Millisecond
	Minute               = 60 * Second
	Hour                 = 60 * Minute
	Day                  = 24 * Hour
	Week                 = 7 * Day
	Year                 = 365 * Day
)

/*
Non-negative quantity of elapsed time at nanosecond resolution, convertible to
and from the dialect's compound duration literal syntax such as "1h30m" or
"1s500ms". Freely convertible with `time.Duration`.

Encoding is greedy decomposition, largest unit first: units appear in strictly
descending order, zero-valued units are skipped, and the zero duration renders
as the single token "0ns". The result is the canonical minimal-length literal.
Negative durations collapse to "0ns"; the dialect has no negative durations.
*/
type Duration time.Duration

// Implement the `Expr` interface, making this a statement fragment.
func (self Duration) Append(text []byte) []byte {
	if self <= 0 {
		return append(text, `0ns`...)
	}

	rem := self
	for _, unit := range durationUnits {
		count := rem / unit.size
		if count > 0 {
			text = strconv.AppendInt(text, int64(count), 10)
			text = append(text, unit.suffix...)
			rem -= count * unit.size
		}
	}
	return text
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Duration) String() string { return exprString(self) }

var durationUnits = []struct {
	size   Duration
	suffix string
}{
	{Year, `y`},
	{Week, `w`},
	{Day, `d`},
	{Hour, `h`},
	{Minute, `m`},
	{Second, `s`},
	{Millisecond, `ms`},
	{Microsecond, `us`},
	{Nanosecond, `ns`},
}

var durationSuffixes = map[string]Duration{
	`y`:  Year,
	`w`:  Week,
	`d`:  Day,
	`h`:  Hour,
	`m`:  Minute,
	`s`:  Second,
	`ms`: Millisecond,
	`us`: Microsecond,
	`ns`: Nanosecond,
}

/*
Parses a compound duration literal such as "1h1m1s" or "500ms" into a
`Duration`. Inverse of `Duration.Append` for canonical literals:
`ParseDuration(dur.String())` returns `dur` for any non-negative duration.
Also accepts non-canonical input such as repeated or out-of-order units,
summing the segments.
*/
func ParseDuration(src string) (Duration, error) {
	if src == `` {
		return 0, errInvalid(`parsing duration`, fmt.Errorf(`empty duration literal`))
	}

	var out Duration
	rest := src

	for len(rest) > 0 {
		digits := leadingDigits(rest)
		if digits == 0 {
			return 0, errDuration(src)
		}

		count, err := strconv.ParseInt(rest[:digits], 10, 64)
		if err != nil {
			return 0, errInvalid(`parsing duration`, err)
		}
		rest = rest[digits:]

		letters := leadingLetters(rest)
		size, ok := durationSuffixes[rest[:letters]]
		if !ok {
			return 0, errDuration(src)
		}
		rest = rest[letters:]

		out += Duration(count) * size
	}

	return out, nil
}

func errDuration(src string) Err {
	return errInvalid(
		`parsing duration`,
		fmt.Errorf(`%q is not a valid duration literal; expected segments such as "1h", "30s", "500ms"`, src),
	)
}

func leadingDigits(val string) int {
	for ind := 0; ind < len(val); ind++ {
		if !(val[ind] >= '0' && val[ind] <= '9') {
			return ind
		}
	}
	return len(val)
}

func leadingLetters(val string) int {
	for ind := 0; ind < len(val); ind++ {
		if !(val[ind] >= 'a' && val[ind] <= 'z') {
			return ind
		}
	}
	return len(val)
}
