package surql

import (
	"testing"
	"time"
)

func TestDuration_Append(t *testing.T) {
	test := func(exp string, val Duration) {
		t.Helper()
		testEncoder(t, exp, val)
	}

	test(`0ns`, 0)
	test(`0ns`, -1)
	test(`42ns`, 42)
	test(`250us`, 250*Microsecond)
	test(`5ms`, 5*Millisecond)
	test(`1s500ms`, 1500*Millisecond)
	test(`45s`, Duration(45*time.Second))
	test(`1m30s`, 90*Second)
	test(`1h1m1s`, 3661*Second)
	test(`1d`, Day)
	test(`1w`, Week)
	test(`1y`, Year)
	test(`1y2w3d4h5m6s`, Year+2*Week+3*Day+4*Hour+5*Minute+6*Second)
	test(`1s1ms1us1ns`, Second+Millisecond+Microsecond+Nanosecond)
}

func TestDuration_weeks_before_days(t *testing.T) {
	// 366 days is a year and a day, not 52 weeks and change.
	testEncoder(t, `1y1d`, 366*Day)
	testEncoder(t, `1w`, 7*Day)
	testEncoder(t, `6d`, 6*Day)
}

func TestParseDuration(t *testing.T) {
	test := func(exp Duration, src string) {
		t.Helper()
		out, err := ParseDuration(src)
		eq(t, nil, err)
		eq(t, exp, out)
	}

	test(0, `0ns`)
	test(42, `42ns`)
	test(250*Microsecond, `250us`)
	test(90*Second, `1m30s`)
	test(3661*Second, `1h1m1s`)
	test(1500*Millisecond, `1s500ms`)
	test(Year+Day, `1y1d`)

	// Segment order and repetition are not validated.
	test(90*Second, `30s1m`)
	test(2*Second, `1s1s`)
}

func TestParseDuration_invalid(t *testing.T) {
	test := func(src string) {
		t.Helper()
		_, err := ParseDuration(src)
		if err == nil {
			t.Fatalf(`expected parse error for %q`, src)
		}
		eq(t, true, errIs(err, ErrInvalidInput))
	}

	test(``)
	test(`10`)
	test(`ns`)
	test(`10xs`)
	test(`1h30`)
	test(`1.5h`)
	test(` 1h`)
}

func TestDuration_roundtrip(t *testing.T) {
	test := func(val Duration) {
		t.Helper()
		out, err := ParseDuration(val.String())
		eq(t, nil, err)
		eq(t, val, out)
	}

	test(0)
	test(Nanosecond)
	test(1500 * Millisecond)
	test(3661 * Second)
	test(Year + 2*Week + 3*Day + 4*Hour)
}
