package xsd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMain(t *testing.T) {

	var testdata = []struct {
		value  int64
		ret    int
		expect string
	}{
		{0, 11, "0"},
		{1, 1, "000000001"},
		{3, 1, "000000003"},
		{1231123, 1, "001231123"},
		{1231123, 1, "001231123"},
		{999999999, 1, "999999999"},
		{900000000, 9, "9"},
	}

	for _, elem := range testdata {
		var buf [10]byte = [10]byte{32, 32, 32, 32, 32, 32, 32, 32, 32, 32}
		w := len(buf)
		r := fmtNano(buf[:w], elem.value)
		assert.Equal(t, elem.ret, r)
		if r <= w {
			result := string(buf[r:])
			assert.EqualValues(t, elem.expect, result)
		}
	}
}

func TestDurationFromString(t *testing.T) {

	var testdata = []struct {
		in     string
		expect Duration
	}{
		{"PT0S", Duration{}},
		{"PT30S", Duration{Seconds: 30}},
		{"PT1M30.5S", Duration{Minutes: 1, Seconds: 30, Nanoseconds: 500000000}},
		{"PT2H10M", Duration{Hours: 2, Minutes: 10}},
		{"P1DT12H", Duration{Days: 1, Hours: 12}},
		{"PT0.024S", Duration{Nanoseconds: 24000000}},
		{"-PT1S", Duration{Negative: true, Seconds: 1}},
		{"P1Y2M", Duration{Years: 1, Months: 2}},
	}
	for _, elem := range testdata {
		got, err := DurationFromString(elem.in)
		assert.NoError(t, err, elem.in)
		if got != nil {
			assert.Equal(t, elem.expect, *got, elem.in)
		}
	}

	for _, bad := range []string{"", "P", "-P", "PT", "30S", "PT30X", "P-1D"} {
		_, err := DurationFromString(bad)
		assert.Error(t, err, bad)
	}
}

func TestToNanoseconds(t *testing.T) {

	var testdata = []struct {
		in     string
		expect int64
	}{
		{"PT30S", 30000000000},
		{"PT1M30.5S", 90500000000},
		{"PT2H", 7200000000000},
		{"P1D", 86400000000000},
		{"-PT1S", -1000000000},
		{"PT0.000000001S", 1},
	}
	for _, elem := range testdata {
		d, err := DurationFromString(elem.in)
		assert.NoError(t, err, elem.in)
		ns, err := d.ToNanoseconds()
		assert.NoError(t, err, elem.in)
		assert.Equal(t, elem.expect, ns, elem.in)
	}

	indeterminate, err := DurationFromString("P1Y")
	assert.NoError(t, err)
	_, err = indeterminate.ToNanoseconds()
	assert.Error(t, err)
}

func TestString(t *testing.T) {

	var testdata = []struct {
		in     Duration
		expect string
	}{
		{Duration{}, "PT0S"},
		{Duration{Seconds: 30}, "PT30S"},
		{Duration{Minutes: 1, Seconds: 30, Nanoseconds: 500000000}, "PT1M30.5S"},
		{Duration{Hours: 2, Minutes: 10}, "PT2H10M"},
		{Duration{Days: 1, Hours: 12}, "P1DT12H"},
		{Duration{Negative: true, Seconds: 1}, "-PT1S"},
	}
	for _, elem := range testdata {
		assert.Equal(t, elem.expect, elem.in.String())
	}
}
