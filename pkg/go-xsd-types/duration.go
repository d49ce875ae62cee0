// Package xsd implements the XML Schema duration type as used in DASH
// manifest attributes (mediaPresentationDuration, Period@duration, ...).
package xsd

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Duration is a xsd:duration split into its lexical components.
// Years and Months have no fixed length in nanoseconds and are kept
// separate so conversion can reject them.
type Duration struct {
	Negative    bool
	Years       int64
	Months      int64
	Days        int64
	Hours       int64
	Minutes     int64
	Seconds     int64
	Nanoseconds int64
}

// Grammar of xsd:duration, restricted to the designators seen in manifests.
var durationRE = regexp.MustCompile(`^(-)?P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

var errNotADuration = errors.New("not a valid xsd:duration")

// DurationFromString parses the lexical form, e.g. "PT1M30.5S".
func DurationFromString(s string) (*Duration, error) {
	m := durationRE.FindStringSubmatch(s)
	if m == nil || s == "P" || s == "-P" || strings.HasSuffix(s, "T") {
		return nil, errNotADuration
	}
	d := &Duration{Negative: m[1] == "-"}
	var err error
	set := func(dst *int64, v string) {
		if v == "" || err != nil {
			return
		}
		*dst, err = strconv.ParseInt(v, 10, 64)
	}
	set(&d.Years, m[2])
	set(&d.Months, m[3])
	set(&d.Days, m[4])
	set(&d.Hours, m[5])
	set(&d.Minutes, m[6])
	if err != nil {
		return nil, err
	}
	if m[7] != "" {
		sec, nsec, perr := parseSeconds(m[7])
		if perr != nil {
			return nil, perr
		}
		d.Seconds, d.Nanoseconds = sec, nsec
	}
	return d, nil
}

// parseSeconds splits a decimal seconds field into whole seconds and
// nanoseconds without going through floating point.
func parseSeconds(s string) (sec, nsec int64, err error) {
	whole, frac, _ := strings.Cut(s, ".")
	sec, err = strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, 0, err
	}
	if frac != "" {
		if len(frac) > 9 {
			frac = frac[:9]
		}
		nsec, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, 0, err
		}
		for i := len(frac); i < 9; i++ {
			nsec *= 10
		}
	}
	return sec, nsec, nil
}

var errIndeterminate = errors.New("duration with years or months has no fixed length")

// ToNanoseconds converts to a nanosecond count. Fails for durations
// carrying years or months.
func (d Duration) ToNanoseconds() (int64, error) {
	if d.Years != 0 || d.Months != 0 {
		return 0, errIndeterminate
	}
	n := ((d.Days*24+d.Hours)*60+d.Minutes)*60 + d.Seconds
	n = n*1000000000 + d.Nanoseconds
	if d.Negative {
		n = -n
	}
	return n, nil
}

// String renders the lexical form.
func (d Duration) String() string {
	var b strings.Builder
	if d.Negative {
		b.WriteByte('-')
	}
	b.WriteByte('P')
	if d.Years != 0 {
		fmt.Fprintf(&b, "%dY", d.Years)
	}
	if d.Months != 0 {
		fmt.Fprintf(&b, "%dM", d.Months)
	}
	if d.Days != 0 {
		fmt.Fprintf(&b, "%dD", d.Days)
	}
	if d.Hours == 0 && d.Minutes == 0 && d.Seconds == 0 && d.Nanoseconds == 0 {
		if b.Len() == 1 || (d.Negative && b.Len() == 2) {
			b.WriteString("T0S")
		}
		return b.String()
	}
	b.WriteByte('T')
	if d.Hours != 0 {
		fmt.Fprintf(&b, "%dH", d.Hours)
	}
	if d.Minutes != 0 {
		fmt.Fprintf(&b, "%dM", d.Minutes)
	}
	if d.Seconds != 0 || d.Nanoseconds != 0 {
		var buf [10]byte
		w := len(buf)
		r := fmtNano(buf[:w], d.Nanoseconds)
		if r <= w {
			fmt.Fprintf(&b, "%d.%sS", d.Seconds, buf[r:])
		} else {
			fmt.Fprintf(&b, "%dS", d.Seconds)
		}
	}
	return b.String()
}

// fmtNano formats the fractional second (in nanoseconds) into the tail
// of buf, dropping trailing zeros but keeping leading ones.
// Returns the index where the digits begin, or len(buf)+1 when the
// fraction is zero and nothing was written.
func fmtNano(buf []byte, v int64) int {
	w := len(buf)
	if v == 0 {
		return w + 1
	}
	digits := 9
	for v%10 == 0 {
		v /= 10
		digits--
	}
	for i := 0; i < digits; i++ {
		w--
		buf[w] = byte(v%10) + '0'
		v /= 10
	}
	return w
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := DurationFromString(string(text))
	if err != nil {
		return err
	}
	*d = *parsed
	return nil
}
