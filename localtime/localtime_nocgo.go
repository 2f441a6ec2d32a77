//go:build !cgo

package localtime

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"
)

// NativeEngine reports whether this build converts through the vendored C
// engine.
func NativeEngine() bool { return false }

// Localtime decomposes a Unix time into calendar time in the zone named by
// the TZ environment variable. The fallback resolves TZ through the
// runtime zone database rather than the engine's POSIX parser, so plain
// POSIX strings that are not also database names decompose as UTC. The
// range bound matches the engine's at the margin only approximately.
func Localtime(sec int64) (Tm, error) {
	// keep time.Unix clear of internal wraparound before the exact
	// year check below
	if sec > 1<<60 || sec < -(1<<60) {
		return Tm{}, fmt.Errorf("%w: epoch %d", ErrRange, sec)
	}
	t := time.Unix(sec, 0).In(currentLocation())
	year := int64(t.Year()) - 1900
	if year > math.MaxInt32 || year < math.MinInt32 {
		return Tm{}, fmt.Errorf("%w: epoch %d", ErrRange, sec)
	}
	_, off := t.Zone()
	isdst := 0
	if t.IsDST() {
		isdst = 1
	}
	return Tm{
		Sec:    t.Second(),
		Min:    t.Minute(),
		Hour:   t.Hour(),
		Mday:   t.Day(),
		Mon:    int(t.Month()) - 1,
		Year:   int(year),
		Wday:   int(t.Weekday()),
		Yday:   t.YearDay() - 1,
		Isdst:  isdst,
		Gmtoff: int64(off),
	}, nil
}

// Timegm interprets tm as UTC and returns its Unix time. Out-of-range
// fields carry over calendar-style, exactly as time.Date normalizes them.
func Timegm(tm Tm) int64 {
	return time.Date(tm.Year+1900, time.Month(tm.Mon+1), tm.Mday,
		tm.Hour, tm.Min, tm.Sec, 0, time.UTC).Unix()
}

// Mktime interprets tm in the TZ zone and returns its Unix time. The
// fallback leaves ambiguity resolution to time.Date; the Isdst hint is
// ignored.
func Mktime(tm Tm) int64 {
	return time.Date(tm.Year+1900, time.Month(tm.Mon+1), tm.Mday,
		tm.Hour, tm.Min, tm.Sec, 0, currentLocation()).Unix()
}

// currentLocation resolves TZ the way the engine build does, substituting
// the runtime zone database for the POSIX parser: unset, empty, or
// unloadable values mean UTC.
func currentLocation() *time.Location {
	tz, ok := os.LookupEnv("TZ")
	if !ok || tz == "" {
		return time.UTC
	}
	tz = strings.TrimPrefix(tz, ":")
	if loc, err := time.LoadLocation(tz); err == nil {
		return loc
	}
	return time.UTC
}
