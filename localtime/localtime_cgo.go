//go:build cgo

package localtime

/*
#include "tz.h"
*/
import "C"

import (
	"fmt"
	"syscall"
)

// NativeEngine reports whether this build converts through the vendored C
// engine.
func NativeEngine() bool { return true }

// Localtime decomposes a Unix time into calendar time in the zone named by
// the TZ environment variable. Unset, empty, oversized, or non-POSIX TZ
// values mean UTC; geographic zone files are not compiled into the engine.
// The error wraps both ErrRange and the platform errno.
func Localtime(sec int64) (Tm, error) {
	var (
		csec = C.lt_time_t(sec)
		ctm  C.lt_tm
	)
	ret, errno := C.lt_localtime_r(&csec, &ctm)
	if ret == nil {
		if errno == nil {
			errno = syscall.EOVERFLOW
		}
		return Tm{}, fmt.Errorf("%w: epoch %d: %w", ErrRange, sec, errno)
	}
	return goTm(&ctm), nil
}

// Timegm interprets tm as UTC and returns its Unix time. Out-of-range
// fields carry over calendar-style (January 32nd is February 1st). The
// engine normalizes a private copy, so the caller's value is never
// modified.
func Timegm(tm Tm) int64 {
	ctm := cTm(&tm)
	return int64(C.lt_timegm(&ctm))
}

// Mktime interprets tm in the TZ zone and returns its Unix time. A
// positive Isdst asserts daylight time, zero asserts standard time, and a
// negative value resolves against the zone rules; the standard reading
// wins when the wall time is ambiguous or falls in a transition gap.
// Normalization and copy semantics match Timegm.
func Mktime(tm Tm) int64 {
	ctm := cTm(&tm)
	return int64(C.lt_mktime(&ctm))
}

func goTm(c *C.lt_tm) Tm {
	return Tm{
		Sec:    int(c.tm_sec),
		Min:    int(c.tm_min),
		Hour:   int(c.tm_hour),
		Mday:   int(c.tm_mday),
		Mon:    int(c.tm_mon),
		Year:   int(c.tm_year),
		Wday:   int(c.tm_wday),
		Yday:   int(c.tm_yday),
		Isdst:  int(c.tm_isdst),
		Gmtoff: int64(c.tm_gmtoff),
	}
}

func cTm(t *Tm) C.lt_tm {
	return C.lt_tm{
		tm_sec:    C.int(t.Sec),
		tm_min:    C.int(t.Min),
		tm_hour:   C.int(t.Hour),
		tm_mday:   C.int(t.Mday),
		tm_mon:    C.int(t.Mon),
		tm_year:   C.int(t.Year),
		tm_wday:   C.int(t.Wday),
		tm_yday:   C.int(t.Yday),
		tm_isdst:  C.int(t.Isdst),
		tm_gmtoff: C.long(t.Gmtoff),
	}
}
