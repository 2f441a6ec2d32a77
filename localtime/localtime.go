// Package localtime converts Unix time to and from calendar time without
// racing the Go runtime over the process environment.
//
// The classic localtime_r family reads TZ through getenv on the raw C
// environment, unsynchronized against os.Setenv from other goroutines. This
// package inverts that dependency: the vendored native engine (libtz) never
// touches the environment itself and instead asks the Go side through an
// exported callback that answers under the same runtime lock os.Setenv
// takes. os.Setenv("TZ", ...) is therefore the supported way to change
// zones, and a mutation is visible to the very next conversion.
//
// The native engine is compiled in when cgo is available; otherwise a
// pure-Go fallback on the time package serves the same API. NativeEngine
// reports which backend a build carries.
package localtime

import (
	"errors"
	"fmt"
)

// ErrRange reports a conversion whose calendar year does not fit Tm.
var ErrRange = errors.New("localtime: time value out of range")

// Tm is a calendar-time snapshot in the layout of the C broken-down time.
// There is no symbolic zone-name field: a name pointer would have to
// outlive the call that produced it, which the bridge cannot guarantee, so
// zone identity is carried by Gmtoff and Isdst only.
type Tm struct {
	Sec    int   // 0-59
	Min    int   // 0-59
	Hour   int   // 0-23
	Mday   int   // 1-31
	Mon    int   // 0-11
	Year   int   // years since 1900
	Wday   int   // 0-6, Sunday = 0
	Yday   int   // 0-365
	Isdst  int   // >0 daylight time, 0 standard time, <0 unknown
	Gmtoff int64 // seconds east of UTC
}

// BufForm identifies how an environment value crosses the bridge.
type BufForm int

const (
	// BufAbsent is the unset variable: null pointer, nothing to release.
	BufAbsent BufForm = iota
	// BufStatic is the set-but-empty value, served from engine-owned
	// static storage: length 1 (just the terminator), nothing to release.
	BufStatic
	// BufOwned is a heap copy, terminator included, owned by the holder
	// until it is released.
	BufOwned
)

func (f BufForm) String() string {
	switch f {
	case BufAbsent:
		return "absent"
	case BufStatic:
		return "static"
	case BufOwned:
		return "owned"
	}
	return fmt.Sprintf("BufForm(%d)", int(f))
}

// EnvValue describes one environment lookup as the engine observes it.
type EnvValue struct {
	Value string // decoded value; empty when absent or empty
	Form  BufForm
	Len   int // transferred bytes, terminator included; 0 when absent
	Cap   int // bytes the holder must release; 0 means borrowed or absent
}
