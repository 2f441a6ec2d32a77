//go:build cgo

package localtime

/*
#include <stdlib.h>

#include "tz.h"
*/
import "C"

import "unsafe"

// EnvLookup reports the value of an environment variable exactly as the
// engine receives it, driving the full carrier cycle: construct under the
// runtime lock, read, release. Len and Cap expose the transfer contract
// for callers that need to audit it (see the env command of cmd/tzconv).
func EnvLookup(name string) EnvValue {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	buf := ltGoEnvLookup(cname, C.size_t(len(name)))
	defer ltGoBufRelease(buf)

	ev := EnvValue{Len: int(buf.len), Cap: int(buf.cap)}
	switch {
	case buf.ptr == nil:
		ev.Form = BufAbsent
	case buf.cap == 0:
		ev.Form = BufStatic
	default:
		ev.Form = BufOwned
		ev.Value = C.GoStringN(buf.ptr, C.int(buf.len-1))
	}
	return ev
}
