//go:build cgo

package localtime

/*
#include <stdlib.h>

#include "tz.h"
*/
import "C"

import (
	"os"
	"unsafe"
)

// ltGoEnvLookup is the engine's only window into the process environment.
// os.LookupEnv answers under the runtime's environment lock, the same lock
// os.Setenv and os.Unsetenv take, so the engine can never observe a value
// mid-mutation. The variable name arrives length-delimited and is not
// assumed zero-terminated.
//
// The returned carrier follows the lt_buf contract: an absent variable is
// the zero struct, the empty value borrows the engine's static byte, and
// everything else is a heap copy with the terminator counted in both len
// and cap.
//
//export ltGoEnvLookup
func ltGoEnvLookup(name *C.char, nameLen C.size_t) C.lt_buf {
	val, ok := os.LookupEnv(C.GoStringN(name, C.int(nameLen)))
	switch {
	case !ok:
		return C.lt_buf{}
	case val == "":
		return C.lt_buf{ptr: &C.lt_empty_str[0], len: 1}
	}
	n := C.size_t(len(val) + 1)
	return C.lt_buf{ptr: C.CString(val), len: n, cap: n}
}

// ltGoBufRelease takes back a carrier produced by ltGoEnvLookup. cap == 0
// marks the two forms that own nothing; cap > 0 is heap storage from the
// lookup's C.CString and is freed here, on the side that allocated it.
//
//export ltGoBufRelease
func ltGoBufRelease(buf C.lt_buf) {
	if buf.cap == 0 {
		return
	}
	C.free(unsafe.Pointer(buf.ptr))
}
