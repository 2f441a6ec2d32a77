//go:build cgo

package localtime

// The vendored engine is compiled into exactly this translation unit;
// every other cgo file in the package includes only tz.h declarations.

/*
#cgo CFLAGS: -std=gnu17
#cgo CFLAGS: -I${SRCDIR}/libtz

#include "./libtz/tz.c"
*/
import "C"
