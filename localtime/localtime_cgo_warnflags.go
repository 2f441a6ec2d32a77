//go:build cgo && libtzwarn

package localtime

/*
#cgo CFLAGS: -Wall -Wextra
*/
import "C"
