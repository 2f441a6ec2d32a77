//go:build !cgo

package localtime

import "os"

// EnvLookup mirrors the carrier classification of the cgo build without a
// boundary to cross: Len and Cap report the sizes the transfer would use,
// so audits and tests see one contract on both backends.
func EnvLookup(name string) EnvValue {
	val, ok := os.LookupEnv(name)
	switch {
	case !ok:
		return EnvValue{Form: BufAbsent}
	case val == "":
		return EnvValue{Form: BufStatic, Len: 1}
	}
	return EnvValue{Value: val, Form: BufOwned, Len: len(val) + 1, Cap: len(val) + 1}
}
