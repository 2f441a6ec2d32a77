//go:build !cgo

package localtime

import "testing"

func TestNativeEngineDisabledWithoutCgo(t *testing.T) {
	if NativeEngine() {
		t.Fatal("non-cgo build claims the native engine")
	}
}

// The fallback strips the optional colon prefix before consulting the
// runtime zone database. Both spellings must resolve identically whether
// or not the database is installed, so no absolute offsets are asserted.
func TestColonPrefixEquivalence(t *testing.T) {
	for _, sec := range []int64{0, 1615716000, 1636275600} {
		t.Setenv("TZ", "America/New_York")
		plain, err := Localtime(sec)
		if err != nil {
			t.Fatalf("epoch %d: %v", sec, err)
		}
		t.Setenv("TZ", ":America/New_York")
		prefixed, err := Localtime(sec)
		if err != nil {
			t.Fatalf("epoch %d: %v", sec, err)
		}
		if plain != prefixed {
			t.Errorf("epoch %d: plain %+v, prefixed %+v", sec, plain, prefixed)
		}
	}
}

func TestUnloadableZoneFallsBackToUTC(t *testing.T) {
	utc := Tm{Mday: 1, Year: 70, Wday: 4}
	for _, zone := range []string{"EST5", "not a zone", "Mars/Olympus_Mons"} {
		t.Setenv("TZ", zone)
		tm, err := Localtime(0)
		if err != nil {
			t.Errorf("zone %q: %v", zone, err)
			continue
		}
		if tm != utc {
			t.Errorf("zone %q: have %+v, want %+v", zone, tm, utc)
		}
	}
}
