package localtime

import (
	"os"
	"testing"
)

func TestEnvLookupForms(t *testing.T) {
	const name = "LOCALTIME_TEST_VAR"

	t.Run("absent", func(t *testing.T) {
		t.Setenv(name, "x")
		os.Unsetenv(name)
		want := EnvValue{Form: BufAbsent}
		if have := EnvLookup(name); have != want {
			t.Errorf("have %+v, want %+v", have, want)
		}
	})
	t.Run("empty", func(t *testing.T) {
		t.Setenv(name, "")
		want := EnvValue{Form: BufStatic, Len: 1}
		if have := EnvLookup(name); have != want {
			t.Errorf("have %+v, want %+v", have, want)
		}
	})
	t.Run("owned", func(t *testing.T) {
		values := []string{
			"UTC0",
			"EST5EDT,M3.2.0,M11.1.0",
			"x",
			"Europe/Zürich", // Len counts bytes, not runes
		}
		for _, value := range values {
			t.Setenv(name, value)
			want := EnvValue{Value: value, Form: BufOwned, Len: len(value) + 1, Cap: len(value) + 1}
			if have := EnvLookup(name); have != want {
				t.Errorf("value %q: have %+v, want %+v", value, have, want)
			}
		}
	})
}

// Every owned lookup allocates a fresh copy and releases it before
// returning; many cycles in a row must keep answering the same value.
func TestEnvLookupRepeated(t *testing.T) {
	const value = "NZST-12NZDT,M9.5.0,M4.1.0/3"
	t.Setenv("TZ", value)

	for i := 0; i < 10000; i++ {
		ev := EnvLookup("TZ")
		if ev.Form != BufOwned || ev.Value != value {
			t.Fatalf("cycle %d: have %+v", i, ev)
		}
	}
}

func TestBufFormString(t *testing.T) {
	tests := []struct {
		form BufForm
		want string
	}{
		{BufAbsent, "absent"},
		{BufStatic, "static"},
		{BufOwned, "owned"},
		{BufForm(42), "BufForm(42)"},
	}
	for _, tt := range tests {
		if have := tt.form.String(); have != tt.want {
			t.Errorf("form %d: have %q, want %q", int(tt.form), have, tt.want)
		}
	}
}
