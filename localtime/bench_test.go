package localtime

import "testing"

var (
	benchTm    Tm
	benchEpoch int64
	benchEnv   EnvValue
)

func BenchmarkLocaltime(b *testing.B) {
	benches := []struct {
		name string
		zone string
	}{
		{"utc", ""},
		{"fixed", "EST5"},
		{"rules", "EST5EDT,M3.2.0,M11.1.0"},
	}
	for _, bench := range benches {
		b.Run(bench.name, func(b *testing.B) {
			b.Setenv("TZ", bench.zone)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tm, err := Localtime(1625140800)
				if err != nil {
					b.Fatal(err)
				}
				benchTm = tm
			}
		})
	}
}

func BenchmarkLocaltimeParallel(b *testing.B) {
	b.Setenv("TZ", "EST5EDT,M3.2.0,M11.1.0")
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			tm, err := Localtime(1625140800)
			if err != nil {
				b.Error(err)
				return
			}
			benchTm = tm
		}
	})
}

func BenchmarkTimegm(b *testing.B) {
	tm := Tm{Year: 121, Mon: 6, Mday: 1, Hour: 12, Min: 30, Sec: 45}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchEpoch = Timegm(tm)
	}
}

func BenchmarkMktime(b *testing.B) {
	b.Setenv("TZ", "EST5EDT,M3.2.0,M11.1.0")
	tm := Tm{Year: 121, Mon: 6, Mday: 1, Hour: 12, Min: 30, Sec: 45, Isdst: -1}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchEpoch = Mktime(tm)
	}
}

func BenchmarkEnvLookup(b *testing.B) {
	b.Setenv("TZ", "NZST-12NZDT,M9.5.0,M4.1.0/3")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchEnv = EnvLookup("TZ")
	}
}
