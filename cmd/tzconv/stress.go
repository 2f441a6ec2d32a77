package main

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	log "github.com/inconshreveable/log15"
	"github.com/tzsafe/localtime/internal/flags"
	"github.com/tzsafe/localtime/localtime"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var (
	convertersFlag = &cli.IntFlag{
		Name:     "converters",
		Usage:    "Number of goroutines decomposing epochs",
		Value:    defaultStressConfig.Converters,
		Category: flags.StressCategory,
	}
	settersFlag = &cli.IntFlag{
		Name:     "setters",
		Usage:    "Number of goroutines rotating the TZ variable",
		Value:    defaultStressConfig.Setters,
		Category: flags.StressCategory,
	}
	durationFlag = &cli.DurationFlag{
		Name:     "duration",
		Usage:    "How long to keep the hammering up",
		Value:    defaultStressDuration,
		Category: flags.StressCategory,
	}
	zoneFlag = &cli.StringSliceFlag{
		Name:     "zone",
		Usage:    "Zone value to rotate through TZ (repeat for multiple)",
		Category: flags.StressCategory,
	}
	configFileFlag = &cli.StringFlag{
		Name:     "config",
		Usage:    "TOML settings file for the stress run",
		Category: flags.StressCategory,
	}
)

var commandStress = &cli.Command{
	Name:  "stress",
	Usage: "run concurrent conversions while rotating TZ",
	Description: `
The stress command exercises the conversion engine and the process
environment at the same time: converter goroutines decompose a fixed set
of epochs in a tight loop while setter goroutines rotate the TZ variable
through a list of zone values. Every decomposed calendar value is checked
for structural sanity, so a torn read fails the run immediately.

Settings can be placed in a TOML file (see the config flag). Explicit
flags override the file.`,
	Flags: []cli.Flag{
		convertersFlag,
		settersFlag,
		durationFlag,
		zoneFlag,
		configFileFlag,
		jsonFlag,
	},
	Action: runStress,
}

type outputStress struct {
	Engine      string  `json:"engine"`
	Converters  int     `json:"converters"`
	Setters     int     `json:"setters"`
	Duration    string  `json:"duration"`
	Conversions uint64  `json:"conversions"`
	Rotations   uint64  `json:"rotations"`
	Rate        float64 `json:"rate"`
	CPUSeconds  float64 `json:"cpuSeconds"`
}

func runStress(ctx *cli.Context) error {
	cfg := defaultStressConfig
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadStressConfig(file, &cfg); err != nil {
			Fatalf("Failed to load settings file: %v", err)
		}
	}
	if ctx.IsSet(convertersFlag.Name) {
		cfg.Converters = ctx.Int(convertersFlag.Name)
	}
	if ctx.IsSet(settersFlag.Name) {
		cfg.Setters = ctx.Int(settersFlag.Name)
	}
	if ctx.IsSet(durationFlag.Name) {
		cfg.Duration = ctx.Duration(durationFlag.Name).String()
	}
	if ctx.IsSet(zoneFlag.Name) {
		cfg.Zones = ctx.StringSlice(zoneFlag.Name)
	}
	if err := cfg.validate(); err != nil {
		Fatalf("Invalid stress settings: %v", err)
	}
	duration, err := time.ParseDuration(cfg.Duration)
	if err != nil {
		Fatalf("Invalid stress duration %q: %v", cfg.Duration, err)
	}
	// The setters trample TZ, so put it back the way it was.
	if tz, ok := os.LookupEnv("TZ"); ok {
		defer os.Setenv("TZ", tz)
	} else {
		defer os.Unsetenv("TZ")
	}
	log.Info("Starting stress run", "engine", engineName(), "converters", cfg.Converters,
		"setters", cfg.Setters, "zones", len(cfg.Zones), "epochs", len(cfg.Epochs), "duration", duration)

	var (
		conversions uint64
		rotations   uint64
	)
	runCtx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	start := time.Now()
	cpuStart := getProcessCPUTime()

	g, runCtx := errgroup.WithContext(runCtx)
	for i := 0; i < cfg.Converters; i++ {
		g.Go(func() error {
			for {
				select {
				case <-runCtx.Done():
					return nil
				default:
				}
				for _, epoch := range cfg.Epochs {
					tm, err := localtime.Localtime(epoch)
					if err != nil {
						return fmt.Errorf("decompose epoch %d: %v", epoch, err)
					}
					if err := checkCalendar(epoch, tm); err != nil {
						return err
					}
					// The fields and the offset must come from one zone.
					if have := localtime.Timegm(tm) - tm.Gmtoff; have != epoch {
						return fmt.Errorf("torn decomposition of epoch %d: recomposes to %d: %+v", epoch, have, tm)
					}
					atomic.AddUint64(&conversions, 1)
				}
			}
		})
	}
	for i := 0; i < cfg.Setters; i++ {
		offset := i // stagger the rotation so the setters disagree
		g.Go(func() error {
			for n := offset; ; n++ {
				select {
				case <-runCtx.Done():
					return nil
				default:
				}
				if err := os.Setenv("TZ", cfg.Zones[n%len(cfg.Zones)]); err != nil {
					return fmt.Errorf("rotate TZ: %v", err)
				}
				atomic.AddUint64(&rotations, 1)
			}
		})
	}
	g.Go(func() error {
		tick := time.NewTicker(time.Second)
		defer tick.Stop()
		for {
			select {
			case <-runCtx.Done():
				return nil
			case <-tick.C:
				log.Info("Stress run progress", "conversions", atomic.LoadUint64(&conversions),
					"rotations", atomic.LoadUint64(&rotations), "elapsed", time.Since(start).Round(time.Millisecond))
			}
		}
	})
	if err := g.Wait(); err != nil {
		Fatalf("Stress run failed: %v", err)
	}
	var (
		elapsed = time.Since(start)
		cpu     = time.Duration(getProcessCPUTime()-cpuStart) * 10 * time.Millisecond
		total   = atomic.LoadUint64(&conversions)
		rotated = atomic.LoadUint64(&rotations)
		rate    = float64(total) / elapsed.Seconds()
	)
	if ctx.Bool(jsonFlag.Name) {
		mustPrintJSON(outputStress{
			Engine:      engineName(),
			Converters:  cfg.Converters,
			Setters:     cfg.Setters,
			Duration:    elapsed.String(),
			Conversions: total,
			Rotations:   rotated,
			Rate:        rate,
			CPUSeconds:  cpu.Seconds(),
		})
		return nil
	}
	log.Info("Stress run complete", "conversions", total, "rotations", rotated,
		"rate", fmt.Sprintf("%.0f/s", rate), "elapsed", elapsed.Round(time.Millisecond), "cpu", cpu)
	return nil
}

// maxZoneOffset bounds |Gmtoff|: POSIX zone offsets reach 24:59:59 and the
// daylight shift adds another hour.
const maxZoneOffset = 93600

// checkCalendar rejects calendar values no single zone could produce. A
// torn read mixing two zones almost always trips one of these bounds; the
// round-trip tests catch the rest.
func checkCalendar(sec int64, tm localtime.Tm) error {
	switch {
	case tm.Sec < 0 || tm.Sec > 59:
		return fmt.Errorf("epoch %d: seconds %d out of range", sec, tm.Sec)
	case tm.Min < 0 || tm.Min > 59:
		return fmt.Errorf("epoch %d: minutes %d out of range", sec, tm.Min)
	case tm.Hour < 0 || tm.Hour > 23:
		return fmt.Errorf("epoch %d: hours %d out of range", sec, tm.Hour)
	case tm.Mday < 1 || tm.Mday > 31:
		return fmt.Errorf("epoch %d: day of month %d out of range", sec, tm.Mday)
	case tm.Mon < 0 || tm.Mon > 11:
		return fmt.Errorf("epoch %d: month %d out of range", sec, tm.Mon)
	case tm.Wday < 0 || tm.Wday > 6:
		return fmt.Errorf("epoch %d: weekday %d out of range", sec, tm.Wday)
	case tm.Yday < 0 || tm.Yday > 365:
		return fmt.Errorf("epoch %d: day of year %d out of range", sec, tm.Yday)
	case tm.Gmtoff < -maxZoneOffset || tm.Gmtoff > maxZoneOffset:
		return fmt.Errorf("epoch %d: zone offset %d out of range", sec, tm.Gmtoff)
	}
	return nil
}
