package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"runtime"
	"time"

	"github.com/naoina/toml"
)

const defaultStressDuration = 5 * time.Second

// defaultStressZones rotates through plain offsets, quoted names, explicit
// and implied transition rules, both hemispheres, and one value that no
// parser accepts, so the soak crosses every zone-resolution path. Invalid
// values are not errors: they resolve to UTC.
var defaultStressZones = []string{
	"",
	"UTC0",
	"EST5",
	"PST8PDT",
	"EST5EDT,M3.2.0,M11.1.0",
	"<+0330>-3:30",
	"NZST-12NZDT,M9.5.0,M4.1.0/3",
	"not a zone",
}

// defaultStressEpochs spreads the conversions across seasons, both signs
// and daylight-saving transition edges.
var defaultStressEpochs = []int64{
	0,
	-86400,
	951782400,  // 2000-02-29 UTC
	1609502400, // deep northern winter
	1615716000, // US spring-forward instant
	1625140800, // deep northern summer
	1636275599, // last daylight second of the US fall-back
}

// stressConfig carries the stress run settings; field names are the TOML
// keys. Duration is a Go duration string so settings files stay readable.
type stressConfig struct {
	Converters int      `toml:",omitempty"`
	Setters    int      `toml:",omitempty"`
	Duration   string   `toml:",omitempty"`
	Zones      []string `toml:",omitempty"`
	Epochs     []int64  `toml:",omitempty"`
}

// defaultStressConfig is the baseline that a settings file and then any
// explicit flags override.
var defaultStressConfig = stressConfig{
	Converters: runtime.NumCPU(),
	Setters:    2,
	Duration:   defaultStressDuration.String(),
	Zones:      defaultStressZones,
	Epochs:     defaultStressEpochs,
}

func (c *stressConfig) validate() error {
	switch {
	case c.Converters < 1:
		return fmt.Errorf("converters must be positive, have %d", c.Converters)
	case c.Setters < 0:
		return fmt.Errorf("setters must not be negative, have %d", c.Setters)
	case len(c.Zones) == 0:
		return errors.New("at least one zone is required")
	case len(c.Epochs) == 0:
		return errors.New("at least one epoch is required")
	}
	return nil
}

// These settings ensure that TOML keys use the same names as Go struct
// fields, and that unknown keys in a settings file are an error rather
// than silently ignored.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

func loadStressConfig(file string, cfg *stressConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}
