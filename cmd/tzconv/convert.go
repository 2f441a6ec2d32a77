package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/tzsafe/localtime/internal/flags"
	"github.com/tzsafe/localtime/localtime"
	"github.com/urfave/cli/v2"
)

type outputCalendar struct {
	Epoch  int64  `json:"epoch"`
	Civil  string `json:"civil"`
	Sec    int    `json:"sec"`
	Min    int    `json:"min"`
	Hour   int    `json:"hour"`
	Mday   int    `json:"mday"`
	Mon    int    `json:"mon"`
	Year   int    `json:"year"`
	Wday   int    `json:"wday"`
	Yday   int    `json:"yday"`
	Isdst  int    `json:"isdst"`
	Gmtoff int64  `json:"gmtoff"`
}

type outputEpoch struct {
	Epoch int64 `json:"epoch"`
	Local bool  `json:"local"`
}

var (
	localFlag = &cli.BoolFlag{
		Name:     "local",
		Usage:    "interpret the calendar fields in the TZ zone instead of UTC",
		Category: flags.ConversionCategory,
	}
	isdstFlag = &cli.IntFlag{
		Name:     "isdst",
		Usage:    "daylight hint for --local: 1 daylight, 0 standard, -1 resolve from the zone rules",
		Value:    -1,
		Category: flags.ConversionCategory,
	}
)

var commandDecompose = &cli.Command{
	Name:      "decompose",
	Usage:     "decompose a Unix time into calendar fields",
	ArgsUsage: "<epoch-seconds>",
	Description: `
Decompose converts a count of seconds since the Unix epoch into calendar
time in the zone named by the TZ environment variable. Unset, empty or
unparseable TZ values mean UTC.

Negative epochs must follow a -- separator so they are not read as flags:

    tzconv decompose -- -86400`,
	Flags: []cli.Flag{
		jsonFlag,
	},
	Action: func(ctx *cli.Context) error {
		if ctx.Args().Len() != 1 {
			Fatalf("Usage: tzconv decompose <epoch-seconds>")
		}
		sec, err := strconv.ParseInt(ctx.Args().First(), 10, 64)
		if err != nil {
			Fatalf("Invalid epoch value %q: %v", ctx.Args().First(), err)
		}
		tm, err := localtime.Localtime(sec)
		if err != nil {
			Fatalf("Conversion failed: %v", err)
		}
		out := outputCalendar{
			Epoch:  sec,
			Civil:  civilString(tm),
			Sec:    tm.Sec,
			Min:    tm.Min,
			Hour:   tm.Hour,
			Mday:   tm.Mday,
			Mon:    tm.Mon,
			Year:   tm.Year,
			Wday:   tm.Wday,
			Yday:   tm.Yday,
			Isdst:  tm.Isdst,
			Gmtoff: tm.Gmtoff,
		}
		if ctx.Bool(jsonFlag.Name) {
			mustPrintJSON(out)
		} else {
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"FIELD", "VALUE"})
			table.AppendBulk([][]string{
				{"epoch", strconv.FormatInt(out.Epoch, 10)},
				{"civil", out.Civil},
				{"sec", strconv.Itoa(tm.Sec)},
				{"min", strconv.Itoa(tm.Min)},
				{"hour", strconv.Itoa(tm.Hour)},
				{"mday", strconv.Itoa(tm.Mday)},
				{"mon", fmt.Sprintf("%d (%s)", tm.Mon, monthNames[tm.Mon])},
				{"year", fmt.Sprintf("%d (%d)", tm.Year, tm.Year+1900)},
				{"wday", fmt.Sprintf("%d (%s)", tm.Wday, weekdayNames[tm.Wday])},
				{"yday", strconv.Itoa(tm.Yday)},
				{"isdst", strconv.Itoa(tm.Isdst)},
				{"gmtoff", fmt.Sprintf("%d (%s)", tm.Gmtoff, offsetString(tm.Gmtoff))},
			})
			table.Render()
		}
		return nil
	},
}

var commandEpoch = &cli.Command{
	Name:      "epoch",
	Usage:     "compose calendar fields into a Unix time",
	ArgsUsage: "<YYYY-MM-DD[THH:MM:SS]>",
	Description: `
Epoch converts calendar fields into seconds since the Unix epoch,
interpreting them as UTC by default or in the TZ zone with --local.

Out-of-range fields carry over calendar-style, so 1999-02-29 composes to
the same epoch as 1999-03-01.`,
	Flags: []cli.Flag{
		jsonFlag,
		localFlag,
		isdstFlag,
	},
	Action: func(ctx *cli.Context) error {
		if ctx.Args().Len() != 1 {
			Fatalf("Usage: tzconv epoch [--local] <YYYY-MM-DD[THH:MM:SS]>")
		}
		tm, err := parseCalendar(ctx.Args().First())
		if err != nil {
			Fatalf("Invalid calendar value %q: %v", ctx.Args().First(), err)
		}
		var sec int64
		if ctx.Bool(localFlag.Name) {
			tm.Isdst = ctx.Int(isdstFlag.Name)
			sec = localtime.Mktime(tm)
		} else {
			sec = localtime.Timegm(tm)
		}
		if ctx.Bool(jsonFlag.Name) {
			mustPrintJSON(outputEpoch{Epoch: sec, Local: ctx.Bool(localFlag.Name)})
		} else {
			fmt.Println(sec)
		}
		return nil
	},
}

var (
	weekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	monthNames   = [12]string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
)

// parseCalendar splits YYYY-MM-DD[THH:MM:SS] into calendar fields. The
// fields are deliberately not range-checked: out-of-range values are legal
// input and carry over during conversion, matching the engine's calendar
// normalization rules.
func parseCalendar(s string) (localtime.Tm, error) {
	date, clock, hasClock := strings.Cut(s, "T")
	dp := strings.Split(date, "-")
	if len(dp) != 3 {
		return localtime.Tm{}, fmt.Errorf("want YYYY-MM-DD, have %q", date)
	}
	year, err1 := strconv.Atoi(dp[0])
	mon, err2 := strconv.Atoi(dp[1])
	mday, err3 := strconv.Atoi(dp[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return localtime.Tm{}, fmt.Errorf("non-numeric date field in %q", date)
	}
	tm := localtime.Tm{Year: year - 1900, Mon: mon - 1, Mday: mday, Isdst: -1}
	if !hasClock {
		return tm, nil
	}
	cp := strings.Split(clock, ":")
	if len(cp) != 3 {
		return localtime.Tm{}, fmt.Errorf("want HH:MM:SS, have %q", clock)
	}
	var err4, err5, err6 error
	tm.Hour, err4 = strconv.Atoi(cp[0])
	tm.Min, err5 = strconv.Atoi(cp[1])
	tm.Sec, err6 = strconv.Atoi(cp[2])
	if err4 != nil || err5 != nil || err6 != nil {
		return localtime.Tm{}, fmt.Errorf("non-numeric time field in %q", clock)
	}
	return tm, nil
}

// civilString renders a calendar time as an ISO-8601-style timestamp with
// its UTC offset.
func civilString(tm localtime.Tm) string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d%s",
		tm.Year+1900, tm.Mon+1, tm.Mday, tm.Hour, tm.Min, tm.Sec, offsetString(tm.Gmtoff))
}

// offsetString renders a UTC offset in seconds as [+-]hh:mm[:ss].
func offsetString(off int64) string {
	sign := "+"
	if off < 0 {
		sign = "-"
		off = -off
	}
	if s := off % 60; s != 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, off/3600, off/60%60, s)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, off/3600, off/60%60)
}
