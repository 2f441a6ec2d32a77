package main

import (
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/tzsafe/localtime/localtime"
	"github.com/urfave/cli/v2"
)

type outputEnv struct {
	Name  string `json:"name"`
	Set   bool   `json:"set"`
	Value string `json:"value"`
	Form  string `json:"form"`
	Len   int    `json:"len"`
	Cap   int    `json:"cap"`
}

var commandEnv = &cli.Command{
	Name:      "env",
	Usage:     "show an environment variable as the conversion engine receives it",
	ArgsUsage: "[NAME]",
	Description: `
Env reports the value of an environment variable (TZ when no name is
given) together with the transfer form the lookup produced: "absent" for
an unset variable, "static" for a set-but-empty value served from static
storage, and "owned" for a heap copy that the reader releases after use.
Len counts the transferred bytes including the terminator; Cap is nonzero
only for the owned form.`,
	Flags: []cli.Flag{
		jsonFlag,
	},
	Action: func(ctx *cli.Context) error {
		name := ctx.Args().First()
		if name == "" {
			name = "TZ"
		}
		ev := localtime.EnvLookup(name)
		out := outputEnv{
			Name:  name,
			Set:   ev.Form != localtime.BufAbsent,
			Value: ev.Value,
			Form:  ev.Form.String(),
			Len:   ev.Len,
			Cap:   ev.Cap,
		}
		if ctx.Bool(jsonFlag.Name) {
			mustPrintJSON(out)
		} else {
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"FIELD", "VALUE"})
			table.AppendBulk([][]string{
				{"name", out.Name},
				{"set", strconv.FormatBool(out.Set)},
				{"value", out.Value},
				{"form", out.Form},
				{"len", strconv.Itoa(out.Len)},
				{"cap", strconv.Itoa(out.Cap)},
			})
			table.Render()
		}
		return nil
	},
}
