// Command gwyproc is a thin demonstration CLI over the gwy package: it
// never implements algorithmic behaviour itself, only wires flags and
// file I/O to the library (spec.md §1 Non-goals: no GUI, no dialogs).
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	gwy "github.com/christian-sahlmann/gwyddion-sub013"
)

func main() {
	app := cli.NewApp()
	app.Name = "gwyproc"
	app.Usage = "inspect and process scanning-probe microscopy data"
	app.Commands = []cli.Command{
		plxInfoCommand,
		funcUseCommand,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "gwyproc:", err)
		os.Exit(1)
	}
}

var plxInfoCommand = cli.Command{
	Name:      "plx-info",
	Usage:     "print a summary of a PLUx container",
	ArgsUsage: "<file.plx>",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return cli.NewExitError("expected exactly one archive path", 1)
		}
		path := c.Args().Get(0)
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		info, err := f.Stat()
		if err != nil {
			return err
		}
		doc, err := gwy.OpenPLUx(f, info.Size())
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d layer(s)\n", path, len(doc.Layers))
		for _, l := range doc.Layers {
			fmt.Printf("  layer %d: %dx%d, pos=(%.3f,%.3f,%.3f)um\n",
				l.ID, l.Field.XRes(), l.Field.YRes(), l.PosX, l.PosY, l.PosZ)
		}
		for k, v := range doc.Metadata {
			fmt.Printf("  %s = %s\n", k, v)
		}
		for _, w := range doc.Warnings {
			fmt.Println("  warning:", w)
		}
		return nil
	},
}

var funcUseCommand = cli.Command{
	Name:  "func-use",
	Usage: "print the recently-used-function ranking",
	Action: func(c *cli.Context) error {
		store := gwy.GetFuncUseStore()
		for _, e := range store.Ranked() {
			fmt.Printf("%-32s local=%.4f global=%.4f\n", e.Name, e.Local, e.Global)
		}
		return nil
	},
}
