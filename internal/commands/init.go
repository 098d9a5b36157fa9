package commands

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/sjatkinson/ksuid/internal/config"
)

func RunInit(args []string, ctx CommandContext) int {
	fs := flag.NewFlagSet(ctx.AppName+" init", flag.ContinueOnError)
	fs.SetOutput(ctx.Err)
	fs.Usage = func() {
		fmt.Fprintln(ctx.Err, InitUsage(ctx.AppName))
	}

	var path string
	var force bool
	fs.StringVar(&path, "path", "", "custom config file path")
	fs.BoolVar(&force, "force", false, "overwrite an existing config file")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(ctx.Err)
		fmt.Fprintln(ctx.Err, InitUsage(ctx.AppName))
		return 2
	}
	if len(fs.Args()) != 0 {
		fmt.Fprintln(ctx.Err, InitUsage(ctx.AppName))
		return 2
	}

	res, err := config.InitConfig(config.InitOptions{CustomPath: path, Force: force})
	if err != nil {
		fmt.Fprintf(ctx.Err, "Error: %v\n", err)
		return 1
	}

	if res.Existed {
		fmt.Fprintf(ctx.Out, "Overwrote config at %s\n", res.Path)
	} else {
		fmt.Fprintf(ctx.Out, "Wrote config to %s\n", res.Path)
	}
	return 0
}

func InitUsage(app string) string {
	return fmt.Sprintf(`Usage:
  %s init [--path <file>] [--force]

Writes a config file holding the defaults.

Flags:
  --path <file>    custom config file path
  --force          overwrite an existing config file

`, app)
}
