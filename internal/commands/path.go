package commands

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/sjatkinson/ksuid/internal/config"
)

func RunPath(args []string, ctx CommandContext) int {
	fs := flag.NewFlagSet(ctx.AppName+" path", flag.ContinueOnError)
	fs.SetOutput(ctx.Err)
	fs.Usage = func() {
		fmt.Fprintln(ctx.Err, PathUsage(ctx.AppName))
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(ctx.Err)
		fmt.Fprintln(ctx.Err, PathUsage(ctx.AppName))
		return 2
	}

	if len(fs.Args()) > 0 {
		fmt.Fprintf(ctx.Err, "Error: too many arguments\n")
		return 2
	}

	cfgPath, err := config.ConfigPath()
	if err != nil {
		fmt.Fprintf(ctx.Err, "Error: %v\n", err)
		return 1
	}

	// Print only the path, followed by a newline (no extra text)
	fmt.Fprintf(ctx.Out, "%s\n", cfgPath)
	return 0
}

func PathUsage(app string) string {
	return fmt.Sprintf(`Usage:
  %s path

Prints the config file path (see KSUID_CONFIG and XDG_CONFIG_HOME).

`, app)
}
