package commands

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/sjatkinson/ksuid"
)

func RunCompare(args []string, ctx CommandContext) int {
	fs := flag.NewFlagSet(ctx.AppName+" compare", flag.ContinueOnError)
	fs.SetOutput(ctx.Err)
	fs.Usage = func() {
		fmt.Fprintln(ctx.Err, CompareUsage(ctx.AppName))
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(ctx.Err)
		fmt.Fprintln(ctx.Err, CompareUsage(ctx.AppName))
		return 2
	}

	rest := fs.Args()
	if len(rest) != 2 {
		fmt.Fprintf(ctx.Err, "Error: expected exactly two KSUIDs\n")
		return 2
	}

	a, err := resolveID(rest[0])
	if err != nil {
		fmt.Fprintf(ctx.Err, "Error: %v\n", err)
		return 1
	}
	b, err := resolveID(rest[1])
	if err != nil {
		fmt.Fprintf(ctx.Err, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(ctx.Out, "%d\n", ksuid.Compare(a, b))
	return 0
}

func CompareUsage(app string) string {
	return fmt.Sprintf(`Usage:
  %s compare <a> <b>

Prints -1, 0 or 1 as <a> sorts before, equal to or after <b>.

`, app)
}
