package commands

import (
	"bufio"
	"fmt"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/sjatkinson/ksuid"
)

func RunSort(args []string, ctx CommandContext) int {
	fs := flag.NewFlagSet(ctx.AppName+" sort", flag.ContinueOnError)
	fs.SetOutput(ctx.Err)
	fs.Usage = func() {
		fmt.Fprintln(ctx.Err, SortUsage(ctx.AppName))
	}

	var reverse, unique bool
	fs.BoolVarP(&reverse, "reverse", "r", false, "newest first")
	fs.BoolVarP(&unique, "unique", "u", false, "drop duplicates")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(ctx.Err)
		fmt.Fprintln(ctx.Err, SortUsage(ctx.AppName))
		return 2
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		if ctx.In == nil {
			fmt.Fprintf(ctx.Err, "Error: missing argument: KSUIDs required on the command line or stdin\n")
			return 2
		}
		sc := bufio.NewScanner(ctx.In)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				inputs = append(inputs, line)
			}
		}
		if err := sc.Err(); err != nil {
			fmt.Fprintf(ctx.Err, "Error: failed to read stdin: %v\n", err)
			return 1
		}
	}

	ids := make([]ksuid.KSUID, 0, len(inputs))
	for n, in := range inputs {
		id, err := resolveID(in)
		if err != nil {
			fmt.Fprintf(ctx.Err, "Error: input %d: %v\n", n+1, err)
			return 1
		}
		ids = append(ids, id)
	}

	ksuid.Sort(ids)
	if unique {
		ids = slices.Compact(ids)
	}
	if reverse {
		slices.Reverse(ids)
	}

	ctx.Log.Debug().Int("count", len(ids)).Bool("reverse", reverse).Msg("sorted")

	for _, id := range ids {
		fmt.Fprintln(ctx.Out, id.String())
	}
	return 0
}

func SortUsage(app string) string {
	return fmt.Sprintf(`Usage:
  %s sort [-r] [-u] [<ksuid> ...]

Sorts KSUIDs oldest first. Reads one KSUID per line from stdin when none are
given as arguments.

Flags:
  -r, --reverse   newest first
  -u, --unique    drop duplicates

`, app)
}
