package commands

import (
	"fmt"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/sjatkinson/ksuid"
	"github.com/sjatkinson/ksuid/internal/config"
	"github.com/sjatkinson/ksuid/internal/date"
)

func RunNew(args []string, ctx CommandContext) int {
	fs := flag.NewFlagSet(ctx.AppName+" new", flag.ContinueOnError)
	fs.SetOutput(ctx.Err)
	fs.Usage = func() {
		fmt.Fprintln(ctx.Err, NewUsage(ctx.AppName))
	}

	var (
		count   int
		at      string
		payload string
		format  string
	)
	fs.IntVarP(&count, "count", "n", 1, "number of KSUIDs to generate")
	fs.StringVarP(&at, "time", "t", "", "timestamp to embed (default: now)")
	fs.StringVar(&payload, "payload", "", "fixed payload as a UUID or 32 hex digits")
	fs.StringVarP(&format, "format", "f", "", "output format")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(ctx.Err)
		fmt.Fprintln(ctx.Err, NewUsage(ctx.AppName))
		return 2
	}

	if len(fs.Args()) != 0 {
		fmt.Fprintf(ctx.Err, "Error: unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return 2
	}
	if count < 1 {
		fmt.Fprintf(ctx.Err, "Error: --count must be at least 1\n")
		return 2
	}
	if payload != "" && count > 1 {
		fmt.Fprintf(ctx.Err, "Error: --payload cannot be combined with --count > 1 (the KSUIDs would be identical)\n")
		return 2
	}

	if format == "" {
		format = ctx.Config.Format
	}
	if format == "" {
		format = config.FormatString
	}
	if !config.IsValidFormat(format) {
		fmt.Fprintf(ctx.Err, "Error: unknown format %q (expected one of %s)\n", format, strings.Join(config.Formats, ", "))
		return 2
	}

	loc := ctx.location()

	var when *time.Time
	if at != "" {
		parsed, err := date.ParseTime(at, ctx.Config.DateLocale, ctx.clock(), loc)
		if err != nil {
			fmt.Fprintf(ctx.Err, "Error: %v\n", err)
			return 1
		}
		parsed = parsed.Truncate(time.Millisecond)
		when = &parsed
	}

	gen := ksuid.NewGenerator(ksuid.WithClock(ctx.clock()))

	var ids []ksuid.KSUID
	if payload != "" {
		b, err := parsePayload(payload)
		if err != nil {
			fmt.Fprintf(ctx.Err, "Error: %v\n", err)
			return 1
		}
		t := time.UnixMilli(ctx.clock().Now().UnixMilli())
		if when != nil {
			t = *when
		}
		id, err := ksuid.FromParts(t, b)
		if err != nil {
			fmt.Fprintf(ctx.Err, "Error: %v\n", err)
			return 1
		}
		ids = append(ids, id)
	} else {
		for i := 0; i < count; i++ {
			var (
				id  ksuid.KSUID
				err error
			)
			if when != nil {
				id, err = gen.NewAt(*when)
			} else {
				id, err = gen.New()
			}
			if err != nil {
				fmt.Fprintf(ctx.Err, "Error: failed to generate KSUID: %v\n", err)
				return 1
			}
			ids = append(ids, id)
		}
	}

	ctx.Log.Debug().Int("count", len(ids)).Str("format", format).Msg("generated")

	for i, id := range ids {
		out, err := formatID(id, format, loc)
		if err != nil {
			fmt.Fprintf(ctx.Err, "Error: %v\n", err)
			return 1
		}
		if format == config.FormatInspect && i > 0 {
			fmt.Fprintln(ctx.Out)
		}
		fmt.Fprint(ctx.Out, out)
		if !strings.HasSuffix(out, "\n") {
			fmt.Fprintln(ctx.Out)
		}
	}

	return 0
}

func NewUsage(app string) string {
	return fmt.Sprintf(`Usage:
  %s new [flags]

Flags:
  -n, --count <n>        number of KSUIDs to generate (default 1)
  -t, --time <time>      timestamp to embed: now, today, +N/-N days, @<unix>,
                         RFC 3339 or a date (format depends on date_locale config)
      --payload <uuid>   fixed payload as a UUID or 32 hex digits
  -f, --format <fmt>     string, hex, inspect, time, timestamp, payload
                         (default from config, else string)

`, app)
}
