package commands

import (
	"encoding/json"
	"fmt"
	"time"

	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/sjatkinson/ksuid"
)

// inspection is the structured view printed by inspect -o json|yaml.
type inspection struct {
	String      string `json:"string" yaml:"string"`
	Raw         string `json:"raw" yaml:"raw"`
	Time        string `json:"time" yaml:"time"`
	Timestamp   uint32 `json:"timestamp" yaml:"timestamp"`
	Payload     string `json:"payload" yaml:"payload"`
	PayloadUUID string `json:"payload_uuid" yaml:"payload_uuid"`
}

func newInspection(id ksuid.KSUID, loc *time.Location) inspection {
	return inspection{
		String:      id.String(),
		Raw:         upperHex(id.Bytes()),
		Time:        id.Time().In(loc).Format(time.RFC3339),
		Timestamp:   id.Timestamp(),
		Payload:     upperHex(id.Payload()),
		PayloadUUID: payloadUUID(id),
	}
}

func RunInspect(args []string, ctx CommandContext) int {
	fs := flag.NewFlagSet(ctx.AppName+" inspect", flag.ContinueOnError)
	fs.SetOutput(ctx.Err)
	fs.Usage = func() {
		fmt.Fprintln(ctx.Err, InspectUsage(ctx.AppName))
	}

	var output string
	fs.StringVarP(&output, "output", "o", "text", "output: text, json or yaml")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(ctx.Err)
		fmt.Fprintln(ctx.Err, InspectUsage(ctx.AppName))
		return 2
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fmt.Fprintf(ctx.Err, "Error: missing argument: KSUID required\n")
		return 2
	}

	switch output {
	case "text", "json", "yaml":
	default:
		fmt.Fprintf(ctx.Err, "Error: unknown output %q (expected text, json or yaml)\n", output)
		return 2
	}

	ids := make([]ksuid.KSUID, 0, len(rest))
	for _, arg := range rest {
		id, err := resolveID(arg)
		if err != nil {
			fmt.Fprintf(ctx.Err, "Error: %v\n", err)
			return 1
		}
		ids = append(ids, id)
	}

	loc := ctx.location()

	switch output {
	case "json":
		views := make([]inspection, len(ids))
		for i, id := range ids {
			views[i] = newInspection(id, loc)
		}
		data, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			fmt.Fprintf(ctx.Err, "Error: failed to encode JSON: %v\n", err)
			return 1
		}
		fmt.Fprintln(ctx.Out, string(data))

	case "yaml":
		views := make([]inspection, len(ids))
		for i, id := range ids {
			views[i] = newInspection(id, loc)
		}
		enc := yaml.NewEncoder(ctx.Out)
		enc.SetIndent(2)
		if err := enc.Encode(views); err != nil {
			fmt.Fprintf(ctx.Err, "Error: failed to encode YAML: %v\n", err)
			return 1
		}
		if err := enc.Close(); err != nil {
			fmt.Fprintf(ctx.Err, "Error: failed to encode YAML: %v\n", err)
			return 1
		}

	default:
		for i, id := range ids {
			if i > 0 {
				fmt.Fprintln(ctx.Out)
			}
			fmt.Fprint(ctx.Out, inspectText(id, loc))
		}
	}

	return 0
}

func InspectUsage(app string) string {
	return fmt.Sprintf(`Usage:
  %s inspect [-o text|json|yaml] <ksuid> [<ksuid> ...]

Shows the components of each KSUID. Accepts the 27 character text form or
the 40 character hex form.

Flags:
  -o, --output <fmt>   text (default), json or yaml

`, app)
}
