package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/sjatkinson/ksuid/internal/commands"
	"github.com/sjatkinson/ksuid/internal/config"
	"github.com/sjatkinson/ksuid/internal/date"
)

type Config struct {
	AppName string
	In      io.Reader
	Out     io.Writer
	Err     io.Writer

	Version string

	Verbose bool
	Debug   bool

	// Clock overrides the system clock, for tests.
	Clock date.Clock
}

func Run(argv []string, cfg Config) int {
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Err == nil {
		cfg.Err = os.Stderr
	}
	if cfg.AppName == "" {
		cfg.AppName = "ksuid"
	}
	if cfg.Version == "" {
		cfg.Version = "0.0.0-dev"
	}
	if cfg.Clock == nil {
		cfg.Clock = date.RealClock{}
	}

	// ---- Global flags ----
	global := flag.NewFlagSet(cfg.AppName, flag.ContinueOnError)
	global.SetOutput(cfg.Err)
	// Stop at the command name so command flags reach the command.
	global.SetInterspersed(false)

	var (
		flgHelp    bool
		flgVersion bool
	)
	global.BoolVarP(&flgHelp, "help", "h", false, "show help")
	global.BoolVar(&flgVersion, "version", false, "print version and exit")
	global.BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose output")
	global.BoolVar(&cfg.Debug, "debug", false, "debug output")

	global.Usage = func() { fmt.Fprintln(cfg.Err, usage(cfg.AppName)) }

	if err := global.Parse(argv); err != nil {
		fmt.Fprintln(cfg.Err)
		fmt.Fprintln(cfg.Err, usage(cfg.AppName))
		return 2
	}

	if flgVersion {
		fmt.Fprintf(cfg.Out, "%s %s\n", cfg.AppName, cfg.Version)
		return 0
	}

	log := newLogger(cfg.Err, cfg.Verbose, cfg.Debug)

	rest := global.Args()
	if flgHelp || len(rest) == 0 {
		fmt.Fprintln(cfg.Err, usage(cfg.AppName))
		return 0
	}

	cmd := rest[0]
	args := rest[1:]

	appCfg, err := config.Load()
	if err != nil {
		// Don't fail on a broken config; commands run with defaults
		log.Warn().Err(err).Msg("failed to load config, using defaults")
		appCfg = config.Default()
	}
	log.Debug().Str("format", appCfg.Format).Str("date_locale", string(appCfg.DateLocale)).
		Str("timezone", appCfg.Timezone).Int("aliases", len(appCfg.Alias)).Msg("config loaded")

	aliases := validateAliases(appCfg.Alias, log)

	// Resolve alias: built-in commands take precedence
	if !isBuiltIn(cmd) {
		if target, ok := aliases[cmd]; ok {
			log.Info().Str("alias", cmd).Str("command", target).Msg("resolved alias")
			cmd = target
		}
	}

	if cmd == "help" {
		if len(args) == 0 {
			fmt.Fprintln(cfg.Err, usage(cfg.AppName))
			return 0
		}
		fmt.Fprintln(cfg.Err, commandUsage(cfg.AppName, args[0]))
		return 0
	}

	info := getCommand(cmd)
	if info == nil {
		fmt.Fprintf(cfg.Err, "unknown command: %q\n\n", cmd)
		fmt.Fprintln(cfg.Err, usage(cfg.AppName))
		return 2
	}

	return info.Runner(args, commands.CommandContext{
		AppName: cfg.AppName,
		In:      cfg.In,
		Out:     cfg.Out,
		Err:     cfg.Err,
		Log:     log,
		Config:  appCfg,
		Clock:   cfg.Clock,
	})
}

// newLogger writes human-readable diagnostics to w. Warnings are always
// shown; --verbose adds info and --debug adds debug messages.
func newLogger(w io.Writer, verbose, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.InfoLevel
	}
	if debug {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(out).Level(level)
}

func usage(app string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `%s: generate and inspect K-Sortable Unique Identifiers

Usage:
  %s [global flags] <command> [command flags] [args]

Global flags:
  -h, --help           show help
      --version        print version and exit
  -v, --verbose        verbose output
      --debug          debug output

Commands:
`, app, app)
	for _, c := range getAllCommands() {
		fmt.Fprintf(&sb, "  %-9s %s\n", c.Name, c.Description)
	}
	fmt.Fprintf(&sb, "  %-9s %s\n", "help", "Help for a command")
	fmt.Fprintf(&sb, `
Run:
  %s help <command>
`, app)
	return sb.String()
}

func commandUsage(app, cmd string) string {
	if info := getCommand(cmd); info != nil {
		return info.Usage(app)
	}
	return fmt.Sprintf("Unknown command %q\n\n%s", cmd, usage(app))
}

// validateAliases filters and validates aliases:
// - Removes aliases that conflict with built-in commands (built-in wins)
// - Removes aliases that point to non-existent commands
// - Removes aliases that point to other aliases (no recursion)
// Returns a validated map of alias -> built-in command.
func validateAliases(raw config.Aliases, log zerolog.Logger) config.Aliases {
	valid := make(config.Aliases)

	for alias, target := range raw {
		// Skip aliases that conflict with built-in commands
		if isBuiltIn(alias) {
			log.Info().Str("alias", alias).Msg("alias conflicts with built-in command, ignoring")
			continue
		}

		// Check if target is a built-in command
		if !isBuiltIn(target) {
			if _, isAlias := raw[target]; isAlias {
				log.Info().Str("alias", alias).Str("target", target).Msg("alias points to another alias (recursion not allowed), ignoring")
				continue
			}
			log.Info().Str("alias", alias).Str("target", target).Msg("alias points to non-existent command, ignoring")
			continue
		}

		// Valid alias: points directly to a built-in command
		valid[alias] = target
	}

	return valid
}
