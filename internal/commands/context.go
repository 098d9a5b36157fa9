package commands

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/sjatkinson/ksuid/internal/config"
	"github.com/sjatkinson/ksuid/internal/date"
)

// CommandContext provides the context needed for command execution.
// This avoids import cycles between cli and commands packages.
type CommandContext struct {
	AppName string
	In      io.Reader
	Out     io.Writer
	Err     io.Writer

	Log    zerolog.Logger
	Config config.Config
	Clock  date.Clock
}

func (ctx CommandContext) clock() date.Clock {
	if ctx.Clock == nil {
		return date.RealClock{}
	}
	return ctx.Clock
}

// location returns the configured timezone, falling back to UTC.
func (ctx CommandContext) location() *time.Location {
	loc, err := ctx.Config.Location()
	if err != nil || loc == nil {
		return time.UTC
	}
	return loc
}
