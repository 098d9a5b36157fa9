package ksuid

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"
)

// Clock provides the current time for generation.
// This interface allows injecting a fixed time for testing.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Result is the value delivered by the asynchronous generator methods.
type Result struct {
	KSUID KSUID
	Err   error
}

// Generator creates random KSUIDs from an injected random source and clock.
// A Generator is safe for concurrent use when its random source is.
type Generator struct {
	rand  io.Reader
	clock Clock
}

// Option configures a Generator.
type Option func(*Generator)

// WithRandom sets the source of payload bytes. It must be cryptographically
// secure; a nil reader makes every generation fail.
func WithRandom(r io.Reader) Option {
	return func(g *Generator) { g.rand = r }
}

// WithClock sets the clock used by New and NewAsync.
func WithClock(c Clock) Option {
	return func(g *Generator) {
		if c != nil {
			g.clock = c
		}
	}
}

// NewGenerator returns a Generator reading crypto/rand and the system clock
// unless overridden by opts.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{rand: rand.Reader, clock: systemClock{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// New generates a KSUID for the current time.
func (g *Generator) New() (KSUID, error) {
	return g.NewAt(time.UnixMilli(g.clock.Now().UnixMilli()))
}

// NewAt generates a KSUID for t with a fresh random payload. t is validated
// as in FromParts before any random bytes are drawn.
func (g *Generator) NewAt(t time.Time) (KSUID, error) {
	ms, err := timestampMillis(t)
	if err != nil {
		return Nil, err
	}
	if g.rand == nil {
		return Nil, ErrRandomSourceUnavailable
	}

	var payload [PayloadLength]byte
	if _, err := io.ReadFull(g.rand, payload[:]); err != nil {
		return Nil, fmt.Errorf("%w: %w", ErrRandomSourceUnavailable, err)
	}
	return makeKSUID(ms, payload[:]), nil
}

// NewAsync is New delivered on a channel. The value is computed before
// NewAsync returns; the channel holds exactly one Result and is closed.
func (g *Generator) NewAsync() <-chan Result {
	return deliver(g.New())
}

// NewAtAsync is NewAt delivered on a channel, like NewAsync.
func (g *Generator) NewAtAsync(t time.Time) <-chan Result {
	return deliver(g.NewAt(t))
}

func deliver(id KSUID, err error) <-chan Result {
	ch := make(chan Result, 1)
	ch <- Result{KSUID: id, Err: err}
	close(ch)
	return ch
}

var defaultGenerator = NewGenerator()

// New generates a KSUID for the current time. It panics if the system's
// secure random source fails.
func New() KSUID {
	id, err := defaultGenerator.New()
	if err != nil {
		panic(err)
	}
	return id
}

// NewRandom generates a KSUID for the current time.
func NewRandom() (KSUID, error) {
	return defaultGenerator.New()
}

// NewRandomWithTime generates a KSUID for t.
func NewRandomWithTime(t time.Time) (KSUID, error) {
	return defaultGenerator.NewAt(t)
}
