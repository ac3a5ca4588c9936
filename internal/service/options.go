package service

import (
	"log/slog"
	"time"
)

const (
	DefaultMaxAttempts   = 10_000
	DefaultPowYieldEvery = 10
	DefaultSigYieldEvery = 1
)

type settings struct {
	log           *slog.Logger
	now           func() time.Time
	yield         Yielder
	maxAttempts   uint64
	powYieldEvery uint64
	sigYieldEvery int
}

type Option func(*settings)

func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.log = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

func WithYielder(y Yielder) Option {
	return func(s *settings) {
		if y != nil {
			s.yield = y
		}
	}
}

func WithMaxAttempts(n uint64) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithPowYieldEvery sets how many hash attempts run between yields.
func WithPowYieldEvery(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.powYieldEvery = uint64(n)
		}
	}
}

// WithSigYieldEvery sets how many batch items are verified between yields.
func WithSigYieldEvery(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.sigYieldEvery = n
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		log:           slog.New(slog.DiscardHandler),
		now:           time.Now,
		yield:         GoschedYielder{},
		maxAttempts:   DefaultMaxAttempts,
		powYieldEvery: DefaultPowYieldEvery,
		sigYieldEvery: DefaultSigYieldEvery,
	}
	for _, o := range opts {
		o(&s)
	}
	return s
}
