package service

import (
	"context"
	"runtime"

	"golang.org/x/time/rate"
)

type GoschedYielder struct{}

func (GoschedYielder) Yield(ctx context.Context) error {
	runtime.Gosched()
	return ctx.Err()
}

// PacedYielder caps how often a solver may pass a yield point, trading
// throughput for a quieter host.
type PacedYielder struct {
	lim *rate.Limiter
}

func NewPacedYielder(perSecond float64, burst int) *PacedYielder {
	if burst < 1 {
		burst = 1
	}
	lim := rate.NewLimiter(rate.Inf, burst)
	if perSecond > 0 {
		lim = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
	return &PacedYielder{lim: lim}
}

func (p *PacedYielder) Yield(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.lim.Wait(ctx)
}
