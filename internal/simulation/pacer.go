package simulation

import (
	"context"

	"golang.org/x/time/rate"
)

// pacer limits how many steps run per second. A nil limiter never waits.
type pacer struct {
	limiter *rate.Limiter
}

func newPacer(stepsPerSecond float64) *pacer {
	if stepsPerSecond <= 0 {
		return &pacer{}
	}
	return &pacer{limiter: rate.NewLimiter(rate.Limit(stepsPerSecond), 1)}
}

func (p *pacer) wait(ctx context.Context) error {
	if p.limiter == nil {
		return ctx.Err()
	}
	return p.limiter.Wait(ctx)
}
