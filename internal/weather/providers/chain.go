package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/i474232898/outfit-recommender/internal/logging"
	"github.com/i474232898/outfit-recommender/internal/weather"
)

// Chain tries providers in order and returns the first successful reading.
type Chain struct {
	providers []weather.Provider
}

func NewChain(providers ...weather.Provider) *Chain {
	return &Chain{providers: providers}
}

func (c *Chain) Name() string {
	return "chain"
}

// Fetch tries every provider until one succeeds or ctx is done. The returned error joins
// the failures of all providers tried.
func (c *Chain) Fetch(ctx context.Context, loc weather.Location) (weather.Reading, error) {
	if len(c.providers) == 0 {
		return weather.Reading{}, fmt.Errorf("%w: no weather providers configured", weather.ErrUnavailable)
	}

	var errs []error
	for _, p := range c.providers {
		r, err := p.Fetch(ctx, loc)
		if err == nil {
			return r, nil
		}
		logging.Warn().Err(err).Str("provider", p.Name()).Str("location", loc.Key()).
			Msg("provider fetch failed")
		errs = append(errs, err)

		if ctx.Err() != nil {
			break
		}
	}
	return weather.Reading{}, errors.Join(errs...)
}
