package scheduler

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/outfit-recommender/internal/outfit"
	"github.com/i474232898/outfit-recommender/internal/weather"
)

type recordingRecommender struct {
	mu     sync.Mutex
	cities []string
}

func (r *recordingRecommender) GetWeatherAndRecommend(_ context.Context, city string) outfit.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cities = append(r.cities, city)
	return outfit.Result{Success: city != "Atlantis"}
}

func (r *recordingRecommender) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]string(nil), r.cities...)
	sort.Strings(out)
	return out
}

func TestRunOnceRefreshesEveryLocation(t *testing.T) {
	rec := &recordingRecommender{}
	locs := []weather.Location{{City: "London", Country: "GB"}, {City: "Atlantis"}, {City: "Paris"}}
	s := New(locs, time.Hour, rec)

	s.RunOnce(context.Background())

	assert.Equal(t, []string{"Atlantis", "London,GB", "Paris"}, rec.seen())
}

func TestStartRunsImmediately(t *testing.T) {
	rec := &recordingRecommender{}
	s := New([]weather.Location{{City: "Oslo"}}, time.Hour, rec)

	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Eventually(t, func() bool { return len(rec.seen()) == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestStartWithoutLocations(t *testing.T) {
	rec := &recordingRecommender{}
	s := New(nil, 0, rec)

	require.NoError(t, s.Start())
	s.Stop()

	assert.Equal(t, defaultInterval, s.interval)
	assert.Empty(t, rec.seen())
}
