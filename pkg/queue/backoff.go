package queue

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/codeready-toolchain/maestro/pkg/config"
)

// Backoff computes the requeue delay after the given number of completed
// attempts: base·2^(attempts−1) capped at max, plus uniform jitter of up to
// one base interval so retries from correlated failures fan out.
func Backoff(attempts int, defaults config.TaskDefaults) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	base := defaults.BaseBackoffMS
	if base <= 0 {
		base = 1_000
	}
	cap := defaults.MaxBackoffMS
	if cap <= 0 {
		cap = 3_600_000
	}

	delay := base
	for i := 1; i < attempts && delay < cap; i++ {
		delay *= 2
	}
	if delay > cap {
		delay = cap
	}
	delay += rand.Int64N(base + 1)
	return time.Duration(delay) * time.Millisecond
}

// median of a duration sample; zero for an empty sample.
func median(sample []time.Duration) time.Duration {
	if len(sample) == 0 {
		return 0
	}
	sorted := slices.Clone(sample)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
