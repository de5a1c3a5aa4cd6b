package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"math/big"
	"time"

	"go-store/internal/store/data"
	"go-store/pkg/timeutils"
)

type RandomNumberRepository interface {
	InsertRandomNumber(ctx context.Context, number int) error
}

// RandomNumbers hands out random integers that are unique across all calls,
// using the random_numbers table's unique constraint as the source of truth.
// A collision is retried a bounded number of times.
type RandomNumbers struct {
	repository    RandomNumberRepository
	attemptDelays []time.Duration
}

func NewRandomNumbers(repository RandomNumberRepository, attemptDelays []time.Duration) *RandomNumbers {
	return &RandomNumbers{
		repository:    repository,
		attemptDelays: attemptDelays,
	}
}

func (r *RandomNumbers) GetRandom(ctx context.Context) (int, error) {
	number, err := timeutils.Retry(
		ctx,
		r.attemptDelays,
		func(ctx context.Context) (int, error) {
			n, err := randomInt()
			if err != nil {
				return 0, err
			}
			if err := r.repository.InsertRandomNumber(ctx, n); err != nil {
				return 0, err
			}
			return n, nil
		},
		func(_ int, err error) bool {
			return errors.Is(err, data.ErrUniqueConstraintViolation)
		},
	)
	if err != nil {
		if errors.Is(err, timeutils.ErrAllAttemptsFailed) {
			return 0, ErrRandomNumbersExhausted
		}
		return 0, fmt.Errorf("generating random number failed: %w", err)
	}
	return number, nil
}

func randomInt() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt32))
	if err != nil {
		return 0, fmt.Errorf("reading random bytes failed: %w", err)
	}
	return int(n.Int64()), nil
}
