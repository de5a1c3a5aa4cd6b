package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go-store/pkg/clock"
)

const (
	businessHoursOpen  = 8
	businessHoursClose = 18
)

var firstPurchaseLimit = decimal.NewFromInt(100)

type OrderHistoryRepository interface {
	CustomerExists(ctx context.Context, customerID int) (bool, error)
	CountOrdersBetween(ctx context.Context, customerID int, from, to time.Time) (int, error)
	HasAnyOrder(ctx context.Context, customerID int) (bool, error)
}

// Eligibility decides whether a customer may place an order of a given value.
// Rules are checked in priority order: the monthly throttle, then the
// first-purchase cap, then the business-hours gate. Reads are plain snapshots,
// no transaction is taken.
type Eligibility struct {
	repository OrderHistoryRepository
	clock      clock.Clock
}

func NewEligibility(repository OrderHistoryRepository, clk clock.Clock) *Eligibility {
	return &Eligibility{
		repository: repository,
		clock:      clk,
	}
}

func (e *Eligibility) CanPurchase(
	ctx context.Context,
	customerID int,
	purchaseValue decimal.Decimal,
) (bool, error) {
	if customerID <= 0 {
		return false, fmt.Errorf("%w: customerID must be positive", ErrInvalidArgument)
	}
	if !purchaseValue.IsPositive() {
		return false, fmt.Errorf("%w: purchaseValue must be positive", ErrInvalidArgument)
	}

	exists, err := e.repository.CustomerExists(ctx, customerID)
	if err != nil {
		return false, fmt.Errorf("checking customer existence failed: %w", err)
	}
	if !exists {
		return false, fmt.Errorf("%w: customer %d", ErrCustomerNotFound, customerID)
	}

	now := e.clock.Now().UTC()

	purchasedRecently, err := e.purchasedWithinLastMonth(ctx, customerID, now)
	if err != nil {
		return false, err
	}
	if purchasedRecently {
		return false, nil
	}

	overLimit, err := e.exceedsFirstPurchaseLimit(ctx, customerID, purchaseValue)
	if err != nil {
		return false, err
	}
	if overLimit {
		return false, nil
	}

	return withinBusinessHours(now), nil
}

// purchasedWithinLastMonth checks the rolling window [now - 1 month, now],
// inclusive of the lower boundary.
func (e *Eligibility) purchasedWithinLastMonth(
	ctx context.Context,
	customerID int,
	now time.Time,
) (bool, error) {
	from := now.AddDate(0, -1, 0)
	count, err := e.repository.CountOrdersBetween(ctx, customerID, from, now)
	if err != nil {
		return false, fmt.Errorf("counting recent orders failed: %w", err)
	}
	return count > 0, nil
}

// exceedsFirstPurchaseLimit caps a customer's first-ever purchase at 100.00
// inclusive. Once any order history exists the cap no longer applies.
func (e *Eligibility) exceedsFirstPurchaseLimit(
	ctx context.Context,
	customerID int,
	purchaseValue decimal.Decimal,
) (bool, error) {
	hasHistory, err := e.repository.HasAnyOrder(ctx, customerID)
	if err != nil {
		return false, fmt.Errorf("checking order history failed: %w", err)
	}
	return !hasHistory && purchaseValue.GreaterThan(firstPurchaseLimit), nil
}

// withinBusinessHours gates purchases to UTC hours 8-18 inclusive, Monday
// through Friday.
func withinBusinessHours(now time.Time) bool {
	switch now.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return now.Hour() >= businessHoursOpen && now.Hour() <= businessHoursClose
}
