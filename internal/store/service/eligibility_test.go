package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	// Wednesday, 10:00 UTC.
	businessHoursInstant = time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)
	// Saturday, 10:00 UTC.
	weekendInstant = time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	// Wednesday, 19:00 UTC.
	eveningInstant = time.Date(2025, time.March, 12, 19, 0, 0, 0, time.UTC)
)

func TestCanPurchaseArgumentValidation(t *testing.T) {
	tests := []struct {
		name       string
		customerID int
		value      decimal.Decimal
	}{
		{
			name:       "zero customer id",
			customerID: 0,
			value:      decimal.NewFromInt(10),
		},
		{
			name:       "negative customer id",
			customerID: -5,
			value:      decimal.NewFromInt(10),
		},
		{
			name:       "zero value",
			customerID: 1,
			value:      decimal.Zero,
		},
		{
			name:       "negative value",
			customerID: 1,
			value:      decimal.NewFromInt(-1),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			eligibility := NewEligibility(&fakeHistoryRepository{}, newFakeClock(businessHoursInstant))
			_, err := eligibility.CanPurchase(context.Background(), test.customerID, test.value)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestCanPurchaseUnknownCustomer(t *testing.T) {
	repository := &fakeHistoryRepository{customerExists: false}
	eligibility := NewEligibility(repository, newFakeClock(businessHoursInstant))

	_, err := eligibility.CanPurchase(context.Background(), 999, decimal.NewFromInt(50))
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCanPurchaseDeniedAfterRecentOrder(t *testing.T) {
	repository := &fakeHistoryRepository{
		customerExists: true,
		recentCount:    1,
		hasAnyOrder:    true,
	}
	eligibility := NewEligibility(repository, newFakeClock(businessHoursInstant))

	// The throttle wins regardless of amount and time of day.
	allowed, err := eligibility.CanPurchase(context.Background(), 1, decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestCanPurchaseMonthlyWindowIsRollingAndInclusive(t *testing.T) {
	repository := &fakeHistoryRepository{
		customerExists: true,
		recentCount:    1,
		hasAnyOrder:    true,
	}
	eligibility := NewEligibility(repository, newFakeClock(businessHoursInstant))

	_, err := eligibility.CanPurchase(context.Background(), 1, decimal.NewFromInt(50))
	require.NoError(t, err)

	// An order placed exactly one calendar month ago must fall inside the
	// queried window.
	assert.Equal(t, businessHoursInstant.AddDate(0, -1, 0), repository.capturedFrom)
	assert.Equal(t, businessHoursInstant, repository.capturedTo)
}

func TestCanPurchaseFirstPurchaseCap(t *testing.T) {
	tests := []struct {
		name    string
		value   decimal.Decimal
		allowed bool
	}{
		{
			name:    "over the cap",
			value:   decimal.NewFromInt(150),
			allowed: false,
		},
		{
			name:    "exactly at the cap",
			value:   decimal.NewFromInt(100),
			allowed: true,
		},
		{
			name:    "under the cap",
			value:   decimal.NewFromFloat(80.50),
			allowed: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repository := &fakeHistoryRepository{
				customerExists: true,
				hasAnyOrder:    false,
			}
			eligibility := NewEligibility(repository, newFakeClock(businessHoursInstant))

			allowed, err := eligibility.CanPurchase(context.Background(), 1, test.value)
			require.NoError(t, err)
			assert.Equal(t, test.allowed, allowed)
		})
	}
}

func TestCanPurchaseCapLiftedByOldHistory(t *testing.T) {
	repository := &fakeHistoryRepository{
		customerExists: true,
		recentCount:    0,
		hasAnyOrder:    true,
	}
	eligibility := NewEligibility(repository, newFakeClock(businessHoursInstant))

	allowed, err := eligibility.CanPurchase(context.Background(), 1, decimal.NewFromInt(200))
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestCanPurchaseBusinessHoursGate(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		allowed bool
	}{
		{
			name:    "weekday inside hours",
			now:     businessHoursInstant,
			allowed: true,
		},
		{
			name:    "weekday opening hour",
			now:     time.Date(2025, time.March, 12, 8, 0, 0, 0, time.UTC),
			allowed: true,
		},
		{
			name:    "weekday just before opening",
			now:     time.Date(2025, time.March, 12, 7, 59, 59, 0, time.UTC),
			allowed: false,
		},
		{
			name:    "weekday last allowed hour",
			now:     time.Date(2025, time.March, 12, 18, 59, 59, 0, time.UTC),
			allowed: true,
		},
		{
			name:    "weekday after closing",
			now:     eveningInstant,
			allowed: false,
		},
		{
			name:    "saturday",
			now:     weekendInstant,
			allowed: false,
		},
		{
			name:    "sunday",
			now:     time.Date(2025, time.March, 16, 10, 0, 0, 0, time.UTC),
			allowed: false,
		},
		{
			name:    "friday inside hours",
			now:     time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC),
			allowed: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repository := &fakeHistoryRepository{
				customerExists: true,
				hasAnyOrder:    false,
			}
			eligibility := NewEligibility(repository, newFakeClock(test.now))

			allowed, err := eligibility.CanPurchase(context.Background(), 1, decimal.NewFromInt(50))
			require.NoError(t, err)
			assert.Equal(t, test.allowed, allowed)
		})
	}
}

func TestCanPurchaseFailsClosedOnStoreErrors(t *testing.T) {
	storeErr := errors.New("connection reset")
	tests := []struct {
		name       string
		repository *fakeHistoryRepository
	}{
		{
			name:       "existence check fails",
			repository: &fakeHistoryRepository{existsErr: storeErr},
		},
		{
			name: "recent orders count fails",
			repository: &fakeHistoryRepository{
				customerExists: true,
				recentErr:      storeErr,
			},
		},
		{
			name: "history check fails",
			repository: &fakeHistoryRepository{
				customerExists: true,
				hasAnyErr:      storeErr,
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			eligibility := NewEligibility(test.repository, newFakeClock(businessHoursInstant))

			allowed, err := eligibility.CanPurchase(context.Background(), 1, decimal.NewFromInt(50))
			assert.ErrorIs(t, err, storeErr)
			assert.False(t, allowed)
		})
	}
}
