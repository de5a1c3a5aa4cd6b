package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-store/internal/store/data"
	"go-store/pkg/logging"
)

func newTestPayments(t *testing.T, repository *fakeOrderRepository) *Payments {
	t.Helper()
	payments, err := NewPayments(
		&fakeTransactionManager{},
		repository,
		newFakeClock(businessHoursInstant),
		logging.NewNop(),
	)
	require.NoError(t, err)
	return payments
}

func TestPayOrderArgumentValidation(t *testing.T) {
	tests := []struct {
		name       string
		customerID int
		value      decimal.Decimal
	}{
		{
			name:       "zero customer id",
			customerID: 0,
			value:      decimal.NewFromInt(50),
		},
		{
			name:       "negative customer id",
			customerID: -1,
			value:      decimal.NewFromInt(50),
		},
		{
			name:       "zero value",
			customerID: 1,
			value:      decimal.Zero,
		},
		{
			name:       "negative value",
			customerID: 1,
			value:      decimal.NewFromFloat(-0.01),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repository := &fakeOrderRepository{customerExists: true}
			payments := newTestPayments(t, repository)

			_, err := payments.PayOrder(context.Background(), test.customerID, test.value, data.CreditCardMethod)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Empty(t, repository.insertedOrders())
		})
	}
}

func TestPayOrderUnknownMethod(t *testing.T) {
	repository := &fakeOrderRepository{customerExists: true}
	payments := newTestPayments(t, repository)

	_, err := payments.PayOrder(context.Background(), 1, decimal.NewFromInt(50), data.PaymentMethod("BARTER"))
	assert.ErrorIs(t, err, ErrUnknownPaymentMethod)
	assert.Empty(t, repository.insertedOrders())
}

func TestPayOrderUnknownCustomer(t *testing.T) {
	repository := &fakeOrderRepository{customerExists: false}
	payments := newTestPayments(t, repository)

	_, err := payments.PayOrder(context.Background(), 42, decimal.NewFromInt(50), data.CreditCardMethod)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
	assert.Empty(t, repository.insertedOrders())
}

func TestPayOrderPerMethodOutcome(t *testing.T) {
	tests := []struct {
		name           string
		method         data.PaymentMethod
		expectedStatus data.PaymentStatus
	}{
		{
			name:           "credit card is paid",
			method:         data.CreditCardMethod,
			expectedStatus: data.PaidStatus,
		},
		{
			name:           "paypal stays processing",
			method:         data.PaypalMethod,
			expectedStatus: data.ProcessingStatus,
		},
		{
			name:           "pix fails",
			method:         data.PixMethod,
			expectedStatus: data.FailedStatus,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repository := &fakeOrderRepository{customerExists: true}
			payments := newTestPayments(t, repository)

			order, err := payments.PayOrder(context.Background(), 1, decimal.NewFromInt(50), test.method)
			require.NoError(t, err)
			assert.Equal(t, test.method, order.Method)
			assert.Equal(t, test.expectedStatus, order.Status)
			assert.Equal(t, 1, order.ID)
			assert.Equal(t, 1, order.CustomerID)
			assert.True(t, order.Value.Equal(decimal.NewFromInt(50)))
		})
	}
}

func TestPayOrderWritesFinalStatusOnce(t *testing.T) {
	repository := &fakeOrderRepository{customerExists: true}
	payments := newTestPayments(t, repository)

	_, err := payments.PayOrder(context.Background(), 1, decimal.NewFromInt(50), data.CreditCardMethod)
	require.NoError(t, err)

	inserted := repository.insertedOrders()
	require.Len(t, inserted, 1)
	// No transient PROCESSING row: the persisted row already carries the
	// status the processor resolved.
	assert.Equal(t, data.PaidStatus, inserted[0].Status)
	assert.Equal(t, data.CreditCardMethod, inserted[0].Method)
}

func TestPayOrderStoresUTCPresentsDisplayZone(t *testing.T) {
	repository := &fakeOrderRepository{customerExists: true}
	payments := newTestPayments(t, repository)

	order, err := payments.PayOrder(context.Background(), 1, decimal.NewFromInt(50), data.CreditCardMethod)
	require.NoError(t, err)

	inserted := repository.insertedOrders()
	require.Len(t, inserted, 1)
	assert.Equal(t, "UTC", inserted[0].OrderDate.Location().String())
	assert.Equal(t, "America/Recife", order.OrderDate.Location().String())
	// Zone conversion is presentation only: the instant must survive a
	// round trip back to UTC untouched.
	assert.True(t, order.OrderDate.Equal(inserted[0].OrderDate))
	assert.Equal(t, inserted[0].OrderDate, order.OrderDate.UTC())
}

func TestPayOrderSurfacesPersistenceErrors(t *testing.T) {
	storeErr := errors.New("disk on fire")
	tests := []struct {
		name        string
		repository  *fakeOrderRepository
		expectedErr error
	}{
		{
			name: "insert fails",
			repository: &fakeOrderRepository{
				customerExists: true,
				insertErr:      storeErr,
			},
			expectedErr: storeErr,
		},
		{
			name: "unique constraint race kept distinguishable",
			repository: &fakeOrderRepository{
				customerExists: true,
				insertErr:      data.ErrUniqueConstraintViolation,
			},
			expectedErr: data.ErrUniqueConstraintViolation,
		},
		{
			name: "existence check fails",
			repository: &fakeOrderRepository{
				existsErr: storeErr,
			},
			expectedErr: storeErr,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			payments := newTestPayments(t, test.repository)

			_, err := payments.PayOrder(context.Background(), 1, decimal.NewFromInt(50), data.PaypalMethod)
			assert.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestPayOrderConcurrentCallsGetUniqueIDs(t *testing.T) {
	const callers = 16

	repository := &fakeOrderRepository{customerExists: true}
	payments := newTestPayments(t, repository)

	var wg sync.WaitGroup
	ids := make(chan int, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(customerID int) {
			defer wg.Done()
			order, err := payments.PayOrder(context.Background(), customerID, decimal.NewFromInt(10), data.CreditCardMethod)
			assert.NoError(t, err)
			ids <- order.ID
		}(i + 1)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]struct{})
	for id := range ids {
		_, duplicate := seen[id]
		assert.False(t, duplicate, "order id %d assigned twice", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, callers)
}
