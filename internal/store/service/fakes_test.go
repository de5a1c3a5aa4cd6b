package service

import (
	"context"
	"sync"
	"time"

	"go-store/internal/store/data"
	"go-store/pkg/threadsafe"
)

type fakeClock struct {
	time *threadsafe.Time
}

func newFakeClock(t time.Time) *fakeClock {
	return &fakeClock{
		time: threadsafe.NewTime(t),
	}
}

func (c *fakeClock) Now() time.Time {
	return c.time.Get()
}

type fakeTransactionManager struct {
	beginErr error
}

func (m *fakeTransactionManager) DoWithTransaction(
	ctx context.Context,
	f func(ctx context.Context) error,
) error {
	if m.beginErr != nil {
		return m.beginErr
	}
	return f(ctx)
}

type fakeHistoryRepository struct {
	customerExists bool
	existsErr      error
	recentCount    int
	recentErr      error
	hasAnyOrder    bool
	hasAnyErr      error

	capturedFrom time.Time
	capturedTo   time.Time
}

func (r *fakeHistoryRepository) CustomerExists(_ context.Context, _ int) (bool, error) {
	return r.customerExists, r.existsErr
}

func (r *fakeHistoryRepository) CountOrdersBetween(
	_ context.Context,
	_ int,
	from, to time.Time,
) (int, error) {
	r.capturedFrom = from
	r.capturedTo = to
	return r.recentCount, r.recentErr
}

func (r *fakeHistoryRepository) HasAnyOrder(_ context.Context, _ int) (bool, error) {
	return r.hasAnyOrder, r.hasAnyErr
}

type fakeOrderRepository struct {
	mu             sync.Mutex
	customerExists bool
	existsErr      error
	insertErr      error
	nextID         int
	inserted       []data.Order
}

func (r *fakeOrderRepository) CustomerExists(_ context.Context, _ int) (bool, error) {
	return r.customerExists, r.existsErr
}

func (r *fakeOrderRepository) InsertOrder(_ context.Context, order *data.Order) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		return -1, r.insertErr
	}
	r.nextID++
	stored := *order
	stored.ID = r.nextID
	r.inserted = append(r.inserted, stored)
	return r.nextID, nil
}

func (r *fakeOrderRepository) insertedOrders() []data.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]data.Order(nil), r.inserted...)
}
