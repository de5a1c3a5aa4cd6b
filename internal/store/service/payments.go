package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	_ "time/tzdata" // the display zone must resolve without host tzdata

	"github.com/shopspring/decimal"
	"go-store/internal/store/data"
	"go-store/pkg/clock"
	"go-store/pkg/logging"
	"go.uber.org/zap"
)

// displayTimeZone is the single reference zone orders are presented in,
// regardless of the host machine's locale.
const displayTimeZone = "America/Recife"

type Order struct {
	OrderDate  time.Time
	Value      decimal.Decimal
	Method     data.PaymentMethod
	Status     data.PaymentStatus
	ID         int
	CustomerID int
}

type OrderRepository interface {
	CustomerExists(ctx context.Context, customerID int) (bool, error)
	InsertOrder(ctx context.Context, order *data.Order) (orderID int, err error)
}

// paymentProcessor resolves the final method/status pair of an order. The
// current processors are synchronous stand-ins and never fail; a real gateway
// implementation may return an error, in which case the order stays persisted
// with status PROCESSING.
type paymentProcessor interface {
	process(order *data.Order) error
}

type creditCardProcessor struct{}

func (creditCardProcessor) process(order *data.Order) error {
	order.Method = data.CreditCardMethod
	order.Status = data.PaidStatus
	return nil
}

type paypalProcessor struct{}

func (paypalProcessor) process(order *data.Order) error {
	order.Method = data.PaypalMethod
	order.Status = data.ProcessingStatus
	return nil
}

type pixProcessor struct{}

func (pixProcessor) process(order *data.Order) error {
	order.Method = data.PixMethod
	order.Status = data.FailedStatus
	return nil
}

// processorFor maps every payment method to exactly one processor. The method
// set is closed, so a switch is used instead of a registry.
func processorFor(method data.PaymentMethod) (paymentProcessor, error) {
	switch method {
	case data.CreditCardMethod:
		return creditCardProcessor{}, nil
	case data.PaypalMethod:
		return paypalProcessor{}, nil
	case data.PixMethod:
		return pixProcessor{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, method)
}

type Payments struct {
	transactionManager TransactionManager
	repository         OrderRepository
	clock              clock.Clock
	displayLocation    *time.Location
	logger             *logging.ZapLogger
}

func NewPayments(
	transactionManager TransactionManager,
	repository OrderRepository,
	clk clock.Clock,
	logger *logging.ZapLogger,
) (*Payments, error) {
	location, err := time.LoadLocation(displayTimeZone)
	if err != nil {
		return nil, fmt.Errorf("loading display time zone failed: %w", err)
	}
	return &Payments{
		transactionManager: transactionManager,
		repository:         repository,
		clock:              clk,
		displayLocation:    location,
		logger:             logger,
	}, nil
}

// PayOrder creates an order for the customer and settles it through the
// processor bound to the requested method. The order is written exactly once,
// after the processor has resolved its final status, inside a single
// transaction scope.
func (p *Payments) PayOrder(
	ctx context.Context,
	customerID int,
	value decimal.Decimal,
	method data.PaymentMethod,
) (Order, error) {
	if customerID <= 0 {
		return Order{}, fmt.Errorf("%w: customerID must be positive", ErrInvalidArgument)
	}
	if !value.IsPositive() {
		return Order{}, fmt.Errorf("%w: value must be positive", ErrInvalidArgument)
	}
	processor, err := processorFor(method)
	if err != nil {
		return Order{}, err
	}

	order := &data.Order{
		CustomerID: customerID,
		Value:      value,
		Method:     method,
		Status:     data.ProcessingStatus,
		OrderDate:  p.clock.Now().UTC(),
	}

	processingErr := processor.process(order)
	if processingErr != nil {
		order.Method = method
		order.Status = data.ProcessingStatus
	}

	err = p.transactionManager.DoWithTransaction(ctx, func(ctx context.Context) error {
		exists, err := p.repository.CustomerExists(ctx, customerID)
		if err != nil {
			return fmt.Errorf("checking customer existence failed: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: customer %d", ErrCustomerNotFound, customerID)
		}
		orderID, err := p.repository.InsertOrder(ctx, order)
		if err != nil {
			switch {
			case errors.Is(err, data.ErrUniqueConstraintViolation):
				return err
			default:
				return fmt.Errorf("inserting order failed: %w", err)
			}
		}
		order.ID = orderID
		return nil
	})
	if err != nil {
		return Order{}, err
	}

	p.logger.DebugCtx(
		ctx,
		"order settled",
		zap.Int("orderID", order.ID),
		zap.String("method", string(order.Method)),
		zap.String("status", string(order.Status)),
	)

	res := Order{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Value:      order.Value,
		Method:     order.Method,
		Status:     order.Status,
		OrderDate:  order.OrderDate.In(p.displayLocation),
	}
	if processingErr != nil {
		return res, fmt.Errorf("%w: order %d: %w", ErrPaymentProcessingFailed, order.ID, processingErr)
	}
	return res, nil
}
