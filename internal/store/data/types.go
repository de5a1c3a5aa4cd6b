package data

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	NullMethod       = PaymentMethod("")
	CreditCardMethod = PaymentMethod("CREDIT_CARD")
	PaypalMethod     = PaymentMethod("PAYPAL")
	PixMethod        = PaymentMethod("PIX")
)

type PaymentStatus string

const (
	NullStatus       = PaymentStatus("")
	ProcessingStatus = PaymentStatus("PROCESSING")
	PaidStatus       = PaymentStatus("PAID")
	FailedStatus     = PaymentStatus("FAILED")
)

type Customer struct {
	Name string
	ID   int
}

type Product struct {
	Name string
	ID   int
}

type Order struct {
	// OrderDate is always stored in UTC; zone conversion happens
	// only when the order is presented to a caller.
	OrderDate  time.Time
	Value      decimal.Decimal
	Method     PaymentMethod
	Status     PaymentStatus
	ID         int
	CustomerID int
}
