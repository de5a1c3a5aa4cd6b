package service

import "errors"

var (
	ErrInvalidArgument         = errors.New("invalid argument")
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrUnknownPaymentMethod    = errors.New("unknown payment method")
	ErrPaymentProcessingFailed = errors.New("payment processing failed")
	ErrRandomNumbersExhausted  = errors.New("unable to generate a unique number")
)
