package clientprotocol

import (
	"time"

	"github.com/shopspring/decimal"
)

type Page[T any] struct {
	Items       []T  `json:"items"`
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	TotalCount  int  `json:"totalCount"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

type Product struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}

type Customer struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}

type Order struct {
	OrderDate  time.Time       `json:"orderDate"`
	Value      decimal.Decimal `json:"value"`
	Method     string          `json:"paymentMethod"`
	Status     string          `json:"paymentStatus"`
	ID         int             `json:"id"`
	CustomerID int             `json:"customerId"`
}

type CanPurchaseResponse struct {
	CanPurchase bool `json:"canPurchase"`
}

type PayOrderRequest struct {
	Value      decimal.Decimal `json:"value"`
	Method     string          `json:"paymentMethod"`
	CustomerID int             `json:"customerId"`
}

type RandomNumberResponse struct {
	Number int `json:"number"`
}
