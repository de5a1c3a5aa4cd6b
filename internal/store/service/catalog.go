package service

import (
	"context"
	"fmt"

	"go-store/internal/store/data"
	"go-store/pkg/paging"
)

type Customer struct {
	Name string
	ID   int
}

type Product struct {
	Name string
	ID   int
}

type CatalogRepository interface {
	GetProductsPage(ctx context.Context, limit, offset int) ([]data.Product, error)
	CountProducts(ctx context.Context) (int, error)
	GetCustomersPage(ctx context.Context, limit, offset int) ([]data.Customer, error)
	CountCustomers(ctx context.Context) (int, error)
	GetCustomerOrdersPage(ctx context.Context, customerID int, limit, offset int) ([]data.Order, error)
	CountCustomerOrders(ctx context.Context, customerID int) (int, error)
	CustomerExists(ctx context.Context, customerID int) (bool, error)
}

// Catalog serves the paginated read surface: products, customers and a
// customer's order history. Count and page are read in one transaction so the
// page math stays consistent under concurrent writes.
type Catalog struct {
	transactionManager TransactionManager
	repository         CatalogRepository
}

func NewCatalog(transactionManager TransactionManager, repository CatalogRepository) *Catalog {
	return &Catalog{
		transactionManager: transactionManager,
		repository:         repository,
	}
}

func (c *Catalog) GetProductsPage(ctx context.Context, page, pageSize int) (paging.Page[Product], error) {
	page, pageSize = paging.Normalize(page, pageSize)
	var res paging.Page[Product]
	err := c.transactionManager.DoWithTransaction(ctx, func(ctx context.Context) error {
		total, err := c.repository.CountProducts(ctx)
		if err != nil {
			return fmt.Errorf("counting products failed: %w", err)
		}
		products, err := c.repository.GetProductsPage(ctx, pageSize, paging.Offset(page, pageSize))
		if err != nil {
			return fmt.Errorf("getting products page failed: %w", err)
		}
		items := make([]Product, len(products))
		for i, product := range products {
			items[i] = Product{
				ID:   product.ID,
				Name: product.Name,
			}
		}
		res = paging.New(items, page, pageSize, total)
		return nil
	})
	if err != nil {
		return paging.Page[Product]{}, err //nolint:wrapcheck // unnecessary
	}
	return res, nil
}

func (c *Catalog) GetCustomersPage(ctx context.Context, page, pageSize int) (paging.Page[Customer], error) {
	page, pageSize = paging.Normalize(page, pageSize)
	var res paging.Page[Customer]
	err := c.transactionManager.DoWithTransaction(ctx, func(ctx context.Context) error {
		total, err := c.repository.CountCustomers(ctx)
		if err != nil {
			return fmt.Errorf("counting customers failed: %w", err)
		}
		customers, err := c.repository.GetCustomersPage(ctx, pageSize, paging.Offset(page, pageSize))
		if err != nil {
			return fmt.Errorf("getting customers page failed: %w", err)
		}
		items := make([]Customer, len(customers))
		for i, customer := range customers {
			items[i] = Customer{
				ID:   customer.ID,
				Name: customer.Name,
			}
		}
		res = paging.New(items, page, pageSize, total)
		return nil
	})
	if err != nil {
		return paging.Page[Customer]{}, err //nolint:wrapcheck // unnecessary
	}
	return res, nil
}

func (c *Catalog) GetCustomerOrdersPage(
	ctx context.Context,
	customerID int,
	page, pageSize int,
) (paging.Page[Order], error) {
	if customerID <= 0 {
		return paging.Page[Order]{}, fmt.Errorf("%w: customerID must be positive", ErrInvalidArgument)
	}
	page, pageSize = paging.Normalize(page, pageSize)
	var res paging.Page[Order]
	err := c.transactionManager.DoWithTransaction(ctx, func(ctx context.Context) error {
		exists, err := c.repository.CustomerExists(ctx, customerID)
		if err != nil {
			return fmt.Errorf("checking customer existence failed: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: customer %d", ErrCustomerNotFound, customerID)
		}
		total, err := c.repository.CountCustomerOrders(ctx, customerID)
		if err != nil {
			return fmt.Errorf("counting orders failed: %w", err)
		}
		orders, err := c.repository.GetCustomerOrdersPage(ctx, customerID, pageSize, paging.Offset(page, pageSize))
		if err != nil {
			return fmt.Errorf("getting orders page failed: %w", err)
		}
		items := make([]Order, len(orders))
		for i, order := range orders {
			items[i] = Order{
				ID:         order.ID,
				CustomerID: order.CustomerID,
				Value:      order.Value,
				Method:     order.Method,
				Status:     order.Status,
				OrderDate:  order.OrderDate,
			}
		}
		res = paging.New(items, page, pageSize, total)
		return nil
	})
	if err != nil {
		return paging.Page[Order]{}, err //nolint:wrapcheck // unnecessary
	}
	return res, nil
}
