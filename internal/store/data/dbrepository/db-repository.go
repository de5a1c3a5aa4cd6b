package dbrepository

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go-store/internal/store/data"
	"go-store/pkg/logging"
	"go.uber.org/zap"
)

const (
	invalidOrderID = -1
)

type DBStorage interface {
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, query string, args ...any) (pgx.Row, error)
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	QueryValue(ctx context.Context, query string, args []any, dest []any) error
}

type DBRepository struct {
	storage DBStorage
	logger  *logging.ZapLogger
}

func New(storage DBStorage, logger *logging.ZapLogger) *DBRepository {
	return &DBRepository{
		storage: storage,
		logger:  logger,
	}
}

//go:embed sql/customer_exists.sql
var customerExistsQuery string

func (db *DBRepository) CustomerExists(ctx context.Context, customerID int) (bool, error) {
	var exists bool
	err := db.storage.QueryValue(ctx, customerExistsQuery, []any{customerID}, []any{&exists})
	if err != nil {
		return false, handleSQLError(err)
	}
	return exists, nil
}

//go:embed sql/count_orders_between.sql
var countOrdersBetweenQuery string

func (db *DBRepository) CountOrdersBetween(
	ctx context.Context,
	customerID int,
	from, to time.Time,
) (int, error) {
	var count int
	err := db.storage.QueryValue(ctx, countOrdersBetweenQuery, []any{customerID, from, to}, []any{&count})
	if err != nil {
		return 0, handleSQLError(err)
	}
	return count, nil
}

//go:embed sql/exists_any_order.sql
var existsAnyOrderQuery string

func (db *DBRepository) HasAnyOrder(ctx context.Context, customerID int) (bool, error) {
	var exists bool
	err := db.storage.QueryValue(ctx, existsAnyOrderQuery, []any{customerID}, []any{&exists})
	if err != nil {
		return false, handleSQLError(err)
	}
	return exists, nil
}

//go:embed sql/insert_order.sql
var insertOrderQuery string

func (db *DBRepository) InsertOrder(ctx context.Context, order *data.Order) (orderID int, err error) {
	db.logger.DebugCtx(ctx, "inserting order", zap.Int("customerID", order.CustomerID))
	err = db.storage.QueryValue(
		ctx,
		insertOrderQuery,
		[]any{
			order.CustomerID,
			order.Value,
			string(order.Method),
			string(order.Status),
			order.OrderDate,
		},
		[]any{&orderID},
	)
	if err != nil {
		return invalidOrderID, handleSQLError(err)
	}
	return orderID, nil
}

//go:embed sql/select_products_page.sql
var selectProductsPageQuery string

func (db *DBRepository) GetProductsPage(ctx context.Context, limit, offset int) ([]data.Product, error) {
	rows, err := db.storage.Query(ctx, selectProductsPageQuery, limit, offset)
	if err != nil {
		return nil, handleSQLError(err)
	}
	defer rows.Close()

	result := make([]data.Product, 0)
	for rows.Next() {
		var product data.Product
		err := rows.Scan(&product.ID, &product.Name)
		if err != nil {
			return nil, handleSQLError(err)
		}
		result = append(result, product)
	}
	if err = rows.Err(); err != nil {
		return nil, handleSQLError(err)
	}
	return result, nil
}

//go:embed sql/count_products.sql
var countProductsQuery string

func (db *DBRepository) CountProducts(ctx context.Context) (int, error) {
	var count int
	err := db.storage.QueryValue(ctx, countProductsQuery, nil, []any{&count})
	if err != nil {
		return 0, handleSQLError(err)
	}
	return count, nil
}

//go:embed sql/select_customers_page.sql
var selectCustomersPageQuery string

func (db *DBRepository) GetCustomersPage(ctx context.Context, limit, offset int) ([]data.Customer, error) {
	rows, err := db.storage.Query(ctx, selectCustomersPageQuery, limit, offset)
	if err != nil {
		return nil, handleSQLError(err)
	}
	defer rows.Close()

	result := make([]data.Customer, 0)
	for rows.Next() {
		var customer data.Customer
		err := rows.Scan(&customer.ID, &customer.Name)
		if err != nil {
			return nil, handleSQLError(err)
		}
		result = append(result, customer)
	}
	if err = rows.Err(); err != nil {
		return nil, handleSQLError(err)
	}
	return result, nil
}

//go:embed sql/count_customers.sql
var countCustomersQuery string

func (db *DBRepository) CountCustomers(ctx context.Context) (int, error) {
	var count int
	err := db.storage.QueryValue(ctx, countCustomersQuery, nil, []any{&count})
	if err != nil {
		return 0, handleSQLError(err)
	}
	return count, nil
}

//go:embed sql/select_customer_orders_page.sql
var selectCustomerOrdersPageQuery string

func (db *DBRepository) GetCustomerOrdersPage(
	ctx context.Context,
	customerID int,
	limit, offset int,
) ([]data.Order, error) {
	rows, err := db.storage.Query(ctx, selectCustomerOrdersPageQuery, customerID, limit, offset)
	if err != nil {
		return nil, handleSQLError(err)
	}
	defer rows.Close()

	result := make([]data.Order, 0)
	for rows.Next() {
		order := data.Order{
			CustomerID: customerID,
		}
		err := rows.Scan(
			&order.ID,
			&order.Value,
			&order.Method,
			&order.Status,
			&order.OrderDate,
		)
		if err != nil {
			return nil, handleSQLError(err)
		}
		result = append(result, order)
	}
	if err = rows.Err(); err != nil {
		return nil, handleSQLError(err)
	}
	return result, nil
}

//go:embed sql/count_customer_orders.sql
var countCustomerOrdersQuery string

func (db *DBRepository) CountCustomerOrders(ctx context.Context, customerID int) (int, error) {
	var count int
	err := db.storage.QueryValue(ctx, countCustomerOrdersQuery, []any{customerID}, []any{&count})
	if err != nil {
		return 0, handleSQLError(err)
	}
	return count, nil
}

//go:embed sql/insert_random_number.sql
var insertRandomNumberQuery string

func (db *DBRepository) InsertRandomNumber(ctx context.Context, number int) error {
	_, err := db.storage.Exec(ctx, insertRandomNumberQuery, number)
	if err != nil {
		return handleSQLError(err)
	}
	return nil
}

func handleSQLError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return data.ErrUniqueConstraintViolation
		case "23503":
			return data.ErrForeignKeyViolation
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("no rows returned: %w", err)
	}
	return err
}
