package handlers

import (
	"context"
	"errors"
	"net/http"

	"go-store/internal/common/clientprotocol"
	"go-store/internal/store/service"
	"go-store/pkg/logging"
	"go-store/pkg/paging"
	"go.uber.org/zap"
)

type OrdersGettingHandler struct {
	service OrdersGettingService
	logger  *logging.ZapLogger
}

type OrdersGettingService interface {
	GetCustomerOrdersPage(ctx context.Context, customerID int, page, pageSize int) (paging.Page[service.Order], error)
}

func NewOrdersGettingHandler(service OrdersGettingService, logger *logging.ZapLogger) *OrdersGettingHandler {
	return &OrdersGettingHandler{
		service: service,
		logger:  logger,
	}
}

func (h *OrdersGettingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	customerID, err := customerIDFromURL(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	page, err := h.service.GetCustomerOrdersPage(r.Context(), customerID, pageFromQuery(r), paging.DefaultPageSize)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidArgument):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, service.ErrCustomerNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			h.logger.ErrorCtx(r.Context(), "Error getting orders page", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}
	res := toProtocolPage(page, toProtocolOrder)
	if err := tryWriteResponseJSON(w, res); err != nil {
		h.logger.ErrorCtx(r.Context(), "Error writing response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}

func toProtocolOrder(order service.Order) clientprotocol.Order {
	return clientprotocol.Order{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Value:      order.Value,
		Method:     string(order.Method),
		Status:     string(order.Status),
		OrderDate:  order.OrderDate,
	}
}
