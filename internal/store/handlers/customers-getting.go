package handlers

import (
	"context"
	"net/http"

	"go-store/internal/common/clientprotocol"
	"go-store/internal/store/service"
	"go-store/pkg/logging"
	"go-store/pkg/paging"
	"go.uber.org/zap"
)

type CustomersGettingHandler struct {
	service CustomersGettingService
	logger  *logging.ZapLogger
}

type CustomersGettingService interface {
	GetCustomersPage(ctx context.Context, page, pageSize int) (paging.Page[service.Customer], error)
}

func NewCustomersGettingHandler(service CustomersGettingService, logger *logging.ZapLogger) *CustomersGettingHandler {
	return &CustomersGettingHandler{
		service: service,
		logger:  logger,
	}
}

func (h *CustomersGettingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.GetCustomersPage(r.Context(), pageFromQuery(r), paging.DefaultPageSize)
	if err != nil {
		h.logger.ErrorCtx(r.Context(), "Error getting customers page", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	res := toProtocolPage(page, func(customer service.Customer) clientprotocol.Customer {
		return clientprotocol.Customer{
			ID:   customer.ID,
			Name: customer.Name,
		}
	})
	if err := tryWriteResponseJSON(w, res); err != nil {
		h.logger.ErrorCtx(r.Context(), "Error writing response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}
