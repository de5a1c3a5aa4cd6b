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

type ProductsGettingHandler struct {
	service ProductsGettingService
	logger  *logging.ZapLogger
}

type ProductsGettingService interface {
	GetProductsPage(ctx context.Context, page, pageSize int) (paging.Page[service.Product], error)
}

func NewProductsGettingHandler(service ProductsGettingService, logger *logging.ZapLogger) *ProductsGettingHandler {
	return &ProductsGettingHandler{
		service: service,
		logger:  logger,
	}
}

func (h *ProductsGettingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.GetProductsPage(r.Context(), pageFromQuery(r), paging.DefaultPageSize)
	if err != nil {
		h.logger.ErrorCtx(r.Context(), "Error getting products page", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	res := toProtocolPage(page, func(product service.Product) clientprotocol.Product {
		return clientprotocol.Product{
			ID:   product.ID,
			Name: product.Name,
		}
	})
	if err := tryWriteResponseJSON(w, res); err != nil {
		h.logger.ErrorCtx(r.Context(), "Error writing response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}
