package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"go-store/internal/common/clientprotocol"
	"go-store/internal/store/service"
	"go-store/pkg/logging"
	"go.uber.org/zap"
)

type PurchaseEligibilityHandler struct {
	service PurchaseEligibilityService
	logger  *logging.ZapLogger
}

type PurchaseEligibilityService interface {
	CanPurchase(ctx context.Context, customerID int, purchaseValue decimal.Decimal) (bool, error)
}

func NewPurchaseEligibilityHandler(
	service PurchaseEligibilityService,
	logger *logging.ZapLogger,
) *PurchaseEligibilityHandler {
	return &PurchaseEligibilityHandler{
		service: service,
		logger:  logger,
	}
}

func (h *PurchaseEligibilityHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	customerID, err := customerIDFromURL(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	purchaseValue, err := decimal.NewFromString(r.URL.Query().Get("value"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	allowed, err := h.service.CanPurchase(r.Context(), customerID, purchaseValue)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidArgument):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, service.ErrCustomerNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			h.logger.ErrorCtx(r.Context(), "Error checking purchase eligibility", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	res := clientprotocol.CanPurchaseResponse{
		CanPurchase: allowed,
	}
	if err := tryWriteResponseJSON(w, res); err != nil {
		h.logger.ErrorCtx(r.Context(), "Error writing response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}
