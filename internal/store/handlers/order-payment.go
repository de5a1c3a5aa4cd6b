package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"go-store/internal/common/clientprotocol"
	"go-store/internal/store/data"
	"go-store/internal/store/service"
	"go-store/pkg/logging"
	"go.uber.org/zap"
)

type OrderPaymentHandler struct {
	service OrderPaymentService
	logger  *logging.ZapLogger
}

type OrderPaymentService interface {
	PayOrder(ctx context.Context, customerID int, value decimal.Decimal, method data.PaymentMethod) (service.Order, error)
}

func NewOrderPaymentHandler(service OrderPaymentService, logger *logging.ZapLogger) *OrderPaymentHandler {
	return &OrderPaymentHandler{
		service: service,
		logger:  logger,
	}
}

func (h *OrderPaymentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer closeBody(r.Context(), r.Body, h.logger)

	request, err := decodeJSON[clientprotocol.PayOrderRequest](r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	order, err := h.service.PayOrder(
		r.Context(),
		request.CustomerID,
		request.Value,
		data.PaymentMethod(request.Method),
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidArgument),
			errors.Is(err, service.ErrUnknownPaymentMethod):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, service.ErrCustomerNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, data.ErrUniqueConstraintViolation):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, service.ErrPaymentProcessingFailed):
			// The order is persisted; surface its identifier alongside
			// the failure.
			h.logger.ErrorCtx(r.Context(), "Payment processing failed", zap.Error(err), zap.Int("orderID", order.ID))
			w.WriteHeader(http.StatusBadGateway)
		default:
			h.logger.ErrorCtx(r.Context(), "Error paying order", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	body, err := json.Marshal(toProtocolOrder(order))
	if err != nil {
		h.logger.ErrorCtx(r.Context(), "Error marshalling order", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if _, err := w.Write(body); err != nil {
		h.logger.ErrorCtx(r.Context(), "Error writing response", zap.Error(err))
	}
}
