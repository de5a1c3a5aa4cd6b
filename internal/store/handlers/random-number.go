package handlers

import (
	"context"
	"errors"
	"net/http"

	"go-store/internal/common/clientprotocol"
	"go-store/internal/store/service"
	"go-store/pkg/logging"
	"go.uber.org/zap"
)

type RandomNumberHandler struct {
	service RandomNumberService
	logger  *logging.ZapLogger
}

type RandomNumberService interface {
	GetRandom(ctx context.Context) (int, error)
}

func NewRandomNumberHandler(service RandomNumberService, logger *logging.ZapLogger) *RandomNumberHandler {
	return &RandomNumberHandler{
		service: service,
		logger:  logger,
	}
}

func (h *RandomNumberHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	number, err := h.service.GetRandom(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRandomNumbersExhausted):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			h.logger.ErrorCtx(r.Context(), "Error generating random number", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	res := clientprotocol.RandomNumberResponse{
		Number: number,
	}
	if err := tryWriteResponseJSON(w, res); err != nil {
		h.logger.ErrorCtx(r.Context(), "Error writing response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}
