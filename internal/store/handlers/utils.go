package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go-store/internal/common/clientprotocol"
	"go-store/pkg/logging"
	"go-store/pkg/paging"
	"go.uber.org/zap"
)

func closeBody(ctx context.Context, body io.ReadCloser, logger *logging.ZapLogger) {
	err := body.Close()
	if err != nil {
		logger.ErrorCtx(ctx, "failed to close body", zap.Error(err))
	}
}

func decodeJSON[T any](r io.Reader) (T, error) {
	var out T
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	err := decoder.Decode(&out)
	return out, err
}

func tryWriteResponseJSON(w http.ResponseWriter, responseItem any) error {
	res, err := json.Marshal(responseItem)
	if err != nil {
		return err
	}
	w.Header().Add("Content-Type", "application/json")
	_, err = w.Write(res)
	if err != nil {
		return err
	}
	return nil
}

func pageFromQuery(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return paging.FirstPage
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return paging.FirstPage
	}
	return page
}

func customerIDFromURL(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "customerID"))
}

func toProtocolPage[S, T any](page paging.Page[S], convert func(S) T) clientprotocol.Page[T] {
	items := make([]T, len(page.Items))
	for i, item := range page.Items {
		items[i] = convert(item)
	}
	return clientprotocol.Page[T]{
		Items:       items,
		Page:        page.Page,
		PageSize:    page.PageSize,
		TotalCount:  page.TotalCount,
		HasNext:     page.HasNext(),
		HasPrevious: page.HasPrevious(),
	}
}
