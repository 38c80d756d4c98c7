package store

import (
	"eyeslot/infras/otel"
	"eyeslot/shared/constant"
	"eyeslot/stores"
	"eyeslot/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	catalog *stores.Catalog
	otel    otel.Otel
}

func New(catalog *stores.Catalog, otel otel.Otel) Handler {
	return Handler{
		catalog: catalog,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/stores", handler.GetStores)
}

// GetStores lists the partner stores.
// @Summary List stores
// @Tags Store
// @Produce json
// @Success 200 {object} response.Data[[]stores.Store] "Stores"
// @Router /v1/stores [get]
func (handler *Handler) GetStores(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStores")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.catalog.List())
}
