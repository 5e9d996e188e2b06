package jurisdictionhandler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"netpay/internal/domain/tax"
	"netpay/internal/transport/http/api"
	"netpay/internal/transport/http/middleware"
	"netpay/internal/transport/http/shared"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

type Handler struct {
	Registry *tax.Registry
}

func NewHandler(reg *tax.Registry) *Handler {
	if reg == nil {
		reg = tax.Builtin()
	}
	return &Handler{Registry: reg}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/jurisdictions", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/{code}", h.handleGet)
	})
}

type listResponse struct {
	Items      []tax.Summary     `json:"items"`
	Pagination shared.Pagination `json:"pagination"`
}

// handleList lists state jurisdictions, optionally filtered by kind
// (taxed or exempt).
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	kind := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("kind")))
	v := shared.NewValidator()
	v.Enum("kind", kind, []string{tax.KindTaxed.String(), tax.KindExempt.String()}, "must be taxed or exempt")
	if v.Reject(w, reqID) {
		return
	}

	items := make([]tax.Summary, 0, 50)
	for _, j := range h.Registry.States() {
		if kind != "" && j.Kind().String() != kind {
			continue
		}
		items = append(items, j.Summary())
	}

	page := shared.ParsePagination(r, defaultPageSize, maxPageSize)
	api.Success(w, listResponse{Items: shared.Page(items, &page), Pagination: page}, reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	j, err := h.Registry.Lookup(chi.URLParam(r, "code"))
	if err != nil {
		if errors.Is(err, tax.ErrJurisdictionNotFound) || errors.Is(err, tax.ErrJurisdictionCode) {
			api.Fail(w, http.StatusNotFound, "jurisdiction_not_found", "jurisdiction not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "internal_error", "failed to load jurisdiction", reqID)
		return
	}
	api.Success(w, j.Detail(), reqID)
}
