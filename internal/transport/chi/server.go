// Package chi wires the facade services into an HTTP router.
package chi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pockettcg/facade/internal/domain/envelope"
	"github.com/pockettcg/facade/internal/domain/query"
	cardsuc "github.com/pockettcg/facade/internal/usecase/cards"
	catalogsuc "github.com/pockettcg/facade/internal/usecase/catalogs"
	healthuc "github.com/pockettcg/facade/internal/usecase/health"
	priceuc "github.com/pockettcg/facade/internal/usecase/price"
	setsuc "github.com/pockettcg/facade/internal/usecase/sets"
	"github.com/pockettcg/facade/internal/version"
)

// Server exposes the facade operations over HTTP. All routes are GET-only
// with no request bodies.
type Server struct {
	cards    *cardsuc.Service
	sets     *setsuc.Service
	price    *priceuc.Service
	catalogs *catalogsuc.Service
	health   *healthuc.Service
	logger   *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	cards *cardsuc.Service,
	sets *setsuc.Service,
	price *priceuc.Service,
	catalogs *catalogsuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	return &Server{
		cards:    cards,
		sets:     sets,
		price:    price,
		catalogs: catalogs,
		health:   health,
		logger:   logger,
	}
}

// Register mounts all routes on the given router.
func (s *Server) Register(r chi.Router) {
	r.Get("/", s.handleHome)
	r.Get("/cards", s.handleListCards)
	r.Get("/cards/{card_id}", s.handleGetCard)
	r.Get("/card_price", s.handleCardPrice)
	r.Get("/sets", s.handleListSets)
	r.Get("/sets/{set_id}", s.handleGetSet)
	r.Get("/types", s.handleCatalog(catalogsuc.Types))
	r.Get("/supertypes", s.handleCatalog(catalogsuc.Supertypes))
	r.Get("/subtypes", s.handleCatalog(catalogsuc.Subtypes))
	r.Get("/rarities", s.handleCatalog(catalogsuc.Rarities))
	r.Get("/health", s.handleHealth)
	r.Get("/metrics", s.handleMetrics)
}

// handleHome handles GET /.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, envelope.SuccessSingle(map[string]any{
		"name":    "pockettcg-facade",
		"version": version.Version,
		"endpoints": []string{
			"/cards", "/cards/{card_id}", "/card_price",
			"/sets", "/sets/{set_id}",
			"/types", "/supertypes", "/subtypes", "/rarities",
		},
	}))
}

// handleListCards handles GET /cards.
func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	pg, err := query.ParsePagination(values)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	filters := query.NormalizeFilters(values, query.CardFilterKeys)

	writeEnvelope(w, s.cards.List(r.Context(), filters, pg))
}

// handleGetCard handles GET /cards/{card_id}.
func (s *Server) handleGetCard(w http.ResponseWriter, r *http.Request) {
	cardID := chi.URLParam(r, "card_id")
	writeEnvelope(w, s.cards.GetByID(r.Context(), cardID))
}

// handleCardPrice handles GET /card_price.
func (s *Server) handleCardPrice(w http.ResponseWriter, r *http.Request) {
	cardName, err := query.RequireParam(r.URL.Query(), "card_name")
	if err != nil {
		writeValidationError(w, err)
		return
	}
	writeEnvelope(w, s.price.Lookup(r.Context(), cardName))
}

// handleListSets handles GET /sets.
func (s *Server) handleListSets(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	pg, err := query.ParsePagination(values)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	filters := query.NormalizeFilters(values, query.SetFilterKeys)

	writeEnvelope(w, s.sets.List(r.Context(), filters, pg))
}

// handleGetSet handles GET /sets/{set_id}.
func (s *Server) handleGetSet(w http.ResponseWriter, r *http.Request) {
	setID := chi.URLParam(r, "set_id")
	writeEnvelope(w, s.sets.GetByID(r.Context(), setID))
}

// handleCatalog builds the handler for one catalog listing route.
func (s *Server) handleCatalog(kind catalogsuc.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, s.catalogs.List(r.Context(), kind))
	}
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// handleMetrics handles GET /metrics.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// httpStatus maps an envelope variant to its HTTP status code. Validation
// errors are written directly by the handlers and never reach here, so the
// error variant always means an upstream failure.
func httpStatus(env envelope.Envelope) int {
	switch env.Status {
	case envelope.StatusNotFound:
		return http.StatusNotFound
	case envelope.StatusError:
		return http.StatusBadGateway
	default:
		return http.StatusOK
	}
}

func writeEnvelope(w http.ResponseWriter, env envelope.Envelope) {
	writeJSON(w, httpStatus(env), env)
}

func writeValidationError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, envelope.Error(err.Error(), ""))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
