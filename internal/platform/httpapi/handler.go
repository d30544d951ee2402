// Package httpapi exposes the generator as a local fixture service, so test
// environments can pull synthetic document bundles over HTTP instead of
// shelling out to the CLI.
package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ipsgen/ipsgen/internal/catalog"
	"github.com/ipsgen/ipsgen/internal/ips"
	"github.com/ipsgen/ipsgen/internal/platform/fhir"
)

// GenerateRequest are the batch parameters accepted by POST /generate.
type GenerateRequest struct {
	Patients          int    `json:"patients"`
	RepeatsPerPatient int    `json:"repeatsPerPatient"`
	Seed              *int64 `json:"seed,omitempty"`
}

// GenerateResponse wraps the generated bundles with batch bookkeeping.
type GenerateResponse struct {
	Count   int             `json:"count"`
	Bundles []fhir.Resource `json:"bundles"`
}

// Handler serves the fixture-generation endpoints.
type Handler struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewHandler creates a Handler generating from the given catalog.
func NewHandler(cat *catalog.Catalog, logger zerolog.Logger) *Handler {
	return &Handler{catalog: cat, logger: logger}
}

// RegisterRoutes registers the fixture routes on the given Echo group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/generate", h.handleGenerate)
	g.POST("/generate/ndjson", h.handleGenerateNDJSON)
	g.GET("/healthz", h.handleHealth)
}

func (h *Handler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleGenerate(c echo.Context) error {
	batch, err := h.startBatch(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	resp := GenerateResponse{Bundles: make([]fhir.Resource, 0, batch.Total())}
	for batch.Next() {
		bundle, err := fhir.RenderBundle(batch.Record().Document)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		resp.Bundles = append(resp.Bundles, bundle)
	}
	if err := batch.Err(); err != nil {
		h.logger.Error().Err(err).Msg("batch generation failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	resp.Count = len(resp.Bundles)
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleGenerateNDJSON(c echo.Context) error {
	batch, err := h.startBatch(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	c.Response().Header().Set(echo.HeaderContentType, "application/x-ndjson")
	c.Response().WriteHeader(http.StatusOK)

	w := fhir.NewNDJSONWriter(c.Response().Writer)
	for batch.Next() {
		if err := w.WriteDocument(batch.Record().Document); err != nil {
			return err
		}
	}
	if err := batch.Err(); err != nil {
		h.logger.Error().Err(err).Msg("batch generation failed")
		return err
	}
	return w.Flush()
}

func (h *Handler) startBatch(c echo.Context) (*ips.Batch, error) {
	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return nil, err
	}
	if req.Patients == 0 {
		req.Patients = 1
	}
	if req.RepeatsPerPatient == 0 {
		req.RepeatsPerPatient = 1
	}
	return ips.Generate(req.Patients, req.RepeatsPerPatient, req.Seed, h.catalog)
}
