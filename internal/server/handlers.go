// Package server provides HTTP handlers and server setup for the gateway.
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"unichat/internal/core"
	"unichat/internal/observability"
	"unichat/internal/version"
)

// Handler holds the HTTP handlers
type Handler struct {
	chatter core.Chatter
}

// NewHandler creates a new handler with the given chatter
func NewHandler(chatter core.Chatter) *Handler {
	return &Handler{
		chatter: chatter,
	}
}

// Chat handles POST /chat.
//
// Adapter and dispatcher failures are converted here, exactly once, into the
// {success:false, error} envelope and returned with HTTP 200: logical
// failure is signaled only via the body, never via status. Only body-shape
// errors get a 4xx. This mirrors the original client contract and must be
// preserved for compatibility.
func (h *Handler) Chat(c echo.Context) error {
	var req core.ChatRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, core.NewInvalidRequestError("invalid request body: "+err.Error(), err))
	}

	if !req.Provider.Valid() {
		return handleError(c, core.NewInvalidRequestError("invalid provider: "+string(req.Provider), nil))
	}
	if req.Model == "" {
		return handleError(c, core.NewInvalidRequestError("model is required", nil))
	}
	if len(req.Messages) == 0 {
		return handleError(c, core.NewInvalidRequestError("messages must not be empty", nil))
	}

	temperature := core.DefaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	ctx := c.Request().Context()
	slog.Info("chat request",
		"provider", req.Provider,
		"model", req.Model,
		"request_id", core.GetRequestID(ctx),
	)

	start := time.Now()
	text, err := h.chatter.Chat(ctx, req.Provider, req.Model, req.Messages, temperature)
	observability.ObserveChat(req.Provider, err == nil, time.Since(start))

	if err != nil {
		slog.Error("chat request failed",
			"provider", req.Provider,
			"model", req.Model,
			"request_id", core.GetRequestID(ctx),
			"error", err,
		)
		return c.JSON(http.StatusOK, core.NewErrorResponse(envelopeMessage(err)))
	}

	return c.JSON(http.StatusOK, core.NewSuccessResponse(text))
}

// healthResponse is the GET /health body.
type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// Health handles GET /health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Version:   version.Version,
	})
}

// modelsResponse is the GET /models body.
type modelsResponse struct {
	Models map[core.Provider][]string `json:"models"`
}

// ListModels handles GET /models
func (h *Handler) ListModels(c echo.Context) error {
	return c.JSON(http.StatusOK, modelsResponse{Models: core.Catalog()})
}

// Root handles GET /
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Unified AI Client API",
		"docs":    "/docs",
	})
}

// envelopeMessage extracts the user-facing message for the error envelope.
func envelopeMessage(err error) string {
	var gatewayErr *core.GatewayError
	if errors.As(err, &gatewayErr) {
		return gatewayErr.Message
	}
	return err.Error()
}

// handleError converts client errors to HTTP error responses
func handleError(c echo.Context, err error) error {
	var gatewayErr *core.GatewayError
	if errors.As(err, &gatewayErr) {
		return c.JSON(gatewayErr.HTTPStatusCode(), gatewayErr.ToJSON())
	}

	// Fallback for unexpected errors
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"error": map[string]interface{}{
			"type":    "internal_error",
			"message": "an unexpected error occurred",
		},
	})
}
