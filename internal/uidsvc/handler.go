package uidsvc

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sundayezeilo/uidgen/internal/errx"
	"github.com/sundayezeilo/uidgen/internal/httpx"
)

// HTTPMintRequest represents the JSON request body for minting a batch
// of identifiers.
type HTTPMintRequest struct {
	Kind   string `json:"kind,omitempty"`   // string (default), human, u16, u32, u64
	Count  int    `json:"count,omitempty"`  // defaults to 1
	Length int    `json:"length,omitempty"` // string kinds only
}

// MintedUIDResponse represents one issued identifier.
type MintedUIDResponse struct {
	UID    string  `json:"uid"`
	Number *uint64 `json:"number,omitempty"`
}

// MintResponse represents the JSON response for a minted batch.
type MintResponse struct {
	UIDs []MintedUIDResponse `json:"uids"`
}

// HTTPClaimRequest represents the JSON request body for claiming a
// caller-supplied identifier.
type HTTPClaimRequest struct {
	UID string `json:"uid"`
}

// ClaimResponse represents the JSON response for a claim.
type ClaimResponse struct {
	Accepted    bool   `json:"accepted"`
	Replacement string `json:"replacement,omitempty"`
}

// DecodeResponse represents the JSON response for a decoded identifier.
type DecodeResponse struct {
	UID   string `json:"uid"`
	Value uint64 `json:"value"`
}

// StatsResponse represents the JSON response for store statistics.
type StatsResponse struct {
	Issued int `json:"issued"`
}

// Handler provides HTTP handlers for the UID service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// HandlerConfig holds configuration for the handler.
type HandlerConfig struct {
	Service Service
	Logger  *slog.Logger
}

// NewHandler creates a new Handler instance.
func NewHandler(cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		service: cfg.Service,
		logger:  logger,
	}
}

// Mint handles POST requests to issue a batch of identifiers.
func (h *Handler) Mint(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	logger := h.logger.With(
		"request_id", httpx.GetRequestID(ctx),
		"method", r.Method,
		"path", r.URL.Path,
	)

	req, err := httpx.DecodeJSON[HTTPMintRequest](r)
	if err != nil {
		logger.WarnContext(ctx, "failed to decode request",
			"error", err.Error(),
		)
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error(), nil)
		return
	}

	kind := Kind(req.Kind)
	if req.Kind == "" {
		kind = KindString
	}

	minted, err := h.service.Mint(ctx, MintRequest{
		Kind:   kind,
		Count:  req.Count,
		Length: req.Length,
	})
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	resp := MintResponse{UIDs: make([]MintedUIDResponse, 0, len(minted))}
	for _, m := range minted {
		item := MintedUIDResponse{UID: m.UID}
		if m.Numeric {
			n := m.Number
			item.Number = &n
		}
		resp.UIDs = append(resp.UIDs, item)
	}

	logger.InfoContext(ctx, "uids minted",
		"kind", string(kind),
		"count", len(resp.UIDs),
	)

	httpx.WriteJSON(w, http.StatusCreated, resp)
}

// Claim handles POST requests to record a caller-supplied identifier.
// A candidate that was never issued is accepted as-is; a colliding one
// gets a freshly generated replacement.
func (h *Handler) Claim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	logger := h.logger.With(
		"request_id", httpx.GetRequestID(ctx),
		"method", r.Method,
		"path", r.URL.Path,
	)

	req, err := httpx.DecodeJSON[HTTPClaimRequest](r)
	if err != nil {
		logger.WarnContext(ctx, "failed to decode request",
			"error", err.Error(),
		)
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error(), nil)
		return
	}

	result, err := h.service.Claim(ctx, req.UID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	logger.InfoContext(ctx, "uid claimed",
		"accepted", result.Accepted,
	)

	httpx.WriteJSON(w, http.StatusOK, ClaimResponse{
		Accepted:    result.Accepted,
		Replacement: result.Replacement,
	})
}

// Decode handles GET requests that convert a base62 identifier back to
// its numeric value.
func (h *Handler) Decode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	logger := h.logger.With(
		"request_id", httpx.GetRequestID(ctx),
		"method", r.Method,
		"path", r.URL.Path,
	)

	id := r.PathValue("uid")

	value, err := h.service.Decode(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "decode failed",
			"uid", id,
			"error", err.Error(),
		)
		h.writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, DecodeResponse{UID: id, Value: value})
}

// Stats handles GET requests for store statistics.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.service.Stats(ctx)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, StatsResponse{Issued: stats.Issued})
}

// writeServiceError maps a service error onto an HTTP response.
func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	kind := errx.KindOf(err)

	if kind == errx.Unknown || kind == errx.Internal {
		h.logger.ErrorContext(ctx, "service error",
			"request_id", httpx.GetRequestID(ctx),
			"error", err.Error(),
			"error_kind", kind.String(),
			"op", errx.OpOf(err),
		)
	}

	httpx.WriteError(w,
		httpx.ErrorKindToStatus(kind),
		httpx.ErrorKindToCode(kind),
		err.Error(),
		nil)
}
