package message

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/mzhdanov/alert-router/internal/api/respond"
	"github.com/mzhdanov/alert-router/internal/config"
	"github.com/mzhdanov/alert-router/internal/model"
	msgrepo "github.com/mzhdanov/alert-router/internal/repository/message"
	"github.com/mzhdanov/alert-router/internal/service/dispatch"
)

// messageService defines the interface that the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/message/mock.go -package=mocks
type messageService interface {
	Dispatch(ctx context.Context, strategy retry.Strategy, in model.DispatchInput) (model.DispatchResult, error)
	MessageStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error)
	MessageSummary(ctx context.Context, id uuid.UUID) (model.MessageSummary, error)
}

// Handler handles HTTP requests for dispatching alerts and reading back
// their processing state.
type Handler struct {
	service   messageService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(s messageService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// SourceRequest describes where the alert came from.
type SourceRequest struct {
	Host    string `json:"host"`
	Service string `json:"service"`
	IP      string `json:"ip"`
}

// DispatchRequest represents the JSON body of a dispatch call.
type DispatchRequest struct {
	MessageType  string                 `json:"message_type" validate:"required"`
	Title        string                 `json:"title" validate:"required"`
	Content      string                 `json:"content" validate:"required"`
	Source       *SourceRequest         `json:"source"`
	TargetGroups []string               `json:"target_groups"`
	Priority     int                    `json:"priority" validate:"gte=0,lte=5"`
	Metadata     map[string]interface{} `json:"metadata"`
}

// Dispatch handles HTTP POST requests carrying a new alert.
//
// It validates the request body, runs the dispatch pipeline and returns the
// dispatch outcome: queued, completed or suppressed.
func (h *Handler) Dispatch(c *ginext.Context) {
	var req DispatchRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	in := model.DispatchInput{
		TypeCode:     req.MessageType,
		Title:        req.Title,
		Content:      req.Content,
		TargetGroups: req.TargetGroups,
		Priority:     req.Priority,
	}

	if req.Source != nil {
		in.SourceHost = req.Source.Host
		in.SourceService = req.Source.Service
		in.SourceIP = req.Source.IP
	}

	if len(req.Metadata) > 0 {
		raw, err := json.Marshal(req.Metadata)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid metadata"))
			return
		}
		in.Metadata = string(raw)
	}

	result, err := h.service.Dispatch(c.Request.Context(), h.cfg.Retry, in)
	if err != nil {
		if errors.Is(err, dispatch.ErrInvalidMessageType) {
			zlog.Logger.Warn().Str("type", req.MessageType).Msg("dispatch rejected: unknown message type")
			respond.FailCode(c.Writer, http.StatusBadRequest, "INVALID_MESSAGE_TYPE", err)
			return
		}

		zlog.Logger.Error().Err(err).Str("type", req.MessageType).Msg("failed to dispatch alert")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Accepted(c.Writer, result)
}

// GetStatus handles HTTP GET requests for the coarse processing status of
// a message.
func (h *Handler) GetStatus(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	status, err := h.service.MessageStatus(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, msgrepo.ErrMessageNotFound) {
			zlog.Logger.Warn().Str("id", id.String()).Msg("message not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("message not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get message status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, status)
}

// Get handles HTTP GET requests for a message with its per-delivery
// status counts.
func (h *Handler) Get(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	summary, err := h.service.MessageSummary(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, msgrepo.ErrMessageNotFound) {
			zlog.Logger.Warn().Str("id", id.String()).Msg("message not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("message not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get message")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, summary)
}

func (h *Handler) parseID(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	if id == uuid.Nil {
		zlog.Logger.Warn().Msg("missing id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing id"))
		return uuid.Nil, false
	}

	return id, true
}
