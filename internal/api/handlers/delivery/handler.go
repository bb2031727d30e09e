package delivery

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/mzhdanov/alert-router/internal/api/respond"
	delrepo "github.com/mzhdanov/alert-router/internal/repository/delivery"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/delivery/mock.go -package=mocks
type deliveryService interface {
	Requeue(ctx context.Context, id uuid.UUID) error
}

// Handler exposes operator actions on individual deliveries.
type Handler struct {
	service deliveryService
}

func NewHandler(s deliveryService) *Handler {
	return &Handler{service: s}
}

// Requeue handles HTTP POST requests putting a terminally failed delivery
// back into the pending pool. Only failed deliveries can be requeued.
func (h *Handler) Requeue(c *ginext.Context) {
	idStr := c.Param("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	if err := h.service.Requeue(c.Request.Context(), id); err != nil {
		if errors.Is(err, delrepo.ErrDeliveryNotFound) {
			zlog.Logger.Warn().Str("id", id.String()).Msg("delivery not found or not failed")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("failed delivery not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to requeue delivery")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "delivery requeued")
}
