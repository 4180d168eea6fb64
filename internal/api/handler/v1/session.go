package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"matchday/internal/api/handler/v1/response"
)

type SessionService interface {
	Save(ctx context.Context) error
}

type SessionHandler struct {
	svc SessionService
}

func NewSessionHandler(svc SessionService) *SessionHandler {
	return &SessionHandler{
		svc: svc,
	}
}

// HandleSaveSession godoc
// @Summary      Save the session
// @Description  Writes the full customer ledger to the snapshot file, replacing the previous one
// @Tags         session
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  response.Err
// @Router       /session/save [post]
func (h *SessionHandler) HandleSaveSession(ctx *gin.Context) {
	if err := h.svc.Save(ctx.Request.Context()); err != nil {
		err = fmt.Errorf("HandleSaveSession -> h.svc.Save -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "saved"})
}
