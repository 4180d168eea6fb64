package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"matchday/internal/api/handler/v1/response"
	"matchday/internal/domain"
	"matchday/internal/service"
)

type MatchService interface {
	Matches(team, stadium, date string) []*domain.Match
	AvailableSeats(matchID string, class domain.SeatClass) ([]string, error)
}

type MatchHandler struct {
	svc MatchService
}

func NewMatchHandler(svc MatchService) *MatchHandler {
	return &MatchHandler{
		svc: svc,
	}
}

// HandleListMatches godoc
// @Summary      List matches
// @Description  Lists fixtures, optionally filtered by team, stadium or date
// @Tags         matches
// @Produce      json
// @Param        team     query     string  false  "team name"
// @Param        stadium  query     string  false  "stadium name"
// @Param        date     query     string  false  "date prefix"
// @Success      200  {array}   response.Match
// @Router       /matches [get]
func (h *MatchHandler) HandleListMatches(ctx *gin.Context) {
	matches := h.svc.Matches(ctx.Query("team"), ctx.Query("stadium"), ctx.Query("date"))

	ctx.JSON(http.StatusOK, response.NewMatches(matches))
}

// HandleGetSeats godoc
// @Summary      Get available seats
// @Description  Lists the free seats of one class for a match
// @Tags         matches
// @Produce      json
// @Param        matchID  path      string  true   "match ID"
// @Param        class    query     string  false  "vip or general (default general)"
// @Success      200  {object}  response.Seats
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /matches/{matchID}/seats [get]
func (h *MatchHandler) HandleGetSeats(ctx *gin.Context) {
	matchID := ctx.Param("matchID")

	class := domain.SeatClass(ctx.DefaultQuery("class", string(domain.ClassGeneral)))
	if class != domain.ClassGeneral && class != domain.ClassVIP {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("unknown seat class %q", class)))
		return
	}

	seats, err := h.svc.AvailableSeats(matchID, class)
	if err != nil {
		if errors.Is(err, service.ErrMatchNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("match", "matchID", matchID))
			return
		}

		err = fmt.Errorf("HandleGetSeats -> h.svc.AvailableSeats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Seats{
		MatchID: matchID,
		Class:   string(class),
		Seats:   seats,
	})
}
