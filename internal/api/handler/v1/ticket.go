package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"matchday/internal/api/handler/v1/request"
	"matchday/internal/api/handler/v1/response"
	"matchday/internal/domain"
	"matchday/internal/service"
)

type TicketService interface {
	Issue(customerID int, name string, age int, matchID string, class domain.SeatClass, seat string) (*domain.Ticket, error)
	Validate(code string) (*domain.Ticket, error)
	CustomerTickets(customerID int) ([]*domain.Ticket, error)
}

type TicketHandler struct {
	svc TicketService
}

func NewTicketHandler(svc TicketService) *TicketHandler {
	return &TicketHandler{
		svc: svc,
	}
}

// HandleIssueTicket godoc
// @Summary      Issue a ticket
// @Description  Reserves a seat and sells the ticket to the customer, creating the customer on first purchase
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        input  body      request.IssueTicketRequest  true  "ticket details"
// @Success      201    {object}  response.Ticket
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /tickets [post]
func (h *TicketHandler) HandleIssueTicket(ctx *gin.Context) {
	var input request.IssueTicketRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ticket, err := h.svc.Issue(
		input.Customer.ID, input.Customer.Name, input.Customer.Age,
		input.MatchID, domain.SeatClass(input.Class), input.Seat,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMatchNotFound):
			response.RenderErr(ctx, response.ErrNotFound("match", "matchID", input.MatchID))
		case errors.Is(err, service.ErrSeatUnavailable):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("HandleIssueTicket -> h.svc.Issue -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, response.NewTicket(ticket))
}

// HandleValidateTicket godoc
// @Summary      Validate a ticket
// @Description  Checks a ticket in by code; attendance moves once per ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        input  body      request.ValidateTicketRequest  true  "ticket code"
// @Success      200    {object}  response.Ticket
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /tickets/validate [post]
func (h *TicketHandler) HandleValidateTicket(ctx *gin.Context) {
	var input request.ValidateTicketRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ticket, err := h.svc.Validate(input.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTicketNotFound):
			response.RenderErr(ctx, response.ErrNotFound("ticket", "code", input.Code))
		case errors.Is(err, service.ErrAlreadyValidated):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("HandleValidateTicket -> h.svc.Validate -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.NewTicket(ticket))
}

// HandleGetCustomerTickets godoc
// @Summary      Get a customer's tickets
// @Description  Lists the tickets a customer owns, in purchase order
// @Tags         tickets
// @Produce      json
// @Param        customerID  path      int  true  "customer ID"
// @Success      200  {array}   response.Ticket
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /customers/{customerID}/tickets [get]
func (h *TicketHandler) HandleGetCustomerTickets(ctx *gin.Context) {
	customerID, err := strconv.Atoi(ctx.Param("customerID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid customer ID: %v", err)))
		return
	}

	tickets, err := h.svc.CustomerTickets(customerID)
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("customer", "customerID", customerID))
			return
		}

		err = fmt.Errorf("HandleGetCustomerTickets -> h.svc.CustomerTickets -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewTickets(tickets))
}
