package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"matchday/internal/api/handler/v1/request"
	"matchday/internal/api/handler/v1/response"
	"matchday/internal/domain"
	"matchday/internal/service"
)

type PurchaseService interface {
	Purchase(code, restaurantName string, productNames []string) (*domain.Invoice, []service.RejectedProduct, error)
	StadiumRestaurants(stadiumID string) (*domain.Stadium, error)
}

type PurchaseHandler struct {
	svc PurchaseService
}

func NewPurchaseHandler(svc PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{
		svc: svc,
	}
}

// HandleCreatePurchase godoc
// @Summary      Purchase restaurant products
// @Description  Invoices a basket of products against a VIP ticket at one of the stadium's restaurants
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        input  body      request.PurchaseRequest  true  "purchase details"
// @Success      201    {object}  response.Purchase
// @Failure      400    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /purchases [post]
func (h *PurchaseHandler) HandleCreatePurchase(ctx *gin.Context) {
	var input request.PurchaseRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	invoice, rejected, err := h.svc.Purchase(input.Code, input.Restaurant, input.Products)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTicketNotFound):
			response.RenderErr(ctx, response.ErrNotFound("ticket", "code", input.Code))
		case errors.Is(err, service.ErrNotEligible):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		case errors.Is(err, service.ErrRestaurantNotFound):
			response.RenderErr(ctx, response.ErrNotFound("restaurant", "name", input.Restaurant))
		case errors.Is(err, service.ErrEmptyBasket):
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("%w: %v rejected", err, len(rejected))))
		default:
			err = fmt.Errorf("HandleCreatePurchase -> h.svc.Purchase -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, response.NewPurchase(invoice, rejected))
}
