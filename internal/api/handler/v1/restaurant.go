package v1

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"matchday/internal/api/handler/v1/response"
	"matchday/internal/domain"
	"matchday/internal/service"
)

type RestaurantHandler struct {
	svc PurchaseService
}

func NewRestaurantHandler(svc PurchaseService) *RestaurantHandler {
	return &RestaurantHandler{
		svc: svc,
	}
}

// HandleGetRestaurants godoc
// @Summary      Get stadium restaurants
// @Description  Lists a stadium's restaurants and menus, with optional kind, name and price filters. Alcoholic items are hidden when age is under 18.
// @Tags         restaurants
// @Produce      json
// @Param        stadiumID  path      string  true   "stadium ID"
// @Param        kind       query     string  false  "product kind"
// @Param        name       query     string  false  "product name substring"
// @Param        min_price  query     number  false  "exclusive lower price bound"
// @Param        max_price  query     number  false  "exclusive upper price bound"
// @Param        age        query     int     false  "customer age (default 18)"
// @Success      200  {array}   response.Restaurant
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /restaurants/{stadiumID} [get]
func (h *RestaurantHandler) HandleGetRestaurants(ctx *gin.Context) {
	stadiumID := ctx.Param("stadiumID")

	age, err := strconv.Atoi(ctx.DefaultQuery("age", "18"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid age: %v", err)))
		return
	}

	stadium, err := h.svc.StadiumRestaurants(stadiumID)
	if err != nil {
		if errors.Is(err, service.ErrStadiumNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stadium", "stadiumID", stadiumID))
			return
		}

		err = fmt.Errorf("HandleGetRestaurants -> h.svc.StadiumRestaurants -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	out := make([]response.Restaurant, 0, len(stadium.Restaurants))
	for _, r := range stadium.Restaurants {
		products, err := filterMenu(ctx, r, age)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		out = append(out, response.NewRestaurant(r.Name, products))
	}

	ctx.JSON(http.StatusOK, out)
}

// filterMenu applies the first matching query filter: kind, then name
// search, then price range. No filter means the full age-appropriate menu.
func filterMenu(ctx *gin.Context, r *domain.Restaurant, age int) ([]*domain.Product, error) {
	if kind := ctx.Query("kind"); kind != "" {
		return r.ProductsByKind(domain.ProductKind(kind), age), nil
	}

	rawMin, hasMin := ctx.GetQuery("min_price")
	rawMax, hasMax := ctx.GetQuery("max_price")
	if hasMin || hasMax {
		minPrice, maxPrice := 0.0, math.MaxFloat64
		var err error
		if hasMin {
			if minPrice, err = strconv.ParseFloat(rawMin, 64); err != nil {
				return nil, fmt.Errorf("invalid min_price: %v", err)
			}
		}
		if hasMax {
			if maxPrice, err = strconv.ParseFloat(rawMax, 64); err != nil {
				return nil, fmt.Errorf("invalid max_price: %v", err)
			}
		}
		return r.ProductsByPriceRange(minPrice, maxPrice, age), nil
	}

	// SearchProducts with an empty needle matches everything, so this
	// covers both the name filter and the unfiltered menu.
	return r.SearchProducts(ctx.Query("name"), age), nil
}
