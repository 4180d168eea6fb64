package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"matchday/internal/service"
)

type StatsService interface {
	AttendanceTable() []service.MatchAttendance
	AverageVIPSpend() float64
	TopCustomers(n int) []service.CustomerCount
	TopProducts(n int) []service.ProductSales
	TopRestaurants(n int) []service.RestaurantSales
}

type StatsHandler struct {
	svc StatsService
}

func NewStatsHandler(svc StatsService) *StatsHandler {
	return &StatsHandler{
		svc: svc,
	}
}

// HandleGetAttendance godoc
// @Summary      Attendance table
// @Description  Tickets sold vs. check-ins per match, sorted by tickets sold
// @Tags         stats
// @Produce      json
// @Success      200  {array}  service.MatchAttendance
// @Router       /stats/attendance [get]
func (h *StatsHandler) HandleGetAttendance(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.AttendanceTable())
}

// HandleGetVIPSpending godoc
// @Summary      Average VIP spend
// @Description  Mean total spend (ticket plus invoices) across VIP tickets
// @Tags         stats
// @Produce      json
// @Success      200  {object}  map[string]float64
// @Router       /stats/vip-spending [get]
func (h *StatsHandler) HandleGetVIPSpending(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"average_vip_spend": h.svc.AverageVIPSpend()})
}

// HandleGetTopCustomers godoc
// @Summary      Top customers
// @Description  The three customers who bought the most tickets
// @Tags         stats
// @Produce      json
// @Success      200  {array}  service.CustomerCount
// @Router       /stats/top-customers [get]
func (h *StatsHandler) HandleGetTopCustomers(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.TopCustomers(3))
}

// HandleGetTopProducts godoc
// @Summary      Top products
// @Description  The five products with the most units sold
// @Tags         stats
// @Produce      json
// @Success      200  {array}  service.ProductSales
// @Router       /stats/top-products [get]
func (h *StatsHandler) HandleGetTopProducts(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.TopProducts(5))
}

// HandleGetTopRestaurants godoc
// @Summary      Top restaurants
// @Description  The five restaurants with the highest invoiced revenue
// @Tags         stats
// @Produce      json
// @Success      200  {array}  service.RestaurantSales
// @Router       /stats/top-restaurants [get]
func (h *StatsHandler) HandleGetTopRestaurants(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.TopRestaurants(5))
}
