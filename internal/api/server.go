package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	v1 "matchday/internal/api/handler/v1"
	"matchday/internal/api/middleware"
	"matchday/internal/config"
	"matchday/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, session *service.Session) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	matchHandler := s.initMatchHandler(session)
	ticketHandler := s.initTicketHandler(session)
	purchaseHandler, restaurantHandler := s.initPurchaseHandlers(session)
	statsHandler := s.initStatsHandler(session)
	sessionHandler := v1.NewSessionHandler(session)
	s.MountHandlers(matchHandler, ticketHandler, purchaseHandler, restaurantHandler, statsHandler, sessionHandler)

	return s
}

func (s *Server) initMatchHandler(session *service.Session) *v1.MatchHandler {
	svc := service.NewTicketService(session)
	handler := v1.NewMatchHandler(svc)

	return handler
}

func (s *Server) initTicketHandler(session *service.Session) *v1.TicketHandler {
	svc := service.NewTicketService(session)
	handler := v1.NewTicketHandler(svc)

	return handler
}

func (s *Server) initPurchaseHandlers(session *service.Session) (*v1.PurchaseHandler, *v1.RestaurantHandler) {
	svc := service.NewPurchaseService(session)

	return v1.NewPurchaseHandler(svc), v1.NewRestaurantHandler(svc)
}

func (s *Server) initStatsHandler(session *service.Session) *v1.StatsHandler {
	svc := service.NewStatsService(session)
	handler := v1.NewStatsHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	matchHandler *v1.MatchHandler,
	ticketHandler *v1.TicketHandler,
	purchaseHandler *v1.PurchaseHandler,
	restaurantHandler *v1.RestaurantHandler,
	statsHandler *v1.StatsHandler,
	sessionHandler *v1.SessionHandler,
) {
	const basePath = "/api/v1"

	root := s.Router.Group(basePath)
	{
		root.GET("/matches", matchHandler.HandleListMatches)
		root.GET("/matches/:matchID/seats", matchHandler.HandleGetSeats)

		root.POST("/tickets", ticketHandler.HandleIssueTicket)
		root.POST("/tickets/validate", ticketHandler.HandleValidateTicket)
		root.GET("/customers/:customerID/tickets", ticketHandler.HandleGetCustomerTickets)

		root.GET("/restaurants/:stadiumID", restaurantHandler.HandleGetRestaurants)
		root.POST("/purchases", purchaseHandler.HandleCreatePurchase)

		root.GET("/stats/attendance", statsHandler.HandleGetAttendance)
		root.GET("/stats/vip-spending", statsHandler.HandleGetVIPSpending)
		root.GET("/stats/top-customers", statsHandler.HandleGetTopCustomers)
		root.GET("/stats/top-products", statsHandler.HandleGetTopProducts)
		root.GET("/stats/top-restaurants", statsHandler.HandleGetTopRestaurants)

		root.POST("/session/save", sessionHandler.HandleSaveSession)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
}
