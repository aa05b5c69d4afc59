package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/clubtrack/club-api/docs"
	v1 "github.com/clubtrack/club-api/internal/api/handler/v1"
	"github.com/clubtrack/club-api/internal/api/middleware"
	"github.com/clubtrack/club-api/internal/config"
	"github.com/clubtrack/club-api/internal/repository"
	"github.com/clubtrack/club-api/internal/repository/dao"
	"github.com/clubtrack/club-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	personHandler := s.initPersonHandler(db)
	activityHandler := s.initActivityHandler(db)
	presenceHandler := s.initPresenceHandler(db)
	paymentHandler := s.initPaymentHandler(db)
	policyHandler := s.initPolicyHandler(db)
	reportHandler := s.initReportHandler(db)
	s.MountHandlers(personHandler, activityHandler, presenceHandler, paymentHandler, policyHandler, reportHandler)

	return s
}

func (s *Server) initPersonHandler(db *gorm.DB) *v1.PersonHandler {
	repo := repository.NewPersonRepository(dao.NewPersonDAO(db))
	svc := service.NewPersonService(repo)
	handler := v1.NewPersonHandler(svc)

	return handler
}

func (s *Server) initActivityHandler(db *gorm.DB) *v1.ActivityHandler {
	repo := repository.NewActivityRepository(dao.NewActivityDAO(db))
	policyRepo := repository.NewPolicyRepository(dao.NewPolicyDAO(db))
	svc := service.NewActivityService(repo, policyRepo)
	handler := v1.NewActivityHandler(svc)

	return handler
}

func (s *Server) initPresenceHandler(db *gorm.DB) *v1.PresenceHandler {
	presenceRepo := repository.NewPresenceRepository(dao.NewPresenceDAO(db))
	personRepo := repository.NewPersonRepository(dao.NewPersonDAO(db))
	activityRepo := repository.NewActivityRepository(dao.NewActivityDAO(db))
	svc := service.NewPresenceService(presenceRepo, personRepo, activityRepo)

	billing := service.NewBillingService(
		presenceRepo,
		repository.NewPaymentRepository(dao.NewPaymentDAO(db)),
		repository.NewPolicyRepository(dao.NewPolicyDAO(db)),
		activityRepo,
	)
	handler := v1.NewPresenceHandler(svc, billing)

	return handler
}

func (s *Server) initPaymentHandler(db *gorm.DB) *v1.PaymentHandler {
	svc := service.NewBillingService(
		repository.NewPresenceRepository(dao.NewPresenceDAO(db)),
		repository.NewPaymentRepository(dao.NewPaymentDAO(db)),
		repository.NewPolicyRepository(dao.NewPolicyDAO(db)),
		repository.NewActivityRepository(dao.NewActivityDAO(db)),
	)
	handler := v1.NewPaymentHandler(svc)

	return handler
}

func (s *Server) initPolicyHandler(db *gorm.DB) *v1.PolicyHandler {
	repo := repository.NewPolicyRepository(dao.NewPolicyDAO(db))
	svc := service.NewPolicyService(repo)
	handler := v1.NewPolicyHandler(svc)

	return handler
}

func (s *Server) initReportHandler(db *gorm.DB) *v1.ReportHandler {
	svc := service.NewReportService(
		repository.NewReportRepository(dao.NewReportDAO(db)),
		repository.NewPresenceRepository(dao.NewPresenceDAO(db)),
		repository.NewPolicyRepository(dao.NewPolicyDAO(db)),
		repository.NewPersonRepository(dao.NewPersonDAO(db)),
	)
	handler := v1.NewReportHandler(svc)

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
	personHandler *v1.PersonHandler,
	activityHandler *v1.ActivityHandler,
	presenceHandler *v1.PresenceHandler,
	paymentHandler *v1.PaymentHandler,
	policyHandler *v1.PolicyHandler,
	reportHandler *v1.ReportHandler,
) {
	const basePath = "/api/v1"

	api := s.Router.Group(basePath)
	{
		api.POST("/sponsor-groups", personHandler.HandleCreateSponsorGroup)
		api.GET("/sponsor-groups", personHandler.HandleListSponsorGroups)
		api.POST("/persons", personHandler.HandleCreatePerson)
		api.GET("/persons", personHandler.HandleListPersons)
		api.POST("/members", personHandler.HandleCreateMember)
		api.GET("/members", personHandler.HandleListMembers)

		api.POST("/activities", activityHandler.HandleCreateActivity)
		api.GET("/activities", activityHandler.HandleListActivities)
		api.GET("/activities/:activityID", activityHandler.HandleGetActivity)

		api.POST("/presences", presenceHandler.HandleCreatePresence)
		api.GET("/presences", presenceHandler.HandleListPresences)
		api.GET("/presences/:presenceID/balance", presenceHandler.HandleGetBalance)

		api.POST("/payments", paymentHandler.HandleCreatePayment)

		api.GET("/discount-policy", policyHandler.HandleGetPolicy)
		api.PUT("/discount-policy", policyHandler.HandleUpdatePolicy)

		api.GET("/reports/activities", reportHandler.HandleActivityReport)
		api.GET("/reports/members", reportHandler.HandleMemberReport)
		api.GET("/reports/members/guests", reportHandler.HandleMemberGuestsReport)
		api.GET("/reports/sponsor-groups", reportHandler.HandleSponsorGroupReport)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Club Activities API"
	docs.SwaggerInfo.Description = "Membership, attendance and billing API for club activities."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
