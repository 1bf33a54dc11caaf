package router

import (
	"time"

	"monedero/config"
	"monedero/internal/handler"
	"monedero/internal/middleware"
	"monedero/internal/repository"
	"monedero/internal/service"
	"monedero/pkg/cloudinary"
	"monedero/pkg/phone"
	"monedero/pkg/sms"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client, sender sms.Sender, log *logrus.Logger) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewRateLimiter(100, time.Minute)))

	// Repositories
	clientRepo := repository.NewClientRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	companyUserRepo := repository.NewCompanyUserRepository(db)
	configRepo := repository.NewPointsConfigurationRepository(db)
	mappingRepo := repository.NewCompanyClientMappingRepository(db)
	pointsRepo := repository.NewPointsRepository(db)
	promotionRepo := repository.NewPromotionConfigurationRepository(db)

	validator := phone.NewValidator(cfg.Phone.DefaultRegion)

	// Services
	pointsSvc := service.NewPointsService(db, clientRepo, mappingRepo, pointsRepo, configRepo, validator, log)
	promotionSvc := service.NewPromotionService(promotionRepo, mappingRepo, clientRepo, log)
	clientSvc := service.NewClientService(db, clientRepo, mappingRepo, validator, log)
	companySvc := service.NewCompanyService(db, companyRepo, companyUserRepo, configRepo, promotionRepo, clientRepo, cloud, log)
	configSvc := service.NewPointsConfigurationService(configRepo, log)
	notificationSvc := service.NewNotificationService(companyRepo, clientRepo, mappingRepo, sender, log)
	authSvc := service.NewAuthService(cfg, companyUserRepo, log)

	// Handlers
	pointsHandler := handler.NewPointsHandler(pointsSvc)
	promotionHandler := handler.NewPromotionHandler(promotionSvc)
	clientHandler := handler.NewClientHandler(clientSvc)
	companyHandler := handler.NewCompanyHandler(companySvc)
	configHandler := handler.NewPointsConfigurationHandler(configSvc)
	notificationHandler := handler.NewNotificationHandler(notificationSvc)
	authHandler := handler.NewAuthHandler(authSvc)

	authMw := middleware.AuthRequired(&cfg.JWT)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/activate", authHandler.Activate)
		}

		// Point-of-sale and mobile app endpoints
		api.POST("/points", pointsHandler.Award)
		api.GET("/promotions/:companyId/available/:phone", promotionHandler.GetAvailable)
		api.POST("/clients/register", clientHandler.Register)
		api.POST("/companies/register", companyHandler.Register)
		api.GET("/companies/:companyId", companyHandler.GetByID)
		api.GET("/points_in_company/:phone", companyHandler.GetPointsInCompany)

		// Merchant management
		managed := api.Group("")
		managed.Use(authMw)
		{
			managed.POST("/promotions", promotionHandler.Insert)
			managed.GET("/promotions/:companyId", promotionHandler.GetByCompanyID)
			managed.DELETE("/promotions/:id", promotionHandler.Delete)
			managed.GET("/points_configuration/:companyId", configHandler.Get)
			managed.PUT("/points_configuration/:companyId", configHandler.Update)
			managed.GET("/clients/:companyId", clientHandler.GetByCompanyID)
			managed.GET("/clients/:companyId/:phone", clientHandler.GetByCompanyIDPhone)
			managed.POST("/companies/:companyId/logo", companyHandler.UploadLogo)
			managed.POST("/notifications/app_ad", notificationHandler.SendAppAd)
		}
	}

	return r
}
