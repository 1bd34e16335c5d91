package server

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/Depado/ginprom"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/staybluo/app/api/routes"
	"github.com/staybluo/pkg/config"
	"github.com/staybluo/pkg/database"
	"github.com/staybluo/pkg/domains/auth"
	"github.com/staybluo/pkg/domains/hotel"
	"github.com/staybluo/pkg/domains/inquiry"
	"github.com/staybluo/pkg/domains/notify"
	"github.com/staybluo/pkg/middleware"
	"github.com/staybluo/pkg/utils"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func LaunchHttpServer(cfg *config.Config) {
	log.Println("Starting HTTP Server...")
	gin.SetMode(gin.DebugMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		utils.RegisterValidations(v)
	}

	app := gin.New()
	app.Use(gin.LoggerWithFormatter(func(log gin.LogFormatterParams) string {
		return fmt.Sprintf("[%s] - %s \"%s %s %s %d %s\"\n",
			log.TimeStamp.Format("2006-01-02 15:04:05"),
			log.ClientIP,
			log.Method,
			log.Path,
			log.Request.Proto,
			log.StatusCode,
			log.Latency,
		)
	}))
	app.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	app.Use(gin.Recovery())
	app.Use(otelgin.Middleware(cfg.App.Name))
	app.Use(middleware.ClaimIp())
	app.Use(cors.New(cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With", "Origin", "Accept"},
		AllowOrigins:     []string{"*"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	p := ginprom.New(
		ginprom.Engine(app),
		ginprom.Subsystem("gin"),
		ginprom.Path("/metrics"),
		ginprom.Ignore("/swagger/*any"),
	)
	app.Use(p.Instrument())

	db := database.DBClient()

	// Notification channels: SMTP for mail, Twilio or the operator WhatsApp
	// session for the phone leg.
	whatsChannel := notify.NewWhatsAppChannel(cfg.WhatsApp)
	var text notify.TextSender = notify.NewTwilioSender(cfg.SMS)
	if cfg.SMS.Provider == "whatsapp" {
		text = whatsChannel
	}
	dispatcher := notify.NewDispatcher(notify.NewSMTPSender(cfg.Mail), text, notify.NewRecorder())

	api := app.Group("/api")

	// Auth Routes
	auth_repo := auth.NewRepo(db)
	auth_service := auth.NewService(auth_repo, dispatcher, cfg.Auth.Secret)
	routes.AuthRoutes(api.Group("/auth"), auth_service, cfg.Auth.Secret)

	// Hotel Routes
	routes.HotelRoutes(api.Group("/hotels"), hotel.NewCatalog())

	// Operator channel management
	routes.ChannelRoutes(api.Group("/channel"), whatsChannel, cfg.Auth.AdminKey)

	// Inquiry submission, posted to by the front-end at the engine root
	inquiry_service := inquiry.NewService(dispatcher, cfg.Inquiry.To)
	routes.InquiryRoutes(app, inquiry_service)

	fmt.Println("Server is running on port " + cfg.App.Port)
	if err := app.Run(net.JoinHostPort(cfg.App.Host, cfg.App.Port)); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
