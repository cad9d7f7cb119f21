package routes

import (
	"context"
	"log"
	"strconv"

	_ "inhouse/docs" // generated by swag init
	"inhouse/internal/adapter/http/handlers"
	"inhouse/internal/app"
	"inhouse/internal/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run(cfg config.Config) {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ddb, err := app.Connect(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to connect to DynamoDB: %v", err)
	}
	getRoutes(router, app.Build(ddb, cfg))

	err = router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(r *gin.Engine, uc app.UseCases) {
	projectHandler := handlers.NewProjectHandler(uc.Projects, uc.Steps)
	bookingHandler := handlers.NewBookingHandler(uc.Bookings)
	dayHandler := handlers.NewDayHandler(uc.Days)
	invoiceHandler := handlers.NewInvoiceHandler(uc.Invoices)
	timerHandler := handlers.NewTimerHandler(uc.Timers)
	starHandler := handlers.NewStarHandler(uc.Stars)
	profileHandler := handlers.NewProfileHandler(uc.Profiles)
	customerHandler := handlers.NewCustomerHandler(uc.Customers)

	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addProjectRoutes(v1, projectHandler)
	addTimesheetRoutes(v1, bookingHandler, dayHandler, invoiceHandler)
	addTimerRoutes(v1, timerHandler, starHandler)
	addPartyRoutes(v1, profileHandler, customerHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
