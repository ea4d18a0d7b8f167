package routes

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jonmaxmore/Botanical-Audit-Framework-sub007/docs" // swag-generated
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/adapter/http/handlers"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/adapter/persistence/repository"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/infrastructure/database"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/infrastructure/notifications"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/infrastructure/payments"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/metrics"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase/interfaces"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", metrics.Handler())

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	applicationRepo := repository.NewApplicationDynamoRepository(ddb)
	certificateRepo := repository.NewCertificateDynamoRepository(ddb)
	inspectionRepo := repository.NewInspectionDynamoRepository(ddb)
	calendarRepo := repository.NewCalendarEventDynamoRepository(ddb)
	workItemRepo := repository.NewWorkItemDynamoRepository(ddb)
	sequenceRepo := repository.NewSequenceDynamoRepository(ddb)

	notifier := notifications.NewLogNotifier()

	var paymentProvider interfaces.IPaymentReferenceProvider
	mpProvider, err := payments.NewMercadoPagoProvider(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago provider not configured: %v", err)
	} else {
		paymentProvider = mpProvider
	}

	applicationUseCase := usecase.NewApplicationUseCase(applicationRepo, sequenceRepo, paymentProvider, notifier)
	inspectionUseCase := usecase.NewInspectionUseCase(inspectionRepo, applicationRepo, notifier)
	region := os.Getenv("CERTIFICATE_REGION")
	if region == "" {
		region = "TH"
	}
	certificateUseCase := usecase.NewCertificateUseCase(certificateRepo, applicationRepo, sequenceRepo, notifier, region)
	calendarUseCase := usecase.NewCalendarUseCase(calendarRepo)
	workItemUseCase := usecase.NewWorkItemUseCase(workItemRepo)

	applicationHandler := handlers.NewApplicationHandler(applicationUseCase)
	inspectionHandler := handlers.NewInspectionHandler(inspectionUseCase)
	certificateHandler := handlers.NewCertificateHandler(certificateUseCase)
	calendarHandler := handlers.NewCalendarHandler(calendarUseCase)
	workItemHandler := handlers.NewWorkItemHandler(workItemUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCertificationRoutes(v1, applicationHandler, inspectionHandler, certificateHandler)
	addSchedulingRoutes(v1, calendarHandler, workItemHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(metrics.GinMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
