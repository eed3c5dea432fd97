package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/movilfix/repairshop-api/internal/audit"
	"github.com/movilfix/repairshop-api/internal/config"
	"github.com/movilfix/repairshop-api/internal/db"
	"github.com/movilfix/repairshop-api/internal/handlers"
	infraRepo "github.com/movilfix/repairshop-api/internal/infra/repository"
	"github.com/movilfix/repairshop-api/internal/middleware"
	ucRepair "github.com/movilfix/repairshop-api/internal/usecase/repair"
)

func RegisterRoutes(r *gin.Engine, database *mongo.Database, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	customersColl := database.Collection(db.CustomersCollection)
	partsColl := database.Collection(db.PartsCollection)
	repairsColl := database.Collection(db.RepairsCollection)
	usersColl := database.Collection(db.UsersCollection)
	auditColl := database.Collection(db.AuditLogsCollection)

	customerRepo := infraRepo.NewCustomerMongoRepository(customersColl)
	partRepo := infraRepo.NewPartMongoRepository(partsColl)
	repairRepo := infraRepo.NewRepairMongoRepository(repairsColl, customersColl, usersColl, partsColl)
	userRepo := infraRepo.NewUserMongoRepository(usersColl)
	auditRepo := infraRepo.NewAuditMongoRepository(auditColl)

	auditLogger := audit.New(auditRepo)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES (REPAIRS)
	// ======================================================
	repairResolver := ucRepair.NewResolver(repairRepo)

	createRepairUC := ucRepair.NewCreateRepair(repairRepo, auditDispatcher)
	setStatusUC := ucRepair.NewSetRepairStatus(repairRepo, auditDispatcher)
	setPartsUC := ucRepair.NewSetRepairParts(repairRepo, auditDispatcher)
	setDiagnosisUC := ucRepair.NewSetRepairDiagnosis(repairRepo, auditDispatcher)
	getRepairUC := ucRepair.NewGetRepair(repairRepo, repairResolver)
	listRepairsUC := ucRepair.NewListRepairs(repairRepo, repairResolver)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userRepo, cfg)
	customerHandler := handlers.NewCustomerHandler(customerRepo, repairResolver, auditDispatcher)
	partHandler := handlers.NewPartHandler(partRepo, auditDispatcher)

	repairHandler := handlers.NewRepairHandler(
		createRepairUC,
		setStatusUC,
		setPartsUC,
		setDiagnosisUC,
		getRepairUC,
		listRepairsUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(auditRepo)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// CUSTOMERS
			// ------------------------------
			secured.POST("/customers", customerHandler.Create)
			secured.GET("/customers", customerHandler.List)
			secured.GET("/customers/search", customerHandler.Search)
			secured.GET("/customers/:id", customerHandler.Get)
			secured.PUT("/customers/:id", customerHandler.Update)
			secured.DELETE("/customers/:id", customerHandler.Delete)

			// ------------------------------
			// PARTS
			// ------------------------------
			secured.POST("/parts", partHandler.Create)
			secured.GET("/parts", partHandler.List)
			secured.GET("/parts/search", partHandler.Search)
			secured.GET("/parts/low-stock", partHandler.LowStock)
			secured.GET("/parts/:id", partHandler.Get)
			secured.PUT("/parts/:id", partHandler.Update)
			secured.DELETE("/parts/:id", partHandler.Delete)
			secured.PUT("/parts/:id/stock", partHandler.AdjustStock)

			// ------------------------------
			// REPAIRS
			// ------------------------------
			secured.POST("/repairs", repairHandler.Create)
			secured.GET("/repairs", repairHandler.List)
			secured.GET("/repairs/:id", repairHandler.Get)
			secured.PUT("/repairs/:id/status", repairHandler.SetStatus)
			secured.PUT("/repairs/:id/parts", repairHandler.SetParts)
			secured.PUT("/repairs/:id/diagnosis", repairHandler.SetDiagnosis)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
