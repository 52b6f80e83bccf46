package FiberConfig

import (
	"fmt"
	"log"
	"os"

	"Eventy/Controllers"
	"Eventy/Models"
	"Eventy/Workflow"
	"Eventy/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize handlers
	authController := Controllers.NewAuthController(db)
	requestController := Controllers.NewRequestController(db)
	taskController := Controllers.NewTaskController(db)
	resourceController := Controllers.NewResourceController(db)
	budgetController := Controllers.NewBudgetController(db)
	reportController := Controllers.NewReportController(db)

	// API group
	api := app.Group("/api")

	// Session routes
	api.Post("/register", authController.Register)
	api.Post("/login", authController.Login)
	api.Post("/logout", authController.Logout)
	api.Get("/user", middleware.Verify(), authController.CurrentUser)

	// Client request routes - list routes go BEFORE the ID route to avoid conflicts
	requests := api.Group("/requests", middleware.Verify())
	requests.Get("/assigned", requestController.ListAssigned)
	requests.Get("/created", requestController.ListCreated)
	requests.Get("/pending", requestController.PendingUpdates)
	requests.Post("/", middleware.RequireRole(Workflow.RoleCSO, Workflow.RoleSCSO), requestController.CreateRequest)
	requests.Get("/:id", requestController.GetRequest)
	requests.Put("/:id", requestController.UpdateRequest)
	requests.Post("/:id/tasks", middleware.RequireRole(Workflow.RoleSM, Workflow.RolePM), taskController.AddTask)

	// Planning and task dashboards
	api.Get("/planning", middleware.Verify(),
		middleware.RequireRole(Workflow.RoleSM, Workflow.RolePM), taskController.Planning)
	api.Get("/tasks", middleware.Verify(),
		middleware.RequireRole(Workflow.RoleSM, Workflow.RolePM, Workflow.RoleSMTM, Workflow.RolePMTM),
		taskController.ListTasks)

	// Resource request routes
	resources := api.Group("/resources", middleware.Verify())
	resources.Post("/", middleware.RequireRole(Workflow.RoleSM, Workflow.RolePM), resourceController.CreateResource)
	resources.Get("/", middleware.RequireRole(Workflow.RoleSM, Workflow.RolePM, Workflow.RoleHR), resourceController.ListResources)
	resources.Put("/:id", resourceController.UpdateResource)

	// Budget request routes
	budgets := api.Group("/budgets", middleware.Verify())
	budgets.Post("/", middleware.RequireRole(Workflow.RoleSM, Workflow.RolePM), budgetController.CreateBudget)
	budgets.Get("/", middleware.RequireRole(Workflow.RoleSM, Workflow.RolePM, Workflow.RoleFM), budgetController.ListBudgets)
	budgets.Put("/:id", budgetController.UpdateBudget)

	// Report routes
	api.Get("/reports/requests", middleware.Verify(),
		middleware.RequireRole(Workflow.RoleSCSO, Workflow.RoleFM, Workflow.RoleAM),
		reportController.ExportRequests)
}

func FiberConfig() {
	fmt.Println("Server Up...")
	app := fiber.New()
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true, // Important for cookies
		MaxAge:           300,
	}))

	SetupRoutes(app, Models.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Fatal(app.Listen(":" + port))
}
