package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go-cozypos/internal/csvsource"
	"go-cozypos/internal/handler"
	"go-cozypos/internal/model"
	"go-cozypos/internal/repository"
	"go-cozypos/internal/service"
	"go-cozypos/internal/ws"
	"go-cozypos/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.Project{}, &model.Item{}, &model.Transaction{}, &model.ItemTransaction{})

	// 3. WebSocket hub for ingestion progress events
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	projectRepo := repository.NewProjectRepo(db)
	itemRepo := repository.NewItemRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	itemTxRepo := repository.NewItemTransactionRepo(db)

	ingestService := service.NewIngestService(projectRepo, itemRepo, txRepo, itemTxRepo, wsHub)
	reportService := service.NewReportService(projectRepo, itemRepo, txRepo, itemTxRepo)

	strict404 := os.Getenv("REPORT_STRICT_404") == "true"
	projectHandler := handler.NewProjectHandler(projectRepo, reportService, strict404)
	catalogHandler := handler.NewCatalogHandler(projectRepo, itemRepo, txRepo, itemTxRepo)

	// 5. Boot-time CSV import
	if dir := os.Getenv("CSV_DIR"); dir != "" {
		if err := populateFromDir(ingestService, dir); err != nil {
			log.Printf("Warning: CSV import failed: %v", err)
		}
	}

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "CozyPOS Records v1.0",
	})

	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	app.Get("/items", catalogHandler.GetItems)
	app.Get("/transactions", catalogHandler.GetTransactions)
	app.Get("/itemtransactions", catalogHandler.GetItemTransactions)
	app.Get("/projects", catalogHandler.GetProjects)
	app.Get("/projects/:id", projectHandler.GetProject)
	app.Get("/projects/:id/transactions", projectHandler.GetProjectReport)
	app.Get("/populate", projectHandler.Populate)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8081"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// populateFromDir loads the denormalized CSV snapshot and hands it to the
// ingestion engine. The project descriptor is literal, taken from env, not
// streamed.
func populateFromDir(ingest service.IngestService, dir string) error {
	items, err := csvsource.ReadFile(filepath.Join(dir, "items.csv"))
	if err != nil {
		return err
	}
	transactions, err := csvsource.ReadFile(filepath.Join(dir, "transactions.csv"))
	if err != nil {
		return err
	}
	itemTransactions, err := csvsource.ReadFile(filepath.Join(dir, "itemtransactions.csv"))
	if err != nil {
		return err
	}

	desc := service.ProjectDescriptor{
		Name: os.Getenv("PROJECT_NAME"),
		Date: model.NewDate(2020, time.February, 23),
	}
	if desc.Name == "" {
		desc.Name = "CF14"
	}
	if raw := os.Getenv("PROJECT_DATE"); raw != "" {
		parsed, err := model.ParseDate(raw)
		if err != nil {
			return fmt.Errorf("parse PROJECT_DATE: %w", err)
		}
		desc.Date = parsed
	}

	projectID, err := ingest.IngestAll(desc, items, transactions, itemTransactions)
	if err != nil {
		return err
	}

	log.Printf("CSV import complete: project %d (%d items, %d transactions, %d item transactions)",
		projectID, len(items), len(transactions), len(itemTransactions))
	return nil
}
