package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"dispatch/cmd"
	httpserver "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/geo"
	"dispatch/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	config := getConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	estimator, err := geo.NewClient(config.GeoServiceURL, config.GeoAPIKey, nil)
	if err != nil {
		log.Fatalf("Failed to create distance client: %v", err)
	}

	root, err := cmd.NewCompositionRoot(config, estimator)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}

	jobManager := jobs.NewJobManager(
		root.CreateGetIssuesQueryHandler(),
		root.CreateGetIncompleteOrdersQueryHandler(),
		config.Settings,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, config)
}

func getConfig() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, using process environment: %v", err)
	}

	config := cmd.Config{
		HTTPPort:      os.Getenv("HTTP_PORT"),
		GeoServiceURL: os.Getenv("GEO_SERVICE_URL"),
		GeoAPIKey:     os.Getenv("GEO_API_KEY"),
		Settings:      cmd.SettingsFromEnv(os.Getenv),
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	return config
}

func startWebServer(root *cmd.CompositionRoot, config cmd.Config) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpserver.NewServer(httpserver.ServerParams{
		CreateOrderHandler:            root.CreateCreateOrderCommandHandler(),
		CorrectOrderHandler:           root.CreateCorrectOrderCommandHandler(),
		RemoveNoiseTripsHandler:       root.CreateRemoveNoiseTripOrdersCommandHandler(),
		RemoveMissingTripsHandler:     root.CreateRemoveMissingTripNumberOrdersCommandHandler(),
		GenerateInvoiceHandler:        root.CreateGenerateInvoiceCommandHandler(),
		ReviewInvoiceHandler:          root.CreateReviewInvoiceCommandHandler(),
		FinalizeInvoiceHandler:        root.CreateFinalizeInvoiceCommandHandler(),
		UpdateInvoiceDetailsHandler:   root.CreateUpdateInvoiceDetailsCommandHandler(),
		RecalculateInvoiceItemHandler: root.CreateRecalculateInvoiceItemCommandHandler(),
		GetIncompleteOrdersHandler:    root.CreateGetIncompleteOrdersQueryHandler(),
		GetInvoiceHandler:             root.CreateGetInvoiceQueryHandler(),
		GetIssuesHandler:              root.CreateGetIssuesQueryHandler(),
		Settings:                      config.Settings,
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}
