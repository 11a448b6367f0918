package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"printshop/cmd"
	printhttp "printshop/internal/adapters/in/http"
	"printshop/internal/adapters/out/postgres/customerrepo"
	"printshop/internal/adapters/out/postgres/orderrepo"
	"printshop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	jobManager := jobs.NewJobManager(app.CreateRefreshTrackingCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		OriginZip:       goDotEnvVariable("ORIGIN_ZIP"),
		ZipDataPath:     goDotEnvVariable("ZIP_DATA_PATH"),
		StripeSecretKey: goDotEnvVariable("STRIPE_SECRET_KEY"),
		UPSClientID:     goDotEnvVariable("UPS_CLIENT_ID"),
		UPSClientSecret: goDotEnvVariable("UPS_CLIENT_SECRET"),
		UPSShipperNum:   goDotEnvVariable("UPS_SHIPPER_NUMBER"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&customerrepo.CustomerDTO{}, &orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := printhttp.NewServer(
		app.CreateCheckoutCommandHandler(),
		app.CreateCreateLabelCommandHandler(),
		app.CreateGetQuoteQueryHandler(),
		app.CreateGetPackingPlanQueryHandler(),
		app.CreateGetMaterialsQueryHandler(),
		app.CreateGetUnshippedOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
