package main

import (
	"fmt"
	"os"

	"deliveries/cmd"
	_ "deliveries/docs"
	delivery_http "deliveries/internal/adapters/in/http"
	"deliveries/internal/adapters/out/postgres/deliveryrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echo_swagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//	@title			Deliveries API
//	@version		1.0
//	@description	Delivery lifecycle tracking service.

//	@securityDefinitions.basic	BasicAuth

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

// mustOpenDatabase connects to PostgreSQL and runs migrations. TranslateError
// is required so duplicate key violations surface as gorm.ErrDuplicatedKey.
func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&deliveryrepo.DeliveryDTO{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := delivery_http.NewServer(
		app.CreateCreateDeliveryCommandHandler(),
		app.CreateApproveDeliveryCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateCancelDeliveryCommandHandler(),
		app.CreateGetAllDeliveriesQueryHandler(),
		app.CreateGetDeliveryQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.GET("/swagger/*", echo_swagger.WrapHandler)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
