package main

import (
	"context"
	"flag"
	"os"

	"ordertracking/cmd"
	"ordertracking/internal/adapters/out/postgres/eventrepo"
	"ordertracking/internal/adapters/out/postgres/orderrepo"
	"ordertracking/internal/generator"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	count := flag.Int("count", generator.DefaultOrderCount, "number of orders to generate")
	flag.Parse()

	configs := getConfigs()

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &eventrepo.StatusEventDTO{}); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	gen := generator.NewGenerator(
		app.CreatePurgeOrdersCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateRecordStatusEventCommandHandler(),
	)

	if err = gen.Generate(context.Background(), *count); err != nil {
		log.Fatalf("Error generating sample data: %v", err)
	}

	log.Infof("Generated %d orders", *count)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}
