package main

import (
	"context"
	"fmt"
	"os"

	"ordertracking/cmd"
	"ordertracking/internal/core/application/usecases/queries"
	"ordertracking/internal/core/domain/model/order"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	ctx := context.Background()
	countByStatusHandler := app.CreateCountOrdersByStatusQueryHandler()

	var filtered int64
	for _, status := range order.AllStatuses() {
		query, err := queries.NewCountOrdersByStatusQuery(status)
		if err != nil {
			log.Fatalf("Error building count query for status %q: %v", status, err)
		}

		count, err := countByStatusHandler.Handle(ctx, query)
		if err != nil {
			log.Fatalf("Error counting orders with status %q: %v", status, err)
		}

		fmt.Printf("%s\n", query.SQL())
		fmt.Printf("orders with status %q: %d\n\n", status, count)
		filtered += count
	}

	totalQuery := queries.NewCountOrdersQuery()
	total, err := app.CreateCountOrdersQueryHandler().Handle(ctx, totalQuery)
	if err != nil {
		log.Fatalf("Error counting orders: %v", err)
	}

	fmt.Printf("%s\n", totalQuery.SQL())
	fmt.Printf("orders with any recorded status: %d\n", filtered)
	fmt.Printf("orders total: %d\n", total)
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
