package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	app, err := SetupApp(ctx)
	if err != nil {
		log.Fatalf("failed to set up application: %v", err)
	}

	if err := app.Ready(ctx); err != nil {
		log.Fatalf("dependency check failed: %v", err)
	}

	app.Logger.Info("file pdf backend ready",
		"table", app.Config.TableName,
		"index", app.Config.IndexName,
	)

	lambda.Start(app.Handler.Handle)
}
