package main

import (
	"context"
	"fmt"

	appconfig "github.com/GeorgeBeta/rkt-regulador2-infra/config"
	"github.com/GeorgeBeta/rkt-regulador2-infra/handlers"
	"github.com/GeorgeBeta/rkt-regulador2-infra/health"
	"github.com/GeorgeBeta/rkt-regulador2-infra/logging"
	"github.com/GeorgeBeta/rkt-regulador2-infra/services"
	"github.com/GeorgeBeta/rkt-regulador2-infra/store"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// App holds everything built once per process lifetime. Lambda reuses the
// process across invocations, so the DynamoDB client and its connection pool
// live here rather than being rebuilt per request.
type App struct {
	DynamoDB *dynamodb.Client

	Config *appconfig.Config
	Logger logging.Logger

	FilePdfStore   store.FilePdfStore
	FilePdfService services.FilePdfService
	Handler        *handlers.HTTPHandler
}

func SetupApp(ctx context.Context) (*App, error) {
	cfg, err := appconfig.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	appLogger := logging.NewSlogLogger(logging.CreateAppLogger(cfg.Env, cfg.LogLevel))

	db, err := initDynamo(ctx, cfg)
	if err != nil {
		return nil, err
	}

	filePdfStore := store.NewDynamoDbFilePdfStoreImpl(db, cfg.TableName, cfg.IndexName)
	filePdfService := services.NewFilePdfServiceImpl(filePdfStore)
	handler := handlers.NewHTTPHandler(filePdfService, appLogger, cfg)

	return &App{
		DynamoDB: db,

		Config: cfg,
		Logger: appLogger,

		FilePdfStore:   filePdfStore,
		FilePdfService: filePdfService,
		Handler:        handler,
	}, nil
}

// Ready probes every external dependency once. main calls it before the
// process starts serving, so a misconfigured table fails the cold start
// instead of the first request.
func (a *App) Ready(ctx context.Context) error {
	checks := []health.ReadinessCheck{
		a.FilePdfStore,
	}

	for _, c := range checks {
		if err := c.IsReady(ctx); err != nil {
			return fmt.Errorf("%s not ready: %w", c.Name(), err)
		}
	}

	return nil
}

func initDynamo(ctx context.Context, cfg *appconfig.Config) (*dynamodb.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.AWSRegion != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.AWSRegion))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg), nil
}
