// Package bootstrap assembles the application from configuration: object
// store, record store, generation client and HTTP router.
package bootstrap

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"

	"careerpilot-backend/internal/applications"
	"careerpilot-backend/internal/generate"
	"careerpilot-backend/internal/llm"
	"careerpilot-backend/internal/llm/groq"
	"careerpilot-backend/internal/shared/config"
	"careerpilot-backend/internal/shared/server"
	"careerpilot-backend/internal/shared/storage/db"
	"careerpilot-backend/internal/shared/storage/object"
	"careerpilot-backend/internal/shared/storage/object/local"
	"careerpilot-backend/internal/shared/storage/object/s3"
	"careerpilot-backend/internal/shared/telemetry"
)

// App is the assembled application.
type App struct {
	Router *gin.Engine
	close  []func() error
}

// Close releases resources held by the app, last acquired first.
func (a *App) Close() error {
	var firstErr error
	for i := len(a.close) - 1; i >= 0; i-- {
		if err := a.close[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Build constructs the app from configuration.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	app := &App{}

	store, err := buildObjectStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	repo, err := buildRepo(ctx, cfg, app)
	if err != nil {
		return nil, err
	}

	client := buildLLMClient(cfg)

	genSvc := generate.NewService(client)
	genHandler := generate.NewHandler(genSvc)

	appSvc := applications.NewService(store, repo, genSvc, cfg.MaxExtractedTextChars, cfg.UploadsDebugDir)
	appHandler := applications.NewHandler(appSvc)

	app.Router = server.NewRouter(cfg, appHandler, genHandler)
	return app, nil
}

func buildObjectStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		store, err := s3.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.AWSAccessKeyID, cfg.AWSSecretKey)
		if err != nil {
			return nil, fmt.Errorf("init s3 store: %w", err)
		}
		return store, nil
	default:
		return local.New(cfg.LocalStoreDir), nil
	}
}

func buildRepo(ctx context.Context, cfg config.Config, app *App) (applications.Repo, error) {
	switch cfg.RecordStoreType {
	case "dynamo":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return applications.NewDynamoRepo(dynamodb.NewFromConfig(awsCfg), cfg.DynamoTable), nil
	case "postgres":
		database, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		app.close = append(app.close, database.Close)
		if err := db.RunMigrations(ctx, database); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		return applications.NewPGRepo(database), nil
	default:
		return applications.NewMemoryRepo(), nil
	}
}

func buildLLMClient(cfg config.Config) llm.Client {
	if cfg.GroqAPIKey == "" {
		telemetry.Warn("bootstrap.llm.unconfigured", map[string]any{
			"hint": "set GROQ_API_KEY to enable generation",
		})
		return llm.Unconfigured{}
	}
	client, err := groq.NewClient(cfg.GroqAPIKey, cfg.LLMModel)
	if err != nil {
		telemetry.Warn("bootstrap.llm.init_failed", map[string]any{"error": err.Error()})
		return llm.Unconfigured{}
	}
	return client
}
