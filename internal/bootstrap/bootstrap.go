// Package bootstrap wires configuration into a ready handler. Both binaries
// share it so the Lambda and the standalone server behave the same.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"bodyshop-chat/handler"
	"bodyshop-chat/internal/config"
	"bodyshop-chat/internal/integrations/anthropic"
	"bodyshop-chat/internal/integrations/bedrock"
	"bodyshop-chat/internal/integrations/paramstore"
	"bodyshop-chat/internal/metrics"
	"bodyshop-chat/internal/repository"
	"bodyshop-chat/internal/responder"
	"bodyshop-chat/internal/session"
	"bodyshop-chat/internal/usecase"
	"bodyshop-chat/pkg/logging"
)

// App is the wired service. Close releases the session backend.
type App struct {
	Handler *handler.Handler
	closers []func() error
}

func (a *App) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// New builds the service from cfg. AWS configuration is only loaded when a
// component needs it, so a local run with defaults touches no AWS API.
func New(ctx context.Context, cfg *config.Config, logger *logging.Logger, reg prometheus.Registerer) (*App, error) {
	app := &App{}
	chatMetrics := metrics.NewChatMetrics(reg)

	var awsCfg *aws.Config
	loadAWS := func() (aws.Config, error) {
		if awsCfg != nil {
			return *awsCfg, nil
		}
		c, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return aws.Config{}, fmt.Errorf("bootstrap: load AWS config: %w", err)
		}
		awsCfg = &c
		return c, nil
	}

	sessions, closeSessions, err := newSessionStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if closeSessions != nil {
		app.closers = append(app.closers, closeSessions)
	}

	opts := []usecase.ChatOption{
		usecase.WithLogger(logger),
		usecase.WithMetrics(chatMetrics),
	}

	if cfg.LLMConfigured() {
		llm, err := newLLM(cfg, loadAWS)
		if err != nil {
			return nil, err
		}
		opts = append(opts, usecase.WithLLM(llm))
		logger.Info("llm fallback enabled", "provider", llm.Provider())
	} else {
		logger.Warn("no llm configured, unmatched messages use keyword replies")
	}

	var bookings *usecase.BookingService
	if cfg.BookingsTable != "" {
		c, err := loadAWS()
		if err != nil {
			return nil, err
		}
		repo, err := repository.New(awsdynamodb.NewFromConfig(c), cfg.BookingsTable)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: repository: %w", err)
		}
		opts = append(opts, usecase.WithBookingRecorder(repo))
		bookings, err = usecase.NewBookingService(repo, logger)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: booking service: %w", err)
		}
	}

	r := responder.New(responder.Profile{
		Name:    cfg.ShopName,
		Phone:   cfg.ShopPhone,
		Address: cfg.ShopAddress,
		MapsURL: cfg.ShopMapsURL,
	})
	chat, err := usecase.NewChatService(r, sessions, opts...)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: chat service: %w", err)
	}

	// A nil *BookingService must not become a non-nil interface.
	var bookingUC handler.BookingUseCase
	if bookings != nil {
		bookingUC = bookings
	}
	h, err := handler.NewHandler(chat, bookingUC, logger)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: handler: %w", err)
	}
	app.Handler = h
	return app, nil
}

func newSessionStore(ctx context.Context, cfg *config.Config) (usecase.SessionStore, func() error, error) {
	switch cfg.SessionBackend {
	case "", "memory":
		return session.NewMemoryStore(cfg.SessionTTL), nil, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("bootstrap: redis ping: %w", err)
		}
		store, err := session.NewRedisStore(client, cfg.SessionTTL)
		if err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("bootstrap: redis store: %w", err)
		}
		return store, client.Close, nil
	default:
		return nil, nil, fmt.Errorf("bootstrap: unknown session backend %q", cfg.SessionBackend)
	}
}

func newLLM(cfg *config.Config, loadAWS func() (aws.Config, error)) (usecase.LLMClient, error) {
	if cfg.LLMProvider == "bedrock" {
		c, err := loadAWS()
		if err != nil {
			return nil, err
		}
		client, err := bedrock.New(bedrockruntime.NewFromConfig(c), cfg.BedrockModelID, cfg.LLMMaxTokens)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: bedrock: %w", err)
		}
		return client, nil
	}

	opts := []anthropic.Option{
		anthropic.WithBaseURL(cfg.AnthropicBaseURL),
		anthropic.WithModel(cfg.AnthropicModel),
		anthropic.WithMaxTokens(cfg.LLMMaxTokens),
	}
	if cfg.AnthropicAPIKey != "" {
		opts = append(opts, anthropic.WithAPIKey(cfg.AnthropicAPIKey))
	} else {
		c, err := loadAWS()
		if err != nil {
			return nil, err
		}
		ps, err := paramstore.New(awsssm.NewFromConfig(c))
		if err != nil {
			return nil, fmt.Errorf("bootstrap: paramstore: %w", err)
		}
		opts = append(opts, anthropic.WithParamStore(ps, cfg.ParamPrefix))
	}
	client, err := anthropic.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: anthropic: %w", err)
	}
	return client, nil
}
