package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smartzap/server/internal/automation"
	"github.com/smartzap/server/internal/config"
	"github.com/smartzap/server/internal/dispatch"
	"github.com/smartzap/server/internal/logger"
	"github.com/smartzap/server/internal/metalimits"
	"github.com/smartzap/server/internal/whatsapp"
	"github.com/smartzap/server/smartzap/campaigns"
	"github.com/smartzap/server/smartzap/contacts"
	"github.com/smartzap/server/smartzap/conversations"
	"github.com/smartzap/server/smartzap/settings"
)

// how often the dispatcher drains queued campaigns
const dispatchInterval = 15 * time.Second

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// configure connection pool for supabase free tier pooler compatibility
	// free tier has ~10-15 pooler connections, so keep our pool small
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// CRITICAL: use simple protocol for supabase pooler (PgBouncer) compatibility
	// pgBouncer in transaction mode doesn't support prepared statements,
	// which causes connections to hang on subsequent queries
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	contactRepo := contacts.NewRepository(db)
	campaignRepo := campaigns.NewRepository(db)
	convRepo := conversations.NewRepository(db)
	controller := automation.NewController(convRepo)

	// the limits snapshot cache prefers Redis; without it, the
	// Postgres-backed settings store keeps multi-instance deployments
	// on a single shared snapshot
	limitsStore := newLimitsStore(cfg, db)

	limitsService := metalimits.NewService(
		metalimits.NewFetcher(metalimits.FetcherConfig{}),
		metalimits.NewCache(limitsStore),
		cfg.WhatsAppPhoneNumberID,
		cfg.MetaAccessToken,
	)

	whatsappClient := whatsapp.NewClient(whatsapp.Config{
		PhoneNumberID: cfg.WhatsAppPhoneNumberID,
		AccessToken:   cfg.MetaAccessToken,
	})

	dispatcher := dispatch.NewDispatcher(campaignRepo, whatsappClient, limitsService, dispatchInterval)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &Server{
		db:            db,
		config:        cfg,
		contactRepo:   contactRepo,
		campaignRepo:  campaignRepo,
		convRepo:      convRepo,
		controller:    controller,
		limitsService: limitsService,
		limitsStore:   limitsStore,
		whatsapp:      whatsappClient,
		dispatcher:    dispatcher,
		router:        gin.Default(),
	}

	if err := RegisterRoutes(server.router, server); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to register routes: %w", err)
	}

	return server, nil
}

func newLimitsStore(cfg *config.Config, db *pgxpool.Pool) metalimits.KVStore {
	if cfg.RedisURL == "" {
		logger.Info("REDIS_URL not set, caching account limits in postgres")
		return settings.NewRepository(db)
	}

	store, err := metalimits.NewRedisStoreFromURL(cfg.RedisURL)
	if err != nil {
		logger.ErrorErr(err, "redis unavailable, caching account limits in postgres")
		return settings.NewRepository(db)
	}

	logger.Info("caching account limits in redis")
	return store
}
