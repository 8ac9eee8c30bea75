package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lyepez-glitch/VitalCore/internal/core/auth"
	"github.com/lyepez-glitch/VitalCore/internal/core/config"
	"github.com/lyepez-glitch/VitalCore/internal/core/database"
	"github.com/lyepez-glitch/VitalCore/internal/core/logger"
	"github.com/lyepez-glitch/VitalCore/internal/core/server"
	"github.com/lyepez-glitch/VitalCore/internal/domain"
	"github.com/lyepez-glitch/VitalCore/internal/realtime"
	"github.com/lyepez-glitch/VitalCore/internal/repo"
	"github.com/lyepez-glitch/VitalCore/internal/seed"
	"github.com/lyepez-glitch/VitalCore/internal/service"
	"github.com/lyepez-glitch/VitalCore/internal/transport/gql"
	"github.com/lyepez-glitch/VitalCore/internal/transport/http/handler"
	"github.com/lyepez-glitch/VitalCore/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))

	var log *zap.Logger
	var cleanup func()
	if cfg.Log.File != "" {
		log, cleanup = logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File,
			cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays, cfg.Log.Compress)
	} else {
		log, cleanup = logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	defer cleanup()

	// repositories: one shared DB handle for the process lifetime, or the
	// in-memory store for running without a database
	var (
		cells   domain.CellRepository
		genes   domain.GeneRepository
		factors domain.LifeFactorRepository
		users   domain.UserRepository
	)
	if cfg.DB.Driver == "memory" {
		cells = repo.NewInMemoryCellRepo(nil)
		genes = repo.NewInMemoryGeneRepo(nil)
		factors = repo.NewInMemoryLifeFactorRepo(nil)
		users = repo.NewInMemoryUserRepo()
		log.Info("using in-memory store")
	} else {
		db := mustOpenDB(cfg, log)
		log.Info("database connected", zap.String("driver", cfg.DB.Driver))
		if cfg.DB.AutoMigrate {
			if err := db.AutoMigrate(&domain.Cell{}, &domain.Gene{}, &domain.LifeFactor{}, &domain.User{}); err != nil {
				log.Fatal("automigrate failed", zap.Error(err))
			}
			log.Info("automigrate done")
		}
		cells = repo.NewCellRepo(db)
		genes = repo.NewGeneRepo(db)
		factors = repo.NewLifeFactorRepo(db)
		users = repo.NewUserRepo(db)
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	vitalsSvc := service.NewVitalsService(cells, genes, factors, log)
	authSvc := service.NewAuthService(users, jwter, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.DB.Seed {
		if err := seed.Bootstrap(ctx, vitalsSvc, log); err != nil {
			log.Fatal("bootstrap seed failed", zap.Error(err))
		}
	}

	hub := realtime.NewHub(log)
	go hub.Run(ctx)

	gqlHandler, err := gql.NewHandler(vitalsSvc, hub)
	if err != nil {
		log.Fatal("graphql schema", zap.Error(err))
	}

	vitalsH := handler.NewVitalsHandler(vitalsSvc, hub, log)
	authH := handler.NewAuthHandler(authSvc, log)

	r := router.NewAPIEngine(router.Deps{
		Log:     log,
		Cfg:     cfg,
		Vitals:  vitalsH,
		Auth:    authH,
		Hub:     hub,
		GraphQL: gqlHandler,
		JWTer:   jwter,
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("vitalcore api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("graphiql", baseURL+"/graphql"),
		zap.String("health", baseURL+"/health"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("vitalcore api start FAILED", zap.Error(err))
		}
	}()
	log.Info("vitalcore api started SUCCESS")

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("vitalcore api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Host:               cfg.DB.Host,
		Port:               cfg.DB.Port,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		Name:               cfg.DB.Name,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
