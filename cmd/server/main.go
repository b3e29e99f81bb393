package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Rangggase/Holy-Grail/internal/auth"
	"github.com/Rangggase/Holy-Grail/internal/cache"
	"github.com/Rangggase/Holy-Grail/internal/config"
	"github.com/Rangggase/Holy-Grail/internal/handler"
	"github.com/Rangggase/Holy-Grail/internal/metrics"
	"github.com/Rangggase/Holy-Grail/internal/model"
	"github.com/Rangggase/Holy-Grail/internal/recommend"
	"github.com/Rangggase/Holy-Grail/internal/repository"
	"github.com/Rangggase/Holy-Grail/internal/router"
	"github.com/Rangggase/Holy-Grail/internal/service"
	"github.com/Rangggase/Holy-Grail/seeds"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config %v", err)
	}

	ctx := context.Background()

	// ------------ PostgreSQL ---------------
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to parse database config %v", err)
	}
	poolConfig.MaxConns = int32(cfg.DBPoolSize)
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatalf("failed to connect to database %v", err)
	}
	defer pool.Close()

	if err := waitForDB(ctx, pool); err != nil {
		log.Fatalf("database not ready: %v", err)
	}
	log.Println("connected to PostgreSQL")

	// ------------ Run Migrations ---------------
	// for migrate-down using CLI command
	if len(os.Args) > 1 && os.Args[1] == "migrate-down" {
		if err := migrateDown(ctx, pool); err != nil {
			log.Fatalf("failed to migrate down %v", err)
		}
		log.Println("migrations dropped")
		return
	}

	if err := migrateUp(ctx, pool); err != nil {
		log.Fatalf("failed to migrate up %v", err)
	}

	// ------------ Setup Seed Data ---------------
	if err := checkSeed(ctx, pool); err != nil {
		log.Fatalf("failed to check seed %v", err)
	}

	// ------------ Redis ---------------
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to parse redis url %v", err)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	recCache := cache.NewCache(redisClient, cfg.CacheTTL)
	if err := recCache.Ping(ctx); err != nil {
		log.Printf("redis not reachable, recommendations will be uncached: %v", err)
	} else {
		log.Println("connected to Redis")
	}

	// ------------ Model Bundle ---------------
	// A missing or broken bundle is not fatal: the pipeline runs
	// rule-only and every raw score stays zero.
	var bundle recommend.Bundle
	loaded, err := model.Load(cfg.ModelBundlePath)
	if err != nil {
		log.Printf("model bundle unavailable, running rule-only: %v", err)
	} else {
		bundle = loaded
		log.Printf("model bundle loaded: %d menu items in vocabulary", loaded.ItemVocabSize())
	}

	// ------------ Admin Auth ---------------
	passHash := cfg.AdminPassHash
	if passHash == "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash admin password %v", err)
		}
		passHash = string(hashed)
	}
	authMgr := auth.NewManager(cfg.JWTSecret, passHash)

	// ---------------- Server --------------------
	metrics.Init()

	repo := repository.NewRepository(pool)
	svc := service.NewService(repo, recCache, bundle, nil)
	h := handler.NewHandler(svc, authMgr)

	log.Printf("Server running on %s", cfg.Addr())
	log.Fatal(http.ListenAndServe(cfg.Addr(), router.Setup(h)))
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool) error {
	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		log.Printf("waiting for database... (%d/30)", i+1)
		time.Sleep(1 * time.Second)
	}
	return fmt.Errorf("database connection timeout after 30s")
}

func migrateDown(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := os.ReadFile("migrations/create_tables.down.sql")
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	log.Println("migrations dropped successfully")
	return nil
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := os.ReadFile("migrations/create_tables.up.sql")
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	log.Println("migrations applied successfully")
	return nil
}

func checkSeed(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM menu").Scan(&count); err != nil {
		return fmt.Errorf("check menu count: %w", err)
	}
	if count > 0 {
		log.Printf("database already seeded (%d menu items), skipping", count)
		return nil
	}
	return seeds.Setup(ctx, pool)
}
