package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	_ "github.com/Ayush-Kumar0207/algovista/docs"
	"github.com/Ayush-Kumar0207/algovista/internal/adapters/cache"
	adapterHTTP "github.com/Ayush-Kumar0207/algovista/internal/adapters/handler/http"
	"github.com/Ayush-Kumar0207/algovista/internal/adapters/platform"
	"github.com/Ayush-Kumar0207/algovista/internal/adapters/repository"
	"github.com/Ayush-Kumar0207/algovista/internal/core/domain"
	"github.com/Ayush-Kumar0207/algovista/internal/core/services"
	"github.com/Ayush-Kumar0207/algovista/internal/core/workers"
)

// @title           AlgoVista API
// @version         1.0
// @description     Competitive programming practice tracker and recommender.
// @BasePath        /api/v1

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	startTime := time.Now()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	serverPort := getEnv("PORT", "8080")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("Critical: JWT_SECRET is not set")
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	log.Println("Connecting to database...")

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Println("Database connected successfully.")

	var redisClient *redis.Client
	if redisHost := os.Getenv("REDIS_HOST"); redisHost != "" {
		redisPort := getEnv("REDIS_PORT", "6379")
		redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

		redisClient, err = cache.NewRedisClient(redisHost, redisPort, os.Getenv("REDIS_PASSWORD"), redisDB)
		if err != nil {
			log.Printf("Redis unavailable, continuing without cache: %v", err)
			redisClient = nil
		} else {
			log.Println("Redis connected successfully.")
		}
	}

	userRepo := repository.NewPostgresUserRepository(db)
	activityRepo := repository.NewPostgresActivityRepository(db)

	var problemRepo domain.ProblemRepository = repository.NewPostgresProblemRepository(db)
	if redisClient != nil {
		problemRepo = repository.NewCachedProblemRepository(problemRepo, redisClient)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	streakWorker := workers.NewStreakWorker(userRepo, activityRepo)
	streakWorker.Start(ctx)

	tokenService := services.NewTokenService(jwtSecret, "algovista", 24*time.Hour, userRepo)
	authService := services.NewAuthService(userRepo, tokenService)
	problemService := services.NewProblemService(problemRepo)
	activityService := services.NewActivityService(activityRepo, userRepo, streakWorker)
	recommendService := services.NewRecommendService(problemRepo, userRepo, rand.New(rand.NewSource(time.Now().UnixNano())))

	leetcodeClient := platform.NewLeetCodeAPI(os.Getenv("LEETCODE_API_URL"))
	codeforcesClient := platform.NewCodeforcesAPI(os.Getenv("CODEFORCES_API_URL"))
	syncService := services.NewSyncService(userRepo, leetcodeClient, codeforcesClient)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:      adapterHTTP.NewAuthHandler(authService),
		ProblemHandler:   adapterHTTP.NewProblemHandler(problemService),
		TrackerHandler:   adapterHTTP.NewTrackerHandler(activityService),
		RecommendHandler: adapterHTTP.NewRecommendHandler(recommendService),
		SyncHandler:      adapterHTTP.NewSyncHandler(syncService),
		TokenService:     tokenService,
		DB:               db,
		Redis:            redisClient,
		StartTime:        startTime,
	})

	srv := &http.Server{
		Addr:         ":" + serverPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("AlgoVista API running on http://localhost:%s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
