package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/anikets/paisaledger/pkg/cache"
	"github.com/anikets/paisaledger/pkg/handlers"
	"github.com/anikets/paisaledger/pkg/ledger"
	"github.com/anikets/paisaledger/pkg/middleware"
	"github.com/anikets/paisaledger/pkg/storage"
	dydbstore "github.com/anikets/paisaledger/pkg/storage/dynamodb"
	pgstore "github.com/anikets/paisaledger/pkg/storage/postgres"
)

func newStorage(ctx context.Context) storage.Storage {
	switch backend := os.Getenv("STORAGE_BACKEND"); backend {
	case "postgres":
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			log.Fatal("DATABASE_URL environment variable not set")
		}
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			log.Fatalf("failed to open postgres connection: %v", err)
		}
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("failed to ping postgres: %v", err)
		}
		return pgstore.New(db)
	case "", "dynamodb":
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			log.Fatalf("unable to load SDK config, %v", err)
		}
		transactionsTable := os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME")
		accountsTable := os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME")
		categoriesTable := os.Getenv("DYNAMODB_CATEGORIES_TABLE_NAME")
		if transactionsTable == "" || accountsTable == "" || categoriesTable == "" {
			log.Fatal("One or more DynamoDB table name environment variables are not set")
		}
		return dydbstore.New(awsdynamodb.NewFromConfig(cfg), transactionsTable, accountsTable, categoriesTable)
	default:
		log.Fatalf("unknown STORAGE_BACKEND %q", backend)
		return nil
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ctx := context.Background()
	store := newStorage(ctx)

	// Account reads sit on the write path, so optionally cache them.
	var accounts storage.AccountStore = store
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		accounts = cache.NewAccountCache(store, client)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	auth := middleware.NewAuthenticator(jwtSecret)

	service := ledger.NewService(accounts, store, store)
	handler := handlers.NewApiHandler(service)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(middleware.NewStructuredLogger(logger))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Group(func(r chi.Router) {
		r.Use(auth.Middleware)
		r.Mount("/", handler.Routes())
	})

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
