package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/PurpleArcher2/discounts-app/internal/domain/contract"
	"github.com/PurpleArcher2/discounts-app/internal/events"
	handlerHttp "github.com/PurpleArcher2/discounts-app/internal/handler/http"
	redisclient "github.com/PurpleArcher2/discounts-app/internal/infrastructure/cache"
	"github.com/PurpleArcher2/discounts-app/internal/infrastructure/config"
	database "github.com/PurpleArcher2/discounts-app/internal/infrastructure/database"
	"github.com/PurpleArcher2/discounts-app/internal/infrastructure/jwt"
	"github.com/PurpleArcher2/discounts-app/internal/infrastructure/logger"
	passwordservice "github.com/PurpleArcher2/discounts-app/internal/infrastructure/password_service"
	"github.com/PurpleArcher2/discounts-app/internal/infrastructure/repository/inmem"
	"github.com/PurpleArcher2/discounts-app/internal/infrastructure/repository/mongodb"
	"github.com/PurpleArcher2/discounts-app/internal/infrastructure/seed"
	"github.com/PurpleArcher2/discounts-app/internal/infrastructure/store"
	"github.com/PurpleArcher2/discounts-app/internal/infrastructure/uuidgen"
	"github.com/PurpleArcher2/discounts-app/internal/infrastructure/validator"
	"github.com/PurpleArcher2/discounts-app/internal/usecase"
)

// repositories bundles one storage backend's implementations.
type repositories struct {
	users      contract.IUserRepository
	cafes      contract.ICafeRepository
	pending    contract.IPendingCafeRepository
	discounts  contract.IDiscountRepository
	tokens     contract.ITokenRepository
	settings   contract.ISettingsRepository
	transactor contract.ITransactor
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ctx := context.Background()

	// Storage backend: MongoDB when MONGODB_URI is set, otherwise the
	// embedded in-memory store (useful for demos and local development).
	var repos repositories
	if mongoURI := os.Getenv("MONGODB_URI"); mongoURI != "" {
		dbName := os.Getenv("MONGODB_DB_NAME")
		if dbName == "" {
			log.Fatal("MONGODB_DB_NAME environment variable not set")
		}
		mongoClient, err := database.NewMongoDBClient(mongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer mongoClient.Disconnect()

		db := mongoClient.Client.Database(dbName)
		userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
		if err := userRepo.EnsureIndexes(ctx); err != nil {
			log.Fatalf("Failed to ensure indexes: %v", err)
		}
		repos = repositories{
			users:      userRepo,
			cafes:      mongodb.NewMongoCafeRepository(db.Collection("cafes")),
			pending:    mongodb.NewMongoPendingCafeRepository(db.Collection("pending_cafes")),
			discounts:  mongodb.NewMongoDiscountRepository(db.Collection("discounts")),
			tokens:     mongodb.NewMongoTokenRepository(db.Collection("tokens")),
			settings:   mongodb.NewMongoSettingsRepository(db.Collection("settings")),
			transactor: mongodb.NewMongoTransactor(mongoClient.Client),
		}
		log.Println("Using MongoDB storage")
	} else {
		memStore := inmem.NewStore()
		repos = repositories{
			users:      inmem.NewUserRepository(memStore),
			cafes:      inmem.NewCafeRepository(memStore),
			pending:    inmem.NewPendingCafeRepository(memStore),
			discounts:  inmem.NewDiscountRepository(memStore),
			tokens:     inmem.NewTokenRepository(memStore),
			settings:   inmem.NewSettingsRepository(memStore),
			transactor: inmem.NewTransactor(memStore),
		}
		log.Println("MONGODB_URI not set, using in-memory storage")
	}

	// Register custom validators
	validator.RegisterCustomValidators()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	appConfig := config.NewConfig()
	jwtManager := jwt.NewJWTManager(jwtSecret, appConfig.GetAccessTokenExpiry(), appConfig.GetRefreshTokenExpiry())
	jwtService := jwt.NewJWTService(jwtManager)
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	hub := events.NewHub(16)

	// Seed the admin account exactly once
	seeder := seed.NewSeeder(repos.users, repos.settings, hasher, uuidGenerator, appConfig, appLogger)
	if err := seeder.Run(ctx); err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(repos.users, repos.pending, repos.tokens, repos.transactor, hasher, jwtService, appLogger, appConfig, appValidator, uuidGenerator, hub)
	directoryUsecase := usecase.NewDirectoryUsecase(repos.pending, repos.cafes, repos.users, repos.transactor, uuidGenerator, appLogger, hub)
	discountUsecase := usecase.NewDiscountUsecase(repos.discounts, appValidator, uuidGenerator, appLogger, hub)

	// Optional Dependency Injection: Redis cache for the cafe directory
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(ctx, redisURL)
		defer redisclient.Close(rdb)
		cafeCache := store.NewCafeCacheStore(rdb)
		directoryUsecase.SetCafeCache(cafeCache)
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(userUsecase, directoryUsecase, discountUsecase, hub, jwtService)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
