package main

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"quizmaster/config"
	"quizmaster/controllers"
	"quizmaster/db"
	"quizmaster/routes"
	"quizmaster/services"
	"quizmaster/utils"
	"quizmaster/websocket"
)

func main() {
	// Load the configuration from the specified YAML file
	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.SetJWTSecret(cfg.JWT.Secret)
	utils.SetJWTExpiry(cfg.JWT.Expiry)

	// Connect to MongoDB using the URI from the configuration
	database, err := db.Connect(cfg.Database.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	// The Gemini provider is optional: without it every quiz is served
	// from the static question pools.
	var provider services.QuestionProvider
	if cfg.Gemini.ApiKey != "" {
		gemini, err := services.NewGeminiProvider(context.Background(), cfg.Gemini.ApiKey, cfg.Gemini.Model)
		if err != nil {
			log.Printf("Gemini unavailable, quizzes will use the static pools: %v", err)
		} else {
			provider = gemini
		}
	}

	hub := websocket.NewHub()

	profiles := db.NewProfileStore(database)
	sessions := services.NewSessionManager(services.MachineDeps{
		Questions:     services.NewQuestionService(provider),
		Profiles:      profiles,
		History:       db.NewHistoryStore(database),
		Saved:         db.NewSavedQuizStore(database),
		Broadcast:     hub.BroadcastAchievement,
		QuestionTime:  time.Duration(cfg.Quiz.QuestionTimeLimit) * time.Second,
		ToastDuration: time.Duration(cfg.Quiz.ToastDuration) * time.Second,
	})
	users := services.NewUserService(profiles)

	router := setupRouter(sessions, users, hub)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(sessions *services.SessionManager, users *services.UserService, hub *websocket.Hub) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	routes.Setup(router, routes.Deps{
		Auth:        controllers.NewAuthController(users, sessions),
		Profile:     controllers.NewProfileController(users, sessions),
		Quiz:        controllers.NewQuizController(sessions),
		Leaderboard: controllers.NewLeaderboardController(users, sessions),
		History:     controllers.NewHistoryController(users, sessions),
		Hub:         hub,
	})

	return router
}
