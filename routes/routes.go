package routes

import (
	"github.com/gin-gonic/gin"

	"quizmaster/controllers"
	"quizmaster/middlewares"
	"quizmaster/websocket"
)

// Deps are the wired controllers the router dispatches to.
type Deps struct {
	Auth        *controllers.AuthController
	Profile     *controllers.ProfileController
	Quiz        *controllers.QuizController
	Leaderboard *controllers.LeaderboardController
	History     *controllers.HistoryController
	Hub         *websocket.Hub
}

// Setup registers all routes on the router.
func Setup(router *gin.Engine, deps Deps) {
	// Public routes
	router.POST("/login", deps.Auth.Login)
	router.GET("/mockusers", deps.Auth.MockUsers)
	router.GET("/languages", deps.Quiz.Languages)

	// Protected routes (JWT auth)
	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/logout", deps.Auth.Logout)

		auth.GET("/user/profile", deps.Profile.GetProfile)
		auth.PUT("/user/profile", deps.Profile.UpdateProfile)
		auth.GET("/user/avatars", deps.Profile.Avatars)
		auth.POST("/user/avatar", deps.Profile.SelectAvatar)
		auth.GET("/user/stats", deps.Profile.GetStats)

		auth.GET("/history", deps.History.GetHistory)
		auth.GET("/achievements", deps.History.GetAchievements)
		auth.GET("/leaderboard", deps.Leaderboard.GetLeaderboard)

		auth.GET("/quiz/state", deps.Quiz.State)
		auth.POST("/quiz/language", deps.Quiz.SelectLanguage)
		auth.POST("/quiz/setup", deps.Quiz.StartSetup)
		auth.POST("/quiz/start", deps.Quiz.StartQuiz)
		auth.POST("/quiz/answer", deps.Quiz.Answer)
		auth.POST("/quiz/next", deps.Quiz.Next)
		auth.POST("/quiz/restart", deps.Quiz.Restart)
		auth.POST("/quiz/resume", deps.Quiz.Resume)
		auth.POST("/quiz/toast/dismiss", deps.Quiz.DismissToast)

		// Achievement toast notifications
		auth.GET("/ws/achievements", deps.Hub.Handler)
	}
}
