package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"quizmaster/catalog"
	"quizmaster/models"
	"quizmaster/services"
	"quizmaster/utils"
)

// AuthController implements the simulated login flows. A mock-account
// email behaves like a social login; any other email is accepted as a
// plain email login. Either way the persisted profile for that email
// is merged in, so progress survives across sessions.
type AuthController struct {
	users    *services.UserService
	sessions *services.SessionManager
}

func NewAuthController(users *services.UserService, sessions *services.SessionManager) *AuthController {
	return &AuthController{users: users, sessions: sessions}
}

type loginRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Login authenticates the simulated identity and returns a JWT plus
// the merged profile.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	incoming, ok := catalog.FindMockUser(req.Email)
	if !ok {
		name := req.Name
		if name == "" {
			name = utils.ExtractNameFromEmail(req.Email)
		}
		picture := req.Picture
		if picture == "" {
			picture = "https://api.dicebear.com/8.x/adventurer/svg?seed=" + name
		}
		incoming = models.User{Name: name, Email: req.Email, Picture: picture}
	}

	user, err := ac.users.Login(c.Request.Context(), incoming)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	token, err := utils.GenerateJWTToken(user.Email)
	if err != nil {
		log.Printf("Failed to issue token for %s: %v", user.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// MockUsers lists the simulated social-login accounts.
func (ac *AuthController) MockUsers(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.MockUsers)
}

// Logout tears down the quiz session and clears the saved in-progress
// quiz. The profile and history stay.
func (ac *AuthController) Logout(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ac.sessions.Teardown(c.Request.Context(), email)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
