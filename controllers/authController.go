package controllers

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/bmkabile/fixmyward/models"
	"github.com/bmkabile/fixmyward/store"
	authUtils "github.com/bmkabile/fixmyward/utils"
)

// AuthController handles registration, login, logout, and the current-user
// lookup.
type AuthController struct {
	Store *store.Store
}

func NewAuthController(s *store.Store) *AuthController {
	return &AuthController{Store: s}
}

// Register handles user sign-up. A fresh account starts a session
// immediately, so the auth cookie is set on success.
func (ac *AuthController) Register(c *gin.Context) {
	var input struct {
		FullName string `json:"fullName" binding:"required,max=100"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Ward     string `json:"ward" binding:"required,ward"`
		Role     string `json:"role" binding:"required,userrole"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.Store.SignUp(store.SignUpInput{
		FullName: input.FullName,
		Email:    input.Email,
		Password: input.Password,
		Ward:     input.Ward,
		Role:     models.UserRole(input.Role),
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if err := ac.setAuthCookie(c, user); err != nil {
		log.Println("Error generating token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusCreated, userPayload(user))
}

// Login handles credential checks and session start.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.Store.Login(input.Email, input.Password)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if err := ac.setAuthCookie(c, user); err != nil {
		log.Println("Error generating token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, userPayload(user))
}

// Me retrieves the authenticated user's information.
func (ac *AuthController) Me(c *gin.Context) {
	user, err := ac.Store.GetUserByID(actorID(c))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, userPayload(user))
}

// Logout clears the session and the auth_token cookie. Always succeeds.
func (ac *AuthController) Logout(c *gin.Context) {
	ac.Store.Logout(actorID(c))

	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	c.SetCookie("auth_token", "", -1, "/", domain, environment == "production", true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

func (ac *AuthController) setAuthCookie(c *gin.Context, user *models.User) error {
	token, err := authUtils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return err
	}

	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	// For production, don't set domain to allow cross-origin cookies
	if environment == "production" {
		domain = ""
	}

	cookie := &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		MaxAge:   3600, // 1 hour
		Path:     "/",
		Domain:   domain,
		Secure:   environment == "production", // false for HTTP (dev), true for HTTPS (prod)
		HttpOnly: true,                        // still protect from JS access
		SameSite: http.SameSiteNoneMode,       // Required for cross-origin cookies in production
	}
	http.SetCookie(c.Writer, cookie)
	return nil
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":       user.ID,
		"fullName": user.FullName,
		"email":    user.Email,
		"ward":     user.Ward,
		"role":     user.Role,
	}
}
