package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/umar710/Inventory-Management-Backend/models"
	"github.com/umar710/Inventory-Management-Backend/utils"
)

const tokenTTL = 24 * time.Hour

// UserController handles registration, login and password resets. It is
// the identity provider for the rest of the API: the tokens it issues
// carry the username the inventory service attributes changes to.
type UserController struct {
	db        *gorm.DB
	jwtSecret string
	log       *slog.Logger
}

func NewUserController(db *gorm.DB, jwtSecret string, log *slog.Logger) *UserController {
	if log == nil {
		log = slog.Default()
	}
	return &UserController{db: db, jwtSecret: jwtSecret, log: log}
}

// Register godoc
// @Summary Register a new user and issue a token
// @Tags auth
// @Accept json
// @Produce json
// @Router /api/auth/register [post]
func (uc *UserController) Register(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required,min=3"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var count int64
	if err := uc.db.Model(&models.User{}).
		Where("username = ? OR email = ?", input.Username, input.Email).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error during registration"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{Username: input.Username, Email: input.Email, PasswordHash: string(hash)}
	if err := uc.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error during registration"})
		return
	}

	token, err := uc.signToken(&user, tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   token,
		"user":    gin.H{"id": user.Id, "username": user.Username, "email": user.Email},
	})
}

// Login godoc
// @Summary Authenticate and issue a token
// @Tags auth
// @Accept json
// @Produce json
// @Router /api/auth/login [post]
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := uc.db.Where("username = ?", input.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := uc.signToken(&user, tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    gin.H{"id": user.Id, "username": user.Username, "email": user.Email},
	})
}

// ForgotPassword issues a short-lived reset token and mails it. The
// response is the same whether or not the account exists.
func (uc *UserController) ForgotPassword(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	const neutral = "If an account with that email exists, a password reset link has been sent."

	var user models.User
	if err := uc.db.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"message": neutral})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.Id,
		"exp":  time.Now().Add(15 * time.Minute).Unix(),
		"type": "reset_password",
	})
	tokenString, err := token.SignedString([]byte(uc.jwtSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	if err := utils.SendPasswordResetEmail(uc.log, user.Email, tokenString); err != nil {
		uc.log.Error("password reset email failed", "email", user.Email, "error", err)
	}
	c.JSON(http.StatusOK, gin.H{"message": neutral})
}

// ResetPassword validates a reset token and replaces the password hash.
func (uc *UserController) ResetPassword(c *gin.Context) {
	var input struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := jwt.Parse(input.Token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["type"] != "reset_password" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid token type"})
		return
	}
	userID, ok := claims["sub"].(float64)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid token claims"})
		return
	}

	var user models.User
	if err := uc.db.First(&user, uint(userID)).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash new password"})
		return
	}
	if err := uc.db.Model(&user).Update("password_hash", string(hash)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset successfully"})
}

func (uc *UserController) signToken(user *models.User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.Id,
		"username": user.Username,
		"exp":      time.Now().Add(ttl).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(uc.jwtSecret))
}
