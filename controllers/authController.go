package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/okothpaul/shopkart-api/initializers"
	"github.com/okothpaul/shopkart-api/models"
	"github.com/okothpaul/shopkart-api/services"
	"github.com/okothpaul/shopkart-api/utils"
)

const (
	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgInternalServerError   = "Internal server error"
	msgFailedToGenerateToken = "failed to generate token"
	msgUserCreated           = "Registration successful! Please login."
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// sendServiceError maps a service sentinel to its HTTP status; anything
// unexpected is logged and reported as a server error.
func sendServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrCartItemNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrForbidden):
		sendErrorResponse(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrCategoryNotEmpty),
		errors.Is(err, services.ErrCategoryNameTaken):
		sendErrorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrNegativePrice):
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		log.Println("Service error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
	}
}

func generateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"username": user.Username,
		"role":     user.Role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

// Signup handles user registration
func Signup(ctx *gin.Context) {
	var signUpData models.SignupData
	if err := ctx.ShouldBindJSON(&signUpData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := services.RegisterUser(initializers.DB, signUpData.Username, signUpData.Email, signUpData.Password)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	if err := utils.SendWelcomeEmail(user); err != nil {
		log.Println("Error sending welcome email:", err)
		// Continue despite email error, but log it
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgUserCreated})
}

// Login handles user authentication
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := services.AuthenticateUser(initializers.DB, loginData.Email, loginData.Password)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	tokenString, err := generateJWT(*user)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"token": tokenString})
}
