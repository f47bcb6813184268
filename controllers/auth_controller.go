// File: /controllers/auth_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"fueltrack-api/models"
	"fueltrack-api/repositories"
	"fueltrack-api/services"
	"fueltrack-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	users        *repositories.UserRepository
	jwtSecret    string
	jwtExpiry    time.Duration
	emailService *services.EmailService
}

func NewAuthController(db *gorm.DB, jwtSecret string, jwtExpiry time.Duration, emailService *services.EmailService) *AuthController {
	return &AuthController{
		users:        repositories.NewUserRepository(db),
		jwtSecret:    jwtSecret,
		jwtExpiry:    jwtExpiry,
		emailService: emailService,
	}
}

func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}
	if !utils.IsValidPassword(req.Password) {
		utils.SendValidationError(c, "Password must contain at least 3 of: uppercase, lowercase, digits, symbols")
		return
	}

	email := req.Email.String()
	taken, err := ac.users.EmailTaken(c.Request.Context(), email, "")
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	if taken {
		utils.SendAppError(c, utils.ErrEmailTaken)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	user := models.User{
		ID:       uuid.New().String(),
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := ac.users.Create(c.Request.Context(), &user); err != nil {
		utils.SendAppError(c, err)
		return
	}

	token, err := ac.generateJWT(user.ID, user.Email)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	// Welcome mail must not delay or fail the registration
	go func(email, name string) {
		if err := ac.emailService.SendWelcomeEmail(email, name); err != nil {
			log.WithError(err).WithField("email", email).Warn("Failed to send welcome email")
		}
	}(user.Email, user.Name)

	log.WithField("user_id", user.ID).Info("User registered")
	c.JSON(http.StatusCreated, models.AuthResponse{Token: token, User: user})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	user, err := ac.users.FindByEmail(c.Request.Context(), req.Email.String())
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			err = utils.ErrInvalidCredentials
		}
		utils.SendAppError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.SendAppError(c, utils.ErrInvalidCredentials)
		return
	}

	token, err := ac.generateJWT(user.ID, user.Email)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{Token: token, User: *user})
}

func (ac *AuthController) generateJWT(userID, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"iat":     now.Unix(),
		"exp":     now.Add(ac.jwtExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.jwtSecret))
}
