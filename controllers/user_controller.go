// File: /controllers/user_controller.go
package controllers

import (
	"net/http"
	"strings"

	"fueltrack-api/models"
	"fueltrack-api/repositories"
	"fueltrack-api/utils"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	users *repositories.UserRepository
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{users: repositories.NewUserRepository(db)}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	user, err := uc.users.FindByID(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")
	ctx := c.Request.Context()

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			utils.SendValidationError(c, "name must not be empty")
			return
		}
		updates["name"] = name
	}
	if req.Email != nil {
		email := req.Email.String()
		taken, err := uc.users.EmailTaken(ctx, email, userID)
		if err != nil {
			utils.SendAppError(c, err)
			return
		}
		if taken {
			utils.SendAppError(c, utils.ErrEmailTaken)
			return
		}
		updates["email"] = email
	}

	if len(updates) > 0 {
		if err := uc.users.Update(ctx, userID, updates); err != nil {
			utils.SendAppError(c, err)
			return
		}
	}

	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) ChangePassword(c *gin.Context) {
	userID := c.GetString("user_id")
	ctx := c.Request.Context()

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}
	if !utils.IsValidPassword(req.NewPassword) {
		utils.SendValidationError(c, "Password must contain at least 3 of: uppercase, lowercase, digits, symbols")
		return
	}

	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		utils.SendAppError(c, utils.ErrWrongPassword)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	if err := uc.users.Update(ctx, userID, map[string]interface{}{"password": string(hashed)}); err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendSuccess(c, "Password updated successfully", nil)
}

// DeleteAccount removes the user with all vehicles, entries and service records.
func (uc *UserController) DeleteAccount(c *gin.Context) {
	userID := c.GetString("user_id")
	if err := uc.users.Delete(c.Request.Context(), userID); err != nil {
		utils.SendAppError(c, err)
		return
	}

	log.WithField("user_id", userID).Info("User account deleted")
	utils.SendSuccess(c, "Account deleted successfully", nil)
}
