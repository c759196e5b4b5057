package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suraj-naithani/ecart-api/auth"
	"github.com/suraj-naithani/ecart-api/errs"
	"github.com/suraj-naithani/ecart-api/middleware"
	"github.com/suraj-naithani/ecart-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SignUpInput struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6"`
	Phone    int64       `json:"phone" binding:"required"`
	Address  string      `json:"address" binding:"required"`
	Role     models.Role `json:"role" binding:"required,oneof=Admin Seller Buyer"`
}

type SignInInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    int64  `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

// SignUp registers a user. Email and phone are unique across all roles.
func SignUp(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignUpInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		var existing models.User
		err := db.Where("email = ? OR phone = ?", input.Email, input.Phone).First(&existing).Error
		if err == nil {
			errs.Respond(c, errs.BadRequest("User already exists"))
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			errs.Respond(c, err)
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			errs.Respond(c, err)
			return
		}

		user := models.User{
			Name:     input.Name,
			Email:    input.Email,
			Password: string(hashed),
			Phone:    input.Phone,
			Address:  input.Address,
			Role:     input.Role,
		}
		if err := db.Create(&user).Error; err != nil {
			errs.Respond(c, err)
			return
		}

		token, err := auth.GenerateToken(user)
		if err != nil {
			errs.Respond(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "User created successfully",
			"user":    user.Public(),
			"token":   token,
		})
	}
}

// SignIn authenticates by email and password and returns a fresh token.
func SignIn(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignInInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				errs.Respond(c, errs.NotFound("Invalid username or password"))
				return
			}
			errs.Respond(c, err)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			errs.Respond(c, errs.Unauthorized("Invalid password"))
			return
		}

		token, err := auth.GenerateToken(user)
		if err != nil {
			errs.Respond(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": user.Name + " logged in successfully",
			"user":    user.Public(),
			"token":   token,
		})
	}
}

// GetMyProfile returns the authenticated user's record.
func GetMyProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, middleware.UserID(c)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				errs.Respond(c, errs.NotFound("User not found"))
				return
			}
			errs.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user": user.Public()})
	}
}

// UpdateProfile applies the non-blank fields. Email and phone conflicts are
// checked against every other user; a new password is re-hashed.
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		if input.Email != "" {
			var other models.User
			if err := db.Where("email = ? AND id <> ?", input.Email, userID).First(&other).Error; err == nil {
				errs.Respond(c, errs.BadRequest("Email already exists"))
				return
			}
		}
		if input.Phone != 0 {
			var other models.User
			if err := db.Where("phone = ? AND id <> ?", input.Phone, userID).First(&other).Error; err == nil {
				errs.Respond(c, errs.BadRequest("Phone number already exists"))
				return
			}
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				errs.Respond(c, errs.NotFound("User not found"))
				return
			}
			errs.Respond(c, err)
			return
		}

		updates := make(map[string]interface{})
		if input.Name != "" {
			updates["name"] = input.Name
		}
		if input.Email != "" {
			updates["email"] = input.Email
		}
		if input.Phone != 0 {
			updates["phone"] = input.Phone
		}
		if input.Address != "" {
			updates["address"] = input.Address
		}
		if input.Password != "" {
			hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
			if err != nil {
				errs.Respond(c, err)
				return
			}
			updates["password"] = string(hashed)
		}

		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				errs.Respond(c, err)
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated", "user": user.Public()})
	}
}
