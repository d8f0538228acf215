package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/eshopke/eshop-api/models"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	msgInvalidCredentials = "invalid email or password"
)

type UserController struct {
	DB        *gorm.DB
	Log       *zap.Logger
	JWTSecret string
}

func NewUserController(db *gorm.DB, log *zap.Logger, jwtSecret string) *UserController {
	return &UserController{DB: db, Log: log, JWTSecret: jwtSecret}
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// generateJWT signs a 1-day token carrying the user id and admin flag.
func generateJWT(user models.User, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":  user.ID,
		"isAdmin": user.IsAdmin,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString([]byte(secret))
}

func userFromInput(input models.UserInput) models.User {
	return models.User{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		IsAdmin:   input.IsAdmin,
		Street:    input.Street,
		Apartment: input.Apartment,
		Zip:       input.Zip,
		City:      input.City,
		Country:   input.Country,
	}
}

func (c *UserController) GetUsers(ctx *gin.Context) {
	var users []models.User
	if result := c.DB.Find(&users); result.Error != nil {
		c.Log.Error("Failed to fetch users", zap.Error(result.Error))
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch users", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

func (c *UserController) GetUser(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid user ID", err)
		return
	}

	var user models.User
	if result := c.DB.First(&user, userId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "The user with the given ID was not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve user", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// RegisterUser creates a user, hashing the supplied password before storage.
func (c *UserController) RegisterUser(ctx *gin.Context) {
	var input models.UserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if input.Password == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "Password is required")
		return
	}

	hashedPassword, err := hashPassword(input.Password)
	if err != nil {
		c.Log.Error("Password hashing error", zap.Error(err))
		respondWithError(ctx, http.StatusInternalServerError, "Failed to hash password", err)
		return
	}

	user := userFromInput(input)
	user.PasswordHash = hashedPassword
	if err := c.DB.Create(&user).Error; err != nil {
		c.Log.Error("Failed to create user", zap.Error(err))
		respondWithError(ctx, http.StatusInternalServerError, "The user cannot be created", err)
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// UpdateUser replaces the user's fields; the password hash is regenerated
// only when a new password is supplied, otherwise the stored hash survives.
func (c *UserController) UpdateUser(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid user ID", err)
		return
	}

	var input models.UserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var existing models.User
	if result := c.DB.First(&existing, userId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "The user cannot be updated")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve user", result.Error)
		}
		return
	}

	user := userFromInput(input)
	user.Model = existing.Model
	user.PasswordHash = existing.PasswordHash
	if input.Password != "" {
		hashedPassword, err := hashPassword(input.Password)
		if err != nil {
			c.Log.Error("Password hashing error", zap.Error(err))
			respondWithError(ctx, http.StatusInternalServerError, "Failed to hash password", err)
			return
		}
		user.PasswordHash = hashedPassword
	}

	if err := c.DB.Save(&user).Error; err != nil {
		c.Log.Error("Failed to update user", zap.Error(err))
		respondWithError(ctx, http.StatusInternalServerError, "The user cannot be updated", err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// Login verifies the credentials and answers with the user's email and a
// signed token.
func (c *UserController) Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var user models.User
	if result := c.DB.Where("email = ?", loginData.Email).First(&user); result.Error != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	if err := comparePasswords(user.PasswordHash, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	tokenString, err := generateJWT(user, c.JWTSecret)
	if err != nil {
		c.Log.Error("JWT generation error", zap.Error(err))
		respondWithError(ctx, http.StatusInternalServerError, "Failed to generate token", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": user.Email, "token": tokenString})
}

func (c *UserController) DeleteUser(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid user ID", err)
		return
	}

	result := c.DB.Delete(&models.User{}, userId)
	if result.Error != nil {
		c.Log.Error("Failed to delete user", zap.Error(result.Error))
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "The user is deleted"})
}

func (c *UserController) GetUserCount(ctx *gin.Context) {
	var count int64
	if result := c.DB.Model(&models.User{}).Count(&count); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to count users", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"userCount": count})
}
