// handlers/auth.go
package handlers

import (
	"os"
	"time"

	"fairway/database"
	"fairway/middleware"
	"fairway/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token,omitempty"`
	User    *models.User `json:"user,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// Register creates an account
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Invalid request body"})
	}
	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Missing required fields"})
	}
	if len(req.Password) < 8 {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Password must be at least 8 characters"})
	}

	db := database.GetDB()

	var existing int64
	db.Model(&models.User{}).Where("email = ?", req.Email).Count(&existing)
	if existing > 0 {
		return c.Status(409).JSON(AuthResponse{Success: false, Error: "Email already registered"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Failed to create account"})
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.FirstName + " " + req.LastName
	}

	user := models.User{
		Email:       req.Email,
		Password:    string(hash),
		DisplayName: displayName,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		LastLogin:   time.Now().UTC(),
	}
	if err := db.Create(&user).Error; err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Failed to create account"})
	}

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Failed to generate token"})
	}

	return c.Status(201).JSON(AuthResponse{Success: true, Token: token, User: &user})
}

// Login authenticates a registered user
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Invalid request body"})
	}

	db := database.GetDB()

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return c.Status(401).JSON(AuthResponse{Success: false, Error: "Invalid credentials"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(401).JSON(AuthResponse{Success: false, Error: "Invalid credentials"})
	}

	db.Model(&user).Update("last_login", time.Now().UTC())

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Failed to generate token"})
	}

	return c.JSON(AuthResponse{Success: true, Token: token, User: &user})
}

// GetProfile returns the authenticated user with league memberships,
// the payload the frontend bootstraps from.
func GetProfile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	memberships, err := leagueSvc.Memberships(userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":           user.ID,
			"email":        user.Email,
			"display_name": user.DisplayName,
			"first_name":   user.FirstName,
			"last_name":    user.LastName,
			"avatar_url":   user.AvatarURL,
			"leagues":      memberships,
		},
	})
}

func generateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"is_admin": user.IsAdmin,
		"exp":      time.Now().Add(7 * 24 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
