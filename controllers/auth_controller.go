package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"airline_admin_go/config"
	"airline_admin_go/models"
	"airline_admin_go/store"
	"airline_admin_go/utils"
)

type AuthController struct {
	accounts store.Records
	cfg      *config.Config
}

func NewAuthController(accounts store.Records, cfg *config.Config) *AuthController {
	return &AuthController{accounts: accounts, cfg: cfg}
}

// ========== REQUEST STRUCT ==========
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ========== HANDLERS ==========

// Register creates a credential account.
// @Summary Register a new account
// @Description Register with username, email, and password
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	// case-sensitive equality lookup, same as the login path uses
	count, err := ac.accounts.CountBy(ctx, "email", req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	account := models.Account{
		ID:        primitive.NewObjectID(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashed,
		CreatedAt: time.Now(),
	}

	if _, err := ac.accounts.Insert(ctx, account); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// registration does not auto-login; the client logs in separately
	c.JSON(http.StatusCreated, gin.H{"status": "ok"})
}

// Login verifies credentials and issues a signed token.
// @Summary Login
// @Description Login with email and password, returns a JWT valid for 1h
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	var account models.Account
	err := ac.accounts.FindBy(ctx, "email", req.Email, &account)
	if errors.Is(err, store.ErrNoRecord) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !utils.CheckPasswordHash(req.Password, account.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password"})
		return
	}

	token, err := utils.GenerateToken(account.ID.Hex(), account.Email, ac.cfg.JWTSecret, ac.cfg.TokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "token": token})
}
