package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/config"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/model"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/repository"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/utils"
)

// UserStore is the credential-store surface the auth handlers need.
type UserStore interface {
	Create(ctx context.Context, username, email, password string, cost int) (model.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (model.AdminUser, error)
}

// AuthHandler bundles dependencies for the admin auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewAuthHandler(cfg config.Config, u UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type signupReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPart struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
type authResp struct {
	Token string   `json:"token"`
	User  userPart `json:"user"`
}

// Signup creates an admin account and returns a token immediately.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username, email and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.Create(ctx, req.Username, req.Email, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	tok, err := utils.NewAuthToken(h.Cfg.JWTSecret, utils.Claims{
		UserID:   u.ID.Hex(),
		Email:    u.Email,
		Username: u.Username,
	}, h.Cfg.TokenTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	return c.JSON(http.StatusCreated, authResp{
		Token: tok.Token,
		User:  userPart{ID: u.ID.Hex(), Username: u.Username, Email: u.Email},
	})
}

// Login verifies credentials and returns a fresh token. Unknown email and
// wrong password produce the same generic message so the response never
// reveals which field was wrong.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid email or password"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid email or password"})
	}

	tok, err := utils.NewAuthToken(h.Cfg.JWTSecret, utils.Claims{
		UserID:   u.ID.Hex(),
		Email:    u.Email,
		Username: u.Username,
	}, h.Cfg.TokenTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	return c.JSON(http.StatusOK, authResp{
		Token: tok.Token,
		User:  userPart{ID: u.ID.Hex(), Username: u.Username, Email: u.Email},
	})
}

// VerifyToken sits behind the auth gate and echoes the identity the gate
// attached to the context. The admin client uses it as its route guard.
func (h *AuthHandler) VerifyToken(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"valid": true,
		"user": userPart{
			ID:       stringFromContext(c.Get("user_id")),
			Username: stringFromContext(c.Get("username")),
			Email:    stringFromContext(c.Get("email")),
		},
	})
}

func stringFromContext(v interface{}) string {
	s, _ := v.(string)
	return s
}
