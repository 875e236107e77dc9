package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/chart0729-create/hany1/internal/model"
	"github.com/chart0729-create/hany1/internal/repository"
)

// UserHandler serves signup, login and the user list. There are no
// sessions or tokens: every call authenticates on its own and the
// client keeps the result.
type UserHandler struct {
	Repo *repository.UserRepository
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/signup", h.Signup)
	rg.POST("/login", h.Login)
	rg.GET("/users", h.List)
}

type signupRequest struct {
	Nickname string `json:"nickname"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginRequest struct {
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

// POST /api/signup
func (h *UserHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := decodeJSON(c, &req); err != nil {
		respondError(c, http.StatusOK, msgInvalidPayload)
		return
	}

	nickname := strings.TrimSpace(req.Nickname)
	if nickname == "" || req.Password == "" {
		respondError(c, http.StatusOK, msgSignupRequired)
		return
	}
	if nickname == repository.AdminID {
		respondError(c, http.StatusOK, msgAdminReserved)
		return
	}
	// bcrypt caps input at 72 bytes; anything longer is bad client
	// input, not a server fault.
	if len(req.Password) > 72 {
		respondError(c, http.StatusOK, msgPasswordTooLong)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	user := model.User{
		ID:        nickname,
		Phone:     strings.TrimSpace(req.Phone),
		Password:  string(hash),
		Role:      model.RoleUser,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	if err := h.Repo.Create(c.Request.Context(), &user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			respondError(c, http.StatusOK, msgDuplicateUser)
			return
		}
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"user": user.Sanitized()})
}

// POST /api/login — a missing account and a wrong password produce the
// same answer on purpose.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := decodeJSON(c, &req); err != nil {
		respondError(c, http.StatusOK, msgInvalidPayload)
		return
	}

	user, err := h.Repo.FindByID(c.Request.Context(), strings.TrimSpace(req.Nickname))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusOK, msgLoginMismatch)
			return
		}
		respondStoreError(c, err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		respondError(c, http.StatusOK, msgLoginMismatch)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"user": user.Sanitized()})
}

// GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Repo.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Sanitized())
	}
	respondOK(c, http.StatusOK, gin.H{"users": out})
}
