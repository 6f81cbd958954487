package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/clinicsync/internal/crypto"
	"github.com/iudanet/clinicsync/internal/models"
	"github.com/iudanet/clinicsync/internal/server/storage"
	"github.com/iudanet/clinicsync/internal/validation"
	"github.com/iudanet/clinicsync/pkg/api"
)

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger      *slog.Logger
	userStorage storage.UserStorage
	now         func() time.Time
	jwtConfig   JWTConfig
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, userStorage storage.UserStorage, jwtConfig JWTConfig) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		userStorage: userStorage,
		jwtConfig:   jwtConfig,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Register обрабатывает POST /api/v1/auth/register
// Регистрация нового пользователя
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode register request", slog.Any("error", err))
		SendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateUsername(req.Username); err != nil {
		h.logger.WarnContext(ctx, "invalid username", slog.String("username", req.Username), slog.Any("error", err))
		SendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	// Проверка обязательных полей
	if req.AuthKeyHash == "" {
		SendError(h.logger, w, "auth_key_hash is required", http.StatusBadRequest)
		return
	}
	if req.PublicSalt == "" {
		SendError(h.logger, w, "public_salt is required", http.StatusBadRequest)
		return
	}

	now := h.now()
	user := &models.User{
		ID:          uuid.New().String(),
		Username:    req.Username,
		AuthKeyHash: req.AuthKeyHash, // SHA256 хеш auth_key от клиента
		PublicSalt:  req.PublicSalt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.userStorage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "user already exists", slog.String("username", req.Username))
			SendError(h.logger, w, "username already taken", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		SendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully",
		slog.String("username", req.Username),
		slog.String("user_id", user.ID))

	sendJSON(h.logger, w, api.RegisterResponse{
		UserID:  user.ID,
		Message: "User registered successfully",
	}, http.StatusCreated)
}

// GetSalt обрабатывает GET /api/v1/auth/salt/{username}
// Получение public_salt пользователя
func (h *AuthHandler) GetSalt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username := r.PathValue("username")
	if err := validation.ValidateUsername(username); err != nil {
		h.logger.WarnContext(ctx, "invalid username", slog.String("username", username), slog.Any("error", err))
		SendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.userStorage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "user not found", slog.String("username", username))
			SendError(h.logger, w, "user not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		SendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.SaltResponse{PublicSalt: user.PublicSalt}, http.StatusOK)
}

// Login обрабатывает POST /api/v1/auth/login
// Аутентификация пользователя
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		SendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateUsername(req.Username); err != nil {
		h.logger.WarnContext(ctx, "invalid username", slog.String("username", req.Username), slog.Any("error", err))
		SendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.AuthKeyHash == "" {
		SendError(h.logger, w, "auth_key_hash is required", http.StatusBadRequest)
		return
	}

	user, err := h.userStorage.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login failed: user not found", slog.String("username", req.Username))
			SendError(h.logger, w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		SendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := crypto.VerifyAuthKeyHash(req.AuthKeyHash, user.AuthKeyHash); err != nil {
		h.logger.WarnContext(ctx, "login failed: invalid auth key", slog.String("username", req.Username))
		SendError(h.logger, w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	accessToken, expiresIn, err := GenerateAccessToken(h.jwtConfig, user.ID, user.Username)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		SendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.userStorage.UpdateLastLogin(ctx, user.ID, h.now()); err != nil {
		// Не критичная ошибка, логируем но не прерываем
		h.logger.WarnContext(ctx, "failed to update last login", slog.Any("error", err))
	}

	h.logger.InfoContext(ctx, "user logged in successfully",
		slog.String("username", req.Username),
		slog.String("user_id", user.ID))

	sendJSON(h.logger, w, api.TokenResponse{
		AccessToken: accessToken,
		UserID:      user.ID,
		ExpiresIn:   expiresIn,
	}, http.StatusOK)
}
