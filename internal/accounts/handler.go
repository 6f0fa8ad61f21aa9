package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avolkov/fittrack/internal/auth"
	"github.com/avolkov/fittrack/internal/middleware"
	"github.com/avolkov/fittrack/internal/telemetry/tracing"
	"github.com/avolkov/fittrack/pkg"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=accounts_test

const minPasswordLength = 8

type accountsRepo interface {
	Create(ctx context.Context, email, displayName, passwordHash string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id int) (*Account, error)
	UpdateDisplayName(ctx context.Context, id int, displayName string) error
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
}

type authService interface {
	Login(ctx context.Context, accountID int) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
	CreatePasswordResetToken(ctx context.Context, accountID int) (string, error)
	ConsumePasswordResetToken(ctx context.Context, token string) (int, error)
}

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionResponse struct {
	Token   string   `json:"token"`
	Account *Account `json:"account"`
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

type PasswordResetConfirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

type UpdateProfileRequest struct {
	DisplayName     string `json:"displayName,omitempty"`
	CurrentPassword string `json:"currentPassword,omitempty"`
	NewPassword     string `json:"newPassword,omitempty"`
}

type Handler struct {
	repo        accountsRepo
	authService authService
}

func NewHandler(repo accountsRepo, authService authService) *Handler {
	return &Handler{
		repo:        repo,
		authService: authService,
	}
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.accounts.register")
	defer span.End()

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("register, unmarshal json params: %s", err)
		http.Error(w, "register failed", http.StatusBadRequest)
		return
	}

	if !ValidEmail(req.Email) {
		http.Error(w, "error, invalid email", http.StatusBadRequest)
		return
	}
	if req.DisplayName == "" {
		http.Error(w, "error, display name empty", http.StatusBadRequest)
		return
	}
	if len(req.Password) < minPasswordLength {
		http.Error(w, "error, password too short", http.StatusBadRequest)
		return
	}

	passwordHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		log.Errorf("register, hash password: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	account, err := handler.repo.Create(ctx, req.Email, req.DisplayName, passwordHash)
	switch {
	case errors.Is(err, ErrEmailTaken):
		http.Error(w, "email already taken", http.StatusConflict)
		return
	case err != nil:
		log.Errorf("register, create account: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	token, err := handler.authService.Login(ctx, account.ID)
	if err != nil {
		log.Errorf("register, login for new account %d: %s", account.ID, err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	log.Printf("new account registered: %d [%s]", account.ID, account.Email)
	writeSession(w, token, account, http.StatusCreated)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.accounts.login")
	defer span.End()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("login, unmarshal json params: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "error, email or password empty", http.StatusBadRequest)
		return
	}

	account, err := handler.repo.GetByEmail(ctx, req.Email)
	switch {
	case errors.Is(err, ErrAccountNotFound):
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	case err != nil:
		log.Errorf("login, get account: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	if !pkg.CheckPasswordHash(req.Password, account.PasswordHash) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := handler.authService.Login(ctx, account.ID)
	if err != nil {
		log.Errorf("login for account %d: %s", account.ID, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	log.Tracef("account %d [%s] logged in", account.ID, account.Email)
	writeSession(w, token, account, http.StatusOK)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.accounts.logout")
	defer span.End()

	token := r.Header.Get(middleware.AuthTokenHeader)
	if token == "" {
		http.Error(w, "error, auth token empty", http.StatusBadRequest)
		return
	}

	loggedOut, err := handler.authService.Logout(ctx, token)
	if err != nil {
		log.Errorf("logout: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}
	if !loggedOut {
		http.Error(w, "no session", http.StatusBadRequest)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) HandlePasswordResetRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.accounts.passwordReset")
	defer span.End()

	var req PasswordResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("password reset, unmarshal json params: %s", err)
		http.Error(w, "password reset failed", http.StatusBadRequest)
		return
	}
	if !ValidEmail(req.Email) {
		http.Error(w, "error, invalid email", http.StatusBadRequest)
		return
	}

	// the response never reveals whether the email is registered
	account, err := handler.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, ErrAccountNotFound) {
			log.Errorf("password reset, get account: %s", err)
		}
		pkg.WriteTextResponseOK(w, "reset-requested")
		return
	}

	token, err := handler.authService.CreatePasswordResetToken(ctx, account.ID)
	if err != nil {
		log.Errorf("password reset, create token for account %d: %s", account.ID, err)
		pkg.WriteTextResponseOK(w, "reset-requested")
		return
	}

	// TODO: send the token via email once a mailer is in place,
	// until then it is only visible in the logs
	log.Warnf("password reset token for account %d created: %s", account.ID, token)
	pkg.WriteTextResponseOK(w, "reset-requested")
}

func (handler *Handler) HandlePasswordResetConfirm(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.accounts.passwordResetConfirm")
	defer span.End()

	var req PasswordResetConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("password reset confirm, unmarshal json params: %s", err)
		http.Error(w, "password reset failed", http.StatusBadRequest)
		return
	}
	if req.Token == "" {
		http.Error(w, "error, token empty", http.StatusBadRequest)
		return
	}
	if len(req.NewPassword) < minPasswordLength {
		http.Error(w, "error, password too short", http.StatusBadRequest)
		return
	}

	accountID, err := handler.authService.ConsumePasswordResetToken(ctx, req.Token)
	switch {
	case errors.Is(err, auth.ErrInvalidResetToken):
		http.Error(w, "invalid reset token", http.StatusBadRequest)
		return
	case err != nil:
		log.Errorf("password reset confirm, consume token: %s", err)
		http.Error(w, "password reset failed", http.StatusInternalServerError)
		return
	}

	passwordHash, err := pkg.HashPassword(req.NewPassword)
	if err != nil {
		log.Errorf("password reset confirm, hash password: %s", err)
		http.Error(w, "password reset failed", http.StatusInternalServerError)
		return
	}

	if err := handler.repo.UpdatePassword(ctx, accountID, passwordHash); err != nil {
		log.Errorf("password reset confirm, update password for account %d: %s", accountID, err)
		http.Error(w, "password reset failed", http.StatusInternalServerError)
		return
	}

	log.Printf("account %d: password reset done", accountID)
	pkg.WriteTextResponseOK(w, "password-updated")
}

func (handler *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.accounts.updateProfile")
	defer span.End()

	accountID, ok := auth.AccountIDFromContext(ctx)
	if !ok {
		http.Error(w, "no auth", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("update account, unmarshal json params: %s", err)
		http.Error(w, "update account failed", http.StatusBadRequest)
		return
	}
	if req.DisplayName == "" && req.NewPassword == "" {
		http.Error(w, "error, nothing to update", http.StatusBadRequest)
		return
	}

	if req.DisplayName != "" {
		if err := handler.repo.UpdateDisplayName(ctx, accountID, req.DisplayName); err != nil {
			log.Errorf("update account %d display name: %s", accountID, err)
			http.Error(w, "update account failed", http.StatusInternalServerError)
			return
		}
	}

	if req.NewPassword != "" {
		if len(req.NewPassword) < minPasswordLength {
			http.Error(w, "error, password too short", http.StatusBadRequest)
			return
		}

		account, err := handler.repo.GetByID(ctx, accountID)
		if err != nil {
			log.Errorf("update account %d, get account: %s", accountID, err)
			http.Error(w, "update account failed", http.StatusInternalServerError)
			return
		}
		if !pkg.CheckPasswordHash(req.CurrentPassword, account.PasswordHash) {
			http.Error(w, "invalid current password", http.StatusUnauthorized)
			return
		}

		passwordHash, err := pkg.HashPassword(req.NewPassword)
		if err != nil {
			log.Errorf("update account %d, hash password: %s", accountID, err)
			http.Error(w, "update account failed", http.StatusInternalServerError)
			return
		}
		if err := handler.repo.UpdatePassword(ctx, accountID, passwordHash); err != nil {
			log.Errorf("update account %d password: %s", accountID, err)
			http.Error(w, "update account failed", http.StatusInternalServerError)
			return
		}
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func writeSession(w http.ResponseWriter, token string, account *Account, statusCode int) {
	sessionJSON, err := json.Marshal(SessionResponse{Token: token, Account: account})
	if err != nil {
		log.Errorf("failed to marshal session: %s", err)
		http.Error(w, "failed to marshal session", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJSON, statusCode)
}
