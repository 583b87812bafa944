package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/perugo/perugo-api/internal/auth"
	"github.com/perugo/perugo-api/internal/config"
	"github.com/perugo/perugo-api/internal/domain"
	"github.com/perugo/perugo-api/internal/events"
	"github.com/perugo/perugo-api/internal/logger"
	"github.com/perugo/perugo-api/internal/mailer"
	"github.com/perugo/perugo-api/internal/repo/postgres"
)

type AuthService interface {
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error)
	Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error)
	Recover(ctx context.Context, req *domain.RecoverRequest) error
}

type authService struct {
	userRepo postgres.UserRepository
	mailer   mailer.Service
	eventBus events.Publisher
	config   *config.Config
}

func NewAuthService(
	userRepo postgres.UserRepository,
	mailer mailer.Service,
	eventBus events.Publisher,
	config *config.Config,
) AuthService {
	return &authService{
		userRepo: userRepo,
		mailer:   mailer,
		eventBus: eventBus,
		config:   config,
	}
}

func (s *authService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, domain.InternalError("Error interno del servidor", err)
	}
	if user == nil {
		return nil, domain.NotFoundError("Usuario no encontrado")
	}

	// Records created without a credential can never log in.
	if user.PasswordHash == nil {
		return nil, domain.AuthError("Contraseña incorrecta")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.AuthError("Contraseña incorrecta")
		}
		return nil, domain.InternalError("Error interno del servidor", err)
	}

	token, err := auth.NewToken(user.ID, user.Email, s.config.Auth.JWTSecret, s.config.Auth.TokenTTL)
	if err != nil {
		return nil, domain.InternalError("Error interno del servidor", err)
	}

	return &domain.AuthResponse{
		Message: "Inicio de sesión exitoso",
		Token:   token,
		User:    user.ToPublic(),
	}, nil
}

func (s *authService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.Auth.BcryptCost)
	if err != nil {
		return nil, domain.InternalError("Error interno del servidor", err)
	}

	var username *string
	if req.Username != "" {
		username = &req.Username
	}

	// Email uniqueness is enforced by the store's unique index; the insert
	// is the atomic check-and-create.
	hash := string(passwordHash)
	user, err := s.userRepo.Create(ctx, req.Email, username, &hash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ConflictError("El correo ya está registrado")
		}
		return nil, domain.InternalError("Error interno del servidor", err)
	}

	if err := s.eventBus.Publish(ctx, events.UserRegistered, events.UserRegisteredEvent{
		UserID:    user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}); err != nil {
		logger.WarnContext(ctx, "Failed to publish registration event", "error", err, "user_id", user.ID)
	}

	token, err := auth.NewToken(user.ID, user.Email, s.config.Auth.JWTSecret, s.config.Auth.TokenTTL)
	if err != nil {
		return nil, domain.InternalError("Error interno del servidor", err)
	}

	return &domain.AuthResponse{
		Message: "Usuario registrado exitosamente",
		Token:   token,
		User:    user.ToPublic(),
	}, nil
}

// Recover reports success whether or not the email has an account, so the
// route does not reveal which addresses are registered. When the account
// exists a reset email goes through the mailer seam (log-only in dev mode).
func (s *authService) Recover(ctx context.Context, req *domain.RecoverRequest) error {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return domain.InternalError("Error interno del servidor", err)
	}
	if user == nil {
		return nil
	}

	username := user.Email
	if user.Username != nil && *user.Username != "" {
		username = *user.Username
	}

	resetToken := uuid.NewString()
	if err := s.mailer.SendPasswordResetEmail(user.Email, username, resetToken); err != nil {
		logger.ErrorContext(ctx, "Failed to send password reset email", "error", err, "user_id", user.ID)
	}

	if err := s.eventBus.Publish(ctx, events.RecoveryRequested, events.RecoveryRequestedEvent{
		Email:       user.Email,
		RequestedAt: time.Now(),
	}); err != nil {
		logger.WarnContext(ctx, "Failed to publish recovery event", "error", err)
	}

	return nil
}
