package domain

import (
	"regexp"
	"strings"
	"time"
)

type User struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	Username *string `json:"username"`
	// PasswordHash is nullable: some records exist without a credential.
	PasswordHash *string   `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicUser is the subset of a user record safe to return to clients.
type PublicUser struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	Username *string `json:"username"`
}

func (u *User) ToPublic() *PublicUser {
	return &PublicUser{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
	}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RecoverRequest struct {
	Email string `json:"email"`
}

// AuthResponse is the success envelope for login and registration.
type AuthResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    *PublicUser `json:"user"`
}

const MinPasswordLength = 6

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func (r *RegisterRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Username = strings.TrimSpace(r.Username)
}

func (r *RegisterRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return ValidationError("Correo y contraseña son obligatorios")
	}
	if !emailRegex.MatchString(r.Email) {
		return ValidationError("Formato de correo inválido")
	}
	if len(r.Password) < MinPasswordLength {
		return ValidationError("La contraseña debe tener al menos 6 caracteres")
	}
	return nil
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return ValidationError("Correo y contraseña son obligatorios")
	}
	return nil
}

func (r *RecoverRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *RecoverRequest) Validate() error {
	if r.Email == "" {
		return ValidationError("El correo es obligatorio")
	}
	return nil
}
