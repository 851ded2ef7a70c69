package auth

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mrlokans/shelf/internal/config"
	"github.com/mrlokans/shelf/internal/database"
	"github.com/mrlokans/shelf/internal/entities"
)

// emailPattern only requires a single "@" between non-empty parts, so hosts
// without a dot such as user@localhost are accepted.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)

var ErrInvalidCredentials = errors.New("invalid email or password")

// Messages returned to clients in a ValidationError.
const (
	msgEmailRequired = "Email is required"
	msgEmailInvalid  = "Email is not a valid email address"
	msgEmailTaken    = "Email is already taken"
	msgPasswordLong  = "Password must be at most 72 bytes"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(email, passwordHash string) (*entities.User, error)
	GetByID(id string) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	ExistsByEmail(email string) (bool, error)
	Count() (int64, error)
}

// ValidationError lists every reason a registration was rejected.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	Token     string
	Email     string
	UserID    string
	ExpiresAt time.Time
}

// Service handles registration and login.
type Service struct {
	users  UserRepository
	issuer *TokenIssuer
	config config.Auth
}

// NewService creates a new authentication service.
func NewService(users UserRepository, issuer *TokenIssuer, cfg config.Auth) *Service {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = 12
	}
	if cfg.MinPasswordLength == 0 {
		cfg.MinPasswordLength = config.DefaultMinPasswordLength
	}
	return &Service{
		users:  users,
		issuer: issuer,
		config: cfg,
	}
}

// Register creates a user with a hashed password. Every validation problem
// is reported at once in a *ValidationError.
func (s *Service) Register(email, password string) (*entities.User, error) {
	email = strings.TrimSpace(email)
	var problems []string

	switch {
	case email == "":
		problems = append(problems, msgEmailRequired)
	case len(email) > 254 || !emailPattern.MatchString(email):
		problems = append(problems, msgEmailInvalid)
	default:
		exists, err := s.users.ExistsByEmail(email)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing user: %w", err)
		}
		if exists {
			problems = append(problems, msgEmailTaken)
		}
	}

	if err := ValidatePassword(password, s.config.MinPasswordLength); err != nil {
		problems = append(problems, passwordMessage(err, s.config.MinPasswordLength))
	}

	if len(problems) > 0 {
		return nil, &ValidationError{Errors: problems}
	}

	passwordHash, err := HashPassword(password, s.config.BcryptCost, s.config.MinPasswordLength)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Create(email, passwordHash)
	if err != nil {
		// Lost a race with a concurrent registration of the same email.
		if exists, checkErr := s.users.ExistsByEmail(email); checkErr == nil && exists {
			return nil, &ValidationError{Errors: []string{msgEmailTaken}}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login checks the credentials and mints a bearer token. An unknown email
// and a wrong password are indistinguishable to the caller.
func (s *Service) Login(email, password string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := CheckPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, ErrInvalidPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	token, claims, err := s.issuer.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &LoginResult{
		Token:     token,
		Email:     user.Email,
		UserID:    user.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// UserCount returns the number of registered users.
func (s *Service) UserCount() (int64, error) {
	return s.users.Count()
}

func passwordMessage(err error, minLength int) string {
	if errors.Is(err, ErrPasswordTooLong) {
		return msgPasswordLong
	}
	return fmt.Sprintf("Password must be at least %d characters", minLength)
}
