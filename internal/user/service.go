package user

import (
	"log/slog"

	"github.com/yellomango9/it-mgmt-tool/internal"
	"github.com/yellomango9/it-mgmt-tool/internal/auth"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Register hashes the password and persists a new account. Role defaults to
// "User" when not supplied.
func (s *Service) Register(dto RegisterDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(dto.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, internal.NewInternalError("Internal server error", err)
	}

	role := dto.Role
	if role == "" {
		role = auth.RoleUser
	}

	u := &User{
		FullName:     dto.FullName,
		Email:        dto.Email,
		PasswordHash: hash,
		Role:         role,
		DepartmentID: dto.DepartmentID,
		IsActive:     true,
	}

	if err := s.repo.Create(u); err != nil {
		s.logger.Error("failed to create user", "error", err, "email", dto.Email)
		return nil, internal.NewInternalError("Internal server error", err)
	}

	s.logger.Info("user registered", "user_id", u.ID, "email", u.Email, "role", u.Role)
	return u, nil
}

// Login authenticates an active account by email and password. Unknown
// email and wrong password produce the identical unauthorized error; a
// malformed stored hash verifies as a wrong password, never as a fault.
func (s *Service) Login(dto LoginDTO) (*PublicUser, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetActiveByEmail(dto.Email)
	if err != nil {
		if err != ErrUserNotFound {
			s.logger.Error("login lookup failed", "error", err)
		}
		return nil, internal.ErrInvalidCredentials
	}

	if !auth.VerifyPassword(u.PasswordHash, dto.Password) {
		return nil, internal.ErrInvalidCredentials
	}

	s.logger.Info("user logged in", "user_id", u.ID, "role", u.Role)
	public := u.Public()
	return &public, nil
}
