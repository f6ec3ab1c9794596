package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"
	"github.com/carlossangronio-sudo/eden-garden/internal/repository"
	"github.com/carlossangronio-sudo/eden-garden/internal/sanitize"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const (
	// BcryptCost is the work factor for stored password hashes.
	BcryptCost = 10

	// MinPasswordLength applies to new passwords.
	MinPasswordLength = 8

	maxEmailLength = 100
)

// credentialService implements CredentialService.
type credentialService struct {
	adminRepo repository.AdminRepository
	logger    zerolog.Logger

	dummyOnce sync.Once
	dummyHash []byte
}

// NewCredentialService creates a new credential service.
func NewCredentialService(adminRepo repository.AdminRepository, logger zerolog.Logger) CredentialService {
	return &credentialService{
		adminRepo: adminRepo,
		logger:    logger.With().Str("service", "credential").Logger(),
	}
}

// HashPassword hashes plaintext with BcryptCost.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// burnComparison spends one bcrypt comparison against a fixed hash.
func (s *credentialService) burnComparison(plaintext string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("eden-garden-unknown-account"), BcryptCost)
	})
	_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(plaintext))
}

func (s *credentialService) Authenticate(ctx context.Context, email, password string) (*model.AdminAccount, error) {
	email = sanitize.Email(email, maxEmailLength)
	if !sanitize.ValidateEmail(email) {
		return nil, model.ErrInvalidEmail
	}

	account, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to look up admin")
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if account == nil {
		s.burnComparison(password)
		s.logger.Info().Msg("login rejected")
		return nil, model.ErrInvalidCredentials
	}

	if !s.VerifyPassword(account, password) {
		s.logger.Info().Int64("admin_id", account.ID).Msg("login rejected")
		return nil, model.ErrInvalidCredentials
	}

	s.logger.Info().Int64("admin_id", account.ID).Msg("admin authenticated")
	return account, nil
}

func (s *credentialService) FindByEmail(ctx context.Context, email string) (*model.AdminAccount, error) {
	account, err := s.adminRepo.GetByEmail(ctx, sanitize.Email(email, maxEmailLength))
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	if account == nil {
		return nil, model.ErrAdminNotFound
	}
	return account, nil
}

func (s *credentialService) FindByID(ctx context.Context, id int64) (*model.AdminAccount, error) {
	account, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	if account == nil {
		return nil, model.ErrAdminNotFound
	}
	return account, nil
}

func (s *credentialService) VerifyPassword(account *model.AdminAccount, plaintext string) bool {
	if account == nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(plaintext)) == nil
}

func (s *credentialService) UpdatePassword(ctx context.Context, account *model.AdminAccount, plaintext string) error {
	hash, err := HashPassword(plaintext)
	if err != nil {
		return err
	}

	if err := s.adminRepo.UpdatePassword(ctx, account.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	account.PasswordHash = hash
	s.logger.Info().Int64("admin_id", account.ID).Msg("password changed")
	return nil
}

func (s *credentialService) ChangePassword(ctx context.Context, adminID int64, req *model.PasswordChangeRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" || req.ConfirmPassword == "" {
		return model.ErrPasswordFieldsEmpty
	}

	if len([]rune(req.NewPassword)) < MinPasswordLength {
		return model.ErrPasswordTooShort
	}

	if req.NewPassword != req.ConfirmPassword {
		return model.ErrPasswordMismatch
	}

	account, err := s.FindByID(ctx, adminID)
	if err != nil {
		return err
	}

	if !s.VerifyPassword(account, req.CurrentPassword) {
		s.logger.Warn().Int64("admin_id", adminID).Msg("password change rejected: wrong current password")
		return model.ErrCurrentPasswordWrong
	}

	return s.UpdatePassword(ctx, account, req.NewPassword)
}

func (s *credentialService) Provision(ctx context.Context, email, password string) (bool, error) {
	email = sanitize.Email(email, maxEmailLength)
	if !sanitize.ValidateEmail(email) {
		return false, model.ErrInvalidEmail
	}
	if len([]rune(password)) < MinPasswordLength {
		return false, model.ErrPasswordTooShort
	}

	existing, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to look up admin: %w", err)
	}
	if existing != nil {
		s.logger.Debug().Int64("admin_id", existing.ID).Msg("admin already provisioned")
		return false, nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		return false, err
	}

	account, err := s.adminRepo.Create(ctx, email, hash)
	if err != nil {
		return false, fmt.Errorf("failed to provision admin: %w", err)
	}

	s.logger.Info().Int64("admin_id", account.ID).Msg("admin provisioned")
	return true, nil
}

