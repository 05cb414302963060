package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dilshodmuxtorov/TodoLIstApi/domain"
)

// AccountServiceImpl implements domain.AccountService
type AccountServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpSvc      domain.OTPService
}

// NewAccountService creates a new account service
func NewAccountService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
) domain.AccountService {
	return &AccountServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpSvc:      otpSvc,
	}
}

// Register implements domain.AccountService. The account starts inactive and
// stays unusable until the emailed code is confirmed.
func (s *AccountServiceImpl) Register(ctx context.Context, name, surname string, age int, email, password string) (*domain.User, *domain.TokenPair, error) {
	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	code, err := domain.NewVerificationCode()
	if err != nil {
		return nil, nil, err
	}

	// The throttle is checked before the row exists: a registration that
	// cannot be mailed must not leave an unactivatable account behind.
	if canResend, waitTime, err := s.otpSvc.CanResend(ctx, email); err != nil {
		return nil, nil, err
	} else if !canResend {
		return nil, nil, fmt.Errorf("%w: please wait %d seconds", domain.ErrOTPResendLimit, waitTime)
	}

	user := &domain.User{
		Name:         name,
		Surname:      surname,
		Age:          age,
		Email:        email,
		PasswordHash: hashedPassword,
		OTP:          code,
		IsActive:     false,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.otpSvc.Dispatch(ctx, user.Email, code); err != nil {
		// The code never reached the mailbox, so the row can never be
		// activated. Remove it so the address is free to register again.
		if delErr := s.userRepo.Delete(ctx, user.ID); delErr != nil {
			log.Printf("ACCOUNT_CLEANUP_FAILED: user_id=%d email=%s error=%v", user.ID, user.Email, delErr)
		}
		return nil, nil, err
	}

	tokens, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, tokens, nil
}

// Verify implements domain.AccountService. A matching code activates the
// account and clears the stored code. A mismatch destroys the account, but
// only while it is still inactive: once activated, the stored code is empty
// and a stray re-submission must not take the account down with it.
func (s *AccountServiceImpl) Verify(ctx context.Context, userID uint, code string) (bool, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}

	if user.OTP != "" && user.OTP == code {
		if err := s.userRepo.Activate(ctx, user.ID); err != nil {
			return false, err
		}
		log.Printf("ACCOUNT_ACTIVATED: user_id=%d email=%s timestamp=%s",
			user.ID, user.Email, time.Now().UTC().Format(time.RFC3339))
		return true, nil
	}

	if !user.IsActive {
		if err := s.userRepo.Delete(ctx, user.ID); err != nil {
			return false, err
		}
		log.Printf("ACCOUNT_DESTROYED: user_id=%d email=%s reason=wrong_verification_code timestamp=%s",
			user.ID, user.Email, time.Now().UTC().Format(time.RFC3339))
	}

	return false, nil
}

// Login implements domain.AccountService. Unknown email and wrong password
// are reported identically.
func (s *AccountServiceImpl) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueTokens(user.ID)
}

// Profile implements domain.AccountService
func (s *AccountServiceImpl) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

func (s *AccountServiceImpl) issueTokens(userID uint) (*domain.TokenPair, error) {
	accessToken, err := s.tokenSvc.GenerateAccessToken(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.tokenSvc.GenerateRefreshToken(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
