package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dilshodmuxtorov/TodoLIstApi/domain"
)

// OTPServiceImpl implements domain.OTPService. Verification codes live on the
// user record; Redis only tracks the per-address resend window so a mailbox
// cannot be flooded by repeated registrations.
type OTPServiceImpl struct {
	notificationSvc domain.NotificationService
	redisClient     *redis.Client
	resendWindow    time.Duration
}

// NewOTPService creates a new OTP dispatch service
func NewOTPService(notificationSvc domain.NotificationService, redisClient *redis.Client, resendWindow time.Duration) domain.OTPService {
	return &OTPServiceImpl{
		notificationSvc: notificationSvc,
		redisClient:     redisClient,
		resendWindow:    resendWindow,
	}
}

// Dispatch implements domain.OTPService
func (s *OTPServiceImpl) Dispatch(ctx context.Context, email, code string) error {
	resendKey := fmt.Sprintf("otp:res:%s", email)

	if canResend, waitTime, err := s.CanResend(ctx, email); err != nil {
		return err
	} else if !canResend {
		return fmt.Errorf("%w: please wait %d seconds", domain.ErrOTPResendLimit, waitTime)
	}

	if err := s.redisClient.Set(ctx, resendKey, 1, s.resendWindow).Err(); err != nil {
		return fmt.Errorf("failed to set resend throttle: %w", err)
	}

	body := fmt.Sprintf("Your verification code is: %s", code)
	if err := s.notificationSvc.SendEmail(email, "Verification Code", body); err != nil {
		// Release the throttle so a delivery outage does not lock the address out
		s.redisClient.Del(ctx, resendKey)
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	return nil
}

// CanResend implements domain.OTPService
func (s *OTPServiceImpl) CanResend(ctx context.Context, email string) (bool, int64, error) {
	resendKey := fmt.Sprintf("otp:res:%s", email)

	ttl, err := s.redisClient.TTL(ctx, resendKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check resend TTL: %w", err)
	}

	// If TTL <= 0, key doesn't exist or has expired - can resend
	if ttl <= 0 {
		return true, 0, nil
	}

	return false, int64(ttl.Seconds()), nil
}
