package auth

import (
	"context"
	"errors"
	"time"

	"github.com/otuedon/shop-tracker/internal/models"
	"github.com/otuedon/shop-tracker/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCode is returned when the submitted OTP does not match.
	ErrInvalidCode = errors.New("invalid verification code")
	// ErrCodeExpired is returned when no code is pending for the phone number.
	ErrCodeExpired = errors.New("verification code expired")
	// ErrLockedOut is returned after too many failed verification attempts.
	ErrLockedOut = errors.New("too many attempts, try again later")
	// ErrInvalidRefresh is returned for unknown or already-rotated refresh tokens.
	ErrInvalidRefresh = errors.New("invalid refresh token")
)

// lockout window applied once the allowed tries are spent
const strikeWindow = 15 * time.Minute

// Service implements the phone-OTP identity flow: request a code, verify it,
// mint token pairs, rotate refresh tokens.
type Service struct {
	codes      CodeStore
	users      repo.UserRepository
	secret     []byte
	jwtTTL     time.Duration
	refreshTTL time.Duration
	otpTTL     time.Duration
	otpLength  int
	maxTries   int
}

type ServiceOptions struct {
	Secret     string
	JWTTTL     time.Duration
	RefreshTTL time.Duration
	OTPTTL     time.Duration
	OTPLength  int
	MaxTries   int
}

func NewService(codes CodeStore, users repo.UserRepository, opts ServiceOptions) *Service {
	return &Service{
		codes:      codes,
		users:      users,
		secret:     []byte(opts.Secret),
		jwtTTL:     opts.JWTTTL,
		refreshTTL: opts.RefreshTTL,
		otpTTL:     opts.OTPTTL,
		otpLength:  opts.OTPLength,
		maxTries:   opts.MaxTries,
	}
}

// TokenPair is what a successful verification or refresh hands back.
type TokenPair struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// RequestCode generates a fresh OTP for the phone number and parks its hash
// with a TTL. The plaintext code is returned so the caller can hand it to the
// SMS gateway (or log it in development).
func (s *Service) RequestCode(ctx context.Context, phone string) (string, error) {
	if locked, err := s.lockedOut(ctx, phone); err != nil {
		return "", err
	} else if locked {
		return "", ErrLockedOut
	}

	code, err := generateCode(s.otpLength)
	if err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	if err := s.codes.SaveCode(ctx, phone, string(hash), s.otpTTL); err != nil {
		return "", err
	}
	return code, nil
}

// VerifyCode checks the submitted code, and on success signs the user in,
// creating the account on first contact.
func (s *Service) VerifyCode(ctx context.Context, phone, code string) (TokenPair, models.User, error) {
	if locked, err := s.lockedOut(ctx, phone); err != nil {
		return TokenPair{}, models.User{}, err
	} else if locked {
		return TokenPair{}, models.User{}, ErrLockedOut
	}

	hash, err := s.codes.GetCode(ctx, phone)
	if err != nil {
		if errors.Is(err, ErrCodeNotFound) {
			return TokenPair{}, models.User{}, ErrCodeExpired
		}
		return TokenPair{}, models.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) != nil {
		if _, err := s.codes.IncrStrikes(ctx, phone, strikeWindow); err != nil {
			return TokenPair{}, models.User{}, err
		}
		return TokenPair{}, models.User{}, ErrInvalidCode
	}

	if err := s.codes.DeleteCode(ctx, phone); err != nil {
		return TokenPair{}, models.User{}, err
	}
	if err := s.codes.ClearStrikes(ctx, phone); err != nil {
		return TokenPair{}, models.User{}, err
	}

	user, err := s.users.CreateOrGetByPhone(phone)
	if err != nil {
		return TokenPair{}, models.User{}, err
	}

	pair, err := s.issuePair(ctx, user)
	return pair, user, err
}

// Refresh rotates a refresh token and mints a new access token.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	userID, err := s.codes.TakeRefresh(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, ErrRefreshNotFound) {
			return TokenPair{}, ErrInvalidRefresh
		}
		return TokenPair{}, err
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return TokenPair{}, ErrInvalidRefresh
	}
	return s.issuePair(ctx, user)
}

func (s *Service) lockedOut(ctx context.Context, phone string) (bool, error) {
	strikes, err := s.codes.Strikes(ctx, phone)
	if err != nil {
		return false, err
	}
	return strikes >= s.maxTries, nil
}
