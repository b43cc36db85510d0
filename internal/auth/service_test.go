package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/otuedon/shop-tracker/internal/repo"
)

func newTestService() (*Service, *InMemoryCodeStore) {
	codes := NewInMemoryCodeStore()
	svc := NewService(codes, repo.NewInMemoryUserRepository(), ServiceOptions{
		Secret:     "test-secret",
		JWTTTL:     time.Hour,
		RefreshTTL: 24 * time.Hour,
		OTPTTL:     10 * time.Minute,
		OTPLength:  6,
		MaxTries:   3,
	})
	return svc, codes
}

func TestService_RequestAndVerify(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	code, err := svc.RequestCode(ctx, "+2348000000001")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("expected a 6-digit code, got %q", code)
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			t.Fatalf("expected digits only, got %q", code)
		}
	}

	pair, user, err := svc.VerifyCode(ctx, "+2348000000001", code)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if user.ID == "" || user.Phone != "+2348000000001" {
		t.Errorf("unexpected user %+v", user)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Error("expected a full token pair")
	}

	sub, err := svc.ParseToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sub != user.ID {
		t.Errorf("expected sub %q, got %q", user.ID, sub)
	}
}

func TestService_VerifyIsSingleUse(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	code, _ := svc.RequestCode(ctx, "+2348000000002")
	if _, _, err := svc.VerifyCode(ctx, "+2348000000002", code); err != nil {
		t.Fatalf("first verify: %v", err)
	}
	if _, _, err := svc.VerifyCode(ctx, "+2348000000002", code); !errors.Is(err, ErrCodeExpired) {
		t.Errorf("expected ErrCodeExpired on reuse, got %v", err)
	}
}

func TestService_WrongCode(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.RequestCode(ctx, "+2348000000003"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.VerifyCode(ctx, "+2348000000003", "000000"); !errors.Is(err, ErrInvalidCode) {
		t.Errorf("expected ErrInvalidCode, got %v", err)
	}
}

func TestService_LockoutAfterMaxTries(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	phone := "+2348000000004"

	code, _ := svc.RequestCode(ctx, phone)
	for i := 0; i < 3; i++ {
		if _, _, err := svc.VerifyCode(ctx, phone, "999999"); !errors.Is(err, ErrInvalidCode) {
			t.Fatalf("try %d: expected ErrInvalidCode, got %v", i, err)
		}
	}

	// even the right code is refused now
	if _, _, err := svc.VerifyCode(ctx, phone, code); !errors.Is(err, ErrLockedOut) {
		t.Errorf("expected ErrLockedOut on verify, got %v", err)
	}
	if _, err := svc.RequestCode(ctx, phone); !errors.Is(err, ErrLockedOut) {
		t.Errorf("expected ErrLockedOut on request, got %v", err)
	}
}

func TestService_SuccessClearsStrikes(t *testing.T) {
	svc, codes := newTestService()
	ctx := context.Background()
	phone := "+2348000000005"

	code, _ := svc.RequestCode(ctx, phone)
	svc.VerifyCode(ctx, phone, "999999")
	svc.VerifyCode(ctx, phone, "999999")
	if _, _, err := svc.VerifyCode(ctx, phone, code); err != nil {
		t.Fatalf("verify: %v", err)
	}

	strikes, _ := codes.Strikes(ctx, phone)
	if strikes != 0 {
		t.Errorf("expected strikes cleared, got %d", strikes)
	}
}

func TestService_ExpiredCode(t *testing.T) {
	svc, codes := newTestService()
	ctx := context.Background()

	code, _ := svc.RequestCode(ctx, "+2348000000006")
	codes.now = func() time.Time { return time.Now().Add(11 * time.Minute) }

	if _, _, err := svc.VerifyCode(ctx, "+2348000000006", code); !errors.Is(err, ErrCodeExpired) {
		t.Errorf("expected ErrCodeExpired, got %v", err)
	}
}

func TestService_RefreshRotates(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	code, _ := svc.RequestCode(ctx, "+2348000000007")
	pair, user, err := svc.VerifyCode(ctx, "+2348000000007", code)
	if err != nil {
		t.Fatal(err)
	}

	next, err := svc.Refresh(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if next.RefreshToken == pair.RefreshToken {
		t.Error("expected a rotated refresh token")
	}
	if sub, _ := svc.ParseToken(next.AccessToken); sub != user.ID {
		t.Errorf("expected sub %q, got %q", user.ID, sub)
	}

	// the spent token is gone
	if _, err := svc.Refresh(ctx, pair.RefreshToken); !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("expected ErrInvalidRefresh on reuse, got %v", err)
	}
}

func TestService_RefreshUnknownToken(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Refresh(context.Background(), "not-a-token"); !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("expected ErrInvalidRefresh, got %v", err)
	}
}

func TestService_ParseRejectsForeignToken(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	code, _ := svc.RequestCode(ctx, "+2348000000008")
	pair, _, err := svc.VerifyCode(ctx, "+2348000000008", code)
	if err != nil {
		t.Fatal(err)
	}

	tampered := NewService(NewInMemoryCodeStore(), repo.NewInMemoryUserRepository(), ServiceOptions{
		Secret: "different-secret", JWTTTL: time.Hour, RefreshTTL: time.Hour,
		OTPTTL: time.Minute, OTPLength: 6, MaxTries: 3,
	})
	if _, err := tampered.ParseToken(pair.AccessToken); err == nil {
		t.Error("expected a signature mismatch")
	}
}
