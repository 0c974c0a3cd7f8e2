package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
	"github.com/yashalsharma/kirayadoor-backend/internal/testutil"
)

func newAuthFixture() (*AuthService, *testutil.MockOwnerRepository, *testutil.MockOTPSender) {
	ownerRepo := testutil.NewMockOwnerRepository()
	sender := testutil.NewMockOTPSender()
	return NewAuthService(ownerRepo, sender, "test-secret"), ownerRepo, sender
}

func TestRequestOTP_DeliversCode(t *testing.T) {
	authService, _, sender := newAuthFixture()

	attemptID, err := authService.RequestOTP("+919876543210")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if attemptID == uuid.Nil {
		t.Error("Expected a non-nil attempt ID")
	}
	code := sender.Sent["+919876543210"]
	if len(code) != OTPLength {
		t.Errorf("Expected a %d-digit code, got %q", OTPLength, code)
	}
}

func TestRequestOTP_InvalidPhone(t *testing.T) {
	authService, _, _ := newAuthFixture()

	for _, phone := range []string{"", "12345", "not-a-number", "+12a45678901"} {
		if _, err := authService.RequestOTP(phone); !errors.Is(err, domain.ErrInvalidPhone) {
			t.Errorf("Expected ErrInvalidPhone for %q, got %v", phone, err)
		}
	}
}

func TestRequestOTP_SenderFailure(t *testing.T) {
	authService, _, sender := newAuthFixture()
	sender.FailErr = errors.New("gateway down")

	if _, err := authService.RequestOTP("+919876543210"); err == nil {
		t.Error("Expected an error when the sender fails")
	}
}

func TestVerifyOTP_CreatesOwnerAndIssuesToken(t *testing.T) {
	authService, ownerRepo, sender := newAuthFixture()

	if _, err := authService.RequestOTP("+919876543210"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	token, owner, err := authService.VerifyOTP("+919876543210", sender.Sent["+919876543210"])
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if token == "" {
		t.Error("Expected a session token")
	}
	if owner == nil || owner.Phone != "+919876543210" {
		t.Fatalf("Expected owner for the verified phone, got %+v", owner)
	}
	if _, ok := ownerRepo.ByPhone["+919876543210"]; !ok {
		t.Error("Expected the owner persisted on first login")
	}

	ownerID, err := authService.ParseToken(token)
	if err != nil {
		t.Fatalf("Expected the issued token to parse, got %v", err)
	}
	if ownerID != owner.ID {
		t.Errorf("Expected owner ID %d from token, got %d", owner.ID, ownerID)
	}
}

func TestVerifyOTP_CodeIsSingleUse(t *testing.T) {
	authService, _, sender := newAuthFixture()

	if _, err := authService.RequestOTP("+919876543210"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	code := sender.Sent["+919876543210"]

	if _, _, err := authService.VerifyOTP("+919876543210", code); err != nil {
		t.Fatalf("Expected first verification to succeed, got %v", err)
	}
	if _, _, err := authService.VerifyOTP("+919876543210", code); !errors.Is(err, domain.ErrInvalidOTP) {
		t.Errorf("Expected ErrInvalidOTP on reuse, got %v", err)
	}
}

func TestVerifyOTP_WrongCodeLocksAfterMaxAttempts(t *testing.T) {
	authService, _, sender := newAuthFixture()

	if _, err := authService.RequestOTP("+919876543210"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for i := 0; i < MaxOTPAttempts; i++ {
		if _, _, err := authService.VerifyOTP("+919876543210", "000000"); !errors.Is(err, domain.ErrInvalidOTP) {
			t.Fatalf("Expected ErrInvalidOTP on wrong code, got %v", err)
		}
	}

	// The right code no longer works once the OTP is invalidated
	if _, _, err := authService.VerifyOTP("+919876543210", sender.Sent["+919876543210"]); !errors.Is(err, domain.ErrInvalidOTP) {
		t.Errorf("Expected ErrInvalidOTP after lockout, got %v", err)
	}
}

func TestVerifyOTP_ExpiredCode(t *testing.T) {
	authService, _, sender := newAuthFixture()

	base := time.Now()
	authService.now = func() time.Time { return base }
	if _, err := authService.RequestOTP("+919876543210"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	authService.now = func() time.Time { return base.Add(OTPTTL + time.Minute) }
	if _, _, err := authService.VerifyOTP("+919876543210", sender.Sent["+919876543210"]); !errors.Is(err, domain.ErrInvalidOTP) {
		t.Errorf("Expected ErrInvalidOTP after expiry, got %v", err)
	}
}

func TestParseToken_Invalid(t *testing.T) {
	authService, _, _ := newAuthFixture()
	other := NewAuthService(testutil.NewMockOwnerRepository(), testutil.NewMockOTPSender(), "other-secret")

	if _, err := authService.ParseToken("not-a-token"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("Expected ErrUnauthorized for garbage, got %v", err)
	}

	otherToken, err := other.issueToken(7)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := authService.ParseToken(otherToken); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("Expected ErrUnauthorized for a foreign signature, got %v", err)
	}
}

func TestUpdateProfile_RequiresName(t *testing.T) {
	authService, ownerRepo, _ := newAuthFixture()
	ownerRepo.AddOwner(&domain.Owner{ID: 1, Phone: "+919876543210"})

	if _, err := authService.UpdateProfile(1, "   ", nil); !errors.Is(err, domain.ErrNameRequired) {
		t.Errorf("Expected ErrNameRequired, got %v", err)
	}

	email := "asha@example.com"
	owner, err := authService.UpdateProfile(1, "Asha", &email)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if owner.Name != "Asha" || owner.Email == nil || *owner.Email != email {
		t.Errorf("Expected profile updated, got %+v", owner)
	}
}
