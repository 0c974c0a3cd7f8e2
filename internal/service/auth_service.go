package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
)

const (
	// OTPLength is the number of digits in a login code
	OTPLength = 6
	// OTPTTL is how long a code stays valid
	OTPTTL = 5 * time.Minute
	// TokenTTL is how long an issued session token stays valid
	TokenTTL = 30 * 24 * time.Hour
	// MaxOTPAttempts is the number of wrong codes before the OTP is invalidated
	MaxOTPAttempts = 3
)

// OTPSender delivers a login code to a phone number
type OTPSender interface {
	SendOTP(phone, code string) error
}

type otpEntry struct {
	code      string
	attemptID uuid.UUID
	expiresAt time.Time
	attempts  int
}

// AuthService handles phone-OTP login and session token issuance.
// Pending codes live in process memory; a restart invalidates them,
// which is acceptable for a 5-minute TTL.
type AuthService struct {
	ownerRepo domain.OwnerRepository
	sender    OTPSender
	secret    []byte

	mu    sync.Mutex
	codes map[string]*otpEntry

	now func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(ownerRepo domain.OwnerRepository, sender OTPSender, secret string) *AuthService {
	return &AuthService{
		ownerRepo: ownerRepo,
		sender:    sender,
		secret:    []byte(secret),
		codes:     make(map[string]*otpEntry),
		now:       time.Now,
	}
}

// RequestOTP generates a login code for the phone number and hands it
// to the sender. A repeat request replaces any outstanding code.
func (s *AuthService) RequestOTP(phone string) (uuid.UUID, error) {
	phone = strings.TrimSpace(phone)
	if !validPhone(phone) {
		return uuid.Nil, domain.ErrInvalidPhone
	}

	code, err := generateOTP()
	if err != nil {
		return uuid.Nil, err
	}

	entry := &otpEntry{
		code:      code,
		attemptID: uuid.New(),
		expiresAt: s.now().Add(OTPTTL),
	}

	s.mu.Lock()
	s.codes[phone] = entry
	s.mu.Unlock()

	if err := s.sender.SendOTP(phone, code); err != nil {
		return uuid.Nil, err
	}

	log.Info().Str("phone", phone).Str("attempt_id", entry.attemptID.String()).Msg("OTP issued")
	return entry.attemptID, nil
}

// VerifyOTP checks the code, creates the owner on first login, and
// returns a signed session token.
func (s *AuthService) VerifyOTP(phone, code string) (string, *domain.Owner, error) {
	phone = strings.TrimSpace(phone)

	s.mu.Lock()
	entry, ok := s.codes[phone]
	if !ok || s.now().After(entry.expiresAt) {
		delete(s.codes, phone)
		s.mu.Unlock()
		return "", nil, domain.ErrInvalidOTP
	}
	if entry.code != strings.TrimSpace(code) {
		entry.attempts++
		if entry.attempts >= MaxOTPAttempts {
			delete(s.codes, phone)
		}
		s.mu.Unlock()
		return "", nil, domain.ErrInvalidOTP
	}
	delete(s.codes, phone)
	s.mu.Unlock()

	owner, err := s.ownerRepo.CreateOrGetByPhone(phone)
	if err != nil {
		return "", nil, err
	}

	token, err := s.issueToken(owner.ID)
	if err != nil {
		return "", nil, err
	}

	return token, owner, nil
}

// GetOwner retrieves an owner by ID
func (s *AuthService) GetOwner(id int32) (*domain.Owner, error) {
	return s.ownerRepo.GetByID(id)
}

// UpdateProfile updates the owner's display name and contact email
func (s *AuthService) UpdateProfile(id int32, name string, email *string) (*domain.Owner, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	return s.ownerRepo.UpdateProfile(id, name, email)
}

func (s *AuthService) issueToken(ownerID int32) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", ownerID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	})
	return token.SignedString(s.secret)
}

// ParseToken validates a session token and returns the owner ID
func (s *AuthService) ParseToken(tokenString string) (int32, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	var ownerID int32
	if _, err := fmt.Sscanf(claims.Subject, "%d", &ownerID); err != nil || ownerID <= 0 {
		return 0, domain.ErrUnauthorized
	}
	return ownerID, nil
}

func generateOTP() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < OTPLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%0*d", OTPLength, n), nil
}

// validPhone accepts 8-15 digits with an optional leading +
func validPhone(phone string) bool {
	if phone == "" {
		return false
	}
	digits := phone
	if strings.HasPrefix(digits, "+") {
		digits = digits[1:]
	}
	if len(digits) < 8 || len(digits) > 15 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
