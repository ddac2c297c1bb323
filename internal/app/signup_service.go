package app

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/AnuragChougule/venuebook/internal/clock"
	"github.com/AnuragChougule/venuebook/internal/domain"
)

// OTPRepository stores at most one active code per email.
type OTPRepository interface {
	UpsertCode(ctx context.Context, record domain.OTPRecord) error
	FindByEmail(ctx context.Context, email string) (*domain.OTPRecord, error)
	DeleteByEmail(ctx context.Context, email string) error
}

// UserRepository persists accounts. CreateUser must be a conditional
// insert returning ErrEmailTaken when the email is already registered.
type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUsername(ctx context.Context, email, username string) (*domain.User, error)
}

// CodeSender delivers a signup code to an email address.
type CodeSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type SignupService struct {
	otps    OTPRepository
	users   UserRepository
	sender  CodeSender
	clock   clock.Clock
	codeTTL time.Duration
}

const defaultCodeTTL = 10 * time.Minute

func NewSignupService(otps OTPRepository, users UserRepository, sender CodeSender, clk clock.Clock, opts ...SignupServiceOption) *SignupService {
	svc := &SignupService{
		otps:    otps,
		users:   users,
		sender:  sender,
		clock:   clk,
		codeTTL: defaultCodeTTL,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type SignupServiceOption func(*SignupService)

// WithCodeTTL overrides the default validity window for issued codes.
func WithCodeTTL(d time.Duration) SignupServiceOption {
	return func(s *SignupService) {
		if d > 0 {
			s.codeTTL = d
		}
	}
}

// RequestCode issues a fresh 6-digit code for email, overwriting any prior
// one, and dispatches it by mail. A dispatch failure returns
// ErrDeliveryFailed; the stored record is deliberately not rolled back, so
// a retried request simply overwrites it.
func (s *SignupService) RequestCode(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrEmailRequired
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}

	now := s.clock.Now()
	record := domain.OTPRecord{
		Email:     email,
		Code:      code,
		ExpiresAt: now.Add(s.codeTTL),
		CreatedAt: now,
	}
	if err := s.otps.UpsertCode(ctx, record); err != nil {
		return err
	}

	body := fmt.Sprintf("<p>Your signup code is <b>%s</b>. It expires in %d minutes.</p>", code, int(s.codeTTL.Minutes()))
	if err := s.sender.Send(ctx, email, "Your signup code", body); err != nil {
		return domain.ErrDeliveryFailed
	}
	return nil
}

type SignupInput struct {
	Email    string
	Username string
	Password string
	Code     string
}

func (in SignupInput) validate() error {
	if in.Email == "" {
		return domain.ErrEmailRequired
	}
	if in.Username == "" || in.Password == "" || in.Code == "" {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// Signup redeems the code for in.Email and creates the account. The code
// is single-use: success and expiry both consume the stored record, a
// mismatch leaves it in place so the user can retry until it expires.
func (s *SignupService) Signup(ctx context.Context, in SignupInput) (domain.User, error) {
	if err := in.validate(); err != nil {
		return domain.User{}, err
	}

	record, err := s.otps.FindByEmail(ctx, in.Email)
	if err != nil {
		return domain.User{}, err
	}
	if record == nil {
		return domain.User{}, domain.ErrNoActiveRequest
	}

	now := s.clock.Now()
	if now.After(record.ExpiresAt) {
		if err := s.otps.DeleteByEmail(ctx, in.Email); err != nil {
			return domain.User{}, err
		}
		return domain.User{}, domain.ErrCodeExpired
	}
	if record.Code != in.Code {
		return domain.User{}, domain.ErrCodeMismatch
	}

	if err := s.otps.DeleteByEmail(ctx, in.Email); err != nil {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// generateCode draws a uniform 6-digit numeric code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
