package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/julisunkan/LearnMan/internal/app_errors"
	"github.com/julisunkan/LearnMan/pkg/logger"
)

const adminSubject = "admin"

// Service implements the single shared admin passcode: a successful login
// yields a signed session token, which the admin middleware verifies on
// every editing request. There are no user accounts.
type Service struct {
	log          logger.Log
	passcodeHash []byte
	secret       []byte
	ttl          time.Duration
}

// NewService hashes the configured passcode once at startup. If no signing
// secret is configured a random per-process one is generated, which
// invalidates admin sessions on restart.
func NewService(log logger.Log, passcode, secret string, ttl time.Duration) (*Service, error) {
	if passcode == "" {
		return nil, errors.New("admin passcode is not configured")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin passcode: %w", err)
	}

	if secret == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("generate session secret: %w", err)
		}
		secret = hex.EncodeToString(buf)
		log.Warn("no admin jwt secret configured, sessions will not survive a restart")
	}

	return &Service{
		log:          log,
		passcodeHash: hash,
		secret:       []byte(secret),
		ttl:          ttl,
	}, nil
}

// Login checks the passcode and returns a signed session token.
func (s *Service) Login(ctx context.Context, passcode string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.passcodeHash, []byte(passcode)); err != nil {
		return "", app_errors.ErrIncorrectPasscode
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks a session token's signature, expiry and subject.
func (s *Service) VerifyToken(ctx context.Context, tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return err
	}
	subject, err := token.Claims.GetSubject()
	if err != nil || subject != adminSubject {
		return errors.New("not an admin session token")
	}
	return nil
}
