package linktoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMalformed = errors.New("malformed link token")
	ErrSignature = errors.New("invalid link token signature")
	ErrExpired   = errors.New("link token expired")
)

// Claims is the identity carried by a link token.
type Claims struct {
	Subject   string
	Purpose   string
	ExpiresAt time.Time
}

// Signer creates and validates HMAC-signed identity tokens that replace
// identifiers embedded in plain query parameters.
type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSigner constructs a signer with the provided secret and TTL.
func NewSigner(secret string, ttl time.Duration) *Signer {
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &Signer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Generate returns a token binding subject and purpose until the TTL elapses.
func (s *Signer) Generate(subject, purpose string) (string, time.Time, error) {
	if subject == "" || purpose == "" {
		return "", time.Time{}, fmt.Errorf("subject and purpose required")
	}
	if len(s.secret) == 0 {
		return "", time.Time{}, fmt.Errorf("signing secret missing")
	}
	expiresAt := s.now().Add(s.ttl).Truncate(time.Second)
	encSubject := base64.RawURLEncoding.EncodeToString([]byte(subject))
	encPurpose := base64.RawURLEncoding.EncodeToString([]byte(purpose))
	ts := strconv.FormatInt(expiresAt.Unix(), 10)
	signature := s.sign(encSubject, encPurpose, ts)
	return strings.Join([]string{encSubject, encPurpose, ts, signature}, "."), expiresAt, nil
}

// Parse validates the token and returns its claims.
func (s *Signer) Parse(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 4 {
		return nil, ErrMalformed
	}
	encSubject, encPurpose, ts, signature := parts[0], parts[1], parts[2], parts[3]

	expected := s.sign(encSubject, encPurpose, ts)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return nil, ErrSignature
	}

	expUnix, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return nil, ErrMalformed
	}
	subject, err := base64.RawURLEncoding.DecodeString(encSubject)
	if err != nil {
		return nil, ErrMalformed
	}
	purpose, err := base64.RawURLEncoding.DecodeString(encPurpose)
	if err != nil {
		return nil, ErrMalformed
	}

	expiresAt := time.Unix(expUnix, 0)
	if s.now().After(expiresAt) {
		return nil, ErrExpired
	}
	return &Claims{Subject: string(subject), Purpose: string(purpose), ExpiresAt: expiresAt}, nil
}

func (s *Signer) sign(parts ...string) string {
	mac := hmac.New(sha256.New, s.secret)
	_, _ = mac.Write([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(mac.Sum(nil))
}
