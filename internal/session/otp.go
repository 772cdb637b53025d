package session

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// DevOTPCode is the pinned one-time code issued by development builds.
const DevOTPCode = "123456"

type issuedCode struct {
	hash    []byte
	expires time.Time
}

// OTPIssuer issues and verifies one-time codes. Codes are stored as bcrypt
// hashes keyed by phone and consumed on successful verification. When
// fixedCode is non-empty every issued code is that value, which is how
// development builds pin the code to DevOTPCode.
type OTPIssuer struct {
	mu        sync.Mutex
	codes     map[string]issuedCode
	ttl       time.Duration
	fixedCode string
	now       func() time.Time
}

// NewOTPIssuer builds an issuer whose codes expire after ttl.
func NewOTPIssuer(ttl time.Duration, fixedCode string) *OTPIssuer {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &OTPIssuer{
		codes:     make(map[string]issuedCode),
		ttl:       ttl,
		fixedCode: fixedCode,
		now:       time.Now,
	}
}

// Issue generates a code for phone, replacing any outstanding one, and
// returns the plaintext for delivery.
func (i *OTPIssuer) Issue(phone string) (string, error) {
	code := i.fixedCode
	if code == "" {
		n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
		if err != nil {
			return "", fmt.Errorf("generate otp: %w", err)
		}
		code = fmt.Sprintf("%06d", n.Int64())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash otp: %w", err)
	}

	i.mu.Lock()
	i.codes[phone] = issuedCode{hash: hash, expires: i.now().Add(i.ttl)}
	i.mu.Unlock()

	return code, nil
}

// Verify checks code against the outstanding one for phone and consumes it
// on success. Missing, expired, and mismatched codes all return
// ErrInvalidCode.
func (i *OTPIssuer) Verify(phone, code string) error {
	i.mu.Lock()
	issued, ok := i.codes[phone]
	i.mu.Unlock()

	if !ok || i.now().After(issued.expires) {
		return ErrInvalidCode
	}
	if err := bcrypt.CompareHashAndPassword(issued.hash, []byte(code)); err != nil {
		return ErrInvalidCode
	}

	i.mu.Lock()
	delete(i.codes, phone)
	i.mu.Unlock()
	return nil
}
