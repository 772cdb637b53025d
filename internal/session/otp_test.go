package session

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerifyFixedCode(t *testing.T) {
	issuer := NewOTPIssuer(time.Minute, DevOTPCode)

	code, err := issuer.Issue("9876543101")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if code != DevOTPCode {
		t.Fatalf("expected pinned code %s, got %s", DevOTPCode, code)
	}

	if err := issuer.Verify("9876543101", code); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestVerifyConsumesCode(t *testing.T) {
	issuer := NewOTPIssuer(time.Minute, DevOTPCode)

	if _, err := issuer.Issue("9876543101"); err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := issuer.Verify("9876543101", DevOTPCode); err != nil {
		t.Fatalf("first verify: %v", err)
	}
	if err := issuer.Verify("9876543101", DevOTPCode); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected consumed code to fail, got %v", err)
	}
}

func TestVerifyWrongCode(t *testing.T) {
	issuer := NewOTPIssuer(time.Minute, DevOTPCode)

	if _, err := issuer.Issue("9876543101"); err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := issuer.Verify("9876543101", "000000"); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode, got %v", err)
	}
}

func TestVerifyWithoutIssue(t *testing.T) {
	issuer := NewOTPIssuer(time.Minute, DevOTPCode)

	if err := issuer.Verify("9876543101", DevOTPCode); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode for never-issued phone, got %v", err)
	}
}

func TestVerifyExpiredCode(t *testing.T) {
	issuer := NewOTPIssuer(time.Minute, DevOTPCode)
	base := time.Now()
	issuer.now = func() time.Time { return base }

	if _, err := issuer.Issue("9876543101"); err != nil {
		t.Fatalf("issue: %v", err)
	}

	issuer.now = func() time.Time { return base.Add(2 * time.Minute) }
	if err := issuer.Verify("9876543101", DevOTPCode); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected expired code to fail, got %v", err)
	}
}

func TestRandomCodesAreSixDigits(t *testing.T) {
	issuer := NewOTPIssuer(time.Minute, "")

	code, err := issuer.Issue("9876543101")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("expected 6-digit code, got %q", code)
	}
	if err := issuer.Verify("9876543101", code); err != nil {
		t.Fatalf("verify generated code: %v", err)
	}
}
