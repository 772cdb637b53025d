package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func setupRateLimitApp(t *testing.T, maxPerMin int) *fiber.App {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	app := fiber.New()
	app.Post("/otp/send", OTPRateLimit(cache, maxPerMin), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "otp_sent"})
	})
	return app
}

func sendOTPRequest(t *testing.T, app *fiber.App, phone string) int {
	t.Helper()
	body := strings.NewReader(`{"phone":"` + phone + `"}`)
	req := httptest.NewRequest(fiber.MethodPost, "/otp/send", body)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func TestOTPRateLimitBlocksExcessSends(t *testing.T) {
	app := setupRateLimitApp(t, 2)

	for i := 0; i < 2; i++ {
		if status := sendOTPRequest(t, app, "9876543101"); status != fiber.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, status)
		}
	}
	if status := sendOTPRequest(t, app, "9876543101"); status != fiber.StatusTooManyRequests {
		t.Fatalf("expected 429 on excess send, got %d", status)
	}
}

func TestOTPRateLimitIsPerPhone(t *testing.T) {
	app := setupRateLimitApp(t, 1)

	if status := sendOTPRequest(t, app, "9876543101"); status != fiber.StatusOK {
		t.Fatalf("first phone: expected 200, got %d", status)
	}
	if status := sendOTPRequest(t, app, "9876543301"); status != fiber.StatusOK {
		t.Fatalf("second phone should have its own budget, got %d", status)
	}
}

func TestOTPRateLimitWithoutCacheIsNoop(t *testing.T) {
	app := fiber.New()
	app.Post("/otp/send", OTPRateLimit(nil, 1), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "otp_sent"})
	})

	for i := 0; i < 3; i++ {
		if status := sendOTPRequest(t, app, "9876543101"); status != fiber.StatusOK {
			t.Fatalf("expected no-op without cache, got %d", status)
		}
	}
}
