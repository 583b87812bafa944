package config_test

import (
	"testing"
	"time"

	"github.com/perugo/perugo-api/internal/config"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := config.Load(); err == nil {
		t.Fatal("Expected Load to fail without JWT_SECRET")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Fatalf("Expected 24h token TTL, got %s", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Fatalf("Expected bcrypt cost 12, got %d", cfg.Auth.BcryptCost)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("Expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Email.DevMode != true {
		t.Fatal("Expected email dev mode by default")
	}
}

func TestLoad_RejectsBadBcryptCost(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("BCRYPT_COST", "99")

	if _, err := config.Load(); err == nil {
		t.Fatal("Expected Load to reject out-of-range bcrypt cost")
	}
}
