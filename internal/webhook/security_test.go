package webhook

import (
	"errors"
	"net/http/httptest"
	"testing"
)

func TestValidateToken(t *testing.T) {
	t.Run("No Secret Accepts Anything", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{})
		if err := v.ValidateToken(""); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Matching Token", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{Secret: "s3cret"})
		if err := v.ValidateToken("s3cret"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Wrong Token", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{Secret: "s3cret"})
		if err := v.ValidateToken("nope"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestValidateIPAddress(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{AllowedIPs: []string{"10.0.0.0/8", "192.168.1.7"}})

	tests := []struct {
		name    string
		remote  string
		xff     string
		allowed bool
	}{
		{"Exact Match", "192.168.1.7:5555", "", true},
		{"CIDR Match", "10.1.2.3:80", "", true},
		{"Forwarded Header Wins", "127.0.0.1:80", "10.9.9.9, 127.0.0.1", true},
		{"Rejected", "172.16.0.1:80", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/webhook", nil)
			r.RemoteAddr = tt.remote
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			err := v.ValidateIPAddress(r)
			if tt.allowed && err != nil {
				t.Errorf("expected allowed, got %v", err)
			}
			if !tt.allowed && !errors.Is(err, ErrIPNotAllowed) {
				t.Errorf("expected ErrIPNotAllowed, got %v", err)
			}
		})
	}
}

func TestCheckRateLimit(t *testing.T) {
	// 10/min gives a burst of one request.
	v := NewSecurityValidator(SecurityConfig{RateLimitPerMin: 10})

	if err := v.CheckRateLimit("a"); err != nil {
		t.Fatalf("first request should pass: %v", err)
	}
	if err := v.CheckRateLimit("a"); !errors.Is(err, ErrRateLimited) {
		t.Errorf("second request should be limited, got %v", err)
	}
	if err := v.CheckRateLimit("b"); err != nil {
		t.Errorf("other source should have its own bucket: %v", err)
	}
}
