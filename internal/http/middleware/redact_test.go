package middleware

import (
	"net/http"
	"testing"
)

func TestRedactor_Scrub(t *testing.T) {
	r := NewRedactor()
	tests := []struct{ in, want string }{
		{"", ""},
		{"id=123e4567-e89b-12d3-a456-426614174000", "id=[REDACTED:id]"},
		{"to=jane.doe@example.org", "to=[REDACTED:email]"},
		{"call 212-555-1212", "call [REDACTED:phone]"},
		{"limit=10", "limit=10"},
	}
	for _, tt := range tests {
		if got := r.Scrub(tt.in); got != tt.want {
			t.Errorf("Scrub(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestRedactor_Headers(t *testing.T) {
	r := NewRedactor(" X-Api-Key ", "")
	h := http.Header{}
	h.Set("Authorization", "Bearer abc")
	h.Set("X-Api-Key", "k")
	h.Set("X-User-ID", "u1")
	h.Set("Referer", "http://x/?e=a@b.io")
	h.Add("Accept", "a")
	h.Add("Accept", "b")

	got := r.Headers(h)
	for _, k := range []string{"Authorization", "X-Api-Key", "X-User-Id"} {
		if got[k] != redacted {
			t.Errorf("%s = %q", k, got[k])
		}
	}
	if got["Referer"] != "http://x/?e=[REDACTED:email]" {
		t.Errorf("Referer = %q", got["Referer"])
	}
	if got["Accept"] != "a, b" {
		t.Errorf("Accept = %q", got["Accept"])
	}
}
