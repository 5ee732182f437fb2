package middleware

import (
	"net/http"
	"regexp"
	"strings"
)

const redacted = "[REDACTED]"

// Patterns run in this order: UUIDs first so the digit runs inside them are
// not taken for phone numbers, and email before phone.
var (
	uuidRE  = regexp.MustCompile(`(?i)\b[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}\b`)
	emailRE = regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)
	phoneRE = regexp.MustCompile(`\b(?:\+?\d{1,3}[ .-]?)?(?:\(?\d{2,4}\)?[ .-]?)?\d{3,4}[ .-]?\d{4}\b`)
)

// Redactor scrubs identifiers out of strings and headers before they reach
// the logs.
type Redactor struct {
	mask map[string]struct{}
}

// NewRedactor masks Authorization, Cookie, Set-Cookie, X-User-ID and the
// given extra headers (case-insensitive).
func NewRedactor(maskHeaders ...string) *Redactor {
	r := &Redactor{mask: map[string]struct{}{
		"authorization": {},
		"cookie":        {},
		"set-cookie":    {},
		"x-user-id":     {},
	}}
	for _, h := range maskHeaders {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			r.mask[h] = struct{}{}
		}
	}
	return r
}

// Scrub replaces UUIDs, emails and phone numbers in s.
func (r *Redactor) Scrub(s string) string {
	if s == "" {
		return s
	}
	s = uuidRE.ReplaceAllString(s, "[REDACTED:id]")
	s = emailRE.ReplaceAllString(s, "[REDACTED:email]")
	return phoneRE.ReplaceAllString(s, "[REDACTED:phone]")
}

// Headers flattens h into a log-safe map.
func (r *Redactor) Headers(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, vv := range h {
		if _, ok := r.mask[strings.ToLower(k)]; ok {
			out[k] = redacted
			continue
		}
		out[k] = r.Scrub(strings.Join(vv, ", "))
	}
	return out
}
