package validators

import (
	"context"
	"net"
	"net/mail"
	"strings"
)

// NormalizeEmail lowercases and trims an address and reports whether it
// is a bare addr-spec. Display names are rejected.
func NormalizeEmail(raw string) (string, bool) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return "", false
	}
	at := strings.LastIndex(email, "@")
	if !strings.Contains(email[at+1:], ".") {
		return "", false
	}
	return email, true
}

// DomainChecker reports whether the domain of an address can receive mail.
type DomainChecker func(ctx context.Context, email string) bool

// LookupEmailDomain accepts a domain with MX records, falling back to
// any A/AAAA record.
func LookupEmailDomain(ctx context.Context, email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	var r net.Resolver

	if mx, err := r.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := r.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
