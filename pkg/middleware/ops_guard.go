package middleware

import (
	"crypto/subtle"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/gorilla/mux"

	"github.com/iota-uz/commerce-admin/pkg/composables"
	"github.com/iota-uz/commerce-admin/pkg/configuration"
)

type OpsGuardConfig struct {
	Options      configuration.OpsGuardOptions
	Production   bool
	RealIPHeader string
	// Paths are the path prefixes treated as operational.
	Paths []string
}

// opsCheck grants access when it recognizes a credential on the request.
type opsCheck func(r *http.Request) bool

// OpsGuard hides operational paths such as the metrics endpoint from
// unauthorized clients in production. Denied requests get a plain 404.
// Any one configured credential is enough: a trusted source network, the
// shared token, or basic auth.
func OpsGuard(cfg OpsGuardConfig) mux.MiddlewareFunc {
	if !cfg.Production || !cfg.Options.Enabled {
		return func(next http.Handler) http.Handler { return next }
	}
	checks := opsChecks(cfg)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !matchesPrefix(cfg.Paths, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			for _, check := range checks {
				if check(r) {
					next.ServeHTTP(w, r)
					return
				}
			}
			composables.UseLogger(r.Context()).WithField("path", r.URL.Path).Warn("ops guard denied request")
			http.NotFound(w, r)
		})
	}
}

func opsChecks(cfg OpsGuardConfig) []opsCheck {
	var checks []opsCheck
	if networks := parseNetworks(cfg.Options.CIDRs); len(networks) > 0 {
		checks = append(checks, func(r *http.Request) bool {
			addr, ok := clientAddr(r, cfg.RealIPHeader)
			if !ok {
				return false
			}
			for _, n := range networks {
				if n.Contains(addr) {
					return true
				}
			}
			return false
		})
	}
	if token := strings.TrimSpace(cfg.Options.Token); token != "" {
		checks = append(checks, func(r *http.Request) bool {
			return secureEqual(bearerToken(r), token)
		})
	}
	user, pass := strings.TrimSpace(cfg.Options.BasicAuthUser), cfg.Options.BasicAuthPass
	if user != "" || strings.TrimSpace(pass) != "" {
		checks = append(checks, func(r *http.Request) bool {
			u, p, ok := r.BasicAuth()
			return ok && secureEqual(u, user) && secureEqual(p, pass)
		})
	}
	return checks
}

func matchesPrefix(prefixes []string, path string) bool {
	for _, p := range prefixes {
		if p == "" {
			continue
		}
		if path == p || strings.HasPrefix(path, strings.TrimSuffix(p, "/")+"/") {
			return true
		}
	}
	return false
}

func secureEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// parseNetworks accepts a comma, semicolon or whitespace separated list and
// skips entries that do not parse.
func parseNetworks(raw string) []netip.Prefix {
	fields := strings.FieldsFunc(raw, func(c rune) bool {
		return c == ',' || c == ';' || c == ' ' || c == '\n' || c == '\t'
	})
	var out []netip.Prefix
	for _, f := range fields {
		if p, err := netip.ParsePrefix(f); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func bearerToken(r *http.Request) string {
	if t := strings.TrimSpace(r.Header.Get("X-Ops-Token")); t != "" {
		return t
	}
	scheme, value, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(value)
}

// clientAddr prefers the first hop of header when set.
func clientAddr(r *http.Request, header string) (netip.Addr, bool) {
	raw := r.RemoteAddr
	if header != "" {
		if v := r.Header.Get(header); strings.TrimSpace(v) != "" {
			raw, _, _ = strings.Cut(v, ",")
		}
	}
	raw = strings.TrimSpace(raw)
	if host, _, err := net.SplitHostPort(raw); err == nil {
		raw = host
	}
	addr, err := netip.ParseAddr(raw)
	return addr, err == nil
}
