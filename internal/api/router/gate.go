package router

import "strings"

// AnyMethod matches every HTTP method in an access rule
const AnyMethod = ""

// Rule is one entry of the request-authorization policy. Patterns are exact
// paths, or prefixes when they end in "/*".
type Rule struct {
	Method  string
	Pattern string
	Public  bool
}

// DefaultRules is the ordered allow list: job reads, auth endpoints,
// login/register, and uploaded assets are public. Everything else falls
// through to the terminal deny (authentication required).
func DefaultRules() []Rule {
	return []Rule{
		{Method: "GET", Pattern: "/api/jobs", Public: true},
		{Method: "GET", Pattern: "/api/jobs/*", Public: true},
		{Method: AnyMethod, Pattern: "/auth/*", Public: true},
		{Method: AnyMethod, Pattern: "/api/auth/*", Public: true},
		{Method: AnyMethod, Pattern: "/login", Public: true},
		{Method: AnyMethod, Pattern: "/register", Public: true},
		{Method: AnyMethod, Pattern: "/uploads/*", Public: true},
		{Method: "GET", Pattern: "/health", Public: true},
	}
}

// IsPublic evaluates the rules first-match-wins. No match means the path
// requires an authenticated principal.
func IsPublic(rules []Rule, method, path string) bool {
	for _, rule := range rules {
		if rule.Method != AnyMethod && rule.Method != method {
			continue
		}
		if matchPattern(rule.Pattern, path) {
			return rule.Public
		}
	}

	return false
}

func matchPattern(pattern, path string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "/*"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}

	return path == pattern
}
