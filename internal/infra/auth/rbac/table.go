package rbac

import "strings"

// RouteRule binds a method-agnostic path pattern to a rule. Patterns are
// either exact paths or a prefix followed by "/**".
type RouteRule struct {
	Pattern string
	Rule    Rule
}

// Table is an ordered rule table. Matching is first match wins, in
// declaration order; specificity does not matter.
type Table struct {
	rules []RouteRule
}

func NewTable(rules ...RouteRule) *Table {
	return &Table{rules: rules}
}

// RuleFor returns the rule for the first pattern matching path. Paths that
// match no pattern require authentication.
func (t *Table) RuleFor(path string) Rule {
	for _, rr := range t.rules {
		if matchPattern(rr.Pattern, path) {
			return rr.Rule
		}
	}
	return RequireAuthenticated()
}

func matchPattern(pattern, path string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return path == pattern
}

// DefaultTable is the service's route policy.
func DefaultTable() *Table {
	return NewTable(
		RouteRule{Pattern: "/healthz", Rule: PermitAll()},
		RouteRule{Pattern: "/api/v1/auth/**", Rule: PermitAll()},
		RouteRule{Pattern: "/api/v1/admin/**", Rule: RequireAnyRole("ADMIN")},
		RouteRule{Pattern: "/api/v1/projects/**", Rule: RequireAnyRole("ADMIN", "PROJECT_MANAGER", "TEAM_MEMBER")},
	)
}
