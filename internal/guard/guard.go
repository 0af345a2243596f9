// Package guard decides whether the current session may enter a page.
package guard

import "github.com/tutorlink/client/internal/model"

// Decision is the outcome of a route access check.
type Decision int

const (
	// Wait means session state is still initializing; render a loading
	// indicator and make no navigation decision yet.
	Wait Decision = iota
	// Allow renders the requested page.
	Allow
	// RedirectSignIn sends an unauthenticated visitor to sign-in.
	RedirectSignIn
	// RedirectHome sends a signed-in visitor away from a page whose
	// required role does not match theirs.
	RedirectHome
)

// Routes the client navigates between.
const (
	RouteHome         = "/"
	RouteSignIn       = "/login"
	RouteLearnerHome  = "/dashboard"
	RouteProviderHome = "/provider-dashboard"
	RouteSearch       = "/search"
	RouteChat         = "/chat"
)

// Decide gates access to a page. An empty requiredRole admits any signed-in
// identity. Pure function of its inputs.
func Decide(ready, signedIn bool, role, requiredRole model.Role) Decision {
	if !ready {
		return Wait
	}
	if !signedIn {
		return RedirectSignIn
	}
	if requiredRole != "" && role != requiredRole {
		return RedirectHome
	}
	return Allow
}

// HomeFor returns the landing route for a role after sign-in.
func HomeFor(role model.Role) string {
	if role == model.RoleProvider {
		return RouteProviderHome
	}
	return RouteLearnerHome
}
