// Package navigation holds the auth-guard decision applied before every
// route transition, plus adapters for the redirect side effect the gateway
// takes on session expiry. Rendering and route tables live with the caller.
package navigation

// Route identifies an application view.
type Route string

const (
	RouteLogin     Route = "login"
	RouteRegister  Route = "register"
	RouteDashboard Route = "dashboard"
	RouteProjects  Route = "projects"
	RouteTasks     Route = "tasks"
)

// RequiresAuth reports whether the route is only reachable authenticated.
// Unknown routes require auth.
func (r Route) RequiresAuth() bool {
	switch r {
	case RouteLogin, RouteRegister:
		return false
	}
	return true
}

// AuthState is the predicate the guard consults; *service.Session satisfies it.
type AuthState interface {
	IsAuthenticated() bool
}

// Decide returns the route the client should land on when target is
// requested: anonymous users are sent to login for guarded routes, and
// authenticated users are bounced from login/register to the dashboard.
func Decide(target Route, auth AuthState) Route {
	authed := auth.IsAuthenticated()
	if target.RequiresAuth() && !authed {
		return RouteLogin
	}
	if (target == RouteLogin || target == RouteRegister) && authed {
		return RouteDashboard
	}
	return target
}

// FuncNavigator adapts a function to ports.Navigator for callers that handle
// the login redirect themselves.
type FuncNavigator func()

func (f FuncNavigator) RedirectToLogin() { f() }
