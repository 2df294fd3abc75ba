package navigation

import "testing"

type authState bool

func (a authState) IsAuthenticated() bool { return bool(a) }

func TestDecide(t *testing.T) {
	cases := []struct {
		name   string
		target Route
		authed bool
		want   Route
	}{
		{"anonymous to guarded route", RouteTasks, false, RouteLogin},
		{"anonymous to dashboard", RouteDashboard, false, RouteLogin},
		{"anonymous to login", RouteLogin, false, RouteLogin},
		{"anonymous to register", RouteRegister, false, RouteRegister},
		{"authenticated to guarded route", RouteProjects, true, RouteProjects},
		{"authenticated bounced from login", RouteLogin, true, RouteDashboard},
		{"authenticated bounced from register", RouteRegister, true, RouteDashboard},
		{"unknown route requires auth", Route("settings"), false, RouteLogin},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Decide(tc.target, authState(tc.authed)); got != tc.want {
				t.Fatalf("Decide(%s, authed=%v) = %s, want %s", tc.target, tc.authed, got, tc.want)
			}
		})
	}
}
