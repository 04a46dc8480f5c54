package screen

import "loyalty_admin/internal/session"

// LoginRoute is where the guard sends every unauthenticated navigation.
const LoginRoute = "login"

// Guard gates the authenticated screens. It holds no state of its own;
// every check reads the session store, so a login or logout changes the
// outcome on the next navigation without anything being re-created.
type Guard struct {
	session *session.Store
}

func NewGuard(store *session.Store) *Guard {
	return &Guard{session: store}
}

func (g *Guard) Allowed() bool {
	return g.session.IsLoggedIn()
}

// Resolve returns the requested route when the session is logged in and
// the login route otherwise.
func (g *Guard) Resolve(route string) string {
	if route == LoginRoute || g.Allowed() {
		return route
	}
	return LoginRoute
}
