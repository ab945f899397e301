package domain

// Role differentiates citizen vs official sessions.
type Role string

const (
	RoleCitizen  Role = "citizen"
	RoleOfficial Role = "official"
	RoleNone     Role = "none"
)

// Session is the session-gate value threaded explicitly into every
// workflow call. Identity is nil for anonymous callers.
type Session struct {
	Role     Role
	Identity *string
}

// Anonymous is the session for unauthenticated callers.
func Anonymous() Session {
	return Session{Role: RoleNone}
}

// CitizenSession builds a citizen session for the given identity.
func CitizenSession(identity string) Session {
	return Session{Role: RoleCitizen, Identity: &identity}
}

// OfficialSession builds an official session for the given office code.
func OfficialSession(code string) Session {
	return Session{Role: RoleOfficial, Identity: &code}
}
