package domain

// Identity is the caller's resolved identity for the duration of a single
// request. It is derived from a signed token and never persisted.
//
// Call sites represent the three resolution outcomes as:
//
//	(*Identity, nil)  — authenticated caller
//	(nil, nil)        — anonymous (no token, or a claim missing its subject)
//	(nil, error)      — invalid token, reported as an authentication failure
type Identity struct {
	UserID   string
	Username string
	Role     string
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
