package entity

// IdentityKind tags the two identity variants. Callers must branch on the
// kind; a user identity carries UserID, a guest identity carries SessionID.
type IdentityKind string

const (
	IdentityUser  IdentityKind = "user"
	IdentityGuest IdentityKind = "guest"
)

// Identity is the resolved actor reference attached to a request: either an
// authenticated user or a guest tracked by session id. Resolution never
// fails, so every request carries exactly one of the two.
type Identity struct {
	Kind      IdentityKind
	UserID    string
	SessionID string
}

func UserIdentity(userID string) Identity {
	return Identity{Kind: IdentityUser, UserID: userID}
}

func GuestIdentity(sessionID string) Identity {
	return Identity{Kind: IdentityGuest, SessionID: sessionID}
}
