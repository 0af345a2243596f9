package model

// Session is the success payload of the authentication collaborator: an
// opaque bearer credential plus the identity it belongs to. The credential
// is never decoded client-side.
type Session struct {
	Token    string
	Identity Identity
}
