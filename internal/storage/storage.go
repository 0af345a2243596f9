// Package storage is the client's durable key-value persistence: the place
// the session material survives restarts.
package storage

// Keys under which session material is persisted.
const (
	KeyToken    = "token"
	KeyIdentity = "user"
)

// Store abstracts durable key-value storage. A missing key loads as an
// empty value; callers treat empty as absent.
type Store interface {
	Load(key string) (string, error)
	Save(key, value string) error
	Clear(keys ...string) error
}
