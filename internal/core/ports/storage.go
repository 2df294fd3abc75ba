package ports

const (
	// TokenKey is the durable-tier key holding the bearer token.
	TokenKey = "token"
	// LoginTimeKey is the session-tier key holding the login instant,
	// encoded as epoch milliseconds.
	LoginTimeKey = "loginTime"
)

// KeyValue is the storage port shared by both persistence tiers: the durable
// tier keeps the token across restarts, the session-scoped tier keeps the
// login timestamp for the process lifetime only. Implementations return
// domain.ErrKeyNotFound from Get when the key is absent.
type KeyValue interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

// Navigator abstracts the navigation side effect taken when the gateway
// declares a session expired.
type Navigator interface {
	RedirectToLogin()
}
