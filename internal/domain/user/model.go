package user

// Principal is the authenticated caller as reported by the identity service.
type Principal struct {
	UserID string
	Email  string
}
