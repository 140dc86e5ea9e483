package domain

// User models an account known to the inventory API. Credentials never live
// here; the password hash exists only transiently in request payloads.
type User struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// AuthSession is the outcome of a successful login or registration: the
// authenticated user plus the bearer token extracted from the response
// headers. Token may be empty when the server sent none; storing or
// refreshing it is the caller's concern.
type AuthSession struct {
	User  User
	Token string
}
