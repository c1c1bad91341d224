package user

// User represents a user entity in the system.
// A user read from storage always carries a non-zero ID; a user decoded
// from a request body never does (the store assigns it).
type User struct {
	ID    int64  // ID is the unique identifier for the user
	Name  string // Name is the full name of the user
	Email string // Email is the email address of the user
}
