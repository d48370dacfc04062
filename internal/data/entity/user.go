package entity

// User is identified uniquely by email; immutable once created. Users are
// created lazily on first ticket purchase and never deleted.
type User struct {
	FirstName string
	LastName  string
	Email     string
}
