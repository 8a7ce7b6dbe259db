package dataset

// User is the authenticated remote-instance user.
type User struct {
	ID       string
	Name     string
	Username string
}
