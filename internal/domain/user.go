package domain

// User is a registered account. Email is the uniqueness key — matched
// exactly, case-sensitive. PasswordHash holds the bcrypt digest of the
// password; the raw password is never stored.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"nome"`
	Email        string `json:"email"`
	PasswordHash []byte `json:"-"`
}
