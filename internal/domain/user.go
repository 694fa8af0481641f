package domain

// NoUser is the sentinel user id for reads performed without a logged-in
// user. Personalized lookups short-circuit to their zero answer for it.
const NoUser int64 = -1

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	Role         Role   `db:"role"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
