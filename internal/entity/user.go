package entity

import "time"

type User struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// UserLoginData is the caller principal resolved by the token middleware and
// threaded explicitly into every service call.
type UserLoginData struct {
	ID        string
	Email     string
	Name      string
	SessionID string
}
