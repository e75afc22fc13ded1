package domain

// User is a registered account. Password holds the bcrypt hash and never
// leaves the service.
type User struct {
	ID       int64  `json:"id"`
	IsActive bool   `json:"is_active"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// UserPatch carries the fields of a partial update. Nil means untouched.
type UserPatch struct {
	UserName *string
	Email    *string
	Password *string
}
