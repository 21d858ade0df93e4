package models

// User is an account. PasswordHash is a bcrypt hash and never leaves the
// service layer.
type User struct {
	Base
	Username     string   `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string   `gorm:"size:255;not null"`
	Name         *string  `gorm:"size:200"`
	Address      *string  `gorm:"size:500"`
	PhoneNumber  *string  `gorm:"size:50"`
	Roles        []string `gorm:"serializer:json;type:text;not null"`
}

// DisplayName falls back to the username.
func (u User) DisplayName() string {
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return u.Username
}
