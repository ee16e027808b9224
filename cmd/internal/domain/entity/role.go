package entity

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// UserRole grants a role to a user. A user may hold several rows.
type UserRole struct {
	ID     int64 `gorm:"primaryKey"`
	UserID int64 `gorm:"not null;uniqueIndex:idx_user_role_user_role"` // References: users(id)
	Role   Role  `gorm:"not null;uniqueIndex:idx_user_role_user_role"`
}
