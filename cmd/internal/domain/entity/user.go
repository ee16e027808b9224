package entity

// User is the local row mirroring a Cognito identity.
type User struct {
	ID            int64  `gorm:"primaryKey"`
	SubUUID       string `gorm:"not null;uniqueIndex"`
	Username      string `gorm:"not null"`
	Email         string `gorm:"not null"`
	EmailVerified bool   `gorm:"not null"`
	Active        bool   `gorm:"not null;default:true"`
	Suspended     bool   `gorm:"not null;default:false"`
	CreatedAt     int64  `gorm:"not null"`
	UpdatedAt     int64  `gorm:"not null;autoUpdateTime:false"`
}
