package domain

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email              string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	GoogleToken        *string   `gorm:"type:text" json:"-"`
	GoogleRefreshToken *string   `gorm:"type:text" json:"-"`
	Role               UserRole  `gorm:"size:16;index;not null;default:user" json:"role"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Documents []Document `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
