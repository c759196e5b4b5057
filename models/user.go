package models

import "time"

type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleSeller Role = "Seller"
	RoleBuyer  Role = "Buyer"
)

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Phone     int64     `gorm:"unique;not null" json:"phone"`
	Address   string    `gorm:"not null" json:"address"`
	Role      Role      `gorm:"type:VARCHAR(10);not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicUser is the buyer/seller projection embedded in order listings and
// dashboard payloads. Never carries the password hash.
type PublicUser struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   int64  `json:"phone"`
	Address string `json:"address,omitempty"`
	Role    Role   `json:"role,omitempty"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Phone:   u.Phone,
		Address: u.Address,
		Role:    u.Role,
	}
}
