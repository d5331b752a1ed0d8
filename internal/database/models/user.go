package models

// User represents an identity record created at signup.
// Users are never hard-deleted; email stays unique only among active users
// so a deactivated account does not block re-registration.
type User struct {
	BaseModel
	Email    string `json:"email" gorm:"uniqueIndex:idx_users_email_active,where:is_active;not null;size:255" validate:"required,email,max=255"`
	Name     string `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	IsActive bool   `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	Memberships []Membership `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
