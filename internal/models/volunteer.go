package models

import "time"

type Volunteer struct {
	Identity
	AuthID             string             `gorm:"type:varchar(255);uniqueIndex;not null" json:"auth_id"`
	FirstName          string             `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName           string             `gorm:"type:varchar(255);not null" json:"last_name"`
	Description        *string            `gorm:"type:text" json:"description,omitempty"`
	AvatarURL          *string            `gorm:"type:varchar(1024)" json:"avatar_url,omitempty"`
	Organization       *string            `gorm:"type:varchar(255)" json:"organization,omitempty"`
	VerificationStatus VerificationStatus `gorm:"type:varchar(20);not null;default:'requested';index" json:"verification_status"`

	// CityIDs and ActivityIDs mirror the VolunteerCity and VolunteerActivity
	// rows. They are only written together with those rows.
	CityIDs     []string `gorm:"serializer:json;type:text" json:"city_ids"`
	ActivityIDs []string `gorm:"serializer:json;type:text" json:"activity_ids"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VolunteerCity is a membership row; it is physically inserted and deleted.
type VolunteerCity struct {
	VolunteerID string    `gorm:"primaryKey;type:varchar(36)" json:"volunteer_id"`
	CityID      string    `gorm:"primaryKey;type:varchar(36);index" json:"city_id"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Volunteer Volunteer `gorm:"foreignKey:VolunteerID" json:"-"`
	City      City      `gorm:"foreignKey:CityID" json:"-"`
}

// VolunteerActivity is a membership row; it is physically inserted and deleted.
type VolunteerActivity struct {
	VolunteerID string    `gorm:"primaryKey;type:varchar(36)" json:"volunteer_id"`
	ActivityID  string    `gorm:"primaryKey;type:varchar(36);index" json:"activity_id"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Volunteer Volunteer `gorm:"foreignKey:VolunteerID" json:"-"`
	Activity  Activity  `gorm:"foreignKey:ActivityID" json:"-"`
}
