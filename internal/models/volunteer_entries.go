package models

import "time"

type VolunteerSocial struct {
	Identity
	VolunteerID string    `gorm:"type:varchar(36);not null;index" json:"volunteer_id"`
	ProviderID  string    `gorm:"type:varchar(36);not null" json:"provider_id"`
	URL         string    `gorm:"type:varchar(1024);not null" json:"url"`
	CreatedAt   time.Time `json:"created_at"`
	Tombstone

	// Relations
	Volunteer Volunteer      `gorm:"foreignKey:VolunteerID" json:"-"`
	Provider  SocialProvider `gorm:"foreignKey:ProviderID" json:"-"`
}

type VolunteerContact struct {
	Identity
	VolunteerID string    `gorm:"type:varchar(36);not null;index" json:"volunteer_id"`
	ProviderID  string    `gorm:"type:varchar(36);not null" json:"provider_id"`
	Metadata    Metadata  `gorm:"type:text" json:"metadata"`
	CreatedAt   time.Time `json:"created_at"`
	Tombstone

	// Relations
	Volunteer Volunteer       `gorm:"foreignKey:VolunteerID" json:"-"`
	Provider  ContactProvider `gorm:"foreignKey:ProviderID" json:"-"`
}

type VolunteerPaymentOption struct {
	Identity
	VolunteerID string    `gorm:"type:varchar(36);not null;index" json:"volunteer_id"`
	ProviderID  string    `gorm:"type:varchar(36);not null" json:"provider_id"`
	Metadata    Metadata  `gorm:"type:text" json:"metadata"`
	CreatedAt   time.Time `json:"created_at"`
	Tombstone

	// Relations
	Volunteer Volunteer       `gorm:"foreignKey:VolunteerID" json:"-"`
	Provider  PaymentProvider `gorm:"foreignKey:ProviderID" json:"-"`
}
