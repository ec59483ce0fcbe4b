package models

type City struct {
	Identity
	Title     string  `gorm:"type:varchar(255);not null" json:"title"`
	AdminName *string `gorm:"type:varchar(255)" json:"admin_name,omitempty"`
}

type Activity struct {
	Identity
	Title       string  `gorm:"type:varchar(255);not null" json:"title"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
}

type SocialProvider struct {
	Identity
	Title string `gorm:"type:varchar(255);not null" json:"title"`
}

type PaymentProvider struct {
	Identity
	Title string `gorm:"type:varchar(255);not null" json:"title"`
}

type ContactProvider struct {
	Identity
	Title string `gorm:"type:varchar(255);not null" json:"title"`
}
