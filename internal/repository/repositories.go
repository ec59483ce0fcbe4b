package repository

import (
	"github.com/yukikurage/volunteer-directory-api/internal/models"
	"gorm.io/gorm"
)

// Repositories bundles every repository the directory service reads from
type Repositories struct {
	Volunteers VolunteerRepository

	Cities           LookupRepository[models.City]
	Activities       LookupRepository[models.Activity]
	SocialProviders  LookupRepository[models.SocialProvider]
	PaymentProviders LookupRepository[models.PaymentProvider]
	ContactProviders LookupRepository[models.ContactProvider]

	Social         EntryRepository[models.VolunteerSocial]
	Contacts       EntryRepository[models.VolunteerContact]
	PaymentOptions EntryRepository[models.VolunteerPaymentOption]
}

// NewRepositories creates GORM repositories sharing one connection pool
func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Volunteers:       NewVolunteerRepository(db),
		Cities:           NewLookupRepository[models.City](db),
		Activities:       NewLookupRepository[models.Activity](db),
		SocialProviders:  NewLookupRepository[models.SocialProvider](db),
		PaymentProviders: NewLookupRepository[models.PaymentProvider](db),
		ContactProviders: NewLookupRepository[models.ContactProvider](db),
		Social:           NewEntryRepository[models.VolunteerSocial](db),
		Contacts:         NewEntryRepository[models.VolunteerContact](db),
		PaymentOptions:   NewEntryRepository[models.VolunteerPaymentOption](db),
	}
}
