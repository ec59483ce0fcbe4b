package database

import (
	"fmt"
	"log"

	"github.com/yukikurage/volunteer-directory-api/internal/models"
	"gorm.io/gorm"
)

// AddIndexes adds the composite indexes used by volunteer search
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model   any
		name    string
		columns string
	}{
		// Search pages through verified volunteers by creation time
		{&models.Volunteer{}, "idx_volunteers_status_created_at", "verification_status, created_at, id"},

		// Sub-entity reads are always per owner and exclude tombstones
		{&models.VolunteerSocial{}, "idx_volunteer_socials_owner_live", "volunteer_id, deleted_at"},
		{&models.VolunteerContact{}, "idx_volunteer_contacts_owner_live", "volunteer_id, deleted_at"},
		{&models.VolunteerPaymentOption{}, "idx_volunteer_payment_options_owner_live", "volunteer_id, deleted_at"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			continue
		}

		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(idx.model); err != nil {
			return fmt.Errorf("failed to resolve table for index %s: %w", idx.name, err)
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, stmt.Schema.Table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Printf("Created index %s on %s(%s)\n", idx.name, stmt.Schema.Table, idx.columns)
	}

	return nil
}
