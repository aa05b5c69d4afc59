package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	err := db.AutoMigrate(
		&SponsorGroup{},
		&Person{},
		&Member{},
		&Activity{},
		&Presence{},
		&Payment{},
		&DiscountPolicy{},
	)
	if err != nil {
		return err
	}

	// One attendance per natural person per activity. Partial indexes
	// because member-self and guest presences live in the same table.
	err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_presences_member_activity
		ON presences (member_id, activity_id) WHERE guest_person_id IS NULL`).Error
	if err != nil {
		return err
	}

	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_presences_guest_activity
		ON presences (guest_person_id, activity_id) WHERE guest_person_id IS NOT NULL`).Error
}
