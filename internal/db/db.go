package db

import (
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bettyia/clinic-scheduler/internal/config"
	"github.com/bettyia/clinic-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Migrate creates the schema. It is called with a sqlite handle from the
// tests, so anything postgres-only stays behind the dialector check.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.Office{},
		&models.Schedule{},
		&models.AppointmentType{},
		&models.Patient{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() == "postgres" {
		// Store-enforced guarantee that no doctor ever holds two
		// overlapping appointments, even if two requests race past the
		// in-transaction scan. && on tstzrange is half-open, matching
		// the availability predicate.
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
			log.Printf("btree_gist extension unavailable, overlap constraint skipped: %v", err)
			return nil
		}
		if err := db.Exec(`
            ALTER TABLE appointments
            ADD CONSTRAINT appointments_no_doctor_overlap
            EXCLUDE USING gist (
                doctor_id WITH =,
                tstzrange(start_time, end_time) WITH &&
            )
        `).Error; err != nil && !isDuplicateConstraint(err) {
			log.Printf("overlap constraint not installed: %v", err)
		}
	}

	return nil
}

// duplicate_object, raised when the constraint already exists on restart
func isDuplicateConstraint(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42710"
}
