package postgres

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/vodninamlyn/wedding-rsvp/config"

	_ "github.com/lib/pq"
)

func NewPostgresDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Successfully connected to PostgreSQL")
	return db, nil
}

// RunMigrations creates the base rsvps table, the denormalized
// rsvp_submissions view (one row per attendee with the owning group
// resolved) and the submit_rsvp function that inserts a whole group in one
// transaction. Sibling rows reference the primary with ON DELETE CASCADE,
// so deleting the primary removes the entire group.
func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,

		`CREATE TABLE IF NOT EXISTS rsvps (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			primary_rsvp_id UUID REFERENCES rsvps(id) ON DELETE CASCADE,
			is_primary BOOLEAN NOT NULL DEFAULT FALSE,
			name VARCHAR(50) NOT NULL,
			attending VARCHAR(3) NOT NULL CHECK (attending IN ('yes', 'no')),
			accommodation VARCHAR(20),
			drink_choice VARCHAR(20),
			custom_drink VARCHAR(100),
			dietary_restrictions VARCHAR(500),
			children_count INTEGER NOT NULL DEFAULT 0,
			pets_count INTEGER NOT NULL DEFAULT 0,
			message VARCHAR(1000),
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_rsvps_primary_rsvp_id ON rsvps(primary_rsvp_id)`,
		`CREATE INDEX IF NOT EXISTS idx_rsvps_created_at ON rsvps(created_at)`,

		`CREATE OR REPLACE VIEW rsvp_submissions AS
			SELECT
				r.id AS attendee_id,
				r.name AS attendee_name,
				COALESCE(r.primary_rsvp_id, r.id) AS primary_rsvp_id,
				p.name AS primary_name,
				r.is_primary,
				r.attending,
				r.accommodation,
				r.drink_choice,
				r.custom_drink,
				r.dietary_restrictions,
				r.children_count,
				r.pets_count,
				r.message,
				r.created_at
			FROM rsvps r
			JOIN rsvps p ON p.id = COALESCE(r.primary_rsvp_id, r.id)`,

		`CREATE OR REPLACE FUNCTION submit_rsvp(
			p_names TEXT[],
			p_attending VARCHAR,
			p_accommodation VARCHAR,
			p_drink_choice VARCHAR,
			p_custom_drink VARCHAR,
			p_dietary_restrictions VARCHAR,
			p_children_count INTEGER,
			p_pets_count INTEGER,
			p_message VARCHAR
		) RETURNS UUID AS $$
		DECLARE
			v_primary_id UUID;
			v_name TEXT;
		BEGIN
			IF array_length(p_names, 1) IS NULL THEN
				RAISE EXCEPTION 'at least one name is required';
			END IF;

			INSERT INTO rsvps (
				is_primary, name, attending, accommodation, drink_choice,
				custom_drink, dietary_restrictions, children_count, pets_count, message
			) VALUES (
				TRUE, p_names[1], p_attending, p_accommodation, p_drink_choice,
				p_custom_drink, p_dietary_restrictions, p_children_count, p_pets_count, p_message
			) RETURNING id INTO v_primary_id;

			UPDATE rsvps SET primary_rsvp_id = v_primary_id WHERE id = v_primary_id;

			FOREACH v_name IN ARRAY p_names[2:array_length(p_names, 1)]
			LOOP
				INSERT INTO rsvps (
					primary_rsvp_id, is_primary, name, attending, accommodation,
					drink_choice, custom_drink, dietary_restrictions,
					children_count, pets_count, message
				) VALUES (
					v_primary_id, FALSE, v_name, p_attending, p_accommodation,
					p_drink_choice, p_custom_drink, p_dietary_restrictions,
					p_children_count, p_pets_count, p_message
				);
			END LOOP;

			RETURN v_primary_id;
		END;
		$$ LANGUAGE plpgsql`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to execute migration: %v", err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
