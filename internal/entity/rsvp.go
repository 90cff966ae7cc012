package entity

import (
	"time"
)

type AttendingStatus string

const (
	AttendingYes AttendingStatus = "yes"
	AttendingNo  AttendingStatus = "no"
)

type AccommodationType string

const (
	AccommodationRoof    AccommodationType = "roof"
	AccommodationOwnTent AccommodationType = "own-tent"
	AccommodationNoSleep AccommodationType = "no-sleep"
)

type DrinkChoice string

const (
	DrinkPivo   DrinkChoice = "pivo"
	DrinkVino   DrinkChoice = "vino"
	DrinkNealko DrinkChoice = "nealko"
	DrinkOther  DrinkChoice = "other"
)

// Rsvp is one row of the base rsvps table. Each submission creates one
// primary row plus one sibling row per extra guest; siblings reference the
// primary through PrimaryRsvpID and are removed by cascade when the primary
// row is deleted.
type Rsvp struct {
	ID                  string    `json:"id" db:"id"`
	PrimaryRsvpID       *string   `json:"primary_rsvp_id" db:"primary_rsvp_id"`
	IsPrimary           bool      `json:"is_primary" db:"is_primary"`
	Name                string    `json:"name" db:"name"`
	Attending           string    `json:"attending" db:"attending"`
	Accommodation       *string   `json:"accommodation" db:"accommodation"`
	DrinkChoice         *string   `json:"drinkChoice" db:"drink_choice"`
	CustomDrink         *string   `json:"customDrink" db:"custom_drink"`
	DietaryRestrictions *string   `json:"dietaryRestrictions" db:"dietary_restrictions"`
	ChildrenCount       int       `json:"childrenCount" db:"children_count"`
	PetsCount           int       `json:"petsCount" db:"pets_count"`
	Message             *string   `json:"message" db:"message"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
}

// RsvpSubmission is one row of the denormalized rsvp_submissions view:
// one row per attendee, with the owning group resolved to primary id/name.
type RsvpSubmission struct {
	AttendeeID          string    `json:"attendee_id"`
	AttendeeName        string    `json:"attendee_name"`
	PrimaryRsvpID       string    `json:"primary_rsvp_id"`
	PrimaryName         string    `json:"primary_name"`
	IsPrimary           bool      `json:"is_primary"`
	Attending           string    `json:"attending"`
	Accommodation       *string   `json:"accommodation"`
	DrinkChoice         *string   `json:"drinkChoice"`
	CustomDrink         *string   `json:"customDrink"`
	DietaryRestrictions *string   `json:"dietaryRestrictions"`
	ChildrenCount       int       `json:"childrenCount"`
	PetsCount           int       `json:"petsCount"`
	Message             *string   `json:"message"`
	CreatedAt           time.Time `json:"created_at"`
}

// SubmitRsvpParams mirrors the argument list of the submit_rsvp database
// function. Optional fields are nil when the guest is not attending or left
// them empty.
type SubmitRsvpParams struct {
	Names               []string
	Attending           string
	Accommodation       *string
	DrinkChoice         *string
	CustomDrink         *string
	DietaryRestrictions *string
	ChildrenCount       int
	PetsCount           int
	Message             *string
}

// UpdateAttendeeParams is the partial update applied to one row of the base
// table, keyed by attendee id. Field names follow the table columns.
type UpdateAttendeeParams struct {
	Attending           string
	Accommodation       *string
	DrinkChoice         *string
	CustomDrink         *string
	DietaryRestrictions *string
	ChildrenCount       int
	PetsCount           int
}
