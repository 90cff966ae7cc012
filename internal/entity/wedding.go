package entity

// WeddingInfo is the static information block served to the frontend:
// who is getting married, when, where, and until when guests may RSVP.
// Values come from configuration, not the database.
type WeddingInfo struct {
	Couple       Couple     `json:"couple"`
	Date         CustomTime `json:"date"`
	DateDisplay  string     `json:"date_display"`
	Venue        Venue      `json:"venue"`
	RsvpDeadline string     `json:"rsvp_deadline"`
	Contact      Contact    `json:"contact"`
}

type Couple struct {
	Bride   string `json:"bride"`
	Groom   string `json:"groom"`
	Heading string `json:"heading"`
}

type Venue struct {
	Name string `json:"name"`
	City string `json:"city"`
	Zip  string `json:"zip"`
	Web  string `json:"web,omitempty"`
}

type Contact struct {
	Email string `json:"email"`
}
