// Package validation implements the RSVP form rule set shared by the public
// submission form and the admin edit dialog. All rules are independent, so a
// single pass reports every violated field at once.
package validation

import (
	"fmt"
	"strings"

	"github.com/vodninamlyn/wedding-rsvp/internal/entity"
)

const (
	MaxCustomDrinkLength = 100
	MaxDietaryLength     = 500
	MaxMessageLength     = 1000
	MaxCount             = 20
)

// Mode selects which rule subset applies. The admin edit dialog validates
// children/pets counts but has no names or message field.
type Mode int

const (
	ModePublic Mode = iota
	ModeAdminEdit
)

// Form is the client-side draft being validated. Empty strings mean
// "unselected" for the enum fields.
type Form struct {
	Names               []string
	Attending           string
	Accommodation       string
	DrinkChoice         string
	CustomDrink         string
	DietaryRestrictions string
	ChildrenCount       int
	PetsCount           int
	Message             string
}

// Error carries the per-field messages of a failed validation. It is an
// expected, user-recoverable condition and is never logged as a failure.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// Validate runs the full rule set and returns a field -> message map. The
// boolean submit gate is derived from the same map (len == 0); there is no
// second rule set to drift out of sync.
func Validate(form Form, mode Mode) map[string]string {
	errors := make(map[string]string)

	if form.Attending != string(entity.AttendingYes) && form.Attending != string(entity.AttendingNo) {
		errors["attending"] = "Prosím potvrďte, zda se zúčastníte"
	}

	if form.Attending == string(entity.AttendingYes) {
		if !isValidAccommodation(form.Accommodation) {
			errors["accommodation"] = "Prosím vyberte ubytování"
		}
		if !isValidDrinkChoice(form.DrinkChoice) {
			errors["drinkChoice"] = "Prosím vyberte nápoj"
		}
		if form.DrinkChoice == string(entity.DrinkOther) && strings.TrimSpace(form.CustomDrink) == "" {
			errors["customDrink"] = "Prosím specifikujte vlastní nápoj"
		}
	}

	if mode == ModePublic {
		if len(form.Names) == 0 {
			errors["names"] = "Přidejte alespoň jedno jméno"
		} else {
			for _, name := range form.Names {
				if len([]rune(name)) < 2 {
					errors["names"] = "Jméno musí mít alespoň 2 znaky"
					break
				}
			}
		}
		if len([]rune(form.Message)) > MaxMessageLength {
			errors["message"] = "Maximálně 1000 znaků"
		}
	}

	if mode == ModeAdminEdit {
		if form.ChildrenCount < 0 || form.ChildrenCount > MaxCount {
			errors["childrenCount"] = "Počet dětí musí být mezi 0 a 20"
		}
		if form.PetsCount < 0 || form.PetsCount > MaxCount {
			errors["petsCount"] = "Počet zvířat musí být mezi 0 a 20"
		}
	}

	if len([]rune(form.CustomDrink)) > MaxCustomDrinkLength {
		errors["customDrink"] = "Maximálně 100 znaků"
	}
	if len([]rune(form.DietaryRestrictions)) > MaxDietaryLength {
		errors["dietaryRestrictions"] = "Maximálně 500 znaků"
	}

	return errors
}

// IsValid is the submit-button gate. Derived from Validate so the two can
// never disagree.
func IsValid(form Form, mode Mode) bool {
	return len(Validate(form, mode)) == 0
}

// Check wraps Validate into an error value for service-layer use.
func Check(form Form, mode Mode) error {
	if fields := Validate(form, mode); len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}

// Normalize applies the field-change side effect: whenever the drink choice
// moves away from "other" the custom drink is cleared, and when not
// attending the conditional fields stay as entered but are not required.
func Normalize(form Form) Form {
	if form.DrinkChoice != string(entity.DrinkOther) {
		form.CustomDrink = ""
	}
	return form
}

// ClampCount keeps a children/pets step control within its 0..20 bounds.
func ClampCount(value int) int {
	if value < 0 {
		return 0
	}
	if value > MaxCount {
		return MaxCount
	}
	return value
}

func isValidAccommodation(value string) bool {
	switch entity.AccommodationType(value) {
	case entity.AccommodationRoof, entity.AccommodationOwnTent, entity.AccommodationNoSleep:
		return true
	}
	return false
}

func isValidDrinkChoice(value string) bool {
	switch entity.DrinkChoice(value) {
	case entity.DrinkPivo, entity.DrinkVino, entity.DrinkNealko, entity.DrinkOther:
		return true
	}
	return false
}
