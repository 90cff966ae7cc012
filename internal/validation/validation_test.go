package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() Form {
	return Form{
		Names:         []string{"Jana", "Petr"},
		Attending:     "yes",
		Accommodation: "roof",
		DrinkChoice:   "pivo",
	}
}

func TestValidateAcceptsValidForm(t *testing.T) {
	errors := Validate(validForm(), ModePublic)
	assert.Empty(t, errors)
}

func TestValidateAttending(t *testing.T) {
	tests := []struct {
		name      string
		attending string
		wantError bool
	}{
		{name: "yes is valid", attending: "yes", wantError: false},
		{name: "no is valid", attending: "no", wantError: false},
		{name: "empty is invalid", attending: "", wantError: true},
		{name: "garbage is invalid", attending: "maybe", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form.Attending = tt.attending

			errors := Validate(form, ModePublic)
			if tt.wantError {
				assert.Contains(t, errors, "attending")
			} else {
				assert.NotContains(t, errors, "attending")
			}
		})
	}
}

func TestValidateNotAttendingSkipsConditionalFields(t *testing.T) {
	form := Form{
		Names:       []string{"Jana"},
		Attending:   "no",
		DrinkChoice: "nonsense",
	}

	errors := Validate(form, ModePublic)
	assert.NotContains(t, errors, "accommodation")
	assert.NotContains(t, errors, "drinkChoice")
	assert.NotContains(t, errors, "customDrink")
	assert.Empty(t, errors)
}

func TestValidateAttendingRequiresConditionalFields(t *testing.T) {
	form := Form{
		Names:     []string{"Jana"},
		Attending: "yes",
	}

	errors := Validate(form, ModePublic)
	assert.Equal(t, "Prosím vyberte ubytování", errors["accommodation"])
	assert.Equal(t, "Prosím vyberte nápoj", errors["drinkChoice"])
}

func TestValidateCustomDrinkRequired(t *testing.T) {
	tests := []struct {
		name        string
		customDrink string
		wantError   bool
	}{
		{name: "empty custom drink", customDrink: "", wantError: true},
		{name: "whitespace only", customDrink: "   ", wantError: true},
		{name: "filled in", customDrink: "Cider", wantError: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form.DrinkChoice = "other"
			form.CustomDrink = tt.customDrink

			errors := Validate(form, ModePublic)
			if tt.wantError {
				assert.Equal(t, "Prosím specifikujte vlastní nápoj", errors["customDrink"])
			} else {
				assert.NotContains(t, errors, "customDrink")
			}
		})
	}
}

func TestValidateNames(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		message string
	}{
		{name: "no names", names: nil, message: "Přidejte alespoň jedno jméno"},
		{name: "short name", names: []string{"Jana", "P"}, message: "Jméno musí mít alespoň 2 znaky"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form.Names = tt.names

			errors := Validate(form, ModePublic)
			assert.Equal(t, tt.message, errors["names"])
		})
	}
}

func TestValidateAdminEditSkipsNames(t *testing.T) {
	form := validForm()
	form.Names = nil

	errors := Validate(form, ModeAdminEdit)
	assert.NotContains(t, errors, "names")
	assert.Empty(t, errors)
}

func TestValidateLengthCaps(t *testing.T) {
	form := validForm()
	form.DrinkChoice = "other"
	form.CustomDrink = strings.Repeat("a", MaxCustomDrinkLength+1)
	form.DietaryRestrictions = strings.Repeat("b", MaxDietaryLength+1)
	form.Message = strings.Repeat("c", MaxMessageLength+1)

	errors := Validate(form, ModePublic)
	assert.Equal(t, "Maximálně 100 znaků", errors["customDrink"])
	assert.Equal(t, "Maximálně 500 znaků", errors["dietaryRestrictions"])
	assert.Equal(t, "Maximálně 1000 znaků", errors["message"])
}

func TestValidateCounts(t *testing.T) {
	tests := []struct {
		name     string
		children int
		pets     int
		fields   []string
	}{
		{name: "in range", children: 3, pets: 1, fields: nil},
		{name: "zero is fine", children: 0, pets: 0, fields: nil},
		{name: "max is fine", children: 20, pets: 20, fields: nil},
		{name: "negative children", children: -1, pets: 0, fields: []string{"childrenCount"}},
		{name: "too many pets", children: 0, pets: 21, fields: []string{"petsCount"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form.ChildrenCount = tt.children
			form.PetsCount = tt.pets

			errors := Validate(form, ModeAdminEdit)
			for _, field := range tt.fields {
				assert.Contains(t, errors, field)
			}
			if len(tt.fields) == 0 {
				assert.Empty(t, errors)
			}
		})
	}
}

func TestValidateReportsAllViolationsAtOnce(t *testing.T) {
	form := Form{
		Attending:   "yes",
		DrinkChoice: "other",
	}

	errors := Validate(form, ModePublic)
	require.Contains(t, errors, "names")
	require.Contains(t, errors, "accommodation")
	require.Contains(t, errors, "customDrink")
}

func TestIsValidAgreesWithValidate(t *testing.T) {
	forms := []Form{
		validForm(),
		{},
		{Attending: "no", Names: []string{"Jana"}},
		{Attending: "yes", Names: []string{"Jana"}},
	}

	for _, form := range forms {
		assert.Equal(t, len(Validate(form, ModePublic)) == 0, IsValid(form, ModePublic))
	}
}

func TestNormalizeClearsCustomDrink(t *testing.T) {
	form := validForm()
	form.DrinkChoice = "pivo"
	form.CustomDrink = "Cider"

	normalized := Normalize(form)
	assert.Empty(t, normalized.CustomDrink)
}

func TestNormalizeKeepsCustomDrinkForOther(t *testing.T) {
	form := validForm()
	form.DrinkChoice = "other"
	form.CustomDrink = "Cider"

	normalized := Normalize(form)
	assert.Equal(t, "Cider", normalized.CustomDrink)
}

func TestClampCount(t *testing.T) {
	assert.Equal(t, 0, ClampCount(-1))
	assert.Equal(t, 0, ClampCount(0))
	assert.Equal(t, 7, ClampCount(7))
	assert.Equal(t, 20, ClampCount(20))
	assert.Equal(t, 20, ClampCount(25))
}
