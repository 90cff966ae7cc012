package entity

// Czech labels for the internal RSVP codes. Pure data, shared by the admin
// table formatting and the catalog endpoint.

var AttendingLabels = map[AttendingStatus]string{
	AttendingYes: "Dorazí",
	AttendingNo:  "Nedorazí",
}

var AccommodationLabels = map[AccommodationType]string{
	AccommodationRoof:    "Chce střechu",
	AccommodationOwnTent: "Stan",
	AccommodationNoSleep: "Nespím",
}

var DrinkLabels = map[DrinkChoice]string{
	DrinkPivo:   "Pivo",
	DrinkVino:   "Víno",
	DrinkNealko: "Nealko",
	DrinkOther:  "Jiné",
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var AttendingOptions = []Option{
	{Value: string(AttendingYes), Label: "Ano, přijdeme"},
	{Value: string(AttendingNo), Label: "Bohužel se nemůžeme zúčastnit"},
}

var AccommodationOptions = []Option{
	{Value: string(AccommodationRoof), Label: "Chci spát pod střechou"},
	{Value: string(AccommodationOwnTent), Label: "Přivezu si vlastní střechu"},
	{Value: string(AccommodationNoSleep), Label: "Nepřespím"},
}

var DrinkOptions = []Option{
	{Value: string(DrinkPivo), Label: "Pivo"},
	{Value: string(DrinkVino), Label: "Víno"},
	{Value: string(DrinkNealko), Label: "Nealko"},
	{Value: string(DrinkOther), Label: "Něco jiného"},
}

// AccommodationLabel resolves a stored accommodation value for display,
// falling back to the raw code for unknown values and "-" for null.
func AccommodationLabel(accommodation *string) string {
	if accommodation == nil || *accommodation == "" {
		return "-"
	}
	if label, ok := AccommodationLabels[AccommodationType(*accommodation)]; ok {
		return label
	}
	return *accommodation
}

// DrinkLabel resolves the effective drink for display: the custom drink text
// when the choice is "other", otherwise the catalog label.
func DrinkLabel(drink, customDrink *string) string {
	if drink == nil || *drink == "" {
		return "-"
	}
	if DrinkChoice(*drink) == DrinkOther {
		if customDrink != nil && *customDrink != "" {
			return *customDrink
		}
		return DrinkLabels[DrinkOther]
	}
	if label, ok := DrinkLabels[DrinkChoice(*drink)]; ok {
		return label
	}
	return *drink
}
