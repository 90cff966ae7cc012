package entity

import (
	"fmt"
	"sort"
)

// CountItem is one bucket of a distribution, kept in render order.
type CountItem struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// RsvpStats are the dashboard aggregates derived from the attendee list.
// Only rows with attending = "yes" contribute.
type RsvpStats struct {
	TotalAttending      int         `json:"total_attending"`
	TotalChildren       int         `json:"total_children"`
	TotalPets           int         `json:"total_pets"`
	TotalWithChildren   int         `json:"total_with_children"`
	TotalWithPets       int         `json:"total_with_pets"`
	DrinkCounts         []CountItem `json:"drink_counts"`
	AccommodationCounts []CountItem `json:"accommodation_counts"`
}

// ComputeStats aggregates the denormalized attendee rows. Rows with a null
// or empty drink/accommodation are excluded from the respective distribution.
// The effective drink is the custom drink text when the choice is "other" and
// the text is non-empty. Distributions are sorted by descending count; ties
// keep encounter order.
func ComputeStats(rows []RsvpSubmission) *RsvpStats {
	stats := &RsvpStats{
		DrinkCounts:         []CountItem{},
		AccommodationCounts: []CountItem{},
	}

	drinks := newOrderedCounter()
	accommodations := newOrderedCounter()

	for _, row := range rows {
		if AttendingStatus(row.Attending) != AttendingYes {
			continue
		}

		stats.TotalAttending++
		stats.TotalChildren += row.ChildrenCount
		stats.TotalPets += row.PetsCount
		if row.ChildrenCount > 0 {
			stats.TotalWithChildren++
		}
		if row.PetsCount > 0 {
			stats.TotalWithPets++
		}

		drinks.add(effectiveDrink(row))
		if row.Accommodation != nil {
			accommodations.add(*row.Accommodation)
		}
	}

	stats.DrinkCounts = drinks.sorted()
	stats.AccommodationCounts = accommodations.sorted()
	return stats
}

func effectiveDrink(row RsvpSubmission) string {
	if row.DrinkChoice == nil {
		return ""
	}
	if DrinkChoice(*row.DrinkChoice) == DrinkOther && row.CustomDrink != nil && *row.CustomDrink != "" {
		return *row.CustomDrink
	}
	return *row.DrinkChoice
}

// orderedCounter counts string occurrences while remembering first-seen order
// so that equal counts render in a stable order.
type orderedCounter struct {
	counts map[string]int
	order  []string
}

func newOrderedCounter() *orderedCounter {
	return &orderedCounter{counts: make(map[string]int)}
}

func (c *orderedCounter) add(value string) {
	if value == "" {
		return
	}
	if _, seen := c.counts[value]; !seen {
		c.order = append(c.order, value)
	}
	c.counts[value]++
}

func (c *orderedCounter) sorted() []CountItem {
	items := make([]CountItem, 0, len(c.order))
	for _, value := range c.order {
		items = append(items, CountItem{Label: value, Count: c.counts[value]})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})
	return items
}

// String returns a one-line summary used in worker logs.
func (s *RsvpStats) String() string {
	return fmt.Sprintf(
		"Attending: %d, Children: %d, Pets: %d, Drinks: %d kinds, Accommodation: %d kinds",
		s.TotalAttending,
		s.TotalChildren,
		s.TotalPets,
		len(s.DrinkCounts),
		len(s.AccommodationCounts),
	)
}
