// Package names implements the chip-input core: sanitizing free-text person
// names and maintaining a bounded, deduplicated list of committed entries.
package names

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	DefaultMaxNames   = 10
	DefaultMaxLength  = 50
	MinCommittedChars = 2
)

var (
	ErrTooShort    = errors.New("Jméno musí mít alespoň 2 znaky")
	ErrDuplicate   = errors.New("Toto jméno již bylo přidáno")
	ErrMaxReached  = errors.New("Dosažen maximální počet jmen")
	ErrEmptyResult = errors.New("empty after sanitization")
)

// Sanitize normalizes raw chip input: trim, collapse internal whitespace to
// single spaces, strip angle brackets, drop every character that is not a
// letter (accented letters included), space, hyphen or apostrophe, then
// truncate to maxLength runes. maxLength <= 0 means DefaultMaxLength.
func Sanitize(raw string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	collapsed := strings.Join(strings.Fields(raw), " ")

	var b strings.Builder
	for _, r := range collapsed {
		switch {
		case r == '<' || r == '>':
			// stripped outright
		case unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'':
			b.WriteRune(r)
		}
	}

	runes := []rune(strings.TrimSpace(b.String()))
	if len(runes) > maxLength {
		runes = runes[:maxLength]
	}
	return string(runes)
}

// List is an ordered collection of committed names with a pending-entry
// contract matching the chip input widget.
type List struct {
	names     []string
	maxNames  int
	maxLength int
}

func NewList(maxNames, maxLength int) *List {
	if maxNames <= 0 {
		maxNames = DefaultMaxNames
	}
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &List{maxNames: maxNames, maxLength: maxLength}
}

// Commit sanitizes raw and appends it to the list. An input that sanitizes
// to the empty string is a silent no-op returning ErrEmptyResult so callers
// can distinguish it from an accepted entry without treating it as a user
// error. Too-short, limit and case-insensitive duplicate violations reject
// the entry and leave the list unchanged.
func (l *List) Commit(raw string) (string, error) {
	sanitized := Sanitize(raw, l.maxLength)

	if sanitized == "" {
		return "", ErrEmptyResult
	}
	if len([]rune(sanitized)) < MinCommittedChars {
		return "", ErrTooShort
	}
	if len(l.names) >= l.maxNames {
		return "", ErrMaxReached
	}
	if l.contains(sanitized) {
		return "", ErrDuplicate
	}

	l.names = append(l.names, sanitized)
	return sanitized, nil
}

// CommitPasted splits pasted text on commas and semicolons and commits each
// segment independently. Segments that are too short, duplicated or past the
// limit are skipped silently. Returns the names actually added.
func (l *List) CommitPasted(text string) []string {
	segments := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';'
	})

	var added []string
	for _, segment := range segments {
		if name, err := l.Commit(segment); err == nil {
			added = append(added, name)
		}
	}
	return added
}

// RemoveAt removes the entry at index and returns it. Out-of-range indexes
// return false.
func (l *List) RemoveAt(index int) (string, bool) {
	if index < 0 || index >= len(l.names) {
		return "", false
	}
	removed := l.names[index]
	l.names = append(l.names[:index], l.names[index+1:]...)
	return removed, true
}

// RemoveLast removes the most recently committed entry (the Backspace-on-
// empty-buffer behavior).
func (l *List) RemoveLast() (string, bool) {
	return l.RemoveAt(len(l.names) - 1)
}

// Names returns a copy of the committed entries in commit order.
func (l *List) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

func (l *List) Len() int {
	return len(l.names)
}

func (l *List) contains(name string) bool {
	for _, existing := range l.names {
		if strings.EqualFold(existing, name) {
			return true
		}
	}
	return false
}

// AddedStatus and RemovedStatus are the human-readable strings announced to
// assistive technology after a successful add or remove.
func AddedStatus(name string) string {
	return fmt.Sprintf("Přidáno %s", name)
}

func RemovedStatus(name string) string {
	return fmt.Sprintf("Odstraněno %s", name)
}
