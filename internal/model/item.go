// Package model defines data structures used throughout the application.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// Quality bounds shared by the rule set.
const (
	MinQuality       = 0
	MaxQuality       = 50
	LegendaryQuality = 80
)

// ErrUnknownCategory is returned when a category tag does not name one of the
// supported categories.
var ErrUnknownCategory = errors.New("unknown item category")

// Item is a single inventory record. It carries no behavior; its owning rule
// mutates it once per tick.
type Item struct {
	Name    string `json:"name" yaml:"name"`
	SellIn  int    `json:"sell_in" yaml:"sell_in"`
	Quality int    `json:"quality" yaml:"quality"`
}

// String renders the item as "<name>, <sell_in>, <quality>".
func (i Item) String() string {
	return fmt.Sprintf("%s, %d, %d", i.Name, i.SellIn, i.Quality)
}

// Category selects the rule an item is bound to at construction.
type Category int

// Supported categories.
const (
	Standard Category = iota + 1
	Ripening
	LimitedEvent
	Enhanced
	Legendary
)

var categoryNames = map[Category]string{
	Standard:     "standard",
	Ripening:     "ripening",
	LimitedEvent: "limited_event",
	Enhanced:     "enhanced",
	Legendary:    "legendary",
}

// Categories returns every supported category in declaration order.
func Categories() []Category {
	return []Category{Standard, Ripening, LimitedEvent, Enhanced, Legendary}
}

// String returns the canonical tag of the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Valid reports whether c is one of the supported categories.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// ParseCategory converts a tag such as "limited_event" into a Category.
// Matching ignores case and surrounding whitespace; "-" and " " are accepted
// in place of "_".
func ParseCategory(tag string) (Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(tag))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	for _, c := range Categories() {
		if categoryNames[c] == normalized {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, tag)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
