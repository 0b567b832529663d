// Package rules implements the per-category daily update rules.
package rules

import (
	"errors"
	"fmt"

	"github.com/vyrodovalexey/gildedrose/internal/model"
)

// ErrNoRule is returned when no rule is registered for a category.
var ErrNoRule = errors.New("no rule for category")

// Rule updates an item for one elapsed day.
type Rule interface {
	// UpdateQuality applies the category's quality change.
	UpdateQuality(item *model.Item)

	// UpdateSellIn advances the item's sell-by countdown.
	UpdateSellIn(item *model.Item)
}

// Tick applies one day to item: quality first, then sell-in.
func Tick(r Rule, item *model.Item) {
	r.UpdateQuality(item)
	r.UpdateSellIn(item)
}

// Policy is the frozen configuration of a rule variant.
type Policy struct {
	MinQuality int
	MaxQuality int
	// DailyChange is subtracted from quality each day; negative values make
	// quality rise.
	DailyChange int
}

// Per-category policies.
var (
	StandardPolicy = Policy{
		MinQuality:  model.MinQuality,
		MaxQuality:  model.MaxQuality,
		DailyChange: 1,
	}
	RipeningPolicy = Policy{
		MinQuality:  model.MinQuality,
		MaxQuality:  model.MaxQuality,
		DailyChange: -1,
	}
	EnhancedPolicy = Policy{
		MinQuality:  model.MinQuality,
		MaxQuality:  model.MaxQuality,
		DailyChange: 2,
	}
	LimitedEventPolicy = StandardPolicy
)

var registry = map[model.Category]Rule{
	model.Standard:     standard{policy: StandardPolicy},
	model.Ripening:     standard{policy: RipeningPolicy},
	model.Enhanced:     standard{policy: EnhancedPolicy},
	model.LimitedEvent: limitedEvent{standard: standard{policy: LimitedEventPolicy}},
	model.Legendary:    legendary{},
}

// For returns the rule bound to category.
func For(category model.Category) (Rule, error) {
	r, ok := registry[category]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoRule, category)
	}
	return r, nil
}

// Normalize returns the quality an item of category starts with. Legendary
// items always hold model.LegendaryQuality; other values pass through.
func Normalize(category model.Category, quality int) int {
	if category == model.Legendary {
		return model.LegendaryQuality
	}
	return quality
}

// standard decays quality by DailyChange, twice as fast once expired.
type standard struct {
	policy Policy
}

func (s standard) UpdateQuality(item *model.Item) {
	change := s.policy.DailyChange
	if item.SellIn <= 0 {
		change *= 2
	}
	item.Quality = clamp(item.Quality-change, s.policy.MinQuality, s.policy.MaxQuality)
}

func (s standard) UpdateSellIn(item *model.Item) {
	item.SellIn--
}

// limitedEvent gains value as the event approaches and is worthless after it.
type limitedEvent struct {
	standard
}

func (l limitedEvent) UpdateQuality(item *model.Item) {
	base := l.policy.DailyChange

	var increase int
	switch {
	case item.SellIn <= 0:
		item.Quality = 0
		return
	case item.SellIn > 10:
		increase = base
	case item.SellIn > 5:
		increase = 2 * base
	default:
		increase = 3 * base
	}

	item.Quality = min(l.policy.MaxQuality, item.Quality+increase)
}

// legendary never changes.
type legendary struct{}

func (legendary) UpdateQuality(*model.Item) {}

func (legendary) UpdateSellIn(*model.Item) {}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
