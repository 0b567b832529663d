// Package shop holds stocked items and advances them one day at a time.
package shop

import (
	"fmt"

	"github.com/vyrodovalexey/gildedrose/internal/model"
	"github.com/vyrodovalexey/gildedrose/internal/observe"
	"github.com/vyrodovalexey/gildedrose/internal/rules"
)

// StockedItem is an item bound to the rule of its category. The binding is
// fixed at construction.
type StockedItem struct {
	item     model.Item
	category model.Category
	rule     rules.Rule
}

// NewStockedItem creates an item of the given category. Legendary items
// always start at model.LegendaryQuality; no other range checks are made.
func NewStockedItem(category model.Category, name string, sellIn, quality int) (*StockedItem, error) {
	rule, err := rules.For(category)
	if err != nil {
		return nil, fmt.Errorf("stock item %q: %w", name, err)
	}

	return &StockedItem{
		item: model.Item{
			Name:    name,
			SellIn:  sellIn,
			Quality: rules.Normalize(category, quality),
		},
		category: category,
		rule:     rule,
	}, nil
}

// Tick advances the item by one day.
func (s *StockedItem) Tick() {
	rules.Tick(s.rule, &s.item)
}

// Item returns a copy of the underlying record.
func (s *StockedItem) Item() model.Item {
	return s.item
}

// Category returns the category the item was stocked under.
func (s *StockedItem) Category() model.Category {
	return s.category
}

// String renders the item as "<name>, <sell_in>, <quality>".
func (s *StockedItem) String() string {
	return s.item.String()
}

// Option configures a Shop.
type Option func(*Shop)

// WithObserver registers an observer notified after every item tick.
func WithObserver(o observe.Observer) Option {
	return func(s *Shop) {
		s.observer = o
	}
}

// Shop is an ordered collection of stocked items. It is not safe for
// concurrent use.
type Shop struct {
	items    []*StockedItem
	observer observe.Observer
	day      int
}

// New creates a Shop over items, keeping their order.
func New(items []*StockedItem, opts ...Option) *Shop {
	s := &Shop{
		items: items,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// UpdateQualityForAll ticks every item exactly once, in stored order.
func (s *Shop) UpdateQualityForAll() {
	for i, stocked := range s.items {
		before := stocked.item
		stocked.Tick()

		if s.observer != nil {
			s.observer.ItemTicked(observe.TickEvent{
				Day:      s.day,
				Index:    i,
				Category: stocked.category,
				Before:   before,
				After:    stocked.item,
			})
		}
	}
	s.day++
}

// Items returns a snapshot of the item records in stored order.
func (s *Shop) Items() []model.Item {
	items := make([]model.Item, 0, len(s.items))
	for _, stocked := range s.items {
		items = append(items, stocked.item)
	}
	return items
}

// Len returns the number of stocked items.
func (s *Shop) Len() int {
	return len(s.items)
}

// Day returns the number of completed UpdateQualityForAll calls.
func (s *Shop) Day() int {
	return s.day
}
