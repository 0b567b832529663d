// Package inventory builds stocked items from declarative fixtures.
package inventory

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vyrodovalexey/gildedrose/internal/model"
	"github.com/vyrodovalexey/gildedrose/internal/shop"
)

// Fixture errors.
var (
	ErrMissingCategory = errors.New("category is required")
	ErrEmptyInventory  = errors.New("inventory has no items")
)

// Entry is one item of a fixture document.
type Entry struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	SellIn   int    `yaml:"sell_in"`
	Quality  int    `yaml:"quality"`
}

// Document is the top-level fixture layout.
type Document struct {
	Items []Entry `yaml:"items"`
}

// Load decodes a YAML fixture from r and stocks its items in order.
func Load(r io.Reader) ([]*shop.StockedItem, error) {
	var doc Document

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInventory
		}
		return nil, fmt.Errorf("decoding inventory: %w", err)
	}

	if len(doc.Items) == 0 {
		return nil, ErrEmptyInventory
	}

	return Stock(doc.Items)
}

// LoadFile reads a YAML fixture from path.
func LoadFile(path string) ([]*shop.StockedItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening inventory: %w", err)
	}
	defer f.Close()

	items, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return items, nil
}

// Stock converts entries into stocked items. The first invalid entry aborts
// the whole batch.
func Stock(entries []Entry) ([]*shop.StockedItem, error) {
	items := make([]*shop.StockedItem, 0, len(entries))

	for i, e := range entries {
		if e.Category == "" {
			return nil, fmt.Errorf("item %d (%q): %w", i, e.Name, ErrMissingCategory)
		}

		category, err := model.ParseCategory(e.Category)
		if err != nil {
			return nil, fmt.Errorf("item %d (%q): %w", i, e.Name, err)
		}

		stocked, err := shop.NewStockedItem(category, e.Name, e.SellIn, e.Quality)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, stocked)
	}

	return items, nil
}

// Default returns the classic nine-item stock.
func Default() []Entry {
	return []Entry{
		{Name: "+5 Dexterity Vest", Category: "standard", SellIn: 10, Quality: 20},
		{Name: "Aged Brie", Category: "ripening", SellIn: 2, Quality: 0},
		{Name: "Elixir of the Mongoose", Category: "standard", SellIn: 5, Quality: 7},
		{Name: "Sulfuras, Hand of Ragnaros", Category: "legendary", SellIn: 0, Quality: 80},
		{Name: "Sulfuras, Hand of Ragnaros", Category: "legendary", SellIn: -1, Quality: 80},
		{Name: "Backstage passes to a TAFKAL80ETC concert", Category: "limited_event", SellIn: 15, Quality: 20},
		{Name: "Backstage passes to a TAFKAL80ETC concert", Category: "limited_event", SellIn: 10, Quality: 49},
		{Name: "Backstage passes to a TAFKAL80ETC concert", Category: "limited_event", SellIn: 5, Quality: 49},
		{Name: "Conjured Mana Cake", Category: "enhanced", SellIn: 3, Quality: 6},
	}
}
