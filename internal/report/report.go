// Package report renders day-by-day inventory listings.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/vyrodovalexey/gildedrose/internal/shop"
)

// ErrNegativeDays is returned when a simulation is asked to run backwards.
var ErrNegativeDays = errors.New("days cannot be negative")

// Simulate writes the listing for each of days days, advancing the shop once
// after each listing.
func Simulate(w io.Writer, s *shop.Shop, days int) error {
	if days < 0 {
		return ErrNegativeDays
	}

	bw := bufio.NewWriter(w)
	for day := 0; day < days; day++ {
		if err := WriteDay(bw, day, s); err != nil {
			return err
		}
		s.UpdateQualityForAll()
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing report: %w", err)
	}

	return nil
}

// WriteDay writes a single day's header and item lines followed by a blank
// line.
func WriteDay(w io.Writer, day int, s *shop.Shop) error {
	if _, err := fmt.Fprintf(w, "-------- day %d --------\nname, sellIn, quality\n", day); err != nil {
		return fmt.Errorf("writing day %d: %w", day, err)
	}

	for _, item := range s.Items() {
		if _, err := fmt.Fprintln(w, item); err != nil {
			return fmt.Errorf("writing day %d: %w", day, err)
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("writing day %d: %w", day, err)
	}

	return nil
}
