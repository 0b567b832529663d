package shop

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/vyrodovalexey/gildedrose/internal/model"
	"github.com/vyrodovalexey/gildedrose/internal/observe"
)

func benchmarkStock(b *testing.B, n int) []*StockedItem {
	b.Helper()

	categories := model.Categories()
	items := make([]*StockedItem, 0, n)
	for i := 0; i < n; i++ {
		item, err := NewStockedItem(categories[i%len(categories)], fmt.Sprintf("item-%d", i), 15-i%30, i%51)
		if err != nil {
			b.Fatalf("NewStockedItem() error = %v", err)
		}
		items = append(items, item)
	}
	return items
}

// BenchmarkUpdateQualityForAll measures a day tick over a large stock
// without observers.
func BenchmarkUpdateQualityForAll(b *testing.B) {
	s := New(benchmarkStock(b, 10_000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.UpdateQualityForAll()
	}
}

// BenchmarkUpdateQualityForAll_Observed measures the overhead of the logging
// and metrics observers with debug logging disabled.
func BenchmarkUpdateQualityForAll_Observed(b *testing.B) {
	obs := observe.Chain(
		observe.Logging(zap.NewNop()),
		observe.Metrics(prometheus.NewRegistry()),
	)
	s := New(benchmarkStock(b, 10_000), WithObserver(obs))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.UpdateQualityForAll()
	}
}
