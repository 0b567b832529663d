// Package observe provides optional hooks that watch item updates without
// affecting them.
package observe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/vyrodovalexey/gildedrose/internal/model"
)

// TickEvent describes a single item update.
type TickEvent struct {
	// Day is the zero-based day being processed.
	Day      int
	Index    int
	Category model.Category
	Before   model.Item
	After    model.Item
}

// Expired reports whether the item was past its sell-by date when the tick
// started.
func (e TickEvent) Expired() bool {
	return e.Before.SellIn <= 0
}

// QualityChange returns the signed quality delta of the tick.
func (e TickEvent) QualityChange() int {
	return e.After.Quality - e.Before.Quality
}

// Observer receives an event after every item tick.
type Observer interface {
	ItemTicked(ev TickEvent)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ev TickEvent)

// ItemTicked calls f(ev).
func (f ObserverFunc) ItemTicked(ev TickEvent) {
	f(ev)
}

// Chain creates a single observer that notifies each of observers in order.
// Nil observers are skipped.
func Chain(observers ...Observer) Observer {
	active := make([]Observer, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			active = append(active, o)
		}
	}

	return ObserverFunc(func(ev TickEvent) {
		for _, o := range active {
			o.ItemTicked(ev)
		}
	})
}

// Logging returns an observer that logs every tick at Debug level.
func Logging(logger *zap.Logger) Observer {
	return ObserverFunc(func(ev TickEvent) {
		if ce := logger.Check(zap.DebugLevel, "item ticked"); ce != nil {
			ce.Write(
				zap.Int("day", ev.Day),
				zap.Int("index", ev.Index),
				zap.String("name", ev.Before.Name),
				zap.Stringer("category", ev.Category),
				zap.Int("sell_in_before", ev.Before.SellIn),
				zap.Int("sell_in_after", ev.After.SellIn),
				zap.Int("quality_before", ev.Before.Quality),
				zap.Int("quality_after", ev.After.Quality),
				zap.Bool("expired", ev.Expired()),
			)
		}
	})
}

// MetricsObserver records Prometheus metrics for item ticks.
type MetricsObserver struct {
	ticksTotal        *prometheus.CounterVec
	expiredTicksTotal *prometheus.CounterVec
	qualityChange     *prometheus.HistogramVec
}

// Metrics creates a MetricsObserver and registers its collectors with reg.
func Metrics(reg prometheus.Registerer) *MetricsObserver {
	factory := promauto.With(reg)

	return &MetricsObserver{
		ticksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gildedrose_item_ticks_total",
				Help: "Total number of item ticks",
			},
			[]string{"category"},
		),
		expiredTicksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gildedrose_item_expired_ticks_total",
				Help: "Total number of ticks applied to items past their sell-by date",
			},
			[]string{"category"},
		),
		qualityChange: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gildedrose_quality_change",
				Help:    "Signed quality change per item tick",
				Buckets: []float64{-50, -4, -2, -1, 0, 1, 2, 3},
			},
			[]string{"category"},
		),
	}
}

// ItemTicked implements Observer.
func (m *MetricsObserver) ItemTicked(ev TickEvent) {
	category := ev.Category.String()

	m.ticksTotal.WithLabelValues(category).Inc()
	if ev.Expired() {
		m.expiredTicksTotal.WithLabelValues(category).Inc()
	}
	m.qualityChange.WithLabelValues(category).Observe(float64(ev.QualityChange()))
}
