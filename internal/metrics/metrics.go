package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"portfoliochat/internal/models"
)

var (
	chatRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_chat_requests_total",
		Help: "Chat questions answered, by selected intent",
	}, []string{"intent"})

	chatErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_chat_errors_total",
		Help: "Chat requests rejected, by error code",
	}, []string{"code"})

	intentLookupDesc = prometheus.NewDesc(
		"portfolio_intent_lookups_total",
		"Persisted intent hit count across restarts",
		[]string{"intent"},
		nil,
	)
)

// IntentStore persists aggregate intent counts.
type IntentStore interface {
	IncrementIntentLookup(ctx context.Context, intent string) error
	GetAllIntentLookups(ctx context.Context) ([]models.IntentLookup, error)
}

// IntentCollector is a custom Prometheus collector that reads intent hit
// counts from the store on each scrape.
type IntentCollector struct {
	store IntentStore
}

// NewIntentCollector creates a collector over store.
func NewIntentCollector(store IntentStore) *IntentCollector {
	return &IntentCollector{store: store}
}

// Describe sends the metric descriptor to the channel.
func (c *IntentCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- intentLookupDesc
}

// Collect queries the store for all intent counts and emits them as counters.
func (c *IntentCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	lookups, err := c.store.GetAllIntentLookups(ctx)
	if err != nil {
		slog.Error("failed to collect intent lookup metrics", "error", err)
		return
	}
	for _, l := range lookups {
		ch <- prometheus.MustNewConstMetric(
			intentLookupDesc,
			prometheus.CounterValue,
			float64(l.Count),
			l.Intent,
		)
	}
}

// Recorder provides async intent recording to a store.
type Recorder struct {
	store IntentStore
	wg    sync.WaitGroup
}

// NewRecorder creates a recorder writing to store.
func NewRecorder(store IntentStore) *Recorder {
	return &Recorder{store: store}
}

// RecordIntent asynchronously increments the persisted count of intent.
func (r *Recorder) RecordIntent(intent string) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.store.IncrementIntentLookup(ctx, intent); err != nil {
			slog.Error("failed to record intent lookup", "intent", intent, "error", err)
		}
	}()
}

// Wait blocks until pending writes have finished.
func (r *Recorder) Wait() {
	r.wg.Wait()
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the custom collector and initializes the recorder.
// Must be called once at startup, and only when a store is configured.
func Init(store IntentStore) {
	recorderOnce.Do(func() {
		recorder = NewRecorder(store)
		prometheus.MustRegister(NewIntentCollector(store))
	})
}

// Flush waits for pending persisted writes, if a store is configured.
func Flush() {
	if recorder != nil {
		recorder.Wait()
	}
}

// RecordIntent counts an answered question and persists it when a store is
// configured.
func RecordIntent(intent string) {
	chatRequests.WithLabelValues(intent).Inc()
	if recorder != nil {
		recorder.RecordIntent(intent)
	}
}

// RecordError counts a rejected chat request by error code.
func RecordError(code string) {
	chatErrors.WithLabelValues(code).Inc()
}
