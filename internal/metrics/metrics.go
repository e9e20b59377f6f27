package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"commentlens/internal/models"
)

const namespace = "commentlens"

var (
	persistedOutcomeDesc = prometheus.NewDesc(
		namespace+"_analysis_outcomes_persisted_total",
		"Total analysis requests by channel and outcome, as stored in the database",
		[]string{"channel", "outcome"},
		nil,
	)
)

// OutcomeStore persists aggregate outcome counts.
type OutcomeStore interface {
	IncrementOutcome(ctx context.Context, channel, outcome string) error
	GetAllOutcomes(ctx context.Context) ([]models.AnalysisOutcome, error)
}

// OutcomeCollector is a custom Prometheus collector that reads outcome
// counts from the store on each scrape.
type OutcomeCollector struct {
	store OutcomeStore
}

// Describe sends the metric descriptor to the channel.
func (c *OutcomeCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- persistedOutcomeDesc
}

// Collect queries the store for all outcome rows and emits them as counters.
func (c *OutcomeCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	outcomes, err := c.store.GetAllOutcomes(ctx)
	if err != nil {
		slog.Error("failed to collect analysis outcome metrics", "error", err)
		return
	}
	for _, o := range outcomes {
		ch <- prometheus.MustNewConstMetric(
			persistedOutcomeDesc,
			prometheus.CounterValue,
			float64(o.Count),
			o.Channel,
			o.Outcome,
		)
	}
}

// Recorder counts analysis outcomes in process and, when a store is
// configured, upserts them asynchronously.
type Recorder struct {
	store    OutcomeStore
	analyses *prometheus.CounterVec
	pending  sync.WaitGroup
}

// NewRecorder creates a recorder and registers its metrics with reg.
// store may be nil.
func NewRecorder(reg prometheus.Registerer, store OutcomeStore) *Recorder {
	r := &Recorder{
		store: store,
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Total analysis requests handled by this process, by channel and outcome",
		}, []string{"channel", "outcome"}),
	}

	reg.MustRegister(r.analyses)
	if store != nil {
		reg.MustRegister(&OutcomeCollector{store: store})
	}

	return r
}

// Record counts one outcome. The store write happens in the background and
// its failure is only logged.
func (r *Recorder) Record(channel, outcome string) {
	r.analyses.WithLabelValues(channel, outcome).Inc()

	if r.store == nil {
		return
	}

	r.pending.Add(1)
	go func() {
		defer r.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.store.IncrementOutcome(ctx, channel, outcome); err != nil {
			slog.Error("failed to record analysis outcome", "channel", channel, "outcome", outcome, "error", err)
		}
	}()
}

// Wait blocks until all background store writes have finished.
func (r *Recorder) Wait() {
	r.pending.Wait()
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the metrics with the default registry and initializes the
// package recorder. Must be called once at startup; store may be nil.
func Init(store OutcomeStore) {
	recorderOnce.Do(func() {
		recorder = NewRecorder(prometheus.DefaultRegisterer, store)
	})
}

// RecordOutcome records an analysis outcome on the package recorder.
// It is a no-op before Init.
func RecordOutcome(channel, outcome string) {
	if recorder == nil {
		return
	}
	recorder.Record(channel, outcome)
}

// Flush waits for pending store writes of the package recorder.
func Flush() {
	if recorder == nil {
		return
	}
	recorder.Wait()
}
