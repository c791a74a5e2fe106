package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/appengine-ltd/immune-defense/internal/game"
)

const namespace = "immune_defense"

// Recorder counts controller events on its own registry. It implements
// game.Observer.
type Recorder struct {
	registry *prometheus.Registry

	events      *prometheus.CounterVec
	submissions *prometheus.CounterVec
	cleared     prometheus.Counter
	score       *prometheus.GaugeVec
	scenario    *prometheus.GaugeVec
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Controller events by kind.",
		}, []string{"kind"}),
		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Validated picks by result.",
		}, []string{"result"}),
		cleared: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scenarios_cleared_total",
			Help:      "Scenarios completed.",
		}),
		score: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "session_score",
			Help:      "Current score per session.",
		}, []string{"session"}),
		scenario: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "session_scenario_index",
			Help:      "Zero-based scenario index per session.",
		}, []string{"session"}),
	}
}

func (r *Recorder) Observe(e game.Event) {
	r.events.WithLabelValues(e.Kind.String()).Inc()
	switch e.Kind {
	case game.EventFeedback:
		result := "incorrect"
		if e.Feedback != nil && e.Feedback.Correct {
			result = "correct"
		}
		r.submissions.WithLabelValues(result).Inc()
	case game.EventScenarioComplete:
		r.cleared.Inc()
	}
	if e.SessionID != "" {
		r.score.WithLabelValues(e.SessionID).Set(float64(e.Score))
		r.scenario.WithLabelValues(e.SessionID).Set(float64(e.ScenarioIndex))
	}
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the recorder's registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
