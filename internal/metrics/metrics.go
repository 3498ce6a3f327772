package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	mockInterviewer = "mock_interviewer"

	interviewsTotal  = "interviews_total"
	evaluationsTotal = "evaluations_total"
	storeWritesTotal = "store_writes_total"
	sessionsActive   = "sessions_active"

	resultLabel = "result"
)

const (
	ResultSucceeded = "succeeded"
	ResultFailed    = "failed"
	// ResultDegraded marks an evaluation replaced by the neutral default.
	ResultDegraded = "degraded"
)

var resultLabels = []string{
	resultLabel,
}

var interviewsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: mockInterviewer,
		Name:      interviewsTotal,
		Help:      "number of conducted interviews by outcome",
	},
	resultLabels,
)

var evaluationsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: mockInterviewer,
		Name:      evaluationsTotal,
		Help:      "number of answer evaluations by outcome",
	},
	resultLabels,
)

var storeWritesTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: mockInterviewer,
		Name:      storeWritesTotal,
		Help:      "number of candidate workbook writes by outcome",
	},
	resultLabels,
)

var sessionsActiveMetric = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Subsystem: mockInterviewer,
		Name:      sessionsActive,
		Help:      "number of live interview sessions",
	},
)

func IncreaseInterviewsMetric(result string) {
	interviewsTotalMetric.With(prometheus.Labels{resultLabel: result}).Inc()
}

func IncreaseEvaluationsMetric(result string) {
	evaluationsTotalMetric.With(prometheus.Labels{resultLabel: result}).Inc()
}

func IncreaseStoreWritesMetric(result string) {
	storeWritesTotalMetric.With(prometheus.Labels{resultLabel: result}).Inc()
}

func UpdateSessionsActiveMetric(count int) {
	sessionsActiveMetric.Set(float64(count))
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(interviewsTotalMetric)
	prometheus.MustRegister(evaluationsTotalMetric)
	prometheus.MustRegister(storeWritesTotalMetric)
	prometheus.MustRegister(sessionsActiveMetric)
}
