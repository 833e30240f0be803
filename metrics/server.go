package metrics

import (
	"expvar"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Expvar metrics
	WebhookMessageReceivedCount = expvar.NewInt("webhook_message_received_count")
	WebhookMessageSentCount     = expvar.NewInt("webhook_message_sent_count")
	EmptyLLMResponseCount       = expvar.NewInt("empty_llm_response_count")
	SuccessfulLLMGenCount       = expvar.NewInt("successful_llm_gen_count")
	FailedLLMGenCount           = expvar.NewInt("failed_llm_gen_count")
	SportsAnswerCount           = expvar.NewInt("sports_answer_count")
	SportsNotFoundCount         = expvar.NewInt("sports_not_found_count")
	SportsFallbackCount         = expvar.NewInt("sports_fallback_count")
	CronMessageSentCount        = expvar.NewInt("cron_message_sent_count")

	// Prometheus metrics with labels
	ProviderCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sports_provider_calls_total",
			Help: "Total number of sports provider API calls by sport, operation and outcome",
		},
		[]string{"sport", "operation", "outcome"},
	)

	ProviderCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sports_provider_call_duration_seconds",
			Help:    "Duration of sports provider API calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"sport", "operation"},
	)

	PushesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "daily_pushes_total",
			Help: "Total number of daily push messages by source and outcome",
		},
		[]string{"source", "outcome"},
	)
)

type Server struct {
	*http.Server
}

func SetupServer() *Server {

	// pprof is setup by importing the net/http/pprof package
	server := &http.Server{
		Addr:         ":6060",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// setup expvar cache
	WebhookMessageReceivedCount.Set(0)
	WebhookMessageSentCount.Set(0)
	EmptyLLMResponseCount.Set(0)
	SuccessfulLLMGenCount.Set(0)
	FailedLLMGenCount.Set(0)
	SportsAnswerCount.Set(0)
	SportsNotFoundCount.Set(0)
	SportsFallbackCount.Set(0)
	CronMessageSentCount.Set(0)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewExpvarCollector(
			map[string]*prometheus.Desc{
				"webhook_message_received_count": prometheus.NewDesc("webhook_message_received_count", "number of inbound whatsapp messages received", nil, nil),
				"webhook_message_sent_count":     prometheus.NewDesc("webhook_message_sent_count", "number of outbound whatsapp messages sent", nil, nil),
				"empty_llm_response_count":       prometheus.NewDesc("empty_llm_response_count", "number of times llm responded with an empty string", nil, nil),
				"successful_llm_gen_count":       prometheus.NewDesc("successful_llm_gen_count", "number of times llm generated a valid response", nil, nil),
				"failed_llm_gen_count":           prometheus.NewDesc("failed_llm_gen_count", "number of times errors occured in llm generation", nil, nil),
				"sports_answer_count":            prometheus.NewDesc("sports_answer_count", "number of sports questions answered with a result", nil, nil),
				"sports_not_found_count":         prometheus.NewDesc("sports_not_found_count", "number of sports questions answered with a not-found sentence", nil, nil),
				"sports_fallback_count":          prometheus.NewDesc("sports_fallback_count", "number of sports questions that fell back to the llm", nil, nil),
				"cron_message_sent_count":        prometheus.NewDesc("cron_message_sent_count", "number of scheduled push messages sent", nil, nil),
			},
		),
		ProviderCallsTotal,
		ProviderCallDuration,
		PushesTotal,
	)

	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	http.HandleFunc("/healthz", healthzHandler)
	return &Server{server}
}

// healthzHandler returns a simple health check response
func healthzHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) Run() {
	_ = s.ListenAndServe()
}
