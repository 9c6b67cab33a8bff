package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "resume_api_http_requests_total",
		Help: "HTTP-запросы по методу и коду ответа.",
	}, []string{"method", "status"})

	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "resume_api_http_request_seconds",
		Help:    "Длительность обработки HTTP-запроса.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	ConsumedMessages = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "resume_api_consumed_messages_total",
		Help: "Обработанные сообщения Kafka по топику и исходу.",
	}, []string{"topic", "outcome"})

	ProducedMessages = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "resume_api_produced_messages_total",
		Help: "Отправленные сообщения Kafka по топику.",
	}, []string{"topic"})

	ExperienceCalculations = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "resume_api_experience_calculations_total",
		Help: "Вызовы расчёта суммарного стажа.",
	})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, ConsumedMessages, ProducedMessages, ExperienceCalculations)
}

// Handler — /metrics для fasthttp-роутера.
func Handler() fasthttp.RequestHandler {
	return fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
}
