package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/annonceo/marketplace-service/internal/platform/logger"
)

// MetricsManager holds the service's Prometheus metrics.
type MetricsManager struct {
	Registry                  *prometheus.Registry
	ListingsCreatedTotal      prometheus.Counter
	ListingsDeletedTotal      prometheus.Counter
	AttributeWritesTotal      prometheus.Counter
	ValidationFailuresTotal   *prometheus.CounterVec
	SellerRequestsTotal       *prometheus.CounterVec
	HTTPRequestLatencySeconds *prometheus.HistogramVec
}

// NewMetricsManager registers the marketplace metrics on a private registry.
func NewMetricsManager(serviceName string) *MetricsManager {
	registry := prometheus.NewRegistry()

	listingsCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "listings_created_total",
		Help:      "Total number of listings created.",
	})
	listingsDeleted := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "listings_deleted_total",
		Help:      "Total number of listings deleted.",
	})
	attributeWrites := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "attribute_values_written_total",
		Help:      "Total number of attribute values written or replaced.",
	})
	validationFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "attribute_validation_failures_total",
		Help:      "Total number of attribute validation failures by error code.",
	}, []string{"code"})
	sellerRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "seller_requests_total",
		Help:      "Total number of seller requests by outcome.",
	}, []string{"outcome"})
	httpLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: serviceName,
		Name:      "http_request_latency_seconds",
		Help:      "Latency of HTTP requests by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	registry.MustRegister(
		listingsCreated,
		listingsDeleted,
		attributeWrites,
		validationFailures,
		sellerRequests,
		httpLatency,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	return &MetricsManager{
		Registry:                  registry,
		ListingsCreatedTotal:      listingsCreated,
		ListingsDeletedTotal:      listingsDeleted,
		AttributeWritesTotal:      attributeWrites,
		ValidationFailuresTotal:   validationFailures,
		SellerRequestsTotal:       sellerRequests,
		HTTPRequestLatencySeconds: httpLatency,
	}
}

// StartMetricsServer exposes the registry on its own port. Blocks, so run it
// in a goroutine.
func StartMetricsServer(port string, appLogger *logger.Logger, registry *prometheus.Registry) error {
	if port == "" {
		appLogger.Info("metrics server port not configured, server will not start")
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	appLogger.Info("metrics server starting", zap.String("port", port), zap.String("path", "/metrics"))
	server := &http.Server{Addr: ":" + port, Handler: mux}
	return server.ListenAndServe()
}
