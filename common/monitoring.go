package common

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/weaveworks/common/instrument"
)

const (
	// PrometheusNamespace prefixes every metric the responder exports.
	PrometheusNamespace = "hello"
)

var (
	// RequestDuration times each request answered on the responder port,
	// labelled the way weaveworks/common/middleware.Instrument observes.
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: PrometheusNamespace,
		Name:      "request_duration_seconds",
		Help:      "Time (in seconds) spent answering requests on the responder port.",
		Buckets:   instrument.DefBuckets,
	}, []string{"method", "route", "status_code", "ws"})
)
