package client

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	clienterrors "github.com/mycelian/shopsearch/client/internal/errors"
)

const (
	opSearch = "search"
	opHealth = "health"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shopsearch_client",
			Name:      "requests_total",
			Help:      "Requests issued to the search service by outcome.",
		},
		[]string{"op", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "shopsearch_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of a request including body decode.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{"op"},
	)
)

func observe(op string, start time.Time, err error) {
	requestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(op, outcome(err)).Inc()
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "canceled"
	}
	if c, ok := clienterrors.CategoryOf(err); ok {
		return c.String()
	}
	return "error"
}
