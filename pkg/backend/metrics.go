package backend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	joinRequestCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dugout",
		Subsystem: "backend",
		Name:      "join_requests_total",
		Help:      "The total number of join request transitions",
	}, []string{"action"})

	eventsDeletedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dugout",
		Subsystem: "backend",
		Name:      "events_deleted_total",
		Help:      "The total number of deleted events",
	})

	responsesSavedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dugout",
		Subsystem: "backend",
		Name:      "responses_saved_total",
		Help:      "The total number of saved attendance responses",
	})

	teamsCreatedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dugout",
		Subsystem: "backend",
		Name:      "teams_created_total",
		Help:      "The total number of created teams",
	})
)
