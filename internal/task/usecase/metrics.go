package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	createTaskCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planner_tasks_created_total",
			Help: "Total number of Create operations",
		},
		[]string{"status"},
	)

	updateTaskCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planner_tasks_updated_total",
			Help: "Total number of Update operations",
		},
		[]string{"status"},
	)

	completedTaskCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planner_tasks_completed_total",
			Help: "Tasks moved to completed, by timeliness",
		},
		[]string{"status"},
	)

	deleteTaskCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "planner_tasks_deleted_total",
			Help: "Total number of deleted tasks",
		},
	)

	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "planner_operation_duration_seconds",
			Help:    "Duration of use case operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

const (
	statusSuccess = "success"
	statusError   = "error"
)
