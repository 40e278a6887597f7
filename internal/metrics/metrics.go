package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tco"

var (
	// ToolCalls вызовы инструментов по итогу: success, validation_error, error
	ToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tool_calls_total",
			Help:      "Вызовы инструментов расчета стоимости владения",
		},
		[]string{"tool_name", "status"},
	)

	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculation_errors_total",
			Help:      "Отклоненные запросы и ошибки расчета",
		},
		[]string{"tool_name", "error_type"},
	)

	// APICalls обращения к инструментам по транспорту (mcp, http)
	APICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_calls_total",
			Help:      "Обращения к API калькулятора",
		},
		[]string{"service", "endpoint", "status"},
	)

	// ToolDuration время выполнения инструмента
	ToolDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tool_duration_seconds",
			Help:      "Длительность вызова инструмента",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"tool_name"},
	)

	// NetTotalCost итоговая стоимость владения за период по модели владения
	NetTotalCost = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "net_total_cost",
			Help:      "Итоговая стоимость владения в валюте страны",
			Buckets:   prometheus.ExponentialBuckets(50000, 2, 10),
		},
		[]string{"ownership_type"},
	)
)
