package engine

import "connectfour/experiments/metrics"

type Runner interface {
	// Run plays a game till there's a winner or the board is full
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
