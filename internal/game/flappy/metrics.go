package flappy

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/vovakirdan/tui-flappy/internal/game/flappy"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// metrics are the run counters. Without a configured meter provider every
// instrument is a no-op.
type metrics struct {
	runsStarted  metric.Int64Counter
	runsEnded    metric.Int64Counter
	pipesSpawned metric.Int64Counter
	points       metric.Int64Counter
}

func newMetrics(m metric.Meter) (*metrics, error) {
	var (
		mt  metrics
		err error
	)

	mt.runsStarted, err = m.Int64Counter(
		"flappy.runs.started",
		metric.WithDescription("Runs started from the idle screen"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating runs started counter: %w", err)
	}

	mt.runsEnded, err = m.Int64Counter(
		"flappy.runs.ended",
		metric.WithDescription("Runs ended by a crash"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating runs ended counter: %w", err)
	}

	mt.pipesSpawned, err = m.Int64Counter(
		"flappy.pipes.spawned",
		metric.WithDescription("Pipe pairs spawned"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pipes spawned counter: %w", err)
	}

	mt.points, err = m.Int64Counter(
		"flappy.score.points",
		metric.WithDescription("Points scored across all runs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating points counter: %w", err)
	}

	return &mt, nil
}

func (m *metrics) runStarted() {
	m.runsStarted.Add(context.Background(), 1)
}

func (m *metrics) runEnded(cause string) {
	m.runsEnded.Add(context.Background(), 1, metric.WithAttributes(attribute.String("cause", cause)))
}

func (m *metrics) pairSpawned() {
	m.pipesSpawned.Add(context.Background(), 1)
}

func (m *metrics) scored() {
	m.points.Add(context.Background(), 1)
}
