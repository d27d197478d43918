package memo

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// metrics records memoizer activity through the OpenTelemetry metric API.
// The default meter is a noop; embedders install a real one with WithMeter.
type metrics struct {
	hits  metric.Int64Counter
	miss  metric.Int64Counter
	evals metric.Int64Counter
}

func newMetrics(meter metric.Meter) (*metrics, error) {
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("memo")
	}

	hits, err := meter.Int64Counter(
		"memo.hits",
		metric.WithDescription("Calls answered from the store"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	miss, err := meter.Int64Counter(
		"memo.misses",
		metric.WithDescription("Calls that found no cached result"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	evals, err := meter.Int64Counter(
		"memo.evaluations",
		metric.WithDescription("Target invocations that stored a result"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	return &metrics{hits: hits, miss: miss, evals: evals}, nil
}

func (m *metrics) attrs(name string) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("memo.name", name))
}

func (m *metrics) recordHit(ctx context.Context, name string) {
	m.hits.Add(ctx, 1, m.attrs(name))
}

func (m *metrics) recordMiss(ctx context.Context, name string) {
	m.miss.Add(ctx, 1, m.attrs(name))
}

func (m *metrics) recordEvaluation(ctx context.Context, name string) {
	m.evals.Add(ctx, 1, m.attrs(name))
}
