package telemetry_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"

	"github.com/jsamuelsen11/go-todo-web/internal/platform/telemetry"
)

func TestInitTracer_Stdout(t *testing.T) {
	ctx := context.Background()

	tp, err := telemetry.InitTracer(ctx, "todo-web-test", telemetry.ExporterStdout, "")
	if err != nil {
		t.Fatalf("InitTracer(stdout) error = %v", err)
	}
	t.Cleanup(func() {
		if err := tp.Shutdown(ctx); err != nil {
			t.Errorf("Shutdown error = %v", err)
		}
	})

	if tp == nil {
		t.Fatal("InitTracer(stdout) returned nil TracerProvider")
	}
}

func TestInitTracer_OTLP(t *testing.T) {
	ctx := context.Background()

	tp, err := telemetry.InitTracer(ctx, "todo-web-test", telemetry.ExporterOTLP, "http://localhost:4318")
	if err != nil {
		t.Fatalf("InitTracer(otlp) error = %v", err)
	}
	t.Cleanup(func() {
		// Shutdown may fail when no collector is running; this is expected in unit tests.
		_ = tp.Shutdown(ctx)
	})

	if tp == nil {
		t.Fatal("InitTracer(otlp) returned nil TracerProvider")
	}
}

func TestInitTracer_SetsGlobalPropagator(t *testing.T) {
	ctx := context.Background()

	tp, err := telemetry.InitTracer(ctx, "todo-web-test", telemetry.ExporterStdout, "")
	if err != nil {
		t.Fatalf("InitTracer error = %v", err)
	}
	t.Cleanup(func() {
		if err := tp.Shutdown(ctx); err != nil {
			t.Errorf("Shutdown error = %v", err)
		}
	})

	prop := otel.GetTextMapPropagator()
	if _, ok := prop.(propagation.TraceContext); ok {
		// Single TraceContext is fine but we expect a composite.
		return
	}
	// Composite propagator should have non-empty Fields().
	if len(prop.Fields()) == 0 {
		t.Error("global propagator has no fields, want TraceContext + Baggage fields")
	}
}

func TestInit_RejectsBadExporterSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		exporter string
		endpoint string
	}{
		{"unsupported exporter", "invalid", ""},
		{"otlp without endpoint", telemetry.ExporterOTLP, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()

			if _, err := telemetry.InitTracer(ctx, "todo-web-test", tt.exporter, tt.endpoint); err == nil {
				t.Error("InitTracer returned nil error, want error")
			}
			if _, err := telemetry.InitMeter(ctx, "todo-web-test", tt.exporter, tt.endpoint); err == nil {
				t.Error("InitMeter returned nil error, want error")
			}
		})
	}
}

func TestInitMeter_Stdout(t *testing.T) {
	ctx := context.Background()

	mp, err := telemetry.InitMeter(ctx, "todo-web-test", telemetry.ExporterStdout, "")
	if err != nil {
		t.Fatalf("InitMeter(stdout) error = %v", err)
	}
	t.Cleanup(func() {
		if err := mp.Shutdown(ctx); err != nil {
			t.Errorf("Shutdown error = %v", err)
		}
	})

	if mp == nil {
		t.Fatal("InitMeter(stdout) returned nil MeterProvider")
	}
}

func TestInitMeter_OTLP(t *testing.T) {
	ctx := context.Background()

	mp, err := telemetry.InitMeter(ctx, "todo-web-test", telemetry.ExporterOTLP, "http://localhost:4318")
	if err != nil {
		t.Fatalf("InitMeter(otlp) error = %v", err)
	}
	t.Cleanup(func() {
		// Shutdown may fail when no collector is running; this is expected in unit tests.
		_ = mp.Shutdown(ctx)
	})

	if mp == nil {
		t.Fatal("InitMeter(otlp) returned nil MeterProvider")
	}
}

func TestNewMetrics(t *testing.T) {
	ctx := context.Background()

	mp, err := telemetry.InitMeter(ctx, "todo-web-test", telemetry.ExporterStdout, "")
	if err != nil {
		t.Fatalf("InitMeter error = %v", err)
	}
	t.Cleanup(func() {
		if err := mp.Shutdown(ctx); err != nil {
			t.Errorf("Shutdown error = %v", err)
		}
	})

	metrics, err := telemetry.NewMetrics(mp, "todo-web-test")
	if err != nil {
		t.Fatalf("NewMetrics error = %v", err)
	}

	if metrics.ServerRequestDuration == nil {
		t.Error("ServerRequestDuration is nil")
	}
	if metrics.ServerRequestTotal == nil {
		t.Error("ServerRequestTotal is nil")
	}
	if metrics.DBOperationDuration == nil {
		t.Error("DBOperationDuration is nil")
	}
	if metrics.DBOperationTotal == nil {
		t.Error("DBOperationTotal is nil")
	}
}

func TestNewMetrics_NoopProvider(t *testing.T) {
	t.Parallel()

	metrics, err := telemetry.NewMetrics(noop.NewMeterProvider(), "todo-web-test")
	if err != nil {
		t.Fatalf("NewMetrics error = %v", err)
	}

	// Recording on noop instruments must not panic.
	ctx := context.Background()
	metrics.DBOperationTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrDBOperation.String("insert"),
		telemetry.AttrResult.String("success"),
	))
	metrics.ServerRequestDuration.Record(ctx, 0.01)
}
