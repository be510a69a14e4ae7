// Package database provides the bounded SQLite connection pool shared by all
// request handlers. Every storage operation runs through WithConn, which
// applies, in order:
//
//	Circuit Breaker → OTEL Span → Acquire (bounded wait) → callback → Release
//
// Construction:
//
//	pool, err := database.Open(&cfg.Database, metrics, logger)
//	defer pool.Close()
//
// Running one statement:
//
//	err := pool.WithConn(ctx, "insert", func(ctx context.Context, conn *sql.Conn) error {
//	    _, err := conn.ExecContext(ctx, "INSERT INTO todo (text) VALUES (?)", text)
//	    return err
//	})
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	// Registers the pure Go "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"

	"github.com/jsamuelsen11/go-todo-web/internal/domain"
	"github.com/jsamuelsen11/go-todo-web/internal/platform/config"
	"github.com/jsamuelsen11/go-todo-web/internal/platform/telemetry"
)

const (
	driverName = "sqlite"
	poolName   = "database"
)

// Pool is a bounded, concurrency-safe pool of SQLite connections.
type Pool struct {
	db             *sql.DB
	path           string
	acquireTimeout time.Duration
	breaker        *gobreaker.CircuitBreaker[struct{}]
	metrics        *telemetry.Metrics
	logger         *slog.Logger
}

// Open creates the database directory if needed and returns a pool over the
// SQLite file at cfg.Path. No connection is made until first use.
// If metrics is nil, metric recording is skipped.
func Open(cfg *config.DatabaseConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*Pool, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open(driverName, dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        poolName,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		IsSuccessful: isHealthyOutcome,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Pool{
		db:             db,
		path:           cfg.Path,
		acquireTimeout: cfg.AcquireTimeout,
		breaker:        cb,
		metrics:        metrics,
		logger:         logger,
	}, nil
}

// isHealthyOutcome reports whether err leaves the breaker's failure count
// untouched. Only failures to reach the store count against it. Statement
// errors, abandoned requests and acquire waits that ran out on a busy pool
// do not.
func isHealthyOutcome(err error) bool {
	return err == nil ||
		!errors.Is(err, domain.ErrConnection) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// dsn builds a modernc.org/sqlite file URI with the busy timeout and WAL
// journal applied to every pooled connection. The path is escaped so that
// '?', '#' and '%' in it stay part of the file name.
func dsn(cfg *config.DatabaseConfig) string {
	path := (&url.URL{Path: filepath.ToSlash(cfg.Path)}).EscapedPath()
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		path, cfg.BusyTimeout.Milliseconds())
}

// WithConn acquires a connection, passes it to fn, and always releases it
// before returning. Acquisition waits at most the configured acquire timeout
// (or less if ctx ends first).
//
// Acquisition failures and breaker rejections are returned as
// domain.ConnectionError. Errors from fn are returned unchanged, so fn is
// expected to return kinded errors itself.
func (p *Pool) WithConn(ctx context.Context, op string, fn func(ctx context.Context, conn *sql.Conn) error) error {
	start := time.Now()

	_, err := p.breaker.Execute(func() (struct{}, error) {
		spanCtx, span := p.startSpan(ctx, op)
		defer span.End()

		conn, err := p.acquire(spanCtx, op)
		if err != nil {
			finishSpan(span, err)
			return struct{}{}, err
		}
		defer func() {
			if cerr := conn.Close(); cerr != nil {
				p.logger.WarnContext(spanCtx, "releasing connection",
					slog.String("operation", op),
					slog.Any("error", cerr),
				)
			}
		}()

		err = fn(spanCtx, conn)
		finishSpan(span, err)
		return struct{}{}, err
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = domain.ConnectionError(op, err)
	}

	p.recordMetrics(ctx, op, start, err)

	return err
}

func (p *Pool) acquire(ctx context.Context, op string) (*sql.Conn, error) {
	ctx, cancel := context.WithTimeout(ctx, p.acquireTimeout)
	defer cancel()

	conn, err := p.db.Conn(ctx)
	if err != nil {
		return nil, domain.ConnectionError(op, err)
	}
	return conn, nil
}

// Name identifies the pool in health check results.
func (p *Pool) Name() string {
	return poolName
}

// HealthCheck reports the breaker state and, when closed, pings the database.
func (p *Pool) HealthCheck(ctx context.Context) error {
	switch state := p.breaker.State(); state {
	case gobreaker.StateClosed:
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", poolName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", poolName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", poolName, state)
	}

	if err := p.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: ping: %w", poolName, err)
	}
	return nil
}

// Stats returns the underlying database/sql pool statistics.
func (p *Pool) Stats() sql.DBStats {
	return p.db.Stats()
}

// Close closes every pooled connection. In-flight WithConn calls finish first.
func (p *Pool) Close() error {
	return p.db.Close()
}

func (p *Pool) startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("database")
	return tracer.Start(ctx, "db "+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", driverName),
			attribute.String("db.operation", op),
		),
	)
}

func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics is safe to call with nil metrics.
func (p *Pool) recordMetrics(ctx context.Context, op string, start time.Time, err error) {
	if p.metrics == nil {
		return
	}

	result := "success"
	if err != nil {
		result = domain.KindOf(err).String()
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBOperation.String(op),
		telemetry.AttrResult.String(result),
	)

	p.metrics.DBOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	p.metrics.DBOperationTotal.Add(ctx, 1, attrs)
}

// toUint32 converts a non-negative int to uint32, clamping at the uint32
// maximum. Negative values become zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
