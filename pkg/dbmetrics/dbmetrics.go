package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/m04kA/SMC-CourtSchedule/pkg/metrics"
)

// DefaultStatsInterval how often connection pool stats are exported
const DefaultStatsInterval = 15 * time.Second

// DBExecutor is the subset of *sql.DB the repositories use.
// Both *sql.DB and *DB satisfy it.
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// DB wraps *sql.DB and records query latency and pool stats
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap wraps db and starts exporting pool stats every interval until stop is closed
func Wrap(db *sql.DB, m *metrics.Metrics, interval time.Duration, stop <-chan struct{}) *DB {
	w := &DB{db: db, metrics: m}
	go w.collectStats(interval, stop)
	return w
}

// WrapWithDefault wraps db using DefaultStatsInterval
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, stop <-chan struct{}) *DB {
	return Wrap(db, m, DefaultStatsInterval, stop)
}

func (w *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer w.observe(query, time.Now())
	return w.db.QueryContext(ctx, query, args...)
}

func (w *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer w.observe(query, time.Now())
	return w.db.QueryRowContext(ctx, query, args...)
}

func (w *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer w.observe(query, time.Now())
	return w.db.ExecContext(ctx, query, args...)
}

// BeginTx starts a plain transaction; statements inside it are not timed
func (w *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return w.db.BeginTx(ctx, opts)
}

func (w *DB) observe(query string, started time.Time) {
	w.metrics.DBQueryDuration.
		WithLabelValues(operation(query)).
		Observe(time.Since(started).Seconds())
}

func (w *DB) collectStats(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		w.exportStats()
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}

func (w *DB) exportStats() {
	stats := w.db.Stats()
	w.metrics.DBOpenConnections.Set(float64(stats.OpenConnections))
	w.metrics.DBInUseConnections.Set(float64(stats.InUse))
	w.metrics.DBIdleConnections.Set(float64(stats.Idle))
	w.metrics.DBWaitCount.Set(float64(stats.WaitCount))
}

// operation returns the leading SQL keyword in lower case ("select", "insert", ...)
func operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
