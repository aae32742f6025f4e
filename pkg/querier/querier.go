package querier

import (
	"context"
	"strings"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var QueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "db_query_duration_seconds",
		Help:    "Postgres query duration by statement kind",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
	},
	[]string{"statement", "in_tx", "status"},
)

// Querier исполняет запрос в транзакции из контекста, если она есть, иначе на пуле.
type Querier struct {
	pool   *pgxpool.Pool
	getter *pgxv5.CtxGetter
}

func New(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *Querier {
	return &Querier{
		pool:   pool,
		getter: getter,
	}
}

func (q *Querier) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	executor, inTx := q.get(ctx)
	start := time.Now()

	tag, err := executor.Exec(ctx, sql, args...)
	observe(sql, inTx, start, err)
	return tag, err
}

// Query время замеряется до первой строки, чтение rows в него не входит.
func (q *Querier) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	executor, inTx := q.get(ctx)
	start := time.Now()

	rows, err := executor.Query(ctx, sql, args...)
	observe(sql, inTx, start, err)
	return rows, err
}

// QueryRow ошибка всплывет только в Scan, поэтому статус всегда ok.
func (q *Querier) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	executor, inTx := q.get(ctx)
	start := time.Now()

	row := executor.QueryRow(ctx, sql, args...)
	observe(sql, inTx, start, nil)
	return row
}

func (q *Querier) get(ctx context.Context) (pgxv5.Tr, bool) {
	if tr := q.getter.DefaultTrOrDB(ctx, nil); tr != nil {
		return tr, true
	}
	return q.pool, false
}

func observe(sql string, inTx bool, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	QueryDuration.
		WithLabelValues(statementKind(sql), boolLabel(inTx), status).
		Observe(time.Since(start).Seconds())
}

// statementKind первое ключевое слово запроса, с ограниченным набором значений для лейбла.
func statementKind(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "other"
	}

	switch kind := strings.ToLower(fields[0]); kind {
	case "select", "insert", "update", "delete", "with", "truncate":
		return kind
	default:
		return "other"
	}
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
