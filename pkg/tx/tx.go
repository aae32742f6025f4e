package tx

import (
	"context"
	"errors"
	"fmt"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrSerializationFailure = "40001"

// Manager транзакция кладется в контекст, репозитории берут ее через pgxv5.CtxGetter.
type Manager struct {
	internal    *manager.Manager
	settings    pgxv5.Settings
	maxAttempts int
}

type Option func(*options)

type options struct {
	isoLevel    pgx.TxIsoLevel
	maxAttempts int
}

// WithIsoLevel по умолчанию serializable.
func WithIsoLevel(level pgx.TxIsoLevel) Option {
	return func(o *options) {
		o.isoLevel = level
	}
}

// WithMaxAttempts сколько раз выполнить fn при конфликте сериализации.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}

func New(db pgxv5.Transactional, opts ...Option) *Manager {
	o := options{
		isoLevel:    pgx.Serializable,
		maxAttempts: 1,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		settings: pgxv5.MustSettings(
			settings.Must(),
			pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: o.isoLevel}),
		),
		maxAttempts: o.maxAttempts,
	}
}

// Do fn должна быть идемпотентной: при конфликте сериализации она выполняется заново.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		err = m.internal.DoWithSettings(ctx, m.settings, fn)
		if err == nil || !IsSerializationFailure(err) || ctx.Err() != nil {
			return err
		}
	}
	return fmt.Errorf("transaction aborted after %d attempts: %w", m.maxAttempts, err)
}

func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrSerializationFailure
}
