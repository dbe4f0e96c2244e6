package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/item-api/internal/config"
	"github.com/MKhiriev/item-api/internal/logger"
	"github.com/MKhiriev/item-api/migrations"
	"github.com/Masterminds/squirrel"
)

// TxOutcome is the final state of a scoped transaction.
type TxOutcome string

const (
	TxCommitted    TxOutcome = "commit"
	TxRolledBack   TxOutcome = "rollback"
	TxBeginFailed  TxOutcome = "begin_error"
	TxCommitFailed TxOutcome = "commit_error"
)

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// TxObserver receives the outcome of every scoped transaction.
type TxObserver interface {
	ObserveTx(operation string, outcome TxOutcome)
}

// DBTX is the subset of database/sql used by repositories.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB wraps a connection pool together with the SQL dialect it speaks.
type DB struct {
	*sql.DB
	dialect            string
	builder            squirrel.StatementBuilderType
	errorClassificator ErrorClassificator
	txObserver         TxObserver
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect string, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder squirrel.PlaceholderFormat = squirrel.Question
	if dialect == config.DriverPostgres {
		placeholder = squirrel.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            squirrel.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		txObserver:         nopTxObserver{},
		logger:             log,
	}
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// SetTxObserver replaces the transaction outcome observer. A nil observer
// disables observation.
func (db *DB) SetTxObserver(observer TxObserver) {
	if observer == nil {
		observer = nopTxObserver{}
	}
	db.txObserver = observer
}

// Dialect returns the SQL dialect of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded migrations for the connection dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// WithTx begins a transaction, runs fn with the transactional handle, and
// then commits on success or rolls back on error or panic. Panics are
// rethrown after rollback. The connection is returned to the pool on every
// path.
//
// operation labels log records and the outcome reported to the [TxObserver].
func (db *DB) WithTx(ctx context.Context, operation string, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		log.Err(err).
			Str("func", "DB.WithTx").
			Str("operation", operation).
			Bool("retryable", db.retryable(err)).
			Msg("failed to begin transaction")
		db.txObserver.ObserveTx(operation, TxBeginFailed)
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			db.txObserver.ObserveTx(operation, TxRolledBack)
			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Err(rbErr).
					Str("func", "DB.WithTx").
					Str("operation", operation).
					Msg("failed to roll back transaction")
			}
			db.txObserver.ObserveTx(operation, TxRolledBack)
			return
		}

		if commitErr := tx.Commit(); commitErr != nil {
			log.Err(commitErr).
				Str("func", "DB.WithTx").
				Str("operation", operation).
				Bool("retryable", db.retryable(commitErr)).
				Msg("failed to commit transaction")
			db.txObserver.ObserveTx(operation, TxCommitFailed)
			err = fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
			return
		}

		db.txObserver.ObserveTx(operation, TxCommitted)
	}()

	return fn(ctx, tx)
}

func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

type nopTxObserver struct{}

func (nopTxObserver) ObserveTx(string, TxOutcome) {}
