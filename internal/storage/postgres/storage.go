package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/fundvault/internal/domain/errors"
	"github.com/polkiloo/fundvault/internal/domain/model"
	"github.com/polkiloo/fundvault/internal/domain/repository"
)

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

var newUserID = uuid.NewString

var _ repository.Factory = (*Storage)(nil)

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type fundRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Funds() repository.FundRepository {
	return &fundRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id UUID PRIMARY KEY,
            username TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            saved_funds JSONB NOT NULL DEFAULT '[]'::jsonb,
            version BIGINT NOT NULL DEFAULT 1,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	if s.logger != nil {
		s.logger.Debug("database schema ready")
	}
	return nil
}

// --- UserRepository implementation ---

const selectUserColumns = `SELECT id::text, username, password_hash, saved_funds, version, created_at, updated_at FROM users`

func (r *userRepository) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (id, username, password_hash) VALUES ($1, $2, $3) RETURNING version, created_at, updated_at`
	u := model.User{ID: newUserID(), Username: username, PasswordHash: passwordHash, SavedFunds: []model.Fund{}}
	err := r.storage.pool.QueryRow(ctx, query, u.ID, username, passwordHash).Scan(&u.Version, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getOne(ctx, selectUserColumns+` WHERE username=$1`, username)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domainErrors.ErrNotFound
	}
	return r.getOne(ctx, selectUserColumns+` WHERE id=$1`, id)
}

func (r *userRepository) getOne(ctx context.Context, query string, arg any) (*model.User, error) {
	var (
		u     model.User
		funds []byte
	)
	err := r.storage.pool.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Username, &u.PasswordHash, &funds, &u.Version, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u.SavedFunds, err = decodeFunds(funds); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Save(ctx context.Context, user *model.User) error {
	funds, err := encodeFunds(user.SavedFunds)
	if err != nil {
		return err
	}

	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockQuery = `SELECT version FROM users WHERE id=$1 FOR UPDATE`
		var current int64
		if err := tx.QueryRow(ctx, lockQuery, user.ID).Scan(&current); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return fmt.Errorf("lock user: %w", err)
		}
		if current != user.Version {
			r.storage.logConflict(user.ID, user.Version, current)
			return domainErrors.ErrConflict
		}

		const updateQuery = `UPDATE users SET password_hash=$2, saved_funds=$3::jsonb, version=version+1, updated_at=NOW()
                             WHERE id=$1 RETURNING version, updated_at`
		var (
			version   int64
			updatedAt time.Time
		)
		if err := tx.QueryRow(ctx, updateQuery, user.ID, user.PasswordHash, funds).Scan(&version, &updatedAt); err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		user.Version = version
		user.UpdatedAt = updatedAt
		return nil
	})
}

// --- FundRepository implementation ---

func (r *fundRepository) List(ctx context.Context, userID string) ([]model.Fund, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domainErrors.ErrNotFound
	}
	const query = `SELECT saved_funds FROM users WHERE id=$1`
	var raw []byte
	if err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("list funds: %w", err)
	}
	return decodeFunds(raw)
}

func (r *fundRepository) Append(ctx context.Context, userID string, fund model.Fund) error {
	if _, err := uuid.Parse(userID); err != nil {
		return domainErrors.ErrNotFound
	}
	encoded, err := json.Marshal(fund)
	if err != nil {
		return fmt.Errorf("encode fund: %w", err)
	}
	const query = `UPDATE users SET saved_funds = saved_funds || jsonb_build_array($2::jsonb),
                   version = version + 1, updated_at = NOW()
                   WHERE id=$1`
	return r.exec(ctx, "append fund", query, userID, string(encoded))
}

func (r *fundRepository) RemoveByID(ctx context.Context, userID string, fundID any) error {
	if _, err := uuid.Parse(userID); err != nil {
		return domainErrors.ErrNotFound
	}
	encoded, err := model.EncodeFundID(fundID)
	if err != nil {
		return fmt.Errorf("encode fund id: %w", err)
	}
	const query = `UPDATE users SET saved_funds = COALESCE((
                       SELECT jsonb_agg(e.fund ORDER BY e.pos)
                       FROM jsonb_array_elements(saved_funds) WITH ORDINALITY AS e(fund, pos)
                       WHERE e.fund->'id' IS DISTINCT FROM $2::jsonb
                   ), '[]'::jsonb),
                   version = version + 1, updated_at = NOW()
                   WHERE id=$1`
	return r.exec(ctx, "remove fund", query, userID, string(encoded))
}

func (r *fundRepository) exec(ctx context.Context, op, query string, args ...any) error {
	tag, err := r.storage.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func decodeFunds(raw []byte) ([]model.Fund, error) {
	funds := []model.Fund{}
	if len(raw) == 0 {
		return funds, nil
	}
	if err := json.Unmarshal(raw, &funds); err != nil {
		return nil, fmt.Errorf("decode saved funds: %w", err)
	}
	if funds == nil {
		funds = []model.Fund{}
	}
	return funds, nil
}

func encodeFunds(funds []model.Fund) (string, error) {
	if funds == nil {
		funds = []model.Fund{}
	}
	encoded, err := json.Marshal(funds)
	if err != nil {
		return "", fmt.Errorf("encode saved funds: %w", err)
	}
	return string(encoded), nil
}

func (s *Storage) logConflict(userID string, expected, actual int64) {
	if s.logger == nil {
		return
	}
	s.logger.Warn("optimistic lock conflict",
		slog.String("user_id", userID),
		slog.Int64("expected_version", expected),
		slog.Int64("actual_version", actual),
	)
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
