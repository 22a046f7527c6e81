package collector

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"StakeAdvisor/internal/model"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// SQLiteSource reads pool stats from a local indexer database.
type SQLiteSource struct {
	db  *sql.DB
	mu  sync.Mutex
	log zerolog.Logger
}

// NewSQLiteSource opens (or creates) the SQLite database and runs migrations.
func NewSQLiteSource(dbPath string, log zerolog.Logger) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL lets the indexer keep writing while we read.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteSource{db: db, log: log.With().Str("component", "sqlite_source").Logger()}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	s.log.Info().Str("path", dbPath).Msg("sqlite source opened")
	return s, nil
}

func (s *SQLiteSource) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS pool_stats (
			pool_id            TEXT PRIMARY KEY,
			operator_share     REAL NOT NULL DEFAULT 0,
			zrx_staked         REAL NOT NULL DEFAULT 0,
			seven_day_fees_eth REAL NOT NULL DEFAULT 0,
			updated_at         INTEGER
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

func (s *SQLiteSource) Name() string { return "sqlite" }

// FetchPools returns all pools in insertion order.
func (s *SQLiteSource) FetchPools(ctx context.Context) ([]model.PoolStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `SELECT pool_id, operator_share, zrx_staked, seven_day_fees_eth
		FROM pool_stats ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query pool_stats: %w", err)
	}
	defer rows.Close()

	var pools []model.PoolStats
	for rows.Next() {
		var p model.PoolStats
		if err := rows.Scan(&p.PoolID, &p.NextEpochStats.OperatorShare, &p.NextEpochStats.ZrxStaked,
			&p.CurrentEpochStats.SevenDayProtocolFeesGeneratedInEth); err != nil {
			return nil, fmt.Errorf("scan pool_stats: %w", err)
		}
		pools = append(pools, p)
	}
	return pools, rows.Err()
}

// UpsertPools inserts or replaces pool rows in one transaction.
// Existing pools keep their position in FetchPools order.
func (s *SQLiteSource) UpsertPools(ctx context.Context, pools []model.PoolStats, updatedAt int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO pool_stats
		(pool_id, operator_share, zrx_staked, seven_day_fees_eth, updated_at)
		VALUES (?,?,?,?,?)
		ON CONFLICT(pool_id) DO UPDATE SET
			operator_share = excluded.operator_share,
			zrx_staked = excluded.zrx_staked,
			seven_day_fees_eth = excluded.seven_day_fees_eth,
			updated_at = excluded.updated_at`)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, p := range pools {
		if _, err := stmt.ExecContext(ctx, p.PoolID, p.NextEpochStats.OperatorShare, p.NextEpochStats.ZrxStaked,
			p.CurrentEpochStats.SevenDayProtocolFeesGeneratedInEth, updatedAt); err != nil {
			return fmt.Errorf("upsert pool %s: %w", p.PoolID, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteSource) Close() error {
	s.log.Info().Msg("closing sqlite source")
	return s.db.Close()
}
