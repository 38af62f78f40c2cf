// Package analytics records privacy-conscious page visits: client addresses
// are salted and hashed before they are stored, and old rows are purged.
//
// Only the fact that a page was requested is stored. View state and contact
// form contents never reach this package.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// DefaultRetention is how long visits are kept.
const DefaultRetention = 365 * 24 * time.Hour

// Visit is one recorded page request.
type Visit struct {
	ID        int64     `db:"id" json:"id" yaml:"id"`
	HashedIP  string    `db:"hashed_ip" json:"hashed_ip" yaml:"hashed_ip"`
	UserAgent string    `db:"user_agent" json:"user_agent" yaml:"user_agent"`
	Path      string    `db:"path" json:"path" yaml:"path"`
	VisitedAt int64     `db:"visited_at" json:"-" yaml:"-"`
	Timestamp time.Time `db:"-" json:"timestamp" yaml:"timestamp"`
}

// PathStat counts visits of one path.
type PathStat struct {
	Path   string `db:"path" json:"path" yaml:"path"`
	Visits int64  `db:"visits" json:"visits" yaml:"visits"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisitors    int64      `json:"total_visitors" yaml:"total_visitors"`
	UniqueVisitors   int64      `json:"unique_visitors" yaml:"unique_visitors"`
	VisitorsToday    int64      `json:"visitors_today" yaml:"visitors_today"`
	VisitorsThisWeek int64      `json:"visitors_this_week" yaml:"visitors_this_week"`
	TopPaths         []PathStat `json:"top_paths" yaml:"top_paths"`
	RecentVisitors   []Visit    `json:"recent_visitors" yaml:"recent_visitors"`
}

// Open connects to the SQLite file at path and applies pending migrations.
func Open(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path))
	if err != nil {
		return nil, errors.Wrap(err, "connecting to analytics db")
	}
	db.SetMaxOpenConns(1)

	if _, err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate brings the schema up to date and returns the resulting version.
func Migrate(db *sqlx.DB) (int64, error) {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		return 0, errors.Wrap(err, "setting dialect for migrations")
	}
	if err := goose.Up(db.DB, "migrations"); err != nil {
		return 0, errors.Wrap(err, "applying migrations")
	}
	version, err := goose.GetDBVersion(db.DB)
	if err != nil {
		return 0, errors.Wrap(err, "reading schema version")
	}
	return version, nil
}

// Store reads and writes visits.
type Store struct {
	db   *sqlx.DB
	salt string
	now  func() time.Time
}

// NewStore wraps db. An empty salt is replaced by a random one, which makes
// hashes unlinkable across restarts.
func NewStore(db *sqlx.DB, salt string) (*Store, error) {
	if salt == "" {
		var err error
		if salt, err = RandomToken(); err != nil {
			return nil, err
		}
	}
	return &Store{db: db, salt: salt, now: time.Now}, nil
}

// RandomToken returns 32 random bytes, hex encoded.
func RandomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "reading random bytes")
	}
	return hex.EncodeToString(b), nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return errors.Wrap(err, "closing analytics db")
	}
	return nil
}

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// HashIP hashes ip with the store's salt. Equal inputs give equal output for
// the lifetime of the salt.
func (s *Store) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// RecordVisit stores a hashed visit of path.
func (s *Store) RecordVisit(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, visited_at) VALUES (?, ?, ?, ?)`,
		s.HashIP(ip), userAgent, path, s.now().UTC().Unix())
	if err != nil {
		return errors.Wrap(err, "recording visit")
	}
	return nil
}

// RecentVisits returns up to limit visits, newest first.
func (s *Store) RecentVisits(ctx context.Context, limit int) ([]Visit, error) {
	var visits []Visit
	err := s.db.SelectContext(ctx, &visits, `
		SELECT id, hashed_ip, user_agent, path, visited_at
		FROM visitors
		ORDER BY visited_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "listing visits")
	}
	for i := range visits {
		visits[i].Timestamp = time.Unix(visits[i].VisitedAt, 0).UTC()
	}
	return visits, nil
}

// Stats summarises the stored visits.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{today.Unix()}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{now.Add(-7 * 24 * time.Hour).Unix()}},
	}
	for _, c := range counts {
		if err := s.db.GetContext(ctx, c.dst, c.query, c.args...); err != nil {
			return nil, errors.Wrap(err, "counting visitors")
		}
	}

	err := s.db.SelectContext(ctx, &stats.TopPaths, `
		SELECT path, COUNT(*) AS visits
		FROM visitors
		GROUP BY path
		ORDER BY visits DESC, path ASC
		LIMIT 10`)
	if err != nil {
		return nil, errors.Wrap(err, "ranking paths")
	}

	if stats.RecentVisitors, err = s.RecentVisits(ctx, 50); err != nil {
		return nil, err
	}
	return stats, nil
}

// Cleanup deletes visits older than retention and returns how many.
func (s *Store) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		retention = DefaultRetention
	}
	cutoff := s.now().UTC().Add(-retention).Unix()
	res, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE visited_at < ?`, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "deleting old visits")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "counting deleted visits")
	}
	return n, nil
}
