// Package store persists the session credentials (token + last-fetched
// profile) between runs. Values live in a small SQLite kv table under the
// data dir; writes happen only on login/bootstrap/logout.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"opslog-cli/internal/model"

	_ "modernc.org/sqlite"
)

// Fixed kv keys, mirroring the browser client's storage names.
const (
	keyToken   = "opslog_token"
	keyProfile = "opslog_user"
)

type Store struct {
	Dir string
}

// DefaultDir resolves the data dir: $OPSLOG_DATA_DIR, else ~/.opslog.
func DefaultDir() string {
	if v := strings.TrimSpace(os.Getenv("OPSLOG_DATA_DIR")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".opslog"
	}
	return filepath.Join(home, ".opslog")
}

func (s Store) dbPath() string { return filepath.Join(s.Dir, "opslog.sqlite") }

func (s Store) open(ctx context.Context) (*sql.DB, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.dbPath())
	if err != nil {
		return nil, err
	}
	// busy_timeout avoids "database is locked" flakiness when a CLI command
	// runs while the TUI is open.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Credentials is the persisted session snapshot. Profile may be stale; it is
// only a transient placeholder until bootstrap re-fetches the authoritative
// one.
type Credentials struct {
	Token   string
	Profile *model.Profile
}

// Load reads persisted credentials. A missing token yields zero Credentials
// and no error.
func (s Store) Load(ctx context.Context) (Credentials, error) {
	db, err := s.open(ctx)
	if err != nil {
		return Credentials{}, err
	}
	defer db.Close()

	var creds Credentials
	token, err := getKV(ctx, db, keyToken)
	if err != nil {
		return Credentials{}, err
	}
	creds.Token = token
	if creds.Token == "" {
		return creds, nil
	}

	raw, err := getKV(ctx, db, keyProfile)
	if err != nil {
		return Credentials{}, err
	}
	if raw != "" {
		var p model.Profile
		if err := json.Unmarshal([]byte(raw), &p); err == nil {
			creds.Profile = &p
		}
		// A corrupt profile blob is not fatal: bootstrap re-fetches it.
	}
	return creds, nil
}

// Save persists the token and profile under the fixed keys.
func (s Store) Save(ctx context.Context, creds Credentials) error {
	if strings.TrimSpace(creds.Token) == "" {
		return errors.New("refusing to persist an empty token")
	}
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	profileJSON := ""
	if creds.Profile != nil {
		b, err := json.Marshal(creds.Profile)
		if err != nil {
			return err
		}
		profileJSON = string(b)
	}
	if err := setKV(ctx, db, keyToken, creds.Token); err != nil {
		return err
	}
	return setKV(ctx, db, keyProfile, profileJSON)
}

// Clear removes the persisted credentials. Used on logout and forced session
// invalidation.
func (s Store) Clear(ctx context.Context) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `DELETE FROM kv WHERE k IN (?, ?)`, keyToken, keyProfile)
	return err
}

func getKV(ctx context.Context, db *sql.DB, key string) (string, error) {
	var v string
	err := db.QueryRowContext(ctx, `SELECT v FROM kv WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func setKV(ctx context.Context, db *sql.DB, key, value string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO kv(k, v) VALUES(?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v`,
		key, value)
	return err
}
