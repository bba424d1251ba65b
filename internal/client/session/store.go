// Package session remembers the CLI's last login in a local SQLite file so a
// new REPL can reuse a token that has not expired yet.
package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/bookshelf/internal/client/migrations"
	"github.com/dmitrijs2005/bookshelf/internal/dbx"
	"github.com/dmitrijs2005/bookshelf/internal/filex"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

const (
	keyUsername    = "username"
	keyAccessToken = "access_token"
)

// Session is what a successful login leaves behind.
type Session struct {
	Username string
	Token    string
}

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path and applies
// the embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	return nil
}

// Save replaces the stored session. Both keys change in one transaction.
func (s *Store) Save(ctx context.Context, sess Session) error {
	return dbx.WithTx(ctx, s.db, func(tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyUsername, []byte(sess.Username)); err != nil {
			return err
		}
		return repo.Set(ctx, keyAccessToken, []byte(sess.Token))
	})
}

// Load returns the stored session, or nil when there is none.
func (s *Store) Load(ctx context.Context) (*Session, error) {
	repo := NewSQLiteRepository(s.db)

	token, err := repo.Get(ctx, keyAccessToken)
	if err != nil || token == nil {
		return nil, err
	}
	username, err := repo.Get(ctx, keyUsername)
	if err != nil {
		return nil, err
	}

	return &Session{Username: string(username), Token: string(token)}, nil
}

func (s *Store) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, func(tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, keyAccessToken); err != nil {
			return err
		}
		return repo.Delete(ctx, keyUsername)
	})
}

func (s *Store) Close() error {
	return s.db.Close()
}
