package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Store is the pgx-backed implementation of the knowledge store the
// response engine reads from.
type Store struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewStore(db *pgxpool.Pool, log *zap.Logger) *Store {
	return &Store{db: db, log: log}
}
