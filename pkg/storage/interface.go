// Package storage defines the storage interfaces the reference data is read
// from and written to. Backends (PostgreSQL, sheet exports) provide concrete
// implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"ontrack/pkg/domain"
)

// ReferenceSource reads the survey reference data. Implementations return
// rows in source order; question IDs are 1-based source positions.
type ReferenceSource interface {
	// Questions returns the question bank.
	Questions(ctx context.Context) ([]domain.Question, error)
	// Profiles returns every personality profile keyed by two-letter code.
	Profiles(ctx context.Context) ([]domain.PersonalityProfile, error)
	// Industries returns every industry insight row.
	Industries(ctx context.Context) ([]domain.IndustryInsight, error)
}

// ReferenceWriter replaces reference tables wholesale. It is used when
// importing a new dataset and should run inside a transaction so readers
// never observe a partially replaced dataset.
type ReferenceWriter interface {
	ReplaceQuestions(ctx context.Context, questions []domain.Question) error
	ReplaceProfiles(ctx context.Context, profiles []domain.PersonalityProfile) error
	ReplaceIndustries(ctx context.Context, industries []domain.IndustryInsight) error
}

// AllStorage is a composite interface that includes all reference data
// capabilities.
type AllStorage interface {
	ReferenceSource
	ReferenceWriter
}

// TxStorage describes a storage handle that operates within a database
// transaction. Implementations should become unusable after Commit or
// Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation.
	Close() error
	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with it and commits on success or
	// rolls back if cb returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
