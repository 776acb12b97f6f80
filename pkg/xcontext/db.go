package xcontext

import (
	"context"

	"gorm.io/gorm"
)

type dbTransaction struct {
	tx   *gorm.DB
	done bool
}

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the running transaction if there is one, otherwise the database
// stored by WithDB.
func DB(ctx context.Context) *gorm.DB {
	if t, ok := ctx.Value(dbTxKey{}).(*dbTransaction); ok && !t.done {
		return t.tx
	}

	db, ok := ctx.Value(dbKey{}).(*gorm.DB)
	if !ok {
		panic("no database in context")
	}

	return db
}

// WithDBTransaction begins a transaction. Until it is committed or rolled
// back, DB(ctx) returns the transaction.
func WithDBTransaction(ctx context.Context) context.Context {
	return context.WithValue(ctx, dbTxKey{}, &dbTransaction{tx: DB(ctx).Begin()})
}

// CommitDBTransaction commits the transaction begun by WithDBTransaction.
// Once it returns, DB(ctx) is the plain database again whether or not the
// commit succeeded.
func CommitDBTransaction(ctx context.Context) error {
	t, ok := ctx.Value(dbTxKey{}).(*dbTransaction)
	if !ok || t.done {
		return nil
	}

	t.done = true
	return t.tx.Commit().Error
}

// RollbackDBTransaction is a no-op if the transaction has already been
// committed, so it is safe to defer right after WithDBTransaction.
func RollbackDBTransaction(ctx context.Context) {
	t, ok := ctx.Value(dbTxKey{}).(*dbTransaction)
	if !ok || t.done {
		return
	}

	t.done = true
	if err := t.tx.Rollback().Error; err != nil {
		Logger(ctx).Errorf("Cannot rollback transaction: %v", err)
	}
}
