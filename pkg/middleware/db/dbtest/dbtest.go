// Package dbtest opens migrated in-memory sqlite datastores for tests.
package dbtest

import (
	"context"
	"fmt"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/scienceol/labprofile/pkg/middleware/db"
	"github.com/scienceol/labprofile/pkg/repo/migrate"
	"gorm.io/gorm"
)

// New returns a datastore private to t, closed when t ends.
func New(t testing.TB) *db.Datastore {
	t.Helper()
	ctx := context.Background()

	ds, err := db.New(ctx, &db.Config{
		Driver:         db.DriverSqlite,
		SqlitePath:     fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.Must(uuid.NewV4()).String()),
		MaxOpenConns:   1,
		DisableTracing: true,
	})
	if err != nil {
		t.Fatalf("dbtest: open sqlite: %v", err)
	}
	t.Cleanup(func() { ds.Close(ctx) })

	if err := migrate.Table(ctx, ds); err != nil {
		t.Fatalf("dbtest: migrate: %v", err)
	}
	return ds
}

// Count returns the number of rows in table.
func Count(t testing.TB, ds *db.Datastore, table string) int64 {
	t.Helper()
	var n int64
	if err := ds.DBIns().Table(table).Count(&n).Error; err != nil {
		t.Fatalf("dbtest: count %s: %v", table, err)
	}
	return n
}

// FailInserts makes every insert into table fail with err.
func FailInserts(t testing.TB, ds *db.Datastore, table string, err error) {
	t.Helper()
	name := "dbtest:fail_" + table
	cb := ds.DBIns().Callback().Create()
	if regErr := cb.Before("gorm:create").Register(name, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			_ = tx.AddError(err)
		}
	}); regErr != nil {
		t.Fatalf("dbtest: register callback: %v", regErr)
	}
}
