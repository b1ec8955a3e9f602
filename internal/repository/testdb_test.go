package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

// newTestDB opens an isolated in-memory database named after the test
// and creates the schema.
func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := Connect("file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err)

	// a single connection keeps every query on the same memory db
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, InitSchema(context.Background(), db))
	return db
}
