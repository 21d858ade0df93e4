package migration

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type table struct{ name string }

func (m table) Up(db *gorm.DB) error {
	return db.Exec("CREATE TABLE " + m.name + " (id INTEGER PRIMARY KEY)").Error
}

func (m table) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(m.name)
}

type failing struct{}

func (failing) Up(db *gorm.DB) error   { return errors.New("boom") }
func (failing) Down(db *gorm.DB) error { return nil }

func withRegistry(t *testing.T, entries ...entry) {
	t.Helper()
	saved := registry
	registry = entries
	t.Cleanup(func() { registry = saved })
}

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestRunRollbackStatus(t *testing.T) {
	// registered out of order on purpose
	withRegistry(t,
		entry{"20260101000002_create_b", table{"b"}},
		entry{"20260101000001_create_a", table{"a"}},
	)
	db := openDB(t)
	var out bytes.Buffer
	r := New(db, &out)

	n, err := r.Run()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, db.Migrator().HasTable("a"))
	assert.True(t, db.Migrator().HasTable("b"))
	assert.Less(t, bytes.Index(out.Bytes(), []byte("create_a")), bytes.Index(out.Bytes(), []byte("create_b")))

	n, err = r.Run()
	require.NoError(t, err)
	assert.Zero(t, n)

	status, err := r.Status()
	require.NoError(t, err)
	assert.Equal(t, []Status{
		{Name: "20260101000001_create_a", Ran: true, Batch: 1},
		{Name: "20260101000002_create_b", Ran: true, Batch: 1},
	}, status)

	n, err = r.Rollback()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.False(t, db.Migrator().HasTable("a"))

	n, err = r.Rollback()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestFailedMigrationIsNotRecorded(t *testing.T) {
	withRegistry(t,
		entry{"20260101000001_create_a", table{"a"}},
		entry{"20260101000002_broken", failing{}},
	)
	db := openDB(t)
	r := New(db, nil)

	_, err := r.Run()
	assert.ErrorContains(t, err, "broken up: boom")

	status, err := r.Status()
	require.NoError(t, err)
	assert.True(t, status[0].Ran)
	assert.False(t, status[1].Ran)
}
