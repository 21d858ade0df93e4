package orm

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type widget struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&widget{}))
	return db
}

func TestClampPage(t *testing.T) {
	cases := []struct{ page, size, wantPage, wantSize int }{
		{0, 0, 1, DefaultPageSize},
		{-3, 5, 1, 5},
		{2, 1000, 2, MaxPageSize},
		{4, -1, 4, 1},
	}
	for _, c := range cases {
		p, s := ClampPage(c.page, c.size)
		assert.Equal(t, c.wantPage, p)
		assert.Equal(t, c.wantSize, s)
	}
}

func TestGetWithPagination(t *testing.T) {
	db := openDB(t)
	for i := 0; i < 7; i++ {
		require.NoError(t, New(db).Create(&widget{Name: "w"}))
	}

	var page []widget
	p, err := New(db).Model(&widget{}).Order("id").GetWithPagination(&page, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, Pagination{Page: 2, PageSize: 3, Total: 7, TotalPages: 3}, p)
	require.Len(t, page, 3)
	assert.Equal(t, uint(4), page[0].ID)
}

func TestExistsAndNotFound(t *testing.T) {
	db := openDB(t)
	require.NoError(t, New(db).Create(&widget{Name: "a"}))

	ok, err := New(db).Model(&widget{}).Where("name = ?", "a").Exists()
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = New(db).Model(&widget{}).Where("name = ?", "b").Exists()
	require.NoError(t, err)
	assert.False(t, ok)

	var w widget
	err = New(db).Where("name = ?", "b").First(&w)
	assert.True(t, IsNotFound(err))
}

type badge struct {
	ID   uint   `gorm:"primaryKey"`
	Code string `gorm:"uniqueIndex"`
}

func TestIsDuplicate(t *testing.T) {
	for _, translate := range []bool{false, true} {
		db := openDB(t)
		db.Config.TranslateError = translate
		require.NoError(t, db.AutoMigrate(&badge{}))

		require.NoError(t, New(db).Create(&badge{Code: "VEG"}))
		err := New(db).Create(&badge{Code: "VEG"})
		require.Error(t, err)
		assert.True(t, IsDuplicate(err), "translate=%v: %v", translate, err)
	}

	assert.False(t, IsDuplicate(nil))
	assert.False(t, IsDuplicate(gorm.ErrRecordNotFound))
	assert.True(t, IsDuplicate(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)))
	assert.True(t, IsDuplicate(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_username"`)))
}

type mapCache struct {
	data map[string]interface{}
	sets int
}

func (m *mapCache) Get(key string, dest interface{}) bool {
	v, ok := m.data[key]
	if !ok {
		return false
	}
	*(dest.(*[]widget)) = v.([]widget)
	return true
}

func (m *mapCache) Set(key string, value interface{}, _ time.Duration) error {
	m.sets++
	m.data[key] = *(value.(*[]widget))
	return nil
}

func (m *mapCache) Del(keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func TestCacheReadThroughAndForget(t *testing.T) {
	db := openDB(t)
	store := &mapCache{data: map[string]interface{}{}}
	CacheStore = store
	t.Cleanup(func() { CacheStore = nil })

	require.NoError(t, New(db).Create(&widget{Name: "a"}))

	var first []widget
	require.NoError(t, New(db).Model(&widget{}).Cache("widgets", time.Minute, &first))
	require.Len(t, first, 1)

	require.NoError(t, New(db).Create(&widget{Name: "b"}))

	var cached []widget
	require.NoError(t, New(db).Model(&widget{}).Cache("widgets", time.Minute, &cached))
	assert.Len(t, cached, 1, "second read is served from cache")
	assert.Equal(t, 1, store.sets)

	Forget("widgets")

	var fresh []widget
	require.NoError(t, New(db).Model(&widget{}).Cache("widgets", time.Minute, &fresh))
	assert.Len(t, fresh, 2)
}
