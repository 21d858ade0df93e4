package orm

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/shashiranjanraj/dinehub/pkg/database"
	"github.com/shashiranjanraj/dinehub/pkg/metrics"
	"gorm.io/gorm"
)

// Cacher is the read-through cache used by Query.Cache. It is installed by
// the application kernel so orm does not import pkg/cache.
type Cacher interface {
	Get(key string, dest interface{}) bool
	Set(key string, value interface{}, ttl time.Duration) error
	Del(keys ...string) error
}

// CacheStore is nil until the kernel wires one; Cache then always hits the DB.
var CacheStore Cacher

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Pagination describes one page of a listing.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// ClampPage normalises page (min 1) and pageSize (1..MaxPageSize, 0 means
// DefaultPageSize).
func ClampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

type Query struct {
	db *gorm.DB
}

// DB wraps the global connection opened by database.Connect.
func DB() *Query {
	return &Query{db: database.DB}
}

// New wraps an explicit connection.
func New(db *gorm.DB) *Query {
	return &Query{db: db}
}

// Raw exposes the underlying *gorm.DB for queries Query does not cover.
func (q *Query) Raw() *gorm.DB { return q.db }

func (q *Query) WithContext(ctx context.Context) *Query {
	return &Query{db: q.db.WithContext(ctx)}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Order(value string) *Query {
	return &Query{db: q.db.Order(value)}
}

func (q *Query) Get(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Find(dest).Error
}

func (q *Query) First(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.First(dest).Error
}

// Exists reports whether at least one row matches the current scope.
func (q *Query) Exists() (bool, error) {
	defer metrics.ObserveDBQuery("select", time.Now())
	var n int64
	if err := q.session().Limit(1).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (q *Query) Count() (int64, error) {
	defer metrics.ObserveDBQuery("select", time.Now())
	var n int64
	err := q.session().Count(&n).Error
	return n, err
}

func (q *Query) Create(v interface{}) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return q.db.Create(v).Error
}

func (q *Query) Save(v interface{}) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return q.db.Save(v).Error
}

// Updates applies a column map to the scoped rows.
func (q *Query) Updates(values map[string]interface{}) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return q.db.Updates(values).Error
}

func (q *Query) Delete(v interface{}) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	return q.db.Delete(v).Error
}

// Transaction runs fn inside a DB transaction; fn's Query is bound to it.
func (q *Query) Transaction(fn func(tx *Query) error) error {
	return q.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Query{db: tx})
	})
}

// GetWithPagination counts the scoped rows and loads one page into dest.
func (q *Query) GetWithPagination(dest interface{}, page, pageSize int) (Pagination, error) {
	page, pageSize = ClampPage(page, pageSize)

	total, err := q.Count()
	if err != nil {
		return Pagination{}, err
	}

	defer metrics.ObserveDBQuery("select", time.Now())
	if err := q.session().Offset((page - 1) * pageSize).Limit(pageSize).Find(dest).Error; err != nil {
		return Pagination{}, err
	}

	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}, nil
}

func (q *Query) Cache(key string, ttl time.Duration, dest interface{}) error {
	if CacheStore != nil && CacheStore.Get(key, dest) {
		return nil
	}

	if err := q.Get(dest); err != nil {
		return err
	}

	if CacheStore != nil {
		_ = CacheStore.Set(key, dest, ttl)
	}
	return nil
}

// Forget drops cached keys written by Cache.
func Forget(keys ...string) {
	if CacheStore != nil {
		_ = CacheStore.Del(keys...)
	}
}

// session lets one scoped Query back several finishers without their
// clauses leaking into each other.
func (q *Query) session() *gorm.DB {
	return q.db.Session(&gorm.Session{})
}

// IsNotFound reports whether err is GORM's record-not-found.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// duplicateMessages are the unique-violation texts of the supported
// drivers, for errors a dialector did not translate.
var duplicateMessages = []string{
	"UNIQUE constraint failed",        // sqlite
	"duplicate key value",             // postgres
	"Duplicate entry",                 // mysql
	"Cannot insert duplicate key row", // sqlserver
	"Violation of UNIQUE KEY",         // sqlserver
}

// IsDuplicate reports whether err is a unique-key violation.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	for _, m := range duplicateMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}
