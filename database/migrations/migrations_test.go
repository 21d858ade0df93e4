package migrations

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shashiranjanraj/dinehub/pkg/database"
	"github.com/shashiranjanraj/dinehub/pkg/migration"
	"github.com/shashiranjanraj/dinehub/pkg/orm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantOwnerIsUnique(t *testing.T) {
	db, err := database.Open("sqlite", "file::memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	_, err = migration.New(db, nil).Run()
	require.NoError(t, err)

	m := db.Migrator()
	assert.True(t, m.HasIndex("restaurants", "idx_restaurants_owner_unique"))
	assert.False(t, m.HasIndex("restaurants", "idx_restaurants_owner_id"))

	owner := uuid.NewString()
	insert := func(name string) error {
		return db.Exec("INSERT INTO restaurants (id, name, address, owner_id, is_active, rating_count, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			uuid.NewString(), name, "1 Via Roma", owner, true, 0, time.Now()).Error
	}
	require.NoError(t, insert("First"))
	assert.True(t, orm.IsDuplicate(insert("Second")))

	require.NoError(t, uniqueRestaurantOwner{}.Down(db))
	assert.False(t, m.HasIndex("restaurants", "idx_restaurants_owner_unique"))
	assert.True(t, m.HasIndex("restaurants", "idx_restaurants_owner_id"))
	require.NoError(t, insert("Second"))
}
