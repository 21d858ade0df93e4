// Package migrations holds the schema migrations. Each one registers itself
// from init(); importing the package for side effects makes them known to
// pkg/migration.
package migrations

import (
	"github.com/shashiranjanraj/dinehub/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260301000000_create_users_table", table("users", &usersTable{}))
	migration.Register("20260301000100_create_restaurant_types_table", table("restaurant_types", &restaurantTypesTable{}))
	migration.Register("20260301000200_create_menu_categories_table", table("menu_categories", &menuCategoriesTable{}))
	migration.Register("20260301000300_create_restaurants_table", table("restaurants", &restaurantsTable{}))
	migration.Register("20260301000400_create_menus_table", table("menus", &menusTable{}))
	migration.Register("20260301000500_unique_restaurant_owner", &uniqueRestaurantOwner{})
}

// autoTable creates model's table on Up and drops name on Down.
type autoTable struct {
	name  string
	model interface{}
}

func table(name string, model interface{}) *autoTable {
	return &autoTable{name: name, model: model}
}

func (m *autoTable) Up(db *gorm.DB) error {
	return db.Table(m.name).AutoMigrate(m.model)
}

func (m *autoTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(m.name)
}

// restaurantOwnerIndex carries only the column the unique index covers.
type restaurantOwnerIndex struct {
	OwnerID string `gorm:"type:char(36);uniqueIndex:idx_restaurants_owner_unique"`
}

// uniqueRestaurantOwner swaps the plain owner_id index for a unique one, so
// the database enforces one restaurant per owner.
type uniqueRestaurantOwner struct{}

func (uniqueRestaurantOwner) Up(db *gorm.DB) error {
	m := db.Table("restaurants").Migrator()
	if m.HasIndex(&restaurantOwnerIndex{}, "idx_restaurants_owner_id") {
		if err := m.DropIndex(&restaurantOwnerIndex{}, "idx_restaurants_owner_id"); err != nil {
			return err
		}
	}
	return m.CreateIndex(&restaurantOwnerIndex{}, "idx_restaurants_owner_unique")
}

func (uniqueRestaurantOwner) Down(db *gorm.DB) error {
	m := db.Table("restaurants").Migrator()
	if err := m.DropIndex(&restaurantOwnerIndex{}, "idx_restaurants_owner_unique"); err != nil {
		return err
	}
	return db.Exec("CREATE INDEX idx_restaurants_owner_id ON restaurants (owner_id)").Error
}
