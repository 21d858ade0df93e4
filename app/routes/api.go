package routes

import (
	"time"

	"github.com/shashiranjanraj/dinehub/app/controllers"
	"github.com/shashiranjanraj/dinehub/app/repositories"
	"github.com/shashiranjanraj/dinehub/app/services"
	"github.com/shashiranjanraj/dinehub/pkg/ctx"
	"github.com/shashiranjanraj/dinehub/pkg/graphql"
	"github.com/shashiranjanraj/dinehub/pkg/middleware"
	"github.com/shashiranjanraj/dinehub/pkg/rbac"
	"github.com/shashiranjanraj/dinehub/pkg/router"
	"github.com/shashiranjanraj/dinehub/pkg/storage"
	"github.com/shashiranjanraj/dinehub/pkg/ws"
	"gorm.io/gorm"
)

// Deps are the runtime collaborators the route table needs.
type Deps struct {
	DB       *gorm.DB
	CacheTTL time.Duration
	// Disk resolves the upload disk per request; nil uses storage.Default.
	Disk func() storage.Disk
	// Hub serves /ws/catalog when set.
	Hub *ws.Hub
}

// RegisterAPI mounts every API route on r.
func RegisterAPI(r *router.Router, d Deps) error {
	if d.Disk == nil {
		d.Disk = storage.Default
	}

	users := repositories.NewUserRepository(d.DB)
	types := repositories.NewRestaurantTypeRepository(d.DB, d.CacheTTL)
	categories := repositories.NewMenuCategoryRepository(d.DB, d.CacheTTL)
	restaurants := repositories.NewRestaurantRepository(d.DB)
	menus := repositories.NewMenuRepository(d.DB)

	restaurantSvc := services.NewRestaurantService(restaurants, types)
	menuSvc := services.NewMenuService(menus, restaurants, categories)
	categorySvc := services.NewMenuCategoryService(categories)
	typeSvc := services.NewRestaurantTypeService(types)

	authController := controllers.NewAuthController(services.NewAuthService(users))
	userController := controllers.NewUserController(services.NewUserService(users))
	typeController := controllers.NewRestaurantTypeController(typeSvc)
	categoryController := controllers.NewMenuCategoryController(categorySvc)
	restaurantController := controllers.NewRestaurantController(restaurantSvc)
	menuController := controllers.NewMenuController(menuSvc)
	uploadController := controllers.NewUploadController(d.Disk)

	r.Get("/", "home", ctx.Wrap(controllers.Home))

	authGroup := r.Group("/auth")
	authGroup.Post("/register", "auth.register", ctx.Wrap(authController.Register))
	authGroup.Post("/login", "auth.login", ctx.Wrap(authController.Login))

	api := r.Group("/api")
	protected := api.Group("", middleware.Auth)
	admin := protected.Group("", rbac.Admin)

	admin.Get("/users", "users.index", ctx.Wrap(userController.Index))
	protected.Get("/users/data", "users.me", ctx.Wrap(userController.Me))
	protected.Put("/users/{id}", "users.update", ctx.Wrap(userController.Update))

	api.Get("/restauranttypes", "restauranttypes.index", ctx.Wrap(typeController.Index))
	api.Get("/restauranttypes/{id}", "restauranttypes.show", ctx.Wrap(typeController.Show))
	admin.Post("/restauranttypes", "restauranttypes.store", ctx.Wrap(typeController.Store))
	admin.Post("/restauranttypes/create", "restauranttypes.create", ctx.Wrap(typeController.Store))
	admin.Put("/restauranttypes/{id}", "restauranttypes.update", ctx.Wrap(typeController.Update))
	admin.Delete("/restauranttypes/{id}", "restauranttypes.destroy", ctx.Wrap(typeController.Destroy))

	api.Get("/menucategories", "menucategories.index", ctx.Wrap(categoryController.Index))
	api.Get("/menucategories/{id}", "menucategories.show", ctx.Wrap(categoryController.Show))
	admin.Post("/menucategories", "menucategories.store", ctx.Wrap(categoryController.Store))
	admin.Post("/menucategories/create", "menucategories.create", ctx.Wrap(categoryController.Store))
	admin.Put("/menucategories/{id}", "menucategories.update", ctx.Wrap(categoryController.Update))
	admin.Delete("/menucategories/{id}", "menucategories.destroy", ctx.Wrap(categoryController.Destroy))

	api.Get("/restaurants", "restaurants.index", ctx.Wrap(restaurantController.Index))
	api.Get("/restaurants/{id}", "restaurants.show", ctx.Wrap(restaurantController.Show))
	api.Get("/restaurants/type/{id}", "restaurants.by_type", ctx.Wrap(restaurantController.ByType))
	protected.Get("/restaurants/owner/{id}", "restaurants.by_owner", ctx.Wrap(restaurantController.ByOwner))
	protected.Post("/restaurants", "restaurants.store", ctx.Wrap(restaurantController.Store))
	protected.Post("/restaurants/create", "restaurants.create", ctx.Wrap(restaurantController.Store))
	protected.Put("/restaurants/{id}", "restaurants.update", ctx.Wrap(restaurantController.Update))
	protected.Delete("/restaurants/{id}", "restaurants.destroy", ctx.Wrap(restaurantController.Destroy))

	api.Get("/menus", "menus.index", ctx.Wrap(menuController.Index))
	api.Get("/menus/{id}", "menus.show", ctx.Wrap(menuController.Show))
	api.Get("/menus/restaurant/{id}", "menus.by_restaurant", ctx.Wrap(menuController.ByRestaurant))
	protected.Post("/menus", "menus.store", ctx.Wrap(menuController.Store))
	protected.Post("/menus/create", "menus.create", ctx.Wrap(menuController.Store))
	protected.Put("/menus/{id}", "menus.update", ctx.Wrap(menuController.Update))
	protected.Delete("/menus/{id}", "menus.destroy", ctx.Wrap(menuController.Destroy))

	protected.Post("/uploads/images", "uploads.images", ctx.Wrap(uploadController.Image))

	schema, err := graphql.NewSchema(controllers.CatalogQuery(controllers.CatalogServices{
		Restaurants:     restaurantSvc,
		Menus:           menuSvc,
		MenuCategories:  categorySvc,
		RestaurantTypes: typeSvc,
	}))
	if err != nil {
		return err
	}
	r.Post("/graphql", "graphql", graphql.Handler(schema))

	if d.Hub != nil {
		r.Get("/ws/catalog", "ws.catalog", d.Hub.Handler())
	}
	return nil
}
