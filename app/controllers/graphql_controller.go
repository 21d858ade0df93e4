package controllers

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"github.com/shashiranjanraj/dinehub/app/models"
	"github.com/shashiranjanraj/dinehub/app/services"
	"github.com/shashiranjanraj/dinehub/pkg/collection"
	"github.com/shashiranjanraj/dinehub/pkg/orm"
)

// CatalogServices are the read paths exposed over GraphQL.
type CatalogServices struct {
	Restaurants     *services.RestaurantService
	Menus           *services.MenuService
	MenuCategories  *services.MenuCategoryService
	RestaurantTypes *services.RestaurantTypeService
}

var (
	gqlRestaurantType = graphql.NewObject(graphql.ObjectConfig{
		Name: "RestaurantType",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"code":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.String},
		},
	})

	gqlMenuCategory = graphql.NewObject(graphql.ObjectConfig{
		Name: "MenuCategory",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.String},
		},
	})

	gqlMenu = graphql.NewObject(graphql.ObjectConfig{
		Name: "Menu",
		Fields: graphql.Fields{
			"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description":  &graphql.Field{Type: graphql.String},
			"price":        &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"restaurantId": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"categoryId":   &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"imageUrl":     &graphql.Field{Type: graphql.String},
			"isActive":     &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"rating":       &graphql.Field{Type: graphql.Float},
			"ratingCount":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"createdAt":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	gqlRestaurant = graphql.NewObject(graphql.ObjectConfig{
		Name: "Restaurant",
		Fields: graphql.Fields{
			"id":               &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":             &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"address":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"ownerId":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"restaurantTypeId": &graphql.Field{Type: graphql.ID},
			"phone":            &graphql.Field{Type: graphql.String},
			"openingHours":     &graphql.Field{Type: graphql.String},
			"imageUrl":         &graphql.Field{Type: graphql.String},
			"description":      &graphql.Field{Type: graphql.String},
			"isActive":         &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"rating":           &graphql.Field{Type: graphql.Float},
			"ratingCount":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"createdAt":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})
)

// CatalogQuery is the root Query type of the read-only catalog schema.
func CatalogQuery(svc CatalogServices) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"restaurants": &graphql.Field{
				Type: graphql.NewList(gqlRestaurant),
				Args: graphql.FieldConfigArgument{
					"page":     &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 1},
					"pageSize": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: orm.DefaultPageSize},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					page, _ := p.Args["page"].(int)
					pageSize, _ := p.Args["pageSize"].(int)
					page, pageSize = orm.ClampPage(page, pageSize)
					rs, _, err := svc.Restaurants.List(p.Context, page, pageSize)
					if err != nil {
						return nil, err
					}
					return collection.Map(rs, restaurantNode), nil
				},
			},
			"restaurant": &graphql.Field{
				Type: gqlRestaurant,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := uuidArg(p, "id")
					if err != nil {
						return nil, nil
					}
					r, err := svc.Restaurants.Get(p.Context, id)
					if errors.Is(err, services.ErrNotFound) {
						return nil, nil
					}
					if err != nil {
						return nil, err
					}
					return restaurantNode(r), nil
				},
			},
			"menus": &graphql.Field{
				Type: graphql.NewList(gqlMenu),
				Args: graphql.FieldConfigArgument{
					"restaurantId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := uuidArg(p, "restaurantId")
					if err != nil {
						return []interface{}{}, nil
					}
					ms, err := svc.Menus.ByRestaurant(p.Context, id)
					if err != nil {
						return nil, err
					}
					return collection.Map(ms, menuNode), nil
				},
			},
			"menuCategories": &graphql.Field{
				Type: graphql.NewList(gqlMenuCategory),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					cs, err := svc.MenuCategories.List(p.Context)
					if err != nil {
						return nil, err
					}
					return collection.Map(cs, func(c models.MenuCategory) map[string]interface{} {
						return map[string]interface{}{"id": c.ID.String(), "name": c.Name, "description": optional(c.Description)}
					}), nil
				},
			},
			"restaurantTypes": &graphql.Field{
				Type: graphql.NewList(gqlRestaurantType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					ts, err := svc.RestaurantTypes.List(p.Context)
					if err != nil {
						return nil, err
					}
					return collection.Map(ts, func(t models.RestaurantType) map[string]interface{} {
						return map[string]interface{}{"id": t.ID.String(), "code": t.Code, "name": t.Name, "description": optional(t.Description)}
					}), nil
				},
			},
		},
	})
}

func uuidArg(p graphql.ResolveParams, name string) (uuid.UUID, error) {
	s, _ := p.Args[name].(string)
	return uuid.Parse(s)
}

func restaurantNode(r models.Restaurant) map[string]interface{} {
	node := map[string]interface{}{
		"id":           r.ID.String(),
		"name":         r.Name,
		"address":      r.Address,
		"ownerId":      r.OwnerID.String(),
		"phone":        optional(r.Phone),
		"openingHours": optional(r.OpeningHours),
		"imageUrl":     optional(r.ImageURL),
		"description":  optional(r.Description),
		"isActive":     r.IsActive,
		"rating":       optional(r.Rating),
		"ratingCount":  r.RatingCount,
		"createdAt":    r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if r.RestaurantTypeID != nil {
		node["restaurantTypeId"] = r.RestaurantTypeID.String()
	}
	return node
}

func menuNode(m models.Menu) map[string]interface{} {
	return map[string]interface{}{
		"id":           m.ID.String(),
		"name":         m.Name,
		"description":  optional(m.Description),
		"price":        m.Price,
		"restaurantId": m.RestaurantID.String(),
		"categoryId":   m.CategoryID.String(),
		"imageUrl":     optional(m.ImageURL),
		"isActive":     m.IsActive,
		"rating":       optional(m.Rating),
		"ratingCount":  m.RatingCount,
		"createdAt":    m.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// optional unwraps nullable model fields so GraphQL sees a plain value or nil.
func optional[T any](v *T) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
