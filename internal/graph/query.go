package graph

import (
	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/graphql-go/graphql"
)

func newQuery(r *Resolver, t *schemaTypes) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type: t.user,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return requireUser(p)
				},
			},

			"products": &graphql.Field{
				Type: graphql.NewList(t.product),
				Args: graphql.FieldConfigArgument{
					"search": &graphql.ArgumentConfig{Type: graphql.String},
					"kind":   &graphql.ArgumentConfig{Type: graphql.String},
					"skip":   &graphql.ArgumentConfig{Type: graphql.Int},
					"first":  &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Catalog.ListProducts(p.Context, domain.ProductFilter{
						Search: stringArg(p, "search"),
						Kind:   stringArg(p, "kind"),
						Skip:   intArg(p, "skip"),
						First:  intArg(p, "first"),
					})
				},
			},

			"product": &graphql.Field{
				Type: t.product,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Catalog.GetProduct(p.Context, stringArg(p, "id"))
				},
			},

			"orders": &graphql.Field{
				Type: graphql.NewList(t.order),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := requireUser(p)
					if err != nil {
						return nil, err
					}
					return r.Orders.ListOrders(p.Context, user)
				},
			},

			"order": &graphql.Field{
				Type: t.order,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := requireUser(p)
					if err != nil {
						return nil, err
					}
					return r.Orders.GetOrder(p.Context, user, stringArg(p, "id"))
				},
			},

			"booked_dates": &graphql.Field{
				Type: graphql.NewList(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Appointments.BookedDates(p.Context)
				},
			},
		},
	})
}
