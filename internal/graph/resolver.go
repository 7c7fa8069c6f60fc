// Package graph exposes the storefront operations as a GraphQL schema. The
// resolvers are thin: argument plumbing plus a call into the service layer,
// which owns every invariant.
package graph

import (
	"github.com/cloud-wave-best-zizon/storefront-service/internal/auth"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/service"
	"github.com/graphql-go/graphql"
)

type Resolver struct {
	Catalog      *service.CatalogService
	Carts        *service.CartService
	Orders       *service.OrderService
	Appointments *service.AppointmentService
	Reviews      *service.ReviewService
	Accounts     *service.AccountService
}

// requireUser rejects the operation unless the middleware attached a
// principal to the request context.
func requireUser(p graphql.ResolveParams) (*domain.User, error) {
	user, ok := auth.UserFrom(p.Context)
	if !ok {
		return nil, service.ErrUnauthenticated
	}
	return user, nil
}

func stringArg(p graphql.ResolveParams, name string) string {
	v, _ := p.Args[name].(string)
	return v
}

func intArg(p graphql.ResolveParams, name string) int {
	v, _ := p.Args[name].(int)
	return v
}

func boolArg(p graphql.ResolveParams, name string) bool {
	v, _ := p.Args[name].(bool)
	return v
}

func optStringArg(p graphql.ResolveParams, name string) *string {
	if v, ok := p.Args[name].(string); ok {
		return &v
	}
	return nil
}
