package graph

import (
	"time"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/graphql-go/graphql"
)

func newMutation(r *Resolver, t *schemaTypes) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"create_user": &graphql.Field{
				Type: t.user,
				Args: graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"phone":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Accounts.CreateUser(p.Context, domain.CreateUserInput{
						Name:     stringArg(p, "name"),
						Email:    stringArg(p, "email"),
						Phone:    stringArg(p, "phone"),
						Password: stringArg(p, "password"),
					})
				},
			},

			"login": &graphql.Field{
				Type: t.loginResult,
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, token, err := r.Accounts.Login(p.Context, stringArg(p, "email"), stringArg(p, "password"))
					if err != nil {
						return nil, err
					}
					return loginResult{Token: token, User: user}, nil
				},
			},

			"update_me": &graphql.Field{
				Type: t.user,
				Args: graphql.FieldConfigArgument{
					"name":    &graphql.ArgumentConfig{Type: graphql.String},
					"phone":   &graphql.ArgumentConfig{Type: graphql.String},
					"address": &graphql.ArgumentConfig{Type: t.addressInput},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := requireUser(p)
					if err != nil {
						return nil, err
					}
					input := domain.UpdateProfileInput{
						Name:  optStringArg(p, "name"),
						Phone: optStringArg(p, "phone"),
					}
					if m, ok := p.Args["address"].(map[string]interface{}); ok {
						addr := addressInputFrom(m)
						input.Address = &addr
					}
					return r.Accounts.UpdateProfile(p.Context, user, input)
				},
			},

			"update_password": &graphql.Field{
				Type: t.user,
				Args: graphql.FieldConfigArgument{
					"old_pass": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"new_pass": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := requireUser(p)
					if err != nil {
						return nil, err
					}
					return r.Accounts.UpdatePassword(p.Context, user, stringArg(p, "old_pass"), stringArg(p, "new_pass"))
				},
			},

			"create_address": &graphql.Field{
				Type: t.address,
				Args: graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"phone":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"address1": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"address2": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"pincode":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"city":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"state":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"country":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := requireUser(p)
					if err != nil {
						return nil, err
					}
					return r.Accounts.CreateAddress(p.Context, user, domain.AddressInput{
						Name:     stringArg(p, "name"),
						Phone:    stringArg(p, "phone"),
						Address1: stringArg(p, "address1"),
						Address2: stringArg(p, "address2"),
						Pincode:  intArg(p, "pincode"),
						City:     stringArg(p, "city"),
						State:    stringArg(p, "state"),
						Country:  stringArg(p, "country"),
					})
				},
			},

			"delete_address": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"address_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := requireUser(p)
					if err != nil {
						return nil, err
					}
					addressID := stringArg(p, "address_id")
					if err := r.Accounts.DeleteAddress(p.Context, user, addressID); err != nil {
						return nil, err
					}
					return addressID, nil
				},
			},

			"set_cart": &graphql.Field{
				Type: graphql.NewList(t.cartLine),
				Args: graphql.FieldConfigArgument{
					"product_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"qty":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"add":        &graphql.ArgumentConfig{Type: graphql.Boolean},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := requireUser(p)
					if err != nil {
						return nil, err
					}
					return r.Carts.SetCartLine(p.Context, user, stringArg(p, "product_id"), intArg(p, "qty"), boolArg(p, "add"))
				},
			},

			"order_cart": &graphql.Field{
				Type: t.order,
				Args: graphql.FieldConfigArgument{
					"address_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := requireUser(p)
					if err != nil {
						return nil, err
					}
					return r.Orders.OrderCart(p.Context, user, stringArg(p, "address_id"))
				},
			},

			"order_product": &graphql.Field{
				Type: t.order,
				Args: graphql.FieldConfigArgument{
					"address_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"product_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"qty":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := requireUser(p)
					if err != nil {
						return nil, err
					}
					return r.Orders.OrderProduct(p.Context, user, stringArg(p, "address_id"), stringArg(p, "product_id"), intArg(p, "qty"))
				},
			},

			"add_review": &graphql.Field{
				Type: t.review,
				Args: graphql.FieldConfigArgument{
					"product_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"rating":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"text":       &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := requireUser(p)
					if err != nil {
						return nil, err
					}
					return r.Reviews.AddReview(p.Context, user, domain.AddReviewInput{
						ProductID: stringArg(p, "product_id"),
						Rating:    intArg(p, "rating"),
						Text:      stringArg(p, "text"),
					})
				},
			},

			"delete_review": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"review_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := requireUser(p)
					if err != nil {
						return nil, err
					}
					reviewID := stringArg(p, "review_id")
					if err := r.Reviews.DeleteReview(p.Context, user, reviewID); err != nil {
						return nil, err
					}
					return reviewID, nil
				},
			},

			"like_review": &graphql.Field{
				Type: t.like,
				Args: graphql.FieldConfigArgument{
					"review_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := requireUser(p)
					if err != nil {
						return nil, err
					}
					return r.Reviews.LikeReview(p.Context, user, stringArg(p, "review_id"))
				},
			},

			"unlike_review": &graphql.Field{
				Type: t.like,
				Args: graphql.FieldConfigArgument{
					"review_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := requireUser(p)
					if err != nil {
						return nil, err
					}
					return r.Reviews.UnlikeReview(p.Context, user, stringArg(p, "review_id"))
				},
			},

			"book_appointment": &graphql.Field{
				Type: t.appointment,
				Args: graphql.FieldConfigArgument{
					"timestamp": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.DateTime)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := requireUser(p)
					if err != nil {
						return nil, err
					}
					timestamp, ok := p.Args["timestamp"].(time.Time)
					if !ok {
						return nil, errInvalidTimestamp
					}
					return r.Appointments.Book(p.Context, user, timestamp)
				},
			},
		},
	})
}
