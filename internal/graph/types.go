package graph

import (
	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/graphql-go/graphql"
)

// Field names follow the json tags on the domain structs, so plain fields
// resolve through the default resolver and only derived fields carry code.

type schemaTypes struct {
	review      *graphql.Object
	like        *graphql.Object
	product     *graphql.Object
	cartLine    *graphql.Object
	address     *graphql.Object
	orderLine   *graphql.Object
	order       *graphql.Object
	appointment *graphql.Object
	user        *graphql.Object
	loginResult *graphql.Object

	addressInput *graphql.InputObject
}

type loginResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func newTypes(r *Resolver) *schemaTypes {
	t := &schemaTypes{}

	t.review = graphql.NewObject(graphql.ObjectConfig{
		Name: "Review",
		Fields: graphql.Fields{
			"review_id":  &graphql.Field{Type: graphql.String},
			"product_id": &graphql.Field{Type: graphql.String},
			"user_id":    &graphql.Field{Type: graphql.String},
			"rating":     &graphql.Field{Type: graphql.Int},
			"text":       &graphql.Field{Type: graphql.String},
			"created_at": &graphql.Field{Type: graphql.DateTime},
			"likes_count": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Reviews.LikesCount(p.Context, sourceReview(p).ReviewID)
				},
			},
			"is_liked": &graphql.Field{
				Type: graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := requireUser(p)
					if err != nil {
						return nil, err
					}
					return r.Reviews.IsLiked(p.Context, user, sourceReview(p).ReviewID)
				},
			},
		},
	})

	t.like = graphql.NewObject(graphql.ObjectConfig{
		Name: "Like",
		Fields: graphql.Fields{
			"like_id":    &graphql.Field{Type: graphql.String},
			"user_id":    &graphql.Field{Type: graphql.String},
			"review_id":  &graphql.Field{Type: graphql.String},
			"created_at": &graphql.Field{Type: graphql.DateTime},
		},
	})

	t.product = graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"product_id": &graphql.Field{Type: graphql.String},
			"name":       &graphql.Field{Type: graphql.String},
			"kind":       &graphql.Field{Type: graphql.String},
			"price":      &graphql.Field{Type: graphql.Int},
			"discount":   &graphql.Field{Type: graphql.Int},
			"stock":      &graphql.Field{Type: graphql.Int},
			"created_at": &graphql.Field{Type: graphql.DateTime},
			"reviews": &graphql.Field{
				Type: graphql.NewList(t.review),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Reviews.ListByProduct(p.Context, sourceProduct(p).ProductID)
				},
			},
		},
	})

	t.cartLine = graphql.NewObject(graphql.ObjectConfig{
		Name: "CartLine",
		Fields: graphql.Fields{
			"user_id":    &graphql.Field{Type: graphql.String},
			"product_id": &graphql.Field{Type: graphql.String},
			"qty":        &graphql.Field{Type: graphql.Int},
			"updated_at": &graphql.Field{Type: graphql.DateTime},
			"product": &graphql.Field{
				Type: t.product,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Catalog.GetProduct(p.Context, sourceCartLine(p).ProductID)
				},
			},
		},
	})

	t.address = graphql.NewObject(graphql.ObjectConfig{
		Name: "Address",
		Fields: graphql.Fields{
			"address_id": &graphql.Field{Type: graphql.String},
			"user_id":    &graphql.Field{Type: graphql.String},
			"name":       &graphql.Field{Type: graphql.String},
			"phone":      &graphql.Field{Type: graphql.String},
			"address1":   &graphql.Field{Type: graphql.String},
			"address2":   &graphql.Field{Type: graphql.String},
			"pincode":    &graphql.Field{Type: graphql.Int},
			"city":       &graphql.Field{Type: graphql.String},
			"state":      &graphql.Field{Type: graphql.String},
			"country":    &graphql.Field{Type: graphql.String},
			"created_at": &graphql.Field{Type: graphql.DateTime},
		},
	})

	t.orderLine = graphql.NewObject(graphql.ObjectConfig{
		Name: "OrderLine",
		Fields: graphql.Fields{
			"product_id":   &graphql.Field{Type: graphql.String},
			"product_name": &graphql.Field{Type: graphql.String},
			"qty":          &graphql.Field{Type: graphql.Int},
			"price":        &graphql.Field{Type: graphql.Int},
		},
	})

	t.order = graphql.NewObject(graphql.ObjectConfig{
		Name: "Order",
		Fields: graphql.Fields{
			"order_id":   &graphql.Field{Type: graphql.String},
			"user_id":    &graphql.Field{Type: graphql.String},
			"name":       &graphql.Field{Type: graphql.String},
			"phone":      &graphql.Field{Type: graphql.String},
			"address1":   &graphql.Field{Type: graphql.String},
			"address2":   &graphql.Field{Type: graphql.String},
			"pincode":    &graphql.Field{Type: graphql.Int},
			"city":       &graphql.Field{Type: graphql.String},
			"state":      &graphql.Field{Type: graphql.String},
			"country":    &graphql.Field{Type: graphql.String},
			"created_at": &graphql.Field{Type: graphql.DateTime},
			"lines":      &graphql.Field{Type: graphql.NewList(t.orderLine)},
		},
	})

	t.appointment = graphql.NewObject(graphql.ObjectConfig{
		Name: "Appointment",
		Fields: graphql.Fields{
			"date":      &graphql.Field{Type: graphql.String},
			"user_id":   &graphql.Field{Type: graphql.String},
			"timestamp": &graphql.Field{Type: graphql.DateTime},
		},
	})

	t.user = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"user_id":    &graphql.Field{Type: graphql.String},
			"name":       &graphql.Field{Type: graphql.String},
			"email":      &graphql.Field{Type: graphql.String},
			"phone":      &graphql.Field{Type: graphql.String},
			"created_at": &graphql.Field{Type: graphql.DateTime},
			"cart": &graphql.Field{
				Type: graphql.NewList(t.cartLine),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Carts.GetCart(p.Context, sourceUser(p))
				},
			},
			"addresses": &graphql.Field{
				Type: graphql.NewList(t.address),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Accounts.ListAddresses(p.Context, sourceUser(p))
				},
			},
		},
	})

	t.loginResult = graphql.NewObject(graphql.ObjectConfig{
		Name: "LoginResult",
		Fields: graphql.Fields{
			"token": &graphql.Field{Type: graphql.String},
			"user":  &graphql.Field{Type: t.user},
		},
	})

	t.addressInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "AddressInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"phone":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"address1": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"address2": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"pincode":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"city":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"state":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"country":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	return t
}

func sourceProduct(p graphql.ResolveParams) *domain.Product {
	switch v := p.Source.(type) {
	case *domain.Product:
		return v
	case domain.Product:
		return &v
	}
	return &domain.Product{}
}

func sourceReview(p graphql.ResolveParams) *domain.Review {
	switch v := p.Source.(type) {
	case *domain.Review:
		return v
	case domain.Review:
		return &v
	}
	return &domain.Review{}
}

func sourceCartLine(p graphql.ResolveParams) *domain.CartLine {
	switch v := p.Source.(type) {
	case *domain.CartLine:
		return v
	case domain.CartLine:
		return &v
	}
	return &domain.CartLine{}
}

func sourceUser(p graphql.ResolveParams) *domain.User {
	switch v := p.Source.(type) {
	case *domain.User:
		return v
	case domain.User:
		return &v
	}
	return &domain.User{}
}

func addressInputFrom(m map[string]interface{}) domain.AddressInput {
	in := domain.AddressInput{}
	if v, ok := m["name"].(string); ok {
		in.Name = v
	}
	if v, ok := m["phone"].(string); ok {
		in.Phone = v
	}
	if v, ok := m["address1"].(string); ok {
		in.Address1 = v
	}
	if v, ok := m["address2"].(string); ok {
		in.Address2 = v
	}
	if v, ok := m["pincode"].(int); ok {
		in.Pincode = v
	}
	if v, ok := m["city"].(string); ok {
		in.City = v
	}
	if v, ok := m["state"].(string); ok {
		in.State = v
	}
	if v, ok := m["country"].(string); ok {
		in.Country = v
	}
	return in
}
