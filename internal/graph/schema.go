package graph

import (
	"errors"

	"github.com/graphql-go/graphql"
)

var errInvalidTimestamp = errors.New("invalid timestamp")

// NewSchema assembles the executable schema from the resolver set.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	t := newTypes(r)

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    newQuery(r, t),
		Mutation: newMutation(r, t),
	})
}
