// Package graphql provides the GraphQL transport layer for the RecipeBox
// backend. It defines the GraphQL schema, resolvers, and error handling for
// the recipe collection API. Scalar types (UUID, DateTime) and GraphQL types
// are generated via gqlgen from the schema file.
package graphql

//go:generate go run github.com/99designs/gqlgen generate
