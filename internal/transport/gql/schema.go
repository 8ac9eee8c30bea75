// Package gql exposes the typed query surface over the same entity store the
// REST routes use, plus the GraphiQL exploration UI.
package gql

import (
	"errors"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"

	"github.com/lyepez-glitch/VitalCore/internal/domain"
	"github.com/lyepez-glitch/VitalCore/internal/realtime"
	"github.com/lyepez-glitch/VitalCore/internal/service"
)

// ErrNoRealtimeChannel is returned by every mutation when the resolver was
// built without a broadcast channel. The mutation performs no store write in
// that case; the live channel is a required collaborator for typed writes.
var ErrNoRealtimeChannel = errors.New("realtime channel unavailable")

var errGeneNotFound = errors.New("Gene not found")

type resolver struct {
	svc      *service.VitalsService
	notifier realtime.Notifier
}

var cellType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Cell",
	Fields: graphql.Fields{
		"id":            &graphql.Field{Type: graphql.Int},
		"cell_type":     &graphql.Field{Type: graphql.String},
		"age":           &graphql.Field{Type: graphql.Int},
		"repair_rate":   &graphql.Field{Type: graphql.Float},
		"mutation_rate": &graphql.Field{Type: graphql.Float},
		"lifespan":      &graphql.Field{Type: graphql.Int},
	},
})

var geneType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Gene",
	Fields: graphql.Fields{
		"id":                 &graphql.Field{Type: graphql.Int},
		"gene_name":          &graphql.Field{Type: graphql.String},
		"mutation_rate":      &graphql.Field{Type: graphql.Float},
		"impact_on_lifespan": &graphql.Field{Type: graphql.Int},
	},
})

var lifeFactorType = graphql.NewObject(graphql.ObjectConfig{
	Name: "LifeFactor",
	Fields: graphql.Fields{
		"id":              &graphql.Field{Type: graphql.Int},
		"factor_name":     &graphql.Field{Type: graphql.String},
		"factor_impact":   &graphql.Field{Type: graphql.Float},
		"lifespan_change": &graphql.Field{Type: graphql.Int},
	},
})

// NewSchema builds the typed query surface. notifier may be nil; queries
// still work but mutations refuse to run (see ErrNoRealtimeChannel).
func NewSchema(svc *service.VitalsService, notifier realtime.Notifier) (graphql.Schema, error) {
	r := &resolver{svc: svc, notifier: notifier}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"getGenes": &graphql.Field{
				Type: graphql.NewList(geneType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.svc.ListGenes(p.Context)
				},
			},
			"getGeneById": &graphql.Field{
				Type: geneType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id := p.Args["id"].(int)
					g, err := r.svc.GetGene(p.Context, uint(id))
					if errors.Is(err, domain.ErrNotFound) {
						return nil, errGeneNotFound
					}
					return g, err
				},
			},
			"getCells": &graphql.Field{
				Type: graphql.NewList(cellType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.svc.ListCells(p.Context)
				},
			},
			"getLifeFactors": &graphql.Field{
				Type: graphql.NewList(lifeFactorType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.svc.ListLifeFactors(p.Context)
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"addGene": &graphql.Field{
				Type: geneType,
				Args: graphql.FieldConfigArgument{
					"gene_name":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"mutation_rate":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"impact_on_lifespan": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: r.addGene,
			},
			"modifyGeneActivity": &graphql.Field{
				Type: geneType,
				Args: graphql.FieldConfigArgument{
					"id":                 &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"impact_on_lifespan": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: r.modifyGeneActivity,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}

// NewHandler wraps the schema in an HTTP handler; GET serves GraphiQL.
func NewHandler(svc *service.VitalsService, notifier realtime.Notifier) (*handler.Handler, error) {
	schema, err := NewSchema(svc, notifier)
	if err != nil {
		return nil, err
	}
	return handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	}), nil
}

func (r *resolver) addGene(p graphql.ResolveParams) (interface{}, error) {
	if r.notifier == nil {
		return nil, ErrNoRealtimeChannel
	}
	name := p.Args["gene_name"].(string)
	rate := p.Args["mutation_rate"].(float64)
	impact := optionalInt(p.Args, "impact_on_lifespan")

	g, err := r.svc.AddGene(p.Context, name, rate, impact)
	if err != nil {
		return nil, err
	}
	r.notifier.Notify("geneAdded", g)
	return g, nil
}

func (r *resolver) modifyGeneActivity(p graphql.ResolveParams) (interface{}, error) {
	if r.notifier == nil {
		return nil, ErrNoRealtimeChannel
	}
	id := p.Args["id"].(int)
	impact := optionalInt(p.Args, "impact_on_lifespan")

	g, err := r.svc.ModifyGeneActivity(p.Context, uint(id), impact)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errGeneNotFound
	}
	if err != nil {
		return nil, err
	}
	r.notifier.Notify("geneModified", g)
	return g, nil
}

func optionalInt(args map[string]interface{}, key string) *int {
	if v, ok := args[key].(int); ok {
		return &v
	}
	return nil
}
