package graphql

import (
	"strings"

	"referral-credits/internal/pkg/errs"

	gql "github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
)

var (
	errMissingQuery    = errs.New("query parameter is required")
	errMutationOverGet = errs.New("mutation sent over GET")
)

// Metric labels for requests that do not resolve to a schema root field.
const (
	LabelUnknown       = "unknown"
	LabelIntrospection = "introspection"
)

// selectOperation picks the operation graphql-go would execute, or nil when
// the name matches nothing or is omitted for a multi-operation document.
func selectOperation(doc *ast.Document, name string) *ast.OperationDefinition {
	var found *ast.OperationDefinition
	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok {
			continue
		}
		if name == "" {
			if found != nil {
				return nil
			}
			found = op
			continue
		}
		if op.Name != nil && op.Name.Value == name {
			return op
		}
	}
	return found
}

// isMutation reports whether the operation req would run is a mutation.
// Unparsable documents return false and are left to graphql-go to report.
func isMutation(req Request) bool {
	doc, err := parser.Parse(parser.ParseParams{Source: req.Query})
	if err != nil {
		return false
	}
	op := selectOperation(doc, req.OperationName)
	return op != nil && op.Operation == ast.OperationTypeMutation
}

// operationLabel names a request by the first root field it selects that the
// schema defines. Client-chosen operation names never become labels.
func operationLabel(schema gql.Schema, req Request) string {
	doc, err := parser.Parse(parser.ParseParams{Source: req.Query})
	if err != nil {
		return LabelUnknown
	}
	op := selectOperation(doc, req.OperationName)
	if op == nil || op.SelectionSet == nil {
		return LabelUnknown
	}

	var root *gql.Object
	switch op.Operation {
	case ast.OperationTypeQuery:
		root = schema.QueryType()
	case ast.OperationTypeMutation:
		root = schema.MutationType()
	}
	if root == nil {
		return LabelUnknown
	}

	fields := root.Fields()
	for _, sel := range op.SelectionSet.Selections {
		f, ok := sel.(*ast.Field)
		if !ok || f.Name == nil {
			continue
		}
		if strings.HasPrefix(f.Name.Value, "__") {
			return LabelIntrospection
		}
		if _, ok := fields[f.Name.Value]; ok {
			return f.Name.Value
		}
	}
	return LabelUnknown
}
