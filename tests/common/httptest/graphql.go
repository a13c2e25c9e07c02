//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type GraphQLError struct {
	Message    string         `json:"message"`
	Extensions map[string]any `json:"extensions"`
}

// Code returns extensions.code, or "" when the error carries none.
func (e GraphQLError) Code() string {
	code, _ := e.Extensions["code"].(string)
	return code
}

type GraphQLResponse struct {
	Data   map[string]any `json:"data"`
	Errors []GraphQLError `json:"errors"`
}

// posts a GraphQL document to /graphql and decodes the 200 response
func PerformGraphQL(t *testing.T, router *gin.Engine, query string, variables map[string]any) GraphQLResponse {
	t.Helper()

	body := map[string]any{"query": query}
	if variables != nil {
		body["variables"] = variables
	}
	rec := PerformRequest(t, router, http.MethodPost, "/graphql", body)
	require.Equal(t, http.StatusOK, rec.Code, "GraphQL responded with %d: %s", rec.Code, rec.Body.String())

	var resp GraphQLResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "Failed to decode GraphQL response: %s", rec.Body.String())
	return resp
}

// builds a GET /graphql URL carrying the query and optional variables
func GraphQLGetPath(t *testing.T, query string, variables map[string]any) string {
	t.Helper()

	params := url.Values{}
	params.Set("query", query)
	if variables != nil {
		raw, err := json.Marshal(variables)
		require.NoError(t, err)
		params.Set("variables", string(raw))
	}
	return "/graphql?" + params.Encode()
}

// walks nested objects in a GraphQL data payload, failing the test on a missing key
func Dig(t *testing.T, data map[string]any, keys ...string) any {
	t.Helper()

	var cur any = data
	for _, k := range keys {
		m, ok := cur.(map[string]any)
		require.True(t, ok, "expected object at %q, got %T", k, cur)
		cur, ok = m[k]
		require.True(t, ok, "missing key %q", k)
	}
	return cur
}
