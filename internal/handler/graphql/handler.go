package graphql

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"referral-credits/internal/handler/httperr"
	"referral-credits/internal/usecase/commands"
	"referral-credits/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	gql "github.com/graphql-go/graphql"
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

type RequestRecorder interface {
	GraphQLRequest(operation, outcome string)
}

type Request struct {
	Query         string         `json:"query" binding:"required"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
	Extensions    map[string]any `json:"extensions"`
}

type Handler struct {
	schema   gql.Schema
	recorder RequestRecorder
	logger   *slog.Logger
}

func NewHandler(q queries.ReferralQueries, cmds commands.ReferralCommands, recorder RequestRecorder, logger *slog.Logger) (*Handler, error) {
	schema, err := NewSchema(q, cmds, logger)
	if err != nil {
		return nil, err
	}
	return &Handler{schema: schema, recorder: recorder, logger: logger}, nil
}

// @Summary GraphQL endpoint
// @Description Executes referralSummary queries and sendReferralCode mutations
// @Tags graphql
// @Accept json
// @Produce json
// @Param request body Request true "GraphQL request"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /graphql [post]
func (h *Handler) Post(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid GraphQL request", nil)
		return
	}
	h.execute(c, req)
}

// Get serves queries sent as URL parameters. Mutations must use POST.
func (h *Handler) Get(c *gin.Context) {
	req := Request{
		Query:         c.Query("query"),
		OperationName: c.Query("operationName"),
	}
	if req.Query == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingQuery, "Invalid GraphQL request", nil)
		return
	}
	if raw := c.Query("variables"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid GraphQL variables", nil)
			return
		}
	}
	if isMutation(req) {
		httperr.AbortWithError(c, http.StatusMethodNotAllowed, errMutationOverGet, "Mutations require POST", nil)
		return
	}
	h.execute(c, req)
}

func (h *Handler) execute(c *gin.Context, req Request) {
	result := gql.Do(gql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.Request.Context(),
	})

	label := operationLabel(h.schema, req)
	outcome := OutcomeOK
	if result.HasErrors() {
		outcome = OutcomeError
		h.logger.Debug("GraphQL request returned errors",
			"operation", label, "errors", len(result.Errors))
	}
	h.recorder.GraphQLRequest(label, outcome)

	c.JSON(http.StatusOK, result)
}
