package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

type GraphQLRequest struct {
	Query         string                 `json:"query" binding:"required"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

type GraphQLHandler struct {
	schema graphql.Schema
	logger *zap.Logger
}

func NewGraphQLHandler(schema graphql.Schema, logger *zap.Logger) *GraphQLHandler {
	return &GraphQLHandler{
		schema: schema,
		logger: logger,
	}
}

// Handle executes one query/mutation document. Resolver failures surface as
// GraphQL errors in a 200 response; only a malformed envelope is a
// transport-level error.
func (h *GraphQLHandler) Handle(c *gin.Context) {
	var req GraphQLRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        c.Request.Context(),
	})

	if result.HasErrors() {
		h.logger.Warn("GraphQL execution returned errors",
			zap.String("request_id", c.GetString("request_id")),
			zap.Int("error_count", len(result.Errors)))
	}

	c.JSON(http.StatusOK, result)
}
