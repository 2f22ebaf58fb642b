package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/GoSim-25-26J-441/pipeline-parser/internal/logging"
	"github.com/GoSim-25-26J-441/pipeline-parser/internal/pipeline/domain"
	"github.com/GoSim-25-26J-441/pipeline-parser/internal/pipeline/ingest/parser"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Parser is the part of the service the handler needs.
type Parser interface {
	Parse(ctx context.Context, p *domain.Pipeline) (*domain.ParseResult, error)
}

type Handler struct {
	parser Parser
}

func New(parser Parser) *Handler {
	return &Handler{parser: parser}
}

// ParsePipeline counts the submitted nodes and edges and reports whether
// they form a DAG.
func (h *Handler) ParsePipeline(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		writeBindError(c, err)
		return
	}
	if err := parser.CheckSingleJSON(raw); err != nil {
		writeBindError(c, err)
		return
	}

	var body ParseRequest
	if err := binding.JSON.BindBody(raw, &body); err != nil {
		writeBindError(c, err)
		return
	}

	res, err := h.parser.Parse(c.Request.Context(), body.ToDomain())
	if err != nil {
		logging.NewLogger(c.Request.Context()).LogError("parse", err)
		if errors.Is(err, domain.ErrInvalidPipeline) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid pipeline", Detail: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to process pipeline"})
		return
	}

	c.JSON(http.StatusOK, toResponse(res))
}

func writeBindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
			Error:  "request body too large",
			Detail: fmt.Sprintf("limit is %d bytes", tooLarge.Limit),
		})
		return
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{
				Field:   fieldPath(fe.Namespace()),
				Message: "field " + fe.Tag(),
			})
		}
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: details,
		})
		return
	}

	logging.NewLogger(c.Request.Context()).LogWarnf("parse", "bad request body: %v", err)
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:  "invalid request body",
		Detail: err.Error(),
	})
}

// fieldPath turns "ParseRequest.Nodes[2].ID" into "nodes[2].id".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns)
}
