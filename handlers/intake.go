package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"autointake/models"
	"autointake/services/agent"
	"autointake/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Oversized payloads are rejected before any parsing happens.
const maxBodyBytes = 1 << 20

// Runner runs one intake pipeline with the caller's overrides.
type Runner interface {
	Run(ctx context.Context, overrides *models.ServiceRequestPatch) (*models.ServiceRequest, error)
}

// IntakeHandler exposes the pipeline over HTTP.
type IntakeHandler struct {
	Agent Runner
}

func NewIntakeHandler(a Runner) *IntakeHandler {
	return &IntakeHandler{Agent: a}
}

// RunResponse is the success body. ServiceRequest is the full record, or
// only the customer name string when the request is confidential.
type RunResponse struct {
	Success        bool        `json:"success"`
	ServiceRequest interface{} `json:"serviceRequest"`
}

// RunHandler handles POST /run: validate the override payload against the
// partial profile, run the pipeline, and shape the response according to
// the confidential flag.
func (h *IntakeHandler) RunHandler(c *gin.Context) {
	logger := utils.GetLogger()

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "Request body too large"})
			return
		}
		c.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "Invalid JSON in request body"})
		return
	}

	// An empty body is allowed: the generator fills every field.
	raw := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &raw); err != nil {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "Invalid JSON in request body"})
			return
		}
	}

	// Every unknown top-level key is reported, not just the first.
	var unknown []string
	for key := range raw {
		if key != "confidential" && !models.IsKnownField(key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		plural := ""
		if len(unknown) > 1 {
			plural = "s"
		}
		c.JSON(http.StatusBadRequest, utils.ErrorResponse{
			Error: fmt.Sprintf("Unknown ServiceRequest field%s: %s", plural, strings.Join(unknown, ", ")),
		})
		return
	}

	// confidential is a transport-level flag, validated apart from the
	// domain fields and never merged into the record. Defaults to true.
	confidential := true
	if flag, ok := raw["confidential"]; ok {
		if err := json.Unmarshal(flag, &confidential); err != nil {
			respondValidation(c, models.ValidationErrors{
				{Field: "confidential", Message: "must be a boolean"},
			})
			return
		}
	}

	var overrides models.ServiceRequestPatch
	if len(raw) > 0 {
		if err := json.Unmarshal(body, &overrides); err != nil {
			respondValidation(c, decodeErrors(err))
			return
		}
	}
	if err := models.ValidatePatch(&overrides); err != nil {
		var fields models.ValidationErrors
		if errors.As(err, &fields) {
			respondValidation(c, fields)
			return
		}
		c.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	serviceRequest, err := h.Agent.Run(c.Request.Context(), &overrides)
	if err != nil {
		logger.Error("Intake run failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: runFailureMessage(err)})
		return
	}

	if confidential {
		c.JSON(http.StatusOK, RunResponse{Success: true, ServiceRequest: serviceRequest.CustomerName})
		return
	}
	c.JSON(http.StatusOK, RunResponse{Success: true, ServiceRequest: serviceRequest})
}

func respondValidation(c *gin.Context, fields models.ValidationErrors) {
	c.JSON(http.StatusBadRequest, utils.ErrorResponse{
		Error:   "Validation failed: " + fields.Error(),
		Details: fields,
	})
}

// decodeErrors maps JSON decode failures on known fields (wrong value
// types) to per-field violations.
func decodeErrors(err error) models.ValidationErrors {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return models.ValidationErrors{
			{Field: typeErr.Field, Message: fmt.Sprintf("must be a %s", expectedType(typeErr))},
		}
	}
	return models.ValidationErrors{{Field: "request", Message: "malformed field value"}}
}

func expectedType(typeErr *json.UnmarshalTypeError) string {
	switch typeErr.Type.Kind().String() {
	case "int":
		return "number"
	default:
		return typeErr.Type.Kind().String()
	}
}

// runFailureMessage keeps stage internals out of the response; the full
// error is in the logs.
func runFailureMessage(err error) string {
	var genErr *agent.GenerationError
	var valErr *agent.ValidationError
	switch {
	case errors.As(err, &genErr):
		return "Failed to generate a service request"
	case errors.As(err, &valErr):
		return "Generated service request failed validation: " + valErr.Fields.Error()
	default:
		return "Failed to submit the service request"
	}
}
