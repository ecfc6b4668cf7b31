// Package agent orchestrates one intake run: generate a candidate record,
// apply caller overrides, validate the result, and drive it into the live
// form. Every run is independent and strictly sequential; any stage failure
// aborts the whole run with no partial record returned.
package agent

import (
	"context"
	"errors"
	"fmt"

	"autointake/models"
	"autointake/services/driver"
	"autointake/services/generator"
	"autointake/utils"

	"go.uber.org/zap"
)

// PageSession is a live form page that must be released when the run ends.
type PageSession interface {
	driver.Page
	Close() error
}

// OpenPage acquires a fresh page session against the form's URL.
type OpenPage func(ctx context.Context, url string) (PageSession, error)

// Service composes the pipeline stages.
type Service struct {
	Generator *generator.Service
	OpenPage  OpenPage
	FormURL   string
}

func New(gen *generator.Service, open OpenPage, formURL string) *Service {
	return &Service{Generator: gen, OpenPage: open, FormURL: formURL}
}

// Run executes generate → merge → validate → drive and returns the final
// record. The merged record is validated against the strict profile before
// any form interaction happens, so a malformed merge never reaches the
// browser.
func (s *Service) Run(ctx context.Context, overrides *models.ServiceRequestPatch) (*models.ServiceRequest, error) {
	logger := utils.GetLogger()

	candidate, err := s.Generator.GenerateRequest(ctx)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	merged := overrides.Apply(candidate)

	if err := models.ValidateStrict(&merged); err != nil {
		var fields models.ValidationErrors
		if !errors.As(err, &fields) {
			return nil, fmt.Errorf("validate merged record: %w", err)
		}
		return nil, &ValidationError{Fields: fields}
	}

	page, err := s.OpenPage(ctx, s.FormURL)
	if err != nil {
		return nil, fmt.Errorf("open form session: %w", err)
	}
	defer func() {
		if cerr := page.Close(); cerr != nil {
			logger.Warn("Failed to close form session", zap.Error(cerr))
		}
	}()

	if err := driver.New(page).Drive(ctx, merged); err != nil {
		return nil, err
	}

	logger.Info("Service request submitted",
		zap.String("make", merged.Make),
		zap.String("serviceType", merged.ServiceType),
		zap.String("urgency", merged.Urgency))
	return &merged, nil
}
