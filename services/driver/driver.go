// Package driver replays a validated service request into the section-gated
// intake form through an abstract page.
package driver

import (
	"context"
	"fmt"
	"strconv"

	"autointake/models"
)

const submitButton = ".submit-btn"

type sectionID string

const (
	sectionCustomer   sectionID = "customerInfo"
	sectionVehicle    sectionID = "vehicleInfo"
	sectionService    sectionID = "serviceRequest"
	sectionAdditional sectionID = "additionalInfo"
)

// fieldSections maps every form field to the section that owns it. A field
// is only interactable while its section is the expanded one.
var fieldSections = map[string]sectionID{
	"customerName":     sectionCustomer,
	"phoneNumber":      sectionCustomer,
	"email":            sectionCustomer,
	"preferredContact": sectionCustomer,

	"make":         sectionVehicle,
	"model":        sectionVehicle,
	"year":         sectionVehicle,
	"mileage":      sectionVehicle,
	"vin":          sectionVehicle,
	"licensePlate": sectionVehicle,

	"serviceType":        sectionService,
	"urgency":            sectionService,
	"problemDescription": sectionService,
	"symptoms":           sectionService,
	"preferredDate":      sectionService,
	"budget":             sectionService,

	"previousRepairs":     sectionAdditional,
	"warrantyInfo":        sectionAdditional,
	"specialInstructions": sectionAdditional,
	"howDidYouHear":       sectionAdditional,
}

// Driver tracks which section is currently expanded and refuses to touch a
// field outside it. The form itself enforces one-open-section, but relying
// on it to silently swallow out-of-order calls hides sequencing bugs; the
// driver fails fast instead.
type Driver struct {
	page     Page
	expanded sectionID
}

// New returns a driver for a freshly loaded form page, where the customer
// section starts expanded.
func New(page Page) *Driver {
	return &Driver{page: page, expanded: sectionCustomer}
}

// Drive fills and submits the whole record in section order. Optional
// fields that are absent are skipped entirely, never sent as empty
// overwrites. The first failure aborts the rest of the sequence.
func (d *Driver) Drive(ctx context.Context, req models.ServiceRequest) error {
	// Customer section: already expanded on page load, never re-expanded.
	if err := d.fill(ctx, "customerName", req.CustomerName); err != nil {
		return err
	}
	if err := d.fill(ctx, "phoneNumber", req.PhoneNumber); err != nil {
		return err
	}
	if err := d.fill(ctx, "email", req.Email); err != nil {
		return err
	}
	if err := d.selectIf(ctx, "preferredContact", req.PreferredContact); err != nil {
		return err
	}

	if err := d.expand(ctx, sectionVehicle); err != nil {
		return err
	}
	if err := d.selectOption(ctx, "make", req.Make); err != nil {
		return err
	}
	if err := d.fill(ctx, "model", req.Model); err != nil {
		return err
	}
	if err := d.fill(ctx, "year", strconv.Itoa(req.Year)); err != nil {
		return err
	}
	if err := d.fill(ctx, "mileage", strconv.Itoa(req.Mileage)); err != nil {
		return err
	}
	if err := d.fillIf(ctx, "vin", req.VIN); err != nil {
		return err
	}
	if err := d.fillIf(ctx, "licensePlate", req.LicensePlate); err != nil {
		return err
	}

	if err := d.expand(ctx, sectionService); err != nil {
		return err
	}
	if err := d.selectOption(ctx, "serviceType", req.ServiceType); err != nil {
		return err
	}
	if err := d.selectOption(ctx, "urgency", req.Urgency); err != nil {
		return err
	}
	if err := d.fill(ctx, "problemDescription", req.ProblemDescription); err != nil {
		return err
	}
	if err := d.fillIf(ctx, "symptoms", req.Symptoms); err != nil {
		return err
	}
	if err := d.fillIf(ctx, "preferredDate", req.PreferredDate); err != nil {
		return err
	}
	if err := d.selectIf(ctx, "budget", req.Budget); err != nil {
		return err
	}

	if err := d.expand(ctx, sectionAdditional); err != nil {
		return err
	}
	if err := d.fillIf(ctx, "previousRepairs", req.PreviousRepairs); err != nil {
		return err
	}
	if err := d.fillIf(ctx, "warrantyInfo", req.WarrantyInfo); err != nil {
		return err
	}
	if err := d.fillIf(ctx, "specialInstructions", req.SpecialInstructions); err != nil {
		return err
	}
	if err := d.selectIf(ctx, "howDidYouHear", req.HowDidYouHear); err != nil {
		return err
	}

	if err := d.page.Click(ctx, submitButton); err != nil {
		return &Error{Op: "click", Target: submitButton, Err: err}
	}
	return nil
}

// expand clicks a section's header and waits for its content to become
// visible. The form collapses the previously open section on its own.
func (d *Driver) expand(ctx context.Context, sec sectionID) error {
	header := fmt.Sprintf("#%s .section-header", sec)
	content := fmt.Sprintf("#%s .section-content", sec)

	if err := d.page.Click(ctx, header); err != nil {
		return &Error{Op: "expand", Target: header, Err: err}
	}
	if err := d.page.WaitForVisible(ctx, content); err != nil {
		return &Error{Op: "expand", Target: content, Err: err}
	}
	d.expanded = sec
	return nil
}

// gate rejects any interaction with a field whose owning section is not
// the currently expanded one.
func (d *Driver) gate(field string) error {
	sec, ok := fieldSections[field]
	if !ok {
		return &Error{Op: "gate", Target: field, Err: fmt.Errorf("unknown form field")}
	}
	if sec != d.expanded {
		return &Error{Op: "gate", Target: field, Err: fmt.Errorf("section %s is not expanded", sec)}
	}
	return nil
}

func (d *Driver) fill(ctx context.Context, field, value string) error {
	if err := d.gate(field); err != nil {
		return err
	}
	if err := d.page.Fill(ctx, "#"+field, value); err != nil {
		return &Error{Op: "fill", Target: "#" + field, Err: err}
	}
	return nil
}

func (d *Driver) selectOption(ctx context.Context, field, value string) error {
	if err := d.gate(field); err != nil {
		return err
	}
	if err := d.page.SelectOption(ctx, "#"+field, value); err != nil {
		return &Error{Op: "select", Target: "#" + field, Err: err}
	}
	return nil
}

func (d *Driver) fillIf(ctx context.Context, field, value string) error {
	if value == "" {
		return nil
	}
	return d.fill(ctx, field, value)
}

func (d *Driver) selectIf(ctx context.Context, field, value string) error {
	if value == "" {
		return nil
	}
	return d.selectOption(ctx, field, value)
}
