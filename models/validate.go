package models

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single field-level validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every violation found in one pass. It is the
// only error shape either validation profile produces.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, ", ")
}

var (
	fullNameRe     = regexp.MustCompile(`^[a-zA-Z\s\-'\.]+$`)
	phoneCharsRe   = regexp.MustCompile(`^[\d\s\-\+\(\)\.]+$`)
	modelCharsRe   = regexp.MustCompile(`^[a-zA-Z0-9\s\-\.]+$`)
	vinRe          = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)
	licensePlateRe = regexp.MustCompile(`^[A-Z0-9\s\-]+$`)
	dateFormatRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report violations under the JSON field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("fullname", regexRule(fullNameRe))
	v.RegisterValidation("phonechars", regexRule(phoneCharsRe))
	v.RegisterValidation("modelchars", regexRule(modelCharsRe))
	v.RegisterValidation("vin", regexRule(vinRe))
	v.RegisterValidation("plate", regexRule(licensePlateRe))
	v.RegisterValidation("dateformat", regexRule(dateFormatRe))
	v.RegisterValidation("realdate", realDate)

	return v
}

func regexRule(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// realDate checks that a YYYY-MM-DD string names a real calendar date. A
// string that does not match the format at all is left for the dateformat
// rule to report, so one malformed value does not produce two violations.
func realDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !dateFormatRe.MatchString(s) {
		return true
	}
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		return false
	}
	return parsed.Format("2006-01-02") == s
}

// fieldMessages maps "<jsonField>.<tag>" to a user-facing message.
var fieldMessages = map[string]string{
	"customerName.required": "Customer name is required",
	"customerName.min":      "Customer name is required",
	"customerName.max":      "Customer name is too long",
	"customerName.fullname": "Customer name contains invalid characters",

	"phoneNumber.required":   "Valid phone number is required",
	"phoneNumber.min":        "Valid phone number is required",
	"phoneNumber.phonechars": "Phone number contains invalid characters",

	"email.required": "Valid email is required",
	"email.email":    "Valid email is required",
	"email.max":      "Email address is too long",

	"preferredContact.oneof": "Preferred contact must be one of: Phone, Email, Text",

	"make.required": "Vehicle make is required",
	"make.oneof":    "Vehicle make is not a supported make",

	"model.required":   "Vehicle model is required",
	"model.min":        "Vehicle model is required",
	"model.max":        "Vehicle model name is too long",
	"model.modelchars": "Vehicle model contains invalid characters",

	"year.required": "Vehicle year is required",
	"year.min":      "Year must be at least 1900",
	"year.max":      "Year cannot exceed 2030",

	"mileage.min": "Mileage must be non-negative",
	"mileage.max": "Mileage seems unreasonably high",

	"vin.vin": "VIN must be exactly 17 characters with no I, O, or Q",

	"licensePlate.max":   "License plate is too long",
	"licensePlate.plate": "License plate contains invalid characters",

	"serviceType.required": "Service type is required",
	"serviceType.oneof":    "Service type is not a recognized category",

	"urgency.required": "Urgency level is required",
	"urgency.oneof":    "Urgency must be one of: Routine, Standard, Urgent, Emergency",

	"problemDescription.required": "Problem description must be at least 10 characters",
	"problemDescription.min":      "Problem description must be at least 10 characters",
	"problemDescription.max":      "Problem description is too long",

	"symptoms.max": "Symptoms description is too long",

	"preferredDate.dateformat": "Preferred date must be in YYYY-MM-DD format",
	"preferredDate.realdate":   "Invalid date - date does not exist",

	"budget.oneof": "Budget is not a recognized range",

	"previousRepairs.max":     "Previous repairs description is too long",
	"warrantyInfo.max":        "Warranty information is too long",
	"specialInstructions.max": "Special instructions are too long",

	"howDidYouHear.oneof": "How-did-you-hear is not a recognized source",
}

func translate(err error) ValidationErrors {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{Field: "request", Message: err.Error()}}
	}
	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Field() + " is invalid"
		}
		out = append(out, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}

// ValidateStrict applies the generation-time profile: every core field
// present and well-formed, optional fields checked only when set. Returns
// nil or a ValidationErrors.
func ValidateStrict(r *ServiceRequest) error {
	if errs := translate(validate.Struct(r)); len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidatePatch applies the override-time profile: every field optional,
// present fields held to the same per-field rules. Returns nil or a
// ValidationErrors. Unknown-key rejection happens at the transport layer,
// which sees the raw payload keys.
func ValidatePatch(p *ServiceRequestPatch) error {
	if errs := translate(validate.Struct(p)); len(errs) > 0 {
		return errs
	}
	return nil
}
