package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() ServiceRequest {
	return ServiceRequest{
		CustomerName:        "Jane Doe",
		PhoneNumber:         "555-867-5309",
		Email:               "jane.doe@example.com",
		PreferredContact:    "Email",
		Make:                "Toyota",
		Model:               "Camry",
		Year:                2018,
		Mileage:             64500,
		VIN:                 "4T1BF1FK5HU123456",
		LicensePlate:        "ABC-1234",
		ServiceType:         "Brake Service",
		Urgency:             "Urgent",
		ProblemDescription:  "Brake pedal feels soft and the car takes longer to stop than usual.",
		Symptoms:            "Squeaking noise when braking",
		PreferredDate:       "2026-09-15",
		Budget:              "$300-$500",
		PreviousRepairs:     "Front pads replaced two years ago",
		WarrantyInfo:        "Powertrain warranty until 2027",
		SpecialInstructions: "Call before any work over the estimate",
		HowDidYouHear:       "Friend/Family",
	}
}

func fieldErrors(t *testing.T, err error) ValidationErrors {
	t.Helper()
	require.Error(t, err)
	verrs, ok := err.(ValidationErrors)
	require.True(t, ok, "expected ValidationErrors, got %T", err)
	return verrs
}

func hasViolation(errs ValidationErrors, field string) bool {
	for _, fe := range errs {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func TestValidateStrict_FullRecord(t *testing.T) {
	req := validRequest()
	require.NoError(t, ValidateStrict(&req))
}

func TestValidateStrict_OptionalFieldsAbsent(t *testing.T) {
	req := validRequest()
	req.PreferredContact = ""
	req.VIN = ""
	req.LicensePlate = ""
	req.Symptoms = ""
	req.PreferredDate = ""
	req.Budget = ""
	req.PreviousRepairs = ""
	req.WarrantyInfo = ""
	req.SpecialInstructions = ""
	req.HowDidYouHear = ""
	require.NoError(t, ValidateStrict(&req))
}

func TestValidateStrict_MissingCoreFields(t *testing.T) {
	var req ServiceRequest
	errs := fieldErrors(t, ValidateStrict(&req))

	for _, field := range []string{
		"customerName", "phoneNumber", "email", "make", "model", "year",
		"serviceType", "urgency", "problemDescription",
	} {
		assert.True(t, hasViolation(errs, field), "expected violation for %s", field)
	}
}

func TestValidateStrict_ReportsEveryViolation(t *testing.T) {
	req := validRequest()
	req.Year = 2031
	req.Mileage = 1000000
	req.Email = "not-an-email"

	errs := fieldErrors(t, ValidateStrict(&req))
	assert.Len(t, errs, 3)
	assert.True(t, hasViolation(errs, "year"))
	assert.True(t, hasViolation(errs, "mileage"))
	assert.True(t, hasViolation(errs, "email"))
}

func TestYearBounds(t *testing.T) {
	req := validRequest()

	req.Year = 2031
	errs := fieldErrors(t, ValidateStrict(&req))
	require.Len(t, errs, 1)
	assert.Equal(t, "year", errs[0].Field)
	assert.Equal(t, "Year cannot exceed 2030", errs[0].Message)

	req.Year = 1899
	errs = fieldErrors(t, ValidateStrict(&req))
	require.Len(t, errs, 1)
	assert.Equal(t, "Year must be at least 1900", errs[0].Message)

	req.Year = 1900
	assert.NoError(t, ValidateStrict(&req))
	req.Year = 2030
	assert.NoError(t, ValidateStrict(&req))
}

func TestVINRules(t *testing.T) {
	req := validRequest()

	// Contains I, O, and Q lookalikes and is too short.
	req.VIN = "INVALIDVIN12345"
	errs := fieldErrors(t, ValidateStrict(&req))
	require.Len(t, errs, 1)
	assert.Equal(t, "vin", errs[0].Field)

	// Right length, disallowed letter.
	req.VIN = "4T1BF1FK5HI123456"
	errs = fieldErrors(t, ValidateStrict(&req))
	require.Len(t, errs, 1)
	assert.Equal(t, "vin", errs[0].Field)

	req.VIN = "4T1BF1FK5HU123456"
	assert.NoError(t, ValidateStrict(&req))
}

func TestPreferredDateRules(t *testing.T) {
	req := validRequest()

	req.PreferredDate = "15-09-2026"
	errs := fieldErrors(t, ValidateStrict(&req))
	require.Len(t, errs, 1)
	assert.Equal(t, "Preferred date must be in YYYY-MM-DD format", errs[0].Message)

	// Well-formed but not a real calendar date.
	req.PreferredDate = "2026-02-30"
	errs = fieldErrors(t, ValidateStrict(&req))
	require.Len(t, errs, 1)
	assert.Equal(t, "Invalid date - date does not exist", errs[0].Message)

	req.PreferredDate = "2026-02-28"
	assert.NoError(t, ValidateStrict(&req))
}

func TestEnumFieldsRejectOpenValues(t *testing.T) {
	// A value outside the closed set fails under both profiles.
	req := validRequest()
	req.Make = "Tesla"
	req.Urgency = "Immediately"
	errs := fieldErrors(t, ValidateStrict(&req))
	assert.True(t, hasViolation(errs, "make"))
	assert.True(t, hasViolation(errs, "urgency"))

	makeV := "Tesla"
	urgencyV := "Immediately"
	patch := ServiceRequestPatch{Make: &makeV, Urgency: &urgencyV}
	perrs := fieldErrors(t, ValidatePatch(&patch))
	assert.True(t, hasViolation(perrs, "make"))
	assert.True(t, hasViolation(perrs, "urgency"))
}

// Every published enum value must pass its oneof rule, so the closed sets
// and the struct tags cannot drift apart.
func TestEnumSetsMatchValidationRules(t *testing.T) {
	req := validRequest()
	for _, v := range Makes {
		req.Make = v
		assert.NoError(t, ValidateStrict(&req), "make %q", v)
	}
	req = validRequest()
	for _, v := range ServiceTypes {
		req.ServiceType = v
		assert.NoError(t, ValidateStrict(&req), "serviceType %q", v)
	}
	req = validRequest()
	for _, v := range UrgencyLevels {
		req.Urgency = v
		assert.NoError(t, ValidateStrict(&req), "urgency %q", v)
	}
	req = validRequest()
	for _, v := range ContactMethods {
		req.PreferredContact = v
		assert.NoError(t, ValidateStrict(&req), "preferredContact %q", v)
	}
	req = validRequest()
	for _, v := range BudgetRanges {
		req.Budget = v
		assert.NoError(t, ValidateStrict(&req), "budget %q", v)
	}
	req = validRequest()
	for _, v := range ReferralSources {
		req.HowDidYouHear = v
		assert.NoError(t, ValidateStrict(&req), "howDidYouHear %q", v)
	}
}

func TestValidatePatch_EmptyPatch(t *testing.T) {
	var patch ServiceRequestPatch
	assert.NoError(t, ValidatePatch(&patch))
}

func TestValidatePatch_ExplicitEmptyOverrideRejected(t *testing.T) {
	empty := ""
	patch := ServiceRequestPatch{CustomerName: &empty}
	errs := fieldErrors(t, ValidatePatch(&patch))
	require.Len(t, errs, 1)
	assert.Equal(t, "customerName", errs[0].Field)
}

func TestValidatePatch_PresentFieldsChecked(t *testing.T) {
	phone := "12345"
	plate := "waytoolongplate"
	patch := ServiceRequestPatch{PhoneNumber: &phone, LicensePlate: &plate}
	errs := fieldErrors(t, ValidatePatch(&patch))
	assert.True(t, hasViolation(errs, "phoneNumber"))
	assert.True(t, hasViolation(errs, "licensePlate"))
}

func TestStrictRecordJSONRoundTrip(t *testing.T) {
	req := validRequest()
	require.NoError(t, ValidateStrict(&req))

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var again ServiceRequest
	require.NoError(t, json.Unmarshal(data, &again))
	assert.NoError(t, ValidateStrict(&again))
	assert.Equal(t, req, again)
}

func TestKnownFields(t *testing.T) {
	for _, name := range FieldNames() {
		assert.True(t, IsKnownField(name), "field %s", name)
	}
	assert.False(t, IsKnownField("confidential"))
	assert.False(t, IsKnownField("foo"))
}
