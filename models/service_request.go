package models

// ServiceRequest is the canonical auto-repair intake record. It is built
// fresh for every run: generated, optionally patched with caller overrides,
// validated, then driven into the intake form.
type ServiceRequest struct {
	// Customer Information
	CustomerName     string `json:"customerName" validate:"required,max=100,fullname"`
	PhoneNumber      string `json:"phoneNumber" validate:"required,min=10,phonechars"`
	Email            string `json:"email" validate:"required,email,max=254"`
	PreferredContact string `json:"preferredContact,omitempty" validate:"omitempty,oneof=Phone Email Text"`

	// Vehicle Information
	Make         string `json:"make" validate:"required,oneof=Toyota Honda Ford Chevrolet Nissan BMW Mercedes-Benz Audi Volkswagen Hyundai Kia Mazda Subaru Other"`
	Model        string `json:"model" validate:"required,max=50,modelchars"`
	Year         int    `json:"year" validate:"required,min=1900,max=2030"`
	Mileage      int    `json:"mileage" validate:"min=0,max=999999"`
	VIN          string `json:"vin,omitempty" validate:"omitempty,vin"`
	LicensePlate string `json:"licensePlate,omitempty" validate:"omitempty,max=10,plate"`

	// Service Request
	ServiceType        string `json:"serviceType" validate:"required,oneof='Oil Change' 'Brake Service' 'Tire Rotation' 'Engine Diagnostic' 'Transmission Service' 'Electrical System' AC/Heating Suspension 'Exhaust System' 'General Maintenance' 'Emergency Repair' Other"`
	Urgency            string `json:"urgency" validate:"required,oneof=Routine Standard Urgent Emergency"`
	ProblemDescription string `json:"problemDescription" validate:"required,min=10,max=1000"`
	Symptoms           string `json:"symptoms,omitempty" validate:"omitempty,max=500"`
	PreferredDate      string `json:"preferredDate,omitempty" validate:"omitempty,dateformat,realdate"`
	Budget             string `json:"budget,omitempty" validate:"omitempty,oneof='Under $100' '$100-$300' '$300-$500' '$500-$1000' 'Over $1000' 'No Limit'"`

	// Additional Information
	PreviousRepairs     string `json:"previousRepairs,omitempty" validate:"omitempty,max=500"`
	WarrantyInfo        string `json:"warrantyInfo,omitempty" validate:"omitempty,max=300"`
	SpecialInstructions string `json:"specialInstructions,omitempty" validate:"omitempty,max=500"`
	HowDidYouHear       string `json:"howDidYouHear,omitempty" validate:"omitempty,oneof='Google Search' 'Social Media' Friend/Family 'Online Review' 'Drive By' Other"`
}

// ServiceRequestPatch is the partial profile of ServiceRequest: every field
// optional, but any field present must satisfy the same per-field rules.
// Pointer fields distinguish "absent" from "present but zero", so an
// explicit empty override is still validated (and rejected).
type ServiceRequestPatch struct {
	CustomerName     *string `json:"customerName" validate:"omitempty,min=1,max=100,fullname"`
	PhoneNumber      *string `json:"phoneNumber" validate:"omitempty,min=10,phonechars"`
	Email            *string `json:"email" validate:"omitempty,email,max=254"`
	PreferredContact *string `json:"preferredContact" validate:"omitempty,oneof=Phone Email Text"`

	Make         *string `json:"make" validate:"omitempty,oneof=Toyota Honda Ford Chevrolet Nissan BMW Mercedes-Benz Audi Volkswagen Hyundai Kia Mazda Subaru Other"`
	Model        *string `json:"model" validate:"omitempty,min=1,max=50,modelchars"`
	Year         *int    `json:"year" validate:"omitempty,min=1900,max=2030"`
	Mileage      *int    `json:"mileage" validate:"omitempty,min=0,max=999999"`
	VIN          *string `json:"vin" validate:"omitempty,vin"`
	LicensePlate *string `json:"licensePlate" validate:"omitempty,max=10,plate"`

	ServiceType        *string `json:"serviceType" validate:"omitempty,oneof='Oil Change' 'Brake Service' 'Tire Rotation' 'Engine Diagnostic' 'Transmission Service' 'Electrical System' AC/Heating Suspension 'Exhaust System' 'General Maintenance' 'Emergency Repair' Other"`
	Urgency            *string `json:"urgency" validate:"omitempty,oneof=Routine Standard Urgent Emergency"`
	ProblemDescription *string `json:"problemDescription" validate:"omitempty,min=10,max=1000"`
	Symptoms           *string `json:"symptoms" validate:"omitempty,max=500"`
	PreferredDate      *string `json:"preferredDate" validate:"omitempty,dateformat,realdate"`
	Budget             *string `json:"budget" validate:"omitempty,oneof='Under $100' '$100-$300' '$300-$500' '$500-$1000' 'Over $1000' 'No Limit'"`

	PreviousRepairs     *string `json:"previousRepairs" validate:"omitempty,max=500"`
	WarrantyInfo        *string `json:"warrantyInfo" validate:"omitempty,max=300"`
	SpecialInstructions *string `json:"specialInstructions" validate:"omitempty,max=500"`
	HowDidYouHear       *string `json:"howDidYouHear" validate:"omitempty,oneof='Google Search' 'Social Media' Friend/Family 'Online Review' 'Drive By' Other"`
}

// Closed value sets for the enum fields. The generator embeds these in its
// prompt so the backend cannot invent unlisted values, and the validator
// oneof rules above must stay in sync with them (covered by tests).
var (
	Makes = []string{
		"Toyota", "Honda", "Ford", "Chevrolet", "Nissan", "BMW",
		"Mercedes-Benz", "Audi", "Volkswagen", "Hyundai", "Kia", "Mazda",
		"Subaru", "Other",
	}
	ServiceTypes = []string{
		"Oil Change", "Brake Service", "Tire Rotation", "Engine Diagnostic",
		"Transmission Service", "Electrical System", "AC/Heating",
		"Suspension", "Exhaust System", "General Maintenance",
		"Emergency Repair", "Other",
	}
	UrgencyLevels   = []string{"Routine", "Standard", "Urgent", "Emergency"}
	ContactMethods  = []string{"Phone", "Email", "Text"}
	BudgetRanges    = []string{"Under $100", "$100-$300", "$300-$500", "$500-$1000", "Over $1000", "No Limit"}
	ReferralSources = []string{"Google Search", "Social Media", "Friend/Family", "Online Review", "Drive By", "Other"}
)

// fieldNames lists every accepted top-level key of a ServiceRequest payload,
// in form order.
var fieldNames = []string{
	"customerName", "phoneNumber", "email", "preferredContact",
	"make", "model", "year", "mileage", "vin", "licensePlate",
	"serviceType", "urgency", "problemDescription", "symptoms",
	"preferredDate", "budget", "previousRepairs", "warrantyInfo",
	"specialInstructions", "howDidYouHear",
}

var knownFields = func() map[string]struct{} {
	m := make(map[string]struct{}, len(fieldNames))
	for _, name := range fieldNames {
		m[name] = struct{}{}
	}
	return m
}()

// IsKnownField reports whether name is a ServiceRequest field name.
func IsKnownField(name string) bool {
	_, ok := knownFields[name]
	return ok
}

// FieldNames returns the accepted payload keys in form order.
func FieldNames() []string {
	out := make([]string, len(fieldNames))
	copy(out, fieldNames)
	return out
}
