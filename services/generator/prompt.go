package generator

import (
	"fmt"
	"strings"

	"autointake/models"
)

// BuildPrompt produces the generation instruction: the target record shape,
// the closed value list for every enum field, realism constraints, and an
// explicit one-JSON-object output contract.
func BuildPrompt() string {
	var b strings.Builder

	b.WriteString("You are a car service request generator.\n")
	b.WriteString("Each time you respond, generate a new, unique service request with realistic vehicle and problem data.\n")
	b.WriteString("Pick a random car make/model combination and realistic service issues.\n")
	b.WriteString("Output exactly one JSON object and nothing else: no markdown, no code fences, no surrounding prose.\n\n")

	b.WriteString("The JSON object must have these fields:\n")
	b.WriteString(`  "customerName" (string, required), "phoneNumber" (string, required, at least 10 digits),
  "email" (string, required, valid email), "preferredContact" (string),
  "make" (string, required), "model" (string, required), "year" (number, required, 1900-2030),
  "mileage" (number, required, non-negative), "vin" (string, optional), "licensePlate" (string, optional),
  "serviceType" (string, required), "urgency" (string, required),
  "problemDescription" (string, required, at least 10 characters), "symptoms" (string, optional),
  "preferredDate" (string, optional), "budget" (string, optional),
  "previousRepairs" (string, optional), "warrantyInfo" (string, optional),
  "specialInstructions" (string, optional), "howDidYouHear" (string, optional)` + "\n\n")

	b.WriteString("Guidelines:\n")
	b.WriteString("- Use realistic car makes/models (Toyota Camry, Honda Civic, Ford F-150, etc.)\n")
	b.WriteString("- Generate realistic service problems (engine noise, brake issues, electrical problems, etc.)\n")
	b.WriteString("- Use realistic mileage (10,000 to 200,000)\n")
	b.WriteString("- Generate realistic customer names and contact information\n\n")

	b.WriteString("Field Guidelines:\n")
	b.WriteString("- problemDescription: Detailed description of the main issue (e.g., \"Brake pedal feels soft and car takes longer to stop than usual\")\n")
	b.WriteString("- symptoms: Specific symptoms, sounds, or behaviors (e.g., \"Squeaking noise when braking, dashboard warning light on\")\n")
	b.WriteString("- previousRepairs: List of recent repairs or modifications\n")
	b.WriteString("- warrantyInfo: Warranty details or extended coverage information\n")
	b.WriteString("- specialInstructions: Special requests or instructions for the mechanic\n\n")

	b.WriteString("IMPORTANT: Use these EXACT values for the following fields:\n")
	writeEnum(&b, "make", models.Makes)
	writeEnum(&b, "serviceType", models.ServiceTypes)
	writeEnum(&b, "urgency", models.UrgencyLevels)
	writeEnum(&b, "preferredContact", models.ContactMethods)
	writeEnum(&b, "budget", models.BudgetRanges)
	writeEnum(&b, "howDidYouHear", models.ReferralSources)
	b.WriteString(`- preferredDate: Must be in YYYY-MM-DD format (e.g., "2024-12-17", "2025-01-15")` + "\n")

	return b.String()
}

func writeEnum(b *strings.Builder, field string, values []string) {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	fmt.Fprintf(b, "- %s: Must be one of: %s\n", field, strings.Join(quoted, ", "))
}
