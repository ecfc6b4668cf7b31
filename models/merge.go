package models

// Apply overlays the patch onto base, field by field: a field present in
// the patch replaces the generated value whole, an absent field keeps it.
// Value semantics throughout, so the caller's base record is never mutated
// and re-applying the same patch is a no-op.
func (p *ServiceRequestPatch) Apply(base ServiceRequest) ServiceRequest {
	if p == nil {
		return base
	}
	if p.CustomerName != nil {
		base.CustomerName = *p.CustomerName
	}
	if p.PhoneNumber != nil {
		base.PhoneNumber = *p.PhoneNumber
	}
	if p.Email != nil {
		base.Email = *p.Email
	}
	if p.PreferredContact != nil {
		base.PreferredContact = *p.PreferredContact
	}
	if p.Make != nil {
		base.Make = *p.Make
	}
	if p.Model != nil {
		base.Model = *p.Model
	}
	if p.Year != nil {
		base.Year = *p.Year
	}
	if p.Mileage != nil {
		base.Mileage = *p.Mileage
	}
	if p.VIN != nil {
		base.VIN = *p.VIN
	}
	if p.LicensePlate != nil {
		base.LicensePlate = *p.LicensePlate
	}
	if p.ServiceType != nil {
		base.ServiceType = *p.ServiceType
	}
	if p.Urgency != nil {
		base.Urgency = *p.Urgency
	}
	if p.ProblemDescription != nil {
		base.ProblemDescription = *p.ProblemDescription
	}
	if p.Symptoms != nil {
		base.Symptoms = *p.Symptoms
	}
	if p.PreferredDate != nil {
		base.PreferredDate = *p.PreferredDate
	}
	if p.Budget != nil {
		base.Budget = *p.Budget
	}
	if p.PreviousRepairs != nil {
		base.PreviousRepairs = *p.PreviousRepairs
	}
	if p.WarrantyInfo != nil {
		base.WarrantyInfo = *p.WarrantyInfo
	}
	if p.SpecialInstructions != nil {
		base.SpecialInstructions = *p.SpecialInstructions
	}
	if p.HowDidYouHear != nil {
		base.HowDidYouHear = *p.HowDidYouHear
	}
	return base
}
