// Package claims provides the entity model shared by the state container,
// the selectors, and the effects. Pure data definitions; validation is a
// form-layer concern and does not live here.
package claims

import "time"

// Claim is the central record of the client. The ID is unique within the
// store; the claim number is assigned by the backend at creation time and
// never by the client (outside the documented optimistic placeholder).
type Claim struct {
	ID               string        `json:"id"`
	ClaimNumber      string        `json:"claimNumber"`
	PolicyNumber     string        `json:"policyNumber"`
	Status           ClaimStatus   `json:"status"`
	Type             ClaimType     `json:"type"`
	DateReported     time.Time     `json:"dateReported"`
	DateOfIncident   time.Time     `json:"dateOfIncident"`
	Location         Location      `json:"location"`
	Description      string        `json:"description"`
	EstimatedDamage  *float64      `json:"estimatedDamage,omitempty"`
	ApprovedAmount   *float64      `json:"approvedAmount,omitempty"`
	Deductible       float64       `json:"deductible"`
	Documents        []Document    `json:"documents"`
	Photos           []Photo       `json:"photos"`
	Timeline         []ClaimEvent  `json:"timeline"`
	AssignedAdjuster *Adjuster     `json:"assignedAdjuster,omitempty"`
	EmergencyFlag    bool          `json:"emergencyFlag,omitempty"`
	AIAssessment     *AIAssessment `json:"aiAssessment,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// EstimatedDamageValue returns the estimated damage, or 0 when unset.
func (c *Claim) EstimatedDamageValue() float64 {
	if c.EstimatedDamage == nil {
		return 0
	}
	return *c.EstimatedDamage
}

// ApprovedAmountValue returns the approved amount, or 0 when unset.
func (c *Claim) ApprovedAmountValue() float64 {
	if c.ApprovedAmount == nil {
		return 0
	}
	return *c.ApprovedAmount
}

// Location describes where an incident happened. Coordinates are optional;
// address fields may be partially filled during the creation flow.
type Location struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Address   string   `json:"address"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	ZipCode   string   `json:"zipCode"`
	Country   string   `json:"country"`
}

// Adjuster is the insurer-side contact assigned to a claim.
type Adjuster struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	LicenseNumber   string      `json:"licenseNumber"`
	Specializations []ClaimType `json:"specializations"`
	Rating          float64     `json:"rating"`
	ResponseTime    float64     `json:"responseTime"` // average, in hours
}
