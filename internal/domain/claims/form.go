package claims

import "time"

// ClaimInitiationForm is the submission payload for creating a claim.
type ClaimInitiationForm struct {
	IncidentDate          time.Time         `json:"incidentDate"`
	IncidentTime          string            `json:"incidentTime"`
	Location              Location          `json:"location"`
	ClaimType             ClaimType         `json:"claimType"`
	Description           string            `json:"description"`
	PoliceReportFiled     bool              `json:"policeReportFiled"`
	PoliceReportNumber    string            `json:"policeReportNumber,omitempty"`
	EmergencyServices     bool              `json:"emergencyServices"`
	Injuries              bool              `json:"injuries"`
	InjuryDescription     string            `json:"injuryDescription,omitempty"`
	OtherVehiclesInvolved bool              `json:"otherVehiclesInvolved"`
	OtherDriverInfo       []OtherDriverInfo `json:"otherDriverInfo,omitempty"`
	WitnessInfo           []WitnessInfo     `json:"witnessInfo,omitempty"`
}

// OtherDriverInfo captures details of another involved driver.
type OtherDriverInfo struct {
	Name             string       `json:"name"`
	Phone            string       `json:"phone,omitempty"`
	Email            string       `json:"email,omitempty"`
	InsuranceCompany string       `json:"insuranceCompany,omitempty"`
	PolicyNumber     string       `json:"policyNumber,omitempty"`
	LicenseNumber    string       `json:"licenseNumber,omitempty"`
	VehicleInfo      *VehicleInfo `json:"vehicleInfo,omitempty"`
}

// WitnessInfo captures a witness contact and statement.
type WitnessInfo struct {
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Statement string `json:"statement,omitempty"`
}

// VehicleInfo identifies a vehicle involved in an incident.
type VehicleInfo struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	Color        string `json:"color"`
	LicensePlate string `json:"licensePlate"`
	VIN          string `json:"vin,omitempty"`
}

// ClaimDraft is a partially filled initiation form. Scalar fields are
// pointers so a patch only carries what the user actually entered; absent
// fields leave the stored draft untouched on merge.
type ClaimDraft struct {
	IncidentDate          *time.Time        `json:"incidentDate,omitempty"`
	IncidentTime          *string           `json:"incidentTime,omitempty"`
	Location              *Location         `json:"location,omitempty"`
	ClaimType             *ClaimType        `json:"claimType,omitempty"`
	Description           *string           `json:"description,omitempty"`
	PoliceReportFiled     *bool             `json:"policeReportFiled,omitempty"`
	PoliceReportNumber    *string           `json:"policeReportNumber,omitempty"`
	EmergencyServices     *bool             `json:"emergencyServices,omitempty"`
	Injuries              *bool             `json:"injuries,omitempty"`
	InjuryDescription     *string           `json:"injuryDescription,omitempty"`
	OtherVehiclesInvolved *bool             `json:"otherVehiclesInvolved,omitempty"`
	OtherDriverInfo       []OtherDriverInfo `json:"otherDriverInfo,omitempty"`
	WitnessInfo           []WitnessInfo     `json:"witnessInfo,omitempty"`
}

// Merge returns a new draft with every set field of patch applied on top of
// d. Either side may be nil.
func (d *ClaimDraft) Merge(patch *ClaimDraft) *ClaimDraft {
	if patch == nil {
		if d == nil {
			return nil
		}
		out := *d
		return &out
	}

	var out ClaimDraft
	if d != nil {
		out = *d
	}
	if patch.IncidentDate != nil {
		out.IncidentDate = patch.IncidentDate
	}
	if patch.IncidentTime != nil {
		out.IncidentTime = patch.IncidentTime
	}
	if patch.Location != nil {
		out.Location = patch.Location
	}
	if patch.ClaimType != nil {
		out.ClaimType = patch.ClaimType
	}
	if patch.Description != nil {
		out.Description = patch.Description
	}
	if patch.PoliceReportFiled != nil {
		out.PoliceReportFiled = patch.PoliceReportFiled
	}
	if patch.PoliceReportNumber != nil {
		out.PoliceReportNumber = patch.PoliceReportNumber
	}
	if patch.EmergencyServices != nil {
		out.EmergencyServices = patch.EmergencyServices
	}
	if patch.Injuries != nil {
		out.Injuries = patch.Injuries
	}
	if patch.InjuryDescription != nil {
		out.InjuryDescription = patch.InjuryDescription
	}
	if patch.OtherVehiclesInvolved != nil {
		out.OtherVehiclesInvolved = patch.OtherVehiclesInvolved
	}
	if patch.OtherDriverInfo != nil {
		out.OtherDriverInfo = patch.OtherDriverInfo
	}
	if patch.WitnessInfo != nil {
		out.WitnessInfo = patch.WitnessInfo
	}
	return &out
}
