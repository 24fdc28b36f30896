package claims

import "time"

// DocumentType categorizes an uploaded document.
type DocumentType string

const (
	DocumentPoliceReport     DocumentType = "police_report"
	DocumentRepairEstimate   DocumentType = "repair_estimate"
	DocumentMedicalReport    DocumentType = "medical_report"
	DocumentReceipt          DocumentType = "receipt"
	DocumentInsuranceCard    DocumentType = "insurance_card"
	DocumentDriversLicense   DocumentType = "drivers_license"
	DocumentRegistration     DocumentType = "registration"
	DocumentWitnessStatement DocumentType = "witness_statement"
	DocumentOther            DocumentType = "other"
)

// Document is an uploaded file attached to exactly one claim. Documents are
// appended by upload-success actions and never replaced.
type Document struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Type       DocumentType `json:"type"`
	URL        string       `json:"url"`
	Size       int64        `json:"size"`
	UploadedAt time.Time    `json:"uploadedAt"`
	Required   bool         `json:"required"`
	Verified   *bool        `json:"verified,omitempty"`
}

// DamageArea identifies the part of a vehicle or property that was damaged.
type DamageArea string

const (
	AreaFrontEnd      DamageArea = "front_end"
	AreaRearEnd       DamageArea = "rear_end"
	AreaDriverSide    DamageArea = "driver_side"
	AreaPassengerSide DamageArea = "passenger_side"
	AreaRoof          DamageArea = "roof"
	AreaInterior      DamageArea = "interior"
	AreaWindshield    DamageArea = "windshield"
	AreaTires         DamageArea = "tires"
	AreaOther         DamageArea = "other"
)

// Photo is an uploaded image attached to exactly one claim, optionally
// annotated with a per-photo AI damage analysis.
type Photo struct {
	ID           string           `json:"id"`
	URL          string           `json:"url"`
	ThumbnailURL string           `json:"thumbnailUrl"`
	Caption      string           `json:"caption,omitempty"`
	DamageArea   DamageArea       `json:"damageArea,omitempty"`
	AIAnalysis   *PhotoAIAnalysis `json:"aiAnalysis,omitempty"`
	UploadedAt   time.Time        `json:"uploadedAt"`
	Location     *Location        `json:"location,omitempty"`
}

// PhotoAIAnalysis is the automated damage assessment of a single photo.
type PhotoAIAnalysis struct {
	DamageDetected  bool         `json:"damageDetected"`
	Confidence      float64      `json:"confidence"`
	DamageAreas     []DamageArea `json:"damageAreas"`
	Severity        string       `json:"severity"`
	EstimatedCost   float64      `json:"estimatedCost"`
	QualityScore    float64      `json:"qualityScore"`
	Recommendations []string     `json:"recommendations"`
}
