package models

import "time"

type Device struct {
	Brand        string `bson:"brand" json:"brand"`
	Model        string `bson:"model" json:"model"`
	SerialNumber string `bson:"serialNumber,omitempty" json:"serialNumber,omitempty"`
	Condition    string `bson:"condition" json:"condition"`
}

type Issue struct {
	Description string `bson:"description" json:"description"`
	Type        string `bson:"type" json:"type"`
}

type Diagnosis struct {
	Notes         string  `bson:"notes,omitempty" json:"notes,omitempty"`
	EstimatedCost float64 `bson:"estimatedCost,omitempty" json:"estimatedCost"`
	EstimatedTime string  `bson:"estimatedTime,omitempty" json:"estimatedTime,omitempty"`
}

// RepairPart is an embedded line item: a part reference plus the quantity and
// the unit cost charged on this repair.
type RepairPart struct {
	PartID   string  `bson:"part" json:"part"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Cost     float64 `bson:"cost" json:"cost"`
}

type RepairCost struct {
	Parts float64 `bson:"parts" json:"parts"`
	Labor float64 `bson:"labor" json:"labor"`
	Total float64 `bson:"total" json:"total"`
}

type RepairDates struct {
	Received  time.Time  `bson:"received" json:"received"`
	Diagnosed *time.Time `bson:"diagnosed,omitempty" json:"diagnosed,omitempty"`
	Started   *time.Time `bson:"started,omitempty" json:"started,omitempty"`
	Completed *time.Time `bson:"completed,omitempty" json:"completed,omitempty"`
	Delivered *time.Time `bson:"delivered,omitempty" json:"delivered,omitempty"`
}

type Repair struct {
	ID         string `bson:"_id" json:"id"`
	CustomerID string `bson:"customer" json:"customer"`

	Device Device `bson:"device" json:"device"`
	Issue  Issue  `bson:"issue" json:"issue"`

	Status       string `bson:"status" json:"status"`
	TechnicianID string `bson:"technician" json:"technician"`

	Diagnosis Diagnosis    `bson:"diagnosis,omitempty" json:"diagnosis"`
	Parts     []RepairPart `bson:"parts" json:"parts"`
	Cost      RepairCost   `bson:"cost" json:"cost"`
	Dates     RepairDates  `bson:"dates" json:"dates"`
	Notes     string       `bson:"notes,omitempty" json:"notes,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
