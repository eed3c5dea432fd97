package models

import "time"

type Compatibility struct {
	Brand string `bson:"brand,omitempty" json:"brand,omitempty"`
	Model string `bson:"model,omitempty" json:"model,omitempty"`
}

type PartPrice struct {
	Purchase float64 `bson:"purchase" json:"purchase"`
	Sale     float64 `bson:"sale" json:"sale"`
}

type PartStock struct {
	Current int `bson:"current" json:"current"`
	Minimum int `bson:"minimum" json:"minimum"`
}

type Supplier struct {
	Name    string `bson:"name,omitempty" json:"name,omitempty"`
	Contact string `bson:"contact,omitempty" json:"contact,omitempty"`
	Code    string `bson:"code,omitempty" json:"code,omitempty"`
}

type Part struct {
	ID          string `bson:"_id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Type        string `bson:"type" json:"type"`

	Compatibility []Compatibility `bson:"compatibility,omitempty" json:"compatibility"`
	SKU           string          `bson:"sku" json:"sku"`
	Price         PartPrice       `bson:"price" json:"price"`
	Stock         PartStock       `bson:"stock" json:"stock"`
	Supplier      Supplier        `bson:"supplier,omitempty" json:"supplier"`
	Location      string          `bson:"location,omitempty" json:"location,omitempty"`
	Notes         string          `bson:"notes,omitempty" json:"notes,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Part types accepted on creation; repairs additionally allow "Software" as an
// issue type.
var PartTypes = []string{
	"Screen",
	"Battery",
	"Camera",
	"Speaker",
	"Microphone",
	"Charging Port",
	"Other",
}

func IsPartType(t string) bool {
	for _, pt := range PartTypes {
		if pt == t {
			return true
		}
	}
	return false
}
