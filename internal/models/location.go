// internal/models/location.go
package models

type LocationProvenance string

const (
	ProvenanceRegistered LocationProvenance = "REGISTERED"
	ProvenanceGPS        LocationProvenance = "GPS"
)

// Location is one entry of the registered-office catalog.
type Location struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Pincode string `gorm:"type:varchar(10);not null" json:"pincode"`
	Name    string `gorm:"not null" json:"name"`
}

// ResolvedLocation is the validated, provenance-tagged location attached to a
// session at check-in. Exactly one of LocationID (REGISTERED) or the
// latitude/longitude pair (GPS) is authoritative. Immutable once attached.
type ResolvedLocation struct {
	LocationID *uint
	Name       string
	Pincode    string
	Latitude   *float64
	Longitude  *float64
	Address    string
	Provenance LocationProvenance
}
