package entity

import "time"

// Distributor is a delivery partner operating vans out of one location.
// Coordinates may be absent for partners onboarded before geocoding; the
// engine then falls back to the stored pincode distance.
type Distributor struct {
	ID              string
	Name            string
	Phone           string
	City            string
	Latitude        *float64
	Longitude       *float64
	ServiceRadiusKm float64
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PincodeMapping associates a postal code with a distributor that can serve
// it, with a pre-measured road distance as fallback when either side lacks
// coordinates. DistanceKm may be nil for legacy rows.
type PincodeMapping struct {
	ID            string
	Pincode       string
	DistributorID string
	DistanceKm    *float64
	Distributor   *Distributor // populated on engine lookups
	CreatedAt     time.Time
}

// PincodeGeo holds the centroid coordinates of a postal code.
type PincodeGeo struct {
	Pincode   string
	Latitude  float64
	Longitude float64
}
