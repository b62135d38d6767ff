package dto

import "time"

// CreateDistributorRequest input to onboard a delivery partner.
type CreateDistributorRequest struct {
	Name            string   `json:"name" validate:"required,min=1,max=200"`
	Phone           string   `json:"phone" validate:"omitempty,max=20"`
	City            string   `json:"city" validate:"omitempty,max=100"`
	Latitude        *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude       *float64 `json:"longitude" validate:"omitempty,longitude"`
	ServiceRadiusKm float64  `json:"service_radius_km" validate:"required,gt=0"`
}

// UpdateDistributorRequest partial update of a distributor.
type UpdateDistributorRequest struct {
	Name            *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Phone           *string  `json:"phone" validate:"omitempty,max=20"`
	City            *string  `json:"city" validate:"omitempty,max=100"`
	Latitude        *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude       *float64 `json:"longitude" validate:"omitempty,longitude"`
	ServiceRadiusKm *float64 `json:"service_radius_km" validate:"omitempty,gt=0"`
	IsActive        *bool    `json:"is_active"`
}

// DistributorResponse distributor output.
type DistributorResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone,omitempty"`
	City            string    `json:"city,omitempty"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
	ServiceRadiusKm float64   `json:"service_radius_km"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

// MapPincodeRequest input to map a pincode to a distributor.
type MapPincodeRequest struct {
	Pincode       string   `json:"pincode" validate:"required,len=6,numeric"`
	DistributorID string   `json:"distributor_id" validate:"required,uuid"`
	DistanceKm    *float64 `json:"distance_km" validate:"omitempty,min=0"`
}

// PincodeMappingResponse mapping output.
type PincodeMappingResponse struct {
	ID              string   `json:"id"`
	Pincode         string   `json:"pincode"`
	DistributorID   string   `json:"distributor_id"`
	DistributorName string   `json:"distributor_name,omitempty"`
	DistanceKm      *float64 `json:"distance_km,omitempty"`
}

// SetPincodeGeoRequest input to record the centroid of a pincode.
type SetPincodeGeoRequest struct {
	Pincode   string  `json:"pincode" validate:"required,len=6,numeric"`
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// ServiceabilityResponse answer of the pincode serviceability probe.
type ServiceabilityResponse struct {
	Pincode         string   `json:"pincode"`
	Serviceable     bool     `json:"serviceable"`
	Reason          string   `json:"reason,omitempty"`
	DistributorID   string   `json:"distributor_id,omitempty"`
	DistributorName string   `json:"distributor_name,omitempty"`
	DistanceKm      *float64 `json:"distance_km,omitempty"`
}
