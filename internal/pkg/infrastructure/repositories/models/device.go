package models

import (
	"fmt"
	"time"
)

//DeviceStatus describes the operational state of a deployed device
type DeviceStatus string

const (
	DeviceStatusActive            DeviceStatus = "Active"
	DeviceStatusMaintenanceNeeded DeviceStatus = "MaintenanceNeeded"
	DeviceStatusOffline           DeviceStatus = "Offline"
	DeviceStatusDecommissioned    DeviceStatus = "Decommissioned"
)

//ParseDeviceStatus converts a query or body string into a DeviceStatus
func ParseDeviceStatus(status string) (DeviceStatus, error) {
	switch DeviceStatus(status) {
	case DeviceStatusActive, DeviceStatusMaintenanceNeeded, DeviceStatusOffline, DeviceStatusDecommissioned:
		return DeviceStatus(status), nil
	}

	return "", fmt.Errorf("unknown device status %s", status)
}

//LocationType describes the kind of site a device is installed at
type LocationType string

const (
	LocationTypePoliceStation LocationType = "PoliceStation"
	LocationTypeSchool        LocationType = "School"
	LocationTypeHospital      LocationType = "Hospital"
	LocationTypeGovernment    LocationType = "Government"
	LocationTypeBusiness      LocationType = "Business"
	LocationTypeCommunity     LocationType = "Community"
	LocationTypeOther         LocationType = "Other"
)

//ParseLocationType converts a query or body string into a LocationType
func ParseLocationType(locationType string) (LocationType, error) {
	switch LocationType(locationType) {
	case LocationTypePoliceStation, LocationTypeSchool, LocationTypeHospital,
		LocationTypeGovernment, LocationTypeBusiness, LocationTypeCommunity, LocationTypeOther:
		return LocationType(locationType), nil
	}

	return "", fmt.Errorf("unknown location type %s", locationType)
}

//Device is the database model for a single Starlink deployment record
type Device struct {
	ID               uint         `json:"id" gorm:"primaryKey"`
	DeviceID         string       `json:"deviceId" gorm:"unique;size:100;not null"`
	SerialNumber     string       `json:"serialNumber" gorm:"size:100"`
	InstallationDate time.Time    `json:"installationDate" gorm:"not null"`
	LocationName     string       `json:"locationName" gorm:"size:200;not null"`
	PhysicalAddress  string       `json:"physicalAddress" gorm:"size:300;not null"`
	Parish           string       `json:"parish" gorm:"size:50;index;not null"`
	Latitude         float64      `json:"latitude"`
	Longitude        float64      `json:"longitude"`
	LocationType     LocationType `json:"locationType" gorm:"size:50;index"`
	Status           DeviceStatus `json:"status" gorm:"size:50;index"`
	ContactPerson    string       `json:"contactPerson" gorm:"size:100"`
	ContactPhone     string       `json:"contactPhone" gorm:"size:20"`
	Notes            string       `json:"notes" gorm:"size:500"`
	CreatedAt        time.Time    `json:"createdAt"`
	LastUpdated      *time.Time   `json:"lastUpdated,omitempty"`
}
