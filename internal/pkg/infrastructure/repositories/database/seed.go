package database

import (
	"time"

	"github.com/jamaicaconnect/starlink-tracker/internal/pkg/infrastructure/repositories/models"
)

//seedDevices returns the initial Kingston Metropolitan Area police station
//deployments. They are created on first migration only, keyed on device id.
func seedDevices() []models.Device {
	return []models.Device{
		{
			DeviceID:         "SL-KGN-001",
			SerialNumber:     "UTY2D34E33",
			InstallationDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			LocationName:     "Half Way Tree Police Station",
			PhysicalAddress:  "1 Hagley Park Road, Kingston 10",
			Parish:           "St. Andrew",
			Latitude:         18.0122,
			Longitude:        -76.7955,
			LocationType:     models.LocationTypePoliceStation,
			Status:           models.DeviceStatusActive,
			ContactPerson:    "Superintendent Brown",
			ContactPhone:     "876-926-8184",
			Notes:            "Main police station for Kingston Metropolitan Area",
		},
		{
			DeviceID:         "SL-KGN-002",
			SerialNumber:     "UTY2D34F44",
			InstallationDate: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
			LocationName:     "Constant Spring Police Station",
			PhysicalAddress:  "Constant Spring Road, Kingston 8",
			Parish:           "St. Andrew",
			Latitude:         18.0245,
			Longitude:        -76.7970,
			LocationType:     models.LocationTypePoliceStation,
			Status:           models.DeviceStatusActive,
			ContactPerson:    "Inspector Williams",
			ContactPhone:     "876-924-1421",
			Notes:            "Covers upper St. Andrew area",
		},
		{
			DeviceID:         "SL-KGN-003",
			SerialNumber:     "UTY2D34G55",
			InstallationDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			LocationName:     "Central Police Station",
			PhysicalAddress:  "Duke Street, Kingston",
			Parish:           "Kingston",
			Latitude:         17.9686,
			Longitude:        -76.7940,
			LocationType:     models.LocationTypePoliceStation,
			Status:           models.DeviceStatusActive,
			ContactPerson:    "Superintendent Davis",
			ContactPhone:     "876-922-0223",
			Notes:            "Downtown Kingston central station",
		},
		{
			DeviceID:         "SL-KGN-004",
			SerialNumber:     "UTY2D34H66",
			InstallationDate: time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC),
			LocationName:     "Matilda's Corner Police Station",
			PhysicalAddress:  "Old Hope Road, Kingston 6",
			Parish:           "St. Andrew",
			Latitude:         18.0158,
			Longitude:        -76.7847,
			LocationType:     models.LocationTypePoliceStation,
			Status:           models.DeviceStatusActive,
			ContactPerson:    "Inspector Thompson",
			ContactPhone:     "876-927-1131",
			Notes:            "University area coverage",
		},
		{
			DeviceID:         "SL-KGN-005",
			SerialNumber:     "UTY2D34J77",
			InstallationDate: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
			LocationName:     "Cross Roads Police Station",
			PhysicalAddress:  "Cross Roads, Kingston 5",
			Parish:           "St. Andrew",
			Latitude:         17.9927,
			Longitude:        -76.7853,
			LocationType:     models.LocationTypePoliceStation,
			Status:           models.DeviceStatusMaintenanceNeeded,
			ContactPerson:    "Sergeant Campbell",
			ContactPhone:     "876-926-5490",
			Notes:            "Dish alignment needs adjustment",
		},
		{
			DeviceID:         "SL-STK-001",
			SerialNumber:     "UTY2D34K88",
			InstallationDate: time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
			LocationName:     "Spanish Town Police Station",
			PhysicalAddress:  "Burke Road, Spanish Town",
			Parish:           "St. Catherine",
			Latitude:         17.9909,
			Longitude:        -76.9548,
			LocationType:     models.LocationTypePoliceStation,
			Status:           models.DeviceStatusActive,
			ContactPerson:    "Superintendent Grant",
			ContactPhone:     "876-984-2305",
			Notes:            "St. Catherine divisional headquarters",
		},
	}
}
