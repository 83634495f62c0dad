package export

import (
	"encoding/json"

	"github.com/jamaicaconnect/starlink-tracker/internal/pkg/infrastructure/repositories/models"
)

//FeatureProperties carries every device field plus the display hints map
//clients use for marker rendering.
type FeatureProperties struct {
	ID               uint   `json:"id"`
	DeviceID         string `json:"deviceId"`
	SerialNumber     string `json:"serialNumber"`
	LocationName     string `json:"locationName"`
	PhysicalAddress  string `json:"physicalAddress"`
	Parish           string `json:"parish"`
	LocationType     string `json:"locationType"`
	Status           string `json:"status"`
	ContactPerson    string `json:"contactPerson"`
	ContactPhone     string `json:"contactPhone"`
	InstallationDate string `json:"installationDate"`
	Notes            string `json:"notes"`
	MarkerColor      string `json:"markerColor"`
	MarkerSize       string `json:"markerSize"`
	Icon             string `json:"icon"`
}

//PointGeometry is a GeoJSON point. Coordinates are longitude first.
type PointGeometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

//Feature pairs a device location with its properties
type Feature struct {
	Type       string            `json:"type"`
	Geometry   PointGeometry     `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

//FeatureCollection is the document emitted by DevicesToGeoJSON
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

var markerColors = map[models.DeviceStatus]string{
	models.DeviceStatusActive:            "#28a745",
	models.DeviceStatusMaintenanceNeeded: "#ffc107",
	models.DeviceStatusOffline:           "#dc3545",
	models.DeviceStatusDecommissioned:    "#6c757d",
}

var locationIcons = map[models.LocationType]string{
	models.LocationTypePoliceStation: "shield",
	models.LocationTypeSchool:        "graduation-cap",
	models.LocationTypeHospital:      "hospital",
	models.LocationTypeGovernment:    "landmark",
	models.LocationTypeBusiness:      "building",
	models.LocationTypeCommunity:     "home",
	models.LocationTypeOther:         "map-pin",
}

//DevicesToGeoJSON renders a FeatureCollection with one point feature per
//device, indented for human consumption.
func DevicesToGeoJSON(devices []models.Device) ([]byte, error) {
	collection := FeatureCollection{
		Type:     "FeatureCollection",
		Features: []Feature{},
	}

	for _, device := range devices {
		feature := Feature{
			Type: "Feature",
			Geometry: PointGeometry{
				Type:        "Point",
				Coordinates: []float64{device.Longitude, device.Latitude},
			},
			Properties: FeatureProperties{
				ID:               device.ID,
				DeviceID:         device.DeviceID,
				SerialNumber:     device.SerialNumber,
				LocationName:     device.LocationName,
				PhysicalAddress:  device.PhysicalAddress,
				Parish:           device.Parish,
				LocationType:     string(device.LocationType),
				Status:           string(device.Status),
				ContactPerson:    device.ContactPerson,
				ContactPhone:     device.ContactPhone,
				InstallationDate: device.InstallationDate.Format("2006-01-02"),
				Notes:            device.Notes,
				MarkerColor:      markerColor(device.Status),
				MarkerSize:       markerSize(device.LocationType),
				Icon:             locationIcon(device.LocationType),
			},
		}

		collection.Features = append(collection.Features, feature)
	}

	return json.MarshalIndent(collection, "", "  ")
}

//DevicesToHeatmap renders a compact list of [latitude, longitude, weight]
//triples. Only active devices contribute a point, each with weight 1.0.
//Note that the coordinate order is reversed compared to GeoJSON.
func DevicesToHeatmap(devices []models.Device) ([]byte, error) {
	points := [][]float64{}

	for _, device := range devices {
		if device.Status == models.DeviceStatusActive {
			points = append(points, []float64{device.Latitude, device.Longitude, 1.0})
		}
	}

	return json.Marshal(points)
}

func markerColor(status models.DeviceStatus) string {
	if color, found := markerColors[status]; found {
		return color
	}
	return "#007bff"
}

func markerSize(locationType models.LocationType) string {
	if locationType == models.LocationTypePoliceStation {
		return "large"
	}
	return "medium"
}

func locationIcon(locationType models.LocationType) string {
	if icon, found := locationIcons[locationType]; found {
		return icon
	}
	return "map-pin"
}
