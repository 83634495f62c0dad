package export

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jamaicaconnect/starlink-tracker/internal/pkg/infrastructure/repositories/models"
)

func TestThatGeoJSONContainsOneFeaturePerDevice(t *testing.T) {
	devices := exportTestDevices()

	data, err := DevicesToGeoJSON(devices)
	if err != nil {
		t.Error("DevicesToGeoJSON failed: " + err.Error())
	}

	collection := FeatureCollection{}
	if err := json.Unmarshal(data, &collection); err != nil {
		t.Error("Emitted GeoJSON does not parse: " + err.Error())
	}

	if collection.Type != "FeatureCollection" {
		t.Error("Document type should be FeatureCollection, but was " + collection.Type)
	}

	if len(collection.Features) != len(devices) {
		t.Error("Expected ", len(devices), " features, but got ", len(collection.Features))
	}

	for i, feature := range collection.Features {
		if feature.Type != "Feature" || feature.Geometry.Type != "Point" {
			t.Errorf("Feature %d has wrong type information", i)
		}

		// GeoJSON coordinate order is longitude first
		if feature.Geometry.Coordinates[0] != devices[i].Longitude ||
			feature.Geometry.Coordinates[1] != devices[i].Latitude {
			t.Errorf("Feature %d coordinates do not match device %s", i, devices[i].DeviceID)
		}
	}
}

func TestThatGeoJSONCarriesDisplayHints(t *testing.T) {
	devices := exportTestDevices()

	data, _ := DevicesToGeoJSON(devices)

	collection := FeatureCollection{}
	json.Unmarshal(data, &collection)

	station := collection.Features[0].Properties
	if station.MarkerColor != "#28a745" || station.MarkerSize != "large" || station.Icon != "shield" {
		t.Errorf("Police station hints are wrong: %s %s %s", station.MarkerColor, station.MarkerSize, station.Icon)
	}

	offlineSchool := collection.Features[1].Properties
	if offlineSchool.MarkerColor != "#dc3545" || offlineSchool.MarkerSize != "medium" || offlineSchool.Icon != "graduation-cap" {
		t.Errorf("School hints are wrong: %s %s %s", offlineSchool.MarkerColor, offlineSchool.MarkerSize, offlineSchool.Icon)
	}

	if collection.Features[0].Properties.InstallationDate != "2025-01-15" {
		t.Error("Installation date should be formatted as 2025-01-15, but was " + station.InstallationDate)
	}
}

func TestThatUnrecognizedValuesFallBackToDefaults(t *testing.T) {
	device := exportTestDevices()[0]
	device.Status = models.DeviceStatus("Unknown")
	device.LocationType = models.LocationType("Bunker")

	data, _ := DevicesToGeoJSON([]models.Device{device})

	collection := FeatureCollection{}
	json.Unmarshal(data, &collection)

	properties := collection.Features[0].Properties
	if properties.MarkerColor != "#007bff" {
		t.Error("Default marker color should be blue, but was " + properties.MarkerColor)
	}
	if properties.Icon != "map-pin" {
		t.Error("Default icon should be map-pin, but was " + properties.Icon)
	}
}

func TestThatHeatmapOnlyContainsActiveDevicesInInputOrder(t *testing.T) {
	devices := exportTestDevices()

	data, err := DevicesToHeatmap(devices)
	if err != nil {
		t.Error("DevicesToHeatmap failed: " + err.Error())
	}

	points := [][]float64{}
	if err := json.Unmarshal(data, &points); err != nil {
		t.Error("Emitted heatmap does not parse: " + err.Error())
	}

	active := []models.Device{}
	for _, device := range devices {
		if device.Status == models.DeviceStatusActive {
			active = append(active, device)
		}
	}

	if len(points) != len(active) {
		t.Error("Expected ", len(active), " points, but got ", len(points))
	}

	for i, point := range points {
		// latitude first for heatmap points
		if point[0] != active[i].Latitude || point[1] != active[i].Longitude || point[2] != 1.0 {
			t.Errorf("Point %d should be [%f %f 1.0], but was %v", i, active[i].Latitude, active[i].Longitude, point)
		}
	}
}

func TestThatEmptyInputProducesEmptyDocuments(t *testing.T) {
	geojson, err := DevicesToGeoJSON(nil)
	if err != nil {
		t.Error("DevicesToGeoJSON failed on empty input: " + err.Error())
	}

	collection := FeatureCollection{}
	json.Unmarshal(geojson, &collection)
	if len(collection.Features) != 0 {
		t.Error("Empty input should produce an empty feature list")
	}

	heatmap, err := DevicesToHeatmap(nil)
	if err != nil {
		t.Error("DevicesToHeatmap failed on empty input: " + err.Error())
	}

	if string(heatmap) != "[]" {
		t.Error("Empty input should produce an empty point list, but was " + string(heatmap))
	}
}

func exportTestDevices() []models.Device {
	return []models.Device{
		{
			ID:               1,
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
		},
		{
			ID:               2,
			DeviceID:         "SL-KGN-010",
			InstallationDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			LocationName:     "Mona Primary School",
			PhysicalAddress:  "Mona Road, Kingston 6",
			Parish:           "St. Andrew",
			Latitude:         18.0094,
			Longitude:        -76.7517,
			LocationType:     models.LocationTypeSchool,
			Status:           models.DeviceStatusOffline,
		},
		{
			ID:               3,
			DeviceID:         "SL-STK-002",
			InstallationDate: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
			LocationName:     "Spanish Town Hospital",
			PhysicalAddress:  "Burke Road, Spanish Town",
			Parish:           "St. Catherine",
			Latitude:         17.9909,
			Longitude:        -76.9548,
			LocationType:     models.LocationTypeHospital,
			Status:           models.DeviceStatusActive,
		},
	}
}
