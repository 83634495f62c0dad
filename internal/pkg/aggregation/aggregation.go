package aggregation

import (
	"sort"
	"strings"
	"time"

	"github.com/jamaicaconnect/starlink-tracker/internal/pkg/infrastructure/repositories/models"
)

//ParishSummary holds the per parish slice of the deployment statistics
type ParishSummary struct {
	Parish         string `json:"parish"`
	TotalDevices   int    `json:"totalDevices"`
	ActiveDevices  int    `json:"activeDevices"`
	OfflineDevices int    `json:"offlineDevices"`
	PoliceStations int    `json:"policeStations"`
}

//DashboardStats is a point in time aggregate over the full device set
type DashboardStats struct {
	TotalDevices          int             `json:"totalDevices"`
	ActiveDevices         int             `json:"activeDevices"`
	OfflineDevices        int             `json:"offlineDevices"`
	MaintenanceNeeded     int             `json:"maintenanceNeeded"`
	PoliceStationCount    int             `json:"policeStationCount"`
	DevicesByParish       map[string]int  `json:"devicesByParish"`
	DevicesByLocationType map[string]int  `json:"devicesByLocationType"`
	ParishBreakdown       []ParishSummary `json:"parishBreakdown"`
}

//AlertReport lists all devices that need attention
type AlertReport struct {
	Offline           []models.Device `json:"offline"`
	MaintenanceNeeded []models.Device `json:"maintenanceNeeded"`
	TotalAlerts       int             `json:"totalAlerts"`
}

//NewDashboardStats computes deployment statistics from the complete device set.
//The parish breakdown is sorted by total count descending, and parishes with
//equal counts keep the order in which they were first encountered.
func NewDashboardStats(devices []models.Device) *DashboardStats {
	stats := &DashboardStats{
		TotalDevices:          len(devices),
		DevicesByParish:       map[string]int{},
		DevicesByLocationType: map[string]int{},
		ParishBreakdown:       []ParishSummary{},
	}

	breakdownIndex := map[string]int{}

	for _, device := range devices {
		switch device.Status {
		case models.DeviceStatusActive:
			stats.ActiveDevices++
		case models.DeviceStatusOffline:
			stats.OfflineDevices++
		case models.DeviceStatusMaintenanceNeeded:
			stats.MaintenanceNeeded++
		}

		if device.LocationType == models.LocationTypePoliceStation {
			stats.PoliceStationCount++
		}

		stats.DevicesByParish[device.Parish]++
		stats.DevicesByLocationType[string(device.LocationType)]++

		idx, found := breakdownIndex[device.Parish]
		if !found {
			idx = len(stats.ParishBreakdown)
			breakdownIndex[device.Parish] = idx
			stats.ParishBreakdown = append(stats.ParishBreakdown, ParishSummary{Parish: device.Parish})
		}

		summary := &stats.ParishBreakdown[idx]
		summary.TotalDevices++
		if device.Status == models.DeviceStatusActive {
			summary.ActiveDevices++
		}
		if device.Status == models.DeviceStatusOffline {
			summary.OfflineDevices++
		}
		if device.LocationType == models.LocationTypePoliceStation {
			summary.PoliceStations++
		}
	}

	sort.SliceStable(stats.ParishBreakdown, func(i, j int) bool {
		return stats.ParishBreakdown[i].TotalDevices > stats.ParishBreakdown[j].TotalDevices
	})

	return stats
}

//Alerts collects all offline devices and all devices flagged for maintenance.
//The two statuses are mutually exclusive so no deduplication is needed.
func Alerts(devices []models.Device) *AlertReport {
	report := &AlertReport{
		Offline:           []models.Device{},
		MaintenanceNeeded: []models.Device{},
	}

	for _, device := range devices {
		if device.Status == models.DeviceStatusOffline {
			report.Offline = append(report.Offline, device)
		} else if device.Status == models.DeviceStatusMaintenanceNeeded {
			report.MaintenanceNeeded = append(report.MaintenanceNeeded, device)
		}
	}

	report.TotalAlerts = len(report.Offline) + len(report.MaintenanceNeeded)

	return report
}

//RecentInstallations returns all devices installed within the given number of
//days counted back from now, most recent first.
func RecentInstallations(devices []models.Device, days int, now time.Time) []models.Device {
	cutoff := now.AddDate(0, 0, -days)

	recent := []models.Device{}
	for _, device := range devices {
		if !device.InstallationDate.Before(cutoff) {
			recent = append(recent, device)
		}
	}

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].InstallationDate.After(recent[j].InstallationDate)
	})

	return recent
}

//PoliceStations returns all police station deployments ordered by parish and
//location name.
func PoliceStations(devices []models.Device) []models.Device {
	stations := []models.Device{}
	for _, device := range devices {
		if device.LocationType == models.LocationTypePoliceStation {
			stations = append(stations, device)
		}
	}

	sort.SliceStable(stations, func(i, j int) bool {
		if stations[i].Parish != stations[j].Parish {
			return strings.Compare(stations[i].Parish, stations[j].Parish) < 0
		}
		return strings.Compare(stations[i].LocationName, stations[j].LocationName) < 0
	})

	return stations
}
