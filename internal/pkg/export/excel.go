package export

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/jamaicaconnect/starlink-tracker/internal/pkg/infrastructure/repositories/models"
)

const (
	devicesSheet   = "Starlink Devices"
	summarySheet   = "Summary"
	breakdownSheet = "Parish Breakdown"
)

var deviceSheetHeaders = []string{
	"Device ID", "Serial Number", "Installation Date", "Location Name",
	"Physical Address", "Parish", "Latitude", "Longitude",
	"Location Type", "Status", "Contact Person", "Contact Phone", "Notes",
}

//Status cells are filled with the matching color. Maintenance gets dark text
//for contrast on the amber background, all others get white text.
var statusFillColors = map[models.DeviceStatus]string{
	models.DeviceStatusActive:            "28A745",
	models.DeviceStatusMaintenanceNeeded: "FFC107",
	models.DeviceStatusOffline:           "DC3545",
	models.DeviceStatusDecommissioned:    "6C757D",
}

//DevicesToExcel renders the supplied devices, in order, into a workbook with a
//device listing, a summary sheet and a per parish breakdown.
func DevicesToExcel(devices []models.Device) ([]byte, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", devicesSheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DC3545"}},
	})
	if err != nil {
		return nil, err
	}

	for i, header := range deviceSheetHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(devicesSheet, cell, header)
		f.SetCellStyle(devicesSheet, cell, cell, headerStyle)
	}

	statusStyles := map[models.DeviceStatus]int{}
	for status, fillColor := range statusFillColors {
		fontColor := "FFFFFF"
		if status == models.DeviceStatusMaintenanceNeeded {
			fontColor = "212529"
		}

		styleID, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Color: fontColor},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fillColor}},
		})
		if err != nil {
			return nil, err
		}
		statusStyles[status] = styleID
	}

	for i, device := range devices {
		row := i + 2
		values := []interface{}{
			device.DeviceID,
			device.SerialNumber,
			device.InstallationDate.Format("2006-01-02"),
			device.LocationName,
			device.PhysicalAddress,
			device.Parish,
			device.Latitude,
			device.Longitude,
			string(device.LocationType),
			string(device.Status),
			device.ContactPerson,
			device.ContactPhone,
			device.Notes,
		}

		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(devicesSheet, cell, value)
		}

		if styleID, found := statusStyles[device.Status]; found {
			statusCell, _ := excelize.CoordinatesToCellName(10, row)
			f.SetCellStyle(devicesSheet, statusCell, statusCell, styleID)
		}
	}

	autoFitColumns(f, devicesSheet)

	if err := createSummarySheet(f, devices); err != nil {
		return nil, err
	}

	if err := createParishBreakdownSheet(f, devices, headerStyle); err != nil {
		return nil, err
	}

	f.SetActiveSheet(f.GetSheetIndex(devicesSheet))

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	return buffer.Bytes(), nil
}

func createSummarySheet(f *excelize.File, devices []models.Device) error {
	f.NewSheet(summarySheet)

	countByStatus := func(status models.DeviceStatus) int {
		count := 0
		for _, device := range devices {
			if device.Status == status {
				count++
			}
		}
		return count
	}

	countByLocationType := func(locationType models.LocationType) int {
		count := 0
		for _, device := range devices {
			if device.LocationType == locationType {
				count++
			}
		}
		return count
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return err
	}

	boldStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	greenStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "28A745"}})
	amberStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "FFC107"}})
	redStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "DC3545"}})

	f.SetCellValue(summarySheet, "A1", "Starlink Deployment Summary - Jamaica")
	f.SetCellStyle(summarySheet, "A1", "A1", titleStyle)

	f.SetCellValue(summarySheet, "A3", "Total Devices:")
	f.SetCellValue(summarySheet, "B3", len(devices))
	f.SetCellStyle(summarySheet, "B3", "B3", boldStyle)

	f.SetCellValue(summarySheet, "A4", "Active Devices:")
	f.SetCellValue(summarySheet, "B4", countByStatus(models.DeviceStatusActive))
	f.SetCellStyle(summarySheet, "B4", "B4", greenStyle)

	f.SetCellValue(summarySheet, "A5", "Maintenance Needed:")
	f.SetCellValue(summarySheet, "B5", countByStatus(models.DeviceStatusMaintenanceNeeded))
	f.SetCellStyle(summarySheet, "B5", "B5", amberStyle)

	f.SetCellValue(summarySheet, "A6", "Offline Devices:")
	f.SetCellValue(summarySheet, "B6", countByStatus(models.DeviceStatusOffline))
	f.SetCellStyle(summarySheet, "B6", "B6", redStyle)

	f.SetCellValue(summarySheet, "A8", "Police Stations:")
	f.SetCellValue(summarySheet, "B8", countByLocationType(models.LocationTypePoliceStation))
	f.SetCellStyle(summarySheet, "B8", "B8", boldStyle)

	f.SetCellValue(summarySheet, "A9", "Schools:")
	f.SetCellValue(summarySheet, "B9", countByLocationType(models.LocationTypeSchool))

	f.SetCellValue(summarySheet, "A10", "Hospitals:")
	f.SetCellValue(summarySheet, "B10", countByLocationType(models.LocationTypeHospital))

	f.SetCellValue(summarySheet, "A11", "Other Locations:")
	f.SetCellValue(summarySheet, "B11", countByLocationType(models.LocationTypeOther))

	autoFitColumns(f, summarySheet)

	return nil
}

func createParishBreakdownSheet(f *excelize.File, devices []models.Device, headerStyle int) error {
	f.NewSheet(breakdownSheet)

	headers := []string{"Parish", "Total Devices", "Active", "Offline", "Police Stations"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(breakdownSheet, cell, header)
		f.SetCellStyle(breakdownSheet, cell, cell, headerStyle)
	}

	type parishCounts struct {
		total          int
		active         int
		offline        int
		policeStations int
	}

	counts := map[string]*parishCounts{}
	for _, device := range devices {
		c, found := counts[device.Parish]
		if !found {
			c = &parishCounts{}
			counts[device.Parish] = c
		}

		c.total++
		if device.Status == models.DeviceStatusActive {
			c.active++
		}
		if device.Status == models.DeviceStatusOffline {
			c.offline++
		}
		if device.LocationType == models.LocationTypePoliceStation {
			c.policeStations++
		}
	}

	parishes := make([]string, 0, len(counts))
	for parish := range counts {
		parishes = append(parishes, parish)
	}
	sort.Strings(parishes)

	for i, parish := range parishes {
		row := i + 2
		c := counts[parish]

		values := []interface{}{parish, c.total, c.active, c.offline, c.policeStations}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(breakdownSheet, cell, value)
		}
	}

	autoFitColumns(f, breakdownSheet)

	return nil
}

//autoFitColumns sizes every column to its longest cell value. The library has
//no built in auto fit, so widths are derived from the rendered cell content.
func autoFitColumns(f *excelize.File, sheet string) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return
	}

	widths := []int{}
	for _, row := range rows {
		for col, value := range row {
			for col >= len(widths) {
				widths = append(widths, 0)
			}
			if len(value) > widths[col] {
				widths[col] = len(value)
			}
		}
	}

	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			continue
		}

		fitted := float64(width) + 2
		if fitted > 80 {
			fitted = 80
		}

		f.SetColWidth(sheet, name, name, fitted)
	}
}
