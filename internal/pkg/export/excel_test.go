package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/jamaicaconnect/starlink-tracker/internal/pkg/infrastructure/repositories/models"
)

func TestThatTheWorkbookContainsAllThreeSheets(t *testing.T) {
	f := openWorkbook(t, exportTestDevices())

	sheets := f.GetSheetList()
	if len(sheets) != 3 {
		t.Error("Expected 3 sheets, but got ", len(sheets))
	}

	for _, name := range []string{devicesSheet, summarySheet, breakdownSheet} {
		if f.GetSheetIndex(name) < 0 {
			t.Error("Workbook is missing sheet " + name)
		}
	}
}

func TestThatTheDeviceSheetHoldsOneRowPerDevice(t *testing.T) {
	devices := exportTestDevices()
	f := openWorkbook(t, devices)

	rows, err := f.GetRows(devicesSheet)
	if err != nil {
		t.Error("GetRows failed: " + err.Error())
	}

	if len(rows) != len(devices)+1 {
		t.Error("Expected ", len(devices)+1, " rows including header, but got ", len(rows))
	}

	for i, header := range deviceSheetHeaders {
		if rows[0][i] != header {
			t.Errorf("Header %d should be %s, but was %s", i, header, rows[0][i])
		}
	}

	if rows[1][0] != "SL-KGN-001" {
		t.Error("First data row should hold the first device, but held " + rows[1][0])
	}

	if rows[1][2] != "2025-01-15" {
		t.Error("Installation date should render as 2025-01-15, but was " + rows[1][2])
	}

	if rows[2][9] != "Offline" {
		t.Error("Status column should hold the status name, but was " + rows[2][9])
	}
}

func TestThatTheSummarySheetHoldsTheCounters(t *testing.T) {
	f := openWorkbook(t, exportTestDevices())

	title, _ := f.GetCellValue(summarySheet, "A1")
	if title != "Starlink Deployment Summary - Jamaica" {
		t.Error("Summary title is wrong: " + title)
	}

	expectations := map[string]string{
		"B3":  "3", // total
		"B4":  "2", // active
		"B5":  "0", // maintenance
		"B6":  "1", // offline
		"B8":  "1", // police stations
		"B9":  "1", // schools
		"B10": "1", // hospitals
	}

	for cell, expected := range expectations {
		value, _ := f.GetCellValue(summarySheet, cell)
		if value != expected {
			t.Errorf("Summary cell %s should be %s, but was %s", cell, expected, value)
		}
	}
}

func TestThatTheBreakdownSheetIsAlphabeticalByParish(t *testing.T) {
	f := openWorkbook(t, exportTestDevices())

	rows, err := f.GetRows(breakdownSheet)
	if err != nil {
		t.Error("GetRows failed: " + err.Error())
	}

	if len(rows) != 3 {
		t.Error("Expected a header and two parish rows, but got ", len(rows))
	}

	if rows[1][0] != "St. Andrew" || rows[2][0] != "St. Catherine" {
		t.Errorf("Parishes should be alphabetical, but were %s, %s", rows[1][0], rows[2][0])
	}

	// St. Andrew: 2 devices, 1 active, 1 offline, 1 police station
	expected := []string{"St. Andrew", "2", "1", "1", "1"}
	for i, value := range expected {
		if rows[1][i] != value {
			t.Errorf("Breakdown column %d should be %s, but was %s", i, value, rows[1][i])
		}
	}
}

func TestThatEmptyInputProducesHeaderOnlySheets(t *testing.T) {
	f := openWorkbook(t, nil)

	rows, err := f.GetRows(devicesSheet)
	if err != nil {
		t.Error("GetRows failed: " + err.Error())
	}

	if len(rows) != 1 {
		t.Error("Empty input should produce a header only device sheet, but got ", len(rows), " rows")
	}

	total, _ := f.GetCellValue(summarySheet, "B3")
	if total != "0" {
		t.Error("Total should be 0 for empty input, but was " + total)
	}
}

func openWorkbook(t *testing.T, devices []models.Device) *excelize.File {
	data, err := DevicesToExcel(devices)
	if err != nil {
		t.Fatal("DevicesToExcel failed: " + err.Error())
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal("Emitted workbook does not open: " + err.Error())
	}

	return f
}
