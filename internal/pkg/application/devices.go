package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi"

	"github.com/jamaicaconnect/starlink-tracker/internal/pkg/export"
	"github.com/jamaicaconnect/starlink-tracker/internal/pkg/infrastructure/logging"
	"github.com/jamaicaconnect/starlink-tracker/internal/pkg/infrastructure/repositories/database"
	"github.com/jamaicaconnect/starlink-tracker/internal/pkg/infrastructure/repositories/models"
	parishes "github.com/jamaicaconnect/starlink-tracker/internal/pkg/models"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

//NewGetDevicesHandler returns all devices matching the supplied query filters,
//ordered by parish and location name
func NewGetDevicesHandler(log logging.Logger, db database.Datastore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseDeviceFilter(r, true)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		devices, err := db.GetDevices(filter)
		if err != nil {
			log.Errorf("Failed to get devices: %s", err.Error())
			respondWithError(w, http.StatusInternalServerError, "failed to get devices")
			return
		}

		respondWithJSON(w, http.StatusOK, devices)
	}
}

//NewRetrieveDeviceHandler returns a single device by its record id
func NewRetrieveDeviceHandler(log logging.Logger, db database.Datastore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := deviceIDFromRequest(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		device, err := db.GetDeviceFromID(id)
		if err != nil {
			if errors.Is(err, database.ErrDeviceNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}

			log.Errorf("Failed to get device %d: %s", id, err.Error())
			respondWithError(w, http.StatusInternalServerError, "failed to get device")
			return
		}

		respondWithJSON(w, http.StatusOK, device)
	}
}

//NewCreateDeviceHandler stores a new deployment record
func NewCreateDeviceHandler(log logging.Logger, messenger MessagingContext, db database.Datastore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		device := &models.Device{}
		if err := json.NewDecoder(r.Body).Decode(device); err != nil {
			respondWithError(w, http.StatusBadRequest, "failed to decode request body")
			return
		}

		if !parishes.IsValidParish(device.Parish) {
			respondWithError(w, http.StatusBadRequest, invalidParishMessage())
			return
		}

		created, err := db.CreateDevice(device)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		publishDeviceLifecycleEvent(log, messenger, "created", created)

		w.Header().Set("Location", fmt.Sprintf("/api/devices/%d", created.ID))
		respondWithJSON(w, http.StatusCreated, created)
	}
}

//NewUpdateDeviceHandler overwrites an existing record with the request body
func NewUpdateDeviceHandler(log logging.Logger, messenger MessagingContext, db database.Datastore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := deviceIDFromRequest(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		device := &models.Device{}
		if err := json.NewDecoder(r.Body).Decode(device); err != nil {
			respondWithError(w, http.StatusBadRequest, "failed to decode request body")
			return
		}

		if device.ID != id {
			respondWithError(w, http.StatusBadRequest, "device id in request body does not match the path")
			return
		}

		if !parishes.IsValidParish(device.Parish) {
			respondWithError(w, http.StatusBadRequest, invalidParishMessage())
			return
		}

		if err := db.UpdateDevice(device); err != nil {
			if errors.Is(err, database.ErrDeviceNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}

			log.Errorf("Failed to update device %d: %s", id, err.Error())
			respondWithError(w, http.StatusInternalServerError, "failed to update device")
			return
		}

		publishDeviceLifecycleEvent(log, messenger, "updated", device)

		w.WriteHeader(http.StatusNoContent)
	}
}

//NewDeleteDeviceHandler removes a deployment record
func NewDeleteDeviceHandler(log logging.Logger, messenger MessagingContext, db database.Datastore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := deviceIDFromRequest(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		device, err := db.GetDeviceFromID(id)
		if err != nil {
			if errors.Is(err, database.ErrDeviceNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}

			log.Errorf("Failed to get device %d: %s", id, err.Error())
			respondWithError(w, http.StatusInternalServerError, "failed to delete device")
			return
		}

		if err := db.DeleteDevice(id); err != nil {
			if errors.Is(err, database.ErrDeviceNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}

			log.Errorf("Failed to delete device %d: %s", id, err.Error())
			respondWithError(w, http.StatusInternalServerError, "failed to delete device")
			return
		}

		publishDeviceLifecycleEvent(log, messenger, "deleted", device)

		w.WriteHeader(http.StatusNoContent)
	}
}

//NewExportDevicesToExcelHandler serves the filtered device set as a workbook
func NewExportDevicesToExcelHandler(log logging.Logger, db database.Datastore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseDeviceFilter(r, false)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		devices, err := db.GetDevices(filter)
		if err != nil {
			log.Errorf("Failed to get devices for excel export: %s", err.Error())
			respondWithError(w, http.StatusInternalServerError, "failed to export devices")
			return
		}

		workbook, err := export.DevicesToExcel(devices)
		if err != nil {
			log.Errorf("Failed to render workbook: %s", err.Error())
			respondWithError(w, http.StatusInternalServerError, "failed to export devices")
			return
		}

		fileName := fmt.Sprintf("Starlink_Devices_%s.xlsx", time.Now().Format("20060102_150405"))

		w.Header().Set("Content-Type", excelContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
		w.WriteHeader(http.StatusOK)
		w.Write(workbook)
	}
}

//NewExportDevicesToGeoJSONHandler serves the filtered device set as a GeoJSON FeatureCollection
func NewExportDevicesToGeoJSONHandler(log logging.Logger, db database.Datastore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseDeviceFilter(r, true)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		devices, err := db.GetDevices(filter)
		if err != nil {
			log.Errorf("Failed to get devices for geojson export: %s", err.Error())
			respondWithError(w, http.StatusInternalServerError, "failed to export devices")
			return
		}

		geojson, err := export.DevicesToGeoJSON(devices)
		if err != nil {
			log.Errorf("Failed to render geojson: %s", err.Error())
			respondWithError(w, http.StatusInternalServerError, "failed to export devices")
			return
		}

		w.Header().Set("Content-Type", "application/geo+json")
		w.WriteHeader(http.StatusOK)
		w.Write(geojson)
	}
}

//NewHeatmapHandler serves heatmap points over the complete device set
func NewHeatmapHandler(log logging.Logger, db database.Datastore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		devices, err := db.GetDevices(nil)
		if err != nil {
			log.Errorf("Failed to get devices for heatmap: %s", err.Error())
			respondWithError(w, http.StatusInternalServerError, "failed to generate heatmap")
			return
		}

		heatmap, err := export.DevicesToHeatmap(devices)
		if err != nil {
			log.Errorf("Failed to render heatmap: %s", err.Error())
			respondWithError(w, http.StatusInternalServerError, "failed to generate heatmap")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(heatmap)
	}
}

//NewParishesHandler returns the parish catalog
func NewParishesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, parishes.AllParishes())
	}
}

func deviceIDFromRequest(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "deviceID"), 10, 32)
	if err != nil {
		return 0, errors.New("device id must be a positive integer")
	}

	return uint(id), nil
}

func parseDeviceFilter(r *http.Request, includeStatus bool) (*database.DeviceFilter, error) {
	filter := &database.DeviceFilter{
		Parish: r.URL.Query().Get("parish"),
	}

	if locationType := r.URL.Query().Get("locationType"); locationType != "" {
		parsed, err := models.ParseLocationType(locationType)
		if err != nil {
			return nil, err
		}
		filter.LocationType = parsed
	}

	if status := r.URL.Query().Get("status"); includeStatus && status != "" {
		parsed, err := models.ParseDeviceStatus(status)
		if err != nil {
			return nil, err
		}
		filter.Status = parsed
	}

	return filter, nil
}

func invalidParishMessage() string {
	return "Invalid parish. Must be one of: " + strings.Join(parishes.AllParishes(), ", ")
}
