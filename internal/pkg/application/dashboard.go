package application

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jamaicaconnect/starlink-tracker/internal/pkg/aggregation"
	"github.com/jamaicaconnect/starlink-tracker/internal/pkg/infrastructure/logging"
	"github.com/jamaicaconnect/starlink-tracker/internal/pkg/infrastructure/repositories/database"
)

//NewDashboardStatsHandler computes deployment statistics over all devices
func NewDashboardStatsHandler(log logging.Logger, db database.Datastore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		devices, err := db.GetDevices(nil)
		if err != nil {
			log.Errorf("Failed to get devices for dashboard stats: %s", err.Error())
			respondWithError(w, http.StatusInternalServerError, "failed to compute stats")
			return
		}

		respondWithJSON(w, http.StatusOK, aggregation.NewDashboardStats(devices))
	}
}

//NewPoliceStationsHandler lists all police station deployments
func NewPoliceStationsHandler(log logging.Logger, db database.Datastore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		devices, err := db.GetDevices(nil)
		if err != nil {
			log.Errorf("Failed to get devices for police station listing: %s", err.Error())
			respondWithError(w, http.StatusInternalServerError, "failed to list police stations")
			return
		}

		respondWithJSON(w, http.StatusOK, aggregation.PoliceStations(devices))
	}
}

//NewRecentInstallationsHandler lists devices installed within the last N days (default 30)
func NewRecentInstallationsHandler(log logging.Logger, db database.Datastore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days := 30
		if daysParam := r.URL.Query().Get("days"); daysParam != "" {
			parsed, err := strconv.Atoi(daysParam)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "days must be an integer")
				return
			}
			days = parsed
		}

		devices, err := db.GetDevices(nil)
		if err != nil {
			log.Errorf("Failed to get devices for recent installations: %s", err.Error())
			respondWithError(w, http.StatusInternalServerError, "failed to list recent installations")
			return
		}

		respondWithJSON(w, http.StatusOK, aggregation.RecentInstallations(devices, days, time.Now().UTC()))
	}
}

//NewAlertsHandler lists all offline devices and all devices flagged for maintenance
func NewAlertsHandler(log logging.Logger, db database.Datastore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		devices, err := db.GetDevices(nil)
		if err != nil {
			log.Errorf("Failed to get devices for alerts: %s", err.Error())
			respondWithError(w, http.StatusInternalServerError, "failed to compute alerts")
			return
		}

		respondWithJSON(w, http.StatusOK, aggregation.Alerts(devices))
	}
}
