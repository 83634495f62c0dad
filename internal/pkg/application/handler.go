package application

import (
	"compress/flate"
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/cors"

	"github.com/iot-for-tillgenglighet/messaging-golang/pkg/messaging"

	"github.com/jamaicaconnect/starlink-tracker/internal/pkg/infrastructure/logging"
	"github.com/jamaicaconnect/starlink-tracker/internal/pkg/infrastructure/repositories/database"
)

type RequestRouter struct {
	impl *chi.Mux
}

//Get accepts a pattern that should be routed to the handlerFn on a GET request
func (router *RequestRouter) Get(pattern string, handlerFn http.HandlerFunc) {
	router.impl.Get(pattern, handlerFn)
}

//Post accepts a pattern that should be routed to the handlerFn on a POST request
func (router *RequestRouter) Post(pattern string, handlerFn http.HandlerFunc) {
	router.impl.Post(pattern, handlerFn)
}

//Put accepts a pattern that should be routed to the handlerFn on a PUT request
func (router *RequestRouter) Put(pattern string, handlerFn http.HandlerFunc) {
	router.impl.Put(pattern, handlerFn)
}

//Delete accepts a pattern that should be routed to the handlerFn on a DELETE request
func (router *RequestRouter) Delete(pattern string, handlerFn http.HandlerFunc) {
	router.impl.Delete(pattern, handlerFn)
}

func (router *RequestRouter) addDeviceHandlers(log logging.Logger, messenger MessagingContext, db database.Datastore) {
	router.Get("/api/devices", NewGetDevicesHandler(log, db))
	router.Get("/api/devices/export/excel", NewExportDevicesToExcelHandler(log, db))
	router.Get("/api/devices/export/geojson", NewExportDevicesToGeoJSONHandler(log, db))
	router.Get("/api/devices/heatmap", NewHeatmapHandler(log, db))
	router.Get("/api/devices/parishes", NewParishesHandler())
	router.Get("/api/devices/{deviceID}", NewRetrieveDeviceHandler(log, db))
	router.Post("/api/devices", NewCreateDeviceHandler(log, messenger, db))
	router.Put("/api/devices/{deviceID}", NewUpdateDeviceHandler(log, messenger, db))
	router.Delete("/api/devices/{deviceID}", NewDeleteDeviceHandler(log, messenger, db))
}

func (router *RequestRouter) addDashboardHandlers(log logging.Logger, db database.Datastore) {
	router.Get("/api/dashboard/stats", NewDashboardStatsHandler(log, db))
	router.Get("/api/dashboard/police-stations", NewPoliceStationsHandler(log, db))
	router.Get("/api/dashboard/recent", NewRecentInstallationsHandler(log, db))
	router.Get("/api/dashboard/alerts", NewAlertsHandler(log, db))
}

func newRequestRouter() *RequestRouter {
	router := &RequestRouter{impl: chi.NewRouter()}

	router.impl.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		Debug:            false,
	}).Handler)

	// Enable gzip compression for json and geojson responses
	compressor := middleware.NewCompressor(flate.DefaultCompression, "application/json", "application/geo+json")
	router.impl.Use(compressor.Handler)
	router.impl.Use(middleware.Logger)

	return router
}

func createRequestRouter(log logging.Logger, messenger MessagingContext, db database.Datastore) *RequestRouter {
	router := newRequestRouter()

	router.addDeviceHandlers(log, messenger, db)
	router.addDashboardHandlers(log, db)
	router.Get("/healthz", NewHealthHandler())

	return router
}

//MessagingContext is an interface that allows mocking of messaging.Context parameters
type MessagingContext interface {
	PublishOnTopic(message messaging.TopicMessage) error
}

//NewHealthHandler responds to liveness probes
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

//CreateRouterAndStartServing sets up the request router and starts serving incoming requests
func CreateRouterAndStartServing(log logging.Logger, messenger MessagingContext, db database.Datastore) {
	router := createRequestRouter(log, messenger, db)

	port := os.Getenv("SERVICE_PORT")
	if port == "" {
		port = "8880"
	}

	log.Infof("Starting starlink-tracker on port %s.", port)
	log.Fatal(http.ListenAndServe(":"+port, router.impl))
}

func respondWithJSON(w http.ResponseWriter, code int, body interface{}) {
	bytes, err := json.Marshal(body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(bytes)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
