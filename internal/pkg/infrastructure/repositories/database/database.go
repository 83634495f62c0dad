package database

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jamaicaconnect/starlink-tracker/internal/pkg/infrastructure/logging"
	"github.com/jamaicaconnect/starlink-tracker/internal/pkg/infrastructure/repositories/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//ErrDeviceNotFound is returned when the requested device does not exist
var ErrDeviceNotFound = errors.New("device not found")

//ErrDeviceConflict is returned when an update touched no rows even though the
//device still exists, i.e. it was modified concurrently
var ErrDeviceConflict = errors.New("device was modified concurrently")

//DeviceFilter narrows down the result of GetDevices. Zero valued fields are ignored.
type DeviceFilter struct {
	Parish       string
	LocationType models.LocationType
	Status       models.DeviceStatus
}

//Datastore is an interface that is used to inject the database into different handlers to improve testability
type Datastore interface {
	GetDevices(filter *DeviceFilter) ([]models.Device, error)
	GetDeviceFromID(id uint) (*models.Device, error)
	CreateDevice(device *models.Device) (*models.Device, error)
	UpdateDevice(device *models.Device) error
	DeleteDevice(id uint) error
	DeviceExists(id uint) (bool, error)
}

type myDB struct {
	impl *gorm.DB
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

//ConnectorFunc is used to inject a database connection method into NewDatabaseConnection
type ConnectorFunc func() (*gorm.DB, error)

//NewPostgreSQLConnector opens a connection to a postgresql database
func NewPostgreSQLConnector(log logging.Logger) ConnectorFunc {
	dbHost := os.Getenv("TRACKER_DB_HOST")
	username := os.Getenv("TRACKER_DB_USER")
	dbName := os.Getenv("TRACKER_DB_NAME")
	password := os.Getenv("TRACKER_DB_PASSWORD")
	sslMode := getEnv("TRACKER_DB_SSLMODE", "require")

	dbURI := fmt.Sprintf("host=%s user=%s dbname=%s sslmode=%s password=%s", dbHost, username, dbName, sslMode, password)

	return func() (*gorm.DB, error) {
		log.Infof("Connecting to database host %s ...", dbHost)
		db, err := gorm.Open(postgres.Open(dbURI), &gorm.Config{})
		if err != nil {
			log.Errorf("Failed to connect to database %s", err.Error())
			return nil, err
		}

		return db, nil
	}
}

//NewSQLiteConnector opens a connection to a local sqlite database
func NewSQLiteConnector() ConnectorFunc {
	return func() (*gorm.DB, error) {
		db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})

		if err == nil {
			db.Exec("PRAGMA foreign_keys = ON")
		}

		return db, err
	}
}

//NewDatabaseConnection initializes a new connection to the database and wraps it in a Datastore
func NewDatabaseConnection(connect ConnectorFunc, log logging.Logger) (Datastore, error) {
	impl, err := connect()
	if err != nil {
		return nil, err
	}

	db := &myDB{
		impl: impl,
	}

	if err := db.impl.AutoMigrate(&models.Device{}); err != nil {
		return nil, err
	}

	// Make sure that the Kingston Metropolitan Area stations are seeded
	for _, seed := range seedDevices() {
		device := models.Device{}

		result := db.impl.Where("device_id = ?", seed.DeviceID).First(&device)
		if result.RowsAffected == 0 {
			log.Infof("Device %s not found in database. Creating ...", seed.DeviceID)

			seed.CreatedAt = time.Now().UTC()
			result = db.impl.Create(&seed)

			if result.Error != nil {
				log.Errorf("Failed to seed device %s into database: %s", seed.DeviceID, result.Error.Error())
				return nil, result.Error
			}
		}
	}

	return db, nil
}

func (db *myDB) GetDevices(filter *DeviceFilter) ([]models.Device, error) {
	query := db.impl.Model(&models.Device{})

	if filter != nil {
		if filter.Parish != "" {
			query = query.Where("parish = ?", filter.Parish)
		}
		if filter.LocationType != "" {
			query = query.Where("location_type = ?", filter.LocationType)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}

	devices := []models.Device{}
	result := query.Order("parish").Order("location_name").Find(&devices)
	if result.Error != nil {
		return nil, result.Error
	}

	return devices, nil
}

func (db *myDB) GetDeviceFromID(id uint) (*models.Device, error) {
	device := &models.Device{}

	result := db.impl.First(device, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrDeviceNotFound
		}
		return nil, result.Error
	}

	return device, nil
}

func (db *myDB) CreateDevice(device *models.Device) (*models.Device, error) {
	device.ID = 0
	device.CreatedAt = time.Now().UTC()
	device.LastUpdated = nil

	result := db.impl.Create(device)
	if result.Error != nil {
		return nil, result.Error
	}

	return device, nil
}

//UpdateDevice overwrites the stored record with the supplied one. The UPDATE
//is constrained to the record id, so a vanished record touches no rows and is
//re-checked to tell a delete race from a concurrent modification.
func (db *myDB) UpdateDevice(device *models.Device) error {
	now := time.Now().UTC()
	device.LastUpdated = &now

	result := db.impl.Model(&models.Device{ID: device.ID}).
		Select("*").Omit("id", "created_at").
		Updates(device)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		exists, err := db.DeviceExists(device.ID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrDeviceNotFound
		}
		return ErrDeviceConflict
	}

	return nil
}

func (db *myDB) DeleteDevice(id uint) error {
	result := db.impl.Delete(&models.Device{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrDeviceNotFound
	}

	return nil
}

func (db *myDB) DeviceExists(id uint) (bool, error) {
	var count int64

	result := db.impl.Model(&models.Device{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}
