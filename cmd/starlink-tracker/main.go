package main

import (
	"github.com/joho/godotenv"

	"github.com/iot-for-tillgenglighet/messaging-golang/pkg/messaging"

	"github.com/jamaicaconnect/starlink-tracker/internal/pkg/application"
	"github.com/jamaicaconnect/starlink-tracker/internal/pkg/infrastructure/logging"
	"github.com/jamaicaconnect/starlink-tracker/internal/pkg/infrastructure/repositories/database"
)

func main() {

	serviceName := "starlink-tracker"

	godotenv.Load()

	log := logging.NewLogger()
	log.Infof("Starting up %s ...", serviceName)

	config := messaging.LoadConfiguration(serviceName)
	messenger, _ := messaging.Initialize(config)

	defer messenger.Close()

	db, err := database.NewDatabaseConnection(database.NewPostgreSQLConnector(log), log)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %s", err.Error())
	}

	application.CreateRouterAndStartServing(log, messenger, db)
}
