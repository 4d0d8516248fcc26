package main

import (
	"context"
	"fmt"
	"os"

	"github.com/citymarket/catalog-service/config"
	"github.com/citymarket/catalog-service/internal/app"
	"github.com/citymarket/catalog-service/internal/infrastructure/database/mongodb"
	"github.com/citymarket/catalog-service/internal/infrastructure/message-queue/kafka"
	"github.com/citymarket/catalog-service/internal/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	conf := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(fmt.Sprintf("mongodb://%s:%s", conf.MongoDBConfig.DBHost, conf.MongoDBConfig.DBPort), conf.MongoDBConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	defer db.Client().Disconnect(context.Background())

	var publisher service.EventPublisher
	if conf.KafkaConfig.BrokerAddress != "" {
		kafkaProducer, err := kafka.CreateKafkaProducer(conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Kafka broker")
		}
		defer kafkaProducer.Close()
		publisher = kafkaProducer
	}

	application := app.App{
		DB:        db,
		Config:    conf,
		Publisher: publisher,
	}

	if err := application.Start(); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
