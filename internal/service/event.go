package service

import (
	"encoding/json"
	"time"

	"github.com/citymarket/catalog-service/internal/dto"
	"github.com/rs/zerolog/log"
)

const publishMaxRetries = 3

// publishEvent sends a catalog change event on a best-effort basis. The
// mutation has already been committed by the time this runs, so a publish
// failure is logged and swallowed rather than failing the request.
func publishEvent(publisher EventPublisher, eventType string, data interface{}) {
	if publisher == nil {
		return
	}

	msg, err := json.Marshal(dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	})
	if err != nil {
		log.Error().Err(err).Str("component", "publishEvent").Str("event_type", eventType).Msg("")
		return
	}

	for i := 0; i < publishMaxRetries; i++ {
		err = publisher.Publish(msg)
		if err == nil {
			return
		}
		log.Error().Err(err).Str("component", "publishEvent").Str("event_type", eventType).Msg("")
		time.Sleep(time.Second * time.Duration(i+1))
	}

	log.Error().Str("event_type", eventType).Msgf("failed to publish event after %d attempts", publishMaxRetries)
}
