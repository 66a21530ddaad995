package events

import (
	"encoding/json"

	"github.com/IBM/sarama"

	"github.com/renthub/rental-service/internal/service"
)

// Log publishes booking lifecycle events to a Kafka topic.
type Log struct {
	producer sarama.SyncProducer
	topic    string
}

func NewLog(producer sarama.SyncProducer, topic string) *Log {
	return &Log{
		producer: producer,
		topic:    topic,
	}
}

func (l *Log) Publish(event service.BookingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: l.topic, Value: sarama.StringEncoder(data)}
	if _, _, err = l.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}
