package events

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/IBM/sarama"
)

// ScanCompleted is published after every successful scan so downstream
// consumers (dashboards, alerting) can react without polling the API.
type ScanCompleted struct {
	ScanID       string    `json:"scanId"`
	Query        string    `json:"query"`
	ArticleCount int       `json:"articleCount"`
	SourceCount  int       `json:"sourceCount"`
	Timestamp    time.Time `json:"timestamp"`
}

// Publisher sends scan events to Kafka.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewPublisherFromEnv creates a Publisher when KAFKA_BROKERS is set
// (comma-separated) and returns (nil, nil) otherwise. Topic defaults to
// "balitai.scans", overridable with KAFKA_SCAN_TOPIC.
func NewPublisherFromEnv() (*Publisher, error) {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		return nil, nil
	}

	topic := os.Getenv("KAFKA_SCAN_TOPIC")
	if topic == "" {
		topic = "balitai.scans"
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V3_6_0_0
	saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal
	saramaConfig.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(strings.Split(brokers, ","), saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("creating Kafka producer: %w", err)
	}

	log.Printf("✅ Kafka publisher started (topic: %s)", topic)
	return &Publisher{producer: producer, topic: topic}, nil
}

// PublishScanCompleted sends one event keyed by scan ID.
func (p *Publisher) PublishScanCompleted(event ScanCompleted) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling scan event: %w", err)
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.ScanID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("publishing scan event: %w", err)
	}
	return nil
}

// Close gracefully shuts down the producer.
func (p *Publisher) Close() error {
	return p.producer.Close()
}
