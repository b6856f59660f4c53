package publisher

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"github.com/username/consumption-calendar/internal/billing"
	"github.com/username/consumption-calendar/internal/config"
)

const (
	connectTimeout = 10 * time.Second
	publishTimeout = 5 * time.Second
	qosAtLeastOnce = 1
)

// client is the part of mqtt.Client the publisher needs
type client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	IsConnected() bool
	Disconnect(quiesce uint)
}

// Publisher publishes consumption reports to an MQTT broker
type Publisher struct {
	client      client
	topicPrefix string
	logger      *zap.Logger
}

// New connects to the configured broker
func New(cfg config.MQTTConfig, logger *zap.Logger) (*Publisher, error) {
	if !cfg.Enabled {
		return nil, fmt.Errorf("MQTT publishing is not enabled in config")
	}
	if cfg.Broker == "" {
		return nil, fmt.Errorf("MQTT broker address is required when enabled")
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s", cfg.Broker))
	opts.SetClientID(cfg.ClientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(connectTimeout)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	c := mqtt.NewClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connecting to MQTT broker: %w", token.Error())
	}

	logger.Info("Connected to MQTT broker", zap.String("broker", cfg.Broker))

	return newPublisher(c, cfg.TopicPrefix, logger), nil
}

func newPublisher(c client, topicPrefix string, logger *zap.Logger) *Publisher {
	return &Publisher{
		client:      c,
		topicPrefix: strings.TrimSuffix(topicPrefix, "/"),
		logger:      logger,
	}
}

// SummaryTopic returns the topic for a monthly summary
func (p *Publisher) SummaryTopic(month string) string {
	return fmt.Sprintf("%s/%s/summary", p.topicPrefix, strings.ToLower(month))
}

// DayTopic returns the topic for one day report
func (p *Publisher) DayTopic(month string, day int) string {
	return fmt.Sprintf("%s/%s/%d", p.topicPrefix, strings.ToLower(month), day)
}

// PublishSummary publishes a monthly summary as a retained JSON message
func (p *Publisher) PublishSummary(s *billing.MonthlySummary) error {
	return p.publish(p.SummaryTopic(s.Month), s)
}

// PublishDay publishes a day report as a retained JSON message
func (p *Publisher) PublishDay(r *billing.DayReport) error {
	return p.publish(p.DayTopic(r.Month, r.Day), r)
}

func (p *Publisher) publish(topic string, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	token := p.client.Publish(topic, qosAtLeastOnce, true, body)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publishing to %s: timed out after %s", topic, publishTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publishing to %s: %w", topic, err)
	}

	p.logger.Debug("Published message",
		zap.String("topic", topic),
		zap.Int("bytes", len(body)))

	return nil
}

// Close disconnects from the MQTT broker
func (p *Publisher) Close() {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
	}
}
