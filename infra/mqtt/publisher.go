package mqtt

import (
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/StevenSignal/dtek-schedule/infra/logger"
)

// Config defines the connection parameters for the schedule publisher.
type Config struct {
	Enabled  bool   `json:"enabled"`
	Broker   string `json:"broker"`
	ClientID string `json:"client_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Topic    string `json:"topic"`
	QoS      byte   `json:"qos"`
	Retain   bool   `json:"retain"`
}

// SetDefaults applies connection defaults. The client id gets a random
// suffix so overlapping cron invocations do not evict each other.
func (c *Config) SetDefaults() {
	if c.Topic == "" {
		c.Topic = "dtek/schedule/state"
	}
	if c.ClientID == "" {
		c.ClientID = "dtek-collector-" + uuid.NewString()[:8]
	}
}

// Validate checks mandatory fields when publishing is enabled.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Broker == "" {
		return fmt.Errorf("mqtt broker is required when mqtt is enabled")
	}
	if c.QoS > 2 {
		return fmt.Errorf("mqtt qos must be 0, 1 or 2")
	}
	return nil
}

// Publisher sends the rendered schedule to downstream consumers.
type Publisher interface {
	Publish(payload []byte) error
	Close()
}

// PahoPublisher implements Publisher using Eclipse Paho.
type PahoPublisher struct {
	cli    paho.Client
	topic  string
	qos    byte
	retain bool
	log    logger.Logger
}

// NewPahoPublisher connects to the broker and returns a ready publisher.
func NewPahoPublisher(cfg Config) (*PahoPublisher, error) {
	logg := logger.New("mqtt-publisher")
	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetConnectTimeout(10 * time.Second)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		logg.Errorf("connection lost: %v", err)
	}

	cli := paho.NewClient(opts)
	if token := cli.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return &PahoPublisher{
		cli:    cli,
		topic:  cfg.Topic,
		qos:    cfg.QoS,
		retain: cfg.Retain,
		log:    logg,
	}, nil
}

// Publish sends the payload to the configured topic.
func (p *PahoPublisher) Publish(payload []byte) error {
	token := p.cli.Publish(p.topic, p.qos, p.retain, payload)
	if token.Wait() && token.Error() != nil {
		return token.Error()
	}
	p.log.Debugw("schedule published", map[string]any{"topic": p.topic, "bytes": len(payload)})
	return nil
}

// Close disconnects from the broker.
func (p *PahoPublisher) Close() {
	p.cli.Disconnect(250)
}

// MockPublisher is a simple publisher used in tests.
type MockPublisher struct {
	Payloads [][]byte
	Fail     bool
	Closed   bool
}

// Publish records the payload or returns an error if configured to fail.
func (m *MockPublisher) Publish(payload []byte) error {
	if m.Fail {
		return fmt.Errorf("publish failed")
	}
	m.Payloads = append(m.Payloads, payload)
	return nil
}

// Close marks the publisher closed.
func (m *MockPublisher) Close() { m.Closed = true }
