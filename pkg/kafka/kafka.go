package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

const (
	NotificationTopic = "librario.notifications"
	EmailTopic        = "librario.emails"
)

// EventNotification is the envelope consumed by the notification gateway.
type EventNotification struct {
	Audience  string    `json:"audience"`
	UserName  string    `json:"userName,omitempty"`
	Message   string    `json:"message"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// EventEmail carries structured template fields only; the email gateway
// owns all markup.
type EventEmail struct {
	Recipient  string            `json:"recipient"`
	Subject    string            `json:"subject"`
	TemplateID string            `json:"templateId"`
	Fields     map[string]string `json:"fields"`
	CreatedAt  time.Time         `json:"createdAt"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
