package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/garaga28/Librario/pkg/kafka"
	"go.uber.org/zap"
)

type Audience string

const (
	AudienceLibrarians Audience = "allLibrarians"
	AudienceMember     Audience = "specificUser"
)

// Notifier is the fire-and-forget contract towards the notification and
// email gateways. Emission failure never rolls back the triggering state
// transition; errors are logged and swallowed.
type Notifier interface {
	Notify(ctx context.Context, audience Audience, userName, message, category string)
	SendEmail(ctx context.Context, recipient, subject, templateID string, fields map[string]string)
}

type kafkaNotifier struct {
	producer sarama.SyncProducer
	log      *zap.Logger
}

func New(producer sarama.SyncProducer, log *zap.Logger) Notifier {
	return &kafkaNotifier{
		producer: producer,
		log:      log.Named("notify"),
	}
}

func (n *kafkaNotifier) Notify(_ context.Context, audience Audience, userName, message, category string) {
	n.publish(kafka.NotificationTopic, kafka.EventNotification{
		Audience:  string(audience),
		UserName:  userName,
		Message:   message,
		Category:  category,
		CreatedAt: time.Now().UTC(),
	})
}

func (n *kafkaNotifier) SendEmail(_ context.Context, recipient, subject, templateID string, fields map[string]string) {
	n.publish(kafka.EmailTopic, kafka.EventEmail{
		Recipient:  recipient,
		Subject:    subject,
		TemplateID: templateID,
		Fields:     fields,
		CreatedAt:  time.Now().UTC(),
	})
}

func (n *kafkaNotifier) publish(topic string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		n.log.Error("marshal event", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.StringEncoder(data)}
	if _, _, err := n.producer.SendMessage(msg); err != nil {
		n.log.Error("publish event", zap.String("topic", topic), zap.Error(err))
	}
}

// Nop returns a Notifier that drops everything; used when the broker is
// not configured and in tests.
func Nop() Notifier { return nopNotifier{} }

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, Audience, string, string, string) {}
func (nopNotifier) SendEmail(context.Context, string, string, string, map[string]string) {
}
