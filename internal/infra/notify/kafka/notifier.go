// Package kafka publishes report outcomes to a Kafka topic as JSON.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gabapcia/oraclewatch/internal/contractcall"
	"github.com/gabapcia/oraclewatch/internal/oracle"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafka.Writer the notifier uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type notifier struct {
	writer messageWriter
}

var _ oracle.ReportNotifier = (*notifier)(nil)

// NewNotifier creates a notifier writing to topic on brokers. Messages are
// keyed by target ID, so outcomes of one target keep their order.
func NewNotifier(brokers []string, topic string) *notifier {
	return &notifier{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

// outcomeMessage is the wire shape of an oracle.Outcome.
type outcomeMessage struct {
	ReportID   string            `json:"report_id"`
	TargetID   string            `json:"target_id"`
	Status     string            `json:"status"`
	Occurred   bool              `json:"event_occurred"`
	EventTime  *int64            `json:"event_time,omitempty"`
	Confidence string            `json:"confidence,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	TxHash     string            `json:"tx_hash,omitempty"`
	TxStatus   string            `json:"tx_status,omitempty"`
	Ledger     uint32            `json:"ledger,omitempty"`
	Polls      int               `json:"polls,omitempty"`
	Result     any               `json:"result,omitempty"`
	Error      string            `json:"error,omitempty"`
	ReportedAt time.Time         `json:"reported_at"`
}

func newOutcomeMessage(o oracle.Outcome) outcomeMessage {
	msg := outcomeMessage{
		ReportID:   o.ReportID,
		TargetID:   o.TargetID,
		Status:     string(o.Status),
		Occurred:   o.Params.EventOccurred,
		EventTime:  o.Params.EventTime,
		Confidence: o.Event.Confidence,
		Attributes: o.Event.Attributes,
		ReportedAt: o.ReportedAt.UTC(),
	}

	if o.Err != nil {
		msg.Error = o.Err.Error()
	}

	if tx := o.Transaction; tx != nil {
		msg.TxHash = tx.Hash
		msg.TxStatus = tx.Status.String()
		msg.Ledger = tx.Ledger
		msg.Polls = tx.Polls
		if tx.ReturnValue != nil {
			msg.Result = contractcall.Decode(*tx.ReturnValue)
		}
	}

	return msg
}

func (n *notifier) NotifyReport(ctx context.Context, outcome oracle.Outcome) error {
	value, err := json.Marshal(newOutcomeMessage(outcome))
	if err != nil {
		return err
	}

	return n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(outcome.TargetID),
		Value: value,
		Time:  outcome.ReportedAt,
	})
}

func (n *notifier) Close() error {
	return n.writer.Close()
}
