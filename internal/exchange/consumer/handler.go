package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"

	"github.com/beegy-labs/girok-resume-api/internal/dto"
	"github.com/beegy-labs/girok-resume-api/internal/metrics"
)

type kind string

const (
	kindProfile    kind = "profile"
	kindEmployment kind = "employment"
)

type handler struct {
	kind        kind
	events      EventsRepository
	profiles    ProfileRepository
	employments EmploymentRepository
	log         zerolog.Logger
	commitOnDLQ bool
}

func (h *handler) Setup(_ sarama.ConsumerGroupSession) error   { return nil }
func (h *handler) Cleanup(_ sarama.ConsumerGroupSession) error { return nil }

func (h *handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		switch h.kind {
		case kindProfile:
			var env Envelope[ProfilePayload]
			if err := json.Unmarshal(msg.Value, &env); err != nil {
				h.toDLQ(sess.Context(), msg, fmt.Sprintf("invalid_json: %v", err))
				if h.commitOnDLQ {
					sess.MarkMessage(msg, "")
				}
				continue
			}
			if ok := h.processProfile(sess, msg, env); ok {
				metrics.ConsumedMessages.WithLabelValues(msg.Topic, "ok").Inc()
				sess.MarkMessage(msg, "")
			}
		case kindEmployment:
			var env Envelope[EmploymentPayload]
			if err := json.Unmarshal(msg.Value, &env); err != nil {
				h.toDLQ(sess.Context(), msg, fmt.Sprintf("invalid_json: %v", err))
				if h.commitOnDLQ {
					sess.MarkMessage(msg, "")
				}
				continue
			}
			if ok := h.processEmployment(sess, msg, env); ok {
				metrics.ConsumedMessages.WithLabelValues(msg.Topic, "ok").Inc()
				sess.MarkMessage(msg, "")
			}
		default:
			h.log.Error().Str("kind", string(h.kind)).Msg("unknown consumer kind")
			sess.MarkMessage(msg, "")
		}
	}
	return nil
}

func (h *handler) toDLQ(ctx context.Context, msg *sarama.ConsumerMessage, reason string) {
	_ = h.events.InsertDLQ(ctx, dto.KafkaDLQ{
		Topic:   msg.Topic,
		Key:     string(msg.Key),
		Payload: string(msg.Value),
		Error:   reason,
	})

	metrics.ConsumedMessages.WithLabelValues(msg.Topic, "dlq").Inc()

	h.log.Warn().
		Str("topic", msg.Topic).
		Int32("partition", msg.Partition).
		Int64("offset", msg.Offset).
		Str("reason", reason).
		Msg("message sent to DLQ")
}
