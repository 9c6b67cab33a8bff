package consumer

import (
	"fmt"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/beegy-labs/girok-resume-api/internal/dto"
)

func NewEmploymentRunner(
	bootstrap string,
	topic string,
	groupID string,
	events EventsRepository,
	employments EmploymentRepository,
	log zerolog.Logger,
) *Runner {
	h := &handler{
		kind:        kindEmployment,
		events:      events,
		profiles:    nil,
		employments: employments,
		log:         log.With().Str("consumer", "employment").Logger(),
		commitOnDLQ: false,
	}

	return newRunner(bootstrap, groupID, topic, h, log)
}

func (h *handler) processEmployment(sess sarama.ConsumerGroupSession, msg *sarama.ConsumerMessage, env Envelope[EmploymentPayload]) bool {
	ctx := sess.Context()

	if env.MessageID == uuid.Nil || env.EmployeeID == "" {
		h.toDLQ(ctx, msg, "missing_required_field")
		return h.commitOnDLQ
	}

	exists, err := h.events.ExistsMessage(ctx, env.MessageID)
	if err != nil {
		h.toDLQ(ctx, msg, fmt.Sprintf("events.ExistsMessage: db error exists: %s", err.Error()))
		return h.commitOnDLQ
	}
	if exists {
		h.log.Info().Str("message_id", env.MessageID.String()).Str("employee_id", env.EmployeeID).Msg("duplicate message, skip (idempotency)")
		return true
	}

	if verr := validateEmployment(env.Payload); verr != "" {
		h.toDLQ(ctx, msg, verr)
		return h.commitOnDLQ
	}

	if err := h.events.InsertEvent(ctx, dto.KafkaEvent{
		MessageID: env.MessageID,
		Topic:     msg.Topic,
		Key:       string(msg.Key),
		Partition: int(msg.Partition),
		Offset:    msg.Offset,
		Payload:   append([]byte(nil), msg.Value...),
	}); err != nil {
		h.toDLQ(ctx, msg, fmt.Sprintf("events.InsertEvent: db error insert employment: %s", err.Error()))

		return h.commitOnDLQ
	}

	rec := dto.EmploymentRecord{
		EmployeeID: env.EmployeeID,
		Company:    env.Payload.Company,
		Position:   nil,
		PeriodFrom: env.Payload.Period.From,
		IsCurrent:  env.Payload.Period.IsCurrent,
		Stack:      append([]string(nil), env.Payload.Stack...),
	}
	if env.Payload.Position != "" {
		pos := env.Payload.Position
		rec.Position = &pos
	}
	if !env.Payload.Period.IsCurrent {
		to := env.Payload.Period.To
		rec.PeriodTo = &to
	}

	if err := h.employments.Insert(ctx, rec); err != nil {
		h.toDLQ(ctx, msg, fmt.Sprintf("employments.Insert: db error insert employment: %s", err.Error()))

		return h.commitOnDLQ
	}

	return true
}
