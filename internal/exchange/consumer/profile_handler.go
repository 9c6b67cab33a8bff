package consumer

import (
	"fmt"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/beegy-labs/girok-resume-api/internal/dto"
)

func NewProfileRunner(
	bootstrap string,
	topic string,
	groupID string,
	events EventsRepository,
	profiles ProfileRepository,
	log zerolog.Logger,
) *Runner {
	h := &handler{
		kind:        kindProfile,
		events:      events,
		profiles:    profiles,
		employments: nil,
		log:         log.With().Str("consumer", "profile").Logger(),
		commitOnDLQ: false,
	}

	return newRunner(bootstrap, groupID, topic, h, log)
}

func (h *handler) processProfile(sess sarama.ConsumerGroupSession, msg *sarama.ConsumerMessage, env Envelope[ProfilePayload]) bool {
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

	if verr := validateProfile(env.Payload); verr != "" {
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
		h.toDLQ(ctx, msg, fmt.Sprintf("events.InsertEvent: db error insert profile: %s", err.Error()))

		return h.commitOnDLQ
	}

	profile := dto.CandidateProfile{
		EmployeeID: env.EmployeeID,
		FirstName:  strptr(env.Payload.FirstName),
		LastName:   strptr(env.Payload.LastName),
		BirthDate:  strptr(env.Payload.BirthDate),
		Email:      strptr(env.Payload.Contacts.Email),
		Phone:      strptr(env.Payload.Contacts.Phone),
		Headline:   strptr(env.Payload.Headline),
	}

	if err := h.profiles.UpsertProfile(ctx, profile); err != nil {
		h.toDLQ(ctx, msg, fmt.Sprintf("profiles.UpsertProfile: db error upsert profile: %s", err.Error()))

		return h.commitOnDLQ
	}

	return true
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
