package producer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/beegy-labs/girok-resume-api/internal/dto"
	"github.com/beegy-labs/girok-resume-api/internal/metrics"
)

type ResumeProducer struct {
	sp              sarama.SyncProducer
	topicProfile    string
	topicEmployment string
	source          string
	log             zerolog.Logger
}

type Config struct {
	TopicProfile    string
	TopicEmployment string
	Source          string
}

func NewResumeProducer(sp sarama.SyncProducer, cfg Config, log zerolog.Logger) *ResumeProducer {
	return &ResumeProducer{
		sp:              sp,
		topicProfile:    cfg.TopicProfile,
		topicEmployment: cfg.TopicEmployment,
		source:          cfg.Source,
		log:             log.With().Str("component", "ResumeProducer").Logger(),
	}
}

func (p *ResumeProducer) Close() error {
	if p == nil || p.sp == nil {
		return nil
	}
	return p.sp.Close()
}

func (p *ResumeProducer) ProduceProfile(ctx context.Context, messageID uuid.UUID, profile dto.CandidateProfile) error {
	var payload ProfilePayload

	payload.EmployeeID = profile.EmployeeID
	payload.FirstName = strPtrOrEmpty(profile.FirstName)
	payload.LastName = strPtrOrEmpty(profile.LastName)
	payload.BirthDate = strPtrOrEmpty(profile.BirthDate)
	payload.Headline = strPtrOrEmpty(profile.Headline)
	payload.Contacts.Email = strPtrOrEmpty(profile.Email)
	payload.Contacts.Phone = strPtrOrEmpty(profile.Phone)

	body, err := json.Marshal(Envelope[ProfilePayload]{
		Kind:       "profile",
		MessageID:  messageID,
		EmployeeID: profile.EmployeeID,
		Payload:    payload,
		Timestamp:  time.Now().UTC(),
		Source:     p.source,
	})
	if err != nil {
		return fmt.Errorf("marshal profile envelope: %w", err)
	}

	return p.send(ctx, p.topicProfile, messageID.String(), body, map[string]string{
		"event-kind":   "profile",
		"source":       p.source,
		"content-type": "application/json",
	})
}

func (p *ResumeProducer) ProduceEmployment(ctx context.Context, messageID uuid.UUID, rec dto.EmploymentRecord) error {
	var payload EmploymentPayload

	payload.EmployeeID = rec.EmployeeID
	payload.Company = rec.Company
	payload.Position = strPtrOrEmpty(rec.Position)
	payload.Period.From = rec.PeriodFrom
	payload.Period.To = strPtrOrEmpty(rec.PeriodTo)
	payload.Period.IsCurrent = rec.IsCurrent
	payload.Stack = rec.Stack

	body, err := json.Marshal(Envelope[EmploymentPayload]{
		Kind:       "employment",
		MessageID:  messageID,
		EmployeeID: rec.EmployeeID,
		Payload:    payload,
		Timestamp:  time.Now().UTC(),
		Source:     p.source,
	})
	if err != nil {
		return fmt.Errorf("marshal employment envelope: %w", err)
	}

	return p.send(ctx, p.topicEmployment, messageID.String(), body, map[string]string{
		"event-kind":   "employment",
		"source":       p.source,
		"content-type": "application/json",
	})
}

func (p *ResumeProducer) send(_ context.Context, topic, key string, value []byte, headers map[string]string) error {
	if p == nil || p.sp == nil {
		return errors.New("sync producer is not initialized")
	}

	var hs []sarama.RecordHeader
	for k, v := range headers {
		hs = append(hs, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(value),
		Headers: hs,
	}

	part, off, err := p.sp.SendMessage(msg)
	if err != nil {
		p.log.Error().
			Err(err).
			Str("topic", topic).
			Str("key", key).
			Int("bytes", len(value)).
			Msg("failed to send kafka message")
		return fmt.Errorf("send kafka message: %w", err)
	}

	metrics.ProducedMessages.WithLabelValues(topic).Inc()

	p.log.Info().
		Str("topic", topic).
		Str("key", key).
		Int32("partition", part).
		Int64("offset", off).
		Int("bytes", len(value)).
		Msg("kafka message sent")
	return nil
}

func strPtrOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
