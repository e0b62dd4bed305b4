// Package mailbox stores pending encrypted messages per recipient and hands
// each one to at most one fetch.
package mailbox

import (
	"context"
	"time"

	"e2e_relay/internal/model"
	messageRepo "e2e_relay/internal/repository/message"
	"e2e_relay/internal/service/registry"
	apperrors "e2e_relay/pkg/errors"
)

type (
	Service struct {
		registry *registry.Service
		messages messageRepo.Repository
	}
)

func NewService(registry *registry.Service, messages messageRepo.Repository) *Service {
	return &Service{
		registry: registry,
		messages: messages,
	}
}

// Send validates both parties against the registry and appends the message.
// The payload is never inspected.
func (s *Service) Send(ctx context.Context, sender, recipient, encrypted string) (int64, error) {
	if sender == "" {
		return 0, apperrors.InvalidInput("sender cannot be empty")
	}
	if recipient == "" {
		return 0, apperrors.InvalidInput("recipient cannot be empty")
	}
	if encrypted == "" {
		return 0, apperrors.InvalidInput("encrypted payload cannot be empty")
	}

	if ok, err := s.registry.Exists(ctx, sender); err != nil {
		return 0, err
	} else if !ok {
		return 0, apperrors.SenderUnknown("sender is not registered")
	}

	if ok, err := s.registry.Exists(ctx, recipient); err != nil {
		return 0, err
	} else if !ok {
		return 0, apperrors.RecipientUnknown("recipient is not registered")
	}

	msg := &model.Message{
		Sender:    sender,
		Recipient: recipient,
		Encrypted: encrypted,
		Timestamp: time.Now().UTC(),
	}

	id, err := s.messages.Append(ctx, msg)
	if err != nil {
		return 0, apperrors.Internal("store message failed", err)
	}
	return id, nil
}

// FetchAndPurge removes and returns every message pending for recipient, in
// insertion order. A message returned here is gone; no later fetch sees it.
func (s *Service) FetchAndPurge(ctx context.Context, recipient string) ([]model.Message, error) {
	if ok, err := s.registry.Exists(ctx, recipient); err != nil {
		return nil, err
	} else if !ok {
		return nil, apperrors.RecipientUnknown("recipient is not registered")
	}

	messages, err := s.messages.Drain(ctx, recipient)
	if err != nil {
		return nil, apperrors.Internal("drain mailbox failed", err)
	}
	return messages, nil
}
