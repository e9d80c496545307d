package services

import (
	"context"
	"fmt"
	"voice-relay/contract"
	"voice-relay/domain"
	"voice-relay/errors"
	"voice-relay/repositories"
)

var _ contract.IPersistenceGateway = (*PersistenceService)(nil)

// PersistenceService is the document store gateway used by the orchestrator.
// Badger calls are local and not cancellable, so the context is only checked
// before each call.
type PersistenceService struct {
	userRepository         repositories.IUserRepository
	conversationRepository repositories.IConversationRepository
}

func NewPersistenceService(
	userRepository repositories.IUserRepository,
	conversationRepository repositories.IConversationRepository) *PersistenceService {
	return &PersistenceService{
		userRepository:         userRepository,
		conversationRepository: conversationRepository,
	}
}

func (s *PersistenceService) UpsertUser(ctx context.Context, identity domain.Identity) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	// Validate before touching the store, a user without identity cannot be found again.
	if err := domain.Validate(identity); err != nil {
		return domain.User{}, fmt.Errorf("%w: invalid identity: %v", errors.ErrPersistence, err)
	}
	user, err := s.userRepository.UpsertUser(identity)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: upsert user: %v", errors.ErrPersistence, err)
	}
	return user, nil
}

func (s *PersistenceService) SaveConversation(ctx context.Context, messages []domain.Message, userID string) (domain.Conversation, error) {
	if err := ctx.Err(); err != nil {
		return domain.Conversation{}, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	if len(messages) == 0 {
		return domain.Conversation{}, errors.ErrNothingToSave
	}
	conversation, err := s.conversationRepository.StoreConversation(userID, messages)
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("%w: store conversation: %v", errors.ErrPersistence, err)
	}
	return conversation, nil
}

func (s *PersistenceService) ListConversations(ctx context.Context, userID string) ([]domain.Conversation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	conversations, err := s.conversationRepository.GetConversations(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list conversations: %v", errors.ErrPersistence, err)
	}
	return conversations, nil
}
