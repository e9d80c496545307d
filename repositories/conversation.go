//go:generate go run go.uber.org/mock/mockgen -source=conversation.go -destination=../mocks/mock_conversation_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
	"voice-relay/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const conversationPrefix = "conversation:"

type IConversationRepository interface {
	StoreConversation(userID string, messages []domain.Message) (domain.Conversation, error)
	GetConversations(userID string) ([]domain.Conversation, error)
}

type ConversationRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewConversationRepository(db *badger.DB, log *slog.Logger) ConversationRepository {
	return ConversationRepository{db: db, log: log}
}

// StoreConversation persists a new conversation in BadgerDB.
// The key is formatted as "conversation:{user_id}:{timestamp_padded}:{uuid}" to:
//  1. Keep every conversation of a user under a single prefix.
//  2. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  3. Prevent collisions with the UUID if two conversations share the same nanosecond.
func (r ConversationRepository) StoreConversation(userID string, messages []domain.Message) (domain.Conversation, error) {
	conversation := domain.Conversation{
		ID:        uuid.NewString(),
		UserID:    userID,
		Messages:  messages,
		CreatedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(conversation)
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("marshal failed: %w", err)
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(conversationKey(conversation), data)
	})
	if err != nil {
		return domain.Conversation{}, err
	}
	return conversation, nil
}

// GetConversations retrieves every conversation of a user using a prefix scan,
// oldest first thanks to the padded timestamp in the key.
func (r ConversationRepository) GetConversations(userID string) ([]domain.Conversation, error) {
	conversations := make([]domain.Conversation, 0)
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(ConversationPrefix(userID))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				var conversation domain.Conversation
				if err := json.Unmarshal(val, &conversation); err != nil {
					return fmt.Errorf("failed to unmarshal %s: %w", item.Key(), err)
				}
				conversations = append(conversations, conversation)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.log.Debug("Conversations loaded", "user_id", userID, "count", len(conversations))
	return conversations, nil
}

func conversationKey(c domain.Conversation) []byte {
	return []byte(fmt.Sprintf("%s%s:%019d:%s",
		conversationPrefix,
		c.UserID,
		c.CreatedAt.UnixNano(),
		c.ID,
	))
}
