package repositories

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"voice-relay/domain"

	"github.com/dgraph-io/badger/v4"
)

const (
	KindUser         = "USER"
	KindConversation = "CONVERSATION"
	KindRaw          = "RAW"
)

// Entry is a human-readable view of one stored key, used by inspection tools.
type Entry struct {
	Key    string
	Kind   string
	Owner  string
	At     time.Time
	Detail string
}

// DescribeEntry decodes a raw key/value pair. Unknown keys come back as RAW.
func DescribeEntry(key string, val []byte) (Entry, error) {
	entry := Entry{Key: key, Kind: KindRaw, Detail: fmt.Sprintf("Size: %d bytes", len(val))}
	switch {
	case strings.HasPrefix(key, userPrefix):
		var user domain.User
		if err := json.Unmarshal(val, &user); err != nil {
			return entry, fmt.Errorf("failed to unmarshal %s: %w", key, err)
		}
		entry.Kind = KindUser
		entry.Owner = user.ExternalID
		entry.At = user.CreatedAt
		entry.Detail = fmt.Sprintf("%s (@%s) id=%s", user.FirstName, user.Username, user.ID)
	case strings.HasPrefix(key, conversationPrefix):
		var conversation domain.Conversation
		if err := json.Unmarshal(val, &conversation); err != nil {
			return entry, fmt.Errorf("failed to unmarshal %s: %w", key, err)
		}
		entry.Kind = KindConversation
		entry.Owner = conversation.UserID
		entry.At = conversation.CreatedAt
		entry.Detail = fmt.Sprintf("%d messages: %s", len(conversation.Messages), conversation.Label())
	}
	return entry, nil
}

// ScanEntries describes every key under prefix, in key order.
func ScanEntries(db *badger.DB, prefix string) ([]Entry, error) {
	var entries []Entry
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				entry, err := DescribeEntry(string(item.Key()), val)
				if err != nil {
					return err
				}
				entries = append(entries, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return entries, err
}

// ConversationPrefix is the key prefix holding every conversation of userID.
func ConversationPrefix(userID string) string {
	return fmt.Sprintf("%s%s:", conversationPrefix, userID)
}
