//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"
	"voice-relay/domain"
	"voice-relay/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const userPrefix = "user:"

type IUserRepository interface {
	UpsertUser(identity domain.Identity) (domain.User, error)
	GetUserByExternalID(externalID string) (domain.User, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

// UpsertUser returns the user stored under identity.ExternalID, creating it on first use.
// The lookup and the insert share one transaction; when two upserts race on the same
// identity badger reports a conflict and the winner's record is read back instead.
func (u UserRepository) UpsertUser(identity domain.Identity) (domain.User, error) {
	var user domain.User
	err := u.db.Update(func(txn *badger.Txn) error {
		key := userKey(identity.ExternalID)
		item, err := txn.Get(key)
		switch {
		case err == nil:
			return item.Value(func(val []byte) error {
				return json.Unmarshal(val, &user)
			})
		case !stderrors.Is(err, badger.ErrKeyNotFound):
			return err
		}

		user = domain.User{
			ID:         uuid.NewString(),
			ExternalID: identity.ExternalID,
			FirstName:  identity.FirstName,
			Username:   identity.Username,
			CreatedAt:  time.Now().UTC(),
		}
		data, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("marshal failed: %w", err)
		}
		return txn.Set(key, data)
	})
	if stderrors.Is(err, badger.ErrConflict) {
		return u.GetUserByExternalID(identity.ExternalID)
	}
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// GetUserByExternalID retrieves a user by the identity the transport knows it by.
func (u UserRepository) GetUserByExternalID(externalID string) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(externalID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &user)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.User{}, errors.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func userKey(externalID string) []byte {
	return []byte(userPrefix + externalID)
}
