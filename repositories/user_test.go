package repositories

import (
	"sync"
	"testing"
	"voice-relay/domain"
	"voice-relay/errors"

	"github.com/stretchr/testify/require"
)

func TestUserRepository_Upsert_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openInMemoryDB(t))
	identity := domain.Identity{ExternalID: "1001", FirstName: "Ada", Username: "ada"}

	// When the same identity is upserted twice
	first, err := repository.UpsertUser(identity)
	req.NoError(err)
	second, err := repository.UpsertUser(identity)
	req.NoError(err)

	// Then the same logical user is returned
	req.NotEmpty(first.ID)
	req.Equal(first.ID, second.ID)
	req.Equal("1001", second.ExternalID)
	req.Equal("Ada", second.FirstName)
	req.Equal("ada", second.Username)
}

func TestUserRepository_Upsert_Never_Mutates_Existing_User(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openInMemoryDB(t))

	created, err := repository.UpsertUser(domain.Identity{ExternalID: "1001", FirstName: "Ada"})
	req.NoError(err)

	// When the transport reports a new first name
	again, err := repository.UpsertUser(domain.Identity{ExternalID: "1001", FirstName: "Grace"})
	req.NoError(err)

	// Then the stored record is untouched
	req.Equal(created.ID, again.ID)
	req.Equal("Ada", again.FirstName)
}

func TestUserRepository_Upsert_Concurrently(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openInMemoryDB(t))
	identity := domain.Identity{ExternalID: "1001"}

	var wg sync.WaitGroup
	ids := make([]string, 8)
	errs := make([]error, 8)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user, err := repository.UpsertUser(identity)
			ids[i], errs[i] = user.ID, err
		}(i)
	}
	wg.Wait()

	for i := range ids {
		req.NoError(errs[i])
		req.Equal(ids[0], ids[i])
	}
}

func TestUserRepository_GetUserByExternalID_Not_Found(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openInMemoryDB(t))

	_, err := repository.GetUserByExternalID("unknown")

	req.ErrorIs(err, errors.ErrUserNotFound)
}
