package runtime

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
	"voice-relay/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrchestrator_Same_Chat_Turns_Never_Interleave(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	var inFlight, maxInFlight atomic.Int32

	f.completion.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, history []domain.Message, _ domain.Identity) (domain.Message, error) {
			current := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				seen := maxInFlight.Load()
				if current <= seen || maxInFlight.CompareAndSwap(seen, current) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			// The history always ends with the message of this turn
			return domain.NewAssistantMessage("ack " + history[len(history)-1].Content), nil
		}).
		Times(5)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = f.orchestrator.HandleText(context.Background(), allowed(), "ping")
		}()
	}
	wg.Wait()

	req.Equal(int32(1), maxInFlight.Load())
	session := f.snapshot(allowedChat)
	req.Len(session.Messages, 10)
	for i, message := range session.Messages {
		if i%2 == 0 {
			req.Equal(domain.RoleUser, message.Role)
		} else {
			req.Equal(domain.NewAssistantMessage("ack ping"), message)
		}
	}
}
