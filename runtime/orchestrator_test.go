package runtime

import (
	"context"
	"fmt"
	"testing"
	"time"
	"voice-relay/domain"
	"voice-relay/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrchestrator_HandleText_Appends_User_Then_Assistant(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	// Given the completion service answers
	f.completion.EXPECT().
		Complete(gomock.Any(), []domain.Message{domain.NewUserMessage("Hello")}, caller).
		Return(domain.NewAssistantMessage("Hi there"), nil).
		Times(1)

	// When a text arrives from the allowed chat
	err := f.orchestrator.HandleText(context.Background(), allowed(), "Hello")

	// Then the buffer holds the exchange and the user can decide
	req.NoError(err)
	session := f.snapshot(allowedChat)
	req.Equal(domain.StateAwaitingDecision, session.State)
	req.Equal([]domain.Message{
		domain.NewUserMessage("Hello"),
		domain.NewAssistantMessage("Hi there"),
	}, session.Messages)

	// And the reply carries exactly one "save and close" action
	replies := f.replier.For(allowedChat)
	req.Len(replies, 2)
	req.Equal(waitNotice, replies[0].Text)
	req.Equal("Hi there", replies[1].Text)
	req.Len(replies[1].Actions, 1)
	req.Equal(domain.SaveConversation{}, replies[1].Actions[0].Action)
}

func TestOrchestrator_HandleText_Continues_Conversation(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	gomock.InOrder(
		f.completion.EXPECT().
			Complete(gomock.Any(), []domain.Message{domain.NewUserMessage("one")}, caller).
			Return(domain.NewAssistantMessage("1"), nil),
		f.completion.EXPECT().
			Complete(gomock.Any(), []domain.Message{
				domain.NewUserMessage("one"),
				domain.NewAssistantMessage("1"),
				domain.NewUserMessage("two"),
			}, caller).
			Return(domain.NewAssistantMessage("2"), nil),
	)

	req.NoError(f.orchestrator.HandleText(context.Background(), allowed(), "one"))
	req.NoError(f.orchestrator.HandleText(context.Background(), allowed(), "two"))

	session := f.snapshot(allowedChat)
	req.Len(session.Messages, 4)
	req.Equal(domain.NewAssistantMessage("2"), session.Messages[3])
}

func TestOrchestrator_Refuses_Other_Chats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := map[string]func() error{
		"text":   func() error { return f.orchestrator.HandleText(ctx, intruder(), "Hello") },
		"voice":  func() error { return f.orchestrator.HandleVoice(ctx, intruder(), "file-1") },
		"action": func() error { return f.orchestrator.HandleAction(ctx, intruder(), "save_conversation") },
		"list":   func() error { return f.orchestrator.ListConversations(ctx, intruder()) },
		"start":  func() error { return f.orchestrator.StartOver(ctx, intruder(), StartGreeting) },
	}

	// No collaborator may be called
	f.completion.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.audio.EXPECT().FetchAndTranscode(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.store.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).Times(0)

	for name, handle := range cases {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			before := len(f.replier.For(intruderChat))

			err := handle()

			req.ErrorIs(err, errors.ErrChatNotAllowed)
			replies := f.replier.For(intruderChat)
			req.Len(replies, before+1)
			req.Equal(refusalNotice, replies[len(replies)-1].Text)
			req.Empty(f.snapshot(intruderChat).Messages)
			req.Equal(domain.StateIdle, f.snapshot(intruderChat).State)
		})
	}
}

func TestOrchestrator_HandleText_Blank_Is_A_Silent_No_Op(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.completion.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for _, text := range []string{"", "   ", "\n\t"} {
		err := f.orchestrator.HandleText(context.Background(), allowed(), text)
		req.ErrorIs(err, errors.ErrEmptyText)
	}

	req.Empty(f.replier.For(allowedChat))
	req.Empty(f.snapshot(allowedChat).Messages)
	req.Equal(domain.StateIdle, f.snapshot(allowedChat).State)
}

func TestOrchestrator_HandleText_Completion_Failure_Keeps_Buffer(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.completion.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Message{}, fmt.Errorf("upstream 500: secret internals")).
		Times(1)

	err := f.orchestrator.HandleText(context.Background(), allowed(), "Hello")

	// Then the failure is reported without leaking details
	req.ErrorIs(err, errors.ErrCompletion)
	replies := f.replier.Texts(allowedChat)
	req.Equal([]string{waitNotice, failureNotice}, replies)

	// And the user message stays buffered
	session := f.snapshot(allowedChat)
	req.Equal(domain.StateAwaitingDecision, session.State)
	req.Equal([]domain.Message{domain.NewUserMessage("Hello")}, session.Messages)
}

func TestOrchestrator_HandleText_Empty_Completion_Is_A_Failure(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.completion.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.NewAssistantMessage("  "), nil).
		Times(1)

	err := f.orchestrator.HandleText(context.Background(), allowed(), "Hello")

	req.ErrorIs(err, errors.ErrEmptyCompletion)
	req.Equal([]string{waitNotice, failureNotice}, f.replier.Texts(allowedChat))
	req.Len(f.snapshot(allowedChat).Messages, 1)
}

func TestOrchestrator_HandleText_Completion_Timeout(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.orchestrator.timeouts.Completion = 20 * time.Millisecond

	// Given a completion service that never answers
	f.completion.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ []domain.Message, _ domain.Identity) (domain.Message, error) {
			<-ctx.Done()
			return domain.Message{}, ctx.Err()
		}).
		Times(1)

	start := time.Now()
	err := f.orchestrator.HandleText(context.Background(), allowed(), "Hello")

	// Then the turn ends as a normal failure instead of hanging
	req.ErrorIs(err, context.DeadlineExceeded)
	req.ErrorIs(err, errors.ErrCompletion)
	req.Less(time.Since(start), time.Second)
	req.Equal(domain.StateAwaitingDecision, f.snapshot(allowedChat).State)
}

func TestOrchestrator_Save_Persists_And_Resets(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	user := domain.User{ID: "user-1", ExternalID: "1001"}
	exchange := []domain.Message{domain.NewUserMessage("Hello"), domain.NewAssistantMessage("Hi there")}

	f.completion.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.NewAssistantMessage("Hi there"), nil)
	f.store.EXPECT().UpsertUser(gomock.Any(), caller).Return(user, nil).Times(1)
	f.store.EXPECT().SaveConversation(gomock.Any(), exchange, "user-1").
		Return(domain.Conversation{ID: uuid.NewString(), UserID: "user-1", Messages: exchange}, nil).
		Times(1)

	req.NoError(f.orchestrator.HandleText(ctx, allowed(), "Hello"))

	// When the user saves
	err := f.orchestrator.HandleAction(ctx, allowed(), "save_conversation")

	// Then the buffer is empty and the session is idle
	req.NoError(err)
	session := f.snapshot(allowedChat)
	req.Empty(session.Messages)
	req.Equal(domain.StateIdle, session.State)
	replies := f.replier.Texts(allowedChat)
	req.Equal(savedNotice, replies[len(replies)-1])

	// And a second save is a no-op
	err = f.orchestrator.HandleAction(ctx, allowed(), "save_conversation")
	req.ErrorIs(err, errors.ErrNothingToSave)
	replies = f.replier.Texts(allowedChat)
	req.Equal(nothingToSaveNotice, replies[len(replies)-1])
}

func TestOrchestrator_Save_Failure_Keeps_Buffer(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()

	f.completion.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.NewAssistantMessage("Hi there"), nil)
	f.store.EXPECT().UpsertUser(gomock.Any(), caller).Return(domain.User{ID: "user-1"}, nil)
	f.store.EXPECT().SaveConversation(gomock.Any(), gomock.Any(), "user-1").
		Return(domain.Conversation{}, errors.ErrPersistence)

	req.NoError(f.orchestrator.HandleText(ctx, allowed(), "Hello"))

	err := f.orchestrator.HandleAction(ctx, allowed(), "save_conversation")

	req.ErrorIs(err, errors.ErrPersistence)
	session := f.snapshot(allowedChat)
	req.Len(session.Messages, 2)
	req.Equal(domain.StateAwaitingDecision, session.State)
}

func TestOrchestrator_Save_Timeout_Keeps_Buffer(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	f.orchestrator.timeouts.Persistence = 20 * time.Millisecond

	f.completion.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.NewAssistantMessage("Hi there"), nil)
	f.store.EXPECT().UpsertUser(gomock.Any(), caller).Return(domain.User{ID: "user-1"}, nil)
	// Given a store that never acknowledges the write
	f.store.EXPECT().SaveConversation(gomock.Any(), gomock.Any(), "user-1").
		DoAndReturn(func(ctx context.Context, _ []domain.Message, _ string) (domain.Conversation, error) {
			<-ctx.Done()
			return domain.Conversation{}, ctx.Err()
		})
	req.NoError(f.orchestrator.HandleText(ctx, allowed(), "Hello"))

	start := time.Now()
	err := f.orchestrator.HandleAction(ctx, allowed(), "save_conversation")

	// Then the save fails with the generic notice and nothing is lost
	req.ErrorIs(err, context.DeadlineExceeded)
	req.Less(time.Since(start), time.Second)
	req.Equal([]string{waitNotice, "Hi there", failureNotice}, f.replier.Texts(allowedChat))
	session := f.snapshot(allowedChat)
	req.Equal(domain.StateAwaitingDecision, session.State)
	req.Equal([]domain.Message{domain.NewUserMessage("Hello"), domain.NewAssistantMessage("Hi there")}, session.Messages)
}

func TestOrchestrator_HandleAction_Rejects_Invalid_Token(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	err := f.orchestrator.HandleAction(context.Background(), allowed(), "delete-123")

	req.ErrorIs(err, errors.ErrInvalidAction)
	req.Empty(f.replier.For(allowedChat))
}

func TestOrchestrator_ListConversations_Empty(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()

	f.store.EXPECT().UpsertUser(gomock.Any(), caller).Return(domain.User{ID: "user-1"}, nil)
	f.store.EXPECT().ListConversations(gomock.Any(), "user-1").Return([]domain.Conversation{}, nil)

	err := f.orchestrator.ListConversations(ctx, allowed())

	req.NoError(err)
	req.Equal([]string{noConversationsNotice}, f.replier.Texts(allowedChat))
	session := f.snapshot(allowedChat)
	req.Empty(session.Conversations)
	req.Equal(domain.StateIdle, session.State)
}

func TestOrchestrator_ListConversations_Then_View(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	older := domain.Conversation{
		ID: uuid.NewString(), UserID: "user-1", CreatedAt: time.Now().Add(-time.Hour),
		Messages: []domain.Message{domain.NewUserMessage("first question"), domain.NewAssistantMessage("answer")},
	}
	newer := domain.Conversation{
		ID: uuid.NewString(), UserID: "user-1", CreatedAt: time.Now(),
		Messages: []domain.Message{domain.NewUserMessage("second question")},
	}

	f.store.EXPECT().UpsertUser(gomock.Any(), caller).Return(domain.User{ID: "user-1"}, nil)
	f.store.EXPECT().ListConversations(gomock.Any(), "user-1").Return([]domain.Conversation{newer, older}, nil)

	// When the user lists conversations
	req.NoError(f.orchestrator.ListConversations(ctx, allowed()))

	// Then each one is offered, labelled by its first message
	replies := f.replier.For(allowedChat)
	req.Len(replies, 1)
	req.Equal(conversationsTitle, replies[0].Text)
	req.Len(replies[0].Actions, 2)
	req.Equal("first question", replies[0].Actions[0].Label)
	req.Equal(domain.ViewConversation{ConversationID: older.ID}, replies[0].Actions[0].Action)
	req.Equal("second question", replies[0].Actions[1].Label)
	req.Len(f.snapshot(allowedChat).Conversations, 2)

	// When one is selected
	req.NoError(f.orchestrator.HandleAction(ctx, allowed(), "conversation-"+older.ID))

	// Then its transcript is rendered read-only
	replies = f.replier.For(allowedChat)
	req.Len(replies, 2)
	req.Equal(older.Messages, replies[1].Transcript)
	req.Empty(f.snapshot(allowedChat).Messages)
}

func TestOrchestrator_View_Unknown_Conversation(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	err := f.orchestrator.HandleAction(context.Background(), allowed(), "conversation-"+uuid.NewString())

	req.ErrorIs(err, errors.ErrConversationNotFound)
	req.Equal([]string{notFoundNotice}, f.replier.Texts(allowedChat))
	req.Equal(domain.StateIdle, f.snapshot(allowedChat).State)
}

func TestOrchestrator_View_Non_Uuid_Id_Is_Not_Found(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	// Given an id the store never issued
	// When the user selects it
	err := f.orchestrator.HandleAction(context.Background(), allowed(), "conversation-not-a-uuid")

	// Then the user gets the not found reply
	req.ErrorIs(err, errors.ErrConversationNotFound)
	req.Equal([]string{notFoundNotice}, f.replier.Texts(allowedChat))
}

func TestOrchestrator_ListConversations_Store_Failure(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.store.EXPECT().UpsertUser(gomock.Any(), caller).Return(domain.User{}, errors.ErrPersistence)

	err := f.orchestrator.ListConversations(context.Background(), allowed())

	req.ErrorIs(err, errors.ErrPersistence)
	req.Equal([]string{failureNotice}, f.replier.Texts(allowedChat))
}

func TestOrchestrator_StartOver_Resets_Session(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()

	f.completion.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.NewAssistantMessage("Hi there"), nil)
	req.NoError(f.orchestrator.HandleText(ctx, allowed(), "Hello"))

	req.NoError(f.orchestrator.StartOver(ctx, allowed(), NewGreeting))

	session := f.snapshot(allowedChat)
	req.Empty(session.Messages)
	req.Equal(domain.StateIdle, session.State)
	replies := f.replier.Texts(allowedChat)
	req.Equal(NewGreeting, replies[len(replies)-1])
}

func TestOrchestrator_Status_Admin_Only(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()

	stranger := domain.Inbound{ChatID: allowedChat, Caller: domain.Identity{ExternalID: "2002"}}
	req.ErrorIs(f.orchestrator.Status(ctx, stranger), errors.ErrNotAdmin)
	req.Empty(f.replier.For(allowedChat))

	req.NoError(f.orchestrator.Status(ctx, allowed()))
	req.Equal([]string{fmt.Sprintf(statusFormat, 0)}, f.replier.Texts(allowedChat))
}
