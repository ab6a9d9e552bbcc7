package services

import (
	"errors"
	"testing"
	"time"

	"github.com/callshield/callshield-backend/internal/models"
)

func TestCreateConversationDefaultsTitle(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	service := NewConversationService(db)

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "explicit title", title: "Spam questions", want: "Spam questions"},
		{name: "empty title", title: "", want: models.DefaultConversationTitle},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			conversation, err := service.Create(user.ID, test.title)
			if err != nil {
				t.Fatalf("create failed: %v", err)
			}
			if conversation.Title != test.want {
				t.Fatalf("title = %q, want %q", conversation.Title, test.want)
			}
		})
	}
}

func TestSendMessageAppendsPairAndBumpsUpdatedAt(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	user := createTestUser(t, db, "bob")
	service := NewConversationService(db)

	conversation, err := service.Create(user.ID, "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	createdUpdatedAt := conversation.UpdatedAt

	time.Sleep(20 * time.Millisecond)

	reply, err := service.SendMessage(user.ID, conversation.ID, "how do I block a number?")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if reply.Role != models.RoleAssistant {
		t.Fatalf("returned message role = %q, want assistant", reply.Role)
	}
	if reply.Content == "" {
		t.Fatalf("expected canned assistant reply")
	}

	messages, err := service.ListMessages(user.ID, conversation.ID)
	if err != nil {
		t.Fatalf("list messages failed: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("message count = %d, want 2", len(messages))
	}
	if messages[0].Role != models.RoleUser || messages[1].Role != models.RoleAssistant {
		t.Fatalf("roles = %q, %q; want user then assistant", messages[0].Role, messages[1].Role)
	}
	if messages[0].Content != "how do I block a number?" {
		t.Fatalf("user message content = %q", messages[0].Content)
	}

	var reloaded models.Conversation
	if err := db.First(&reloaded, "id = ?", conversation.ID).Error; err != nil {
		t.Fatalf("reload conversation: %v", err)
	}
	if !reloaded.UpdatedAt.After(createdUpdatedAt) {
		t.Fatalf("updatedAt not bumped: %v -> %v", createdUpdatedAt, reloaded.UpdatedAt)
	}
}

func TestSendMessageYieldsExactlyTwoRowsPerSend(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	user := createTestUser(t, db, "carol")
	service := NewConversationService(db)

	conversation, err := service.Create(user.ID, "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	for i := 1; i <= 3; i++ {
		if _, err := service.SendMessage(user.ID, conversation.ID, "ping"); err != nil {
			t.Fatalf("send %d failed: %v", i, err)
		}
		var count int64
		if err := db.Model(&models.Message{}).Where("conversation_id = ?", conversation.ID).Count(&count).Error; err != nil {
			t.Fatalf("count messages: %v", err)
		}
		if count != int64(2*i) {
			t.Fatalf("message count after send %d = %d, want %d", i, count, 2*i)
		}
	}
}

func TestConversationOwnershipChecks(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	owner := createTestUser(t, db, "dave")
	stranger := createTestUser(t, db, "erin")
	service := NewConversationService(db)

	conversation, err := service.Create(owner.ID, "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := service.ListMessages(stranger.ID, conversation.ID); !errors.Is(err, ErrConversationNotFound) {
		t.Fatalf("stranger list error = %v, want ErrConversationNotFound", err)
	}
	if _, err := service.SendMessage(stranger.ID, conversation.ID, "hi"); !errors.Is(err, ErrConversationNotFound) {
		t.Fatalf("stranger send error = %v, want ErrConversationNotFound", err)
	}
	if _, err := service.ListMessages(owner.ID, conversation.ID+1000); !errors.Is(err, ErrConversationNotFound) {
		t.Fatalf("missing id error = %v, want ErrConversationNotFound", err)
	}
}

func TestListConversationsOrderedByActivity(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	user := createTestUser(t, db, "frank")
	service := NewConversationService(db)

	first, err := service.Create(user.ID, "first")
	if err != nil {
		t.Fatalf("create first failed: %v", err)
	}
	second, err := service.Create(user.ID, "second")
	if err != nil {
		t.Fatalf("create second failed: %v", err)
	}

	time.Sleep(20 * time.Millisecond)
	if _, err := service.SendMessage(user.ID, first.ID, "wake up"); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	conversations, err := service.List(user.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(conversations) != 2 {
		t.Fatalf("conversation count = %d, want 2", len(conversations))
	}
	if conversations[0].ID != first.ID {
		t.Fatalf("expected recently active conversation first, got %d", conversations[0].ID)
	}
	if conversations[1].ID != second.ID {
		t.Fatalf("expected idle conversation last, got %d", conversations[1].ID)
	}
}
