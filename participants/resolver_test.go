package participants

import (
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sched-lab/domain"
	"sched-lab/mocks"
)

func message(email, content string) domain.Message {
	return domain.Message{
		ID:         uuid.New(),
		AuthorID:   email,
		AuthorName: email,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}
}

func conversation(messages ...domain.Message) domain.Conversation {
	return domain.Conversation{ID: "context-1", Messages: messages}
}

func TestResolveAuthorsOnly(t *testing.T) {
	assert := require.New(t)
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockDirectory(ctrl)
	directory.EXPECT().Resolve(gomock.Any()).Return("", false).AnyTimes()

	resolver := NewResolver(directory, logs.GetLoggerFromLevel(slog.LevelDebug))

	got := resolver.Resolve(conversation(
		message("bob@company.com", "When works for you?"),
		message("alice@company.com", "Thursday is fine"),
		message("bob@company.com", "Thursday it is"),
	))
	assert.Equal([]string{"alice@company.com", "bob@company.com"}, got)
}

func TestResolveRecognizedMention(t *testing.T) {
	assert := require.New(t)
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockDirectory(ctrl)
	directory.EXPECT().Resolve("carol").Return("carol@company.com", true)

	resolver := NewResolver(directory, logs.GetLoggerFromLevel(slog.LevelDebug))

	got := resolver.Resolve(conversation(
		message("alice@company.com", "Let's sync with Carol tomorrow"),
	))
	assert.Equal([]string{"alice@company.com", "carol@company.com"}, got)
}

func TestResolveUnknownMentionIsIgnored(t *testing.T) {
	assert := require.New(t)
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockDirectory(ctrl)
	directory.EXPECT().Resolve("zorblax").Return("", false)

	resolver := NewResolver(directory, logs.GetLoggerFromLevel(slog.LevelDebug))

	got := resolver.Resolve(conversation(
		message("alice@company.com", "Let's meet Zorblax later"),
	))
	assert.Equal([]string{"alice@company.com"}, got)
}

func TestResolveCollectiveWordsNeverReachTheDirectory(t *testing.T) {
	assert := require.New(t)
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockDirectory(ctrl)
	// No EXPECT for "team" or "everyone": a directory call would fail the test.

	resolver := NewResolver(directory, logs.GetLoggerFromLevel(slog.LevelDebug))

	got := resolver.Resolve(conversation(
		message("alice@company.com", "Let's sync with team, meet everyone at noon"),
	))
	assert.Equal([]string{"alice@company.com"}, got)
}

func TestResolveConjunctionPair(t *testing.T) {
	assert := require.New(t)
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockDirectory(ctrl)
	directory.EXPECT().Resolve("carol").Return("carol@company.com", true)
	directory.EXPECT().Resolve("david").Return("david@company.com", true)

	resolver := NewResolver(directory, logs.GetLoggerFromLevel(slog.LevelDebug))

	got := resolver.Resolve(conversation(
		message("alice@company.com", "Carol and David should both join"),
	))
	assert.Equal([]string{"alice@company.com", "carol@company.com", "david@company.com"}, got)
}

func TestResolveDeterministicOrder(t *testing.T) {
	assert := require.New(t)
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockDirectory(ctrl)
	directory.EXPECT().Resolve(gomock.Any()).Return("", false).AnyTimes()

	resolver := NewResolver(directory, logs.GetLoggerFromLevel(slog.LevelDebug))

	conv := conversation(
		message("carol@company.com", "ping"),
		message("alice@company.com", "pong"),
		message("bob@company.com", "ping"),
	)
	first := resolver.Resolve(conv)
	for i := 0; i < 10; i++ {
		assert.Equal(first, resolver.Resolve(conv))
	}
}
