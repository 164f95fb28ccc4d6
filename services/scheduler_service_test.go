package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sched-lab/domain"
	"sched-lab/lexical"
	"sched-lab/mocks"
	"sched-lab/observability"
	"sched-lab/participants"
	"sched-lab/scheduling"
	"sched-lab/scoring"
)

func newTestService(t *testing.T, ctrl *gomock.Controller) (*SchedulerService, *mocks.MockIMessageRepository, *mocks.MockIMeetingRepository, *mocks.MockIUserRepository, *mocks.MockNotifier) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	scanner, err := lexical.NewScanner(lexical.Vocabularies())
	require.NoError(t, err)

	directory := mocks.NewMockDirectory(ctrl)
	directory.EXPECT().Resolve(gomock.Any()).Return("", false).AnyTimes()

	messages := mocks.NewMockIMessageRepository(ctrl)
	meetings := mocks.NewMockIMeetingRepository(ctrl)
	users := mocks.NewMockIUserRepository(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	service := NewSchedulerService(
		messages, meetings, users,
		scheduling.NewGrouper(scheduling.DefaultWindow),
		scheduling.NewAnalyzer(scanner, participants.NewResolver(directory, log), scoring.DefaultWeights(), log),
		notifier,
		observability.NewMonitoringManager(log),
		scheduling.DefaultThreshold,
		100,
		log,
	)
	service.now = func() time.Time {
		return time.Date(2024, time.March, 4, 10, 30, 0, 0, time.UTC)
	}
	return service, messages, meetings, users, notifier
}

func schedulingHistory() []domain.Message {
	base := time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)
	return []domain.Message{
		{
			ID:         uuid.New(),
			AuthorID:   "alice@company.com",
			AuthorName: "Alice Martin",
			Content:    "Can we schedule a quick meeting tomorrow at 3pm?",
			CreatedAt:  base,
		},
		{
			ID:         uuid.New(),
			AuthorID:   "alice@company.com",
			AuthorName: "Alice Martin",
			Content:    "I'm available, that time works for me",
			CreatedAt:  base.Add(2 * time.Minute),
		},
	}
}

func TestRecordMessagePersists(t *testing.T) {
	assert := require.New(t)
	ctrl := gomock.NewController(t)
	service, messages, _, _, _ := newTestService(t, ctrl)

	var stored domain.Message
	messages.EXPECT().StoreMessage(gomock.Any()).DoAndReturn(func(msg domain.Message) error {
		stored = msg
		return nil
	})

	msg, err := service.RecordMessage("alice@company.com", "Alice Martin", "hello")
	assert.NoError(err)
	assert.Equal(stored.ID, msg.ID)
	assert.Equal("alice@company.com", stored.AuthorID)
	assert.Equal(time.Date(2024, time.March, 4, 10, 30, 0, 0, time.UTC), stored.CreatedAt)
}

func TestRecordMessageStorageFailure(t *testing.T) {
	assert := require.New(t)
	ctrl := gomock.NewController(t)
	service, messages, _, _, _ := newTestService(t, ctrl)

	messages.EXPECT().StoreMessage(gomock.Any()).Return(errors.New("disk full"))

	_, err := service.RecordMessage("alice@company.com", "Alice Martin", "hello")
	assert.Error(err)
}

func TestRunSchedulingCreatesMeeting(t *testing.T) {
	assert := require.New(t)
	ctrl := gomock.NewController(t)
	service, messages, meetings, _, notifier := newTestService(t, ctrl)

	messages.EXPECT().GetMessages(100).Return(schedulingHistory(), nil)

	var created domain.Meeting
	meetings.EXPECT().CreateMeeting(gomock.Any()).DoAndReturn(func(m domain.Meeting) error {
		created = m
		return nil
	})
	notifier.EXPECT().SendMeetingConfirmation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	scheduled, err := service.RunScheduling(context.Background())
	assert.NoError(err)
	assert.Len(scheduled, 1)
	assert.Equal("2024-03-05", created.Date)
	assert.Equal("15:00", created.Time)
	assert.Equal(domain.StatusScheduled, created.Status)
	assert.Equal([]string{"alice@company.com"}, created.Participants)
}

func TestRunSchedulingSkipsOrdinaryChat(t *testing.T) {
	assert := require.New(t)
	ctrl := gomock.NewController(t)
	service, messages, _, _, _ := newTestService(t, ctrl)

	history := []domain.Message{
		{
			ID:         uuid.New(),
			AuthorID:   "bob@company.com",
			AuthorName: "Bob Chen",
			Content:    "Did you watch the game last night?",
			CreatedAt:  time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC),
		},
	}
	messages.EXPECT().GetMessages(100).Return(history, nil)

	scheduled, err := service.RunScheduling(context.Background())
	assert.NoError(err)
	assert.Empty(scheduled)
}

func TestRunSchedulingSurvivesNotificationFailure(t *testing.T) {
	assert := require.New(t)
	ctrl := gomock.NewController(t)
	service, messages, meetings, _, notifier := newTestService(t, ctrl)

	messages.EXPECT().GetMessages(100).Return(schedulingHistory(), nil)
	meetings.EXPECT().CreateMeeting(gomock.Any()).Return(nil)
	notifier.EXPECT().SendMeetingConfirmation(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	scheduled, err := service.RunScheduling(context.Background())
	assert.NoError(err)
	assert.Len(scheduled, 1)
}

func TestStatistics(t *testing.T) {
	assert := require.New(t)
	ctrl := gomock.NewController(t)
	service, messages, meetings, users, _ := newTestService(t, ctrl)

	history := schedulingHistory()
	messages.EXPECT().GetMessages(0).Return(history, nil)
	users.EXPECT().ListUsers().Return([]domain.User{{Email: "alice@company.com"}, {Email: "bob@company.com"}}, nil)
	meetings.EXPECT().ListMeetings().Return([]domain.Meeting{{ID: uuid.New()}}, nil)

	stats, err := service.Statistics()
	assert.NoError(err)
	assert.Equal(2, stats.TotalMessages)
	assert.Equal(2, stats.TotalUsers)
	assert.Equal(1, stats.TotalMeetings)
	assert.Equal(1, stats.UniqueParticipants)
	assert.NotNil(stats.LastMessageAt)
	assert.Equal(history[1].CreatedAt, *stats.LastMessageAt)
}
