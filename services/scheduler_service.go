//go:generate go run go.uber.org/mock/mockgen -source=scheduler_service.go -destination=../mocks/services/mock_scheduler_service.go -package=servicemocks
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"sched-lab/domain"
	"sched-lab/notify"
	"sched-lab/observability"
	"sched-lab/repositories"
	"sched-lab/scheduling"
)

type ISchedulerService interface {
	RecordMessage(authorID, authorName, content string) (domain.Message, error)
	RunScheduling(ctx context.Context) ([]domain.Meeting, error)
	Statistics() (Statistics, error)
}

// Statistics summarizes the stored corpus for the dashboard endpoint.
type Statistics struct {
	TotalMessages      int                         `json:"total_messages"`
	TotalUsers         int                         `json:"total_users"`
	TotalMeetings      int                         `json:"total_meetings"`
	UniqueParticipants int                         `json:"unique_participants"`
	LastMessageAt      *time.Time                  `json:"last_message_at,omitempty"`
	Pipeline           observability.PipelineStats `json:"pipeline"`
}

// SchedulerService drives the full pipeline: persist incoming messages, cut
// the history into conversation contexts, analyze each context and turn
// actionable proposals into confirmed meetings.
type SchedulerService struct {
	messages     repositories.IMessageRepository
	meetings     repositories.IMeetingRepository
	users        repositories.IUserRepository
	grouper      *scheduling.Grouper
	analyzer     *scheduling.Analyzer
	notifier     notify.Notifier
	monitoring   *observability.MonitoringManager
	threshold    float64
	historyLimit int
	now          func() time.Time
	log          *slog.Logger
}

func NewSchedulerService(
	messages repositories.IMessageRepository,
	meetings repositories.IMeetingRepository,
	users repositories.IUserRepository,
	grouper *scheduling.Grouper,
	analyzer *scheduling.Analyzer,
	notifier notify.Notifier,
	monitoring *observability.MonitoringManager,
	threshold float64,
	historyLimit int,
	log *slog.Logger,
) *SchedulerService {
	return &SchedulerService{
		messages:     messages,
		meetings:     meetings,
		users:        users,
		grouper:      grouper,
		analyzer:     analyzer,
		notifier:     notifier,
		monitoring:   monitoring,
		threshold:    threshold,
		historyLimit: historyLimit,
		now:          time.Now,
		log:          log,
	}
}

func (s *SchedulerService) RecordMessage(authorID, authorName, content string) (domain.Message, error) {
	msg := domain.Message{
		ID:         uuid.New(),
		AuthorID:   authorID,
		AuthorName: authorName,
		Content:    content,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.messages.StoreMessage(msg); err != nil {
		return domain.Message{}, err
	}
	s.monitoring.IncrMessagesStored()
	return msg, nil
}

// RunScheduling analyzes the recent history and schedules a meeting for every
// actionable proposal. Contexts without scheduling intent are skipped
// silently; a notification failure is logged and counted but never undoes an
// already scheduled meeting.
func (s *SchedulerService) RunScheduling(ctx context.Context) ([]domain.Meeting, error) {
	history, err := s.messages.GetMessages(s.historyLimit)
	if err != nil {
		return nil, err
	}

	ref := s.now().UTC()
	var scheduled []domain.Meeting
	for _, conv := range s.grouper.Group(history) {
		proposal, ok, err := s.analyzer.Analyze(conv, ref, s.threshold)
		s.monitoring.IncrAnalysesRun()
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		meeting := domain.Meeting{
			ID:           uuid.New(),
			Date:         proposal.Date.Format("2006-01-02"),
			Time:         proposal.Time.String(),
			Participants: proposal.Participants,
			Title:        proposal.Title,
			Description:  proposal.Description,
			Status:       domain.StatusScheduled,
			CreatedAt:    s.now().UTC(),
		}
		if err := s.meetings.CreateMeeting(meeting); err != nil {
			return scheduled, err
		}
		s.monitoring.IncrMeetingsScheduled()
		s.log.Info("Meeting scheduled",
			"id", meeting.ID,
			"date", meeting.Date,
			"time", meeting.Time,
			"confidence", proposal.Confidence,
			"participants", len(meeting.Participants),
		)

		if err := s.notifier.SendMeetingConfirmation(ctx, meeting, meeting.Participants); err != nil {
			s.monitoring.IncrNotificationFailures()
			s.log.Error("Confirmation delivery failed", "meeting", meeting.ID, "error", err)
		}
		scheduled = append(scheduled, meeting)
	}
	return scheduled, nil
}

func (s *SchedulerService) Statistics() (Statistics, error) {
	history, err := s.messages.GetMessages(0)
	if err != nil {
		return Statistics{}, err
	}
	users, err := s.users.ListUsers()
	if err != nil {
		return Statistics{}, err
	}
	meetings, err := s.meetings.ListMeetings()
	if err != nil {
		return Statistics{}, err
	}

	authors := make(map[string]struct{})
	for _, msg := range history {
		authors[msg.AuthorID] = struct{}{}
	}

	stats := Statistics{
		TotalMessages:      len(history),
		TotalUsers:         len(users),
		TotalMeetings:      len(meetings),
		UniqueParticipants: len(authors),
		Pipeline:           s.monitoring.GetLatest(),
	}
	if len(history) > 0 {
		last := history[len(history)-1].CreatedAt
		stats.LastMessageAt = &last
	}
	return stats, nil
}
