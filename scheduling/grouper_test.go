package scheduling

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"sched-lab/domain"
)

func groupMessage(email, content string, at time.Time) domain.Message {
	return domain.Message{
		ID:         uuid.New(),
		AuthorID:   email,
		AuthorName: email,
		Content:    content,
		CreatedAt:  at,
	}
}

func TestGroupEmptyStream(t *testing.T) {
	assert := require.New(t)
	grouper := NewGrouper(DefaultWindow)
	assert.Nil(grouper.Group(nil))
}

func TestGroupKeepsRapidExchangeTogether(t *testing.T) {
	assert := require.New(t)
	grouper := NewGrouper(DefaultWindow)

	base := time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)
	contexts := grouper.Group([]domain.Message{
		groupMessage("alice@company.com", "Should we schedule a meeting?", base),
		groupMessage("alice@company.com", "Tomorrow works for me", base.Add(2*time.Minute)),
		groupMessage("alice@company.com", "ok let's say 10am", base.Add(4*time.Minute)),
	})

	assert.Len(contexts, 1)
	assert.Len(contexts[0].Messages, 3)
	assert.Equal("context-1", contexts[0].ID)
}

func TestGroupSplitsOnTimeWindow(t *testing.T) {
	assert := require.New(t)
	grouper := NewGrouper(DefaultWindow)

	base := time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)
	contexts := grouper.Group([]domain.Message{
		groupMessage("alice@company.com", "Morning meeting anyone?", base),
		groupMessage("alice@company.com", "Later: let's schedule something", base.Add(time.Hour)),
	})

	assert.Len(contexts, 2)
}

func TestGroupSplitsOnNewSpeaker(t *testing.T) {
	assert := require.New(t)
	grouper := NewGrouper(DefaultWindow)

	base := time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)
	contexts := grouper.Group([]domain.Message{
		groupMessage("alice@company.com", "Should we schedule a meeting?", base),
		groupMessage("bob@company.com", "Totally unrelated: schedule my vacation", base.Add(time.Minute)),
	})

	// A speaker who was not part of the context starts a new one.
	assert.Len(contexts, 2)
}

func TestGroupSplitsWithoutContinuityPhrase(t *testing.T) {
	assert := require.New(t)
	grouper := NewGrouper(DefaultWindow)

	base := time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)
	contexts := grouper.Group([]domain.Message{
		groupMessage("alice@company.com", "Nice weather today!", base),
		groupMessage("alice@company.com", "I saw a heron by the river", base.Add(time.Minute)),
	})

	assert.Len(contexts, 2)
}

func TestGroupSortsOutOfOrderInput(t *testing.T) {
	assert := require.New(t)
	grouper := NewGrouper(DefaultWindow)

	base := time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)
	second := groupMessage("alice@company.com", "how about 10am?", base.Add(time.Minute))
	first := groupMessage("alice@company.com", "time to schedule the review", base)

	contexts := grouper.Group([]domain.Message{second, first})
	assert.Len(contexts, 1)
	assert.Equal(first.ID, contexts[0].Messages[0].ID)
	assert.Equal(second.ID, contexts[0].Messages[1].ID)
}

func TestGroupZeroWindowFallsBackToDefault(t *testing.T) {
	assert := require.New(t)
	grouper := NewGrouper(0)

	base := time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)
	contexts := grouper.Group([]domain.Message{
		groupMessage("alice@company.com", "schedule?", base),
		groupMessage("alice@company.com", "yes", base.Add(10*time.Minute)),
	})
	assert.Len(contexts, 1)
}
