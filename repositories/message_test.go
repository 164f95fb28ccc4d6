package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	db "github.com/mama165/sdk-go/database"
	"github.com/stretchr/testify/require"

	"sched-lab/domain"
)

func newMessage(email, name, content string, at time.Time) domain.Message {
	return domain.Message{
		ID:         uuid.New(),
		AuthorID:   email,
		AuthorName: name,
		Content:    content,
		CreatedAt:  at,
	}
}

func TestMessageRepository_StoreAndFetch(t *testing.T) {
	req := require.New(t)
	_, log, badgerDB, blugeWriter, err := db.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer db.CleanupDB(badgerDB, blugeWriter)

	repo := NewMessageRepository(badgerDB, blugeWriter, log)

	base := time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)
	first := newMessage("alice@company.com", "Alice Johnson", "Should we schedule a standup?", base)
	second := newMessage("bob@company.com", "Bob Smith", "Tomorrow at 10 works for me", base.Add(time.Minute))

	req.NoError(repo.StoreMessage(first))
	req.NoError(repo.StoreMessage(second))

	fetched, err := repo.GetMessages(0)
	req.NoError(err)
	req.Len(fetched, 2)

	// Chronological order, oldest first
	req.Equal(first.ID, fetched[0].ID)
	req.Equal(second.ID, fetched[1].ID)
	req.Equal("Should we schedule a standup?", fetched[0].Content)
	req.Equal(base, fetched[0].CreatedAt)
}

func TestMessageRepository_LimitKeepsNewest(t *testing.T) {
	req := require.New(t)
	_, log, badgerDB, blugeWriter, err := db.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer db.CleanupDB(badgerDB, blugeWriter)

	repo := NewMessageRepository(badgerDB, blugeWriter, log)

	base := time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		msg := newMessage("alice@company.com", "Alice Johnson",
			fmt.Sprintf("message %d", i), base.Add(time.Duration(i)*time.Minute))
		req.NoError(repo.StoreMessage(msg))
	}

	fetched, err := repo.GetMessages(2)
	req.NoError(err)
	req.Len(fetched, 2)
	req.Equal("message 3", fetched[0].Content)
	req.Equal("message 4", fetched[1].Content)
}

func TestMessageRepository_GetMessagesByAuthor(t *testing.T) {
	req := require.New(t)
	_, log, badgerDB, blugeWriter, err := db.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer db.CleanupDB(badgerDB, blugeWriter)

	repo := NewMessageRepository(badgerDB, blugeWriter, log)

	base := time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)
	req.NoError(repo.StoreMessage(newMessage("alice@company.com", "Alice Johnson", "first", base)))
	req.NoError(repo.StoreMessage(newMessage("bob@company.com", "Bob Smith", "second", base.Add(time.Minute))))
	req.NoError(repo.StoreMessage(newMessage("alice@company.com", "Alice Johnson", "third", base.Add(2*time.Minute))))

	fetched, err := repo.GetMessagesByAuthor("alice@company.com")
	req.NoError(err)
	req.Len(fetched, 2)
	req.Equal("first", fetched[0].Content)
	req.Equal("third", fetched[1].Content)
}

func TestMessageRepository_Search(t *testing.T) {
	req := require.New(t)
	ctx, log, badgerDB, blugeWriter, err := db.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer db.CleanupDB(badgerDB, blugeWriter)

	repo := NewMessageRepository(badgerDB, blugeWriter, log)

	base := time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)
	hit := newMessage("alice@company.com", "Alice Johnson", "Let's review the budget forecast", base)
	req.NoError(repo.StoreMessage(hit))
	req.NoError(repo.StoreMessage(newMessage("bob@company.com", "Bob Smith", "Lunch anyone?", base.Add(time.Minute))))

	time.Sleep(50 * time.Millisecond)

	results, err := repo.Search(ctx, "budget", 10)
	req.NoError(err)
	req.Len(results, 1)
	req.Equal(hit.ID, results[0].ID)
}

func TestMessageRepository_SearchWithoutMatches(t *testing.T) {
	req := require.New(t)
	ctx, log, badgerDB, blugeWriter, err := db.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer db.CleanupDB(badgerDB, blugeWriter)

	repo := NewMessageRepository(badgerDB, blugeWriter, log)

	results, err := repo.Search(ctx, "nothing", 10)
	req.NoError(err)
	req.Empty(results)
}
