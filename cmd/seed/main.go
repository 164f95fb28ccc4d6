// Seed loads a demo corpus of users and scheduling conversations, so the
// pipeline has something to analyze on a fresh install.
package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"sched-lab/domain"
	scherrors "sched-lab/errors"
	"sched-lab/repositories"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" required:"true"`
	BlugeFilepath  string `envconfig:"BLUGE_FILEPATH" required:"true"`
	// SEED_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"SEED_COLOURS" default:"true"`
}

type seedMessage struct {
	Name    string
	Email   string
	Content string
}

// Conversations are spaced an hour apart so the grouper treats each one as
// its own scheduling context.
var conversations = [][]seedMessage{
	{
		{"Alice Johnson", "alice@company.com", "Good morning team! How's everyone doing?"},
		{"Bob Smith", "bob@company.com", "Morning Alice! I'm doing well, just finished the user authentication feature."},
		{"Carol Davis", "carol@company.com", "Hi everyone! I'm working on the database optimization. Should we schedule a team standup meeting?"},
		{"David Wilson", "david@company.com", "Great idea Carol! I'm available tomorrow at 10 for a meeting."},
		{"Emma Brown", "emma@company.com", "I can join tomorrow at 10 AM too. Let's discuss the project progress."},
		{"Alice Johnson", "alice@company.com", "Perfect! Let's schedule the standup for tomorrow at 10 AM."},
	},
	{
		{"Bob Smith", "bob@company.com", "Hey team, I think we need to review the new feature implementation."},
		{"Alice Johnson", "alice@company.com", "Agreed Bob. When are you all available this week?"},
		{"Carol Davis", "carol@company.com", "I'm free on Wednesday afternoon, around 2."},
		{"David Wilson", "david@company.com", "Wednesday 2 PM works for me too."},
		{"Emma Brown", "emma@company.com", "I can make Wednesday at 2 PM. Let's schedule the project review meeting then."},
	},
	{
		{"Alice Johnson", "alice@company.com", "We have a new client project starting next week."},
		{"Bob Smith", "bob@company.com", "Great! When should we meet to discuss the requirements?"},
		{"Carol Davis", "carol@company.com", "I'm available Monday morning, around 9 AM."},
		{"David Wilson", "david@company.com", "Monday 9 AM works for me. Let's schedule the client meeting."},
		{"Emma Brown", "emma@company.com", "I can join Monday at 9 AM too. Should we prepare an agenda?"},
	},
	{
		{"Bob Smith", "bob@company.com", "We need to discuss the API architecture changes."},
		{"Carol Davis", "carol@company.com", "Good point Bob. When can we have a technical discussion?"},
		{"David Wilson", "david@company.com", "I'm free today at 3 PM for a call."},
		{"Emma Brown", "emma@company.com", "Today 3 PM works for me too."},
		{"Alice Johnson", "alice@company.com", "Perfect! Let's schedule the technical discussion for today at 3 PM."},
	},
	{
		{"Alice Johnson", "alice@company.com", "It's time for our sprint planning meeting."},
		{"Bob Smith", "bob@company.com", "When should we schedule it? I'm available Friday morning."},
		{"Carol Davis", "carol@company.com", "Friday morning works for me too. How about 11 AM?"},
		{"David Wilson", "david@company.com", "Friday 11 AM is perfect for me."},
		{"Emma Brown", "emma@company.com", "I can make Friday at 11 AM. Let's schedule the sprint planning meeting."},
	},
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	color.Enable = config.Colours

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("error while opening Badger: %w", err)
	}
	defer db.Close()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("error while opening Bluge: %w", err)
	}
	defer blugeWriter.Close()

	logger := logs.GetLoggerFromLevel(slog.LevelWarn)
	messages := repositories.NewMessageRepository(db, blugeWriter, logger)
	users := repositories.NewUserRepository(db)

	all := lo.Flatten(conversations)
	seedUsers := lo.UniqBy(all, func(m seedMessage) string { return m.Email })

	createdUsers := 0
	for _, u := range seedUsers {
		if _, err := users.CreateUser(u.Name, u.Email); err != nil {
			if errors.Is(err, scherrors.ErrUserAlreadyExists) {
				continue
			}
			return fmt.Errorf("error while creating user: %w", err)
		}
		createdUsers++
	}

	// Backdate each conversation so the whole corpus is in the recent past.
	start := time.Now().UTC().Add(-time.Duration(len(conversations)) * time.Hour)
	createdMessages := 0
	for i, conversation := range conversations {
		at := start.Add(time.Duration(i) * time.Hour)
		for _, m := range conversation {
			msg := domain.Message{
				ID:         uuid.New(),
				AuthorID:   m.Email,
				AuthorName: m.Name,
				Content:    m.Content,
				CreatedAt:  at,
			}
			if err := messages.StoreMessage(msg); err != nil {
				return fmt.Errorf("error while storing message: %w", err)
			}
			at = at.Add(2 * time.Minute)
			createdMessages++
		}
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Email"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	for _, u := range seedUsers {
		table.Append([]string{u.Name, u.Email})
	}
	table.Render()

	color.Green.Println(fmt.Sprintf("Seeded %d users and %d messages across %d conversations",
		createdUsers, createdMessages, len(conversations)))
	return nil
}
