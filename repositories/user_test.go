package repositories

import (
	"testing"

	db "github.com/mama165/sdk-go/database"
	"github.com/stretchr/testify/require"

	"sched-lab/errors"
)

func TestUserRepository_CreateAndFetch(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := db.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer db.CleanupDB(badgerDB, blugeWriter)

	repo := NewUserRepository(badgerDB)

	created, err := repo.CreateUser("Alice Johnson", "alice@company.com")
	req.NoError(err)
	req.Equal("alice@company.com", created.Email)

	fetched, err := repo.GetUserByEmail("alice@company.com")
	req.NoError(err)
	req.Equal(created.ID, fetched.ID)
	req.Equal("Alice Johnson", fetched.Name)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := db.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer db.CleanupDB(badgerDB, blugeWriter)

	repo := NewUserRepository(badgerDB)

	_, err = repo.CreateUser("Alice Johnson", "alice@company.com")
	req.NoError(err)

	_, err = repo.CreateUser("Alice Jackson", "alice@company.com")
	req.ErrorIs(err, errors.ErrUserAlreadyExists)
}

func TestUserRepository_UnknownEmail(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := db.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer db.CleanupDB(badgerDB, blugeWriter)

	repo := NewUserRepository(badgerDB)

	_, err = repo.GetUserByEmail("ghost@company.com")
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestUserRepository_ListIsSortedByEmail(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := db.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer db.CleanupDB(badgerDB, blugeWriter)

	repo := NewUserRepository(badgerDB)

	_, err = repo.CreateUser("Carol Davis", "carol@company.com")
	req.NoError(err)
	_, err = repo.CreateUser("Alice Johnson", "alice@company.com")
	req.NoError(err)

	users, err := repo.ListUsers()
	req.NoError(err)
	req.Len(users, 2)
	req.Equal("alice@company.com", users[0].Email)
	req.Equal("carol@company.com", users[1].Email)
}

func TestUserRepository_Resolve(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := db.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer db.CleanupDB(badgerDB, blugeWriter)

	repo := NewUserRepository(badgerDB)
	_, err = repo.CreateUser("Carol Davis", "carol@company.com")
	req.NoError(err)

	tests := []struct {
		name      string
		display   string
		wantEmail string
		wantOK    bool
	}{
		{name: "first name", display: "carol", wantEmail: "carol@company.com", wantOK: true},
		{name: "full name", display: "Carol Davis", wantEmail: "carol@company.com", wantOK: true},
		{name: "case insensitive", display: "CAROL", wantEmail: "carol@company.com", wantOK: true},
		{name: "unknown", display: "mallory", wantOK: false},
		{name: "empty", display: "  ", wantOK: false},
		{name: "prefix of first name only", display: "car", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, ok := repo.Resolve(tt.display)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.wantEmail, email)
		})
	}
}
