//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"sched-lab/domain"
	"sched-lab/errors"
)

type IUserRepository interface {
	CreateUser(name, email string) (domain.User, error)
	GetUserByEmail(email string) (domain.User, error)
	ListUsers() ([]domain.User, error)
	Resolve(displayName string) (string, bool)
}

// UserRepository persists known chat participants in BadgerDB. It also
// implements participants.Directory: display names resolve to the canonical
// email identity.
type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

type diskUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"created_at"`
}

func (u *UserRepository) CreateUser(name, email string) (domain.User, error) {
	user := domain.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(diskUser{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Unix(),
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		key := []byte("user:" + email)
		if _, err := txn.Get(key); err == nil {
			return errors.ErrUserAlreadyExists
		}
		return txn.Set(key, data)
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (u *UserRepository) GetUserByEmail(email string) (domain.User, error) {
	var disk diskUser
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("user:" + email))
		if err != nil {
			return errors.ErrNotFound
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &disk)
		})
	})
	if err != nil {
		return domain.User{}, err
	}
	return toUser(disk)
}

func (u *UserRepository) ListUsers() ([]domain.User, error) {
	var users []domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		prefix := []byte("user:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var disk diskUser
				if err := json.Unmarshal(val, &disk); err != nil {
					return err
				}
				user, err := toUser(disk)
				if err != nil {
					return err
				}
				users = append(users, user)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return users, nil
}

// Resolve matches a lowercased display name against the registered users,
// either by full name or by first name. Read-only: safe to call from
// concurrent analysis runs.
func (u *UserRepository) Resolve(displayName string) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(displayName))
	if name == "" {
		return "", false
	}
	users, err := u.ListUsers()
	if err != nil {
		return "", false
	}
	for _, user := range users {
		full := strings.ToLower(user.Name)
		if full == name || strings.HasPrefix(full, name+" ") {
			return user.Email, true
		}
	}
	return "", false
}

func toUser(disk diskUser) (domain.User, error) {
	id, err := uuid.Parse(disk.ID)
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{
		ID:        id,
		Name:      disk.Name,
		Email:     disk.Email,
		CreatedAt: time.Unix(disk.CreatedAt, 0).UTC(),
	}, nil
}
