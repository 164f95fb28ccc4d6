//go:generate go run go.uber.org/mock/mockgen -source=meeting.go -destination=../mocks/mock_meeting_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"sched-lab/domain"
	"sched-lab/errors"
)

type IMeetingRepository interface {
	CreateMeeting(meeting domain.Meeting) error
	GetMeeting(id uuid.UUID) (domain.Meeting, error)
	ListMeetings() ([]domain.Meeting, error)
	UpdateStatus(id uuid.UUID, status domain.MeetingStatus) error
}

type MeetingRepository struct {
	db *badger.DB
}

func NewMeetingRepository(db *badger.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

type diskMeeting struct {
	ID           string   `json:"id"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Participants []string `json:"participants"`
	Title        string   `json:"title,omitempty"`
	Description  string   `json:"description,omitempty"`
	Status       string   `json:"status"`
	CreatedAt    int64    `json:"created_at"`
}

func (r *MeetingRepository) CreateMeeting(meeting domain.Meeting) error {
	data, err := json.Marshal(fromMeeting(meeting))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("meeting:"+meeting.ID.String()), data)
	})
}

func (r *MeetingRepository) GetMeeting(id uuid.UUID) (domain.Meeting, error) {
	var disk diskMeeting
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("meeting:" + id.String()))
		if err != nil {
			return errors.ErrNotFound
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &disk)
		})
	})
	if err != nil {
		return domain.Meeting{}, err
	}
	return toMeeting(disk)
}

// ListMeetings returns every meeting, most recently created first.
func (r *MeetingRepository) ListMeetings() ([]domain.Meeting, error) {
	var meetings []domain.Meeting
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte("meeting:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var disk diskMeeting
				if err := json.Unmarshal(val, &disk); err != nil {
					return err
				}
				meeting, err := toMeeting(disk)
				if err != nil {
					return err
				}
				meetings = append(meetings, meeting)
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
	sort.Slice(meetings, func(i, j int) bool {
		return meetings[i].CreatedAt.After(meetings[j].CreatedAt)
	})
	return meetings, nil
}

func (r *MeetingRepository) UpdateStatus(id uuid.UUID, status domain.MeetingStatus) error {
	switch status {
	case domain.StatusScheduled, domain.StatusCancelled, domain.StatusCompleted:
	default:
		return errors.ErrInvalidStatus
	}

	meeting, err := r.GetMeeting(id)
	if err != nil {
		return err
	}
	meeting.Status = status
	return r.CreateMeeting(meeting)
}

func fromMeeting(m domain.Meeting) diskMeeting {
	return diskMeeting{
		ID:           m.ID.String(),
		Date:         m.Date,
		Time:         m.Time,
		Participants: m.Participants,
		Title:        m.Title,
		Description:  m.Description,
		Status:       string(m.Status),
		CreatedAt:    m.CreatedAt.UnixNano(),
	}
}

func toMeeting(disk diskMeeting) (domain.Meeting, error) {
	id, err := uuid.Parse(disk.ID)
	if err != nil {
		return domain.Meeting{}, err
	}
	return domain.Meeting{
		ID:           id,
		Date:         disk.Date,
		Time:         disk.Time,
		Participants: disk.Participants,
		Title:        disk.Title,
		Description:  disk.Description,
		Status:       domain.MeetingStatus(disk.Status),
		CreatedAt:    time.Unix(0, disk.CreatedAt).UTC(),
	}, nil
}
