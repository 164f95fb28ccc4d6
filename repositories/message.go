//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"sched-lab/domain"
)

type IMessageRepository interface {
	StoreMessage(msg domain.Message) error
	GetMessages(limit int) ([]domain.Message, error)
	GetMessagesByAuthor(email string) ([]domain.Message, error)
	Search(ctx context.Context, terms string, limit int) ([]domain.Message, error)
}

// MessageRepository persists the chat stream in BadgerDB and mirrors message
// text into a Bluge index for full-text search.
type MessageRepository struct {
	db    *badger.DB
	index *bluge.Writer
	log   *slog.Logger
}

func NewMessageRepository(db *badger.DB, index *bluge.Writer, log *slog.Logger) *MessageRepository {
	return &MessageRepository{db: db, index: index, log: log}
}

type diskMessage struct {
	ID         string `json:"id"`
	AuthorID   string `json:"author_id"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	At         int64  `json:"at"` // unix nanoseconds
}

// StoreMessage persists a message under a chronologically sortable key.
// The 19-digit zero padding keeps lexicographical order aligned with time
// order; the UUID suffix disambiguates two messages arriving at the same
// nanosecond.
func (r *MessageRepository) StoreMessage(msg domain.Message) error {
	key := messageKey(msg)
	bytes, err := json.Marshal(fromMessage(msg))
	if err != nil {
		return err
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
	if err != nil {
		return err
	}

	doc := bluge.NewDocument(key).
		AddField(bluge.NewTextField("content", msg.Content)).
		AddField(bluge.NewTextField("author", msg.AuthorName))
	if err := r.index.Update(doc.ID(), doc); err != nil {
		// Search lags behind, but the message itself is durable.
		r.log.Error("Indexing message failed", "key", key, "error", err)
	}
	return nil
}

// GetMessages returns up to limit of the most recent messages, oldest first.
func (r *MessageRepository) GetMessages(limit int) ([]domain.Message, error) {
	var raw [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte("msg:")
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Seek past the newest possible key, then walk backwards.
		seekKey := append([]byte{}, prefix...)
		seekKey = append(seekKey, []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(raw) == limit {
				break
			}
			err := it.Item().Value(func(value []byte) error {
				raw = append(raw, append([]byte{}, value...))
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

	messages := make([]domain.Message, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- { // reverse back to chronological order
		msg, err := unmarshalMessage(raw[i])
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// GetMessagesByAuthor returns the author's messages, oldest first.
func (r *MessageRepository) GetMessagesByAuthor(email string) ([]domain.Message, error) {
	all, err := r.GetMessages(0)
	if err != nil {
		return nil, err
	}
	var out []domain.Message
	for _, msg := range all {
		if msg.AuthorID == email {
			out = append(out, msg)
		}
	}
	return out, nil
}

// Search runs a full-text match over message content and resolves the hits
// back to their Badger records.
func (r *MessageRepository) Search(ctx context.Context, terms string, limit int) ([]domain.Message, error) {
	reader, err := r.index.Reader()
	if err != nil {
		return nil, fmt.Errorf("opening index reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	query := bluge.NewMatchQuery(terms).SetField("content")
	dmi, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}

	var keys []string
	for {
		match, err := dmi.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				keys = append(keys, string(value))
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	}

	var messages []domain.Message
	err = r.db.View(func(txn *badger.Txn) error {
		for _, key := range keys {
			item, err := txn.Get([]byte(key))
			if err != nil {
				// The index may reference a record that was since dropped.
				r.log.Debug("Search hit without backing record", "key", key)
				continue
			}
			err = item.Value(func(value []byte) error {
				msg, err := unmarshalMessage(value)
				if err != nil {
					return err
				}
				messages = append(messages, msg)
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
	return messages, nil
}

func messageKey(msg domain.Message) string {
	return fmt.Sprintf("msg:%019d:%s", msg.CreatedAt.UnixNano(), msg.ID)
}

func fromMessage(msg domain.Message) diskMessage {
	return diskMessage{
		ID:         msg.ID.String(),
		AuthorID:   msg.AuthorID,
		AuthorName: msg.AuthorName,
		Content:    msg.Content,
		At:         msg.CreatedAt.UnixNano(),
	}
}

func unmarshalMessage(value []byte) (domain.Message, error) {
	var disk diskMessage
	if err := json.Unmarshal(value, &disk); err != nil {
		return domain.Message{}, err
	}
	id, err := uuid.Parse(disk.ID)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{
		ID:         id,
		AuthorID:   disk.AuthorID,
		AuthorName: disk.AuthorName,
		Content:    disk.Content,
		CreatedAt:  time.Unix(0, disk.At).UTC(),
	}, nil
}
