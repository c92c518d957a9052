package db

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"sqlgenie/models"
)

const historyPrefix = "history:"

// DB archives history entries so they outlive the in-memory sessions.
type DB struct {
	badgerDB *badger.DB
}

func New(dbPath string) (*DB, error) {
	return open(badger.DefaultOptions(dbPath))
}

// NewInMemory opens a throwaway archive, used by tests and the CLI.
func NewInMemory() (*DB, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

func open(opts badger.Options) (*DB, error) {
	opts.Logger = nil // Disable badger logging for cleaner output

	badgerDB, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DB{badgerDB: badgerDB}, nil
}

func (d *DB) Close() error {
	return d.badgerDB.Close()
}

// sessionPrefix hex encodes the session ID so no ID can be a prefix of
// another session's keys.
func sessionPrefix(sessionID string) string {
	return historyPrefix + hex.EncodeToString([]byte(sessionID)) + ":"
}

// historyKey sorts by session then time; the zero padded timestamp keeps
// lexical and chronological order aligned.
func historyKey(sessionID string, entry models.HistoryEntry) []byte {
	return []byte(fmt.Sprintf("%s%020d:%s", sessionPrefix(sessionID), entry.Timestamp, entry.ID))
}

func (d *DB) StoreHistoryEntry(sessionID string, entry models.HistoryEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	return d.badgerDB.Update(func(txn *badger.Txn) error {
		return txn.Set(historyKey(sessionID, entry), data)
	})
}

// ListHistory returns the archived entries of a session, most recent first.
func (d *DB) ListHistory(sessionID string) ([]models.HistoryEntry, error) {
	entries := []models.HistoryEntry{}

	err := d.badgerDB.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(sessionPrefix(sessionID))
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var entry models.HistoryEntry
				if err := json.Unmarshal(val, &entry); err != nil {
					return err
				}
				entries = append(entries, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	return entries, nil
}
