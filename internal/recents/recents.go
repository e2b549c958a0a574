// Package recents persists the list of recently opened image folders in a
// small BoltDB database, so the GUI menu and the CLI can offer them again.
package recents

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/adrg/xdg"
	bolt "go.etcd.io/bbolt"
)

const (
	dbFileName    = "recents.db"
	foldersBucket = "RecentFolders"
	// maxEntries caps the stored list; older entries are evicted.
	maxEntries = 15
)

// LoggerFunc receives store messages. May be nil.
type LoggerFunc func(message string)

// Entry is one recently opened folder.
type Entry struct {
	Path       string    `json:"path"`
	LastOpened time.Time `json:"last_opened"`
}

// Store manages the recents database.
type Store struct {
	db     *bolt.DB
	logger LoggerFunc
}

// Open creates or opens the recents database. With an empty dbDir the file
// lives in the XDG data directory for this app.
func Open(dbDir string, logger LoggerFunc) (*Store, error) {
	var dbPath string
	if dbDir == "" {
		p, err := xdg.DataFile(filepath.Join("imseqview", dbFileName))
		if err != nil {
			return nil, fmt.Errorf("recents: resolving data dir: %w", err)
		}
		dbPath = p
	} else {
		if err := os.MkdirAll(dbDir, 0o750); err != nil {
			return nil, fmt.Errorf("recents: creating %s: %w", dbDir, err)
		}
		dbPath = filepath.Join(dbDir, dbFileName)
	}

	db, err := bolt.Open(dbPath, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("recents: opening database %s: %w", dbPath, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(foldersBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("recents: creating bucket: %w", err)
	}

	s := &Store{db: db, logger: logger}
	s.logf("using recents database at %s", dbPath)
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Touch records that a folder was opened now, evicting the oldest entries
// beyond the cap.
func (s *Store) Touch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("recents: resolving %q: %w", path, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(foldersBucket))
		data, err := json.Marshal(Entry{Path: abs, LastOpened: time.Now()})
		if err != nil {
			return err
		}
		if err := b.Put([]byte(abs), data); err != nil {
			return err
		}
		return evictOldest(b)
	})
}

// List returns the stored folders, most recently opened first.
func (s *Store) List() ([]Entry, error) {
	var entries []Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(foldersBucket))
		return b.ForEach(func(k, v []byte) error {
			var e Entry
			if err := json.Unmarshal(v, &e); err != nil {
				// Skip unreadable entries rather than failing the listing.
				return nil
			}
			entries = append(entries, e)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("recents: listing: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].LastOpened.After(entries[j].LastOpened)
	})
	return entries, nil
}

// Remove deletes one folder from the list.
func (s *Store) Remove(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("recents: resolving %q: %w", path, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(foldersBucket)).Delete([]byte(abs))
	})
}

// Clear drops the whole list.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(foldersBucket)); err != nil {
			return err
		}
		_, err := tx.CreateBucket([]byte(foldersBucket))
		return err
	})
}

func evictOldest(b *bolt.Bucket) error {
	type keyed struct {
		key  []byte
		when time.Time
	}
	var all []keyed
	err := b.ForEach(func(k, v []byte) error {
		var e Entry
		if err := json.Unmarshal(v, &e); err != nil {
			return nil
		}
		all = append(all, keyed{key: append([]byte(nil), k...), when: e.LastOpened})
		return nil
	})
	if err != nil {
		return err
	}
	if len(all) <= maxEntries {
		return nil
	}
	sort.Slice(all, func(i, j int) bool { return all[i].when.Before(all[j].when) })
	for _, old := range all[:len(all)-maxEntries] {
		if err := b.Delete(old.key); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) logf(format string, args ...interface{}) {
	if s.logger != nil {
		s.logger(fmt.Sprintf(format, args...))
	}
}
