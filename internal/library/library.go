package library

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgallion1/citator/internal/play"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ErrNotFound is returned for unknown or expired play ids.
var ErrNotFound = errors.New("play not found")

// Entry is an open play.
type Entry struct {
	ID          string
	Play        *play.Play
	ContentHash string
	OpenedAt    time.Time
}

// Library holds the plays currently open, bounded in count and evicted after
// ttl. Plays are read-only once opened.
type Library struct {
	openMu sync.Mutex
	cache  *expirable.LRU[string, *Entry]

	hashMu sync.Mutex
	byHash map[string]string
}

func New(maxPlays int, ttl time.Duration) *Library {
	if maxPlays <= 0 {
		maxPlays = 64
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	l := &Library{byHash: make(map[string]string)}
	l.cache = expirable.NewLRU[string, *Entry](maxPlays, l.onEvict, ttl)
	return l
}

// Open registers p and returns its entry. If a play with identical content
// is already open, that entry is returned with reopened set. Such callers
// share one entry and id, so closing it closes the play for all of them.
func (l *Library) Open(p *play.Play) (entry *Entry, reopened bool, err error) {
	hash, err := ContentHash(p)
	if err != nil {
		return nil, false, err
	}

	l.openMu.Lock()
	defer l.openMu.Unlock()

	l.hashMu.Lock()
	id, ok := l.byHash[hash]
	l.hashMu.Unlock()
	if ok {
		if e, ok := l.cache.Get(id); ok {
			return e, true, nil
		}
	}

	e := &Entry{
		ID:          uuid.NewString(),
		Play:        p,
		ContentHash: hash,
		OpenedAt:    time.Now(),
	}
	l.cache.Add(e.ID, e)

	l.hashMu.Lock()
	l.byHash[hash] = e.ID
	l.hashMu.Unlock()

	return e, false, nil
}

// Get returns the open play with the given id.
func (l *Library) Get(id string) (*Entry, error) {
	e, ok := l.cache.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e, nil
}

// Close discards an open play, including for every caller that reopened it.
func (l *Library) Close(id string) error {
	if !l.cache.Remove(id) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Len returns the number of open plays.
func (l *Library) Len() int {
	return l.cache.Len()
}

func (l *Library) onEvict(id string, e *Entry) {
	l.hashMu.Lock()
	defer l.hashMu.Unlock()
	if l.byHash[e.ContentHash] == id {
		delete(l.byHash, e.ContentHash)
	}
}

// ContentHash returns the hex SHA-256 of the play's JSON encoding.
func ContentHash(p *play.Play) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("hash play: %w", err)
	}
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:]), nil
}
