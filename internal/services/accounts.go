package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/logging"
	"github.com/dmitrijs2005/accountkeeper/internal/models"
	"github.com/dmitrijs2005/accountkeeper/internal/repositories/metadata"
)

const (
	// maxIDAttempts bounds regeneration when the generator repeats an id.
	maxIDAttempts = 8

	// maxCorruptBackups bounds the numbered backups of unreadable snapshots.
	maxCorruptBackups = 100
)

// Snapshot is what subscribers observe after every applied mutation.
type Snapshot struct {
	Accounts    []models.Account
	Count       int
	HasAccounts bool
}

// Option configures an AccountStore.
type Option func(*AccountStore)

// WithKey overrides the storage key (default common.DefaultStorageKey).
func WithKey(key string) Option {
	return func(s *AccountStore) { s.key = key }
}

// WithIDGenerator overrides the id strategy (default UUIDv7).
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *AccountStore) { s.newID = gen }
}

// WithLogger attaches a logger (default discards).
func WithLogger(l logging.Logger) Option {
	return func(s *AccountStore) { s.log = l }
}

type AccountStore struct {
	mu       sync.RWMutex
	repo     metadata.Repository
	key      string
	newID    IDGenerator
	log      logging.Logger
	accounts []models.Account
	seen     map[string]struct{}
	loadErr  error

	subMu  sync.Mutex
	subs   map[int]func(Snapshot)
	nextID int
}

// NewAccountStore builds a store over repo and loads the persisted list.
//
// A missing key starts empty. An undecodable value is moved to
// key+common.CorruptSuffix (numbered when that backup already exists), the
// store starts empty and LoadError reports why. Only a failing repository read aborts construction.
func NewAccountStore(ctx context.Context, repo metadata.Repository, opts ...Option) (*AccountStore, error) {
	s := &AccountStore{
		repo:     repo,
		key:      common.DefaultStorageKey,
		newID:    UUIDv7,
		log:      logging.Nop(),
		accounts: make([]models.Account, 0),
		seen:     make(map[string]struct{}),
		subs:     make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "account_store", "key", s.key)

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *AccountStore) load(ctx context.Context) error {
	raw, err := s.repo.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}
	if raw == nil {
		s.log.Debug(ctx, "no persisted accounts, starting empty")
		return nil
	}

	accounts, err := models.UnmarshalAccounts(raw)
	if err != nil {
		s.recoverCorrupt(ctx, err)
		return nil
	}

	s.accounts = accounts
	for _, a := range accounts {
		s.seen[a.ID] = struct{}{}
	}
	s.log.Info(ctx, "accounts loaded", "count", len(accounts))
	return nil
}

// recoverCorrupt moves the unreadable snapshot aside so the next write
// cannot destroy it.
func (s *AccountStore) recoverCorrupt(ctx context.Context, decodeErr error) {
	s.loadErr = fmt.Errorf("%w: %w", common.ErrorCorruptSnapshot, decodeErr)

	backup, err := s.freeBackupKey(ctx)
	if err == nil {
		err = s.repo.Rename(ctx, s.key, backup)
	}
	if err != nil {
		s.log.Error(ctx, "could not move corrupt snapshot aside", "backup", backup, "error", err)
		s.loadErr = errors.Join(s.loadErr, err)
	}
	s.log.Warn(ctx, "persisted accounts are corrupt, starting empty", "backup", backup, "error", decodeErr)
}

// freeBackupKey returns the first unused key of key.corrupt, key.corrupt.1,
// key.corrupt.2 and so on, so earlier backups are never overwritten.
func (s *AccountStore) freeBackupKey(ctx context.Context) (string, error) {
	base := s.key + common.CorruptSuffix
	for n := 0; n < maxCorruptBackups; n++ {
		key := base
		if n > 0 {
			key = fmt.Sprintf("%s.%d", base, n)
		}
		v, err := s.repo.Get(ctx, key)
		if err != nil {
			return key, fmt.Errorf("check backup %s: %w", key, err)
		}
		if v == nil {
			return key, nil
		}
	}
	return base, fmt.Errorf("%d corrupt backups of %s already exist, not overwriting", maxCorruptBackups, s.key)
}

// LoadError reports the recovered initialization problem, if any.
func (s *AccountStore) LoadError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Accounts returns a copy of the list in insertion order.
func (s *AccountStore) Accounts() []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

func (s *AccountStore) copyLocked() []models.Account {
	out := make([]models.Account, len(s.accounts))
	for i, a := range s.accounts {
		out[i] = a.Clone()
	}
	return out
}

// Count reports the current number of accounts.
func (s *AccountStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}

// HasAccounts reports whether at least one account exists.
func (s *AccountStore) HasAccounts() bool {
	return s.Count() > 0
}

// Get looks an account up by id.
func (s *AccountStore) Get(id string) (models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexLocked(id); i >= 0 {
		return s.accounts[i].Clone(), true
	}
	return models.Account{}, false
}

func (s *AccountStore) indexLocked(id string) int {
	for i, a := range s.accounts {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// AddAccount appends a new account built from form under a fresh id.
//
// On a persistence failure the account stays in memory and is returned
// together with an error wrapping common.ErrorPersistence.
func (s *AccountStore) AddAccount(ctx context.Context, form models.AccountFormData) (models.Account, error) {
	s.mu.Lock()

	id, err := s.uniqueIDLocked()
	if err != nil {
		s.mu.Unlock()
		return models.Account{}, err
	}
	acc, err := form.Build(id)
	if err != nil {
		s.mu.Unlock()
		return models.Account{}, err
	}

	s.accounts = append(s.accounts, acc)
	s.seen[id] = struct{}{}
	perr := s.persistLocked(ctx)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.log.Info(ctx, "account added", "id", id, "type", acc.Type())
	s.notify(snap)
	return acc.Clone(), perr
}

// UpdateAccount rebuilds the account with the given id from form, keeping
// its id and list position. An unknown id changes nothing, writes nothing
// and returns common.ErrorNotFound.
func (s *AccountStore) UpdateAccount(ctx context.Context, id string, form models.AccountFormData) (models.Account, error) {
	s.mu.Lock()

	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Account{}, fmt.Errorf("account %q: %w", id, common.ErrorNotFound)
	}
	acc, err := form.Build(id)
	if err != nil {
		s.mu.Unlock()
		return models.Account{}, err
	}

	s.accounts[i] = acc
	perr := s.persistLocked(ctx)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.log.Info(ctx, "account updated", "id", id, "type", acc.Type())
	s.notify(snap)
	return acc.Clone(), perr
}

// DeleteAccount removes the first account with the given id. An unknown id
// changes nothing, writes nothing and returns common.ErrorNotFound.
func (s *AccountStore) DeleteAccount(ctx context.Context, id string) error {
	s.mu.Lock()

	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("account %q: %w", id, common.ErrorNotFound)
	}

	s.accounts = append(s.accounts[:i:i], s.accounts[i+1:]...)
	perr := s.persistLocked(ctx)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.log.Info(ctx, "account deleted", "id", id)
	s.notify(snap)
	return perr
}

// Save writes the current list again, e.g. after a failed write.
func (s *AccountStore) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked(ctx)
}

func (s *AccountStore) persistLocked(ctx context.Context) error {
	b, err := models.MarshalAccounts(s.accounts)
	if err == nil {
		err = s.repo.Set(ctx, s.key, b)
	}
	if err != nil {
		s.log.Error(ctx, "failed to persist accounts", "count", len(s.accounts), "error", err)
		return fmt.Errorf("%w: %w", common.ErrorPersistence, err)
	}
	s.log.Debug(ctx, "accounts persisted", "count", len(s.accounts), "bytes", len(b))
	return nil
}

func (s *AccountStore) uniqueIDLocked() (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := s.newID()
		if err != nil {
			return "", fmt.Errorf("generate id: %w", err)
		}
		if _, dup := s.seen[id]; !dup {
			return id, nil
		}
	}
	return "", common.ErrorIDCollision
}

func (s *AccountStore) snapshotLocked() Snapshot {
	return Snapshot{
		Accounts:    s.copyLocked(),
		Count:       len(s.accounts),
		HasAccounts: len(s.accounts) > 0,
	}
}

// Subscribe registers fn to receive a Snapshot after every applied
// mutation. Calls are synchronous and happen outside the store lock, so fn
// may read from the store. The returned func unsubscribes.
func (s *AccountStore) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *AccountStore) notify(snap Snapshot) {
	s.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
