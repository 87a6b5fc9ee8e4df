package roadmap

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	types "github.com/yungbote/roadmap-backend/internal/domain/roadmap"
	"github.com/yungbote/roadmap-backend/internal/platform/logger"
)

var (
	ErrNotFound  = errors.New("roadmap not found")
	ErrDuplicate = errors.New("roadmap id already stored")
)

// Summary is the list view of a stored roadmap.
type Summary struct {
	RoadmapID      string      `json:"roadmap_id"`
	Title          string      `json:"title"`
	Topic          types.Topic `json:"topic"`
	TotalWeeks     int         `json:"total_weeks"`
	CompletedWeeks int         `json:"completed_weeks"`
	CreatedAt      time.Time   `json:"created_at"`
}

// RegistryRepo stores generated roadmaps and their progress for the life of
// the process. Nothing is evicted or persisted.
type RegistryRepo interface {
	// Insert stores a new entry. It returns ErrDuplicate when the id is taken
	// and leaves the stored entry untouched.
	Insert(ctx context.Context, entry *types.Entry) error
	Get(ctx context.Context, id string) (*types.Entry, error)
	// Update runs fn against the stored entry while holding the write lock and
	// returns a copy of the entry after fn ran.
	Update(ctx context.Context, id string, fn func(e *types.Entry) error) (*types.Entry, error)
	List(ctx context.Context) ([]Summary, error)
	Len() int
}

type registryRepo struct {
	log *logger.Logger

	mu      sync.RWMutex
	entries map[string]*types.Entry
}

func NewRegistryRepo(baseLog *logger.Logger) RegistryRepo {
	return &registryRepo{
		log:     baseLog.With("repo", "RoadmapRegistryRepo"),
		entries: map[string]*types.Entry{},
	}
}

func (r *registryRepo) Insert(ctx context.Context, entry *types.Entry) error {
	if entry == nil || entry.Roadmap.RoadmapID == "" {
		return errors.New("roadmap id required")
	}
	stored := entry.Clone()
	r.mu.Lock()
	if _, taken := r.entries[stored.Roadmap.RoadmapID]; taken {
		r.mu.Unlock()
		return ErrDuplicate
	}
	r.entries[stored.Roadmap.RoadmapID] = stored
	n := len(r.entries)
	r.mu.Unlock()
	r.log.Debug("roadmap stored", "roadmap_id", stored.Roadmap.RoadmapID, "entries", n)
	return nil
}

func (r *registryRepo) Get(ctx context.Context, id string) (*types.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e.Clone(), nil
}

func (r *registryRepo) Update(ctx context.Context, id string, fn func(e *types.Entry) error) (*types.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := fn(e); err != nil {
		return nil, err
	}
	return e.Clone(), nil
}

func (r *registryRepo) List(ctx context.Context) ([]Summary, error) {
	r.mu.RLock()
	out := make([]Summary, 0, len(r.entries))
	for id, e := range r.entries {
		out = append(out, Summary{
			RoadmapID:      id,
			Title:          e.Roadmap.Title,
			Topic:          e.Roadmap.Topic,
			TotalWeeks:     e.Roadmap.TotalWeeks(),
			CompletedWeeks: len(e.Progress.CompletedWeeks),
			CreatedAt:      e.CreatedAt,
		})
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].RoadmapID < out[j].RoadmapID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *registryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
