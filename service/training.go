package service

import (
	"fmt"
	"sync"

	"github.com/blakekali/blakeprintz/domain"
)

// TrainingService serves the static training catalog. Completion state is
// per-process; the catalog itself never changes at runtime.
type TrainingService struct {
	mu      sync.Mutex
	modules []domain.TrainingModule
}

func NewTrainingService() *TrainingService {
	return &TrainingService{modules: seedTraining()}
}

// List returns the whole catalog in its fixed order.
func (s *TrainingService) List() []domain.TrainingModule {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.TrainingModule, len(s.modules))
	copy(out, s.modules)
	return out
}

// Get returns one module by id.
func (s *TrainingService) Get(moduleID string) (domain.TrainingModule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.modules {
		if m.ID == moduleID {
			return m, nil
		}
	}
	return domain.TrainingModule{}, fmt.Errorf("training module %q: %w", moduleID, domain.ErrNotFound)
}

// ByCategory filters the catalog.
func (s *TrainingService) ByCategory(category string) []domain.TrainingModule {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.TrainingModule
	for _, m := range s.modules {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

// MarkCompleted flags a module as finished and pins its progress to 100%.
func (s *TrainingService) MarkCompleted(moduleID string) (domain.TrainingModule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.modules {
		if s.modules[i].ID == moduleID {
			s.modules[i].Completed = true
			s.modules[i].Progress = 100
			return s.modules[i], nil
		}
	}
	return domain.TrainingModule{}, fmt.Errorf("training module %q: %w", moduleID, domain.ErrNotFound)
}

// CompletedCount returns how many modules have been finished.
func (s *TrainingService) CompletedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, m := range s.modules {
		if m.Completed {
			n++
		}
	}
	return n
}
