// Package memory provides the process-local roster store. Nothing is written
// to disk; the roster lives as long as the process.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/practicum/employee-model/internal/core/domain"
	"github.com/practicum/employee-model/internal/core/ports"
)

var ErrDuplicateID = errors.New("staff id already exists")

// StaffRepository keeps roster records in hiring order.
type StaffRepository struct {
	mu        sync.RWMutex
	byID      map[string]*ports.StaffRecord
	byProfile map[*domain.Employee]string
	order     []string
}

func NewStaffRepository() *StaffRepository {
	return &StaffRepository{
		byID:      make(map[string]*ports.StaffRecord),
		byProfile: make(map[*domain.Employee]string),
	}
}

func (r *StaffRepository) Create(_ context.Context, rec *ports.StaffRecord) error {
	if rec == nil || rec.Member == nil {
		return fmt.Errorf("create staff: empty record")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[rec.ID]; ok {
		return fmt.Errorf("create staff %s: %w", rec.ID, ErrDuplicateID)
	}
	r.byID[rec.ID] = rec
	r.byProfile[rec.Member.Profile()] = rec.ID
	r.order = append(r.order, rec.ID)
	return nil
}

func (r *StaffRepository) FindByID(_ context.Context, id string) (*ports.StaffRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrStaffNotFound
	}
	return rec, nil
}

func (r *StaffRepository) FindByProfile(_ context.Context, profile *domain.Employee) (*ports.StaffRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byProfile[profile]
	if !ok {
		return nil, domain.ErrStaffNotFound
	}
	return r.byID[id], nil
}

// List applies the kind filter, then paginates. Page is 1-based; a
// non-positive limit returns everything that matched.
func (r *StaffRepository) List(_ context.Context, f ports.ListStaffFilter) ([]*ports.StaffRecord, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*ports.StaffRecord, 0, len(r.order))
	for _, id := range r.order {
		rec := r.byID[id]
		if f.Kind != "" && rec.Member.Profile().Kind() != f.Kind {
			continue
		}
		matched = append(matched, rec)
	}

	total := int64(len(matched))

	limit := f.Limit
	if limit <= 0 {
		limit = len(matched)
	}
	skip := (f.Page - 1) * limit
	if skip < 0 {
		skip = 0
	}
	if skip > len(matched) {
		return []*ports.StaffRecord{}, total, nil
	}
	end := skip + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}
