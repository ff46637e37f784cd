package ports

import (
	"context"
	"time"

	"github.com/practicum/employee-model/internal/core/domain"
)

// StaffRecord pairs a roster id with the staff member it identifies.
type StaffRecord struct {
	ID      string
	Member  domain.Staff
	HiredAt time.Time
}

// ListStaffFilter carries the query parameters for listing the roster.
type ListStaffFilter struct {
	Kind  domain.Kind // empty = all kinds
	Page  int         // 1-based
	Limit int
}

// StaffRepository keeps the in-memory roster. Records are returned by pointer;
// the staff members they hold are live objects, not copies.
type StaffRepository interface {
	Create(ctx context.Context, rec *StaffRecord) error
	FindByID(ctx context.Context, id string) (*StaffRecord, error)
	// FindByProfile resolves the record owning the given staff member.
	FindByProfile(ctx context.Context, profile *domain.Employee) (*StaffRecord, error)
	// List returns a page of records in hiring order and the total count.
	List(ctx context.Context, filter ListStaffFilter) ([]*StaffRecord, int64, error)
}

// MetricsRecorder receives business events worth counting.
type MetricsRecorder interface {
	HireRejected(reason string)
	PremiumGranted(kind domain.Kind)
	FraudSuspected()
	CurrencyChanged(result string)
}
