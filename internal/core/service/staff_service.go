package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/practicum/employee-model/internal/core/domain"
	"github.com/practicum/employee-model/internal/core/ports"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// StaffService runs the roster use cases. Every call holds mu for its whole
// duration, so each operation is atomic with respect to the others.
type StaffService struct {
	repo    ports.StaffRepository
	metrics ports.MetricsRecorder
	logger  zerolog.Logger
	now     func() time.Time

	mu sync.Mutex
}

func NewStaffService(repo ports.StaffRepository, metrics ports.MetricsRecorder, logger zerolog.Logger) *StaffService {
	if metrics == nil {
		metrics = noopRecorder{}
	}
	return &StaffService{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Hire builds a staff member of the requested kind and adds it to the roster.
// Construction failures are returned as the domain validation errors.
func (s *StaffService) Hire(ctx context.Context, in ports.HireInput) (*ports.StaffView, error) {
	kind, err := domain.ParseKind(string(in.Kind))
	if err != nil {
		return nil, fmt.Errorf("hire: %w", err)
	}

	p := domain.Params{
		Name:     in.Name,
		Surname:  in.Surname,
		Position: in.Position,
		Age:      in.Age,
		Salary:   in.Salary,
		Currency: normalizeCurrency(in.Currency),
	}

	member, err := s.newMember(kind, p)
	if err != nil {
		s.metrics.HireRejected(rejectReason(err))
		s.logger.Warn().Err(err).Str("kind", string(kind)).Str("name", in.Name+" "+in.Surname).Msg("hire rejected")
		return nil, fmt.Errorf("hire: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &ports.StaffRecord{
		ID:      uuid.NewString(),
		Member:  member,
		HiredAt: s.now(),
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		s.logger.Error().Err(err).Msg("failed to store staff member")
		return nil, err
	}

	s.logger.Info().Str("id", rec.ID).Str("kind", string(kind)).Str("staff", member.String()).Msg("staff member hired")

	return s.view(ctx, rec)
}

func (s *StaffService) newMember(kind domain.Kind, p domain.Params) (domain.Staff, error) {
	opt := domain.WithLogger(s.logger)
	switch kind {
	case domain.KindEngineer:
		e, err := domain.NewEngineer(p, opt)
		if err != nil {
			return nil, err
		}
		return e, nil
	case domain.KindManager:
		m, err := domain.NewManager(p, opt)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		e, err := domain.NewEmployee(p, opt)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
}

// Get returns a snapshot of one roster entry.
func (s *StaffService) Get(ctx context.Context, id string) (*ports.StaffView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, rec)
}

// List returns a page of the roster in hiring order.
func (s *StaffService) List(ctx context.Context, in ports.ListStaffInput) (*ports.ListStaffResult, error) {
	var kind domain.Kind
	if strings.TrimSpace(in.Kind) != "" {
		k, err := domain.ParseKind(in.Kind)
		if err != nil {
			return nil, fmt.Errorf("list staff: %w", err)
		}
		kind = k
	}

	limit := in.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	page := in.Page
	if page <= 0 {
		page = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, total, err := s.repo.List(ctx, ports.ListStaffFilter{Kind: kind, Page: page, Limit: limit})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list staff")
		return nil, err
	}

	items := make([]ports.StaffView, 0, len(records))
	for _, rec := range records {
		v, err := s.view(ctx, rec)
		if err != nil {
			return nil, err
		}
		items = append(items, *v)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ports.ListStaffResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// UpdateAge sets a new age. An out-of-range age leaves the record untouched.
func (s *StaffService) UpdateAge(ctx context.Context, id string, age int) (*ports.StaffView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := rec.Member.Profile().SetAge(age); err != nil {
		return nil, fmt.Errorf("update age: %w", err)
	}
	return s.view(ctx, rec)
}

// UpdateSalary sets a new salary in the current currency.
func (s *StaffService) UpdateSalary(ctx context.Context, id string, salary decimal.Decimal) (*ports.StaffView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := rec.Member.Profile().SetSalary(salary); err != nil {
		return nil, fmt.Errorf("update salary: %w", err)
	}
	return s.view(ctx, rec)
}

// ChangeCurrency converts the salary of a staff member into another currency.
func (s *StaffService) ChangeCurrency(ctx context.Context, id, currency string) (*ports.StaffView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := rec.Member.Profile().ChangeCurrency(normalizeCurrency(currency)); err != nil {
		s.metrics.CurrencyChanged("rejected")
		return nil, err
	}
	s.metrics.CurrencyChanged("ok")
	return s.view(ctx, rec)
}

// AssignEngineer adds an engineer to a manager's team. It reports false when
// an equal engineer is already on the team.
func (s *StaffService) AssignEngineer(ctx context.Context, managerID, engineerID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mrec, err := s.repo.FindByID(ctx, managerID)
	if err != nil {
		return false, fmt.Errorf("assign engineer: manager: %w", err)
	}
	manager, ok := mrec.Member.(*domain.Manager)
	if !ok {
		return false, fmt.Errorf("assign engineer: %w", domain.ErrNotManager)
	}

	erec, err := s.repo.FindByID(ctx, engineerID)
	if err != nil {
		return false, fmt.Errorf("assign engineer: engineer: %w", err)
	}
	engineer, ok := erec.Member.(*domain.Engineer)
	if !ok {
		return false, fmt.Errorf("assign engineer: %w", domain.ErrNotEngineer)
	}

	added := manager.AddEngineer(engineer)
	s.logger.Info().
		Str("manager_id", managerID).
		Str("engineer_id", engineerID).
		Bool("added", added).
		Msg("engineer assignment")
	return added, nil
}

// GrantPremium pays the premium of an engineer or a manager.
func (s *StaffService) GrantPremium(ctx context.Context, id string) (*ports.PremiumResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := &ports.PremiumResult{ID: rec.ID, Kind: rec.Member.Profile().Kind(), Currency: rec.Member.Profile().Currency()}
	switch m := rec.Member.(type) {
	case *domain.Engineer:
		res.Granted = m.GivePremium()
		res.Reported = res.Granted
	case *domain.Manager:
		res.Reported = m.ReportedPremium()
		res.Granted = m.GivePremium()
	default:
		return nil, fmt.Errorf("grant premium: %w", domain.ErrNoPremium)
	}

	s.metrics.PremiumGranted(res.Kind)
	return res, nil
}

// ChangeManagerSalary changes a manager's salary and flags suspicious raises.
func (s *StaffService) ChangeManagerSalary(ctx context.Context, id string, salary decimal.Decimal, currency string) (*ports.SalaryChangeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	manager, ok := rec.Member.(*domain.Manager)
	if !ok {
		return nil, fmt.Errorf("change salary: %w", domain.ErrNotManager)
	}

	suspicious, err := manager.ChangeSalary(salary, normalizeCurrency(currency))
	if err != nil {
		return nil, err
	}
	if suspicious {
		s.metrics.FraudSuspected()
	}

	v, err := s.view(ctx, rec)
	if err != nil {
		return nil, err
	}
	return &ports.SalaryChangeResult{Staff: *v, FraudSuspected: suspicious}, nil
}

// Summon calls a staff member over.
func (s *StaffService) Summon(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	rec.Member.Profile().Summon()
	return nil
}

// Convert runs the fixed-rate currency conversion.
func (s *StaffService) Convert(value decimal.Decimal, from, to string) (*ports.ConversionResult, error) {
	fromCur, err := domain.ParseCurrency(from)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	toCur, err := domain.ParseCurrency(to)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}

	result, err := domain.ConvertCurrency(value, fromCur, toCur)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	return &ports.ConversionResult{Value: value, From: fromCur, To: toCur, Result: result}, nil
}

// view maps a record to its snapshot, resolving manager/team references to ids.
// Callers must hold mu.
func (s *StaffService) view(ctx context.Context, rec *ports.StaffRecord) (*ports.StaffView, error) {
	p := rec.Member.Profile()
	v := &ports.StaffView{
		ID:             rec.ID,
		Kind:           p.Kind(),
		Name:           p.Name(),
		Surname:        p.Surname(),
		Position:       p.Position(),
		Age:            p.Age(),
		Salary:         p.Salary(),
		Currency:       p.Currency(),
		AgeLimit:       p.AgeLimit(),
		MeetsStandards: p.MeetsStandards(p.Age()),
		HiredAt:        rec.HiredAt,
	}

	switch m := rec.Member.(type) {
	case *domain.Engineer:
		if mgr := m.Manager(); mgr != nil {
			owner, err := s.repo.FindByProfile(ctx, mgr.Profile())
			if err != nil {
				return nil, fmt.Errorf("resolve manager of %s: %w", rec.ID, err)
			}
			v.ManagerID = owner.ID
		}
	case *domain.Manager:
		team := m.Engineers()
		v.EngineerIDs = make([]string, 0, len(team))
		for _, eng := range team {
			member, err := s.repo.FindByProfile(ctx, eng.Profile())
			if err != nil {
				return nil, fmt.Errorf("resolve team of %s: %w", rec.ID, err)
			}
			v.EngineerIDs = append(v.EngineerIDs, member.ID)
		}
	}

	return v, nil
}

func normalizeCurrency(raw string) domain.Currency {
	return domain.Currency(strings.ToLower(strings.TrimSpace(raw)))
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAge):
		return "invalid_age"
	case errors.Is(err, domain.ErrInvalidSalary):
		return "invalid_salary"
	case errors.Is(err, domain.ErrUnknownCurrency):
		return "unknown_currency"
	default:
		return "other"
	}
}

type noopRecorder struct{}

func (noopRecorder) HireRejected(string)        {}
func (noopRecorder) PremiumGranted(domain.Kind) {}
func (noopRecorder) FraudSuspected()            {}
func (noopRecorder) CurrencyChanged(string)     {}
