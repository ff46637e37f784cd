// Package roster reads staff rosters from YAML and hires them through the
// staff service.
//
//	employees:
//	  - key: anna
//	    name: Anna
//	    surname: Ivanova
//	    position: recruiter
//	    age: 30
//	engineers:
//	  - key: ivan
//	    name: Ivan
//	    surname: Petrov
//	    position: backend
//	    age: 28
//	    salary: 120000
//	managers:
//	  - key: olga
//	    name: Olga
//	    surname: Smirnova
//	    position: lead
//	    age: 45
//	    currency: usd
//	    engineers: [ivan]
package roster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/practicum/employee-model/internal/core/domain"
	"github.com/practicum/employee-model/internal/core/ports"
)

// Entry is one staff member of a roster file. Salary is kept as text and
// parsed as a decimal when hiring; empty means the kind's default.
type Entry struct {
	Key      string `yaml:"key"`
	Name     string `yaml:"name"`
	Surname  string `yaml:"surname"`
	Position string `yaml:"position"`
	Age      int    `yaml:"age"`
	Salary   string `yaml:"salary,omitempty"`
	Currency string `yaml:"currency,omitempty"`
}

// ManagerEntry is a manager together with the keys of its engineers.
type ManagerEntry struct {
	Entry     `yaml:",inline"`
	Engineers []string `yaml:"engineers,omitempty"`
}

// File is a parsed roster.
type File struct {
	Employees []Entry        `yaml:"employees"`
	Engineers []Entry        `yaml:"engineers"`
	Managers  []ManagerEntry `yaml:"managers"`
}

// Skip records an entry or assignment that could not be applied.
type Skip struct {
	Key    string
	Reason string
}

// Hire is a successfully hired roster entry.
type Hire struct {
	Key  string
	ID   string
	Kind domain.Kind
}

// Report is the outcome of Seed. Hired follows file order: employees,
// engineers, then managers.
type Report struct {
	Hired    []Hire
	Assigned int
	Skipped  []Skip
}

// ID returns the roster id hired for key.
func (r *Report) ID(key string) (string, bool) {
	for _, h := range r.Hired {
		if h.Key == key {
			return h.ID, true
		}
	}
	return "", false
}

// Load reads and parses the roster file at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roster: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes a roster document. Unknown fields are rejected.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return &file, nil
		}
		return nil, fmt.Errorf("roster: decode: %w", err)
	}
	return &file, nil
}

// Seed hires every entry of file and then attaches engineers to their
// managers. Entries the model refuses are logged, listed in the report and
// skipped; only storage failures abort the seed.
func Seed(ctx context.Context, svc ports.StaffService, file *File, log zerolog.Logger) (*Report, error) {
	report := &Report{}
	seen := make(map[string]struct{})

	hire := func(kind domain.Kind, e Entry) error {
		if e.Key == "" {
			report.skip(log, e.Name+" "+e.Surname, "missing key")
			return nil
		}
		if _, dup := seen[e.Key]; dup {
			report.skip(log, e.Key, "duplicate key")
			return nil
		}
		seen[e.Key] = struct{}{}

		in := ports.HireInput{
			Kind:     kind,
			Name:     e.Name,
			Surname:  e.Surname,
			Position: e.Position,
			Age:      e.Age,
			Currency: e.Currency,
		}
		if e.Salary != "" {
			salary, err := decimal.NewFromString(e.Salary)
			if err != nil {
				report.skip(log, e.Key, fmt.Sprintf("salary %q is not a number", e.Salary))
				return nil
			}
			in.Salary = decimal.NewNullDecimal(salary)
		}

		view, err := svc.Hire(ctx, in)
		if err != nil {
			if isRejection(err) {
				report.skip(log, e.Key, err.Error())
				return nil
			}
			return fmt.Errorf("roster: hire %s: %w", e.Key, err)
		}
		report.Hired = append(report.Hired, Hire{Key: e.Key, ID: view.ID, Kind: kind})
		return nil
	}

	for _, e := range file.Employees {
		if err := hire(domain.KindEmployee, e); err != nil {
			return report, err
		}
	}
	for _, e := range file.Engineers {
		if err := hire(domain.KindEngineer, e); err != nil {
			return report, err
		}
	}
	for _, m := range file.Managers {
		if err := hire(domain.KindManager, m.Entry); err != nil {
			return report, err
		}
	}

	for _, m := range file.Managers {
		managerID, ok := report.ID(m.Key)
		if !ok {
			continue
		}
		for _, key := range m.Engineers {
			engineerID, ok := report.ID(key)
			if !ok {
				report.skip(log, m.Key+"/"+key, "engineer not hired")
				continue
			}
			added, err := svc.AssignEngineer(ctx, managerID, engineerID)
			if err != nil {
				if isRejection(err) {
					report.skip(log, m.Key+"/"+key, err.Error())
					continue
				}
				return report, fmt.Errorf("roster: assign %s to %s: %w", key, m.Key, err)
			}
			if added {
				report.Assigned++
			}
		}
	}

	log.Info().
		Int("hired", len(report.Hired)).
		Int("assigned", report.Assigned).
		Int("skipped", len(report.Skipped)).
		Msg("roster seeded")
	return report, nil
}

func (r *Report) skip(log zerolog.Logger, key, reason string) {
	log.Warn().Str("key", key).Str("reason", reason).Msg("roster entry skipped")
	r.Skipped = append(r.Skipped, Skip{Key: key, Reason: reason})
}

func isRejection(err error) bool {
	return errors.Is(err, domain.ErrInvalidAge) ||
		errors.Is(err, domain.ErrInvalidSalary) ||
		errors.Is(err, domain.ErrUnknownCurrency) ||
		errors.Is(err, domain.ErrNotEngineer) ||
		errors.Is(err, domain.ErrNotManager)
}
