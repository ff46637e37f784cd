package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/practicum/employee-model/internal/core/domain"
	"github.com/practicum/employee-model/internal/core/service"
	"github.com/practicum/employee-model/internal/infrastructure/memory"
	"github.com/practicum/employee-model/internal/infrastructure/roster"
	"github.com/practicum/employee-model/pkg/logger"
)

func newRosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Work with YAML roster files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "premiums FILE",
		Short: "Hire a roster and pay every engineer and manager premium",
		Long: `Load a YAML roster, hire it into an in-memory roster and grant the premium
of every engineer and manager in file order. Entries the model refuses are
reported on stderr and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: runRosterPremiums,
	})
	return cmd
}

func runRosterPremiums(cmd *cobra.Command, args []string) error {
	log := logger.Get()

	file, err := roster.Load(args[0])
	if err != nil {
		return err
	}

	svc := service.NewStaffService(memory.NewStaffRepository(), nil, log)
	report, err := roster.Seed(cmd.Context(), svc, file, log)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, h := range report.Hired {
		if h.Kind == domain.KindEmployee {
			continue
		}
		p, err := svc.GrantPremium(cmd.Context(), h.ID)
		if err != nil {
			return fmt.Errorf("premium for %s: %w", h.Key, err)
		}
		if p.Kind == domain.KindManager {
			fmt.Fprintf(out, "%s\t%s\treported %s\tgranted %s\t%s\n", h.Key, p.Kind, p.Reported, p.Granted, p.Currency)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\tgranted %s\t%s\n", h.Key, p.Kind, p.Granted, p.Currency)
	}
	for _, s := range report.Skipped {
		fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s: %s\n", s.Key, s.Reason)
	}
	return nil
}
