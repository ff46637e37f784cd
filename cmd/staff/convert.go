package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/practicum/employee-model/internal/core/service"
	"github.com/practicum/employee-model/internal/infrastructure/memory"
	"github.com/practicum/employee-model/pkg/logger"
)

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "convert VALUE FROM TO",
		Short:   "Convert an amount between rub, usd and eur",
		Example: "  staff convert 90 rub usd",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("value %q is not a number", args[0])
			}

			svc := service.NewStaffService(memory.NewStaffRepository(), nil, logger.Get())
			res, err := svc.Convert(value, args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n", res.Value, res.From, res.Result, res.To)
			return nil
		},
	}
}
