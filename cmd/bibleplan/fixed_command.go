package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bibleplan/internal/fixedplan"
	"bibleplan/internal/schedule"
)

func newFixedCommand(ctx *commandContext) *cobra.Command {
	var flags planFlags

	cmd := &cobra.Command{
		Use:   "fixed <plan-id>",
		Short: "Date a hand-authored fixed plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			plan, err := fixedplan.Lookup(args[0])
			if err != nil {
				return err
			}
			if _, err := fixedplan.Verify(plan); err != nil {
				return fmt.Errorf("verify fixed plan %s: %w", plan.ID, err)
			}
			opts, err := flags.resolve(cfg, ctx.now())
			if err != nil {
				return err
			}
			days := schedule.GenerateFixed(plan, opts.start)
			if len(days) == 0 {
				return fmt.Errorf("fixed plan %s has no readings", plan.ID)
			}
			return ctx.writePlan(cmd, planView{id: plan.ID, testament: plan.Testament, start: opts.start, days: days}, opts)
		},
	}

	flags.register(cmd)
	return cmd
}
