package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bibleplan/internal/fixedplan"
	"bibleplan/internal/schedule"
)

func newPresetCommand(ctx *commandContext) *cobra.Command {
	var flags planFlags

	cmd := &cobra.Command{
		Use:   "preset <preset-id>",
		Short: "Generate a plan from a named preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			preset, err := fixedplan.LookupPreset(args[0])
			if err != nil {
				return err
			}
			opts, err := flags.resolve(cfg, ctx.now())
			if err != nil {
				return err
			}
			days, err := schedule.GeneratePreset(preset, opts.start)
			if err != nil {
				return fmt.Errorf("generate preset %s: %w", preset.ID, err)
			}
			return ctx.writePlan(cmd, planView{id: preset.ID, testament: preset.Testament, start: opts.start, days: days}, opts)
		},
	}

	flags.register(cmd)
	return cmd
}
