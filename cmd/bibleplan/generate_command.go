package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bibleplan/internal/corpus"
	"bibleplan/internal/schedule"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var testamentFlag string
	var daysFlag int
	var flags planFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an adaptive plan covering a whole testament",
		Long: "Generate splits long chapters or groups short ones so the chosen testament\n" +
			"is read in full over the requested number of days.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			testament := cfg.Testament()
			if cmd.Flags().Changed("testament") {
				if testament, err = corpus.ParseTestament(testamentFlag); err != nil {
					return err
				}
			}
			days := cfg.Plan.Days
			if cmd.Flags().Changed("days") {
				days = daysFlag
			}
			opts, err := flags.resolve(cfg, ctx.now())
			if err != nil {
				return err
			}

			plan, err := schedule.Generate(testament, opts.start, days)
			if err != nil {
				return fmt.Errorf("generate plan: %w", err)
			}
			return ctx.writePlan(cmd, planView{testament: testament, start: opts.start, days: plan}, opts)
		},
	}

	cmd.Flags().StringVarP(&testamentFlag, "testament", "t", "", "Testament to read: new or old")
	cmd.Flags().IntVarP(&daysFlag, "days", "d", 0, "Number of days the plan should span")
	flags.register(cmd)
	return cmd
}
