package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"bibleplan/internal/config"
	"bibleplan/internal/corpus"
	"bibleplan/internal/fixedplan"
)

type planSummary struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Testament   string `json:"testament"`
	Days        int    `json:"days"`
	// Verses counts the verses the plan reads out of TestamentVerses.
	Verses          int `json:"verses"`
	TestamentVerses int `json:"testament_verses"`
}

func newPlansCommand(ctx *commandContext) *cobra.Command {
	var flags outputFlags

	cmd := &cobra.Command{
		Use:   "plans",
		Short: "List fixed plans and presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			format, path, err := flags.resolve(cfg)
			if err != nil {
				return err
			}
			summaries, err := collectPlanSummaries()
			if err != nil {
				return err
			}
			return withOutput(cmd, path, format, func(w io.Writer, format string) error {
				return renderPlanSummaries(w, format, summaries)
			})
		},
	}

	flags.register(cmd)
	return cmd
}

func collectPlanSummaries() ([]planSummary, error) {
	var out []planSummary
	for _, plan := range fixedplan.All() {
		refs, err := fixedplan.Verify(plan)
		if err != nil {
			return nil, fmt.Errorf("verify fixed plan %s: %w", plan.ID, err)
		}
		totals, err := corpus.Stats(plan.Testament)
		if err != nil {
			return nil, err
		}
		verses := 0
		for _, ref := range refs {
			verses += ref.VerseCount()
		}
		out = append(out, planSummary{
			ID:              plan.ID,
			Kind:            "fixed",
			Name:            plan.Name,
			Description:     plan.Description,
			Testament:       string(plan.Testament),
			Days:            len(plan.Readings),
			Verses:          verses,
			TestamentVerses: totals.Verses,
		})
	}
	for _, preset := range fixedplan.Presets() {
		totals, err := corpus.Stats(preset.Testament)
		if err != nil {
			return nil, err
		}
		out = append(out, planSummary{
			ID:              preset.ID,
			Kind:            "preset",
			Name:            preset.Name,
			Description:     preset.Description,
			Testament:       string(preset.Testament),
			Days:            preset.Days,
			Verses:          totals.Verses,
			TestamentVerses: totals.Verses,
		})
	}
	return out, nil
}

func renderPlanSummaries(w io.Writer, format string, summaries []planSummary) error {
	switch format {
	case config.OutputJSON:
		return writeJSON(w, summaries)
	case config.OutputTable:
		rows := make([][]string, 0, len(summaries))
		for _, s := range summaries {
			rows = append(rows, []string{s.ID, s.Kind, s.Testament, strconv.Itoa(s.Days), coverage(s), s.Name})
		}
		_, err := fmt.Fprintln(w, renderTable(
			[]string{"ID", "Kind", "Testament", "Days", "Verses", "Name"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
		))
		return err
	default:
		for _, s := range summaries {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n", s.ID, s.Kind, s.Testament, s.Days, coverage(s), s.Name); err != nil {
				return err
			}
		}
		return nil
	}
}

func coverage(s planSummary) string {
	return strconv.Itoa(s.Verses) + "/" + strconv.Itoa(s.TestamentVerses)
}
