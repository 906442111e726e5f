package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"bibleplan/internal/config"
	"bibleplan/internal/corpus"
	"bibleplan/internal/format"
	"bibleplan/internal/locale"
	"bibleplan/internal/logging"
	"bibleplan/internal/schedule"
)

// planView is a dated plan ready for rendering.
type planView struct {
	id        string
	testament corpus.Testament
	start     time.Time
	days      []schedule.Day
}

type planDocument struct {
	Plan      string      `json:"plan,omitempty"`
	Testament string      `json:"testament"`
	StartDate string      `json:"start_date"`
	Days      []dayRecord `json:"days"`
}

type dayRecord struct {
	Day      int      `json:"day"`
	Date     string   `json:"date"`
	Weekday  string   `json:"weekday"`
	Readings []string `json:"readings"`
	Verses   int      `json:"verses,omitempty"`
}

// writePlan renders view to the configured destination and logs a summary.
func (c *commandContext) writePlan(cmd *cobra.Command, view planView, opts planOptions) error {
	var used string
	err := withOutput(cmd, opts.path, opts.format, func(w io.Writer, format string) error {
		used = format
		return renderPlan(w, format, view, opts.names)
	})
	if err != nil {
		return fmt.Errorf("write plan: %w", err)
	}

	attrs := []logging.Attr{
		logging.String("testament", string(view.testament)),
		logging.String("start_date", view.start.Format(config.DateLayout)),
		logging.Int("days_emitted", len(view.days)),
		logging.Int("readings", countReadings(view.days)),
		logging.String("output_format", used),
	}
	if view.id != "" {
		attrs = append(attrs, logging.String("plan_id", view.id))
	}
	if n := len(view.days); n > 0 {
		attrs = append(attrs, logging.String("end_date", view.days[n-1].Date.Format(config.DateLayout)))
	}
	if opts.path != "" {
		attrs = append(attrs, logging.String("output_path", opts.path))
	}
	c.log().Info("plan written", logging.Args(attrs...)...)
	return nil
}

func renderPlan(w io.Writer, outputFormat string, view planView, names locale.Names) error {
	switch outputFormat {
	case config.OutputJSON:
		return writeJSON(w, planJSON(view, names))
	case config.OutputTable:
		_, err := fmt.Fprintln(w, planTable(view, names))
		return err
	case config.OutputContinuous:
		_, err := fmt.Fprintln(w, format.Continuous(view.days, names))
		return err
	default:
		for _, day := range view.days {
			if _, err := fmt.Fprintln(w, format.Day(day, names)); err != nil {
				return err
			}
		}
		return nil
	}
}

func planJSON(view planView, names locale.Names) planDocument {
	doc := planDocument{
		Plan:      view.id,
		Testament: string(view.testament),
		StartDate: view.start.Format(config.DateLayout),
		Days:      make([]dayRecord, 0, len(view.days)),
	}
	for _, day := range view.days {
		verses, _ := verseCount(view.testament, day.Readings)
		doc.Days = append(doc.Days, dayRecord{
			Day:      dayNumber(view.start, day.Date),
			Date:     day.Date.Format(config.DateLayout),
			Weekday:  names.ShortWeekday(day.Date.Weekday()),
			Readings: day.Readings,
			Verses:   verses,
		})
	}
	return doc
}

func planTable(view planView, names locale.Names) string {
	rows := make([][]string, 0, len(view.days))
	total := 0
	for _, day := range view.days {
		verses := ""
		if n, ok := verseCount(view.testament, day.Readings); ok {
			verses = strconv.Itoa(n)
			total += n
		}
		rows = append(rows, []string{
			strconv.Itoa(dayNumber(view.start, day.Date)),
			day.Date.Format(config.DateLayout) + " " + names.ShortWeekday(day.Date.Weekday()),
			strings.Join(day.Readings, "; "),
			verses,
		})
	}
	footer := []string{"", strconv.Itoa(len(view.days)) + " days", strconv.Itoa(countReadings(view.days)) + " readings", strconv.Itoa(total)}
	return renderTableWithFooter(
		[]string{"#", "Date", "Readings", "Verses"},
		rows,
		footer,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
	)
}

// verseCount sums the verses named by labels; ok is false when a label does
// not parse against the testament.
func verseCount(testament corpus.Testament, labels []string) (int, bool) {
	total := 0
	for _, label := range labels {
		ref, err := corpus.ParseReference(testament, label)
		if err != nil {
			return 0, false
		}
		total += ref.VerseCount()
	}
	return total, true
}

// dayNumber is the 1-based calendar offset of date from start.
func dayNumber(start, date time.Time) int {
	y1, m1, d1 := start.Date()
	y2, m2, d2 := date.Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours()/24) + 1
}

func countReadings(days []schedule.Day) int {
	n := 0
	for _, day := range days {
		n += len(day.Readings)
	}
	return n
}
