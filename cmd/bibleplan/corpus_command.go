package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"bibleplan/internal/config"
	"bibleplan/internal/corpus"
)

type corpusDocument struct {
	Testament string       `json:"testament"`
	Name      string       `json:"name"`
	Books     []bookRecord `json:"books"`
	Totals    totalsRecord `json:"totals"`
}

type bookRecord struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Chapters     int    `json:"chapters"`
	Verses       int    `json:"verses"`
}

type totalsRecord struct {
	Books    int `json:"books"`
	Chapters int `json:"chapters"`
	Verses   int `json:"verses"`
}

func newCorpusCommand(ctx *commandContext) *cobra.Command {
	var testamentFlag string
	var flags outputFlags

	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Show books, chapters and verse counts of a testament",
		Args:  cobra.NoArgs,
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
			format, path, err := flags.resolve(cfg)
			if err != nil {
				return err
			}
			doc, err := buildCorpusDocument(testament)
			if err != nil {
				return err
			}
			return withOutput(cmd, path, format, func(w io.Writer, format string) error {
				return renderCorpus(w, format, doc)
			})
		},
	}

	cmd.Flags().StringVarP(&testamentFlag, "testament", "t", "", "Testament to describe: new or old")
	flags.register(cmd)
	return cmd
}

func buildCorpusDocument(testament corpus.Testament) (corpusDocument, error) {
	books, err := corpus.Books(testament)
	if err != nil {
		return corpusDocument{}, err
	}
	totals, err := corpus.Stats(testament)
	if err != nil {
		return corpusDocument{}, err
	}
	doc := corpusDocument{
		Testament: string(testament),
		Name:      testament.DisplayName(),
		Books:     make([]bookRecord, 0, len(books)),
		Totals:    totalsRecord{Books: totals.Books, Chapters: totals.Chapters, Verses: totals.Verses},
	}
	for _, b := range books {
		doc.Books = append(doc.Books, bookRecord{
			Name:         b.Name,
			Abbreviation: b.Abbreviation,
			Chapters:     b.ChapterCount(),
			Verses:       b.TotalVerses(),
		})
	}
	return doc, nil
}

func renderCorpus(w io.Writer, format string, doc corpusDocument) error {
	switch format {
	case config.OutputJSON:
		return writeJSON(w, doc)
	case config.OutputTable:
		rows := make([][]string, 0, len(doc.Books))
		for _, b := range doc.Books {
			rows = append(rows, []string{b.Name, b.Abbreviation, strconv.Itoa(b.Chapters), strconv.Itoa(b.Verses)})
		}
		footer := []string{doc.Name, strconv.Itoa(doc.Totals.Books) + " books", strconv.Itoa(doc.Totals.Chapters), strconv.Itoa(doc.Totals.Verses)}
		_, err := fmt.Fprintln(w, renderTableWithFooter(
			[]string{"Book", "Abbreviation", "Chapters", "Verses"},
			rows,
			footer,
			[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
		))
		return err
	default:
		for _, b := range doc.Books {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", b.Abbreviation, b.Name, b.Chapters, b.Verses); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%s: %d books, %d chapters, %d verses\n", doc.Name, doc.Totals.Books, doc.Totals.Chapters, doc.Totals.Verses)
		return err
	}
}
