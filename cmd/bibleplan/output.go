package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"bibleplan/internal/config"
	"bibleplan/internal/fileutil"
)

// withOutput runs fn against stdout or the file at path, with an "auto"
// format resolved for that destination.
func withOutput(cmd *cobra.Command, path, format string, fn func(w io.Writer, format string) error) error {
	if path == "" {
		w := cmd.OutOrStdout()
		return fn(w, resolveFormat(format, w))
	}

	return fileutil.WriteFileAtomic(path, 0o644, func(w io.Writer) error {
		return fn(w, resolveFormat(format, w))
	})
}

func resolveFormat(format string, w io.Writer) string {
	if format != "" && format != config.OutputAuto {
		return format
	}
	if isTerminal(w) {
		return config.OutputTable
	}
	return config.OutputText
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
