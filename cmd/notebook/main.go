package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"git.canoozie.net/riddling/notebook/pkg/model"
	"git.canoozie.net/riddling/notebook/pkg/notebook"
	"git.canoozie.net/riddling/notebook/pkg/script"
)

var (
	scriptPath = flag.String("script", "", "Path of a TOML script to replay (defaults to $NOTEBOOK_SCRIPT)")
	showPages  = flag.Bool("show", true, "Print every page once the script has run")
)

func main() {
	flag.Parse()

	// Initialize logger with level from environment variable
	logger := model.NewDefaultLogger(model.ParseLogLevel(os.Getenv("LOG_LEVEL")))
	model.SetDefaultLogger(logger)

	path := *scriptPath
	if path == "" {
		path = os.Getenv("NOTEBOOK_SCRIPT")
	}
	if path == "" {
		log.Fatalf("No script given: use -script or set NOTEBOOK_SCRIPT")
	}

	if err := replay(path, *showPages, os.Stdout, logger); err != nil {
		log.Fatalf("%v", err)
	}
}

// replay runs the script at path on a fresh notebook and, if show is set,
// prints every page it created
func replay(path string, show bool, w io.Writer, logger model.Logger) error {
	s, err := script.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load script: %w", err)
	}

	nb := notebook.New(notebook.Config{Logger: logger})
	logger.Info("Replaying %d steps from %s", len(s.Steps), path)

	if err := script.Run(nb, s, w); err != nil {
		return fmt.Errorf("script failed: %w", err)
	}

	if !show {
		return nil
	}
	for _, page := range nb.Pages() {
		sum, err := nb.Checksum(page)
		if err != nil {
			return fmt.Errorf("failed to checksum page %d: %w", page, err)
		}
		logger.Info("Page %d checksum %016x", page, sum)
		if err := nb.Show(w, page); err != nil {
			return fmt.Errorf("failed to show page %d: %w", page, err)
		}
	}
	return nil
}
