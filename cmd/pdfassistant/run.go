package main

import (
	"fmt"

	pdfassistant "github.com/Nityom/ai-pdf-assistant"
	"github.com/Nityom/ai-pdf-assistant/ingest"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	result, err := deps.Session.RunIngestion(deps.Ctx, c.URL, printProgress(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "ingestion failed: %s\n", pdfassistant.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Extracted %d bytes of text from %d documents\n",
		result.ContextBytes, result.Merged)

	fmt.Fprintln(deps.Stdout, deps.Session.Ask(deps.Ctx, c.Question))
	return nil
}

// printProgress reports ingestion progress on the command's writers.
func printProgress(deps *Dependencies) ingest.ProgressFunc {
	return func(event ingest.ProgressEvent) {
		switch event.Type {
		case ingest.ProgressDiscovered:
			fmt.Fprintf(deps.Stdout, "  Found %d PDF links\n", event.Total)
		case ingest.ProgressDownloadFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Err)
		case ingest.ProgressMerged:
			if event.Skipped > 0 {
				fmt.Fprintf(deps.Stdout, "  Merged %d documents (%d unreadable skipped)\n",
					event.Completed, event.Skipped)
			} else {
				fmt.Fprintf(deps.Stdout, "  Merged %d documents\n", event.Completed)
			}
		}
	}
}
