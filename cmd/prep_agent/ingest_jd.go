package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-prep/internal/ingestion"
)

var ingestJDCmd = &cobra.Command{
	Use:   "ingest-jd <file>",
	Short: "Extract and clean a job description file",
	Long:  "Extract text from a job description (text, HTML, PDF or DOCX), clean it, and write the cleaned text with metadata.",
	Args:  cobra.ExactArgs(1),
	RunE:  runIngestJD,
}

var ingestOutDir string

func init() {
	ingestJDCmd.Flags().StringVarP(&ingestOutDir, "out", "o", "", "Output directory (required)")
	_ = ingestJDCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(ingestJDCmd)
}

func runIngestJD(cmd *cobra.Command, args []string) error {
	cleanedText, metadata, err := ingestion.IngestFromFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to ingest from file: %w", err)
	}

	if err := ingestion.WriteOutput(ingestOutDir, cleanedText, metadata); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Successfully ingested job description (%s, %d chars)\n", metadata.Format, metadata.Chars)
	if metadata.Short {
		fmt.Fprintln(out, "Warning: this job description is short; the analysis may be thin")
	}
	fmt.Fprintf(out, "Cleaned text: %s\n", filepath.Join(ingestOutDir, "jd.cleaned.txt"))
	fmt.Fprintf(out, "Metadata: %s\n", filepath.Join(ingestOutDir, "jd.meta.json"))
	return nil
}
