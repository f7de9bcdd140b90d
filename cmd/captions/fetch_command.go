package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/autocaptions/internal/processor"
	"github.com/nguyentantai21042004/autocaptions/internal/scratch"
	"github.com/nguyentantai21042004/autocaptions/internal/transcript"
	"github.com/nguyentantai21042004/autocaptions/pkg/executor"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var docxPath string

	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Fetch captions for one video and print them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			log, err := ctx.newLogger()
			if err != nil {
				return err
			}

			s, err := scratch.New(fetchScratchRoot(cfg), scratch.Options{}, log)
			if err != nil {
				return err
			}
			defer s.Close()

			return runFetch(cmd, newProcessor(cfg, executor.New(), s, log), args[0], jsonOutput, docxPath)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the API response body as JSON")
	cmd.Flags().StringVar(&docxPath, "docx", "", "Also write a .docx transcript to this path")
	return cmd
}

func runFetch(cmd *cobra.Command, proc processor.Processor, videoURL string, jsonOutput bool, docxPath string) error {
	cues, err := proc.Process(cmd.Context(), videoURL)
	if err != nil {
		return fmt.Errorf("fetch captions: %w", err)
	}

	if docxPath != "" {
		if err := transcript.WriteDocx(videoURL, cues, docxPath); err != nil {
			return err
		}
	}

	if jsonOutput {
		return writeJSON(cmd, map[string]any{"captions": cues})
	}

	rows := make([][]string, 0, len(cues))
	for _, c := range cues {
		rows = append(rows, []string{c.Start, c.End, strings.ReplaceAll(c.Text, "\n", " ")})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Start", "End", "Text"}, rows, []columnAlignment{alignRight, alignRight, alignLeft}))
	return nil
}
