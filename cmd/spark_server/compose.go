package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spark-portfolio/spark/internal/compose"
	"github.com/spark-portfolio/spark/internal/types"
)

var composeOut string

var composeCmd = &cobra.Command{
	Use:   "compose <request.json>",
	Short: "Compose canonical document content from a request file",
	Long: `Compose reads a document request (title, career focus, short description,
selected projects) from a JSON file and prints the canonical sectioned content.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompose,
}

func init() {
	composeCmd.Flags().StringVar(&composeOut, "out", "", "Write content to a file instead of stdout")
	rootCmd.AddCommand(composeCmd)
}

func runCompose(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read request file: %w", err)
	}

	var req types.ComposeDocumentRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("failed to parse request file: %w", err)
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	content, err := compose.Compose(types.ComposeMeta{
		Title:            req.Title,
		CareerFocus:      req.CareerFocus,
		UsePersonalInfo:  req.UsePersonalInfo,
		ShortDescription: req.ShortDescription,
	}, req.SelectedItems)
	if err != nil {
		return err
	}

	if composeOut != "" {
		if err := os.WriteFile(composeOut, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	fmt.Println(content)
	return nil
}
