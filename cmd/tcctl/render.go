package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"teamcity-notifier/internal/webhook"
	"teamcity-notifier/pkg/jsontree"
	"teamcity-notifier/pkg/log"
)

func newRenderCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "render <file|->",
		Short: "Render a webhook payload as a card",
		Long: `Runs a TeamCity webhook body through the same formatters the notifier uses
and prints the resulting card. Pass "-" to read the payload from stdin.

Example:
  tcctl render build_finished.json
  curl -s $URL | tcctl render - --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readPayload(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), cmd.OutOrStdout(), data, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the pipeline result as JSON")
	return cmd
}

func readPayload(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	return data, nil
}

func runRender(ctx context.Context, w io.Writer, data []byte, asJSON bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	v, err := jsontree.Parse(data)
	if err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}

	// Rendering never sends, so the pipeline needs no notifier.
	res := webhook.NewHandler(nil, webhook.Config{}, log.NewNop()).Process(ctx, v)

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	_, err = fmt.Fprintln(w, renderCard(res.Card))
	if err != nil {
		return err
	}
	for _, e := range res.Errors {
		fmt.Fprintln(w, warnStyle.Render("error: "+e))
	}
	for _, warn := range res.Warnings {
		fmt.Fprintln(w, warnStyle.Render("warning: "+warn))
	}
	return nil
}
