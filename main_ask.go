package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"sqlgenie/ai"
	"sqlgenie/config"
	"sqlgenie/models"
	"sqlgenie/service"
	"sqlgenie/session"
	"sqlgenie/validation"
)

type askOptions struct {
	delay  time.Duration
	csv    bool
	maxLen int
	rows   int
}

func newAskCmd(cfg config.Config) *cobra.Command {
	opts := askOptions{maxLen: cfg.MaxQueryLength, rows: cfg.DefaultEstimatedRows}

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Generate SQL for a question and print the mocked result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd.Context(), cmd.OutOrStdout(), strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().DurationVar(&opts.delay, "delay", 0, "Simulated processing delay")
	cmd.Flags().BoolVar(&opts.csv, "csv", false, "Print the result as CSV")

	return cmd
}

func runAsk(ctx context.Context, w io.Writer, question string, opts askOptions) error {
	if err := validation.ValidateQueryLength(question, opts.maxLen); err != nil {
		return err
	}

	p := session.NewProcessor(ai.New(), service.NewSynthesizer(), session.Options{Delay: opts.delay})
	state, err := p.Submit(ctx, question)
	if err != nil {
		return err
	}

	if opts.csv {
		_, err := fmt.Fprintln(w, service.ExportCSV(state.Result))
		return err
	}

	analysis := service.Analyze(state.GeneratedSQL, opts.rows)
	fmt.Fprintf(w, "SQL: %s\n", state.GeneratedSQL)
	fmt.Fprintf(w, "Type: %s, tables: %d, estimated rows: %d\n\n", analysis.QueryType, analysis.TableCount, analysis.EstimatedRows)
	printResult(w, state.Result)
	fmt.Fprintf(w, "%d rows, executed in %.0fms\n", state.Result.RowCount, state.Result.ExecutionTime)

	return nil
}

func printResult(w io.Writer, result *models.QueryResult) {
	table := tablewriter.NewWriter(w)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(result.Columns)
	for _, row := range result.Data {
		data := []string{}
		for _, col := range result.Columns {
			value, ok := row.Get(col)
			if !ok || value == nil {
				data = append(data, "-")
				continue
			}
			data = append(data, fmt.Sprintf("%v", value))
		}

		table.Append(data)
	}

	table.Render()
}
