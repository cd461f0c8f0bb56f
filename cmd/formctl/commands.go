package main

import (
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/OliveiraRafael10/automacao-formulario/internal/adapters/tui"
	"github.com/OliveiraRafael10/automacao-formulario/internal/app/scenario"
	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/httpclient"
)

var errScenariosFailed = errors.New("some scenarios did not pass")

func newMaskCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "mask <value>",
		Short: "Print a phone number with the (XX) XXXXX-XXXX mask applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := setup(ctx, cmd, flags)
			if err != nil {
				return err
			}
			defer e.close()

			masked, err := e.svc.MaskPhone(ctx, args[0])
			if err != nil {
				return fmt.Errorf("masking phone: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), masked)
			return nil
		},
	}
}

func newRunCmd(flags *globalFlags) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Play every scenario in a data file and report the outcomes",
		Long: `run fills one form per scenario, blurring each field after typing it, then
presses submit and compares the outcome with the scenario's expect key
(success when absent). Scenarios are separated by lines holding "---".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := scenario.Load(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			e, err := setup(ctx, cmd, flags)
			if err != nil {
				return err
			}
			defer e.close()

			// Every request of one run shares a correlation ID, so server logs
			// can be matched to it.
			runID := uuid.NewString()
			ctx = httpclient.WithCorrelationID(ctx, runID)
			logger := e.logger.With(slog.String("run_id", runID))
			logger.InfoContext(ctx, "playing scenarios",
				slog.String("file", args[0]),
				slog.Int("scenarios", len(scenarios)),
			)

			results := scenario.NewRunner(e.svc, workers, logger).Run(ctx, scenarios)

			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintln(out, r.String())
			}
			summary := scenario.Summarize(results)
			fmt.Fprintf(out, "\n%d passed, %d failed, %d errors\n", summary.Passed, summary.Failed, summary.Errors)

			if !summary.OK() {
				return errScenariosFailed
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", scenario.DefaultWorkers, "scenarios played at once")
	return cmd
}

func newTUICmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Fill in the registration form in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			e, err := setup(ctx, cmd, flags)
			if err != nil {
				return err
			}
			defer e.close()

			m := tui.New(ctx, e.svc, e.cfg.Form.SuccessNoticeDuration)
			p := tea.NewProgram(m,
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running form: %w", err)
			}
			return nil
		},
	}
}
