package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Techy233/FSE1/internal/display"
	"github.com/Techy233/FSE1/internal/notify"
	"github.com/Techy233/FSE1/internal/report"
	"github.com/Techy233/FSE1/internal/workflow"
)

// NewScoreCommand creates the non-interactive scoring command. It takes a
// pre-filled YAML assessment file and runs the full lifecycle in one shot.
func NewScoreCommand() *cobra.Command {
	var (
		exportReport bool
		exportDir    string
		noSMS        bool
	)

	cmd := &cobra.Command{
		Use:   "score <assessment.yaml>",
		Short: "Score a pre-filled assessment file",
		Long: `Loads a completed audit from a YAML file, applies every answer and
both signatures, scores the checklist, and prints the results card. The same
signature requirement applies as in the interactive session.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}

			display.Init()

			var notifier workflow.Notifier
			if !noSMS {
				notifier = &smsNotifier{client: notify.NewClient(cfg.SMS), log: log}
			}
			ctrl := workflow.NewController(notifier)

			file, err := loadAssessmentFile(args[0])
			if err != nil {
				return err
			}
			if err := file.apply(ctrl.Model()); err != nil {
				return err
			}

			if unanswered := ctrl.Model().UnansweredItems(); len(unanswered) > 0 {
				log.Warnf("%d checklist item(s) unanswered, scoring them as zero", len(unanswered))
			}

			// Walk the state machine the same way the interactive session does.
			for !ctrl.AtLastStep() {
				if err := ctrl.Next(); err != nil {
					return err
				}
			}
			if err := ctrl.RequestSignatures(); err != nil {
				return err
			}
			result, err := ctrl.Finalize()
			if err != nil {
				return fmt.Errorf("%s", userMessage(err))
			}

			view, err := report.NewView(result)
			if err != nil {
				return err
			}
			display.Results(cmd.OutOrStdout(), view)

			if exportReport {
				dir := exportDir
				if dir == "" {
					dir = cfg.ExportDir
				}
				mdPath, htmlPath, err := report.Export(dir, view)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s and %s\n", mdPath, htmlPath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&exportReport, "export", false, "write report.md and report.html after scoring")
	cmd.Flags().StringVar(&exportDir, "export-dir", "", "report output directory (default from config)")
	cmd.Flags().BoolVar(&noSMS, "no-sms", false, "skip the completion SMS even if configured")

	return cmd
}
