package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Techy233/FSE1/internal/display"
	"github.com/Techy233/FSE1/internal/geocode"
	"github.com/Techy233/FSE1/internal/notify"
	"github.com/Techy233/FSE1/internal/workflow"
)

// NewAssessCommand creates the interactive audit session command.
func NewAssessCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "assess",
		Short: "Run an interactive food-safety audit",
		Long: `Walks the inspector through the seven-part audit form section by
section, collects both signatures, scores the checklist, and shows the
compliance results card. The completed report can be exported as markdown
and HTML.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}

			display.Init()

			notifier := &smsNotifier{client: notify.NewClient(cfg.SMS), log: log}
			ctrl := workflow.NewController(notifier)
			geo := geocode.NewClient(cfg.Geocoder)

			sess := newSession(ctrl, geo, cfg, log, cmd.InOrStdin(), cmd.OutOrStdout())
			return sess.run()
		},
	}
}
