package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Techy233/FSE1/internal/config"
	"github.com/Techy233/FSE1/internal/logger"
	"github.com/Techy233/FSE1/internal/models"
	"github.com/Techy233/FSE1/internal/notify"
)

// loadEnvironment resolves config and logger from the persistent flags.
func loadEnvironment(cmd *cobra.Command) (*config.Config, *logger.ConsoleLogger, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, nil, err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}

	return cfg, logger.NewConsoleLogger(os.Stderr, cfg.LogLevel), nil
}

// smsNotifier adapts the SMS client to the workflow's notifier boundary.
// Delivery runs in the background; the outcome only ever reaches the logger.
type smsNotifier struct {
	client *notify.Client
	log    *logger.ConsoleLogger
}

func (n *smsNotifier) Notify(result *models.Result) {
	if !n.client.IsAvailable() {
		n.log.Debugf("SMS notifications disabled, skipping completion summary")
		return
	}

	to := result.Background.PhoneNumber
	if to == "" {
		n.log.Warnf("no facility phone number on record, completion SMS not sent")
		return
	}

	message := notify.Summary(result.Background.FacilityName, result.Total, result.Stars)
	n.client.Dispatch(to, message, func(err error) {
		if err != nil {
			n.log.Warnf("completion SMS to %s failed: %v", to, err)
			return
		}
		n.log.Infof("completion SMS sent to %s", to)
	})
}
