package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/mindfulmauschen/healthtrack/internal/cli"
	"github.com/mindfulmauschen/healthtrack/internal/models"
	"github.com/mindfulmauschen/healthtrack/internal/notifier"
	"github.com/mindfulmauschen/healthtrack/internal/storage"
)

// NotifyCmd fires the weekly weigh-in reminder when one is due. Meant to be
// run from a cron job or login script.
type NotifyCmd struct {
	DryRun bool `help:"Report what would be sent without sending anything."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if !settings.NotificationsEnabled {
		if c.DryRun {
			fmt.Println("[DryRun] Notifications are disabled in settings, nothing to send.")
		}
		return nil
	}

	lastWeighIn := ""
	latest, err := ctx.Store.LatestWeightOnOrBefore(models.WeightCurrent, cli.Today())
	switch {
	case err == nil:
		lastWeighIn = latest.Date
	case errors.Is(err, storage.ErrNotFound):
		// no weigh-in yet, the reminder is due
	default:
		return err
	}

	due, err := notifier.WeighInDue(lastWeighIn, time.Now())
	if err != nil {
		return err
	}
	if !due {
		if c.DryRun {
			fmt.Println("[DryRun] Weigh-in already recorded this week, nothing to send.")
		}
		return nil
	}

	title := "Weigh-in"
	message := "Time to record your weekly weight"

	if c.DryRun {
		fmt.Printf("[DryRun] Would send notification: %s - %s\n", title, message)
		return nil
	}

	return notifier.New(settings.SilentNotifications).Notify(title, message)
}
