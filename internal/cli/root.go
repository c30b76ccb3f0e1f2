package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-CourtSchedule/internal/domain"
	"github.com/m04kA/SMC-CourtSchedule/internal/grid"
	"github.com/m04kA/SMC-CourtSchedule/internal/integrations/slotsapi"
	"github.com/m04kA/SMC-CourtSchedule/pkg/logger"
)

type globalOptions struct {
	apiURL       string
	timeout      time.Duration
	legacyLabels bool
	verbose      bool
}

// scheduleOptions выбор даты расписания
type scheduleOptions struct {
	scheduleID string
	date       string
	courts     int
}

func NewRoot() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "courtgrid",
		Short:         "Show and book court slots",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.apiURL, "api-url", "http://localhost:3000", "court schedule API base URL")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "API request timeout")
	flags.BoolVar(&opts.legacyLabels, "legacy-labels", true, `label hours 0 and 12 as "0 AM" and "0 PM"`)
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log API calls to stderr")

	cmd.AddCommand(newShowCmd(opts))
	cmd.AddCommand(newBookCmd(opts))
	return cmd
}

func (o *scheduleOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.scheduleID, "schedule", "", "schedule id")
	cmd.Flags().StringVar(&o.date, "date", "", "date, YYYY-MM-DD or RFC 3339")
	cmd.Flags().IntVar(&o.courts, "courts", domain.DefaultCourts, "number of courts to show")
	_ = cmd.MarkFlagRequired("schedule")
	_ = cmd.MarkFlagRequired("date")
}

func (o *scheduleOptions) validate() error {
	if o.courts < domain.MinCourts || o.courts > domain.MaxCourts {
		return fmt.Errorf("--courts must be between %d and %d", domain.MinCourts, domain.MaxCourts)
	}
	return nil
}

func (o *globalOptions) labels() grid.LabelFunc {
	if o.legacyLabels {
		return grid.LegacyLabel
	}
	return grid.ClockLabel
}

func (o *globalOptions) logger() (*logger.Logger, error) {
	if !o.verbose {
		return logger.NewNop(), nil
	}
	return logger.NewStderr("debug")
}

func (o *globalOptions) client(log *logger.Logger) *slotsapi.Client {
	return slotsapi.NewClient(o.apiURL, o.timeout, log)
}

// loadGrid загружает слоты на дату и строит по ним сетку
func loadGrid(ctx context.Context, client *slotsapi.Client, o *scheduleOptions, label grid.LabelFunc) (grid.Grid, error) {
	slots, err := client.GetSlots(ctx, o.scheduleID, o.date)
	if err != nil {
		return grid.Grid{}, fmt.Errorf("get slots: %w", err)
	}
	return grid.ProjectWithLabels(slotsapi.ToDomainSlots(slots), o.courts, label), nil
}
