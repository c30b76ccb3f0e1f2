package cli

import (
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-CourtSchedule/internal/grid"
)

func newShowCmd(global *globalOptions) *cobra.Command {
	opts := &scheduleOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the slot grid of a schedule date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}

			log, err := global.logger()
			if err != nil {
				return err
			}
			defer log.Close()

			g, err := loadGrid(cmd.Context(), global.client(log), opts, global.labels())
			if err != nil {
				return err
			}
			return grid.Render(cmd.OutOrStdout(), g)
		},
	}

	opts.register(cmd)
	return cmd
}
