package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-CourtSchedule/internal/bookingflow"
	"github.com/m04kA/SMC-CourtSchedule/internal/domain"
	"github.com/m04kA/SMC-CourtSchedule/internal/grid"
	"github.com/m04kA/SMC-CourtSchedule/internal/integrations/slotsapi"
)

type bookOptions struct {
	scheduleOptions
	hour    int
	court   int
	name    string
	contact string
	amount  int64
}

func newBookCmd(global *globalOptions) *cobra.Command {
	opts := &bookOptions{}

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book one court for one hour and print the updated grid",
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

			client := global.client(log)
			g, err := loadGrid(cmd.Context(), client, &opts.scheduleOptions, global.labels())
			if err != nil {
				return err
			}

			booker := slotsapi.NewBooker(client, opts.scheduleID, opts.date)
			flow := bookingflow.New(g, booker, opts.amount, log)

			// 1. Выбираем ячейку (--court это номер из заголовка, с единицы)
			if err := flow.SelectCell(opts.hour, opts.court-1); err != nil {
				return fmt.Errorf("select hour %d court %d: %w", opts.hour, opts.court, err)
			}

			// 2. Заполняем форму
			if err := flow.SetCustomerName(opts.name); err != nil {
				return err
			}
			if err := flow.SetContactInfo(opts.contact); err != nil {
				return err
			}

			// 3. Отправляем
			if err := flow.Submit(cmd.Context()); err != nil {
				return fmt.Errorf("booking failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Booked court %d at %s for %s\n\n", opts.court, flow.Grid().Rows[opts.hour].Time, opts.name)
			return grid.Render(out, flow.Grid())
		},
	}

	opts.register(cmd)
	cmd.Flags().IntVar(&opts.hour, "hour", -1, "start hour, 0-23")
	cmd.Flags().IntVar(&opts.court, "court", 0, "court number, 1-based")
	cmd.Flags().StringVar(&opts.name, "name", "", "customer name")
	cmd.Flags().StringVar(&opts.contact, "contact", "", "contact info")
	cmd.Flags().Int64Var(&opts.amount, "amount", domain.DefaultBookingAmount, "booking amount")
	_ = cmd.MarkFlagRequired("hour")
	_ = cmd.MarkFlagRequired("court")
	return cmd
}
