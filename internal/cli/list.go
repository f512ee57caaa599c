package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RepairBooking/internal/domain"
	"github.com/m04kA/SMC-RepairBooking/internal/ui/registry"
)

const msgEmptyList = "Записей не найдено"

func (a *app) newListCommand() *cobra.Command {
	var (
		status     string
		exportPath string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Список заявок с фильтром по статусу",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, ok := domain.ParseStatusFilter(status)
			if !ok {
				return fmt.Errorf("unknown status %q", status)
			}

			reg := registry.NewRegistry(a.store, a.notifier, a.opts.Logger)
			if err := reg.List(cmd.Context(), filter); err != nil {
				return err
			}

			view := reg.View()
			if exportPath != "" {
				if err := exportXLSX(exportPath, view); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Сохранено записей: %d (%s)\n", len(view.Bookings), exportPath)
				return nil
			}

			return renderView(cmd.OutOrStdout(), view)
		},
	}

	cmd.Flags().StringVar(&status, "status", "all", "filter: all, pending, confirmed, completed, cancelled")
	cmd.Flags().StringVar(&exportPath, "export", "", "save the list to an .xlsx file instead of printing it")
	return cmd
}

func renderView(out io.Writer, view registry.View) error {
	fmt.Fprintf(out, "Фильтр: %s\n", view.Filter.Label())
	renderCounts(out, view.Counts)

	if view.IsEmpty() {
		fmt.Fprintln(out, msgEmptyList)
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tДАТА\tВРЕМЯ\tКЛИЕНТ\tТЕЛЕФОН\tУСЛУГА\tСТАТУС")
	for _, b := range view.Bookings {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			b.ID,
			formatDate(b),
			b.BookingTime.String(),
			b.ClientName,
			b.ClientPhone,
			valueOrDash(b.ServiceType),
			domain.PresentStatus(b.Status).Label,
		)
	}
	return tw.Flush()
}

func renderCounts(out io.Writer, c domain.StatusCounts) {
	fmt.Fprintf(out, "Всего: %d | %s: %d | %s: %d | %s: %d | %s: %d\n",
		c.Total,
		domain.PresentStatus(domain.StatusPending).Label, c.Pending,
		domain.PresentStatus(domain.StatusConfirmed).Label, c.Confirmed,
		domain.PresentStatus(domain.StatusCompleted).Label, c.Completed,
		domain.PresentStatus(domain.StatusCancelled).Label, c.Cancelled,
	)
}

func formatDate(b domain.Booking) string {
	if b.BookingDate.IsZero() {
		return "-"
	}
	return b.BookingDate.Format(domain.DisplayDateFormat)
}

func valueOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
