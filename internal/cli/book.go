package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RepairBooking/internal/domain"
	"github.com/m04kA/SMC-RepairBooking/internal/ui/intake"
)

func (a *app) newBookCommand() *cobra.Command {
	var (
		dateStr string
		timeStr string
		details intake.Details
	)

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Записаться на ремонт",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := intake.NewForm(a.store, a.notifier, a.schedule, a.opts.Logger).
				WithTimeProvider(nowProvider(a.opts.Now))
			form.Open()

			if dateStr != "" {
				date, err := time.ParseInLocation(domain.DateFormat, dateStr, a.now().Location())
				if err != nil {
					return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", dateStr)
				}
				if err := form.SelectDate(date); err != nil {
					return err
				}
			}

			if timeStr != "" {
				if err := form.SelectTime(timeStr); err != nil {
					return err
				}
			}

			if err := form.SetDetails(details); err != nil {
				return err
			}

			// Отсутствующие дата, время или контакты отклоняются при отправке
			confirmation, err := form.Submit(cmd.Context())
			if err != nil {
				return err
			}

			if confirmation.BookingID != 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Номер заявки: %d\n", confirmation.BookingID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "booking date YYYY-MM-DD")
	cmd.Flags().StringVar(&timeStr, "time", "", "time slot HH:MM")
	cmd.Flags().StringVar(&details.ClientName, "name", "", "client name")
	cmd.Flags().StringVar(&details.ClientPhone, "phone", "", "client phone")
	cmd.Flags().StringVar(&details.ClientEmail, "email", "", "client email (optional)")
	cmd.Flags().StringVar(&details.ServiceType, "service", "", "service type (optional)")
	cmd.Flags().StringVar(&details.Notes, "notes", "", "problem description (optional)")
	return cmd
}
