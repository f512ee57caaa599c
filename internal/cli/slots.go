package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RepairBooking/internal/domain"
)

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Пн",
	time.Tuesday:   "Вт",
	time.Wednesday: "Ср",
	time.Thursday:  "Чт",
	time.Friday:    "Пт",
	time.Saturday:  "Сб",
	time.Sunday:    "Вс",
}

func (a *app) newSlotsCommand() *cobra.Command {
	var (
		fromStr string
		days    int
	)

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Показать доступные даты и время записи",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now()
			from := now
			if fromStr != "" {
				parsed, err := time.ParseInLocation(domain.DateFormat, fromStr, now.Location())
				if err != nil {
					return fmt.Errorf("invalid --from %q, expected YYYY-MM-DD", fromStr)
				}
				from = parsed
			}
			if days <= 0 {
				return fmt.Errorf("--days must be positive")
			}

			out := cmd.OutOrStdout()
			dates := a.schedule.SelectableDates(from, now, days)
			if len(dates) == 0 {
				fmt.Fprintln(out, "Нет доступных дат")
				return nil
			}

			fmt.Fprintln(out, "Даты:")
			for _, d := range dates {
				fmt.Fprintf(out, "  %s %s\n", d.Format(domain.DisplayDateFormat), weekdayNames[d.Weekday()])
			}

			slots := make([]string, len(a.schedule.TimeSlots))
			for i, ts := range a.schedule.TimeSlots {
				slots[i] = ts.String()
			}
			fmt.Fprintf(out, "Время: %s\n", strings.Join(slots, " "))

			if len(a.schedule.ServiceTypes) > 0 {
				fmt.Fprintf(out, "Услуги: %s\n", strings.Join(a.schedule.ServiceTypes, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "first date YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&days, "days", 14, "number of days to show")
	return cmd
}
