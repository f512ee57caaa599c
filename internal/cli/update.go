package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RepairBooking/internal/domain"
	"github.com/m04kA/SMC-RepairBooking/internal/ui/registry"
)

func (a *app) newUpdateCommand() *cobra.Command {
	var (
		status string
		notes  string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Изменить статус и заметки заявки",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			reg := registry.NewRegistry(a.store, a.notifier, a.opts.Logger)
			if err := reg.List(ctx, domain.FilterAll); err != nil {
				return err
			}

			// Форма заполняется текущими заметками, флаг --notes их заменяет
			if err := reg.OpenEdit(id); err != nil {
				return err
			}
			if err := reg.SetEditStatus(domain.BookingStatus(status)); err != nil {
				return err
			}
			if cmd.Flags().Changed("notes") {
				if err := reg.SetEditNotes(notes); err != nil {
					return err
				}
			}

			return reg.SaveEdit(ctx)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "new status: pending, confirmed, completed, cancelled")
	cmd.Flags().StringVar(&notes, "notes", "", "replace notes (empty clears them)")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid booking id %q", s)
	}
	return id, nil
}
