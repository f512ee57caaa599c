package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RepairBooking/internal/domain"
	"github.com/m04kA/SMC-RepairBooking/internal/ui/registry"
)

func (a *app) newDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Удалить заявку",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var confirmer registry.Confirmer = promptConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
			if yes {
				confirmer = registry.ConfirmFunc(func(string) bool { return true })
			}

			reg := registry.NewRegistry(a.store, a.notifier, a.opts.Logger)
			if err := reg.Delete(cmd.Context(), id, confirmer); err != nil {
				return err
			}

			view := reg.View()
			if view.Loaded && view.Filter == domain.FilterAll {
				renderCounts(cmd.OutOrStdout(), view.Counts)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")
	return cmd
}

// promptConfirmer спрашивает подтверждение, согласием считается только y/yes/д/да
func promptConfirmer(in io.Reader, out io.Writer) registry.Confirmer {
	reader := bufio.NewReader(in)
	return registry.ConfirmFunc(func(prompt string) bool {
		fmt.Fprintf(out, "%s [y/N]: ", prompt)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes", "д", "да":
			return true
		default:
			return false
		}
	})
}
