package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RepairBooking/internal/config"
	"github.com/m04kA/SMC-RepairBooking/internal/domain"
	"github.com/m04kA/SMC-RepairBooking/internal/integrations/bookingstore"
	"github.com/m04kA/SMC-RepairBooking/internal/ui/notify"
	"github.com/m04kA/SMC-RepairBooking/pkg/logger"
)

const defaultConfigPath = "repairctl.toml"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Options зависимости CLI, незаданные создаются из конфигурации
type Options struct {
	Out    io.Writer
	In     io.Reader
	Logger Logger
	Now    func() time.Time
}

// app состояние одного запуска CLI
type app struct {
	opts       Options
	configPath string
	storeURL   string

	cfg      *config.Config
	schedule domain.Schedule
	store    *bookingstore.Client
	notifier *notify.Console
	closeLog func() error
}

// NewRootCommand создает корневую команду repairctl
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	a := &app{opts: opts}

	root := &cobra.Command{
		Use:           "repairctl",
		Short:         "Запись на ремонт техники и управление заявками",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closeLog != nil {
				return a.closeLog()
			}
			return nil
		},
	}

	root.SetOut(opts.Out)
	root.SetErr(opts.Out)
	root.SetIn(opts.In)

	root.PersistentFlags().StringVar(&a.configPath, "config", defaultConfigPath, "path to TOML config")
	root.PersistentFlags().StringVar(&a.storeURL, "store", "", "booking store URL (overrides store.url)")

	root.AddCommand(
		a.newSlotsCommand(),
		a.newBookCommand(),
		a.newListCommand(),
		a.newUpdateCommand(),
		a.newDeleteCommand(),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.storeURL != "" {
		a.cfg.Store.URL = a.storeURL
	}

	schedule, err := cfg.Schedule.ToDomain()
	if err != nil {
		return err
	}
	a.schedule = schedule

	if a.opts.Logger == nil {
		log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.opts.Logger = log
		a.closeLog = log.Close
	}

	a.store = bookingstore.NewClient(a.cfg.Store.URL, a.cfg.Store.TimeoutDuration(), a.opts.Logger)
	a.notifier = notify.NewConsole(a.opts.Out)
	return nil
}

// loadConfig читает конфигурацию; отсутствие файла по умолчанию не ошибка
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(a.configPath)
	if err == nil {
		return cfg, nil
	}

	if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
		return config.Default(), nil
	}
	return nil, err
}

func (a *app) now() time.Time {
	return a.opts.Now()
}

// nowProvider адаптер функции времени к TimeProvider
type nowProvider func() time.Time

func (p nowProvider) Now() time.Time { return p() }
