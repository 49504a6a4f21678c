package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/viper"

	idgen "github.com/quentel/tally/internal/adapters/id"
	"github.com/quentel/tally/internal/adapters/notify"
	"github.com/quentel/tally/internal/adapters/render/dashboard"
	filestate "github.com/quentel/tally/internal/adapters/state/file"
	"github.com/quentel/tally/internal/application"
	"github.com/quentel/tally/internal/config"
	"github.com/quentel/tally/internal/ports"
)

type app struct {
	timer         *application.TimerService
	history       *application.HistoryService
	notifier      ports.Notifier
	statsRenderer func(application.Statistics, dashboard.RenderOptions) (string, error)
	cfg           config.Config
	now           func() time.Time
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	store := filestate.NewStore(cfg.DataDir)
	clock := ports.SystemClock{}

	return &app{
		timer:         application.NewTimerService(store, clock, logger),
		history:       application.NewHistoryService(store, idgen.UUIDGenerator{}, clock, logger),
		notifier:      notify.DesktopNotifier{},
		statsRenderer: dashboard.Render,
		cfg:           cfg,
		now:           time.Now,
	}, nil
}
