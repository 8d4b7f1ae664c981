package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"buildmon/internal/admin"
	"buildmon/internal/config"
	"buildmon/internal/logging"
	"buildmon/internal/monitor"
	"buildmon/internal/sensor"
)

var (
	monPrintOnly  bool
	monColor      bool
	monTUI        bool
	monConfigPath string
	monSchemaPath string
	monTick       time.Duration
	monLogFile    string
	monAdminAddr  string
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Run the real-time building monitor",
	Long:  "monitor starts the sampling loop emitting classified snapshots, alerts, and compliance findings.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(monConfigPath, monSchemaPath)
		if err != nil {
			return err
		}

		log := logging.New()
		writer, cleanup, err := newWriters(cfg, monPrintOnly, monColor, monTUI, monLogFile)
		if err != nil {
			return err
		}
		defer cleanup()

		buildingID := cfg.Building.ID
		if env := os.Getenv("BUILDING_ID"); env != "" {
			buildingID = env
		}

		tickInterval := monTick
		if envTick := os.Getenv("TICK_INTERVAL"); envTick != "" {
			d, err := time.ParseDuration(envTick)
			if err != nil {
				return err
			}
			tickInterval = d
		}

		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		reader := sensor.NewSimulatedReader(cfg.Sensors, rnd)
		equipment := sensor.NewSimulatedEquipment(cfg.Equipment, rnd)
		occupancy := sensor.NewSimulatedOccupancy(cfg.Occupancy.MaxOccupants, rnd)

		agg := monitor.NewAggregator(buildingID, reader, equipment, occupancy, writer, tickInterval, cfg.Alerts.RegistryCapacity)

		ctx, cancel := context.WithCancel(logging.NewContext(context.Background(), log))
		defer cancel()

		adminAddr := monAdminAddr
		if adminAddr == "" {
			adminAddr = cfg.AdminAddr
		}
		if adminAddr != "" {
			srv := admin.NewServer(agg, equipment)
			go func() {
				log.Info("admin UI listening", "addr", adminAddr)
				if err := srv.Start(adminAddr); err != nil && err != http.ErrServerClosed {
					log.Error("admin server failed", "err", err)
				}
			}()
		}

		go agg.Run(ctx)

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		<-sigs

		cancel()
		log.Info("building monitor stopped")
		return nil
	},
}

func init() {
	monitorCmd.Flags().BoolVar(&monPrintOnly, "print-only", false, "Print snapshots to STDOUT instead of writing to DB")
	monitorCmd.Flags().BoolVar(&monColor, "color", false, "Colorize STDOUT snapshot output")
	monitorCmd.Flags().BoolVar(&monTUI, "tui", false, "Render snapshots in a terminal UI")
	monitorCmd.Flags().StringVar(&monConfigPath, "config", "config/monitor.yaml", "Path to monitor configuration YAML")
	monitorCmd.Flags().StringVar(&monSchemaPath, "schema", "schemas/monitor.cue", "Path to CUE schema file")
	monitorCmd.Flags().DurationVar(&monTick, "tick", time.Second, "Sampling tick interval (e.g. 500ms, 2s)")
	monitorCmd.Flags().StringVar(&monLogFile, "log-file", "", "Path to export snapshot logs (JSONL)")
	monitorCmd.Flags().StringVar(&monAdminAddr, "admin", "", "Admin UI listen address (overrides config)")
}
