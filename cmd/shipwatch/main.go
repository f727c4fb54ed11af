package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"shipwatch/internal/config"
	"shipwatch/internal/geo"
	"shipwatch/internal/nmea"
	"shipwatch/internal/sim"
	"shipwatch/internal/tracker"
	"shipwatch/internal/udp"
	"shipwatch/internal/web"
)

func main() {
	configPath := pflag.StringP("config", "c", "./shipwatch.yaml", "path to yaml config")
	sourceAddr := pflag.String("source", "", "override source.addr (host:port)")
	debug := pflag.Bool("debug", false, "enable debug logging")
	pflag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "shipwatch",
	})
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("config load failed", "err", err)
	}
	if *sourceAddr != "" {
		cfg.Source.Kind = "tcp"
		cfg.Source.Addr = *sourceAddr
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var forward *udp.Forwarder
	if cfg.Forward.Enable {
		forward, err = udp.NewForwarder(cfg.Forward.Dest)
		if err != nil {
			logger.Fatal("udp forwarder init failed", "err", err)
		}
		defer forward.Close()
		logger.Info("forwarding feed", "dest", cfg.Forward.Dest)
	}

	watcher := tracker.New(tracker.Config{
		Store: tracker.StoreConfig{
			MaxVessels: cfg.Tracker.MaxVessels,
			TTL:        cfg.Tracker.TTL,
		},
		NameTTL: cfg.Tracker.NameTTL,
		Logger:  logger,
	})
	watcher.We = func(us geo.PCS) {
		logger.Debug("ownship",
			"lat", us.LatDeg, "lon", us.LonDeg,
			"cog", us.CourseDeg, "sog", us.SpeedKt)
	}
	watcher.They = closeEncounterAlerter(logger, watcher, cfg.Alert)

	var webServer *web.Server
	var feedSnap func() nmea.ClientSnapshot

	onLine := func(line []byte) {
		if webServer != nil {
			webServer.CountLine()
		}
		if forward != nil {
			if err := forward.Send(line); err != nil {
				logger.Debug("udp forward failed", "err", err)
			}
		}
	}

	logger.Info("shipwatch starting", "source", cfg.Source.Kind)

	var runSource func() error
	switch cfg.Source.Kind {
	case "tcp":
		svc := tracker.NewService(watcher, nmea.ClientConfig{
			Addr:           cfg.Source.Addr,
			ReconnectDelay: cfg.Source.ReconnectDelay,
			MaxLineBytes:   cfg.Source.MaxLineBytes,
		}, onLine)
		feedSnap = svc.Snapshot
		runSource = func() error { return svc.Run(ctx) }

	case "serial":
		src, err := nmea.OpenSerial(nmea.SerialConfig{
			Device:       cfg.Source.Device,
			Baud:         cfg.Source.Baud,
			MaxLineBytes: cfg.Source.MaxLineBytes,
		})
		if err != nil {
			logger.Fatal("serial open failed", "err", err)
		}
		defer src.Close()
		runSource = func() error {
			return src.Run(ctx, func(line []byte) {
				onLine(line)
				watcher.HandleLine(line)
			})
		}

	case "sim":
		runSource = func() error {
			return runSim(ctx, cfg.Sim, watcher, onLine)
		}
	}

	if cfg.Web.Enable {
		webServer = web.NewServer(cfg.Web.Listen, watcher, feedSnap)
		go func() {
			logger.Info("web listening", "addr", cfg.Web.Listen)
			if err := webServer.ListenAndServe(); err != nil && ctx.Err() == nil {
				logger.Error("web server stopped", "err", err)
				cancel()
			}
		}()
	}

	if err := runSource(); err != nil && ctx.Err() == nil {
		logger.Error("source stopped", "err", err)
	}

	<-ctx.Done()
	logger.Info("shipwatch stopping")

	if webServer != nil {
		shutCtx, shutCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutCancel()
		_ = webServer.Shutdown(shutCtx)
	}
}

// closeEncounterAlerter warns once per sighting when a target's closest
// point of approach falls inside the configured bubble.
func closeEncounterAlerter(logger *log.Logger, w *tracker.Watcher, alert config.AlertConfig) func(us, them geo.PCS, mmsi uint32) {
	return func(us, them geo.PCS, mmsi uint32) {
		t, ok := geo.TCPA(us, them)
		if !ok || t < 0 || t > alert.TCPAMax.Hours() {
			return
		}
		d, ok := geo.Distance(us, them, t)
		if !ok || d > alert.CPANm {
			return
		}
		name, _ := w.Name(mmsi)
		logger.Warn("close encounter",
			"mmsi", mmsi, "name", name,
			"cpa_nm", d, "tcpa_min", t*60,
			"range_nm", geo.Range(us.LatDeg, us.LonDeg, them.LatDeg, them.LonDeg),
			"bearing", geo.Bearing(us.LatDeg, us.LonDeg, them.LatDeg, them.LonDeg))
	}
}

// runSim feeds the watcher from the deterministic simulator at 1 Hz.
func runSim(ctx context.Context, cfg config.SimConfig, watcher *tracker.Watcher, onLine func([]byte)) error {
	ownship := sim.Ownship{
		CenterLatDeg: cfg.CenterLatDeg,
		CenterLonDeg: cfg.CenterLonDeg,
		RadiusNm:     cfg.RadiusNm / 2,
		SpeedKt:      cfg.SpeedKt,
		Period:       cfg.Period,
	}
	fleet := sim.Fleet{
		CenterLatDeg: cfg.CenterLatDeg,
		CenterLonDeg: cfg.CenterLonDeg,
		RadiusNm:     cfg.RadiusNm,
		SpeedKt:      cfg.SpeedKt,
		Period:       cfg.Period,
		Count:        cfg.Vessels,
	}

	tick := time.NewTicker(1 * time.Second)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-tick.C:
			lines := append([]string{ownship.RMCSentence(now)}, fleet.Sentences(now)...)
			for _, line := range lines {
				b := []byte(line)
				onLine(b)
				watcher.HandleLine(b)
			}
		}
	}
}
