package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/yorkpirates/seacore/internal/config"
	"github.com/yorkpirates/seacore/internal/core/event"
	coresys "github.com/yorkpirates/seacore/internal/core/system"
	"github.com/yorkpirates/seacore/internal/data"
	"github.com/yorkpirates/seacore/internal/persist"
	"github.com/yorkpirates/seacore/internal/scripting"
	"github.com/yorkpirates/seacore/internal/system"
	"github.com/yorkpirates/seacore/internal/world"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(session string) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m           seacore piratesim  v0.1.0       \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m       headless sea-combat simulation      \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mSession:\033[0m %s\n\n", session)
}

func printSection(title string) {
	lineLen := 46 - utf8.RuneCountInString(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - utf8.RuneCountInString(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Simulation host ────────────────────────────────────────────────

func run() error {
	cfgPath := "config/sim.toml"
	if p := os.Getenv("PIRATESIM_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// Game data
	settings, err := data.LoadSettings(cfg.Paths.Settings)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	sprites, err := data.LoadSpriteTable(cfg.Paths.Sprites)
	if err != nil {
		return fmt.Errorf("load sprites: %w", err)
	}
	tiles, err := data.LoadTileMap(cfg.Paths.TileMap)
	if err != nil {
		return fmt.Errorf("load tile map: %w", err)
	}

	engine, err := scripting.NewEngine(cfg.Paths.Scripts, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer engine.Close()

	// World
	bus := event.NewBus()
	mgr := world.NewManager(world.Deps{
		Settings: settings,
		Sprites:  sprites,
		Tiles:    tiles,
		Bus:      bus,
		Log:      log.Named("world"),
	}, world.Options{
		TileSize:           cfg.Sim.TileSize,
		PoolSize:           cfg.Sim.PoolSize,
		ProjectileLifetime: cfg.Sim.ProjectileLifetime,
		ShipRadius:         cfg.Sim.ContactRadius,
		Boulders:           cfg.Spawn.Boulders,
		Monsters:           cfg.Spawn.Monsters,
		Enhancements:       cfg.Spawn.Enhancements,
		Extent:             cfg.Spawn.WorldExtent,
		Rand:               rand.New(rand.NewSource(seedFrom(cfg.Sim.Seed))),
	})
	mgr.SpawnGame()

	printBanner(mgr.SessionID().String())

	printSection("Game data")
	printStat("Factions", len(mgr.Factions()))
	printStat("Sprites", sprites.Count())
	printStat("Tiles", tiles.Width()*tiles.Height())
	printStat("Walkable tiles", mgr.Graph().Nodes())
	fmt.Println()

	printSection("World")
	printStat("Ships", len(mgr.Ships()))
	printStat("Colleges", len(mgr.Colleges()))
	printStat("Boulders", len(mgr.Boulders()))
	printStat("Monsters", len(mgr.Monsters()))
	printStat("Enhancements", len(mgr.Enhancements()))
	printStat("Cannonball pool", mgr.Pool().Cap())
	printStat("Sprite misses", mgr.SpriteMisses())
	fmt.Println()

	// Combat journal
	printSection("Journal")
	var sink system.JournalSink = system.LogSink{Log: log.Named("journal")}
	if cfg.Journal.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		db, err := persist.NewDB(ctx, cfg.Journal, log)
		if err != nil {
			return fmt.Errorf("journal database: %w", err)
		}
		defer db.Close()
		printOK("PostgreSQL connected")

		version, err := persist.RunMigrations(ctx, db.Pool)
		if err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		printOK(fmt.Sprintf("Journal schema at version %d", version))
		sink = persist.NewJournalRepo(db)
	} else {
		printOK("Writing journal to the log")
	}
	fmt.Println()

	// Systems
	runner := coresys.NewRunner()
	runner.Register(system.NewAISystem(mgr, engine, log.Named("ai"), cfg.Sim.AIInterval, cfg.Sim.FireCooldown, cfg.Sim.ShipSpeed))
	runner.Register(system.NewEventDispatchSystem(bus))
	runner.Register(system.NewMovementSystem(mgr.World(), cfg.Spawn.WorldExtent).WithLand(mgr.Graph(), mgr.TileSize()))
	runner.Register(system.NewProjectileSystem(mgr))
	runner.Register(system.NewContactSystem(mgr.World(), cfg.Sim.CellSize))
	runner.Register(system.NewDeathSystem(mgr, engine, log.Named("death")))
	journal := system.NewJournalSystem(bus, sink, mgr.SessionID(), log, cfg.Journal.FlushInterval, cfg.Journal.BatchSize)
	runner.Register(journal)
	runner.Register(system.NewCleanupSystem(mgr.World(), log))

	printSection("Ready")
	printReady(fmt.Sprintf("Game loop started (tick: %s)", cfg.Sim.TickRate))
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ticker := time.NewTicker(cfg.Sim.TickRate)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				runner.Tick(cfg.Sim.TickRate)
				if cfg.Sim.MaxTicks > 0 && runner.Ticks() >= cfg.Sim.MaxTicks {
					log.Info("tick limit reached", zap.Uint64("ticks", runner.Ticks()))
					return errStopped
				}
				if !mgr.Player().IsAlive() {
					log.Info("player sunk", zap.Uint64("ticks", runner.Ticks()))
					return errStopped
				}
			case <-gctx.Done():
				return nil
			}
		}
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", zap.Error(context.Cause(gctx)))
		return nil
	})

	err = g.Wait()

	flushCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	journal.Flush(flushCtx)

	player := mgr.Player()
	log.Info("simulation stopped",
		zap.Uint64("ticks", runner.Ticks()),
		zap.Int("player_health", player.Health()),
		zap.Int("player_plunder", player.Plunder()),
		zap.Int("player_xp", player.XP()),
		zap.Int("journal_written", journal.Written()),
		zap.Int("pool_overwrites", mgr.Pool().Overwrites()))

	if errors.Is(err, errStopped) {
		return nil
	}
	return err
}

// errStopped ends the loop without it counting as a failure.
var errStopped = errors.New("simulation finished")

// seedFrom turns the configured seed string into an RNG seed. An empty
// string seeds from the clock.
func seedFrom(seed string) int64 {
	if seed == "" {
		return time.Now().UnixNano()
	}
	return int64(xxhash.Sum64String(seed))
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
