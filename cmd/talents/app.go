package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/crawl-talents/internal/config"
	"github.com/KirkDiggler/crawl-talents/internal/dice"
	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/spells"
	"github.com/KirkDiggler/crawl-talents/internal/domain/world"
	"github.com/KirkDiggler/crawl-talents/internal/events"
	"github.com/KirkDiggler/crawl-talents/internal/logger"
	"github.com/KirkDiggler/crawl-talents/internal/repositories/players"
	"github.com/KirkDiggler/crawl-talents/internal/services/ability"
	"github.com/KirkDiggler/crawl-talents/internal/services/talent"
)

// flags are the persistent command line settings; set ones win over the
// environment.
type flags struct {
	options     string
	world       string
	redisURL    string
	memoryRedis bool
	seed        int64
	sprint      bool
}

// app owns everything a command needs. It is built once, on the first
// command that asks for it, so the shell can reuse it between lines.
type app struct {
	in  *bufio.Reader
	out io.Writer

	flags flags

	ready    bool
	cfg      *config.Config
	opts     *config.Options
	world    *world.Snapshot
	players  players.Repository
	resolver *talent.Resolver
	engine   *ability.Engine
	service  ability.Service

	closers []func()
}

func newApp(in io.Reader, out io.Writer) *app {
	return &app{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// init loads configuration and wires the services
func (a *app) init(ctx context.Context) error {
	if a.ready {
		return nil
	}

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.applyFlags(cfg)
	a.cfg = cfg

	logCfg, err := logger.LoadConfig(cfg.LogConfigFile)
	if err != nil {
		return err
	}
	// game text owns stdout; console logs go to stderr
	if err := logger.Initialize(logCfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	abilities.Validate()
	spells.InitSpellDescs()
	spells.InitSpellNameCache()

	if a.opts, err = config.LoadOptions(cfg.OptionsFile); err != nil {
		return err
	}

	if a.world, err = loadWorld(a.flags.world); err != nil {
		return err
	}

	if a.players, err = a.openPlayers(ctx); err != nil {
		return err
	}

	roller := dice.NewRandomRoller()
	if cfg.Seed != 0 {
		roller = dice.NewSeededRoller(cfg.Seed)
	}

	a.resolver = talent.NewResolver(&talent.ResolverConfig{
		World:       a.world,
		LetterRules: a.opts.LetterRules,
	})

	console := &console{in: a.in, out: a.out}
	a.engine = ability.NewEngine(&ability.EngineConfig{
		Resolver:       a.resolver,
		Messenger:      console,
		Prompter:       console,
		Targeter:       console,
		Effector:       console,
		Roller:         roller,
		ConfirmActions: a.opts.ConfirmActions,
		Sprint:         cfg.Sprint || a.opts.Sprint,
	})
	a.engine.EventBus().Subscribe(events.EventTypeAfterActivation, &activationLog{})

	a.service = ability.NewService(&ability.ServiceConfig{
		Players:  a.players,
		Resolver: a.resolver,
		Engine:   a.engine,
	})

	a.ready = true
	return nil
}

func (a *app) applyFlags(cfg *config.Config) {
	if a.flags.options != "" {
		cfg.OptionsFile = a.flags.options
	}
	if a.flags.redisURL != "" {
		cfg.Redis.URL = a.flags.redisURL
	}
	if a.flags.seed != 0 {
		cfg.Seed = a.flags.seed
	}
	if a.flags.sprint {
		cfg.Sprint = true
	}
}

// openPlayers picks the player store: an embedded miniredis, a real
// redis, or memory.
func (a *app) openPlayers(ctx context.Context) (players.Repository, error) {
	url := a.cfg.Redis.URL

	if a.flags.memoryRedis {
		mr, err := miniredis.Run()
		if err != nil {
			return nil, fmt.Errorf("failed to start embedded redis: %w", err)
		}
		a.closers = append(a.closers, mr.Close)
		url = "redis://" + mr.Addr()
		logger.Info("started embedded redis", "addr", mr.Addr())
	}

	if url == "" {
		logger.Info("no redis configured, players live in memory")
		return players.NewInMemory(nil), nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	a.closers = append(a.closers, func() { _ = client.Close() })

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("using redis for players", "addr", opts.Addr, "db", opts.DB)
	return players.NewRedis(&players.RedisRepoConfig{
		Client: client,
		TTL:    a.cfg.Redis.TTL,
	}), nil
}

// Close releases connections and the embedded redis
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// loadWorld reads a surroundings snapshot; no file means an empty room
func loadWorld(path string) (*world.Snapshot, error) {
	snap := &world.Snapshot{}
	if path == "" {
		return snap, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("world file %s does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading world %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("parsing world %s: %w", path, err)
	}
	return snap, nil
}
