package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/slidegenie/slidematch/internal/config"
	"github.com/slidegenie/slidematch/internal/db"
	dbRedis "github.com/slidegenie/slidematch/internal/db/redis"
	"github.com/slidegenie/slidematch/internal/domain"
	logpkg "github.com/slidegenie/slidematch/internal/logger"
	"github.com/slidegenie/slidematch/internal/metrics"
	"github.com/slidegenie/slidematch/internal/repository/embcache"
	"github.com/slidegenie/slidematch/internal/tfidf"
	provOpenai "github.com/slidegenie/slidematch/internal/transport/openai"
	analyzeuc "github.com/slidegenie/slidematch/internal/usecase/analyze"
	describeuc "github.com/slidegenie/slidematch/internal/usecase/describe"
	matchuc "github.com/slidegenie/slidematch/internal/usecase/match"
	relevanceuc "github.com/slidegenie/slidematch/internal/usecase/relevance"
	semanticuc "github.com/slidegenie/slidematch/internal/usecase/semantic"
	"github.com/slidegenie/slidematch/internal/version"
)

const usage = `slidematch - match uploaded images to generated slide decks

Usage:
  slidematch match   -deck <deck.json> -images <dir> [-mode auto|vision|filename]
  slidematch rank    -goals <text> -images <dir>
  slidematch analyze -goals <text> -content <file>
  slidematch version

Results are printed to stdout as JSON; logs go to stderr.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if os.Args[1] == "version" {
		fmt.Printf("slidematch %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date)
		return
	}

	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting slidematch",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Bool("provider_configured", cfg.HasProvider()),
		zap.Bool("vision_disabled", cfg.Vision.Disabled),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	metrics.Register(prometheus.DefaultRegisterer)

	app, cleanup := buildApp(cfg, logger)
	defer cleanup()

	switch os.Args[1] {
	case "match":
		err = runMatch(app, os.Args[2:])
	case "rank":
		err = runRank(app, os.Args[2:])
	case "analyze":
		err = runAnalyze(app, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		logger.Fatal("Command failed", zap.String("command", os.Args[1]), zap.Error(err))
	}
}

// app holds the assembled services.
type app struct {
	matcher  *matchuc.Service
	ranker   *relevanceuc.Service
	analyzer *analyzeuc.Service
}

// buildApp is the composition root: providers, cache decorator, and
// use case services. Absent capabilities stay nil and the services
// degrade on their own.
func buildApp(cfg config.Config, logger *zap.Logger) (*app, func()) {
	cleanup := func() {}

	// Optional embedding cache store
	var store db.Store
	if cfg.Cache.Enabled {
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		if err := s.Ping(context.Background()); err != nil {
			logger.Fatal("Cache store not reachable", zap.Error(err))
		}
		store = s
		cleanup = s.Close
		logger.Info("Connected to embedding cache", zap.Strings("addrs", cfg.Cache.Addrs))
	}

	// Embedding provider, cached when a store is configured
	var embedder semanticuc.Embedder
	if cfg.HasProvider() {
		base := provOpenai.NewEmbedder(&provOpenai.EmbedderConfig{
			APIKey:     cfg.Provider.APIKey,
			BaseURL:    cfg.Provider.BaseURL,
			Model:      cfg.Embedding.Model,
			Dimensions: cfg.Embedding.Dimensions,
			Provider:   cfg.Provider.Name,
			Logger:     logger,
		})
		embedder = base
		if store != nil {
			embedder = embcache.New(base, store,
				time.Duration(cfg.Cache.TTLSec)*time.Second,
				metrics.EmbeddingCacheTotal, logger)
		}
	}

	// Vision provider
	var vision describeuc.Vision
	if cfg.HasProvider() && !cfg.Vision.Disabled {
		vision = provOpenai.NewVision(&provOpenai.VisionConfig{
			APIKey:    cfg.Provider.APIKey,
			BaseURL:   cfg.Provider.BaseURL,
			Model:     cfg.Vision.Model,
			MaxTokens: cfg.Vision.MaxTokens,
			Provider:  cfg.Provider.Name,
			Logger:    logger,
		})
	}

	lexical := tfidf.New(logger)
	semantic := semanticuc.New(embedder, logger)
	describer := describeuc.New(vision, time.Duration(cfg.Vision.TimeoutSec)*time.Second, logger)

	return &app{
		matcher:  matchuc.New(describer, semantic, lexical, logger),
		ranker:   relevanceuc.New(describer, semantic, logger),
		analyzer: analyzeuc.New(lexical),
	}, cleanup
}

func runMatch(app *app, args []string) error {
	fs := flag.NewFlagSet("match", flag.ExitOnError)
	deckPath := fs.String("deck", "", "path to the deck JSON file")
	imagesDir := fs.String("images", "", "directory with candidate images")
	mode := fs.String("mode", "auto", "matching mode: auto, vision, filename")
	_ = fs.Parse(args)

	if *deckPath == "" || *imagesDir == "" {
		return fmt.Errorf("both -deck and -images are required")
	}
	m, err := parseMode(*mode)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(filepath.Clean(*deckPath))
	if err != nil {
		return fmt.Errorf("read deck: %w", err)
	}
	var deck domain.Deck
	if err := json.Unmarshal(data, &deck); err != nil {
		return fmt.Errorf("parse deck: %w", err)
	}

	images, err := loadImages(*imagesDir)
	if err != nil {
		return err
	}

	app.matcher.Match(context.Background(), &deck, images, m)
	return printJSON(deck)
}

func runRank(app *app, args []string) error {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	goals := fs.String("goals", "", "presentation goals text")
	imagesDir := fs.String("images", "", "directory with candidate images")
	_ = fs.Parse(args)

	if *goals == "" || *imagesDir == "" {
		return fmt.Errorf("both -goals and -images are required")
	}

	images, err := loadImages(*imagesDir)
	if err != nil {
		return err
	}

	entries := app.ranker.Rank(context.Background(), *goals, images)
	if entries == nil {
		entries = []domain.RelevanceEntry{}
	}
	return printJSON(entries)
}

func runAnalyze(app *app, args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	goals := fs.String("goals", "", "presentation goals text")
	contentPath := fs.String("content", "", "path to the extracted content text file")
	_ = fs.Parse(args)

	if *goals == "" || *contentPath == "" {
		return fmt.Errorf("both -goals and -content are required")
	}

	data, err := os.ReadFile(filepath.Clean(*contentPath))
	if err != nil {
		return fmt.Errorf("read content: %w", err)
	}
	content := string(data)

	sim := app.analyzer.Relevance(*goals, content)
	return printJSON(struct {
		Score          float64  `json:"similarity_score"`
		Assessment     string   `json:"assessment"`
		SharedKeywords []string `json:"shared_keywords"`
		ContextPrompt  string   `json:"context_prompt"`
	}{
		Score:          sim.Score,
		Assessment:     sim.Label,
		SharedKeywords: sim.SharedKeywords,
		ContextPrompt:  analyzeuc.ContextPrompt(*goals, content, sim),
	})
}

func parseMode(s string) (matchuc.Mode, error) {
	switch matchuc.Mode(strings.ToLower(s)) {
	case matchuc.ModeAuto:
		return matchuc.ModeAuto, nil
	case matchuc.ModeVision:
		return matchuc.ModeVision, nil
	case matchuc.ModeFilename:
		return matchuc.ModeFilename, nil
	}
	return "", fmt.Errorf("unknown mode %q (want auto, vision or filename)", s)
}

// imageExtensions are the file types picked up from the images directory.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

// loadImages reads every supported image from dir, in directory order.
func loadImages(dir string) ([]domain.ImageAsset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read images dir: %w", err)
	}

	var images []domain.ImageAsset
	for _, entry := range entries {
		if entry.IsDir() || !imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read image %s: %w", entry.Name(), err)
		}
		images = append(images, domain.ImageAsset{Name: entry.Name(), Bytes: data})
	}
	return images, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
