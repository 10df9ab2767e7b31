package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/jacksonc124/CollegeFootballPredictor2026/internal/cfb"
)

var season = flag.Int("season", -1, "season `year` (default: detected from today's date)")
var week = flag.Int("week", -1, "display week `number`, 1-15 regular season, 16-20 postseason (default: detected from today's date)")
var homeField = flag.Float64("homefield", -1, "home-field advantage in `points` (default: 2.5 regular season, 0.0 postseason)")
var outPath = flag.String("out", "", "all-games CSV `path` (default: picks_<season>_<type>_wk<week>.csv)")
var strongPath = flag.String("strong-out", "", "strong-picks CSV `path` (default: strong_picks_<season>_<type>_wk<week>.csv)")
var providerName = flag.String("provider", "", "preferred sportsbook `name` (default: consensus)")
var cacheDir = flag.String("cache", "", "cache `directory` (default: cfb_cache)")
var configPath = flag.String("config", "", "YAML parameter `file`")
var parlayLegs = flag.Int("parlay", 0, "also print top parlays with this many `legs` (0 disables)")
var verbose = flag.Bool("v", false, "debug logging")

func main() {
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(log); err != nil {
		var unavailable *cfb.SourceUnavailableError
		if errors.As(err, &unavailable) {
			log.Errorf("%s could not be fetched and no cache exists: %v", unavailable.Resource, unavailable.Err)
		} else {
			log.Error(err)
		}
		os.Exit(1)
	}
}

func run(log *logrus.Logger) error {
	_ = godotenv.Load()

	cfg, err := cfb.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *providerName != "" {
		cfg.Provider = *providerName
	}
	if *cacheDir != "" {
		cfg.CacheDir = *cacheDir
	}
	if *homeField >= 0 {
		cfg.HomeFieldAdvantage = homeField
	}

	year, displayWeek := *season, *week
	if year < 0 || displayWeek < 0 {
		detectedYear, detectedWeek := cfb.CurrentWeek(time.Now())
		if year < 0 {
			year = detectedYear
		}
		if displayWeek < 0 {
			displayWeek = detectedWeek
		}
		log.WithFields(logrus.Fields{"season": year, "week": displayWeek}).Info("season/week detected from calendar")
	}
	seasonType, apiWeek := cfb.TranslateWeek(displayWeek)

	token := os.Getenv("BEARER_TOKEN")
	if token == "" {
		log.Warn("BEARER_TOKEN not set; only cached data will be available")
	}

	client := cfb.NewCFBDClient(token)
	cache := cfb.Cache{Dir: cfg.CacheDir}
	ratingsSource := &cfb.RatingsSource{Provider: client, Cache: cache, Log: log}
	linesSource := &cfb.LinesSource{Provider: client, Cache: cache, Preferred: cfg.Provider, Log: log}

	ctx := context.Background()
	ratings, err := ratingsSource.Ratings(ctx, year)
	if err != nil {
		return err
	}
	lines, err := linesSource.Lines(ctx, year, apiWeek, seasonType)
	if err != nil {
		return err
	}

	model := cfb.NewSpreadModel(cfg.HomeField(seasonType), cfg.SpreadStdDev)
	model.Log = log
	picks := model.ComputePicks(ratings, lines)
	strong := cfb.StrongPicks(picks, cfg.EdgeThreshold, cfg.CoverProbThreshold)

	allTitle := fmt.Sprintf("ALL GAMES %d %s (model vs market)", year, strings.ToUpper(cfb.WeekLabel(displayWeek)))
	if err := cfb.WriteTable(os.Stdout, picks, allTitle); err != nil {
		return err
	}
	strongTitle := fmt.Sprintf("STRONG PICKS (|edge| >= %.1f, cover prob >= %.2f)", cfg.EdgeThreshold, cfg.CoverProbThreshold)
	if err := cfb.WriteTable(os.Stdout, strong, strongTitle); err != nil {
		return err
	}

	if *parlayLegs > 0 {
		parlays := cfb.BuildParlays(picks, *parlayLegs, 5)
		cfb.WriteParlays(os.Stdout, parlays, *parlayLegs)
	}

	allOut := *outPath
	if allOut == "" {
		allOut = fmt.Sprintf("picks_%d_%s_wk%d.csv", year, seasonType, apiWeek)
	}
	if err := cfb.WriteCSV(picks, allOut); err != nil {
		return err
	}
	log.WithField("path", allOut).Info("wrote all-games CSV")

	strongOut := *strongPath
	if strongOut == "" {
		strongOut = fmt.Sprintf("strong_picks_%d_%s_wk%d.csv", year, seasonType, apiWeek)
	}
	if err := cfb.WriteCSV(strong, strongOut); err != nil {
		return err
	}
	log.WithField("path", strongOut).Info("wrote strong-picks CSV")

	return nil
}
