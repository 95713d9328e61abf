// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"net/http"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/pdiddy/chronicle/internal/dump"
	"github.com/pdiddy/chronicle/internal/gemini"
	"github.com/pdiddy/chronicle/internal/music"
	"github.com/pdiddy/chronicle/internal/news"
	"github.com/pdiddy/chronicle/internal/ocr"
	"github.com/pdiddy/chronicle/internal/video"
	"github.com/pdiddy/chronicle/pkg/types"
)

// loadConfig assembles the typed configuration from viper, with secrets
// filling keys the config file leaves empty.
func loadConfig() types.Config {
	httpCfg := types.HTTPConfig{
		Timeout:   viper.GetDuration("http_timeout"),
		UserAgent: viper.GetString("user_agent"),
	}
	if httpCfg.Timeout <= 0 {
		httpCfg.Timeout = 30 * time.Second
	}

	return types.Config{
		News: types.NewsConfig{
			HTTPConfig:     httpCfg,
			MaxArticles:    viper.GetInt("max_articles"),
			TroveAPIKey:    secretDefault("trove-api-key", viper.GetString("trove_api_key")),
			GuardianAPIKey: secretDefault("guardian-api-key", viper.GetString("guardian_api_key")),
		},
		Music: types.MusicConfig{
			MaxSongs:            viper.GetInt("max_songs"),
			SimilarityThreshold: viper.GetFloat64("similarity_threshold"),
			ResolveDelay:        viper.GetDuration("resolve_delay"),
			PythonPath:          viper.GetString("python_path"),
			ChartScript:         viper.GetString("chart_script"),
		},
		Video: types.VideoConfig{
			BinPath:       viper.GetString("yt_dlp_path"),
			MaxCandidates: viper.GetInt("max_candidates"),
		},
		Gemini: types.GeminiConfig{
			APIKey: secretDefault("gemini-api-key", viper.GetString("gemini_api_key")),
			Model:  viper.GetString("gemini_model"),
		},
		Dump: types.DumpConfig{
			Dir: viper.GetString("dump_dir"),
		},
	}
}

func httpClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

func dumpSink(cfg types.DumpConfig) *dump.Sink {
	return dump.New(cfg.Dir, logger)
}

// newLOCAdapter is shared by the news federator and the OCR pipeline.
func newLOCAdapter(cfg types.Config) *news.LOCAdapter {
	return &news.LOCAdapter{
		Client:    httpClient(cfg.News.HTTPConfig),
		UserAgent: cfg.News.UserAgent,
		Dump:      dumpSink(cfg.Dump),
	}
}

func newNewsFetcher(cfg types.Config) *news.Fetcher {
	client := httpClient(cfg.News.HTTPConfig)
	sink := dumpSink(cfg.Dump)

	return &news.Fetcher{
		Historical: []news.Adapter{
			&news.TroveAdapter{
				Client:    client,
				APIKey:    cfg.News.TroveAPIKey,
				UserAgent: cfg.News.UserAgent,
				Dump:      sink,
			},
			newLOCAdapter(cfg),
		},
		Modern: &news.GuardianAdapter{
			Client:    client,
			APIKey:    cfg.News.GuardianAPIKey,
			UserAgent: cfg.News.UserAgent,
			Dump:      sink,
		},
		MaxArticles: cfg.News.MaxArticles,
		Log:         logger,
	}
}

func newGeminiClient(cfg types.Config) *gemini.Client {
	return &gemini.Client{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
		HTTP:   httpClient(cfg.News.HTTPConfig),
	}
}

func newMusicFetcher(cfg types.Config, maxSongs int, threshold float64) *music.Fetcher {
	if maxSongs <= 0 {
		maxSongs = cfg.Music.MaxSongs
	}
	if threshold <= 0 {
		threshold = cfg.Music.SimilarityThreshold
	}

	maxCandidates := cfg.Video.MaxCandidates
	if maxCandidates <= 0 {
		// Keep the candidate pool small for better matches.
		maxCandidates = 3
	}

	resolver := &video.Resolver{
		Searcher: &video.YtDlpSearcher{
			Bin: cfg.Video.BinPath,
			Log: logger,
		},
		MaxCandidates: maxCandidates,
		Log:           logger,
	}

	var limiter *rate.Limiter
	if cfg.Music.ResolveDelay > 0 {
		limiter = rate.NewLimiter(rate.Every(cfg.Music.ResolveDelay), 1)
	}

	return &music.Fetcher{
		Chart: &music.BillboardAdapter{
			Python: cfg.Music.PythonPath,
			Script: cfg.Music.ChartScript,
			Dump:   dumpSink(cfg.Dump),
		},
		Suggest:   &music.GeminiSuggester{Client: newGeminiClient(cfg), Log: logger},
		Videos:    resolver,
		MaxSongs:  maxSongs,
		Threshold: threshold,
		Limiter:   limiter,
		Log:       logger,
	}
}

func newOCRPipeline(cfg types.Config) *ocr.Pipeline {
	return &ocr.Pipeline{
		Pages:   newLOCAdapter(cfg),
		Cleaner: &ocr.GeminiCleaner{Client: newGeminiClient(cfg), Log: logger},
		Log:     logger,
	}
}
