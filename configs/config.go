package configs

import (
	"encoding/json"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joaovbs/sugestor/pkg/suggest/engine"
	"github.com/joaovbs/sugestor/pkg/suggest/scorer"
)

type ConfigData struct {
	CorpusPath     string `json:"corpus_path" validate:"required"`
	StorePath      string `json:"store_path"`      // empty runs the store in memory
	DictionaryPath string `json:"dictionary_path"` // empty uses the bundled vocabulary
	TUIBorderColor string `json:"tui_border_color" validate:"required"`
	LogLevel       string `json:"log_level" validate:"oneof=debug info error"`

	MinQueryLen  int `json:"min_query_len" validate:"min=1,max=5"`
	MinTermLen   int `json:"min_term_len" validate:"min=1,max=8"`
	MinPhraseLen int `json:"min_phrase_len" validate:"min=2,max=20"`
	MaxWords     int `json:"max_words" validate:"min=1,max=32"`

	AcceptThreshold  float64 `json:"accept_threshold" validate:"gte=0,lte=1"`
	FastThreshold    float64 `json:"fast_threshold" validate:"gte=0,lte=1"`
	VariantThreshold float64 `json:"variant_threshold" validate:"gte=0,lte=1"`
	AutoThreshold    float64 `json:"auto_threshold" validate:"gte=0,lte=1"`
	FastPath         bool    `json:"fast_path"`
	ExtraLetterPath  bool    `json:"extra_letter_path"`

	BudgetMilliseconds int `json:"budget_milliseconds" validate:"min=0,max=5000"`
	CacheTTLSeconds    int `json:"cache_ttl_seconds" validate:"min=1,max=86400"`
	CacheSweepAt       int `json:"cache_sweep_at" validate:"min=16,max=100000"`

	Weights scorer.Weights `json:"weights"`
}

func (cfg *ConfigData) Validate() error {
	return validator.New().Struct(cfg)
}

// EngineConfig maps the file representation onto the engine's runtime
// configuration.
func (cfg *ConfigData) EngineConfig() engine.Config {
	return engine.Config{
		MinQueryLen:      cfg.MinQueryLen,
		MinTermLen:       cfg.MinTermLen,
		MinPhraseLen:     cfg.MinPhraseLen,
		AcceptThreshold:  cfg.AcceptThreshold,
		FastThreshold:    cfg.FastThreshold,
		VariantThreshold: cfg.VariantThreshold,
		AutoThreshold:    cfg.AutoThreshold,
		FastPath:         cfg.FastPath,
		ExtraLetterPath:  cfg.ExtraLetterPath,
		MaxWords:         cfg.MaxWords,
		Budget:           time.Duration(cfg.BudgetMilliseconds) * time.Millisecond,
		CacheTTL:         time.Duration(cfg.CacheTTLSeconds) * time.Second,
		CacheSweepAt:     cfg.CacheSweepAt,
		Weights:          cfg.Weights,
	}
}

func UploadLocalConfiguration(fileName string) (*ConfigData, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cfg ConfigData
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}

	return &cfg, cfg.Validate()
}
