package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file.
// Chart presentation is easier to manage in YAML than in env vars.
type YAMLConfig struct {
	Charts ChartsConfig `yaml:"charts"`
}

// ChartsConfig holds the series of both result charts.
type ChartsConfig struct {
	Sentiment SentimentSeries `yaml:"sentiment"`
	Topics    TopicSeries     `yaml:"topics"`
}

// SeriesConfig is the label and colour of one bar.
type SeriesConfig struct {
	Label string `yaml:"label"`
	Color string `yaml:"color"`
}

// SentimentSeries configures the sentiment chart bars.
type SentimentSeries struct {
	Positive SeriesConfig `yaml:"positive"`
	Neutral  SeriesConfig `yaml:"neutral"`
	Negative SeriesConfig `yaml:"negative"`
}

// TopicSeries configures the topic chart bars.
type TopicSeries struct {
	ContentQuality SeriesConfig `yaml:"content_quality"`
	AudioVisual    SeriesConfig `yaml:"audio_visual"`
	Length         SeriesConfig `yaml:"length"`
	Pacing         SeriesConfig `yaml:"pacing"`
	Other          SeriesConfig `yaml:"other"`
}

// DefaultYAMLConfig returns the built-in chart labels and palette.
func DefaultYAMLConfig() *YAMLConfig {
	return &YAMLConfig{
		Charts: ChartsConfig{
			Sentiment: SentimentSeries{
				Positive: SeriesConfig{"Positive", "hsl(var(--chart-1))"},
				Neutral:  SeriesConfig{"Neutral", "hsl(var(--chart-2))"},
				Negative: SeriesConfig{"Negative", "hsl(var(--chart-3))"},
			},
			Topics: TopicSeries{
				ContentQuality: SeriesConfig{"Content Quality", "hsl(var(--chart-4))"},
				AudioVisual:    SeriesConfig{"Audio/Visual", "hsl(var(--chart-5))"},
				Length:         SeriesConfig{"Length", "hsl(var(--chart-6))"},
				Pacing:         SeriesConfig{"Pacing", "hsl(var(--chart-7))"},
				Other:          SeriesConfig{"Other", "hsl(var(--chart-8))"},
			},
		},
	}
}

// LoadYAMLConfig loads the YAML configuration file at path.
// Returns the defaults without error if the file doesn't exist. Fields left
// empty in the file keep their default value.
func LoadYAMLConfig(path string) (*YAMLConfig, error) {
	cfg := DefaultYAMLConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return cfg, nil
		}
		return nil, err
	}

	var file YAMLConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	s, fs := &cfg.Charts.Sentiment, file.Charts.Sentiment
	merge(&s.Positive, fs.Positive)
	merge(&s.Neutral, fs.Neutral)
	merge(&s.Negative, fs.Negative)

	tp, ft := &cfg.Charts.Topics, file.Charts.Topics
	merge(&tp.ContentQuality, ft.ContentQuality)
	merge(&tp.AudioVisual, ft.AudioVisual)
	merge(&tp.Length, ft.Length)
	merge(&tp.Pacing, ft.Pacing)
	merge(&tp.Other, ft.Other)

	return cfg, nil
}

func merge(dst *SeriesConfig, src SeriesConfig) {
	if src.Label != "" {
		dst.Label = src.Label
	}
	if src.Color != "" {
		dst.Color = src.Color
	}
}
