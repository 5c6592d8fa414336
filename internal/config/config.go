package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Client      ClientConfig      `yaml:"client"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Watch       WatchConfig       `yaml:"watch"`
}

type ServerConfig struct {
	Addr        string `yaml:"addr"`
	BodyLimitMB int    `yaml:"body_limit_mb"`
}

type GeminiConfig struct {
	Model              string  `yaml:"model"`
	APIKeyEnv          string  `yaml:"api_key_env"`
	SummaryTemperature float32 `yaml:"summary_temperature"`
}

type ClientConfig struct {
	BaseURL string `yaml:"base_url"`
}

type FFmpegConfig struct {
	BinaryPath   string `yaml:"binary_path"`
	ExtractAudio bool   `yaml:"extract_audio"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// WatchConfig holds the options applied to every file the pipeline processes.
type WatchConfig struct {
	Diarization      bool              `yaml:"diarization"`
	Timestamps       bool              `yaml:"timestamps"`
	Summarize        bool              `yaml:"summarize"`
	KeyPoints        bool              `yaml:"key_points"`
	TaskList         bool              `yaml:"task_list"`
	PreserveLanguage bool              `yaml:"preserve_language"`
	Speakers         map[string]string `yaml:"speakers"`
}

// APIKey reads the model credential from the environment.
// It is read on every call so a missing key surfaces per request, not at startup.
func (g GeminiConfig) APIKey() string {
	return strings.TrimSpace(os.Getenv(g.APIKeyEnv))
}

func (c *Config) Validate() error {
	if c.Logging.Format != "" && c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be text or json")
	}
	if c.Server.BodyLimitMB < 0 {
		return fmt.Errorf("server.body_limit_mb must not be negative")
	}
	if c.Gemini.SummaryTemperature < 0 || c.Gemini.SummaryTemperature > 2 {
		return fmt.Errorf("gemini.summary_temperature must be between 0 and 2")
	}
	if c.Watch.Summarize && !c.Watch.KeyPoints && !c.Watch.TaskList {
		return fmt.Errorf("watch.summarize requires watch.key_points or watch.task_list")
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8888"
	}
	if c.Server.BodyLimitMB == 0 {
		c.Server.BodyLimitMB = 100
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.APIKeyEnv == "" {
		c.Gemini.APIKeyEnv = "API_KEY"
	}
	if c.Gemini.SummaryTemperature == 0 {
		c.Gemini.SummaryTemperature = 0.2
	}
	if c.Client.BaseURL == "" {
		host := c.Server.Addr
		if strings.HasPrefix(host, ":") {
			host = "localhost" + host
		}
		c.Client.BaseURL = "http://" + host
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
