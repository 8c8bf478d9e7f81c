package config

import (
	"os"
	"strconv"
	"time"
)

// AnalysisConfig configures the external code-analysis capability client
type AnalysisConfig struct {
	URL        string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
}

func NewAnalysisConfig() *AnalysisConfig {
	timeoutSec, err := strconv.Atoi(os.Getenv("ANALYSIS_TIMEOUT_SEC"))
	if err != nil {
		timeoutSec = 30
	}
	maxRetries, err := strconv.Atoi(os.Getenv("ANALYSIS_MAX_RETRIES"))
	if err != nil {
		maxRetries = 2
	}
	return &AnalysisConfig{
		URL:        os.Getenv("ANALYSIS_URL"),
		APIKey:     os.Getenv("ANALYSIS_API_KEY"),
		Timeout:    time.Duration(timeoutSec) * time.Second,
		MaxRetries: maxRetries,
	}
}
