package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation task being performed.
type TaskType string

const (
	// TaskChat drives the conversational planning dialogue.
	TaskChat TaskType = "chat"
	// TaskReadiness is the yes/no probe deciding whether enough project
	// information has been gathered to generate a plan.
	TaskReadiness TaskType = "readiness"
	// TaskPlan generates the structured project plan.
	TaskPlan TaskType = "plan"
	// TaskEnhance adjusts deterministic assignment scores with contextual reasoning.
	TaskEnhance TaskType = "enhance"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the model subsystem.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with interactive-use defaults.
// Generation is disabled by default; every caller has a deterministic path.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  15000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskChat:      {Temperature: 0.7, MaxTokens: 1024, TimeoutMs: 15000},
			TaskReadiness: {Temperature: 0.1, MaxTokens: 16, TimeoutMs: 8000},
			TaskPlan:      {Temperature: 0.4, MaxTokens: 4096, TimeoutMs: 30000},
			TaskEnhance:   {Temperature: 0.3, MaxTokens: 2048, TimeoutMs: 20000},
		},
	}
}

// LoadConfig reads model configuration from environment variables, falling
// back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("TASKMATE_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("TASKMATE_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("TASKMATE_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("TASKMATE_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("TASKMATE_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("TASKMATE_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskChat, "TASKMATE_LLM_CHAT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskReadiness, "TASKMATE_LLM_READINESS_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskPlan, "TASKMATE_LLM_PLAN_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskEnhance, "TASKMATE_LLM_ENHANCE_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
