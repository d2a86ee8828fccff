package config

// NewCatalogForTest creates a Catalog config for testing purposes
func NewCatalogForTest(path string) *Catalog {
	return &Catalog{
		path: path,
	}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewSlackForTest creates a Slack config for testing purposes
func NewSlackForTest(botToken, channel string) *Slack {
	return &Slack{
		botToken: botToken,
		channel:  channel,
	}
}

// NewLLMForTest creates an LLM config for testing purposes
func NewLLMForTest(provider, model, openaiAPIKey string) *LLM {
	return &LLM{
		provider:     provider,
		model:        model,
		openaiAPIKey: openaiAPIKey,
	}
}
