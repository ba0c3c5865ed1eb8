package domain

const (
	AIModelKey       = "ai_model"
	AITemperatureKey = "ai_temperature"

	DefaultModel       = "gpt-4o-mini"
	DefaultTemperature = "0.7"
)
