package configs

import "time"

// Review tunes the budget review engine.
type Review struct {
	// Timezone is the IANA zone review dates are civil dates in.
	Timezone string `env:"TIMEZONE" envDefault:"America/Sao_Paulo" validate:"required"`
	// Threshold is the minimum |ideal - pace| flagged for adjustment.
	Threshold float64 `env:"THRESHOLD" envDefault:"5" validate:"gt=0"`
	// Workers bounds concurrent account reviews inside a batch.
	Workers       int           `env:"WORKERS" envDefault:"10" validate:"gte=1,lte=100"`
	HealthTimeout time.Duration `env:"HEALTH_TIMEOUT" envDefault:"30s"`
}
