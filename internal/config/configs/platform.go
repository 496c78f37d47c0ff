package configs

import "time"

// Meta configures the Graph API client.
type Meta struct {
	BaseURL    string        `env:"BASE_URL" envDefault:"https://graph.facebook.com" validate:"required,url"`
	APIVersion string        `env:"API_VERSION" envDefault:"v21.0" validate:"required"`
	PageSize   int           `env:"PAGE_SIZE" envDefault:"100" validate:"gte=1,lte=500"`
	MaxPages   int           `env:"MAX_PAGES" envDefault:"20" validate:"gte=1"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// Google configures the Google Ads API client and its OAuth token
// endpoint. DeveloperToken is required by the API on every call.
type Google struct {
	BaseURL         string        `env:"BASE_URL" envDefault:"https://googleads.googleapis.com" validate:"required,url"`
	APIVersion      string        `env:"API_VERSION" envDefault:"v21" validate:"required"`
	DeveloperToken  string        `env:"DEVELOPER_TOKEN"`
	LoginCustomerID string        `env:"LOGIN_CUSTOMER_ID"`
	TokenURL        string        `env:"TOKEN_URL" envDefault:"https://oauth2.googleapis.com/token" validate:"required,url"`
	MaxPages        int           `env:"MAX_PAGES" envDefault:"20" validate:"gte=1"`
	Timeout         time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// Enabled reports whether Google Ads calls can be made at all.
func (g Google) Enabled() bool {
	return g.DeveloperToken != ""
}
