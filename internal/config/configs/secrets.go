package configs

// Secrets are platform credentials copied into the secret store at
// startup. Empty values leave the stored secret untouched.
type Secrets struct {
	MetaAccessToken    string `env:"META_ACCESS_TOKEN"`
	GoogleRefreshToken string `env:"GOOGLE_REFRESH_TOKEN"`
	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
}
