package configs

// Share configures the generation of donor-facing share links. BaseURL is
// the externally visible origin of the public pledge and giving pages,
// without a trailing slash.
type Share struct {
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`
}
