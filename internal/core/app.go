package core

import (
	"fmt"

	"github.com/vrsandeep/novel-go/internal/config"
	"github.com/vrsandeep/novel-go/internal/scraper"
)

// App holds the core components of the application shared by the
// server and the handlers.
type App struct {
	Config  *config.Config
	Scraper *scraper.Scraper
}

// New sets up and returns a new App instance. It loads the
// configuration and builds the scraper against the configured source.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return &App{
		Config:  cfg,
		Scraper: scraper.New(cfg),
	}, nil
}
