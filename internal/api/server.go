// It defines the API server, sets up the routes (endpoints)
// using chi, and links them to the handler functions.

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vrsandeep/novel-go/internal/core"
)

// Server holds the dependencies for our API.
type Server struct {
	app *core.App
}

// NewServer creates a new Server instance.
func NewServer(app *core.App) *Server {
	return &Server{app: app}
}

// Router sets up and returns the main router for the application.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)    // Logs requests to the console
	r.Use(middleware.Recoverer) // Recovers from panics
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", s.handleIndex)

	r.Get("/search", s.handleSearchByTitle)
	r.Get("/search/latest", s.handleSearchByLatest)
	r.Get("/search/completed", s.handleSearchByCompleted)
	r.Get("/search/genre", s.handleGenreIndex)
	r.Get("/search/genre/{genre}", s.handleSearchByGenre)
	r.Get("/search/author", s.handleSearchByAuthor)

	r.Get("/popular", s.handleMostPopular)
	r.Get("/chapters", s.handleChapterList)

	r.Get("/novel/{novelID}", s.handleNovelInfo)
	r.Get("/novel/{novelID}/{chapterID}", s.handleChapterContent)

	return r
}
