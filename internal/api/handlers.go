// Handler functions for the novel proxy endpoints. The handlers own
// all query/path validation; the scraper only ever sees validated
// input. Upstream failures surface as gateway errors.

package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vrsandeep/novel-go/internal/models"
	"github.com/vrsandeep/novel-go/internal/scraper"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Welcome! Available routes are listed below. Visit routes for more instruction.",
		"routes": []string{
			"/search",
			"/search/latest",
			"/search/completed",
			"/search/genre",
			"/search/genre/{genre}",
			"/search/author",
			"/popular",
			"/chapters",
			"/novel/{id}",
			"/novel/{id}/{chapter}",
		},
	})
}

func (s *Server) handleSearchByTitle(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		RespondWithError(w, http.StatusBadRequest, "Please provide a novel title to search, e.g. /search?title=overlord&page=2")
		return
	}

	results, err := s.app.Scraper.SearchByTitle(r.Context(), title, pageParam(r))
	s.respondResults(w, results, err)
}

func (s *Server) handleSearchByLatest(w http.ResponseWriter, r *http.Request) {
	results, err := s.app.Scraper.SearchByLatest(r.Context(), pageParam(r))
	s.respondResults(w, results, err)
}

func (s *Server) handleSearchByCompleted(w http.ResponseWriter, r *http.Request) {
	results, err := s.app.Scraper.SearchByCompleted(r.Context(), pageParam(r))
	s.respondResults(w, results, err)
}

func (s *Server) handleGenreIndex(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "To search by genre, go to /search/genre/{genre}. Optionally pass a page number.",
		"example":   []string{"/search/genre/isekai", "/search/genre/isekai?page=2"},
		"genreList": models.Genres,
	})
}

func (s *Server) handleSearchByGenre(w http.ResponseWriter, r *http.Request) {
	genre := chi.URLParam(r, "genre")
	if !models.IsGenre(genre) {
		RespondWithJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":     "Unknown genre. Use one of the listed tags.",
			"genreList": models.Genres,
		})
		return
	}

	results, err := s.app.Scraper.SearchByGenre(r.Context(), models.Genre(genre), pageParam(r))
	s.respondResults(w, results, err)
}

func (s *Server) handleSearchByAuthor(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		RespondWithError(w, http.StatusBadRequest, "Please provide an author's name to search, e.g. /search/author?name=fuse")
		return
	}

	results, err := s.app.Scraper.SearchByAuthor(r.Context(), name)
	s.respondResults(w, results, err)
}

func (s *Server) handleMostPopular(w http.ResponseWriter, r *http.Request) {
	results, err := s.app.Scraper.MostPopular(r.Context())
	s.respondResults(w, results, err)
}

func (s *Server) handleChapterList(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		RespondWithError(w, http.StatusBadRequest, "Please provide a novel key, e.g. /chapters?key=420900. The key is part of the novel info response.")
		return
	}

	results, err := s.app.Scraper.ChapterList(r.Context(), key)
	s.respondResults(w, results, err)
}

func (s *Server) handleNovelInfo(w http.ResponseWriter, r *http.Request) {
	results, err := s.app.Scraper.NovelInfo(r.Context(), chi.URLParam(r, "novelID"))
	s.respondResults(w, results, err)
}

func (s *Server) handleChapterContent(w http.ResponseWriter, r *http.Request) {
	novelID := chi.URLParam(r, "novelID")
	chapterID := chi.URLParam(r, "chapterID")

	results, err := s.app.Scraper.ChapterContent(r.Context(), novelID, chapterID)
	s.respondResults(w, results, err)
}

func (s *Server) respondResults(w http.ResponseWriter, results interface{}, err error) {
	if err != nil {
		log.Printf("scrape failed: %v", err)
		if errors.Is(err, scraper.ErrUpstream) {
			RespondWithError(w, http.StatusBadGateway, "Error fetching from source")
			return
		}
		RespondWithError(w, http.StatusInternalServerError, "Failed to process source response")
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}

// pageParam reads the optional page query parameter, defaulting to 1.
// Non-numeric or non-positive values also fall back to 1, matching the
// lenient behavior of the upstream site.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
