package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/cbodonnell/shaft/pkg/api/middleware"
	"github.com/cbodonnell/shaft/pkg/log"
	"github.com/cbodonnell/shaft/pkg/repositories"
	"github.com/cbodonnell/shaft/pkg/repositories/models"
	"github.com/cbodonnell/shaft/pkg/scores"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	// DefaultLimit is the number of scores listed when no limit is given
	DefaultLimit = 10
	// MaxNameLength is the longest accepted player name
	MaxNameLength = 16
)

var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9 _.\-]+$`)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}

func HandleListBoards(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boards, err := repository.ListBoards(r.Context())
		if err != nil {
			log.Error("failed to list boards: %v", err)
			http.Error(w, "Failed to list boards", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, boards)
	}
}

// HandleListScores lists the top scores of a board as JSON, or as the CSV
// lines the game client merges when format=csv.
func HandleListScores(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		board := mux.Vars(r)["board"]
		if _, err := scores.ParseBoardName(board); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		limit := DefaultLimit
		if l := r.URL.Query().Get("limit"); l != "" {
			parsed, err := strconv.Atoi(l)
			if err != nil || parsed <= 0 {
				http.Error(w, "Invalid limit", http.StatusBadRequest)
				return
			}
			limit = min(parsed, repositories.MaxTopScores)
		}

		top, err := repository.ListTopScores(r.Context(), board, limit)
		if err != nil {
			log.Error("failed to list scores of %s: %v", board, err)
			http.Error(w, "Failed to list scores", http.StatusInternalServerError)
			return
		}

		switch r.URL.Query().Get("format") {
		case "", "json":
			writeJSON(w, http.StatusOK, top)
		case "csv":
			entries := make([]scores.Entry, len(top))
			for i, s := range top {
				entries[i] = EntryFromScore(s)
			}
			w.Header().Set("Content-Type", "text/csv")
			if err := scores.WriteCSV(w, entries); err != nil {
				log.Error("failed to write csv: %v", err)
			}
		default:
			http.Error(w, "Unknown format", http.StatusBadRequest)
		}
	}
}

// SubmitScoreRequest is the body of a score submission.
type SubmitScoreRequest struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Score         int       `json:"score"`
	Cubes         int       `json:"cubes"`
	SecondsPlayed int       `json:"secondsPlayed"`
	Time          time.Time `json:"time"`
}

func (req *SubmitScoreRequest) validate() string {
	if len(req.Name) < 1 || len(req.Name) > MaxNameLength {
		return "Name must be between 1 and 16 characters"
	}
	if !nameRegex.MatchString(req.Name) {
		return "Name cannot contain special characters"
	}
	if req.Score < 0 || req.Cubes < 0 || req.SecondsPlayed < 0 {
		return "Score, cubes and seconds must not be negative"
	}
	if req.Time.IsZero() {
		return "Missing time"
	}
	return ""
}

func HandleSubmitScore(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			log.Error("failed to get user from context")
			http.Error(w, "Failed to get user from context", http.StatusInternalServerError)
			return
		}

		board := mux.Vars(r)["board"]
		if _, err := scores.ParseBoardName(board); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		req := &SubmitScoreRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if msg := req.validate(); msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}
		if req.ID == uuid.Nil {
			req.ID = uuid.New()
		}

		score := &models.Score{
			ID:            req.ID,
			Board:         board,
			UserID:        claims.UID,
			Name:          req.Name,
			Score:         req.Score,
			Cubes:         req.Cubes,
			SecondsPlayed: req.SecondsPlayed,
			PlayedAt:      req.Time,
		}
		if err := repository.SaveScore(r.Context(), score); err != nil {
			log.Error("failed to save score: %v", err)
			http.Error(w, "Failed to save score", http.StatusInternalServerError)
			return
		}
		log.Info("User %s submitted %d points on %s", claims.UID, score.Score, board)

		writeJSON(w, http.StatusCreated, score)
	}
}

func HandleGetScore(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(mux.Vars(r)["id"])
		if err != nil {
			http.Error(w, "Failed to parse score id", http.StatusBadRequest)
			return
		}

		score, err := repository.GetScore(r.Context(), id)
		if err != nil {
			if repositories.IsNotFound(err) {
				http.Error(w, "Score not found", http.StatusNotFound)
				return
			}
			log.Error("failed to get score: %v", err)
			http.Error(w, "Failed to get score", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, score)
	}
}

// EntryFromScore converts a stored score to a leaderboard entry.
func EntryFromScore(s *models.Score) scores.Entry {
	return scores.Entry{
		ID:            s.ID,
		Name:          s.Name,
		Score:         s.Score,
		Cubes:         s.Cubes,
		SecondsPlayed: s.SecondsPlayed,
		Time:          s.PlayedAt,
		Online:        true,
	}
}
