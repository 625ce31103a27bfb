package handlers

import (
	"log/slog"
	"net/http"

	"hackfest-backend/internal/ranking"
)

type LeaderboardHandler struct {
	teams TeamStore
}

func NewLeaderboardHandler(teams TeamStore) *LeaderboardHandler {
	return &LeaderboardHandler{teams: teams}
}

// --- GET /leaderboard ---

func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teams.List(r.Context())
	if err != nil {
		slog.Error("error listing teams for leaderboard", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	entities := make([]ranking.ScoredEntity, 0, len(teams))
	for _, t := range teams {
		entities = append(entities, ranking.ScoredEntity{
			ID:          t.ID.Hex(),
			DisplayName: t.TeamName,
			Score:       t.Score,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"groups": ranking.Rank(entities),
	})
}
