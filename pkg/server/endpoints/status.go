package endpoints

import (
	"net/http"

	"github.com/Torxed/coreborn-api/pkg/server"
)

func RegisterStatusEndpoints(s *server.Server) {
	catalog := s.Catalog

	// GET /status - Liveness plus catalog summary
	s.Router.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"status":     "ok",
			"resources":  catalog.Get().Len(),
			"categories": len(catalog.Get().Categories()),
		})
	}).Methods("GET")
}
