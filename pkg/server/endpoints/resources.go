package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Torxed/coreborn-api/pkg/audit"
	"github.com/Torxed/coreborn-api/pkg/catalog"
	"github.com/Torxed/coreborn-api/pkg/server"
	"github.com/Torxed/coreborn-api/pkg/server/store"
)

func RegisterResourceEndpoints(s *server.Server) {
	router := s.Router

	// GET /resources/{name} - Aggregated positions; "*" lists everything
	router.HandleFunc("/resources/{name}", handleListResources(s.Catalog, s.PositionsStore)).Methods("GET")

	// PUT /resources/{name} - Contribute a position
	router.HandleFunc("/resources/{name}", handleAddPosition(s.Catalog, s.IdentityStore, s.SessionStore, s.PositionsStore)).Methods("PUT")
}

func handleListResources(cat *catalog.Holder, positions store.PositionsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["name"]

		if name == "*" {
			all, err := positions.ListAll()
			if err != nil {
				respondOpaque(w, statusForError(err))
				return
			}
			respondWithJSON(w, http.StatusOK, all)
			return
		}

		if !cat.Get().HasResource(name) {
			respondOpaque(w, http.StatusNotFound)
			return
		}
		entry, err := positions.ListResource(name)
		if err != nil {
			respondOpaque(w, statusForError(err))
			return
		}
		respondWithJSON(w, http.StatusOK, entry)
	}
}

// positionRequest is the contribution body.
type positionRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func handleAddPosition(
	cat *catalog.Holder,
	identities store.IdentityStore,
	sessions store.SessionStore,
	positions store.PositionsStore,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["name"]
		if !cat.Get().HasResource(name) {
			respondOpaque(w, http.StatusNotFound)
			return
		}

		who, err := resolveCaller(r, sessions)
		if err != nil {
			respondOpaque(w, statusForError(err))
			return
		}

		ident, err := identities.ResolveOrCreate(who.IdentityHash)
		if err != nil {
			respondOpaque(w, statusForError(err))
			return
		}
		blocked, err := identities.IsBlocked(who.IdentityHash)
		if err != nil || blocked {
			audit.Log(audit.BlockedEvent{IdentityHash: who.IdentityHash, Action: "contribute"})
			respondOpaque(w, http.StatusForbidden)
			return
		}

		var req positionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondOpaque(w, http.StatusBadRequest)
			return
		}
		defer func() { _ = r.Body.Close() }()

		coord, err := store.NewCoordinate(req.X, req.Y)
		if err != nil {
			audit.Log(audit.ContributionEvent{
				Resource:     name,
				IdentityHash: who.IdentityHash,
				X:            req.X,
				Y:            req.Y,
				Success:      false,
				ErrorKind:    "malformed coordinates",
			})
			respondOpaque(w, statusForError(err))
			return
		}

		if err := positions.Add(name, coord, ident.ID); err != nil {
			respondOpaque(w, statusForError(err))
			return
		}

		audit.Log(audit.ContributionEvent{
			Resource:     name,
			IdentityHash: who.IdentityHash,
			X:            coord.X,
			Y:            coord.Y,
			Success:      true,
		})
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
