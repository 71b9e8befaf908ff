package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Torxed/coreborn-api/pkg/audit"
	"github.com/Torxed/coreborn-api/pkg/catalog"
	"github.com/Torxed/coreborn-api/pkg/config"
	"github.com/Torxed/coreborn-api/pkg/server"
	"github.com/Torxed/coreborn-api/pkg/server/store"
)

func RegisterModerationEndpoints(s *server.Server) {
	router := s.Router

	// DELETE /resources/{category}/{name}/{id} - Report a contribution for removal
	router.HandleFunc(
		"/resources/{category}/{name}/{id}",
		handleReportPosition(s.Config, s.Catalog, s.IdentityStore, s.SessionStore, s.ModerationStore, s.AuthzStore),
	).Methods("DELETE")
}

func handleReportPosition(
	cfg *config.Config,
	cat *catalog.Holder,
	identities store.IdentityStore,
	sessions store.SessionStore,
	moderation store.ModerationStore,
	authz store.AuthzStore,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		category := vars["category"]
		name := vars["name"]

		current := cat.Get()
		if !current.HasCategory(category) {
			respondOpaque(w, http.StatusNotFound)
			return
		}
		if !current.BelongsTo(name, category) {
			respondOpaque(w, http.StatusNotFound)
			return
		}

		positionID, err := strconv.ParseInt(vars["id"], 10, 64)
		if err != nil {
			respondOpaque(w, http.StatusBadRequest)
			return
		}

		who, err := resolveCaller(r, sessions)
		if err != nil {
			respondOpaque(w, statusForError(err))
			return
		}

		reporter, err := identities.ResolveOrCreate(who.IdentityHash)
		if err != nil {
			respondOpaque(w, statusForError(err))
			return
		}
		blocked, err := identities.IsBlocked(who.IdentityHash)
		if err != nil || blocked {
			audit.Log(audit.BlockedEvent{IdentityHash: who.IdentityHash, Action: "report"})
			respondOpaque(w, http.StatusForbidden)
			return
		}

		// Admin override is checked fresh on every report, never cached.
		force := false
		if who.Account != nil {
			force = authz.HasRole(who.Account.ID, cfg.AdminRole)
		}

		decision, err := moderation.Report(name, positionID, reporter.ID, cfg.RemovalQuorum, force)
		if err != nil {
			respondOpaque(w, statusForError(err))
			return
		}

		audit.Log(audit.ReportEvent{
			Resource:     name,
			PositionID:   positionID,
			ReporterHash: who.IdentityHash,
			Deleted:      decision == store.DecisionDeleted,
			AdminAction:  force && decision == store.DecisionDeleted,
		})
		respondWithJSON(w, http.StatusOK, map[string]string{"status": decision.String()})
	}
}
