package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	gormdb "gorm.io/gorm"

	"github.com/Torxed/coreborn-api/pkg/catalog"
	"github.com/Torxed/coreborn-api/pkg/config"
	"github.com/Torxed/coreborn-api/pkg/openid"
	"github.com/Torxed/coreborn-api/pkg/server/store"
	storegorm "github.com/Torxed/coreborn-api/pkg/server/store/gorm"
)

type Server struct {
	Router  *mux.Router
	DB      *gormdb.DB
	Catalog *catalog.Holder
	Config  *config.Config

	IdentityStore   store.IdentityStore
	SessionStore    store.SessionStore
	PositionsStore  store.PositionsStore
	ModerationStore store.ModerationStore
	AuthzStore      store.AuthzStore

	Verifier *openid.Verifier
	Profiles *openid.ProfileClient

	srv *http.Server
}

func NewServer(
	db *gormdb.DB,
	cat *catalog.Holder,
	cfg *config.Config,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:  router,
		DB:      db,
		Catalog: cat,
		Config:  cfg,

		IdentityStore:   storegorm.NewIdentityStore(db),
		SessionStore:    storegorm.NewSessionStore(db),
		PositionsStore:  storegorm.NewPositionsStore(db, cat),
		ModerationStore: storegorm.NewModerationStore(db),
		AuthzStore:      storegorm.NewAuthzStore(db),

		Verifier: openid.NewVerifier(cfg.SteamEndpoint),
		Profiles: openid.NewProfileClient(cfg.SteamAPIKey),

		srv: srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
