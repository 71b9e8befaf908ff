package endpoints

import (
	"github.com/Torxed/coreborn-api/pkg/server"
	"github.com/Torxed/coreborn-api/pkg/server/middleware"
)

// RegisterAll wires every endpoint group onto the server's router.
func RegisterAll(s *server.Server) {
	s.Router.Use(middleware.Origin(s.Config))

	RegisterStatusEndpoints(s)
	RegisterAuthEndpoints(s)
	RegisterResourceEndpoints(s)
	RegisterModerationEndpoints(s)
}
