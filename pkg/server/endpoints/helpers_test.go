package endpoints

import (
	"net"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Torxed/coreborn-api/pkg/catalog"
	"github.com/Torxed/coreborn-api/pkg/identity"
)

// testCatalog returns a holder around the compiled-in default catalog.
func testCatalog() *catalog.Holder {
	return catalog.NewHolder(catalog.Default())
}

// requestWithOrigin builds a request carrying a resolved client identity,
// the way the origin middleware would.
func requestWithOrigin(method, target, body, clientIP string) *http.Request {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	origin := identity.FromIP(net.ParseIP(clientIP))
	return req.WithContext(identity.Set(req.Context(), origin))
}

// withMuxVars attaches mux path variables to a request, standing in for
// router matching.
func withMuxVars(req *http.Request, vars map[string]string) *http.Request {
	return mux.SetURLVars(req, vars)
}
