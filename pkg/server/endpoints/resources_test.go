package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Torxed/coreborn-api/pkg/identity"
	"github.com/Torxed/coreborn-api/pkg/model"
	"github.com/Torxed/coreborn-api/pkg/server/store"
)

func TestListResources(t *testing.T) {
	t.Run("wildcard returns the full category map", func(t *testing.T) {
		positions := NewMockPositionsStore()
		positions.On("ListAll").Return(map[string]map[string]store.ResourceEntry{
			"mining": {
				"gold": {Icon: "gold.png", Color: "#FFD700", Visible: true, Positions: []store.Point{{X: 0.25, Y: 0.75}}},
			},
			"woodworking": {
				"heartwood": {Color: "#FF0000", Visible: true, Positions: []store.Point{}},
			},
		}, nil)

		handler := handleListResources(testCatalog(), positions)

		req := withMuxVars(httptest.NewRequest("GET", "/resources/*", nil), map[string]string{"name": "*"})
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var result map[string]map[string]store.ResourceEntry
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Contains(t, result, "mining")
		assert.Contains(t, result, "woodworking")
		assert.Equal(t, []store.Point{{X: 0.25, Y: 0.75}}, result["mining"]["gold"].Positions)
	})

	t.Run("single resource returns one entry", func(t *testing.T) {
		positions := NewMockPositionsStore()
		positions.On("ListResource", "gold").Return(store.ResourceEntry{
			Color:     "#FFD700",
			Visible:   true,
			Positions: []store.Point{{X: 0.5, Y: 0.5}},
		}, nil)

		handler := handleListResources(testCatalog(), positions)

		req := withMuxVars(httptest.NewRequest("GET", "/resources/gold", nil), map[string]string{"name": "gold"})
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var entry store.ResourceEntry
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
		assert.Len(t, entry.Positions, 1)
	})

	t.Run("unknown resource is opaque 404", func(t *testing.T) {
		positions := NewMockPositionsStore()

		handler := handleListResources(testCatalog(), positions)

		req := withMuxVars(httptest.NewRequest("GET", "/resources/mithril", nil), map[string]string{"name": "mithril"})
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "Unknown database error"}`, w.Body.String())
		positions.AssertNotCalled(t, "ListResource")
	})
}

func TestAddPosition(t *testing.T) {
	goldVars := map[string]string{"name": "gold"}

	t.Run("anonymous contribution is attributed to the client address", func(t *testing.T) {
		identities := NewMockIdentityStore()
		sessions := NewMockSessionStore()
		positions := NewMockPositionsStore()

		ipHash := identity.Hash("198.51.100.7")
		identities.On("ResolveOrCreate", ipHash).Return(&model.Identity{ID: 11, IdentityHash: ipHash}, nil)
		identities.On("IsBlocked", ipHash).Return(false, nil)
		positions.On("Add", "gold", store.Coordinate{X: 0.25, Y: 0.75}, int64(11)).Return(nil)

		handler := handleAddPosition(testCatalog(), identities, sessions, positions)

		req := requestWithOrigin("PUT", "/resources/gold", `{"x": 0.25, "y": 0.75}`, "198.51.100.7")
		w := httptest.NewRecorder()
		handler(w, withMuxVars(req, goldVars))

		assert.Equal(t, http.StatusOK, w.Code)
		positions.AssertExpectations(t)
	})

	t.Run("authenticated contribution is attributed to the account", func(t *testing.T) {
		identities := NewMockIdentityStore()
		sessions := NewMockSessionStore()
		positions := NewMockPositionsStore()

		token := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
		accountHash := identity.HashAccount("76561198000000001")
		sessions.On("Resolve", token).Return(&store.Account{ID: 3, SteamID: "76561198000000001", Name: "miner"}, nil)
		identities.On("ResolveOrCreate", accountHash).Return(&model.Identity{ID: 42, IdentityHash: accountHash}, nil)
		identities.On("IsBlocked", accountHash).Return(false, nil)
		positions.On("Add", "gold", store.Coordinate{X: 0.1, Y: 0.9}, int64(42)).Return(nil)

		handler := handleAddPosition(testCatalog(), identities, sessions, positions)

		req := requestWithOrigin("PUT", "/resources/gold?access_token="+token, `{"x": 0.1, "y": 0.9}`, "198.51.100.7")
		w := httptest.NewRecorder()
		handler(w, withMuxVars(req, goldVars))

		assert.Equal(t, http.StatusOK, w.Code)
		positions.AssertExpectations(t)
	})

	t.Run("unknown resource is rejected before identity resolution", func(t *testing.T) {
		identities := NewMockIdentityStore()
		sessions := NewMockSessionStore()
		positions := NewMockPositionsStore()

		handler := handleAddPosition(testCatalog(), identities, sessions, positions)

		req := requestWithOrigin("PUT", "/resources/mithril", `{"x": 0.5, "y": 0.5}`, "198.51.100.7")
		w := httptest.NewRecorder()
		handler(w, withMuxVars(req, map[string]string{"name": "mithril"}))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "Unknown database error"}`, w.Body.String())
		identities.AssertNotCalled(t, "ResolveOrCreate")
	})

	t.Run("blocked identity cannot contribute", func(t *testing.T) {
		identities := NewMockIdentityStore()
		sessions := NewMockSessionStore()
		positions := NewMockPositionsStore()

		ipHash := identity.Hash("198.51.100.7")
		identities.On("ResolveOrCreate", ipHash).Return(&model.Identity{ID: 11, IdentityHash: ipHash, Blocked: true}, nil)
		identities.On("IsBlocked", ipHash).Return(true, nil)

		handler := handleAddPosition(testCatalog(), identities, sessions, positions)

		req := requestWithOrigin("PUT", "/resources/gold", `{"x": 0.5, "y": 0.5}`, "198.51.100.7")
		w := httptest.NewRecorder()
		handler(w, withMuxVars(req, goldVars))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error": "Unknown database error"}`, w.Body.String())
		positions.AssertNotCalled(t, "Add")
	})

	t.Run("identity lookup failure fails closed", func(t *testing.T) {
		identities := NewMockIdentityStore()
		sessions := NewMockSessionStore()
		positions := NewMockPositionsStore()

		ipHash := identity.Hash("198.51.100.7")
		identities.On("ResolveOrCreate", ipHash).Return(&model.Identity{ID: 11, IdentityHash: ipHash}, nil)
		identities.On("IsBlocked", ipHash).Return(false, store.ErrStorageUnavailable)

		handler := handleAddPosition(testCatalog(), identities, sessions, positions)

		req := requestWithOrigin("PUT", "/resources/gold", `{"x": 0.5, "y": 0.5}`, "198.51.100.7")
		w := httptest.NewRecorder()
		handler(w, withMuxVars(req, goldVars))

		assert.Equal(t, http.StatusForbidden, w.Code)
		positions.AssertNotCalled(t, "Add")
	})

	t.Run("coordinates outside the open interval are rejected", func(t *testing.T) {
		for _, body := range []string{
			`{"x": 0, "y": 0.5}`,
			`{"x": 1, "y": 0.5}`,
			`{"x": 0.5, "y": -0.1}`,
			`{"x": 0.5, "y": 1.5}`,
		} {
			identities := NewMockIdentityStore()
			sessions := NewMockSessionStore()
			positions := NewMockPositionsStore()

			ipHash := identity.Hash("198.51.100.7")
			identities.On("ResolveOrCreate", ipHash).Return(&model.Identity{ID: 11, IdentityHash: ipHash}, nil)
			identities.On("IsBlocked", ipHash).Return(false, nil)

			handler := handleAddPosition(testCatalog(), identities, sessions, positions)

			req := requestWithOrigin("PUT", "/resources/gold", body, "198.51.100.7")
			w := httptest.NewRecorder()
			handler(w, withMuxVars(req, goldVars))

			assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
			assert.JSONEq(t, `{"error": "Unknown database error"}`, w.Body.String())
			positions.AssertNotCalled(t, "Add")
		}
	})

	t.Run("malformed token is rejected without contribution", func(t *testing.T) {
		identities := NewMockIdentityStore()
		sessions := NewMockSessionStore()
		positions := NewMockPositionsStore()

		sessions.On("Resolve", "not-a-token").Return(nil, store.ErrMalformedInput)

		handler := handleAddPosition(testCatalog(), identities, sessions, positions)

		req := requestWithOrigin("PUT", "/resources/gold?access_token=not-a-token", `{"x": 0.5, "y": 0.5}`, "198.51.100.7")
		w := httptest.NewRecorder()
		handler(w, withMuxVars(req, goldVars))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		positions.AssertNotCalled(t, "Add")
	})
}
