package openid

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultProfileURL is the Steam Web API endpoint for public profiles.
const DefaultProfileURL = "https://api.steampowered.com/ISteamUser/GetPlayerSummaries/v2/"

// Profile is the public profile of a Steam account.
type Profile struct {
	SteamID      string `json:"steamid"`
	PersonaName  string `json:"personaname"`
	Avatar       string `json:"avatarfull"`
	AvatarHash   string `json:"avatarhash"`
	PrimaryGroup string `json:"primaryclanid"`
}

// ProfileClient fetches public profiles from the Steam Web API.
type ProfileClient struct {
	// APIKey authorizes the request.
	APIKey string

	// BaseURL is the summaries endpoint (defaults to DefaultProfileURL).
	BaseURL string

	// Client is the HTTP client used for profile calls.
	Client *http.Client
}

// NewProfileClient creates a ProfileClient with the given API key.
func NewProfileClient(apiKey string) *ProfileClient {
	return &ProfileClient{
		APIKey:  apiKey,
		BaseURL: DefaultProfileURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// PlayerSummary fetches the public profile for one Steam id.
func (p *ProfileClient) PlayerSummary(ctx context.Context, steamID string) (*Profile, error) {
	base := p.BaseURL
	if base == "" {
		base = DefaultProfileURL
	}

	query := url.Values{}
	query.Set("key", p.APIKey)
	query.Set("steamids", steamID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("profile fetch failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile endpoint returned %d", resp.StatusCode)
	}

	var payload struct {
		Response struct {
			Players []Profile `json:"players"`
		} `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse profile response: %w", err)
	}

	if len(payload.Response.Players) == 0 {
		return nil, fmt.Errorf("no profile found for steam id %s", steamID)
	}
	return &payload.Response.Players[0], nil
}
