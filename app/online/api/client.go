package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	DefaultEndpoint = "https://osu.ppy.sh"

	tokenPath = "/oauth/token"
	apiPath   = "/api/v2"
)

type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient authenticates with the client credentials grant, tokens are refreshed on demand.
func NewClient(ctx context.Context, endpoint, clientID, clientSecret string) *Client {
	endpoint = strings.TrimSuffix(endpoint, "/")

	cfg := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     endpoint + tokenPath,
		Scopes:       []string{"public"},
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	httpClient := cfg.Client(ctx)
	httpClient.Timeout = 30 * time.Second

	return NewClientWithHTTP(endpoint, httpClient)
}

// NewClientWithHTTP uses an already authenticated http.Client.
func NewClientWithHTTP(endpoint string, httpClient *http.Client) *Client {
	return &Client{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		http:     httpClient,
	}
}

// UserMostPlayed fetches a page of the user's most played beatmaps.
func (client *Client) UserMostPlayed(ctx context.Context, userID, limit, offset int) ([]UserMostPlayedBeatmap, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	var result []UserMostPlayedBeatmap

	err := client.get(ctx, fmt.Sprintf("/users/%d/beatmapsets/most_played", userID), query, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch most played beatmaps of user %d: %w", userID, err)
	}

	return result, nil
}

func (client *Client) get(ctx context.Context, path string, query url.Values, target any) error {
	u := client.endpoint + apiPath + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-version", "20240130")

	startTime := time.Now()

	resp, err := client.http.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	log.Println("API:", req.Method, path, resp.Status, "took", time.Since(startTime).Truncate(time.Millisecond).String())

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	if err = json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
