package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUserMostPlayed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/users/2/beatmapsets/most_played" {
			http.NotFound(w, r)
			return
		}

		if r.URL.Query().Get("limit") != "5" || r.URL.Query().Get("offset") != "10" {
			http.Error(w, "bad query", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, "[%s]", mostPlayedJSON)
	}))
	defer server.Close()

	client := NewClientWithHTTP(server.URL+"/", server.Client())

	result, err := client.UserMostPlayed(context.Background(), 2, 5, 10)
	if err != nil {
		t.Fatalf("UserMostPlayed() error = %v", err)
	}

	if len(result) != 1 || result[0].PlayCount != 1234 {
		t.Errorf("UserMostPlayed() = %+v", result)
	}
}

func TestUserMostPlayedError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "user not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClientWithHTTP(server.URL, server.Client())

	_, err := client.UserMostPlayed(context.Background(), 1, 5, 0)
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("UserMostPlayed() error = %v, expected 404", err)
	}
}

func TestNewClientAuthenticates(t *testing.T) {
	var tokenRequests int

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		tokenRequests++

		if err := r.ParseForm(); err != nil || r.PostForm.Get("client_id") != "123" || r.PostForm.Get("client_secret") != "secret" {
			http.Error(w, "bad credentials", http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"token","token_type":"Bearer","expires_in":86400}`)
	})
	mux.HandleFunc("/api/v2/users/2/beatmapsets/most_played", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		fmt.Fprint(w, "[]")
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(context.Background(), server.URL, "123", "secret")

	for i := 0; i < 2; i++ {
		if _, err := client.UserMostPlayed(context.Background(), 2, 5, 0); err != nil {
			t.Fatalf("UserMostPlayed() error = %v", err)
		}
	}

	if tokenRequests != 1 {
		t.Errorf("token requested %d times, expected 1", tokenRequests)
	}
}
