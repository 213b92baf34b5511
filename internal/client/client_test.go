package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kurochkinivan/file_catalog/internal/client"
	"github.com/kurochkinivan/file_catalog/internal/domain"
	"github.com/stretchr/testify/require"
)

const testTimeout = 2 * time.Second

func TestClient_Health(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok", "service": "file-catalog"})
	}))
	defer server.Close()

	c := client.New(server.URL, "alice", "s3cret", testTimeout)

	health, err := c.Health(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
}

func TestClient_Upload(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "a.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 test"), 0o644))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/upload", r.URL.Path)

		username, password, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "alice", username)
		require.Equal(t, "s3cret", password)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		file.Close()

		require.Equal(t, "a.pdf", header.Filename)
		require.Equal(t, "application/pdf", header.Header.Get("Content-Type"))

		json.NewEncoder(w).Encode(client.UploadResult{
			Status:     domain.StatusAccepted,
			Reason:     "File uploaded successfully",
			DatabaseID: 1,
			UploadedBy: username,
		})
	}))
	defer server.Close()

	c := client.New(server.URL, "alice", "s3cret", testTimeout)

	result, err := c.Upload(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, domain.StatusAccepted, result.Status)
	require.Equal(t, int64(1), result.DatabaseID)
}

func TestClient_Dashboard(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/dashboard", r.URL.Path)
		json.NewEncoder(w).Encode(client.DashboardData{
			RetrievedBy: "alice",
			TotalFiles:  1,
			Files: []*domain.File{
				{ID: 1, Name: "a.pdf", FileType: "application/pdf", Size: 1024, Status: domain.StatusAccepted},
			},
		})
	}))
	defer server.Close()

	c := client.New(server.URL, "alice", "s3cret", testTimeout)

	data, err := c.Dashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, data.TotalFiles)
	require.Len(t, data.Files, 1)
}

func TestClient_Delete_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "File with id 42 not found"})
	}))
	defer server.Close()

	c := client.New(server.URL, "alice", "s3cret", testTimeout)

	_, err := c.Delete(context.Background(), 42)
	require.Error(t, err)

	// the server-reported text must survive verbatim
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Equal(t, "File with id 42 not found", apiErr.Message)
}

func TestClient_Unreachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	c := client.New(server.URL, "alice", "s3cret", testTimeout)

	_, err := c.Health(context.Background())
	require.ErrorIs(t, err, client.ErrUnreachable)
}
