package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// serverURL normalizes the configured listen address into a base URL for
// the client-side commands.
func serverURL(addr string) string {
	if strings.HasPrefix(addr, "http://") || strings.HasPrefix(addr, "https://") {
		return strings.TrimRight(addr, "/")
	}
	return "http://" + strings.TrimRight(addr, "/")
}

// apiGet fetches a path from a running debate server and decodes the JSON
// body into out. A nil out discards the body and returns the raw text.
func apiGet(baseURL, path string, out interface{}) (string, error) {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return "", fmt.Errorf("is a debate server running at %s? %w", baseURL, err)
	}
	return readAPIResponse(resp, out)
}

// apiPost sends a JSON body to a running debate server. Debates can run
// for many model calls, so the client timeout is generous.
func apiPost(baseURL, path string, in, out interface{}) (string, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return "", err
	}
	client := &http.Client{Timeout: 15 * time.Minute}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("is a debate server running at %s? %w", baseURL, err)
	}
	return readAPIResponse(resp, out)
}

func readAPIResponse(resp *http.Response, out interface{}) (string, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return "", fmt.Errorf("server returned %d: %s", resp.StatusCode, apiErr.Error)
		}
		return "", fmt.Errorf("server returned %d", resp.StatusCode)
	}

	if out == nil {
		return string(body), nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return "", fmt.Errorf("decoding server response: %w", err)
	}
	return string(body), nil
}
