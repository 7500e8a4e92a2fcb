package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// DoJSON sends a request with an optional JSON payload and returns the
// response together with its fully read body.
func DoJSON(method, url string, payload any) (*http.Response, []byte, error) {
	var reader io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	body, _ := io.ReadAll(resp.Body)
	return resp, body, nil
}

// PostJSON sends a JSON POST request.
func PostJSON(url string, payload any) (*http.Response, []byte, error) {
	return DoJSON(http.MethodPost, url, payload)
}

// PutJSON sends a JSON PUT request.
func PutJSON(url string, payload any) (*http.Response, []byte, error) {
	return DoJSON(http.MethodPut, url, payload)
}

// Get sends a GET request.
func Get(url string) (*http.Response, []byte, error) {
	return DoJSON(http.MethodGet, url, nil)
}

// Delete sends a DELETE request.
func Delete(url string) (*http.Response, []byte, error) {
	return DoJSON(http.MethodDelete, url, nil)
}
