// Package respond writes the JSON envelope every handler returns.
package respond

import (
	"encoding/json"
	"net/http"
)

type response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func write(w http.ResponseWriter, status int, resp response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// OK writes a 200 response with data.
func OK(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, response{Success: true, Data: data})
}

// Created writes a 201 response with data.
func Created(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusCreated, response{Success: true, Data: data})
}

// Fail writes an error response with the given status.
func Fail(w http.ResponseWriter, status int, err error) {
	write(w, status, response{Success: false, Error: err.Error()})
}
