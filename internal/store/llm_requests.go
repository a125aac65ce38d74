package store

import (
	"context"
	"fmt"
	"time"
)

// LLMRequestData captures one LLM API call for the audit log.
type LLMRequestData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequest is a persisted llm_requests row.
type LLMRequest struct {
	ID           int64     `db:"id"`
	Provider     string    `db:"provider"`
	Model        string    `db:"model"`
	Purpose      string    `db:"purpose"`
	InputTokens  int       `db:"input_tokens"`
	OutputTokens int       `db:"output_tokens"`
	LatencyMs    int64     `db:"latency_ms"`
	Success      bool      `db:"success"`
	ErrorMessage string    `db:"error_message"`
	RequestBody  string    `db:"request_body"`
	ResponseBody string    `db:"response_body"`
	CreatedAt    time.Time `db:"created_at"`
}

// LLMUsage is an aggregate over llm_requests, grouped by purpose or model.
type LLMUsage struct {
	Purpose      string `db:"purpose"`
	Model        string `db:"model"`
	Calls        int    `db:"calls"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
	AvgLatencyMs int64  `db:"avg_latency_ms"`
}

// RequestLog records LLM API calls.
type RequestLog interface {
	// Append records one LLM API call.
	Append(ctx context.Context, data LLMRequestData) error
}

// RequestLog returns a RequestLog backed by this store.
func (s *Store) RequestLog() RequestLog {
	return &requestLog{store: s}
}

type requestLog struct {
	store *Store
}

func (r *requestLog) Append(_ context.Context, data LLMRequestData) error {
	_, err := r.store.Exec(
		`INSERT INTO llm_requests
		 (provider, model, purpose, input_tokens, output_tokens, latency_ms,
		  success, error_message, request_body, response_body, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		data.Success, data.ErrorMessage, data.RequestBody, data.ResponseBody,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("append llm request: %w", err)
	}
	return nil
}

// RecentRequests returns the most recent n llm_requests rows, newest first.
func (s *Store) RecentRequests(n int) ([]LLMRequest, error) {
	var rows []LLMRequest
	err := s.Select(&rows,
		`SELECT * FROM llm_requests ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("recent llm requests: %w", err)
	}
	return rows, nil
}

// Request returns one llm_requests row, or nil if the id is unknown.
func (s *Store) Request(id int64) (*LLMRequest, error) {
	var rows []LLMRequest
	err := s.Select(&rows, `SELECT * FROM llm_requests WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("llm request %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// UsageByPurpose aggregates llm_requests per purpose label.
func (s *Store) UsageByPurpose() ([]LLMUsage, error) {
	var rows []LLMUsage
	err := s.Select(&rows,
		`SELECT purpose, '' AS model, COUNT(*) AS calls,
		        COALESCE(SUM(input_tokens), 0) AS input_tokens,
		        COALESCE(SUM(output_tokens), 0) AS output_tokens,
		        COALESCE(CAST(AVG(latency_ms) AS INTEGER), 0) AS avg_latency_ms
		 FROM llm_requests GROUP BY purpose ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("llm usage by purpose: %w", err)
	}
	return rows, nil
}

// UsageByModel aggregates llm_requests per model id.
func (s *Store) UsageByModel() ([]LLMUsage, error) {
	var rows []LLMUsage
	err := s.Select(&rows,
		`SELECT '' AS purpose, model, COUNT(*) AS calls,
		        COALESCE(SUM(input_tokens), 0) AS input_tokens,
		        COALESCE(SUM(output_tokens), 0) AS output_tokens,
		        COALESCE(CAST(AVG(latency_ms) AS INTEGER), 0) AS avg_latency_ms
		 FROM llm_requests GROUP BY model ORDER BY model`)
	if err != nil {
		return nil, fmt.Errorf("llm usage by model: %w", err)
	}
	return rows, nil
}
