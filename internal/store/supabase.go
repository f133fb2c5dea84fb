package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/supabase-community/postgrest-go"
)

// Supabase talks to a project's PostgREST endpoint with the service key.
type Supabase struct {
	client *postgrest.Client
}

func NewSupabase(baseURL, apiKey string) (*Supabase, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("supabase URL is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("supabase service key is required")
	}

	client := postgrest.NewClient(strings.TrimRight(baseURL, "/")+"/rest/v1", "public", map[string]string{
		"apikey":        apiKey,
		"Authorization": "Bearer " + apiKey,
	})
	if err := client.ClientError; err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}
	return &Supabase{client: client}, nil
}

func (s *Supabase) InsertBatch(ctx context.Context, table string, columns []string, rows [][]interface{}) ([]int64, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	if err := checkBatch(table, columns, rows); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := make([]map[string]interface{}, len(rows))
	for i, row := range rows {
		rec := make(map[string]interface{}, len(columns))
		for j, col := range columns {
			rec[col] = row[j]
		}
		records[i] = rec
	}

	var inserted []struct {
		ID int64 `json:"id"`
	}
	if _, err := s.client.From(table).Insert(records, false, "", "representation", "").ExecuteTo(&inserted); err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", table, err)
	}

	ids := make([]int64, len(inserted))
	for i, r := range inserted {
		ids[i] = r.ID
	}
	return ids, checkIDs(table, ids, len(rows))
}

// Refresh calls procedure as a PostgREST RPC. The RPC call reports only
// transport errors, so an error body in the response is decoded here.
func (s *Supabase) Refresh(ctx context.Context, procedure string) error {
	if err := checkIdentifiers(procedure); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body := s.client.Rpc(procedure, "", map[string]interface{}{})
	if err := s.client.ClientError; err != nil {
		return fmt.Errorf("failed to call %s: %w", procedure, err)
	}

	var rpcErr postgrest.ExecuteError
	if strings.HasPrefix(strings.TrimSpace(body), "{") && json.Unmarshal([]byte(body), &rpcErr) == nil && rpcErr.Message != "" {
		return fmt.Errorf("failed to call %s: (%s) %s", procedure, rpcErr.Code, rpcErr.Message)
	}
	return nil
}

func (s *Supabase) Close() error {
	return nil
}
