package esx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	es8 "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/samber/lo"

	"digitflow/internal/config"
)

type Client = es8.Client

// DefaultSignalIndex holds completed sweep signals.
const DefaultSignalIndex = "digitflow-signals"

func Open(cfg *config.Config) (*Client, func(), error) {
	if strings.TrimSpace(cfg.ES.Addrs) == "" {
		return nil, func() {}, nil
	}
	raw := strings.Split(cfg.ES.Addrs, ",")
	addrs := lo.FilterMap(raw, func(s string, _ int) (string, bool) {
		t := strings.TrimSpace(s)
		return t, t != ""
	})
	es, err := es8.NewClient(es8.Config{Addresses: addrs, Username: cfg.ES.Username, Password: cfg.ES.Password})
	if err != nil {
		return nil, func() {}, err
	}
	return es, func() {}, nil
}

// SignalDoc is the indexed form of a sweep signal.
type SignalDoc struct {
	JobID        string  `json:"job_id"`
	Market       string  `json:"market"`
	MarketName   string  `json:"market_name"`
	BestStrategy string  `json:"best_strategy"`
	Confidence   float64 `json:"confidence"`
	Reasoning    string  `json:"reasoning"`
	TickCount    int     `json:"tick_count"`
	Matches      int     `json:"matches"`
	Differs      int     `json:"differs"`
	ScannedAt    string  `json:"scanned_at"`
}

func IndexSignal(ctx context.Context, es *Client, index string, doc SignalDoc) error {
	if es == nil {
		return nil
	}
	b, _ := json.Marshal(doc)
	res, err := es.Index(index, bytes.NewReader(b),
		es.Index.WithDocumentID(doc.JobID+"-"+doc.Market),
		es.Index.WithContext(ctx))
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return fmtError(res)
	}
	return nil
}

// SearchSignals matches the query against market name, strategy and
// reasoning, newest sweeps first.
func SearchSignals(ctx context.Context, es *Client, index string, query string, from, size int) (map[string]any, error) {
	if es == nil {
		return map[string]any{"hits": []any{}}, nil
	}
	q := map[string]any{
		"query": map[string]any{"multi_match": map[string]any{
			"query":  query,
			"fields": []string{"market_name^2", "best_strategy", "reasoning"},
		}},
		"sort": []any{map[string]any{"scanned_at": map[string]any{"order": "desc"}}},
	}
	b, _ := json.Marshal(q)
	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(index),
		es.Search.WithBody(bytes.NewReader(b)),
		es.Search.WithFrom(from),
		es.Search.WithSize(size))
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return nil, fmtError(res)
	}
	var out map[string]any
	_ = json.NewDecoder(res.Body).Decode(&out)
	return out, nil
}

func fmtError(res *esapi.Response) error { return fmt.Errorf("es error: %s", res.String()) }
