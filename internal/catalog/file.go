package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"dexquery/internal/model"
)

// FileSource loads the mainnet catalog from a pre-built JSON snapshot.
// Enumerating mainnet coins on-chain per request would mean scanning a large
// creator-address list, so the indexer publishes this file instead.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

type fileCoin struct {
	TokenType struct {
		Type string `json:"type"`
	} `json:"token_type"`
	Decimals uint8  `json:"decimals"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
}

// ListCoins parses the snapshot, projecting the known fields.
func (s *FileSource) ListCoins(_ context.Context) ([]model.CoinInfo, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, s.path, err)
	}

	var entries []fileCoin
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrUnavailable, s.path, err)
	}

	coins := make([]model.CoinInfo, 0, len(entries))
	for _, entry := range entries {
		coins = append(coins, model.CoinInfo{
			CoinType: entry.TokenType.Type,
			Name:     entry.Name,
			Symbol:   entry.Symbol,
			Decimals: entry.Decimals,
		})
	}
	return coins, nil
}
