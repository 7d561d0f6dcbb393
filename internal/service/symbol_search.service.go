package service

import (
	"context"
	"strings"

	"mintmate/internal/domain"
	"mintmate/internal/logger"
	"mintmate/internal/repository"

	"golang.org/x/sync/errgroup"
)

const (
	minSearchQueryLength = 2
	maxResultsPerSource  = 5
	maxSearchResults     = 10
)

type SymbolSearchService interface {
	Search(ctx context.Context, query string, assetType string) ([]domain.SymbolMatch, error)
}

type symbolSearchServiceHandler struct {
	FinnhubRepository    repository.FinnhubRepository
	TwelveDataRepository repository.TwelveDataRepository
}

// NewSymbolSearchService accepts nil repositories for providers without an
// API key.
func NewSymbolSearchService(finnhubRepository repository.FinnhubRepository, twelveDataRepository repository.TwelveDataRepository) SymbolSearchService {
	return symbolSearchServiceHandler{
		FinnhubRepository:    finnhubRepository,
		TwelveDataRepository: twelveDataRepository,
	}
}

func (h symbolSearchServiceHandler) Search(ctx context.Context, query string, assetType string) ([]domain.SymbolMatch, error) {
	query = strings.ToUpper(strings.TrimSpace(query))
	if len(query) < minSearchQueryLength {
		return []domain.SymbolMatch{}, nil
	}
	log := logger.FromContext(ctx)

	var (
		cryptoMatches     []domain.SymbolMatch
		finnhubMatches    []domain.SymbolMatch
		twelveDataMatches []domain.SymbolMatch
	)

	if domain.ParseAssetType(assetType) == domain.AssetTypeCrypto {
		cryptoMatches = searchCryptoAssets(query)
	}

	g := errgroup.Group{}
	if h.FinnhubRepository != nil {
		g.Go(func() error {
			results, err := h.FinnhubRepository.Search(ctx, query)
			if err != nil {
				log.Warnw("symbol search failed", "provider", domain.SourceFinnhub, "error", err.Error())
				return nil
			}
			for _, r := range firstN(results, maxResultsPerSource) {
				finnhubMatches = append(finnhubMatches, domain.SymbolMatch{
					Symbol:   r.Symbol,
					Name:     orDefault(r.Description, r.Symbol),
					Type:     orDefault(r.Type, "stock"),
					Exchange: orDefault(r.PrimaryExchange, "Unknown"),
					Source:   domain.SourceFinnhub,
				})
			}
			return nil
		})
	}
	if h.TwelveDataRepository != nil {
		g.Go(func() error {
			results, err := h.TwelveDataRepository.Search(ctx, query)
			if err != nil {
				log.Warnw("symbol search failed", "provider", domain.SourceTwelveData, "error", err.Error())
				return nil
			}
			for _, r := range firstN(results, maxResultsPerSource) {
				twelveDataMatches = append(twelveDataMatches, domain.SymbolMatch{
					Symbol:   r.Symbol,
					Name:     orDefault(r.InstrumentName, r.Symbol),
					Type:     orDefault(r.InstrumentType, "stock"),
					Exchange: orDefault(r.Exchange, "Unknown"),
					Source:   domain.SourceTwelveData,
				})
			}
			return nil
		})
	}
	_ = g.Wait()

	all := append(append(cryptoMatches, finnhubMatches...), twelveDataMatches...)
	return dedupeMatches(all, maxSearchResults), nil
}

func searchCryptoAssets(query string) []domain.SymbolMatch {
	out := []domain.SymbolMatch{}
	upperQuery := strings.ToUpper(query)
	for _, a := range cryptoAssets {
		if !strings.HasPrefix(a.Symbol, upperQuery) && !strings.Contains(strings.ToUpper(a.Name), upperQuery) {
			continue
		}
		out = append(out, domain.SymbolMatch{
			Symbol:   a.Symbol + "USDT",
			Name:     a.Name,
			Type:     "crypto",
			Exchange: "Binance",
			Source:   domain.SourceCoinGecko,
		})
		if len(out) == maxResultsPerSource {
			break
		}
	}
	return out
}

func dedupeMatches(matches []domain.SymbolMatch, limit int) []domain.SymbolMatch {
	seen := map[string]bool{}
	out := []domain.SymbolMatch{}
	for _, m := range matches {
		if seen[m.Symbol] {
			continue
		}
		seen[m.Symbol] = true
		out = append(out, m)
		if len(out) == limit {
			break
		}
	}
	return out
}

func firstN[T any](in []T, n int) []T {
	if len(in) > n {
		return in[:n]
	}
	return in
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
