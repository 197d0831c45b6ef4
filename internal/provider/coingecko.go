package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	coinGeckoBaseURL = "https://api.coingecko.com/api/v3"
	vsCurrency       = "usd"
	apiKeyHeader     = "x-cg-demo-api-key"
	unknownSymbol    = "unknown"
)

// coinDetailResponse is the subset of /coins/{id} we read. Every field is
// optional; pointers distinguish "absent" from zero.
type coinDetailResponse struct {
	ID     *string `json:"id"`
	Symbol *string `json:"symbol"`
	Name   *string `json:"name"`
	Image  *struct {
		Large *string `json:"large"`
	} `json:"image"`
	MarketCapRank *int `json:"market_cap_rank"`
	MarketData    *struct {
		CurrentPrice                       map[string]decimal.Decimal `json:"current_price"`
		PriceChangePercentage24hInCurrency map[string]decimal.Decimal `json:"price_change_percentage_24h_in_currency"`
		PriceChangePercentage24h           *decimal.Decimal           `json:"price_change_percentage_24h"`
		MarketCapRank                      *int                       `json:"market_cap_rank"`
	} `json:"market_data"`
}

type searchResponse struct {
	Coins []struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		Symbol        string `json:"symbol"`
		MarketCapRank *int   `json:"market_cap_rank"`
		Thumb         string `json:"thumb"`
		Large         string `json:"large"`
	} `json:"coins"`
}

type marketsRow struct {
	ID                       string          `json:"id"`
	Symbol                   string          `json:"symbol"`
	Name                     string          `json:"name"`
	Image                    string          `json:"image"`
	CurrentPrice             decimal.Decimal `json:"current_price"`
	MarketCap                decimal.Decimal `json:"market_cap"`
	MarketCapRank            *int            `json:"market_cap_rank"`
	PriceChangePercentage24h decimal.Decimal `json:"price_change_percentage_24h"`
	SparklineIn7d            *struct {
		Price []decimal.Decimal `json:"price"`
	} `json:"sparkline_in_7d"`
}

type marketChartResponse struct {
	Prices [][]decimal.Decimal `json:"prices"`
}

// CoinGeckoProvider reads market data from the CoinGecko v3 REST API.
type CoinGeckoProvider struct {
	httpClient *http.Client
	baseURL    string // overridable for tests
	apiKey     string
}

// NewCoinGeckoProvider creates a CoinGecko client. An empty baseURL selects
// the public API; apiKey is sent as the demo API key header when set.
func NewCoinGeckoProvider(httpClient *http.Client, baseURL, apiKey string) *CoinGeckoProvider {
	if baseURL == "" {
		baseURL = coinGeckoBaseURL
	}
	return &CoinGeckoProvider{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// Name returns the provider's display name.
func (p *CoinGeckoProvider) Name() string { return "CoinGecko" }

// GetCoin fetches /coins/{id}.
func (p *CoinGeckoProvider) GetCoin(ctx context.Context, coinID string) (*Coin, error) {
	var body coinDetailResponse
	if err := p.get(ctx, "/coins/"+url.PathEscape(coinID), nil, &body); err != nil {
		return nil, &FetchError{CoinID: coinID, Err: err}
	}
	if body.ID == nil || *body.ID == "" {
		return nil, &FetchError{CoinID: coinID, Err: fmt.Errorf("%w: missing id", ErrMalformedPayload)}
	}

	coin := &Coin{
		ID:     *body.ID,
		Symbol: unknownSymbol,
		Name:   *body.ID,
	}
	if body.Symbol != nil && *body.Symbol != "" {
		coin.Symbol = *body.Symbol
	}
	if body.Name != nil && *body.Name != "" {
		coin.Name = *body.Name
	}
	if body.Image != nil && body.Image.Large != nil {
		coin.Image = *body.Image.Large
	}
	if body.MarketCapRank != nil {
		coin.MarketCapRank = *body.MarketCapRank
	}
	if md := body.MarketData; md != nil {
		coin.Price = md.CurrentPrice[vsCurrency]
		if change, ok := md.PriceChangePercentage24hInCurrency[vsCurrency]; ok {
			coin.PriceChange24h = change
		} else if md.PriceChangePercentage24h != nil {
			coin.PriceChange24h = *md.PriceChangePercentage24h
		}
		if coin.MarketCapRank == 0 && md.MarketCapRank != nil {
			coin.MarketCapRank = *md.MarketCapRank
		}
	}

	return coin, nil
}

// SimplePrices fetches /simple/price for a batch of ids including the 24h change.
func (p *CoinGeckoProvider) SimplePrices(ctx context.Context, coinIDs []string) (map[string]SimplePrice, error) {
	if len(coinIDs) == 0 {
		return map[string]SimplePrice{}, nil
	}

	query := url.Values{
		"ids":                 {strings.Join(coinIDs, ",")},
		"vs_currencies":       {vsCurrency},
		"include_24hr_change": {"true"},
	}
	var body map[string]map[string]decimal.Decimal
	if err := p.get(ctx, "/simple/price", query, &body); err != nil {
		return nil, &FetchError{CoinID: strings.Join(coinIDs, ","), Err: err}
	}

	result := make(map[string]SimplePrice, len(body))
	for id, fields := range body {
		price, ok := fields[vsCurrency]
		if !ok {
			continue
		}
		result[id] = SimplePrice{
			Price:     price,
			Change24h: fields[vsCurrency+"_24h_change"],
		}
	}
	return result, nil
}

// Search fetches /search and returns the first coin hit.
func (p *CoinGeckoProvider) Search(ctx context.Context, query string) (*SearchHit, error) {
	var body searchResponse
	if err := p.get(ctx, "/search", url.Values{"query": {query}}, &body); err != nil {
		return nil, &FetchError{CoinID: query, Err: err}
	}
	if len(body.Coins) == 0 {
		return nil, &FetchError{CoinID: query, Err: ErrNotFound}
	}

	first := body.Coins[0]
	if first.ID == "" {
		return nil, &FetchError{CoinID: query, Err: fmt.Errorf("%w: search hit without id", ErrMalformedPayload)}
	}
	hit := &SearchHit{
		ID:     first.ID,
		Name:   first.Name,
		Symbol: first.Symbol,
		Thumb:  first.Thumb,
		Large:  first.Large,
	}
	if first.MarketCapRank != nil {
		hit.MarketCapRank = *first.MarketCapRank
	}
	return hit, nil
}

// TopMarkets fetches /coins/markets ordered by market cap.
func (p *CoinGeckoProvider) TopMarkets(ctx context.Context, perPage int, sparkline bool) ([]MarketCoin, error) {
	query := url.Values{
		"vs_currency": {vsCurrency},
		"order":       {"market_cap_desc"},
		"per_page":    {strconv.Itoa(perPage)},
		"page":        {"1"},
		"sparkline":   {strconv.FormatBool(sparkline)},
	}
	var rows []marketsRow
	if err := p.get(ctx, "/coins/markets", query, &rows); err != nil {
		return nil, &FetchError{CoinID: "markets", Err: err}
	}

	coins := make([]MarketCoin, 0, len(rows))
	for _, row := range rows {
		if row.ID == "" {
			continue
		}
		coin := MarketCoin{
			ID:                       row.ID,
			Symbol:                   row.Symbol,
			Name:                     row.Name,
			Image:                    row.Image,
			CurrentPrice:             row.CurrentPrice,
			MarketCap:                row.MarketCap,
			PriceChangePercentage24h: row.PriceChangePercentage24h,
		}
		if row.MarketCapRank != nil {
			coin.MarketCapRank = *row.MarketCapRank
		}
		if row.SparklineIn7d != nil {
			coin.Sparkline = row.SparklineIn7d.Price
		}
		coins = append(coins, coin)
	}
	return coins, nil
}

// MarketChart fetches /coins/{id}/market_chart. Each sample arrives as a
// [unix_millis, price] pair.
func (p *CoinGeckoProvider) MarketChart(ctx context.Context, coinID string, days int) ([]PricePoint, error) {
	query := url.Values{
		"vs_currency": {vsCurrency},
		"days":        {strconv.Itoa(days)},
	}
	var body marketChartResponse
	if err := p.get(ctx, "/coins/"+url.PathEscape(coinID)+"/market_chart", query, &body); err != nil {
		return nil, &FetchError{CoinID: coinID, Err: err}
	}

	points := make([]PricePoint, 0, len(body.Prices))
	for _, pair := range body.Prices {
		if len(pair) < 2 {
			return nil, &FetchError{CoinID: coinID, Err: fmt.Errorf("%w: price sample has %d fields", ErrMalformedPayload, len(pair))}
		}
		points = append(points, PricePoint{
			Time:  time.UnixMilli(pair[0].IntPart()).UTC(),
			Price: pair[1],
		})
	}
	return points, nil
}

// get performs a GET against the API and decodes the JSON body into out.
func (p *CoinGeckoProvider) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := p.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if p.apiKey != "" {
		req.Header.Set(apiKeyHeader, p.apiKey)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return nil
}
