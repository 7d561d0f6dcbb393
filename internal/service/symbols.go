package service

import (
	"strings"
)

type cryptoAsset struct {
	Symbol      string
	CoinGeckoID string
	Name        string
}

// USDT pairs resolve to the same id as their base asset.
var cryptoAssets = []cryptoAsset{
	{Symbol: "BTC", CoinGeckoID: "bitcoin", Name: "Bitcoin"},
	{Symbol: "ETH", CoinGeckoID: "ethereum", Name: "Ethereum"},
	{Symbol: "BNB", CoinGeckoID: "binancecoin", Name: "BNB"},
	{Symbol: "ADA", CoinGeckoID: "cardano", Name: "Cardano"},
	{Symbol: "SOL", CoinGeckoID: "solana", Name: "Solana"},
	{Symbol: "DOT", CoinGeckoID: "polkadot", Name: "Polkadot"},
	{Symbol: "DOGE", CoinGeckoID: "dogecoin", Name: "Dogecoin"},
	{Symbol: "AVAX", CoinGeckoID: "avalanche-2", Name: "Avalanche"},
	{Symbol: "MATIC", CoinGeckoID: "matic-network", Name: "Polygon"},
	{Symbol: "LINK", CoinGeckoID: "chainlink", Name: "Chainlink"},
	{Symbol: "UNI", CoinGeckoID: "uniswap", Name: "Uniswap"},
	{Symbol: "LTC", CoinGeckoID: "litecoin", Name: "Litecoin"},
	{Symbol: "BCH", CoinGeckoID: "bitcoin-cash", Name: "Bitcoin Cash"},
	{Symbol: "XRP", CoinGeckoID: "ripple", Name: "XRP"},
	{Symbol: "ATOM", CoinGeckoID: "cosmos", Name: "Cosmos"},
	{Symbol: "FTM", CoinGeckoID: "fantom", Name: "Fantom"},
	{Symbol: "NEAR", CoinGeckoID: "near", Name: "NEAR Protocol"},
	{Symbol: "ALGO", CoinGeckoID: "algorand", Name: "Algorand"},
	{Symbol: "VET", CoinGeckoID: "vechain", Name: "VeChain"},
	{Symbol: "ICP", CoinGeckoID: "internet-computer", Name: "Internet Computer"},
	{Symbol: "FIL", CoinGeckoID: "filecoin", Name: "Filecoin"},
	{Symbol: "TRX", CoinGeckoID: "tron", Name: "TRON"},
	{Symbol: "ETC", CoinGeckoID: "ethereum-classic", Name: "Ethereum Classic"},
	{Symbol: "XLM", CoinGeckoID: "stellar", Name: "Stellar"},
	{Symbol: "HBAR", CoinGeckoID: "hedera-hashgraph", Name: "Hedera"},
	{Symbol: "THETA", CoinGeckoID: "theta-token", Name: "Theta Network"},
	{Symbol: "XTZ", CoinGeckoID: "tezos", Name: "Tezos"},
}

var coinGeckoIDs = func() map[string]string {
	out := map[string]string{}
	for _, a := range cryptoAssets {
		out[a.Symbol] = a.CoinGeckoID
		out[a.Symbol+"USDT"] = a.CoinGeckoID
	}
	return out
}()

var (
	binanceStableQuotes = []string{"USDT", "USDC", "BUSD", "FDUSD", "EUR", "TRY"}
	// crypto quotes only count as a quote when the rest is a known base,
	// so WBTC or STETH are still treated as bases
	binanceCryptoQuotes = []string{"BTC", "ETH", "BNB"}
)

func isKnownBase(symbol string) bool {
	for _, a := range cryptoAssets {
		if a.Symbol == symbol {
			return true
		}
	}
	return false
}

// NormalizeSymbol strips a trailing " - <description>" label that the
// search UI appends, then trims and uppercases.
func NormalizeSymbol(symbol string) string {
	if i := strings.Index(symbol, " - "); i >= 0 {
		symbol = symbol[:i]
	}
	return strings.ToUpper(strings.TrimSpace(symbol))
}

func GetCoinGeckoID(symbol string) string {
	if id, ok := coinGeckoIDs[symbol]; ok {
		return id
	}
	return strings.ToLower(symbol)
}

// BinanceSymbol turns a bare asset like BTC into a tradable pair. Symbols
// that already end in a quote asset are returned as is.
func BinanceSymbol(symbol string) string {
	if isKnownBase(symbol) {
		return symbol + "USDT"
	}
	for _, quote := range binanceStableQuotes {
		if len(symbol) > len(quote) && strings.HasSuffix(symbol, quote) {
			return symbol
		}
	}
	for _, quote := range binanceCryptoQuotes {
		if len(symbol) > len(quote) && strings.HasSuffix(symbol, quote) && isKnownBase(strings.TrimSuffix(symbol, quote)) {
			return symbol
		}
	}
	return symbol + "USDT"
}
