package prefs

// Exchange is a price source a widget can read from.
type Exchange string

const (
	Binance            Exchange = "BINANCE"
	Bit2C              Exchange = "BIT2C"
	Bitfinex           Exchange = "BITFINEX"
	Bitflyer           Exchange = "BITFLYER"
	Bithumb            Exchange = "BITHUMB"
	Bitpay             Exchange = "BITPAY"
	Bitstamp           Exchange = "BITSTAMP"
	Bittrex            Exchange = "BITTREX"
	BTCBox             Exchange = "BTCBOX"
	BTCMarkets         Exchange = "BTCMARKETS"
	BTCTurk            Exchange = "BTCTURK"
	CexIO              Exchange = "CEXIO"
	Coinbase           Exchange = "COINBASE"
	CoinbasePro        Exchange = "COINBASEPRO"
	Coinone            Exchange = "COINONE"
	Exmo               Exchange = "EXMO"
	Gemini             Exchange = "GEMINI"
	HitBTC             Exchange = "HITBTC"
	Huobi              Exchange = "HUOBI"
	IndependentReserve Exchange = "INDEPENDENT_RESERVE"
	Kraken             Exchange = "KRAKEN"
	Kucoin             Exchange = "KUCOIN"
	Luno               Exchange = "LUNO"
	Poloniex           Exchange = "POLONIEX"
)

// exchanges is ordered; the first entry is the fallback for unknown names.
var exchanges = []Exchange{
	Binance,
	Bit2C,
	Bitfinex,
	Bitflyer,
	Bithumb,
	Bitpay,
	Bitstamp,
	Bittrex,
	BTCBox,
	BTCMarkets,
	BTCTurk,
	CexIO,
	Coinbase,
	CoinbasePro,
	Coinone,
	Exmo,
	Gemini,
	HitBTC,
	Huobi,
	IndependentReserve,
	Kraken,
	Kucoin,
	Luno,
	Poloniex,
}

// DefaultExchange returns the first known exchange.
func DefaultExchange() Exchange {
	return exchanges[0]
}

// Exchanges returns the supported exchanges in declaration order.
func Exchanges() []Exchange {
	out := make([]Exchange, len(exchanges))
	copy(out, exchanges)
	return out
}

// ParseExchange looks up an exchange by its exact name.
func ParseExchange(name string) (Exchange, bool) {
	for _, e := range exchanges {
		if string(e) == name {
			return e, true
		}
	}
	return "", false
}

func (e Exchange) String() string {
	return string(e)
}
