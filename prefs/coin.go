package prefs

// Coin is a cryptocurrency a widget can track.
type Coin string

const (
	BTC  Coin = "BTC"
	BCH  Coin = "BCH"
	BTG  Coin = "BTG"
	DASH Coin = "DASH"
	DOGE Coin = "DOGE"
	ETC  Coin = "ETC"
	ETH  Coin = "ETH"
	LTC  Coin = "LTC"
	XMR  Coin = "XMR"
	XRP  Coin = "XRP"
	ZEC  Coin = "ZEC"
)

// DefaultCoin is used when a record names no coin or an unknown one.
const DefaultCoin = BTC

var coins = []Coin{BTC, BCH, BTG, DASH, DOGE, ETC, ETH, LTC, XMR, XRP, ZEC}

// Coins returns the supported coins.
func Coins() []Coin {
	out := make([]Coin, len(coins))
	copy(out, coins)
	return out
}

// ParseCoin looks up a coin by its exact symbol.
func ParseCoin(name string) (Coin, bool) {
	for _, c := range coins {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}

func (c Coin) String() string {
	return string(c)
}
