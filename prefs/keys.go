package prefs

// Key names one setting inside a widget record.
type Key string

const (
	KeyCoin              Key = "coin"
	KeyCoinCustom        Key = "coin_custom"
	KeyCurrency          Key = "currency"
	KeyCurrencyCustom    Key = "currency_custom"
	KeyRefresh           Key = "refresh"
	KeyExchange          Key = "exchange"
	KeyShowLabel         Key = "show_label"
	KeyTheme             Key = "theme"
	KeyHideIcon          Key = "icon"
	KeyShowDecimals      Key = "show_decimals"
	KeyLastValue         Key = "last_value"
	KeyLastUpdate        Key = "last_update"
	KeyUnits             Key = "units"
	KeyPortraitTextSize  Key = "portrait_text_size"
	KeyLandscapeTextSize Key = "landscape_text_size"
	KeyTemporary         Key = "temp"
)

var knownKeys = []Key{
	KeyCoin,
	KeyCoinCustom,
	KeyCurrency,
	KeyCurrencyCustom,
	KeyRefresh,
	KeyExchange,
	KeyShowLabel,
	KeyTheme,
	KeyHideIcon,
	KeyShowDecimals,
	KeyLastValue,
	KeyLastUpdate,
	KeyUnits,
	KeyPortraitTextSize,
	KeyLandscapeTextSize,
	KeyTemporary,
}

// Keys returns every known setting key in record order.
func Keys() []Key {
	out := make([]Key, len(knownKeys))
	copy(out, knownKeys)
	return out
}

// ParseKey reports whether name is a known setting key.
func ParseKey(name string) (Key, bool) {
	for _, k := range knownKeys {
		if string(k) == name {
			return k, true
		}
	}
	return "", false
}

func (k Key) String() string {
	return string(k)
}
