package prefs

import (
	"bytes"
	"math"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var recordJSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// record is the decoded form of one widget's blob. A nil value is a
// stored JSON null and reads the same as a missing key.
type record map[Key]*string

// decodeRecord parses a stored blob. Scalars that are not strings
// (numbers, booleans) keep their literal text; nested objects and arrays
// are ignored since no setting holds one.
func decodeRecord(raw string) (record, error) {
	rec := record{}
	if raw == "" {
		return rec, nil
	}

	var fields map[string]jsoniter.RawMessage
	if err := recordJSON.UnmarshalFromString(raw, &fields); err != nil {
		return record{}, err
	}

	for name, value := range fields {
		value = bytes.TrimSpace(value)
		if len(value) == 0 {
			continue
		}
		switch value[0] {
		case 'n':
			rec[Key(name)] = nil
		case '"':
			var s string
			if err := recordJSON.Unmarshal(value, &s); err != nil {
				continue
			}
			rec[Key(name)] = &s
		case '{', '[':
			continue
		default:
			s := string(value)
			rec[Key(name)] = &s
		}
	}
	return rec, nil
}

func encodeRecord(rec record) (string, error) {
	return recordJSON.MarshalToString(rec)
}

func (r record) get(k Key) (string, bool) {
	v, ok := r[k]
	if !ok || v == nil {
		return "", false
	}
	return *v, true
}

func (r record) set(k Key, value string) {
	r[k] = &value
}

func (r record) clear(k Key) {
	r[k] = nil
}

func (r record) coin() Coin {
	if v, ok := r.get(KeyCoin); ok {
		if c, ok := ParseCoin(v); ok {
			return c
		}
	}
	return DefaultCoin
}

func (r record) exchangeCoinName() string {
	if v, ok := r.get(KeyCoinCustom); ok {
		return v
	}
	return r.coin().String()
}

func (r record) currency() string {
	v, _ := r.get(KeyCurrency)
	return v
}

func (r record) exchangeCurrencyName() string {
	if v, ok := r.get(KeyCurrencyCustom); ok {
		return v
	}
	return r.currency()
}

func (r record) interval() int {
	if v, ok := r.get(KeyRefresh); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return DefaultInterval
}

func (r record) exchange() Exchange {
	if v, ok := r.get(KeyExchange); ok {
		if e, ok := ParseExchange(v); ok {
			return e
		}
	}
	return DefaultExchange()
}

func (r record) theme() string {
	v, _ := r.get(KeyTheme)
	return v
}

func (r record) themeLayout() Layout {
	v, ok := r.get(KeyTheme)
	if !ok {
		return LayoutDefault
	}
	return LayoutForTheme(v)
}

func (r record) isTransparent() bool {
	v, ok := r.get(KeyTheme)
	return ok && IsTransparentTheme(v)
}

func (r record) lastUpdate() int64 {
	if v, ok := r.get(KeyLastUpdate); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return 0
}

func (r record) boolValue(k Key, def bool) bool {
	if v, ok := r.get(k); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func (r record) iconShown() bool {
	if v, ok := r.get(KeyHideIcon); ok {
		if hidden, err := strconv.ParseBool(v); err == nil {
			return !hidden
		}
	}
	return true
}

func (r record) textSize(o Orientation) float32 {
	v, ok := r.get(o.key())
	if !ok {
		return TextSizeUnset
	}
	size, err := strconv.ParseFloat(v, 32)
	if err != nil || !(size > 0) || math.IsInf(size, 0) {
		return TextSizeUnset
	}
	return float32(size)
}

func formatTextSize(size float32) string {
	return strconv.FormatFloat(float64(size), 'f', -1, 32)
}
