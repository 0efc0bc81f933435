package prefs

import "strconv"

// Widget reads and writes the settings of a single widget.
// Every getter is total: missing or unparsable data yields the
// documented default.
type Widget struct {
	store *Store
	id    int
}

// ID returns the widget id the handle is bound to.
func (w *Widget) ID() int {
	return w.id
}

func (w *Widget) record() record {
	return w.store.load(w.id)
}

// Value returns a raw field.
func (w *Widget) Value(key Key) (string, bool) {
	return w.store.Value(w.id, key)
}

// SetValue writes a raw field.
func (w *Widget) SetValue(key Key, value string) error {
	return w.store.SetValue(w.id, key, value)
}

// ClearValue nulls a raw field.
func (w *Widget) ClearValue(key Key) error {
	return w.store.ClearValue(w.id, key)
}

// SetAll replaces the record with the settings screen fields.
func (w *Widget) SetAll(setup Setup) error {
	return w.store.SetAll(w.id, setup)
}

// Delete removes the record.
func (w *Widget) Delete() error {
	return w.store.Delete(w.id)
}

// Coin defaults to BTC.
func (w *Widget) Coin() Coin {
	return w.record().coin()
}

// ExchangeCoinName is the symbol the exchange uses for the coin, falling
// back to the coin itself.
func (w *Widget) ExchangeCoinName() string {
	return w.record().exchangeCoinName()
}

// Currency returns "" when none is stored.
func (w *Widget) Currency() string {
	return w.record().currency()
}

// ExchangeCurrencyName falls back to Currency.
func (w *Widget) ExchangeCurrencyName() string {
	return w.record().exchangeCurrencyName()
}

// Interval is the refresh interval in minutes.
func (w *Widget) Interval() int {
	return w.record().interval()
}

// Exchange falls back to the first known exchange for missing or unknown names.
func (w *Widget) Exchange() Exchange {
	return w.record().exchange()
}

// ExchangeName returns the stored exchange name without validation.
func (w *Widget) ExchangeName() string {
	v, _ := w.Value(KeyExchange)
	return v
}

func (w *Widget) ThemeLayout() Layout {
	return w.record().themeLayout()
}

func (w *Widget) IsTransparent() bool {
	return w.record().isTransparent()
}

// IsLightTheme resolves whether the widget draws light content. nightMode
// is the host UI's current night mode and only matters for auto themes.
func (w *Widget) IsLightTheme(nightMode bool) bool {
	return isLightLayout(w.ThemeLayout(), nightMode)
}

func (w *Widget) Unit() string {
	v, _ := w.Value(KeyUnits)
	return v
}

// LastUpdate is the time of the last price refresh in unix milliseconds.
func (w *Widget) LastUpdate() int64 {
	return w.record().lastUpdate()
}

// SetLastUpdate stamps the record with the store clock.
func (w *Widget) SetLastUpdate() error {
	return w.SetValue(KeyLastUpdate, strconv.FormatInt(w.store.now().UnixMilli(), 10))
}

func (w *Widget) LastValue() string {
	v, _ := w.Value(KeyLastValue)
	return v
}

func (w *Widget) SetLastValue(value string) error {
	return w.SetValue(KeyLastValue, value)
}

func (w *Widget) LabelShown() bool {
	return w.record().boolValue(KeyShowLabel, false)
}

func (w *Widget) ShowDecimals() bool {
	return w.record().boolValue(KeyShowDecimals, true)
}

// IconShown inverts the stored hide-icon flag.
func (w *Widget) IconShown() bool {
	return w.record().iconShown()
}

func (w *Widget) SetTextSize(size float32, o Orientation) error {
	return w.SetValue(o.key(), formatTextSize(size))
}

// TextSize returns TextSizeUnset until a positive size is stored.
func (w *Widget) TextSize(o Orientation) float32 {
	return w.record().textSize(o)
}

// ClearTextSize resets both orientations to unset.
func (w *Widget) ClearTextSize() error {
	return w.store.update(w.id, func(r record) {
		r.set(KeyPortraitTextSize, formatTextSize(0))
		r.set(KeyLandscapeTextSize, formatTextSize(0))
	})
}

// SetExchangeValues stores the exchange-specific coin and currency names.
// A nil argument leaves that field untouched.
func (w *Widget) SetExchangeValues(coin, currency *string) error {
	if coin == nil && currency == nil {
		return nil
	}
	return w.store.update(w.id, func(r record) {
		if coin != nil {
			r.set(KeyCoinCustom, *coin)
		}
		if currency != nil {
			r.set(KeyCurrencyCustom, *currency)
		}
	})
}

// MarkTemporary flags the widget for removal if its setup is abandoned.
func (w *Widget) MarkTemporary(temporary bool) error {
	if temporary {
		return w.SetValue(KeyTemporary, "true")
	}
	return w.ClearValue(KeyTemporary)
}

// IsTemporary reports whether the temporary flag is set.
func (w *Widget) IsTemporary() bool {
	_, ok := w.Value(KeyTemporary)
	return ok
}

// DeleteIfTemporary removes the record if it is still flagged temporary.
func (w *Widget) DeleteIfTemporary() (bool, error) {
	return w.store.DeleteIfTemporary(w.id)
}

// Settings is every resolved setting of one widget.
type Settings struct {
	Coin                 Coin     `json:"coin"`
	ExchangeCoinName     string   `json:"exchange_coin_name"`
	Currency             string   `json:"currency"`
	ExchangeCurrencyName string   `json:"exchange_currency_name"`
	Interval             int      `json:"interval"`
	Exchange             Exchange `json:"exchange"`
	Theme                string   `json:"theme"`
	Layout               string   `json:"layout"`
	Transparent          bool     `json:"transparent"`
	Unit                 string   `json:"unit"`
	LastValue            string   `json:"last_value"`
	LastUpdate           int64    `json:"last_update"`
	LabelShown           bool     `json:"label_shown"`
	ShowDecimals         bool     `json:"show_decimals"`
	IconShown            bool     `json:"icon_shown"`
	PortraitTextSize     float32  `json:"portrait_text_size"`
	LandscapeTextSize    float32  `json:"landscape_text_size"`
	Temporary            bool     `json:"temporary"`
}

// Snapshot resolves every setting from a single read of the record.
func (w *Widget) Snapshot() Settings {
	r := w.record()
	_, temporary := r.get(KeyTemporary)
	unit, _ := r.get(KeyUnits)
	lastValue, _ := r.get(KeyLastValue)
	return Settings{
		Coin:                 r.coin(),
		ExchangeCoinName:     r.exchangeCoinName(),
		Currency:             r.currency(),
		ExchangeCurrencyName: r.exchangeCurrencyName(),
		Interval:             r.interval(),
		Exchange:             r.exchange(),
		Theme:                r.theme(),
		Layout:               r.themeLayout().String(),
		Transparent:          r.isTransparent(),
		Unit:                 unit,
		LastValue:            lastValue,
		LastUpdate:           r.lastUpdate(),
		LabelShown:           r.boolValue(KeyShowLabel, false),
		ShowDecimals:         r.boolValue(KeyShowDecimals, true),
		IconShown:            r.iconShown(),
		PortraitTextSize:     r.textSize(Portrait),
		LandscapeTextSize:    r.textSize(Landscape),
		Temporary:            temporary,
	}
}
