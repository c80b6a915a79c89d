package decision

import (
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"monopolycore/coreerrors"
	"monopolycore/snapshot"
)

// Config is the tuning-parameter record every decision procedure reads
// from. All fields have engine-wide defaults (DefaultConfig) documented
// alongside the spec's tuning table; a host overrides only the knobs it
// cares about.
type Config struct {
	// MinReserveEarly/Mid/Late are the per-phase liquidity floors a player
	// must keep in cash before a purchase, build step, or bid is allowed
	// to spend it down.
	MinReserveEarly int `mapstructure:"minReserveEarly" yaml:"minReserveEarly"`
	MinReserveMid   int `mapstructure:"minReserveMid" yaml:"minReserveMid"`
	MinReserveLate  int `mapstructure:"minReserveLate" yaml:"minReserveLate"`

	// TradeAdvantageThreshold is the minimum net EPT delta, in EPT units,
	// for evaluateTrade to accept an offer.
	TradeAdvantageThreshold float64 `mapstructure:"tradeAdvantageThreshold" yaml:"tradeAdvantageThreshold"`

	// MonopolyCompletionBonus multiplies EPT when an acquisition would
	// complete a color group.
	MonopolyCompletionBonus float64 `mapstructure:"monopolyCompletionBonus" yaml:"monopolyCompletionBonus"`

	// AuctionMaxOverpay caps a bid as a multiple of the square's price.
	AuctionMaxOverpay float64 `mapstructure:"auctionMaxOverpay" yaml:"auctionMaxOverpay"`

	// JailStayThreshold is the opponent-developed-property count at or
	// above which determineJailPolicy prefers staying over leaving.
	JailStayThreshold int `mapstructure:"jailStayThreshold" yaml:"jailStayThreshold"`

	// ThirdHousePriority promotes build steps that reach the 3-house level
	// above every step that does not, whatever that step's marginal ROI.
	ThirdHousePriority bool `mapstructure:"thirdHousePriority" yaml:"thirdHousePriority"`

	// DenialFactor scales the 3-house group EPT credited as denial value.
	DenialFactor float64 `mapstructure:"denialFactor" yaml:"denialFactor"`

	// BlockingBidBonus multiplies auction willingness when an opponent is
	// one square short of completing a monopoly.
	BlockingBidBonus float64 `mapstructure:"blockingBidBonus" yaml:"blockingBidBonus"`

	// CashToEptRate is dollars per EPT unit when converting cash deltas in
	// a trade proposal to EPT units.
	CashToEptRate float64 `mapstructure:"cashToEptRate" yaml:"cashToEptRate"`

	// TaxRule selects the Income Tax variant used by the Roll-EPT
	// calculator. See ept.TaxRule: the spec's open question on whether
	// the 10%-or-$200 choice or the flat $200 rule is normative.
	TaxRule int `mapstructure:"taxRule" yaml:"taxRule"`
}

// DefaultConfig returns the tuning parameters documented in the external
// interfaces table.
func DefaultConfig() Config {
	return Config{
		MinReserveEarly:         200,
		MinReserveMid:           150,
		MinReserveLate:          100,
		TradeAdvantageThreshold: 0.05,
		MonopolyCompletionBonus: 1.5,
		AuctionMaxOverpay:       1.30,
		JailStayThreshold:       4,
		ThirdHousePriority:      true,
		DenialFactor:            0.50,
		BlockingBidBonus:        1.20,
		CashToEptRate:           200,
		TaxRule:                 0, // ept.TaxPercentOrFlat
	}
}

// Validate rejects configuration that would make a decision call
// nonsensical, caught once at construction so no decisions are ever
// served against a broken configuration.
func (c Config) Validate() error {
	switch {
	case c.MinReserveEarly < 0 || c.MinReserveMid < 0 || c.MinReserveLate < 0:
		return coreerrors.InvalidConfig("reserve floors must be non-negative")
	case c.TradeAdvantageThreshold < 0:
		return coreerrors.InvalidConfig("tradeAdvantageThreshold must be non-negative")
	case c.MonopolyCompletionBonus < 1.0:
		return coreerrors.InvalidConfig("monopolyCompletionBonus must be >= 1.0")
	case c.AuctionMaxOverpay < 1.0:
		return coreerrors.InvalidConfig("auctionMaxOverpay must be >= 1.0")
	case c.JailStayThreshold < 0:
		return coreerrors.InvalidConfig("jailStayThreshold must be non-negative")
	case c.DenialFactor < 0 || c.DenialFactor > 1.0:
		return coreerrors.InvalidConfig("denialFactor must be in [0,1]")
	case c.BlockingBidBonus < 1.0:
		return coreerrors.InvalidConfig("blockingBidBonus must be >= 1.0")
	case c.CashToEptRate <= 0:
		return coreerrors.InvalidConfig("cashToEptRate must be positive")
	case c.TaxRule != 0 && c.TaxRule != 1:
		return coreerrors.InvalidConfig("taxRule must be 0 (percent-or-flat) or 1 (flat)")
	}
	return nil
}

// outerConfig mirrors the host's "kind/def" envelope convention: a yaml
// document names what it configures before viper hands the payload to a
// typed struct.
type outerConfig struct {
	Kind string      `mapstructure:"kind"`
	Def  interface{} `mapstructure:"def"`
}

// ConfigFromYAML loads a Config from a YAML file, starting from
// DefaultConfig and overriding only the keys present in the document.
func ConfigFromYAML(path string) (Config, error) {
	cfg := DefaultConfig()

	vp := viper.New()
	vp.SetConfigFile(filepath.Base(path))
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))
	if err := vp.ReadInConfig(); err != nil {
		return Config{}, coreerrors.InvalidConfig("reading config file: %v", err)
	}

	outer := &outerConfig{}
	if err := vp.Unmarshal(outer); err != nil {
		return Config{}, coreerrors.InvalidConfig("unmarshaling config envelope: %v", err)
	}

	raw, err := yaml.Marshal(outer.Def)
	if err != nil {
		return Config{}, coreerrors.InvalidConfig("re-marshaling config body: %v", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, coreerrors.InvalidConfig("unmarshaling config body: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// reserveFor returns the minimum-reserve floor for phase.
func (c Config) reserveFor(phase snapshot.GamePhase) int {
	switch phase {
	case snapshot.Opening:
		return c.MinReserveEarly
	case snapshot.EndGame:
		return c.MinReserveLate
	default:
		return c.MinReserveMid
	}
}
