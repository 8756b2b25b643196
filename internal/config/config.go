package config

type Config struct {
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Log        LogConfig      `mapstructure:"log"`
	Store      StoreConfig    `mapstructure:"store"`
	ConfigPath string         `mapstructure:"-"`
}

type DefaultsConfig struct {
	// ApplyFallback resolves an absent conversion to zero at the output boundary.
	ApplyFallback bool `mapstructure:"apply_fallback"`
	Precision     int  `mapstructure:"precision"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type StoreConfig struct {
	UseFixtures bool            `mapstructure:"use_fixtures"`
	Accounts    []AccountConfig `mapstructure:"accounts"`
}

// AccountConfig declares one ledger entry. A nil Balance means the account
// has no balance; Tombstone maps the id to an absent account.
type AccountConfig struct {
	ID        int64          `mapstructure:"id"`
	Tombstone bool           `mapstructure:"tombstone"`
	Balance   *BalanceConfig `mapstructure:"balance"`
}

// BalanceConfig keeps Amount as text so that a missing amount stays nil and
// decimal values are not routed through float64.
type BalanceConfig struct {
	Amount   *string `mapstructure:"amount"`
	Currency string  `mapstructure:"currency"`
}

func NewDefault() *Config {
	return &Config{
		Defaults: DefaultsConfig{ApplyFallback: true, Precision: 2},
		Log:      LogConfig{Level: "warn"},
		Store:    StoreConfig{UseFixtures: true},
	}
}
