package constants

const (
	AppName   = "optbank"
	EnvPrefix = "OPTBANK"
)

const (
	// NoAccountID on the command line stands for an absent identifier.
	NoAccountID       = "none"
	NoAccountIDSymbol = "-"
)

const (
	DefaultPrecision = 2
	MaxPrecision     = 8
)
