package cmd

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	lcerrors "github.com/tmbridge/lightclient/internal/errors"
	"github.com/tmbridge/lightclient/modules/light-clients/07-tendermint/types"
)

const (
	// EnvPrefix is the prefix of environment variables overriding configuration keys.
	EnvPrefix = "TMCLIENTD"

	// FlagHome is the flag holding the home directory.
	FlagHome = "home"

	// CfgDBBackend selects the tm-db backend of the client store.
	CfgDBBackend = "db_backend"
	// CfgDBDir is the database directory, relative to the home directory unless absolute.
	CfgDBDir = "db_dir"
	// CfgLogLevel is the minimum level of emitted log lines.
	CfgLogLevel = "log_level"
	// CfgLogFormat is either plain or json.
	CfgLogFormat = "log_format"
	// CfgTelemetry enables in-memory collection of client counters.
	CfgTelemetry = "telemetry"

	// CfgTrustingPeriod is applied to create requests that leave the trusting period unset.
	CfgTrustingPeriod = "trusting_period"
	// CfgMaxClockDrift is applied to create requests that leave the clock drift unset.
	CfgMaxClockDrift = "max_clock_drift"
	// CfgUnbondingPeriod is applied to create requests that leave the unbonding period unset.
	CfgUnbondingPeriod = "unbonding_period"

	configDir  = "config"
	configFile = "config.toml"
)

// Config is the resolved tmclientd configuration.
type Config struct {
	Home      string
	DBBackend string
	DBDir     string
	LogLevel  string
	LogFormat string
	Telemetry bool

	// TrustParameters holds the defaults for create requests. Its trust level is
	// always the module default.
	TrustParameters types.TrustParameters
}

// DefaultHome returns the default home directory of tmclientd.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tmclientd"
	}
	return filepath.Join(home, ".tmclientd")
}

// ConfigPath returns the location of the configuration file under home.
func ConfigPath(home string) string {
	return filepath.Join(home, configDir, configFile)
}

// setDefaults registers the default value of every configuration key.
func setDefaults(v *viper.Viper) {
	v.SetDefault(CfgDBBackend, "goleveldb")
	v.SetDefault(CfgDBDir, "data")
	v.SetDefault(CfgLogLevel, "info")
	v.SetDefault(CfgLogFormat, logFormatPlain)
	v.SetDefault(CfgTelemetry, false)
	v.SetDefault(CfgTrustingPeriod, types.DefaultTrustingPeriod.String())
	v.SetDefault(CfgMaxClockDrift, types.DefaultMaxClockDrift.String())
	v.SetDefault(CfgUnbondingPeriod, types.DefaultUnbondingPeriod.String())
}

// ReadConfig resolves the configuration from v. Durations accept Go duration
// strings or a number of seconds.
func ReadConfig(v *viper.Viper) (Config, error) {
	home := cast.ToString(v.Get(FlagHome))
	if home == "" {
		return Config{}, errors.Wrap(lcerrors.ErrInvalidConfig, "home directory cannot be empty")
	}

	telemetry, err := cast.ToBoolE(v.Get(CfgTelemetry))
	if err != nil {
		return Config{}, errors.Wrapf(lcerrors.ErrInvalidConfig, "%s: %v", CfgTelemetry, err)
	}

	trustingPeriod, err := readDuration(v, CfgTrustingPeriod)
	if err != nil {
		return Config{}, err
	}
	maxClockDrift, err := readDuration(v, CfgMaxClockDrift)
	if err != nil {
		return Config{}, err
	}
	unbondingPeriod, err := readDuration(v, CfgUnbondingPeriod)
	if err != nil {
		return Config{}, err
	}

	params := types.NewTrustParameters(trustingPeriod, maxClockDrift, unbondingPeriod, types.DefaultTrustLevel)
	if err := params.Validate(); err != nil {
		return Config{}, errors.Wrapf(lcerrors.ErrInvalidConfig, "default trust parameters: %v", err)
	}

	dbDir := cast.ToString(v.Get(CfgDBDir))
	if !filepath.IsAbs(dbDir) {
		dbDir = filepath.Join(home, dbDir)
	}

	return Config{
		Home:            home,
		DBBackend:       cast.ToString(v.Get(CfgDBBackend)),
		DBDir:           dbDir,
		LogLevel:        cast.ToString(v.Get(CfgLogLevel)),
		LogFormat:       cast.ToString(v.Get(CfgLogFormat)),
		Telemetry:       telemetry,
		TrustParameters: params,
	}, nil
}

func readDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.Get(key)

	// bare numbers are seconds, as in create payloads
	if seconds, err := cast.ToUint64E(raw); err == nil {
		if seconds > types.MaxPeriodSeconds {
			return 0, errors.Wrapf(lcerrors.ErrInvalidConfig, "%s: %d seconds exceeds the maximum of %d", key, seconds, types.MaxPeriodSeconds)
		}
		return time.Duration(seconds) * time.Second, nil
	}

	d, err := cast.ToDurationE(raw)
	if err != nil {
		return 0, errors.Wrapf(lcerrors.ErrInvalidConfig, "%s: %v", key, err)
	}
	return d, nil
}

// WriteDefaultConfig writes the default configuration to home unless a
// configuration file already exists there.
func WriteDefaultConfig(home string) (string, error) {
	path := ConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create config directory")
	}

	v := viper.New()
	setDefaults(v)
	if err := v.SafeWriteConfigAs(path); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}
	return path, nil
}
