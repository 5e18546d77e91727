package cmd

import (
	"io"

	"github.com/pkg/errors"
	"github.com/tendermint/tendermint/libs/log"

	lcerrors "github.com/tmbridge/lightclient/internal/errors"
)

const (
	logFormatPlain = "plain"
	logFormatJSON  = "json"
)

// NewLogger returns a tendermint logger writing to w in the given format and
// filtered to the given level.
func NewLogger(w io.Writer, format, level string) (log.Logger, error) {
	var logger log.Logger
	switch format {
	case logFormatPlain, "":
		logger = log.NewTMLogger(log.NewSyncWriter(w))
	case logFormatJSON:
		logger = log.NewTMJSONLogger(log.NewSyncWriter(w))
	default:
		return nil, errors.Wrapf(lcerrors.ErrInvalidConfig, "unsupported log format %q, expected %s or %s", format, logFormatPlain, logFormatJSON)
	}

	option, err := log.AllowLevel(level)
	if err != nil {
		return nil, errors.Wrapf(lcerrors.ErrInvalidConfig, "%s: %v", CfgLogLevel, err)
	}
	return log.NewFilter(logger, option), nil
}
