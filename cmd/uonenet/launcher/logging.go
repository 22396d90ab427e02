package launcher

import (
	"io"

	"github.com/ethereum/go-ethereum/log"
	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"
)

// sentryLevels are the logrus levels forwarded to Sentry.
var sentryLevels = []logrus.Level{
	logrus.PanicLevel,
	logrus.FatalLevel,
	logrus.ErrorLevel,
}

// setupLogging routes the library log (go-ethereum log) to w at the configured
// verbosity and returns the logrus logger the commands report through.
func setupLogging(w io.Writer, cfg LoggingConfig, sentry SentryConfig) (*logrus.Logger, error) {
	format := log.TerminalFormat(cfg.Color)
	if cfg.Format == "json" {
		format = log.JSONFormat()
	}
	log.Root().SetHandler(log.LvlFilterHandler(log.Lvl(cfg.Verbosity), log.StreamHandler(w, format)))

	logger := logrus.New()
	logger.Out = w
	// log.verbosity 0 (fatal) maps to logrus.FatalLevel and so on.
	logger.SetLevel(logrus.Level(cfg.Verbosity + 1))
	if cfg.Format == "json" {
		logger.Formatter = &logrus.JSONFormatter{}
	} else {
		logger.Formatter = &logrus.TextFormatter{
			ForceColors:   cfg.Color,
			DisableColors: !cfg.Color,
			FullTimestamp: true,
		}
	}

	if sentry.DSN != "" {
		hook, err := logrus_sentry.NewSentryHook(sentry.DSN, sentryLevels)
		if err != nil {
			return nil, err
		}
		hook.StacktraceConfiguration.Enable = true
		logger.Hooks.Add(hook)
	}
	return logger, nil
}
