package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/leafco2/internal/config"
	"github.com/rshade/leafco2/internal/logging"
)

// setupLogging configures logging based on config file, environment, and CLI flags.
func setupLogging(cmd *cobra.Command) logging.LogPathResult {
	cfg := config.GetGlobalConfig()
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.File = ""
		loggingCfg.Caller = true
	}

	// Ensure log directory exists after all overrides have been applied.
	if loggingCfg.File != "" {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)

	logger = logging.ComponentLogger(result.Logger, "cli").
		With().Str(logging.TraceIDField, traceID).Logger()
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	if err := cfg.LoadError(); err != nil {
		logger.Warn().Ctx(ctx).Err(err).Str("path", cfg.ConfigPath()).
			Msg("config file ignored, using defaults")
	}

	logger.Debug().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle, if any.
func cleanupLogging(cmd *cobra.Command, logResult *logging.LogPathResult) error {
	logger.Debug().Ctx(cmd.Context()).Str("command", cmd.Name()).Msg("command finished")
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
