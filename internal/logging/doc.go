// Package logging provides structured logging for tripplan.
//
// This package wraps Go's log/slog to provide JSON-formatted logs with
// context propagation. The interactive form owns the terminal, so logs go to
// a file under the tripplan state directory rather than stderr.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/path/to/state", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("submission finished", "outcome", "success", "duration_ms", 150)
//
// # Context Propagation
//
// Child loggers carry persistent attributes:
//
//	submitLogger := logger.WithComponent("submit").WithPhase("request")
//	submitLogger.Info("request built", "destination", "Tokyo")
//
// Output:
//
//	{"time":"...","level":"INFO","msg":"request built","component":"submit","phase":"request","destination":"Tokyo"}
//
// # Log Rotation
//
// Rotation is delegated to lumberjack:
//
//	logger, err := logging.NewLoggerWithRotation(dir, "INFO", logging.RotationConfig{
//	    MaxSizeMB:  10,
//	    MaxBackups: 3,
//	    Compress:   true,
//	})
//
// # Testing
//
// Use [NopLogger] to discard all log output.
package logging
