// ==============================================================================================
// FILE: internal/diagnostics/logger.go
// ==============================================================================================
// PACKAGE: diagnostics
// PURPOSE: Owns structured logger construction for the pipeline — verbose
//          CLI runs get a development encoder (colored level, caller info),
//          ordinary runs get a production encoder. This is the internal
//          pipeline log; user-facing diagnostics (parser/lexer errors) are
//          still written straight to stderr in the plain "[line N] ..."
//          shape the CLI's own error reporting requires.
// ==============================================================================================

package diagnostics

import "go.uber.org/zap"

// NewLogger builds the pipeline's structured logger. verbose selects a
// development encoder; otherwise a production encoder is used.
func NewLogger(verbose bool) *zap.SugaredLogger {
	var logger *zap.Logger
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		// Logger construction failing means something is deeply wrong with
		// the process (stderr unwritable, etc); fall back to a no-op rather
		// than panic the whole pipeline over a logging concern.
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
