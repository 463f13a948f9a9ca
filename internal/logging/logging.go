// Package logging builds the logger used by the variantgen command.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field names for structured logging. Use these instead of raw strings.
const (
	FieldPackage = "package"
	FieldFile    = "file"
	FieldFiles   = "files"
	FieldUnion   = "union"
	FieldDecls   = "decls"
	FieldOutput  = "output"
)

// New returns a console logger writing to stderr. Generated sources are
// written to files, so stderr is the only place logs can go.
func New(verbose bool) (*zap.SugaredLogger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.DisableStacktrace = true
	config.DisableCaller = true
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
