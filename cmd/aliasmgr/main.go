package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/csouza/aliasmgr/internal/adapters/shellio"
	"github.com/csouza/aliasmgr/internal/handlers/cli"
)

// Version is set at build time
var Version = "dev"

func main() {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	log := newLogger(level)
	defer log.Sync()

	app := &cli.App{
		Version:  Version,
		Log:      log,
		Level:    level,
		Prompter: cli.NewHuhPrompter(log),
		Notifier: shellio.NewFDNotifier(log),
	}

	rootCmd := cli.NewRootCommand(app)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds a terse console logger on stderr, keeping stdout for
// command output and FD 3 for the shell delta channel.
func newLogger(level zap.AtomicLevel) *zap.SugaredLogger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core).Sugar()
}
