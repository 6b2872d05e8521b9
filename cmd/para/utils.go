// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"os/user"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/beevik/ntp"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/paradox-labs/para/builtin/staker"
	"github.com/paradox-labs/para/log"
)

// maxClockOffset is the drift tolerated before warning, rewards accrue by wall clock.
const maxClockOffset = 10 * time.Second

func readIntFromUInt64Flag(val uint64) (int, error) {
	if val > math.MaxInt {
		return 0, errors.Errorf("flag value %d is too large", val)
	}
	return int(val), nil
}

func initLogger(ctx *cli.Context) (*slog.LevelVar, error) {
	lvl, err := readIntFromUInt64Flag(ctx.Uint64(verbosityFlag.Name))
	if err != nil {
		return nil, errors.Wrap(err, "parse verbosity flag")
	}
	stakerLvl, err := readIntFromUInt64Flag(ctx.Uint64(verbosityStakerFlag.Name))
	if err != nil {
		return nil, errors.Wrap(err, "parse verbosity-staker flag")
	}

	var handler slog.Handler
	if ctx.Bool(jsonLogsFlag.Name) {
		handler = log.JSONHandler(os.Stdout)
	} else {
		useColor := (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())) && os.Getenv("TERM") != "dumb"
		var output io.Writer = os.Stderr
		handler = log.TerminalHandler(output, useColor)
	}

	var level slog.LevelVar
	level.Set(log.FromLegacyLevel(lvl))
	log.SetDefault(log.NewLogger(log.NewLevelHandler(&level, handler)))

	// the staker logs at its own verbosity
	staker.SetLogger(log.NewLogger(log.NewLevelHandler(log.FromLegacyLevel(stakerLvl), handler)).With("pkg", "staker"))
	return &level, nil
}

func handleExitSignal() context.Context {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		logger.Info("exit signal received, shutting down")
		cancel()
	}()
	return ctx
}

func checkClockOffset() {
	resp, err := ntp.Query("pool.ntp.org")
	if err != nil {
		logger.Debug("failed to access NTP", "err", err)
		return
	}
	offset := resp.ClockOffset
	if offset < 0 {
		offset = -offset
	}
	if offset > maxClockOffset {
		logger.Warn("clock offset detected", "offset", common.PrettyDuration(resp.ClockOffset))
	}
}

// copy from go-ethereum
func defaultDataDir() string {
	// Try to place the data folder in the user's home dir
	if home := homeDir(); home != "" {
		switch runtime.GOOS {
		case "darwin":
			return filepath.Join(home, "Library", "Application Support", "org.paradox.para")
		case "windows":
			return filepath.Join(home, "AppData", "Roaming", "org.paradox.para")
		default:
			return filepath.Join(home, ".org.paradox.para")
		}
	}
	// As we cannot guess a stable location, return empty and handle later
	return ""
}

func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}
