// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	cli "gopkg.in/urfave/cli.v1"
	"gopkg.in/yaml.v3"

	"github.com/paradox-labs/para/api"
	"github.com/paradox-labs/para/cmd/para/httpserver"
	"github.com/paradox-labs/para/genesis"
	"github.com/paradox-labs/para/host"
	"github.com/paradox-labs/para/log"
	"github.com/paradox-labs/para/lvldb"
	"github.com/paradox-labs/para/metrics"
	"github.com/paradox-labs/para/state"
)

var (
	version   string
	gitCommit string
	gitTag    string

	logger = log.WithContext("pkg", "main")
)

const cacheStatsInterval = time.Minute

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "Para",
		Usage:     "Dev node of the Para staking engine",
		Copyright: "2025 Paradox Labs",
		Flags: []cli.Flag{
			dataDirFlag,
			persistFlag,
			cacheFlag,
			genesisFlag,
			launchTimeFlag,
			apiAddrFlag,
			apiCorsFlag,
			enableAPILogsFlag,
			apiSlowQueriesThresholdFlag,
			verbosityFlag,
			verbosityStakerFlag,
			jsonLogsFlag,
			enableMetricsFlag,
			metricsAddrFlag,
			enableAdminFlag,
			adminAddrFlag,
			skipClockCheckFlag,
		},
		Action: defaultAction,
		Commands: []cli.Command{
			{
				Name:   "dump-genesis",
				Usage:  "print the devnet genesis as yaml, a starting point for --genesis",
				Flags:  []cli.Flag{launchTimeFlag},
				Action: dumpGenesisAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultAction(ctx *cli.Context) error {
	exitSignal := handleExitSignal()
	defer func() { logger.Info("exited") }()

	logLevel, err := initLogger(ctx)
	if err != nil {
		return err
	}

	if ctx.Bool(enableMetricsFlag.Name) {
		metrics.InitializePrometheusMetrics()
	}

	gene, err := selectGenesis(ctx)
	if err != nil {
		return err
	}

	var (
		mainDB      *lvldb.LevelDB
		instanceDir string
	)
	if ctx.Bool(persistFlag.Name) {
		if instanceDir, err = makeInstanceDir(ctx, gene); err != nil {
			return err
		}
		if mainDB, err = openMainDB(ctx, instanceDir); err != nil {
			return err
		}
	} else {
		instanceDir = "Memory"
		if mainDB, err = lvldb.NewMem(); err != nil {
			return errors.Wrap(err, "open memory database")
		}
	}
	defer func() { logger.Info("closing main database..."); mainDB.Close() }()

	stater := state.NewStater(mainDB)
	built, err := gene.Build(stater)
	if err != nil {
		return errors.Wrap(err, "build genesis")
	}
	if built {
		logger.Info("genesis built", "name", gene.Name(), "launch", gene.LaunchTime())
	}

	if !ctx.Bool(skipClockCheckFlag.Name) {
		checkClockOffset()
	}

	h := host.New(stater, gene.StakerConfig(), nil)

	apiLogs := &atomic.Bool{}
	apiLogs.Store(ctx.Bool(enableAPILogsFlag.Name))

	apiURL, srvCloser, err := httpserver.StartAPIServer(
		ctx.String(apiAddrFlag.Name),
		api.New(h, api.Options{
			AllowedOrigins:       ctx.String(apiCorsFlag.Name),
			EnableReqLogger:      apiLogs,
			SlowQueriesThreshold: time.Duration(ctx.Uint64(apiSlowQueriesThresholdFlag.Name)) * time.Millisecond,
			EnableMetrics:        ctx.Bool(enableMetricsFlag.Name),
		}),
	)
	if err != nil {
		return err
	}
	defer func() { logger.Info("stopping API server..."); srvCloser() }()

	metricsURL := ""
	if ctx.Bool(enableMetricsFlag.Name) {
		url, closeFunc, err := httpserver.StartMetricsServer(ctx.String(metricsAddrFlag.Name))
		if err != nil {
			return err
		}
		defer func() { logger.Info("stopping metrics server..."); closeFunc() }()
		metricsURL = url
	}

	adminURL := ""
	if ctx.Bool(enableAdminFlag.Name) {
		url, closeFunc, err := httpserver.StartAdminServer(ctx.String(adminAddrFlag.Name), logLevel, apiLogs)
		if err != nil {
			return err
		}
		defer func() { logger.Info("stopping admin server..."); closeFunc() }()
		adminURL = url
	}

	printStartupMessage(gene, instanceDir, apiURL, metricsURL, adminURL)

	g, gctx := errgroup.WithContext(exitSignal)
	g.Go(func() error {
		h.Run(gctx, cacheStatsInterval)
		return nil
	})
	return g.Wait()
}

func dumpGenesisAction(ctx *cli.Context) error {
	launch := ctx.Uint64(launchTimeFlag.Name)
	if launch == 0 {
		launch = uint64(time.Now().Unix())
	}
	out, err := yaml.Marshal(genesis.Devnet(launch))
	if err != nil {
		return errors.Wrap(err, "marshal genesis")
	}
	_, err = os.Stdout.Write(out)
	return err
}
