// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"flag"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cli "gopkg.in/urfave/cli.v1"
	"gopkg.in/yaml.v3"

	"github.com/paradox-labs/para/genesis"
)

func TestReadIntFromUInt64Flag_WithinRange(t *testing.T) {
	got, err := readIntFromUInt64Flag(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Fatalf("want 42, got %d", got)
	}
}

func TestReadIntFromUInt64Flag_TooLarge(t *testing.T) {
	val := uint64(math.MaxInt) + 1
	if _, err := readIntFromUInt64Flag(val); err == nil {
		t.Fatalf("expected error for value > MaxInt")
	}
}

func TestNormalizeCacheSize(t *testing.T) {
	assert.GreaterOrEqual(t, normalizeCacheSize(1<<20), 1)
	assert.LessOrEqual(t, normalizeCacheSize(1<<20), 1<<20)
}

func newContext(t *testing.T, args ...string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range []cli.Flag{genesisFlag, launchTimeFlag, dataDirFlag} {
		f.Apply(set)
	}
	require.NoError(t, set.Parse(args))
	return cli.NewContext(nil, set, nil)
}

func TestSelectGenesis(t *testing.T) {
	gene, err := selectGenesis(newContext(t, "--launch-time", "1700000000"))
	require.NoError(t, err)
	assert.Equal(t, genesis.DevnetName, gene.Name())
	assert.Equal(t, uint64(1700000000), gene.LaunchTime())

	custom := genesis.Devnet(1700000000)
	custom.Name = "staging"
	data, err := yaml.Marshal(custom)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "genesis.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	gene, err = selectGenesis(newContext(t, "--genesis", path))
	require.NoError(t, err)
	assert.Equal(t, "staging", gene.Name())

	dir := t.TempDir()
	instanceDir, err := makeInstanceDir(newContext(t, "--data-dir", dir), gene)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "instance-staging"), instanceDir)
	assert.DirExists(t, instanceDir)

	_, err = selectGenesis(newContext(t, "--genesis", filepath.Join(dir, "missing.yaml")))
	assert.Error(t, err)
}
