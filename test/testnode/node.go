// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package testnode builds an in-memory dev node driven by a fake clock.
package testnode

import (
	"net/http/httptest"
	"time"

	"github.com/gorilla/mux"
	"github.com/jonboulle/clockwork"

	"github.com/paradox-labs/para/genesis"
	"github.com/paradox-labs/para/host"
	"github.com/paradox-labs/para/lvldb"
	"github.com/paradox-labs/para/para"
	"github.com/paradox-labs/para/state"
)

// LaunchTime is the genesis time of every test node.
const LaunchTime uint64 = 1_700_000_000

// Node couples a host with the clock driving it.
type Node struct {
	db      *lvldb.LevelDB
	host    *host.Host
	clock   *clockwork.FakeClock
	genesis *genesis.Genesis
}

// New builds the devnet genesis into a memory store.
func New() (*Node, error) {
	db, err := lvldb.NewMem()
	if err != nil {
		return nil, err
	}
	stater := state.NewStater(db)
	gen := genesis.NewDevnet(LaunchTime)
	if _, err := gen.Build(stater); err != nil {
		db.Close()
		return nil, err
	}

	clock := clockwork.NewFakeClockAt(time.Unix(int64(LaunchTime), 0))
	return &Node{
		db:      db,
		host:    host.New(stater, gen.StakerConfig(), clock),
		clock:   clock,
		genesis: gen,
	}, nil
}

func (n *Node) Host() *host.Host {
	return n.host
}

func (n *Node) Genesis() *genesis.Genesis {
	return n.genesis
}

// Advance moves the node clock forward by whole days.
func (n *Node) Advance(days uint64) {
	n.clock.Advance(time.Duration(days*para.SecondsPerDay) * time.Second)
}

// Accounts returns the funded dev accounts, the rewards reserve excluded.
func (n *Node) Accounts() []genesis.DevAccount {
	return genesis.DevAccounts()[1:]
}

// Serve mounts the routes set up by mount on a fresh router and starts serving it.
func (n *Node) Serve(mount func(router *mux.Router)) *httptest.Server {
	router := mux.NewRouter()
	mount(router)
	return httptest.NewServer(router)
}

func (n *Node) Close() error {
	return n.db.Close()
}
