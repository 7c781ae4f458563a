// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	flags "github.com/jessevdk/go-flags"

	"github.com/strongchain-go/node/crypto"
	"github.com/strongchain-go/node/wire"
)

var (
	defaultHomeDir   = appDataDir("strongchaind", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, "strongchaind.conf")
	defaultLogDir    = filepath.Join(defaultHomeDir, "logs")
)

// config is the full set of options a node's process accepts, on the
// command line or in an ini-format file. Ground: the teacher's config
// struct shape and two-pass flags.Parser loading sequence, reduced to the
// handful of settings a single UDP node actually needs.
type config struct {
	ConfigFile string `short:"C" long:"configfile" description:"Path to configuration file"`
	ID         string `short:"i" long:"id" description:"Arbitrary label for this node's log output"`
	Port       int    `short:"p" long:"port" description:"UDP port to listen on"`
	Address    string `short:"a" long:"address" description:"Address to advertise to peers"`
	Peers      []string `long:"peer" description:"A peer to announce to at startup, as address:port:vk (may be given multiple times)"`
	PrivKey    string `long:"privkey" description:"Hex-encoded signing key; a new one is generated and printed if omitted"`
	Verbose    bool   `short:"v" long:"verbose" description:"Enable debug-level logging"`
	Selfish    bool   `long:"selfish" description:"Run the selfish-mining reaction of §4.7 instead of honest mining"`
	Console    string `long:"console" description:"Address to serve a read-only operator status websocket on (disabled if empty)"`
}

// defaultConfig returns a config populated with every field loadConfig
// needs a default for before the file and command line are applied.
func defaultConfig() config {
	return config{
		ConfigFile: defaultConfigFile,
		Port:       9000,
		Address:    "127.0.0.1",
	}
}

// loadConfig runs the pre-parse/file/final-parse sequence: a first pass
// only to discover --configfile, an ini pass over that file, then a final
// command line pass so flags always win over the file.
func loadConfig() (*config, error) {
	cfg := defaultConfig()

	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	if _, err := preParser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil, err
		}
	}

	if _, err := os.Stat(preCfg.ConfigFile); err == nil {
		parser := flags.NewParser(&cfg, flags.Default)
		if err := flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile); err != nil {
			return nil, fmt.Errorf("strongchaind: parsing config file: %w", err)
		}
	} else {
		cfg.ConfigFile = preCfg.ConfigFile
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolve turns the parsed, still-stringly-typed config into the signing
// key and peer list New's Config needs, parsing each --peer spec as
// "address:port:vk".
func (cfg *config) resolve() (crypto.PrivateKey, []wire.NodeConf, error) {
	var sk crypto.PrivateKey
	if cfg.PrivKey != "" {
		parsed, err := crypto.PrivateKeyFromString(cfg.PrivKey)
		if err != nil {
			return sk, nil, fmt.Errorf("strongchaind: --privkey: %w", err)
		}
		sk = parsed
	} else {
		generated, _, err := crypto.GenerateKey()
		if err != nil {
			return sk, nil, fmt.Errorf("strongchaind: generating signing key: %w", err)
		}
		sk = generated
		fmt.Printf("strongchaind: generated signing key %s\n", sk.String())
	}

	peers := make([]wire.NodeConf, 0, len(cfg.Peers))
	for _, spec := range cfg.Peers {
		parts := strings.SplitN(spec, ":", 3)
		if len(parts) != 3 {
			return sk, nil, fmt.Errorf("strongchaind: --peer %q: want address:port:vk", spec)
		}
		port, err := strconv.Atoi(parts[1])
		if err != nil {
			return sk, nil, fmt.Errorf("strongchaind: --peer %q: bad port: %w", spec, err)
		}
		peers = append(peers, wire.NodeConf{Address: parts[0], Port: port, VK: parts[2]})
	}

	return sk, peers, nil
}
