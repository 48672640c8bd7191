package cmd

import (
	"fmt"
	"os"

	"github.com/praxislabs/praxis/internal/config"
	"github.com/praxislabs/praxis/internal/gateway"
	"github.com/praxislabs/praxis/internal/llm"
	"github.com/praxislabs/praxis/internal/store"
	"github.com/spf13/cobra"
)

// openStore opens the database for commands that only read or write rows.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// openGateway builds the full pipeline for commands that process
// interactions. The returned cleanup closes the gateway (draining pending
// risk scans) and then the store.
func openGateway(cmd *cobra.Command) (*gateway.Gateway, *store.Store, func(), error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		st.Close()
		return nil, nil, nil, err
	}

	timeout, err := cfg.Gateway.Timeout()
	if err != nil {
		st.Close()
		return nil, nil, nil, err
	}
	cacheCfg, err := cfg.Cache.Build()
	if err != nil {
		st.Close()
		return nil, nil, nil, err
	}

	var llmCfg llm.Config
	if os.Getenv("PRAXIS_LLM_PROVIDER") != "" {
		llmCfg = llm.ConfigFromEnv()
	} else if discovered, ok := llm.DiscoverConfig(); ok {
		llmCfg = discovered
	} else {
		fmt.Fprintln(os.Stderr, "No LLM provider configured (set PRAXIS_LLM_PROVIDER or an API key).")
		fmt.Fprintln(os.Stderr, "Generation will fail; governed and deterministic turns still work.")
		llmCfg = llm.ConfigFromEnv()
	}
	registry := llm.NewRegistry(llmCfg, st.EventRepo())

	g, err := gateway.New(st, registry, gateway.Options{
		Temperature:     cfg.Gateway.Temperature,
		MaxTokens:       cfg.Gateway.MaxTokens,
		ProviderTimeout: timeout,
		HistoryLimit:    cfg.Gateway.HistoryLimit,
		ScanQueueSize:   cfg.Gateway.ScanQueueSize,
		Cache:           cacheCfg,
	})
	if err != nil {
		st.Close()
		return nil, nil, nil, err
	}

	cleanup := func() {
		g.Close()
		st.Close()
	}
	return g, st, cleanup, nil
}
