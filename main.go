// main is the entry point for the weightlog CLI.
package main

import (
	"github.com/huangsam/weightlog/cmd"
	"github.com/huangsam/weightlog/internal/contract"
	"github.com/huangsam/weightlog/internal/store"
)

func main() {
	defer store.CloseStores()
	cmd.SetStoreManager(store.Manager)

	if err := cmd.Execute(); err != nil {
		store.CloseStores()
		contract.LogFatal("Cannot run weightlog", err)
	}

	if err := cmd.StopProfiling(); err != nil {
		contract.LogWarn("Cannot stop profiling", err)
	}
}
