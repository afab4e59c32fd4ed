package api

import (
	"github.com/gorilla/mux"

	"github.com/daybook-labs/daybook/internal/api/recovery"
	"github.com/daybook-labs/daybook/internal/config"
	"github.com/daybook-labs/daybook/internal/downstream"
	"github.com/daybook-labs/daybook/internal/store"
)

// NewRouter wires the gateway's HTTP surface: entry operations against
// the store, helper-service proxies through the downstream adapter,
// and sandboxed export-artifact serving.
func NewRouter(entries store.EntryStore, cfg *config.Config) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(recovery.Middleware)

	entryHandler := NewEntryHandler(entries)
	proxyHandler := NewProxyHandler(downstream.New(cfg.DownstreamTimeout), cfg)
	exportsHandler := NewExportsHandler(cfg.ExportDir)

	// Health endpoint
	router.HandleFunc("/api/health", CheckHealth).Methods("GET")

	// Entry endpoints (local store)
	router.HandleFunc("/api/entries/create", entryHandler.CreateEntry).Methods("POST")
	router.HandleFunc("/api/entries/list", entryHandler.ListEntries).Methods("GET")
	router.HandleFunc("/api/entries/get", entryHandler.GetEntry).Methods("GET")
	router.HandleFunc("/api/entries/update", entryHandler.UpdateEntry).Methods("POST")
	router.HandleFunc("/api/entries/delete", entryHandler.DeleteEntry).Methods("POST")

	// Helper-service proxies
	router.HandleFunc("/api/a/wordcount", proxyHandler.WordCount).Methods("POST")
	router.HandleFunc("/api/b/list", proxyHandler.EncouragementList).Methods("GET")
	router.HandleFunc("/api/b/random", proxyHandler.EncouragementRandom).Methods("GET")
	router.HandleFunc("/api/c/count", proxyHandler.EntryCount).Methods("GET")
	router.HandleFunc("/api/c/count-with-date", proxyHandler.EntryCountWithDate).Methods("GET")
	router.HandleFunc("/api/d/export-csv", proxyHandler.ExportCSV).Methods("POST")

	// Export artifacts
	router.HandleFunc("/exports/{filename}", exportsHandler.ServeFile).Methods("GET")

	return router
}
