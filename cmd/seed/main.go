// Command seed fills the item store with a demo list mixing titles and
// contacts, replacing what is there.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/llehouerou/broadlist/internal/config"
	"github.com/llehouerou/broadlist/internal/logging"
	"github.com/llehouerou/broadlist/internal/state"
)

func main() {
	groups := flag.Int("groups", 3, "number of titled groups")
	perGroup := flag.Int("contacts", 4, "contacts per group")
	path := flag.String("store", "", "store path (default from config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *path == "" {
		*path, err = cfg.StorePath()
		if err != nil {
			log.Fatalf("Failed to resolve store path: %v", err)
		}
	}

	store, err := state.Open(*path, logging.Discard())
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	entries := demo(*groups, *perGroup, time.Now())
	store.Save(entries)
	if err := store.Flush(context.Background()); err != nil {
		log.Fatalf("Failed to save items: %v", err)
	}
	if err := store.Close(); err != nil {
		log.Fatalf("Failed to close store: %v", err)
	}
	log.Printf("Seeded %d items into %s", len(entries), *path)
}

func demo(groups, perGroup int, now time.Time) []state.Entry {
	var entries []state.Entry
	n := 0
	for g := 1; g <= groups; g++ {
		entries = append(entries, state.Entry{
			ID:   uuid.NewString(),
			Kind: state.KindTitle,
			Name: fmt.Sprintf("Title %d", g),
		})
		for range perGroup {
			n++
			entries = append(entries, state.Entry{
				ID:      uuid.NewString(),
				Kind:    state.KindContact,
				Name:    fmt.Sprintf("Item Name %d", n),
				Checked: n%3 == 0,
				AddedAt: now.Add(-time.Duration(n) * time.Hour),
			})
		}
	}
	return entries
}
