package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fluorish/fluorish/pkg/catalog"
	"github.com/fluorish/fluorish/pkg/doctor"
	"github.com/fluorish/fluorish/pkg/kvstore"
	"github.com/fluorish/fluorish/pkg/plants"
	"github.com/fluorish/fluorish/pkg/profile"
	"github.com/fluorish/fluorish/pkg/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	kv, err := kvstore.NewFile(getDataDir())
	if err != nil {
		return err
	}
	store := plants.NewStore(kv, nil)

	args := os.Args[1:]
	jsonOutput := hasFlag(args, "--json")
	args = removeFlag(args, "--json")
	args = removeDirFlag(args)

	if len(args) == 0 {
		return runTUI(kv, store)
	}

	switch args[0] {
	case "plants":
		return cmdPlants(store, jsonOutput)
	case "tasks":
		return cmdTasks(store, jsonOutput)
	case "streak":
		return cmdStreak(store, jsonOutput)
	case "catalog":
		return cmdCatalog(jsonOutput)
	default:
		return fmt.Errorf("unknown command: %s\nUsage: fluorish [plants|tasks|streak|catalog] [--json]", args[0])
	}
}

func getDataDir() string {
	// Check env var
	if dir := os.Getenv("FLUORISH_DIR"); dir != "" {
		return dir
	}
	// Check --dir flag
	for i, a := range os.Args {
		if a == "--dir" && i+1 < len(os.Args) {
			return os.Args[i+1]
		}
	}
	return kvstore.DefaultDataDir()
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

func removeFlag(args []string, flag string) []string {
	var result []string
	for _, a := range args {
		if a != flag {
			result = append(result, a)
		}
	}
	return result
}

func removeDirFlag(args []string) []string {
	var result []string
	skip := false
	for _, a := range args {
		if skip {
			skip = false
			continue
		}
		if a == "--dir" {
			skip = true
			continue
		}
		result = append(result, a)
	}
	return result
}

func runTUI(kv *kvstore.File, store *plants.Store) error {
	m := tui.NewModel(tui.Config{
		Store:   store,
		Session: profile.NewSession(kv),
		Catalog: catalog.Default(),
		Doctor:  doctor.NewMockProvider(rand.New(rand.NewSource(time.Now().UnixNano()))),
		Capture: doctor.MockCapture,
		ReloadKV: func() error {
			kv.Reload()
			return nil
		},
	})
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Refresh views whenever the store persists a change.
	store.Subscribe(func() {
		go p.Send(tui.RefreshMsg{})
	})

	// Watch the state file for external changes.
	cleanup, err := tui.StartWatcher(kv.Path(), p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file watcher failed: %v\n", err)
	} else {
		defer cleanup()
	}

	_, err = p.Run()
	return err
}

// CLI Commands

func cmdPlants(s *plants.Store, jsonOut bool) error {
	all := s.All()

	if jsonOut {
		return outputJSON(all)
	}

	if len(all) == 0 {
		fmt.Println("Nothing planted yet. Run fluorish to get started.")
		return nil
	}
	now := time.Now()
	for _, p := range all {
		fmt.Printf("%s  %3d%%  %-12s  week %d/%d\n",
			p.Name, p.Progress, p.Stage, p.CurrentWeek(now), p.Routine.TotalWeeks)
	}
	return nil
}

func cmdTasks(s *plants.Store, jsonOut bool) error {
	groups := s.TodayTasks()

	if jsonOut {
		return outputJSON(groups)
	}

	if len(groups) == 0 {
		fmt.Println("No tasks today.")
		return nil
	}
	for _, g := range groups {
		fmt.Printf("%s — week %d, %s\n", g.Plant.Name, g.Week, g.Day)
		for _, t := range g.Tasks {
			status := "○"
			if t.Completed {
				status = "✓"
			}
			fmt.Printf("  %s %s\n", status, t.Title)
		}
	}
	return nil
}

func cmdStreak(s *plants.Store, jsonOut bool) error {
	count := s.Streak().Recompute()

	if jsonOut {
		return outputJSON(map[string]int{"streak": count})
	}

	fmt.Printf("%d day streak\n", count)
	return nil
}

func cmdCatalog(jsonOut bool) error {
	entries := catalog.Default()

	if jsonOut {
		return outputJSON(entries)
	}

	for _, p := range entries {
		fmt.Printf("%-14s $%-6.2f %3d%% success  %s\n", p.Name, p.Price, p.SuccessRate, p.TimeToFirstHarvest)
	}
	return nil
}

func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
