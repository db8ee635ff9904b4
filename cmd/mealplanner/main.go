package main

import (
	"flag"
	"log"
	"os"

	"mealplanner/internal/cli"
	"mealplanner/internal/config"
	"mealplanner/internal/store"
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "path to the config file")
	dataPath := flag.String("data", "", "path to the data file (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	dataFile := cfg.DataFile
	if *dataPath != "" {
		dataFile = *dataPath
	}

	st := store.New()
	if err := st.Load(dataFile); err != nil {
		log.Fatalf("Failed to load planner data: %v", err)
	}

	shell := cli.New(st, os.Stdin, os.Stdout)
	shell.Run()

	if err := st.Save(dataFile); err != nil {
		log.Fatalf("Failed to save planner data: %v", err)
	}
}
