package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/rgoodwin/entrysim/internal/httpapi"
	"github.com/rgoodwin/entrysim/internal/simulation"
)

func main() {
	_ = godotenv.Load()

	addrFlag := flag.String("addr", "", "listen address (overrides PORT env var)")
	flag.Parse()

	addr := *addrFlag
	if addr == "" {
		addr = ":8080"
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		}
	}

	caller, err := simulation.NewAnthropicCallerFromEnv()
	if err != nil {
		log.Fatal(err)
	}
	pipeline := simulation.NewPipeline(caller)

	h := httpapi.NewServer(pipeline)
	log.Printf("entrysim-server listening on %s", addr)
	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal(err)
	}
}
