package main

import (
	"log"

	"github.com/myownipgit/mcp-server-qrcode-enhanced/cmd/server"
	"github.com/myownipgit/mcp-server-qrcode-enhanced/internal/adapters/config"
)

func main() {
	cfg := config.Get()
	s, err := server.New(cfg)
	if err != nil {
		log.Panic(err)
	}

	s.Start()
}
