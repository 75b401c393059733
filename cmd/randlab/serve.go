package main

import (
	"log"

	"randlab/ui"
)

func serveReports(addr, outputDir string) error {
	server := ui.NewServer(outputDir)
	log.Printf("serving reports from %s on %s", outputDir, addr)
	return server.ListenAndServe(addr)
}
