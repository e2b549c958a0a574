// Main entry point for the application
package main

import (
	"log"
	"os"

	"imseqview/internal/ui"
)

func main() {
	log.SetPrefix("imseqview ")

	folder := ""
	if len(os.Args) > 1 {
		folder = os.Args[1]
	}
	ui.CreateApplication(ui.AppOptions{FolderPath: folder}).Run()
}
