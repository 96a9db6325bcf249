// Package main provides the entry point for the PDF Letter Service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "letter_service",
	Short: "PDF Letter Service",
	Long:  "Microservice for generating formal school letters (surat tugas, lembar persetujuan, surat dinas) as PDF from HTML templates.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
