// Command sgp4serve runs the propagation and pass-prediction HTTP service.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	httpHandler "github.com/anupshinde/sgp4go/internal/http"
)

const version = "0.1.0"

func main() {
	showHelp := flag.Bool("help", false, "Show usage information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showHelp {
		printUsage()
		return
	}
	if *showVersion {
		fmt.Printf("sgp4serve version %s\n", version)
		return
	}

	port := getEnv("PORT", "8080")

	log.Printf("Starting sgp4serve...")
	log.Printf("Port: %s", port)

	router := httpHandler.SetupRouter()

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Server listening on %s", addr)
	log.Printf("Health check: http://localhost:%s/healthz", port)
	log.Printf("API endpoints:")
	log.Printf("  - GET /v1/propagate")
	log.Printf("  - GET /v1/passes")

	if err := router.Run(addr); err != nil {
		log.Fatalf("sgp4serve: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func printUsage() {
	fmt.Printf("sgp4serve v%s\n\n", version)
	fmt.Println("USAGE:")
	fmt.Println("  sgp4serve [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  -help      Show this help message")
	fmt.Println("  -version   Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("  PORT   Server port (default: 8080)")
	fmt.Println()
	fmt.Println("API ENDPOINTS:")
	fmt.Println("  GET /healthz       Health check")
	fmt.Println("  GET /v1/propagate  TLE + time -> TEME position/velocity and sub-point")
	fmt.Println("                     query: line1, line2, name, time (RFC3339), opsmode")
	fmt.Println("  GET /v1/passes     TLE + ground station + window -> rise/culminate/set events")
	fmt.Println("                     query: line1, line2, name, lat, lon, start, end, min_elevation")
	fmt.Println()
}
