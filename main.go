package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"runtime"

	"github.com/joho/godotenv"

	"kasir/app"
	"kasir/config"
	"kasir/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("WARN: Failed to load config file: %v. Using defaults.", err)
	}

	log.Println("Connecting to database...")
	dbConn, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}
	defer dbConn.Close()
	log.Println("Database connection successful.")

	gateway, err := database.NewSQLiteGateway(dbConn)
	if err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}

	application, err := app.New(gateway)
	if err != nil {
		log.Fatalf("Failed to load application state: %v", err)
	}
	log.Println("Application state loaded.")

	mux := http.NewServeMux()

	if _, err := os.Stat("static"); err == nil {
		mux.Handle("/", http.FileServer(http.Dir("./static")))
	} else {
		log.Println("WARN: 'static' directory not found. Serving API only.")
	}

	SetupRoutes(mux, application)

	addr := fmt.Sprintf(":%d", cfg.Port)
	url := fmt.Sprintf("http://localhost%s", addr)
	log.Printf("Starting server on %s", url)

	if cfg.OpenBrowser {
		openBrowser(url)
	}

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server start error: %v", err)
	}
}

func openBrowser(url string) {
	var err error
	switch runtime.GOOS {
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		err = exec.Command("open", url).Start()
	default:
		err = exec.Command("xdg-open", url).Start()
	}
	if err != nil {
		log.Printf("failed to open browser: %v", err)
	}
}
