package main

import (
	"log"

	"Eventy/CronJobs"
	"Eventy/FiberConfig"
	"Eventy/Models"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	Models.Connect()

	digest := CronJobs.NewPendingDigest(Models.DB, false)
	if err := digest.Start(); err != nil {
		log.Printf("Failed to start pending digest: %v", err)
	}

	FiberConfig.FiberConfig()
}
