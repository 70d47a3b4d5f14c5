package main

import (
	"fmt"
	"log"

	"alfredoptarigan/interview-evaluator/internal/config"
	"alfredoptarigan/interview-evaluator/internal/repositories"
)

// Prints the persisted feedback history, most recent first.
func main() {
	cfg := config.Load()

	historyRepo := repositories.NewHistoryRepository(cfg.History.FilePath)
	records, err := historyRepo.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load history: %v", err)
	}

	if len(records) == 0 {
		fmt.Printf("No feedback records in %s\n", historyRepo.FilePath())
		return
	}

	fmt.Printf("%d feedback record(s) in %s\n\n", len(records), historyRepo.FilePath())
	for i := len(records) - 1; i >= 0; i-- {
		record := records[i]
		fmt.Printf("--- %s (%s) ---\n", record.Timestamp, record.SourceName)
		fmt.Printf("Nota: %s\n", record.Score)
		fmt.Printf("Resumo: %s\n\n", record.Summary)
	}
}
