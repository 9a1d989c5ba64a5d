// Command seed generates a batch of synthetic transactions offline, scores
// each one, and prints a summary table. Useful for eyeballing the generated
// distributions without starting the server.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"

	"finwatch/internal/random"
	"finwatch/internal/services/analyzer"
	"finwatch/internal/services/generator"
)

func main() {
	count := flag.Int("count", 20, "number of transactions to generate")
	highRisk := flag.Float64("high-risk", 0.3, "fraction of high-risk transactions")
	seed := flag.Int64("seed", 0, "random seed (0 means time-based)")
	flag.Parse()

	rng := random.NewSource()
	if *seed != 0 {
		rng = random.NewSeeded(*seed)
	}

	generatorService := generator.NewService(rng)
	analyzerService := analyzer.NewService(rng)

	txs, err := generatorService.GenerateBatch(*count, *highRisk)
	if err != nil {
		log.Fatalf("generate batch: %v", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Type", "Country", "Risk", "Amount (SGD)", "Score", "Action"})

	escalations := 0
	for _, tx := range txs {
		res, err := analyzerService.Analyze(tx)
		if err != nil {
			log.Fatalf("analyze %s: %v", tx.ID, err)
		}
		if res.RecommendedAction == "Escalate" {
			escalations++
		}
		table.Append([]string{
			tx.ID,
			tx.TransactionType,
			tx.Country,
			tx.RiskIndicator,
			fmt.Sprintf("%.2f", tx.Amount),
			fmt.Sprintf("%d", res.RiskScore),
			res.RecommendedAction,
		})
	}

	table.Render()
	fmt.Printf("%d transactions, %d escalations\n", len(txs), escalations)
}
