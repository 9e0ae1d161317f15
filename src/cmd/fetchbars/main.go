package main

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ymiyamoto5/backtester/src/eventservices"
	"github.com/ymiyamoto5/backtester/src/utils"
)

type FetchArgs struct {
	Symbol   string
	FromDate time.Time
	ToDate   time.Time
	OutPath  string
}

var fetchCmd = &cobra.Command{
	Use:   "go run src/cmd/fetchbars/main.go --symbol AAPL --from 2023-01-01 --to 2023-12-31 --out bars.csv",
	Short: "Fetch daily bars and save them as csv",
	Run: func(cmd *cobra.Command, args []string) {
		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			log.Fatalf("error getting symbol: %v", err)
		}

		from, err := cmd.Flags().GetString("from")
		if err != nil {
			log.Fatalf("error getting from: %v", err)
		}

		to, err := cmd.Flags().GetString("to")
		if err != nil {
			log.Fatalf("error getting to: %v", err)
		}

		out, err := cmd.Flags().GetString("out")
		if err != nil {
			log.Fatalf("error getting out: %v", err)
		}

		fromDate, err := time.Parse("2006-01-02", from)
		if err != nil {
			log.Fatalf("error parsing from date: %v", err)
		}

		toDate, err := time.Parse("2006-01-02", to)
		if err != nil {
			log.Fatalf("error parsing to date: %v", err)
		}

		if err := Fetch(FetchArgs{
			Symbol:   symbol,
			FromDate: fromDate,
			ToDate:   toDate,
			OutPath:  out,
		}); err != nil {
			log.Fatalf("Error: %v", err)
		}

		log.Info("Done")
	},
}

func Fetch(args FetchArgs) error {
	if err := utils.InitEnvironmentVariables(); err != nil {
		return fmt.Errorf("failed to init environment variables: %w", err)
	}

	bars, err := eventservices.FetchDailyBars(args.Symbol, args.FromDate, args.ToDate)
	if err != nil {
		return fmt.Errorf("failed to fetch daily bars: %w", err)
	}

	log.Infof("fetched %d bars for %s", len(bars), args.Symbol)

	if err := eventservices.WriteBarsCSV(bars, args.OutPath); err != nil {
		return fmt.Errorf("failed to write bars csv: %w", err)
	}

	log.Infof("wrote %s", args.OutPath)

	return nil
}

func main() {
	fetchCmd.PersistentFlags().String("symbol", "", "The stock symbol to fetch.")
	fetchCmd.PersistentFlags().String("from", "", "The start date, formatted yyyy-mm-dd.")
	fetchCmd.PersistentFlags().String("to", "", "The end date, formatted yyyy-mm-dd.")
	fetchCmd.PersistentFlags().String("out", "bars.csv", "The csv file to write the fetched bars to.")
	fetchCmd.MarkPersistentFlagRequired("symbol")
	fetchCmd.MarkPersistentFlagRequired("from")
	fetchCmd.MarkPersistentFlagRequired("to")

	fetchCmd.Execute()
}
