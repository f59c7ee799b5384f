package main

import (
	"log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"photostat/internal/exif"
	"photostat/internal/report"
)

func main() {
	var recursive bool
	var timeline string
	var asJSON bool

	rootCmd := &cobra.Command{
		Use:   "photostat",
		Short: "analyze EXIF metadata of a photo collection",
	}

	scanCmd := &cobra.Command{
		Use:   "scan dir",
		Short: "scan a directory and report shooting statistics",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			granularity, err := report.ParseGranularity(timeline)
			if err != nil {
				log.Fatal(err)
			}

			logger, err := zap.NewProduction()
			if err != nil {
				log.Fatal(err)
			}
			defer logger.Sync()

			extractor := exif.NewExtractor(logger)
			records, err := extractor.Scan(args[0], recursive)
			if err != nil {
				log.Fatal(err)
			}

			table := report.NewTable(records)
			if asJSON {
				err = printJSON(table, granularity)
			} else {
				err = printReports(table, granularity)
			}
			if err != nil {
				log.Fatal(err)
			}
		},
	}
	scanCmd.Flags().BoolVarP(&recursive, "recursive", "r", true, "scan subfolders")
	scanCmd.Flags().StringVar(&timeline, "timeline", "month", "timeline granularity (day, week, month, year)")
	scanCmd.Flags().BoolVar(&asJSON, "json", false, "print reports as JSON")
	rootCmd.AddCommand(scanCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
