package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sfecalc/internal/report"
	"sfecalc/internal/result"
	"sfecalc/internal/sfe"
)

func analyzeCmd() *cobra.Command {
	var csvOut, reportOut string
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute fault energies and export CSV and summary report",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("csv") {
				cfg.CSVOut = csvOut
			}
			if cmd.Flags().Changed("report") {
				cfg.ReportOut = reportOut
			}
			store, err := result.Collect(cfg.BaseDir, log)
			if err != nil {
				return err
			}
			rep, err := sfe.Analyze(store, log)
			if err != nil {
				return err
			}
			report.WriteTable(os.Stdout, rep.Results)
			for _, d := range rep.Diagnostics {
				log.Warnw("cell skipped", "comp", d.Comp, "temp", d.Temp,
					"missing", fmt.Sprint(d.Missing))
			}
			if err := writeFile(cfg.CSVOut, func(f *os.File) error {
				return report.WriteCSV(f, rep.Results)
			}); err != nil {
				return err
			}
			if err := writeFile(cfg.ReportOut, func(f *os.File) error {
				return report.WriteSummary(f, rep.Results)
			}); err != nil {
				return err
			}
			fmt.Printf("%d cells evaluated, %d skipped\n",
				len(rep.Results), len(rep.Diagnostics))
			fmt.Printf("wrote %s and %s\n", cfg.CSVOut, cfg.ReportOut)
			return nil
		},
	}
	cmd.Flags().StringVar(&csvOut, "csv", "sfe_results.csv", "CSV output path")
	cmd.Flags().StringVar(&reportOut, "report", "sfe_summary_report.txt", "summary report path")
	return cmd
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
