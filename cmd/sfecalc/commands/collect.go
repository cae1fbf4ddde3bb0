package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"sfecalc/internal/result"
)

// collectCmd scans the composition directories and reports what is
// present without computing anything, so incomplete sweeps can be
// rerun before analysis.
func collectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collect",
		Short: "Scan composition directories and report grid coverage",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := result.Collect(cfg.BaseDir, log)
			if err != nil {
				return err
			}
			comps := store.Compositions()
			temps := store.Temperatures()
			fmt.Printf("records:      %d\n", store.Len())
			fmt.Printf("compositions: %d\n", len(comps))
			fmt.Printf("temperatures: %v K\n", temps)
			if d := store.Duplicates(); len(d) > 0 {
				fmt.Printf("duplicates:   %d (last write wins)\n", len(d))
			}
			var incomplete int
			for _, comp := range comps {
				for _, temp := range temps {
					missing := store.Missing(comp, temp)
					if len(missing) == 0 {
						continue
					}
					incomplete++
					names := make([]string, len(missing))
					for i, s := range missing {
						names[i] = s.String()
					}
					fmt.Fprintf(os.Stderr, "incomplete: %s at %g K, missing %s\n",
						comp, temp, strings.Join(names, ","))
				}
			}
			fmt.Printf("complete cells: %d of %d\n",
				len(comps)*len(temps)-incomplete, len(comps)*len(temps))
			return nil
		},
	}
}
