package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sfecalc/internal/config"
)

var (
	cfgFile string
	baseDir string
	verbose bool

	cfg *config.Config
	log *zap.SugaredLogger
)

func Execute() error {
	root := &cobra.Command{
		Use:   "sfecalc",
		Short: "Stacking fault energies from LAMMPS alloy sweeps",
		Long: `sfecalc harvests equilibrium energies from completed LAMMPS runs
over FCC/HCP/DHCP structures and derives intrinsic, extrinsic, and
twin fault energies with the DMLF model.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return err
			}
			// flags beat config file and environment
			if cmd.Flags().Changed("dir") {
				cfg.BaseDir = baseDir
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Verbose = verbose
			}
			zc := zap.NewDevelopmentConfig()
			if !cfg.Verbose {
				zc.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
			}
			logger, err := zc.Build()
			if err != nil {
				return err
			}
			log = logger.Sugar()
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./sfecalc.yaml)")
	root.PersistentFlags().StringVarP(&baseDir, "dir", "d", ".", "directory holding Comp* composition directories")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every cell, not just problems")

	root.AddCommand(collectCmd(), analyzeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sfecalc:", err)
		return err
	}
	return nil
}
