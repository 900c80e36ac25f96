package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridif/elecmatrix"
	"github.com/katalvlaran/gridif/gridconfig"
	"github.com/katalvlaran/gridif/gridio"
	"github.com/katalvlaran/gridif/gridlog"
	"github.com/katalvlaran/gridif/ifsearch"
	"github.com/katalvlaran/gridif/report"
	"github.com/katalvlaran/gridif/setselect"
	"github.com/katalvlaran/gridif/topology"
)

// perCountryBudget bounds the wall-clock time the IF search may spend on
// a single country before aborting, per spec.md §5's "sensible
// implementation budgets a wall-clock ceiling" recommendation.
const perCountryBudget = 5 * time.Minute

func newRunCommand() *cobra.Command {
	var configPath, inputPath, outDir string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the influence-factor pipeline for every configured country",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAll(configPath, inputPath, outDir)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to the YAML configuration file")
	cmd.Flags().StringVar(&inputPath, "input", "", "path to the YAML grid snapshot")
	cmd.Flags().StringVar(&outDir, "out-dir", "./out", "directory to write per-country CSV and snapshot output")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runAll(configPath, inputPath, outDir string) error {
	cfg, err := gridconfig.Load(configPath)
	if err != nil {
		return fmt.Errorf("cli.runAll: %w", err)
	}

	raw, err := gridio.ParseYAML(inputPath)
	if err != nil {
		return fmt.Errorf("cli.runAll: %w", err)
	}

	root := gridlog.New(os.Stdout)

	countries := cfg.ActiveCountries()
	errs := make([]error, len(countries))

	var wg sync.WaitGroup
	for i, country := range countries {
		wg.Add(1)
		go func(i int, country string) {
			defer wg.Done()
			errs[i] = runCountry(cfg, raw, root.WithCountry(country), outDir)
		}(i, country)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			fmt.Fprintf(os.Stderr, "country %s: %v\n", countries[i], err)
		}
	}
	for _, err := range errs {
		if err != nil {
			return fmt.Errorf("cli.runAll: one or more countries failed")
		}
	}
	return nil
}

// runCountry executes the pipeline for a single country. A failure here
// is isolated to this country's goroutine and never corrupts another
// country's run, per spec.md §7's country-level isolation guarantee.
func runCountry(cfg *gridconfig.Config, raw *gridio.RawGrid, logger gridlog.Logger, outDir string) error {
	country := logger.Country

	mapper, err := cfg.CountryMapperFor()
	if err != nil {
		logger.Fatal(gridlog.KindInputMissing, err)
		return err
	}

	net, err := gridio.Build(raw, country, mapper)
	if err != nil {
		logger.Fatal(gridlog.KindMalformedRecord, err)
		return err
	}

	logf := func(msg string) { logger.Warn(gridlog.KindPolicyWarning, msg) }

	reduced, err := topology.Reduce(net, topology.Options{
		MergeCouplers: cfg.MergeCouplers,
		Eps:           cfg.RadialEps,
		Logf:          logf,
	})
	if err != nil {
		logger.Fatal(gridlog.KindTopologyInvariant, err)
		return err
	}

	set, err := elecmatrix.Build(reduced, cfg.RadialEps, logf)
	if err != nil {
		logger.Fatal(gridlog.KindNumerical, err)
		return err
	}

	sets := setselect.Build(reduced, cfg.RadialEps)

	ctx, cancel := context.WithTimeout(context.Background(), perCountryBudget)
	defer cancel()

	results, err := ifsearch.Search(ctx, set, sets, cfg.DenomEps)
	if err != nil {
		logger.Warn(gridlog.KindDegenerate, err.Error())
		return nil // an empty/aborted R aborts this country only, not the run
	}

	var genResults []ifsearch.GenResult
	if cfg.CalculateGeneratorIF {
		genResults = ifsearch.SearchGenerators(set, sets)
	}

	countryDir := filepath.Join(outDir, country)
	if err := os.MkdirAll(countryDir, 0o755); err != nil {
		return fmt.Errorf("runCountry(%s): %w", country, err)
	}

	if err := writeCSV(filepath.Join(countryDir, "branches.csv"), func(f *os.File) error {
		return report.WriteBranchCSV(f, reduced, results)
	}); err != nil {
		return err
	}
	if err := writeCSV(filepath.Join(countryDir, "generators.csv"), func(f *os.File) error {
		return report.WriteGeneratorCSV(f, reduced, genResults)
	}); err != nil {
		return err
	}
	snapshotName := fmt.Sprintf("topology_%s.yaml", logger.RunID.String())
	if err := writeCSV(filepath.Join(countryDir, snapshotName), func(f *os.File) error {
		return report.WriteTopologySnapshot(f, reduced)
	}); err != nil {
		return err
	}

	return nil
}

func writeCSV(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writeCSV(%s): %w", path, err)
	}
	defer f.Close()
	return write(f)
}
