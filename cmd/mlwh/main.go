package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seqwell/mlwh/internal/appcontext"
	"github.com/seqwell/mlwh/internal/config"
	"github.com/seqwell/mlwh/internal/warehouse"
)

func main() {
	root := &cobra.Command{
		Use:          "mlwh",
		Short:        "Read access to the multi-LIMS sequencing warehouse",
		SilenceUsage: true,
	}

	root.AddCommand(
		consentWithdrawnCmd(),
		updatedCmd("updated-samples", "List LIMS ids of samples updated in a time window", warehouse.FindUpdatedSamples),
		updatedCmd("updated-studies", "List LIMS ids of studies updated in a time window", warehouse.FindUpdatedStudies),
		studyCmd(),
		sampleCmd(),
		locationsCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp builds the app context and a cleanup that flushes the logger and
// returns the pool's connections.
func initApp() (*appcontext.Context, func(), error) {
	appCtx, err := config.InitContext()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = appCtx.Logger.Sync()
		if sqlDB, err := appCtx.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return appCtx, cleanup, nil
}

func consentWithdrawnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consent-withdrawn",
		Short: "List samples whose consent has been withdrawn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			appCtx, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			return warehouse.WithSession(cmd.Context(), appCtx.DB, appCtx.Logger, func(tx *gorm.DB) error {
				samples, err := warehouse.FindConsentWithdrawnSamples(tx)
				if err != nil {
					return err
				}
				for _, s := range samples {
					name := ""
					if s.Name != nil {
						name = *s.Name
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", s.IDSampleLims, name)
				}
				appCtx.Logger.Info("Listed consent-withdrawn samples", zap.Int("count", len(samples)))
				return nil
			})
		},
	}
}

func updatedCmd(use, short string, find func(*gorm.DB, time.Time, time.Time) *warehouse.IDIterator) *cobra.Command {
	var sinceArg, untilArg string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			since, err := time.Parse(time.RFC3339, sinceArg)
			if err != nil {
				return fmt.Errorf("invalid --since: %w", err)
			}
			until, err := time.Parse(time.RFC3339, untilArg)
			if err != nil {
				return fmt.Errorf("invalid --until: %w", err)
			}

			appCtx, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			return warehouse.WithSession(cmd.Context(), appCtx.DB, appCtx.Logger, func(tx *gorm.DB) error {
				it := find(tx, since, until)
				for it.Next() {
					fmt.Fprintln(cmd.OutOrStdout(), it.ID())
				}
				return it.Err()
			})
		},
	}

	cmd.Flags().StringVar(&sinceArg, "since", "", "start of the window (RFC 3339)")
	cmd.Flags().StringVar(&untilArg, "until", "", "end of the window (RFC 3339)")
	_ = cmd.MarkFlagRequired("since")
	_ = cmd.MarkFlagRequired("until")

	return cmd
}

func studyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "study <study-id>",
		Short: "Look up a study by its LIMS study id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			return warehouse.WithSession(cmd.Context(), appCtx.DB, appCtx.Logger, func(tx *gorm.DB) error {
				study, err := warehouse.FindStudyByStudyID(tx, args[0])
				if err != nil {
					return err
				}
				name := ""
				if study.Name != nil {
					name = *study.Name
				}
				accession := ""
				if study.AccessionNumber != nil {
					accession = *study.AccessionNumber
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", study.IDStudyLims, name, accession)
				return nil
			})
		},
	}
}

func sampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample <sample-id>",
		Short: "Look up a sample by its LIMS sample id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			return warehouse.WithSession(cmd.Context(), appCtx.DB, appCtx.Logger, func(tx *gorm.DB) error {
				sample, err := warehouse.FindSampleBySampleID(tx, args[0])
				if err != nil {
					return err
				}

				id, err := sample.UUID()
				if err != nil {
					return fmt.Errorf("sample %q has a malformed LIMS UUID: %w", sample.IDSampleLims, err)
				}
				name := ""
				if sample.Name != nil {
					name = *sample.Name
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", sample.IDSampleLims, id, name)
				return nil
			})
		},
	}
}

func locationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locations <product-id>",
		Short: "List iRODS locations recorded for a sequencing product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			return warehouse.WithSession(cmd.Context(), appCtx.DB, appCtx.Logger, func(tx *gorm.DB) error {
				locations, err := warehouse.FindProductLocations(tx, args[0])
				if err != nil {
					return err
				}
				for _, loc := range locations {
					rel := ""
					if loc.IrodsDataRelativePath != nil {
						rel = *loc.IrodsDataRelativePath
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n",
						loc.SeqPlatformName, loc.PipelineName, loc.IrodsRootCollection, rel)
				}
				return nil
			})
		},
	}
}
