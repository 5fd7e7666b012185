package main

import (
	"fmt"
	"log/slog"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/atrium-ui/atrium/examples/landing"
	"github.com/atrium-ui/atrium/internal/config"
	"github.com/atrium-ui/atrium/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		configPath string
		outDir     string
		bucket     string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Export the demo site and publish it",
		Long: `Render the demo landing site to static files and publish them.

Without --bucket the site is written to a local directory for
preview. With --bucket (or publish.bucket in atrium.yaml) the files
are uploaded to S3 using the ambient AWS credentials.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if outDir != "" {
				settings.Publish.OutDir = outDir
			}
			if bucket != "" {
				settings.Publish.Bucket = bucket
			}

			logger := settings.NewLogger()
			slog.SetDefault(logger)

			site, err := landing.Site(landing.Options{Logger: logger})
			if err != nil {
				return err
			}
			files := site.Files()

			ctx := cmd.Context()

			if settings.Publish.Bucket != "" {
				awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
				if err != nil {
					return err
				}
				pub := publish.NewS3Publisher(
					s3.NewFromConfig(awsCfg),
					settings.Publish.Bucket,
					publish.WithPrefix(settings.Publish.Prefix),
					publish.WithCacheControl(settings.Publish.CacheControl),
					publish.WithLogger(logger),
				)
				if err := pub.Publish(ctx, files); err != nil {
					return err
				}
				fmt.Printf("published %d files to s3://%s/%s\n",
					len(files), settings.Publish.Bucket, settings.Publish.Prefix)
				return nil
			}

			pub := publish.NewDirPublisher(settings.Publish.OutDir, logger)
			if err := pub.Publish(ctx, files); err != nil {
				return err
			}
			fmt.Printf("wrote %d files to %s\n", len(files), settings.Publish.OutDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to atrium.yaml")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (overrides config)")
	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "S3 bucket (overrides config)")

	return cmd
}
