// Command mimekit detects the MIME type of files from their content.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gobeaver/mimekit"
)

var log = logrus.New()

func main() {
	cfg, err := mimekit.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("loading configuration")
	}
	configureLogging(cfg)

	root := &cobra.Command{
		Use:           "mimekit",
		Short:         "Detect MIME types from file content",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(detectCmd(cfg), matchCmd(), formatsCmd())

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func configureLogging(cfg *mimekit.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
}

func detectCmd(cfg *mimekit.Config) *cobra.Command {
	var showExtension bool
	cmd := &cobra.Command{
		Use:   "detect FILE...",
		Short: "Print the detected MIME type of each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detector, err := mimekit.NewDetectorFromConfig(cfg)
			if err != nil {
				return err
			}
			var failed bool
			for _, path := range args {
				mt, err := detector.DetectFile(path)
				if err != nil {
					log.WithError(err).WithField("file", path).Error("detection failed")
					failed = true
					continue
				}
				if showExtension {
					fmt.Printf("%s: %s %s\n", path, mt.MIME(), mt.Extension())
				} else {
					fmt.Printf("%s: %s\n", path, mt.MIME())
				}
			}
			if failed {
				return fmt.Errorf("some files could not be read")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&showExtension, "extension", "e", false, "also print the canonical extension")
	return cmd
}

func matchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match MIME FILE",
		Short: "Exit 0 when the file content matches the MIME type",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mime, path := args[0], args[1]
			ok, err := mimekit.MatchFile(path, mime)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%s does not match %s", path, mime)
			}
			fmt.Printf("%s matches %s\n", path, mime)
			return nil
		},
	}
}

func formatsCmd() *cobra.Command {
	var kindName string
	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List the built-in formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := mimekit.Formats()
			if kindName != "" {
				kind, err := kindByName(kindName)
				if err != nil {
					return err
				}
				formats = mimekit.FormatsByKind(kind)
			}
			for _, mt := range formats {
				fmt.Printf("%-60s %s\n", mt.MIME(), mt.Extension())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&kindName, "kind", "k", "", "filter by category (image, audio, video, ...)")
	return cmd
}

func kindByName(name string) (mimekit.Kind, error) {
	kinds := map[string]mimekit.Kind{
		"archive":      mimekit.KindArchive,
		"video":        mimekit.KindVideo,
		"audio":        mimekit.KindAudio,
		"image":        mimekit.KindImage,
		"document":     mimekit.KindDocument,
		"text":         mimekit.KindText,
		"font":         mimekit.KindFont,
		"executable":   mimekit.KindExecutable,
		"application":  mimekit.KindApplication,
		"model":        mimekit.KindModel,
		"database":     mimekit.KindDatabase,
		"spreadsheet":  mimekit.KindSpreadsheet,
		"presentation": mimekit.KindPresentation,
	}
	kind, ok := kinds[name]
	if !ok {
		return mimekit.KindUnknown, fmt.Errorf("unknown kind %q", name)
	}
	return kind, nil
}
