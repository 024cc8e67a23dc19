package main

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rm-hull/batch-effects/cmd"
	"github.com/rm-hull/batch-effects/internal"
	"github.com/rm-hull/batch-effects/internal/batch"
	"github.com/rm-hull/batch-effects/internal/photo"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	defaultQuality := photo.DefaultQuality
	if s := os.Getenv("BATCH_EFFECTS_QUALITY"); s != "" {
		q, err := strconv.Atoi(s)
		if err != nil {
			log.Fatalf("Error: BATCH_EFFECTS_QUALITY is not a number: %v", err)
		}
		defaultQuality = q
	}

	if err := newRootCmd(defaultQuality).Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd(defaultQuality int) *cobra.Command {
	var quality int
	var keepGoing bool
	var preview bool
	var rootPath string
	var inputDir string
	var at string
	var port int
	var debug bool

	rootCmd := &cobra.Command{
		Use: "batch-effects <input-dir> <output-dir> [--keep-going] [--quality <n>] [--preview]",
		Long: `Apply a fixed catalog of image effects to every file in a directory.

An input directory named "serve" or "version" is taken as the subcommand of
that name; pass it as "./serve" instead.`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			c.SilenceUsage = true
			return cmd.Batch(args[0], args[1], batch.Options{
				Quality:   quality,
				KeepGoing: keepGoing,
				Preview:   preview,
				Out:       c.OutOrStdout(),
			})
		},
	}

	rootCmd.Flags().IntVar(&quality, "quality", defaultQuality, "JPEG quality of the generated images (1-100)")
	rootCmd.Flags().BoolVar(&keepGoing, "keep-going", false, "Report failed images and carry on instead of stopping at the first error")
	rootCmd.Flags().BoolVar(&preview, "preview", false, "Also write an animated <name>_preview.png cycling through every effect")

	serveCmd := &cobra.Command{
		Use:   "serve [--root <path>] [--input <path>] [--at <HH:MM>] [--port <port>] [--debug]",
		Short: "Start HTTP server browsing the generated images",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			cmd.ApiServer(cmd.ServerOptions{
				RootDir:  rootPath,
				InputDir: inputDir,
				At:       at,
				Port:     port,
				Debug:    debug,
				Quality:  quality,
			})
		},
	}

	serveCmd.Flags().StringVar(&rootPath, "root", "./data/output", "Path to folder of generated images")
	serveCmd.Flags().StringVar(&inputDir, "input", "", "Path to source images; when set the batch is re-run daily into --root")
	serveCmd.Flags().StringVar(&at, "at", "04:00", "Time of day (HH:MM) for the scheduled batch run")
	serveCmd.Flags().IntVar(&port, "port", 8080, "Port to run HTTP server on")
	serveCmd.Flags().IntVar(&quality, "quality", defaultQuality, "JPEG quality of the generated images (1-100)")
	serveCmd.Flags().BoolVar(&debug, "debug", false, "Enable debugging (pprof) - WARNING: do not enable in production")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			internal.ShowVersion()
		},
	}

	rootCmd.AddCommand(serveCmd, versionCmd)
	return rootCmd
}
