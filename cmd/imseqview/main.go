package main

import (
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"imseqview/internal/config"
	"imseqview/internal/recents"
	"imseqview/internal/sequence"
	"imseqview/internal/ui"
)

var (
	titleFlag      string
	periodFlag     int
	noWaitFlag     bool
	seqButtonsFlag bool
	noZoomFlag     bool
	noThumbsFlag   bool
	recursiveFlag  bool
	watchFlag      bool
	extensionsFlag []string
	dbDirFlag      string
)

func cliLogger(msg string) {
	log.Printf("[imseqview] %s", msg)
}

// NewRootCmd creates the root command. The launch function opens the GUI;
// tests inject a capture instead.
func NewRootCmd(launch func(ui.AppOptions) error) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "imseqview [folder]",
		Short: "Image sequence viewer with playback, zoom and pan",
		Long: `imseqview shows the images of a folder as a playable sequence.
Without a folder argument it shows a synthetic demo sequence.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			falseVal := false
			if cmd.Flags().Changed("period") {
				cfg.PlaybackPeriodMs = periodFlag
			}
			if noWaitFlag {
				cfg.WaitForViewerReady = &falseVal
			}
			if seqButtonsFlag {
				cfg.SequenceButtons = true
			}
			if noZoomFlag {
				cfg.ZoomButtons = &falseVal
			}
			if noThumbsFlag {
				cfg.Thumbnails = &falseVal
			}
			if recursiveFlag {
				cfg.Recursive = true
			}
			if watchFlag {
				cfg.WatchFolder = true
			}
			if cmd.Flags().Changed("extensions") {
				cfg.Extensions = extensionsFlag
			}

			folder := ""
			if len(args) == 1 {
				folder = args[0]
			}
			return launch(ui.AppOptions{
				Title:      titleFlag,
				FolderPath: folder,
				Config:     cfg,
			})
		},
	}
	rootCmd.Flags().StringVar(&titleFlag, "title", "", "window title")
	rootCmd.Flags().IntVar(&periodFlag, "period", 100, "playback period in milliseconds")
	rootCmd.Flags().BoolVar(&noWaitFlag, "no-wait-ready", false, "advance on every tick even if the previous frame is still rendering")
	rootCmd.Flags().BoolVar(&seqButtonsFlag, "sequence-buttons", false, "show previous/next sequence buttons")
	rootCmd.Flags().BoolVar(&noZoomFlag, "no-zoom-buttons", false, "hide the zoom buttons")
	rootCmd.Flags().BoolVar(&noThumbsFlag, "no-thumbnails", false, "hide the thumbnail strip")
	rootCmd.Flags().BoolVar(&recursiveFlag, "recursive", false, "scan subdirectories too")
	rootCmd.Flags().BoolVar(&watchFlag, "watch", false, "extend the sequence when new images appear in the folder")
	rootCmd.Flags().StringSliceVar(&extensionsFlag, "extensions", nil, "image file extensions to scan (default .png,.jpg,.jpeg,.gif)")

	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newRecentsCmd())
	return rootCmd
}

func newScanCmd() *cobra.Command {
	var recursive bool
	var extensions []string
	cmd := &cobra.Command{
		Use:   "scan [folder]",
		Short: "List the frames of a folder in playback order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := sequence.OpenFolder(args[0], sequence.FolderOptions{
				Extensions: extensions,
				Recursive:  recursive,
				Logger:     cliLogger,
			})
			if err != nil {
				return err
			}
			defer folder.Close()
			for i, path := range folder.Paths() {
				cmd.Printf("%4d  %s\n", i+1, path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&recursive, "recursive", false, "scan subdirectories too")
	cmd.Flags().StringSliceVar(&extensions, "extensions", nil, "image file extensions to scan")
	return cmd
}

func newRecentsCmd() *cobra.Command {
	recentsCmd := &cobra.Command{
		Use:   "recents",
		Short: "Manage the recently opened folders",
	}
	recentsCmd.PersistentFlags().StringVar(&dbDirFlag, "dbdir", "", "directory of the recents database (default: XDG data dir)")

	openStore := func() (*recents.Store, error) {
		return recents.Open(dbDirFlag, cliLogger)
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent folders, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			entries, err := store.List()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				cmd.Println("No recent folders.")
				return nil
			}
			for _, e := range entries {
				cmd.Printf("%-18s %s\n", humanize.Time(e.LastOpened), e.Path)
			}
			return nil
		},
	}
	recentsCmd.AddCommand(listCmd)

	addCmd := &cobra.Command{
		Use:   "add [folder]",
		Short: "Record a folder as recently opened",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			return store.Touch(args[0])
		},
	}
	recentsCmd.AddCommand(addCmd)

	removeCmd := &cobra.Command{
		Use:   "remove [folder]",
		Short: "Remove a folder from the recent list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			return store.Remove(args[0])
		},
	}
	recentsCmd.AddCommand(removeCmd)

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the recent list",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			return store.Clear()
		},
	}
	recentsCmd.AddCommand(clearCmd)

	return recentsCmd
}

var rootCmd = NewRootCmd(func(opts ui.AppOptions) error {
	ui.CreateApplication(opts).Run()
	return nil
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
