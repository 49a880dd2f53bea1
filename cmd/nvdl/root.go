package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"nvdl/pkg/channel"
	"nvdl/pkg/httpclient"
	"nvdl/pkg/launcher"
	"nvdl/pkg/prompt"
	"nvdl/pkg/release"
	"nvdl/pkg/version"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		slog.Error("error", "err", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool
	var urlOnly bool
	var checksumOnly bool

	cmd := &cobra.Command{
		Use:   "nvdl [channel]",
		Short: "nvdl - download the latest NVDA screen reader build",
		Long: `Download the latest NVDA screen reader build for a release channel,
or print its direct download link.

Channels: stable (default), alpha, beta, xp, win7.`,
		Version: version.Version(),
		// channel.Parse validates the name case-insensitively and
		// produces the friendly error, so no OnlyValidArgs here.
		Args:         cobra.MaximumNArgs(1),
		ValidArgs:    channel.Names(),
		SilenceUsage: true,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			if verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
		RunE: func(c *cobra.Command, args []string) error {
			name := "stable"
			if len(args) == 1 {
				name = args[0]
			}
			ch, err := channel.Parse(name)
			if err != nil {
				return err
			}
			return run(c.Context(), c.OutOrStdout(), afero.NewOsFs(), ch, urlOnly, checksumOnly)
		},
	}

	cmd.Flags().BoolVarP(&urlOnly, "url", "u", false, "Print the installer's direct download link instead of downloading it")
	cmd.Flags().BoolVarP(&checksumOnly, "checksum", "c", false, "Print the installer's published hash instead of downloading it")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func run(ctx context.Context, out io.Writer, fs afero.Fs, ch channel.Channel, printURL, printHash bool) error {
	client := httpclient.New()

	md, err := release.NewResolver(client).Resolve(ctx, ch)
	if err != nil {
		return fmt.Errorf("failed to retrieve download details for %s: %w", ch, err)
	}

	switch {
	case printURL && printHash:
		fmt.Fprintf(out, "%s (%s)\n", md.URL, md.Hash)
	case printURL:
		fmt.Fprintln(out, md.URL)
	case printHash:
		if md.Hash == "" {
			return fmt.Errorf("no hash published for the %s channel", ch)
		}
		fmt.Fprintln(out, md.Hash)
	default:
		return download(ctx, out, fs, client, md)
	}
	return nil
}

func download(ctx context.Context, out io.Writer, fs afero.Fs, client *http.Client, md *release.Metadata) error {
	fmt.Fprintln(out, "Downloading...")

	path, err := release.NewFetcher(client, fs).Fetch(ctx, md)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Downloaded %s to the current directory.\n", path)

	l := launcher.Detect()
	if !l.Available() {
		return nil
	}
	if !prompt.Confirm("Installer downloaded. Run now?", true) {
		return nil
	}

	fmt.Fprintln(out, "Running installer...")
	if err := l.Launch(path); err != nil {
		// The download already succeeded, so a failed launch does not
		// change the exit code.
		slog.Error("failed to launch installer", "err", err)
	}
	return nil
}
