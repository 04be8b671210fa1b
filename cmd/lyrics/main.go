package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lyrics-server/internal/lyrics"
	"lyrics-server/internal/prompt"
	"lyrics-server/pkg/config"
)

var errNoLyrics = errors.New("no lyrics generated")

var (
	serverURL string
	apiURL    string
)

var rootCmd = &cobra.Command{
	Use:   "lyrics [prompt...]",
	Short: "Generate song lyrics from a prompt",
	Long: `Generate song lyrics from a prompt.

By default the lyrics API is called directly. With --server the request
goes through a running lyrics-server relay (ws://host:port/ws).`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func init() {
	rootCmd.Flags().StringVar(&serverURL, "server", "", "relay endpoint of a lyrics-server, e.g. ws://localhost:3000/ws")
	rootCmd.Flags().StringVar(&apiURL, "api", config.DefaultLyricsAPIURL, "lyrics API endpoint used in direct mode")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	raw := strings.Join(args, " ")
	view := newTerminalView(cmd.OutOrStdout(), cmd.ErrOrStderr())

	outcome, err := generate(cmd.Context(), view, raw)
	if err != nil {
		return err
	}
	if outcome != prompt.OutcomeRendered {
		return fmt.Errorf("%w (%s)", errNoLyrics, outcome)
	}
	return nil
}

func generate(ctx context.Context, view *terminalView, raw string) (prompt.Outcome, error) {
	if serverURL != "" {
		return generateViaRelay(ctx, serverURL, raw, view)
	}
	ctrl := prompt.NewController(lyrics.NewClient(apiURL))
	return ctrl.Generate(ctx, view, raw), nil
}

func execute(args []string, stdout, stderr io.Writer) error {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.ExecuteContext(context.Background())
}

func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)

	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errNoLyrics) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
