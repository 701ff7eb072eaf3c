package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"colorsearch/internal/eventbus"
	"colorsearch/internal/lookup"
	"colorsearch/internal/ui/state"
	"colorsearch/internal/ui/viewmodels"
	"colorsearch/internal/ui/views"
)

func newSearchCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "search <first name>",
		Short: "Run one lookup and print the results",
		Long: `Looks up a first name once and prints the same result panel the
interactive form shows. Exits with status 1 when the lookup fails.`,
		Example: `  colorsearch search Jon
  colorsearch search --fixtures people.toml "Mary Ann"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts, strings.Join(args, " "))
		},
	}
}

func runSearch(cmd *cobra.Command, opts *options, query string) error {
	sess, err := openSession(cmd, opts, opts.logFile)
	if err != nil {
		return err
	}
	defer sess.Close()

	s := state.NewSearchState()
	s.SetQuery(query)

	const requestID = 1
	trimmed, ok := s.Begin(requestID)
	if !ok {
		return errors.New("a first name is required")
	}
	sess.bus.Publish(eventbus.SearchSubmittedEvent{RequestID: requestID, Query: trimmed})

	start := time.Now()
	resp, searchErr := sess.lookup.Search(commandContext(cmd), trimmed)
	elapsed := time.Since(start)

	if searchErr != nil {
		message := lookup.Message(searchErr)
		s.Fail(requestID, message)
		sess.logger.Warn("search failed", zap.String("query", trimmed), zap.Error(searchErr))
		sess.bus.Publish(eventbus.SearchFailedEvent{
			RequestID: requestID,
			Query:     trimmed,
			Message:   message,
			Elapsed:   elapsed,
		})
	} else {
		s.Resolve(requestID, resp.Data)
		sess.bus.Publish(eventbus.SearchCompletedEvent{
			RequestID: requestID,
			Query:     trimmed,
			Count:     len(resp.Data),
			Elapsed:   elapsed,
		})
	}

	panel := views.NewRenderer().RenderResults(viewmodels.BuildResultPanel(s))
	fmt.Fprintln(cmd.OutOrStdout(), panel)

	if searchErr != nil {
		return ErrSearchFailed
	}
	return nil
}
