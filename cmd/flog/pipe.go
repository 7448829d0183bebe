package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/trickstertwo/flog"
)

const maxLineSize = 1 << 20

func newPipeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pipe",
		Short: "Append each line read from stdin as a record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			l, err := openLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return pipe(ctx, cmd.InOrStdin(), l, cfg.RecordLevel(), cfg.FlushInterval(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().String("level", "info", "Level of each record")
	cmd.Flags().Duration("flush-interval", time.Second, "Flush period; 0 flushes only when the buffer fills and on exit")
	return cmd
}

// pipe logs every line of in until EOF or ctx is done, flushing every
// interval, and always flushes before returning.
func pipe(ctx context.Context, in io.Reader, l *flog.Logger, level flog.Level, every time.Duration, errs io.Writer) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	var tick <-chan time.Time
	if every > 0 {
		t := time.NewTicker(every)
		defer t.Stop()
		tick = t.C
	}

	for {
		select {
		case line, ok := <-lines:
			if !ok {
				var err error
				select {
				case err = <-scanErr:
				default:
				}
				if ferr := l.Flush(); ferr != nil {
					return ferr
				}
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				return nil
			}
			l.Log(level, line)
		case <-tick:
			if err := l.Flush(); err != nil {
				fmt.Fprintf(errs, "flog: %v\n", err)
			}
		case <-ctx.Done():
			return l.Flush()
		}
	}
}
