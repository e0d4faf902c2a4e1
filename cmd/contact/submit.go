package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"ContactForm_SheetsProject/internal/form"

	"github.com/spf13/cobra"
)

type submitOptions struct {
	server  string
	timeout time.Duration
	values  map[form.Field]*string
}

func newSubmitCmd() *cobra.Command {
	opts := &submitOptions{values: make(map[form.Field]*string)}

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit one contact form entry",
		Example: `  contact submit --name "Jane Doe" --phone "+1-555-0100" \
    --email jane@example.com --message "Hello"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubmit(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.server, "server", "http://localhost:8080", "contact form API base URL")
	flags.DurationVar(&opts.timeout, "timeout", 0, "give up after this long (0 waits indefinitely)")
	for _, f := range form.Fields {
		opts.values[f] = flags.String(string(f), "", "value of the "+string(f)+" field")
	}
	return cmd
}

func runSubmit(ctx context.Context, out io.Writer, opts *submitOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	f := form.New()
	for _, field := range form.Fields {
		if err := f.Set(field, *opts.values[field]); err != nil {
			return err
		}
	}

	conf, err := f.Submit(ctx, form.NewClient(opts.server, nil))
	if err != nil {
		var missing *form.MissingFieldError
		if errors.As(err, &missing) {
			return fmt.Errorf("--%s is required", missing.Field)
		}
		return fmt.Errorf("your response was not saved: %w", err)
	}

	fmt.Fprintln(out, "Thank you for your response.")
	if conf != nil && conf.UpdatedRange != "" {
		fmt.Fprintf(out, "Recorded in %s\n", conf.UpdatedRange)
	}
	return nil
}
