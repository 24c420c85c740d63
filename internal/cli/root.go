package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/accountkeeper/internal/app"
	"github.com/dmitrijs2005/accountkeeper/internal/config"
	"github.com/dmitrijs2005/accountkeeper/internal/logging"
	"github.com/spf13/cobra"
)

// annotationNoStore marks commands that run without opening the store.
const annotationNoStore = "no-store"

// root carries state shared by all subcommands of one invocation.
type root struct {
	flags *config.Flags
	app   *app.App
	in    io.Reader
}

// Execute runs the CLI with args, reading input from in and writing to out
// and errOut. The store is closed before returning.
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	r := &root{in: in}
	cmd := r.command()
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	err := cmd.ExecuteContext(ctx)
	if r.app != nil {
		if cerr := r.app.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func (r *root) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "accountkeeper",
		Short:        "Keep a labelled list of LDAP and local accounts",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsStore(cmd) {
				return nil
			}
			return r.open(cmd)
		},
	}

	r.flags = config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		r.listCmd(),
		r.showCmd(),
		r.addCmd(),
		r.updateCmd(),
		r.deleteCmd(),
		r.countCmd(),
		labelsCmd(),
		r.shellCmd(),
	)
	return cmd
}

// needsStore reports whether cmd works on accounts. Commands annotated with
// annotationNoStore and cobra's own help and completion commands do not.
func needsStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationNoStore] != "" {
			return false
		}
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

func (r *root) open(cmd *cobra.Command) error {
	cfg, err := r.flags.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	a, err := app.New(cmd.Context(), cfg, log)
	if err != nil {
		return fmt.Errorf("open %s store at %q: %w", cfg.Backend, cfg.DataPath, err)
	}
	r.app = a

	if lerr := a.Store.LoadError(); lerr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: stored accounts were unreadable and have been set aside: %v\n", lerr)
	}
	return nil
}
