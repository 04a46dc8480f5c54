package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"loyalty_admin/internal/cache"
	"loyalty_admin/internal/config"
	"loyalty_admin/internal/gql"
	"loyalty_admin/internal/loyalty"
	"loyalty_admin/internal/notify"
	"loyalty_admin/internal/screen"
	"loyalty_admin/internal/session"

	"go.uber.org/zap"
)

const defaultRoute = "users"

type Runner struct {
	options Options
	logger  *zap.Logger
	session *session.Store
	guard   *screen.Guard
	api     *loyalty.Client
	cache   *cache.Store
	notes   *notify.Center

	out     io.Writer
	scanner *bufio.Scanner
	screens map[string]*boundScreen
	current *boundScreen
}

func NewRunner(
	cfg config.Config,
	logger *zap.Logger,
	store *session.Store,
	guard *screen.Guard,
	api *loyalty.Client,
	cacheStore *cache.Store,
	center *notify.Center,
) *Runner {
	logger = logger.Named("cli")
	opts := Options{
		APIURL:    cfg.APIURL,
		TokenFile: cfg.TokenFile,
		Timeout:   cfg.Timeout,
		LogFile:   cfg.LogFile,
		Debug:     cfg.Debug,
	}

	return &Runner{
		options: opts,
		logger:  logger,
		session: store,
		guard:   guard,
		api:     api,
		cache:   cacheStore,
		notes:   center,
		out:     os.Stdout,
	}
}

func (r *Runner) Execute() error {
	return runCLI(r, os.Args[1:])
}

func runCLI(r *Runner, args []string) error {
	var timeoutSeconds int

	fs := flag.NewFlagSet("loyalty-admin", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [command]\n", fs.Name())
		fs.PrintDefaults()
	}

	fs.StringVar(&r.options.APIURL, "api-url", r.options.APIURL, "Loyalty backend base URL (API_URL)")
	fs.StringVar(&r.options.TokenFile, "token-file", r.options.TokenFile, "Token storage path (TOKEN_FILE)")
	fs.BoolVar(&r.options.Debug, "debug", r.options.Debug, "Enable debug logging")
	fs.StringVar(&r.options.LogFile, "log-file", r.options.LogFile, "Log file path")
	fs.IntVar(&timeoutSeconds, "timeout", int(r.options.Timeout.Seconds()), "Request timeout in seconds")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			fs.Usage()
			return nil
		}
		return err
	}

	if timeoutSeconds > 0 {
		r.options.Timeout = time.Duration(timeoutSeconds) * time.Second
	}

	rest := fs.Args()
	if len(rest) > 0 {
		r.options.Command = strings.TrimSpace(strings.Join(rest, " "))
	}

	// Flags can move the backend or the timeout, so the transport is
	// rebuilt from the parsed options rather than the injected config.
	cfg := config.Config{
		APIURL:    r.options.APIURL,
		TokenFile: r.options.TokenFile,
		Timeout:   r.options.Timeout,
	}
	r.api = loyalty.NewClient(gql.NewClient(cfg, r.session, r.logger), r.logger)
	r.screens = buildScreens(r)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	r.scanner = bufio.NewScanner(os.Stdin)

	if r.options.Command != "" {
		return r.dispatch(ctx, r.options.Command)
	}
	return r.runREPL(ctx)
}

func (r *Runner) runREPL(ctx context.Context) error {
	fmt.Fprintln(r.out, "Loyalty admin console (type 'exit' to quit, 'help' for commands)")
	for {
		fmt.Fprint(r.out, "> ")
		if !r.scanner.Scan() {
			return r.scanner.Err()
		}

		line := strings.TrimSpace(r.scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		if err := r.dispatch(ctx, line); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			fmt.Fprintf(r.out, "error: %v\n", err)
		}
	}
}

// dispatch runs one console command. Every route except login and the
// health probe goes through the guard first; a logged-out session is
// sent to the login prompt no matter what was asked for.
func (r *Runner) dispatch(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	command := strings.ToLower(fields[0])
	args := fields[1:]

	switch command {
	case "help":
		r.printHelp()
		return nil
	case "login":
		return r.handleLogin(ctx, args)
	case "health":
		return r.handleHealth(ctx)
	}

	if r.guard.Resolve(command) == screen.LoginRoute {
		fmt.Fprintln(r.out, "Not logged in. Use: login <email> <password>")
		return nil
	}

	switch command {
	case "logout":
		return r.handleLogout()
	case "next":
		return r.withCurrent(func(s *boundScreen) error { return s.next(ctx) })
	case "prev":
		return r.withCurrent(func(s *boundScreen) error { return s.prev(ctx) })
	case "search":
		return r.withCurrent(func(s *boundScreen) error {
			return s.search(ctx, strings.Join(args, " "))
		})
	case "edit":
		if len(args) != 1 {
			fmt.Fprintln(r.out, "Usage: edit <id>")
			return nil
		}
		return r.withCurrent(func(s *boundScreen) error { return s.edit(ctx, args[0]) })
	case "create":
		return r.withCurrent(func(s *boundScreen) error { return s.create(ctx) })
	}

	// Unknown commands land on the default screen, the way a bad URL
	// lands on the first authenticated route.
	s, ok := r.screens[command]
	if !ok {
		s = r.screens[defaultRoute]
	}
	r.current = s
	return s.show(ctx)
}

func (r *Runner) withCurrent(fn func(*boundScreen) error) error {
	if r.current == nil {
		fmt.Fprintln(r.out, "Open a list screen first (e.g. 'users')")
		return nil
	}
	return fn(r.current)
}

func (r *Runner) handleLogin(ctx context.Context, args []string) error {
	if len(args) != 2 {
		fmt.Fprintln(r.out, "Usage: login <email> <password>")
		return nil
	}

	res, err := r.api.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	if res.Failure != nil {
		r.logger.Warn("login rejected", zap.String("type", res.Failure.Type))
		fmt.Fprintf(r.out, "Login failed: %s\n", res.Failure.Message)
		return nil
	}
	if res.Success == nil {
		return fmt.Errorf("login: empty response")
	}

	if err := r.session.LogIn(res.Success.AccessToken, res.Success.RefreshToken); err != nil {
		return err
	}
	r.notes.OpenSnackbar(notify.SnackbarPayload{Message: "Logged in", Severity: "success"})
	r.showSnackbar()
	return nil
}

// handleLogout asks for confirmation through the dialog container before
// touching the session.
func (r *Runner) handleLogout() error {
	confirmed := false
	r.notes.OpenDialog(notify.DialogPayload{
		Title:            "Log out",
		Content:          "This clears the stored tokens.",
		CustomButtonText: "Log out",
		CustomButtonAction: func() {
			confirmed = true
		},
	})

	d := r.notes.Dialog()
	fmt.Fprintf(r.out, "%s: %s [y/n]: ", d.Title, d.Content)
	if r.scanner.Scan() {
		answer := strings.ToLower(strings.TrimSpace(r.scanner.Text()))
		if answer == "y" || answer == "yes" {
			d.CustomButtonAction()
		}
	}
	r.notes.CloseDialog()

	if !confirmed {
		fmt.Fprintln(r.out, "Cancelled")
		return nil
	}
	if err := r.session.LogOut(); err != nil {
		return err
	}
	r.current = nil
	fmt.Fprintln(r.out, "Logged out")
	return nil
}

func (r *Runner) handleHealth(ctx context.Context) error {
	status, err := r.api.HealthCheck(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Backend: %s\n", status)
	return nil
}

func (r *Runner) showSnackbar() {
	s := r.notes.Snackbar()
	if !s.Open {
		return
	}
	fmt.Fprintf(r.out, "[%s] %s\n", s.Severity, s.Message)
	r.notes.CloseSnackbar()
}

func (r *Runner) printHelp() {
	fmt.Fprintln(r.out, "Commands:")
	fmt.Fprintln(r.out, "  login <email> <password>   authenticate against the backend")
	fmt.Fprintln(r.out, "  logout                     clear the stored session")
	fmt.Fprintln(r.out, "  health                     backend health check")
	fmt.Fprintln(r.out, "  users | customers | gas-stations | products | margins | levels")
	fmt.Fprintln(r.out, "  customer-levels | benefits | benefits-generated | benefits-tickets")
	fmt.Fprintln(r.out, "  accumulations | report     open a list screen")
	fmt.Fprintln(r.out, "  next | prev                page the current screen")
	fmt.Fprintln(r.out, "  search <term>              filter the current screen")
	fmt.Fprintln(r.out, "  edit <id> | create         open the current screen's form")
	fmt.Fprintln(r.out, "  exit                       quit")
}
