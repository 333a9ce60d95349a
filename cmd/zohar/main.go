package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zoharmedia/zohar/internal/config"
	"github.com/zoharmedia/zohar/internal/dashboard"
	"github.com/zoharmedia/zohar/internal/logger"
	"github.com/zoharmedia/zohar/internal/tui"
	"github.com/zoharmedia/zohar/pkg/client"
	"github.com/zoharmedia/zohar/pkg/domain"
	"github.com/zoharmedia/zohar/pkg/validation"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// readToken returns the API token using precedence: env var > file > empty.
func readToken(env, path string) string {
	if env != "" {
		return env
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cmd := ""
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "--version", "version", "-v":
		fmt.Fprintln(out, "zohar "+version)
		return nil
	case "help", "--help", "-h":
		printHelp(out)
		return nil
	case "login":
		return runLogin(out, config.TokenPath(), args[1:])
	case "logout":
		return runLogout(out, config.TokenPath())
	case "", "upload", "stats":
	default:
		return fmt.Errorf("unknown command %q (run: zohar help)", cmd)
	}

	cfg := config.Load()

	var logOut io.Writer = io.Discard
	if f, err := logger.OpenFile(cfg.LogFile); err == nil {
		defer f.Close() //nolint:errcheck
		logOut = f
	}
	log := logger.Init(cfg.Environment, cfg.LogLevel, logOut)

	token := readToken(cfg.Token, config.TokenPath())
	if token == "" {
		printSignedOut(out)
		return nil
	}

	c := client.New(cfg.APIBaseURL, token,
		client.WithGraphQLEndpoint(cfg.GraphQLEndpoint),
		client.WithTimeout(cfg.RequestTimeout),
		client.WithPageSize(cfg.PageSize),
		client.WithLogger(log),
	)
	d := dashboard.New(dashboard.Remote(c), validation.New(), log)
	log.Info("starting", "version", version, "command", cmd, "api", cfg.APIBaseURL)

	switch cmd {
	case "upload":
		return runUpload(ctx, out, c, d, cfg, args[1:])
	case "stats":
		return runStats(ctx, out, d)
	}

	p := tea.NewProgram(tui.NewApp(d), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func runLogin(out io.Writer, tokPath string, args []string) error {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return errors.New("usage: zohar login <token>")
	}
	if err := os.MkdirAll(filepath.Dir(tokPath), 0700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(tokPath, []byte(strings.TrimSpace(args[0])), 0600); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	fmt.Fprintln(out, "Token saved.")
	return nil
}

func runLogout(out io.Writer, tokPath string) error {
	if _, err := os.Stat(tokPath); os.IsNotExist(err) {
		fmt.Fprintln(out, "Already logged out.")
		return nil
	}
	if err := os.Remove(tokPath); err != nil {
		return fmt.Errorf("remove token: %w", err)
	}
	fmt.Fprintln(out, "Logged out.")
	return nil
}

func runUpload(ctx context.Context, out io.Writer, c *client.Client, d *dashboard.Dashboard, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	fs.SetOutput(out)
	parallel := fs.Bool("parallel", false, "upload files concurrently")
	folder := fs.String("folder", cfg.UploadFolder, "destination folder on the server")
	register := fs.Bool("register", false, "add each uploaded file to the media library")
	tags := fs.String("tags", "", "comma separated tags for registered files")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	paths := fs.Args()
	if len(paths) == 0 {
		return errors.New("usage: zohar upload [-parallel] [-folder name] [-register] [-tags a,b] <files...>")
	}

	rules := client.MediaFileRules(cfg.MaxUploadSize)
	progress := make(chan client.Progress, 16)
	opts := client.UploadOptions{Folder: *folder, Progress: progress, Rules: &rules, Concurrency: 4}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		printProgress(out, progress)
	}()

	var results []client.UploadResult
	if *parallel {
		results = c.UploadFilesParallel(ctx, paths, opts)
	} else {
		results = c.UploadFiles(ctx, paths, opts)
	}
	close(progress)
	wg.Wait()

	failed := 0
	for i, res := range results {
		if !res.Success {
			failed++
			fmt.Fprintf(out, "✗ %s: %s\n", paths[i], res.Message)
			continue
		}
		url := c.FileURL(*folder, res.FileName)
		fmt.Fprintf(out, "✓ %s → %s\n", paths[i], url)
		if !*register {
			continue
		}
		item, err := d.AddUpload(ctx, dashboard.Upload{
			Path:   paths[i],
			URL:    url,
			Tags:   domain.ParseLabels(*tags),
			Result: res,
		})
		if err != nil {
			failed++
			fmt.Fprintf(out, "  not added to the library: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "  added %q (%s)\n", item.Title, item.Type)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d uploads failed", failed, len(paths))
	}
	return nil
}

// printProgress prints each file at 25% steps so parallel output stays readable.
func printProgress(out io.Writer, events <-chan client.Progress) {
	last := map[string]int{}
	for ev := range events {
		step := ev.Percent / 25 * 25
		if prev, ok := last[ev.File]; ok && step <= prev {
			continue
		}
		last[ev.File] = step
		fmt.Fprintf(out, "  %-32s %3d%%\n", ev.File, step)
	}
}

func runStats(ctx context.Context, out io.Writer, d *dashboard.Dashboard) error {
	if err := d.LoadAll(ctx); err != nil {
		fmt.Fprintf(out, "warning: %v\n\n", err)
	}

	o := d.Overview()
	b := d.Business()
	row := func(label string, format string, a ...any) {
		fmt.Fprintf(out, "  %-22s %s\n", label, fmt.Sprintf(format, a...))
	}

	fmt.Fprintln(out, "Overview")
	row("Inquiries", "%d (%d unread, %d responded, %d resolved)", o.Inquiries.Total, o.Inquiries.Unread, o.Inquiries.Responded, o.Inquiries.Resolved)
	row("Media", "%d (%d images, %d videos)", o.Media.Total, o.Media.Images, o.Media.Videos)
	row("Testimonials", "%d (%d pending, %d approved, avg %.1f)", o.Testimonials.Total, o.Testimonials.Pending, o.Testimonials.Approved, o.Testimonials.AverageRating)
	row("Team", "%d (%d active)", o.Team.Total, o.Team.Active)
	row("Portfolio", "%d (%d completed, %d featured)", o.Portfolio.Total, o.Portfolio.Completed, o.Portfolio.Featured)
	row("Categories", "%d", o.Categories)

	fmt.Fprintln(out, "\nBusiness")
	row("Completed projects", "%d", b.CompletedProjects)
	row("Happy clients", "%d", b.HappyClients)
	row("Perspective clients", "%d", b.PerspectiveClients)
	row("Total revenue", "%s", b.TotalRevenue.StringFixed(2))
	avg := b.AverageProjectValue.StringFixed(2)
	if b.Derived {
		avg += " (derived)"
	}
	row("Average project value", "%s", avg)
	return nil
}
