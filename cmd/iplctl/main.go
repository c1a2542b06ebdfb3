package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"github.com/skyeanalytics/ipl-dashboard/internal/backend"
	"github.com/skyeanalytics/ipl-dashboard/internal/config"
	"github.com/skyeanalytics/ipl-dashboard/internal/logic"
)

const usage = `usage: iplctl [flags] <command>

commands:
  teams         teams by win percentage
  venues        venues by matches hosted
  toss-trends   toss decisions per season
  ping          check that the backend answers

flags:
`

func main() {
	_ = godotenv.Load()

	fs := flag.NewFlagSet("iplctl", flag.ExitOnError)
	backendURL := fs.String("backend", os.Getenv("BACKEND_URL"), "analytics backend base URL")
	env := fs.String("env", envOr("ENV", "development"), "environment used to pick the default backend URL")
	timeout := fs.Duration("timeout", 10*time.Second, "per-request timeout")
	search := fs.String("q", "", "filter teams or venues by name")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}

	baseURL, err := config.ResolveBackendURL(*backendURL, *env)
	if err != nil {
		log.Fatalf("Invalid backend URL: %v", err)
	}
	api := backend.New(backend.Options{BaseURL: baseURL, Timeout: *timeout})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout*2)
	defer cancel()

	if err := run(ctx, api, fs.Arg(0), *search, os.Stdout); err != nil {
		log.Fatalf("%s: %v", fs.Arg(0), err)
	}
}

func run(ctx context.Context, api logic.Backend, command, search string, out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	switch command {
	case "teams":
		teams, err := logic.NewTeamStatsService(api).Overview(ctx, search)
		if err != nil {
			return err
		}
		fmt.Fprintln(tw, "#\tTEAM\tSEASONS\tMATCHES\tWON\tWIN %")
		for i, t := range teams {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%.2f\n", i+1, t.TeamName, t.SeasonsPlayed, t.MatchesPlayed, t.MatchesWon, t.WinPercentage.Float())
		}

	case "venues":
		venues, err := logic.NewVenueStatsService(api).Overview(ctx, search)
		if err != nil {
			return err
		}
		fmt.Fprintln(tw, "VENUE\tCITY\tMATCHES\tSEASONS\tFIRST\tLAST")
		for _, v := range venues {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\n", v.Venue, v.City, v.MatchesHosted, v.SeasonsUsed, v.FirstSeason, v.LastSeason)
		}

	case "toss-trends":
		summary, err := logic.NewTossStatsService(api).Trends(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(tw, "SEASON\tMATCHES\tBAT %\tFIELD %\tTREND")
		for _, s := range summary.Seasons {
			fmt.Fprintf(tw, "%d\t%d\t%.2f\t%.2f\t%s\n", s.Season, s.TotalMatches, s.ChoseBatPercentage, s.ChoseFieldPercentage, s.Label)
		}
		fmt.Fprintf(tw, "\naverage\t\t%.2f\t%.2f\t%s\n", summary.AvgBatFirst, summary.AvgFieldFirst, summary.Preference)

	case "ping":
		pinger, ok := api.(interface{ Ping(context.Context) error })
		if !ok {
			return fmt.Errorf("backend does not support ping")
		}
		if err := pinger.Ping(ctx); err != nil {
			return err
		}
		fmt.Fprintln(tw, "ok")

	default:
		return fmt.Errorf("unknown command %q (want %s)", command, strings.Join([]string{"teams", "venues", "toss-trends", "ping"}, ", "))
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
