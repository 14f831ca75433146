package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	. "github.com/DGHeroin/SysInfo/SysInfo"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	Cmd = &cobra.Command{
		Use:   "probe",
		Short: "query a status server and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(cmd.OutOrStdout())
		},
	}
)

var (
	addr     string
	key      string
	interval time.Duration
	timeout  time.Duration
	rawJSON  bool
)

func init() {
	Cmd.PersistentFlags().StringVar(&addr, "addr", "http://127.0.0.1:8049", "status server base url")
	Cmd.PersistentFlags().StringVar(&key, "key", "", "shared key")
	Cmd.PersistentFlags().DurationVar(&interval, "interval", 0, "repeat every interval until interrupted, 0 to query once")
	Cmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")
	Cmd.PersistentFlags().BoolVar(&rawJSON, "json", false, "print the response body as is")
}

func runProbe(out io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := &http.Client{Timeout: timeout}
	if interval <= 0 {
		return probeOnce(ctx, client, out)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if err := probeOnce(ctx, client, out); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, err)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func probeOnce(ctx context.Context, client *http.Client, out io.Writer) error {
	body, err := Fetch(ctx, client, addr, key)
	if err != nil {
		return err
	}
	if rawJSON {
		_, err = fmt.Fprintln(out, strings.TrimSpace(string(body)))
		return err
	}
	report := &Report{}
	if err := json.Unmarshal(body, report); err != nil {
		return fmt.Errorf("decode report: %w", err)
	}
	return Render(out, report, time.Now())
}

// Fetch GETs the status document from base, passing key as the query
// parameter when set. Any status other than 200 is an error carrying the body.
func Fetch(ctx context.Context, client *http.Client, base, key string) ([]byte, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	if key != "" {
		q := u.Query()
		q.Set("key", key)
		u.RawQuery = q.Encode()
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(request)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(data)))
	}
	return data, nil
}

// Render writes one table per section present in the report.
func Render(out io.Writer, report *Report, now time.Time) error {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAutoWrapText(false)

	if p := report.Platform; p != nil {
		table.Append([]string{"Platform", p.System + " " + p.Platform})
	}
	if u := report.Uptime; u != nil {
		since := time.Unix(0, int64(u.UpSince*float64(time.Second)))
		table.Append([]string{"Uptime", fmt.Sprintf("%s (up since %s)",
			strings.TrimSpace(humanize.RelTime(since, now, "", "")), since.Format(time.RFC3339))})
	}
	if m := report.Memory; m != nil {
		table.Append([]string{"Memory", fmt.Sprintf("%s available of %s, %.1f%% used", m.Avail, m.Total, m.PercentUsed)})
	}
	if l := report.Load; l != nil {
		table.Append([]string{"Load", fmt.Sprintf("%.2f %.2f %.2f", l.Load1, l.Load5, l.Load15)})
	}
	if report.Storage != nil {
		names := make([]string, 0, len(*report.Storage))
		for name := range *report.Storage {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			s := (*report.Storage)[name]
			table.Append([]string{"Storage " + name, fmt.Sprintf("%s used of %s (%d%%), %s free",
				humanize.IBytes(s.UsedBytes), humanize.IBytes(s.TotalBytes), s.PercentUsed, humanize.IBytes(s.AvailBytes))})
		}
	}
	table.Render()
	return nil
}
