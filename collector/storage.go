package collector

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	. "github.com/DGHeroin/SysInfo/SysInfo"
	"golang.org/x/sync/errgroup"
)

// Storage runs df for every listed mount that exists and is a directory.
// Anything else is left out of the result without an error. A df failure
// or unexpected output fails the whole call. When two mounts share a name
// the later one in the list wins.
func (c *Collector) Storage(ctx context.Context, mounts []string) (Storage, error) {
	infos := make([]*StorageInfo, len(mounts))
	g, ctx := errgroup.WithContext(ctx)
	for i, mount := range mounts {
		i, mount := i, mount
		if st, err := os.Stat(mount); err != nil || !st.IsDir() {
			continue
		}
		g.Go(func() error {
			info, err := c.diskFree(ctx, mount)
			if err != nil {
				return err
			}
			infos[i] = info
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	result := Storage{}
	for i, info := range infos {
		if info != nil {
			result[MountName(mounts[i])] = info
		}
	}
	return result, nil
}

func (c *Collector) diskFree(ctx context.Context, mount string) (*StorageInfo, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	out, err := exec.CommandContext(ctx, c.df, "-P", "-B1", mount).Output()
	if err != nil {
		return nil, fmt.Errorf("df %s: %w", mount, err)
	}
	info, err := ParseDF(string(out))
	if err != nil {
		return nil, fmt.Errorf("df %s: %w", mount, err)
	}
	return info, nil
}

// ParseDF reads total, used and available bytes and the use percentage from
// the second line of `df -P -B1 <mount>` output.
func ParseDF(out string) (*StorageInfo, error) {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("df: %d lines: %w", len(lines), ErrMalformed)
	}
	fields := strings.Fields(lines[1])
	if len(fields) < 5 {
		return nil, fmt.Errorf("df: %d fields: %w", len(fields), ErrMalformed)
	}
	var sizes [3]uint64
	for i := range sizes {
		v, err := strconv.ParseUint(fields[i+1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("df: %q: %w", fields[i+1], ErrMalformed)
		}
		sizes[i] = v
	}
	percent, err := strconv.Atoi(strings.TrimSuffix(fields[4], "%"))
	if err != nil {
		return nil, fmt.Errorf("df: %q: %w", fields[4], ErrMalformed)
	}
	return &StorageInfo{
		TotalBytes:  sizes[0],
		UsedBytes:   sizes[1],
		AvailBytes:  sizes[2],
		Total:       SizeOf(float64(sizes[0])),
		Used:        SizeOf(float64(sizes[1])),
		Avail:       SizeOf(float64(sizes[2])),
		PercentUsed: percent,
	}, nil
}

// MountName derives the JSON key for a mount: "/" is "root", otherwise the
// path without outer slashes and with inner slashes turned into hyphens.
func MountName(path string) string {
	if path == "/" {
		return "root"
	}
	return strings.ReplaceAll(strings.Trim(path, "/"), "/", "-")
}
