// Package collector reads the host metrics served by the status endpoint.
//
// Every reader chooses between a real read and a fixed fallback based on
// the capability flags evaluated once in New. A missing capability is not
// an error; malformed source data is.
package collector

import (
	"errors"
	"path/filepath"
	"runtime"
	"time"
)

var ErrMalformed = errors.New("malformed source data")

type Options struct {
	// ProcRoot is the procfs mount point. A container can point it at the
	// host's /proc bind mount.
	ProcRoot string
	// DF is the disk-free binary, looked up in PATH when not absolute.
	DF string
	// Timeout bounds each df invocation. Zero means no bound.
	Timeout time.Duration
}

type Collector struct {
	procRoot string
	df       string
	timeout  time.Duration

	// procFS reports whether uptime, memory and load can be read from procfs.
	procFS bool
	now    func() time.Time
}

func New(opts Options) *Collector {
	procRoot := opts.ProcRoot
	if procRoot == "" {
		procRoot = "/proc"
	}
	df := opts.DF
	if df == "" {
		df = "df"
	}
	return &Collector{
		procRoot: procRoot,
		df:       df,
		timeout:  opts.Timeout,
		procFS:   runtime.GOOS == "linux",
		now:      time.Now,
	}
}

// HasProcFS is the capability predicate shared by the uptime, memory and
// load readers.
func (c *Collector) HasProcFS() bool {
	return c.procFS
}

func (c *Collector) procPath(name string) string {
	return filepath.Join(c.procRoot, name)
}
