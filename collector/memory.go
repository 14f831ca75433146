package collector

import (
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"

	. "github.com/DGHeroin/SysInfo/SysInfo"
)

var (
	memTotalExp = regexp.MustCompile(`MemTotal:.*?(\d+)`)
	memAvailExp = regexp.MustCompile(`MemAvailable:.*?(\d+)`)
)

func (c *Collector) Memory() (*MemoryInfo, error) {
	if !c.procFS {
		return &MemoryInfo{Total: "0 Bytes", Avail: "0 Bytes", PercentUsed: 100.0}, nil
	}
	data, err := os.ReadFile(c.procPath("meminfo"))
	if err != nil {
		return nil, fmt.Errorf("read meminfo: %w", err)
	}
	return ParseMemory(string(data))
}

// ParseMemory extracts MemTotal and MemAvailable (kB) from /proc/meminfo
// content. Both fields are required.
func ParseMemory(data string) (*MemoryInfo, error) {
	total, err := memField(memTotalExp, "MemTotal", data)
	if err != nil {
		return nil, err
	}
	avail, err := memField(memAvailExp, "MemAvailable", data)
	if err != nil {
		return nil, err
	}
	if total <= 0 {
		return nil, fmt.Errorf("meminfo: MemTotal is zero: %w", ErrMalformed)
	}
	return &MemoryInfo{
		Total:       SizeOf(total),
		Avail:       SizeOf(avail),
		PercentUsed: Percent(PercentUsed(total, avail)),
	}, nil
}

// PercentUsed is 100*(total-avail)/total rounded to one decimal.
func PercentUsed(total, avail float64) float64 {
	p := 100 * (total - avail) / total
	return math.Round(p*10) / 10
}

func memField(exp *regexp.Regexp, name, data string) (float64, error) {
	m := exp.FindStringSubmatch(data)
	if m == nil {
		return 0, fmt.Errorf("meminfo: %s missing: %w", name, ErrMalformed)
	}
	kb, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("meminfo: %s: %w", name, err)
	}
	return kb * 1024, nil
}
