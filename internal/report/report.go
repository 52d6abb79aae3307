package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/CristiGvl/picoMemGraph/internal/graph"
	"github.com/CristiGvl/picoMemGraph/internal/memory"
	"github.com/CristiGvl/picoMemGraph/internal/process"
	"github.com/CristiGvl/picoMemGraph/internal/units"
)

const (
	labelWidth  = 15
	systemLabel = "Memory"
)

// ErrProgramNotFound is returned when no running process matches a name
var ErrProgramNotFound = errors.New("program not found")

// System is the system-wide memory report
type System struct {
	memory.Info
	Bar  string `json:"bar"`
	Line string `json:"line"`
}

// ProcessUsage is the resident memory of one process
type ProcessUsage struct {
	PID  int32  `json:"pid"`
	RSS  uint64 `json:"rss_kb"`
	Line string `json:"line"`
}

// Program is the aggregated memory report for every process of a program
type Program struct {
	Name      string         `json:"name"`
	Processes []ProcessUsage `json:"processes"`
	RSS       uint64         `json:"rss_kb"`
	Total     uint64         `json:"total_kb"`
	Ratio     float64        `json:"ratio"`
	Bar       string         `json:"bar"`
	Line      string         `json:"line"`
}

// Assembler builds reports from the memory, process and display components
type Assembler struct {
	Memory   memory.Reader
	Resolver process.Resolver
	RSS      process.RSSReader
	Units    units.Formatter
	Length   int
}

// New creates an Assembler drawing bars length characters wide
func New(mem memory.Reader, resolver process.Resolver, rss process.RSSReader, f units.Formatter, length int) *Assembler {
	return &Assembler{
		Memory:   mem,
		Resolver: resolver,
		RSS:      rss,
		Units:    f,
		Length:   length,
	}
}

// With returns a copy of a using a different bar length and formatter
func (a *Assembler) With(length int, f units.Formatter) *Assembler {
	c := *a
	c.Length = length
	c.Units = f
	return &c
}

// NotFoundMessage is what is shown when name has no running processes
func NotFoundMessage(name string) string {
	return name + " not found."
}

// System computes the system-wide report
func (a *Assembler) System(ctx context.Context) (*System, error) {
	info, err := a.Memory.GetInfo(ctx)
	if err != nil {
		return nil, err
	}

	bar, err := graph.Render(info.UsedRatio, a.Length)
	if err != nil {
		return nil, err
	}

	return &System{
		Info: *info,
		Bar:  bar,
		Line: systemLine(bar, info.UsedRatio, a.Units.Format(info.Used), a.Units.Format(info.Total)),
	}, nil
}

// Program computes the report for every process running name. Processes
// that exit or cannot be read count as zero.
func (a *Assembler) Program(ctx context.Context, name string) (*Program, error) {
	return a.program(ctx, name, nil)
}

// program builds the report, handing each process to emit, when set, as
// soon as its memory has been read.
func (a *Assembler) program(ctx context.Context, name string, emit func(ProcessUsage) error) (*Program, error) {
	pids, err := a.Resolver.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(pids) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrProgramNotFound, name)
	}

	p := &Program{
		Name:      name,
		Processes: make([]ProcessUsage, 0, len(pids)),
	}
	for _, pid := range pids {
		rss := a.RSS.RSS(ctx, pid)
		p.RSS += rss
		proc := ProcessUsage{
			PID:  pid,
			RSS:  rss,
			Line: fmt.Sprintf("%-*s %s", labelWidth, strconv.Itoa(int(pid)), a.Units.Format(rss)),
		}
		p.Processes = append(p.Processes, proc)
		if emit != nil {
			if err := emit(proc); err != nil {
				return nil, err
			}
		}
	}

	p.Total, err = a.Memory.GetTotal(ctx)
	if err != nil {
		return nil, err
	}
	p.Ratio = float64(p.RSS) / float64(p.Total)

	p.Bar, err = graph.Render(p.Ratio, a.Length)
	if err != nil {
		return nil, err
	}
	p.Line = summaryLine(name, p.Bar, p.Ratio, a.Units.Format(p.RSS), a.Units.Format(p.Total))
	return p, nil
}

// WriteSystem writes the system-wide report line to w
func (a *Assembler) WriteSystem(ctx context.Context, w io.Writer) error {
	s, err := a.System(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s.Line)
	return err
}

// WriteProgram writes one line per process of name as it is read, then the
// summary. If nothing runs under name, the not-found message is written and
// an error wrapping ErrProgramNotFound is returned.
func (a *Assembler) WriteProgram(ctx context.Context, w io.Writer, name string) error {
	p, err := a.program(ctx, name, func(proc ProcessUsage) error {
		_, err := fmt.Fprintln(w, proc.Line)
		return err
	})
	if errors.Is(err, ErrProgramNotFound) {
		if _, werr := fmt.Fprintln(w, NotFoundMessage(name)); werr != nil {
			return werr
		}
		return err
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, p.Line)
	return err
}

// systemLine has no gap between the label column and the bar.
func systemLine(bar string, ratio float64, used, total string) string {
	return fmt.Sprintf("%-*s[%s] %.0f%% %s/%s", labelWidth, systemLabel, bar, ratio*100, used, total)
}

func summaryLine(label, bar string, ratio float64, used, total string) string {
	return fmt.Sprintf("%-*s [%s] %.0f%% %s/%s", labelWidth, label, bar, ratio*100, used, total)
}
