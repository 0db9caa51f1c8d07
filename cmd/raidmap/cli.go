package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/tarkov-tools/raidmap/internal/assistant"
	"github.com/tarkov-tools/raidmap/internal/dispatcher"
	"github.com/tarkov-tools/raidmap/internal/logging"
	"github.com/tarkov-tools/raidmap/pkg/core"
)

// newCLI builds the command dispatcher over the assistant service.
func newCLI(svc *assistant.Service, logger *slog.Logger) (*dispatcher.Dispatcher, error) {
	d, err := dispatcher.New(logging.NewDispatcherLogger(logger))
	if err != nil {
		return nil, err
	}

	d.Register("import", func(e dispatcher.Event) (any, error) {
		if len(e.Args) != 1 {
			return nil, fmt.Errorf("usage: import <screenshot>")
		}
		pos, err := svc.ImportScreenshot(e.Args[0])
		if err != nil {
			return nil, err
		}
		return pos.String(), nil
	}, dispatcher.Logged())

	d.Register("latest", func(e dispatcher.Event) (any, error) {
		pos, err := svc.LatestPosition()
		if err != nil {
			return nil, err
		}
		return pos.String(), nil
	})

	d.Register("history", func(e dispatcher.Event) (any, error) {
		records := svc.History()
		if len(records) == 0 {
			return "no positions recorded", nil
		}
		var b strings.Builder
		for _, r := range records {
			fmt.Fprintf(&b, "%s  (%s)\n", r.Position.String(), r.Timestamp)
		}
		return strings.TrimRight(b.String(), "\n"), nil
	})

	d.Register("project", func(e dispatcher.Event) (any, error) {
		point, err := projectCommand(svc, e.Args)
		if err != nil {
			return nil, err
		}
		x1, y1, x2, y2 := point.OvalCoords()
		return fmt.Sprintf("pixel: (%d, %d) marker: (%d, %d)-(%d, %d)",
			point.X, point.Y, x1, y1, x2, y2), nil
	}, dispatcher.Logged())

	d.Register("locate", func(e dispatcher.Event) (any, error) {
		if len(e.Args) != 1 {
			return nil, fmt.Errorf("usage: locate <map>")
		}
		return svc.LocateMapFile(e.Args[0])
	})

	d.Register("maps", func(e dispatcher.Event) (any, error) {
		names := svc.AvailableMaps()
		if len(names) == 0 {
			return "no map files found", nil
		}
		return strings.Join(names, "\n"), nil
	})

	d.Register("info", func(e dispatcher.Event) (any, error) {
		if len(e.Args) != 1 {
			return nil, fmt.Errorf("usage: info <map>")
		}
		return formatSummary(svc.MapSummary(e.Args[0])), nil
	})

	d.Register("version", func(e dispatcher.Event) (any, error) {
		return fmt.Sprintf("%s %s (built %s)", appName, Version, BuildDate), nil
	})

	return d, nil
}

// projectCommand handles both argument forms:
//
//	project <map> <width> <height>            latest position
//	project <map> <width> <height> <x> <y> <z>  explicit position
func projectCommand(svc *assistant.Service, args []string) (core.MapPoint, error) {
	if len(args) != 3 && len(args) != 6 {
		return core.MapPoint{}, fmt.Errorf("usage: project <map> <width> <height> [x y z]")
	}

	width, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return core.MapPoint{}, fmt.Errorf("invalid width: %s", args[1])
	}
	height, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return core.MapPoint{}, fmt.Errorf("invalid height: %s", args[2])
	}

	if len(args) == 3 {
		return svc.ProjectLatest(args[0], width, height)
	}

	var pos core.Position3D
	for i, target := range []*float64{&pos.X, &pos.Y, &pos.Z} {
		v, err := strconv.ParseFloat(args[3+i], 64)
		if err != nil {
			return core.MapPoint{}, fmt.Errorf("invalid coordinate: %s", args[3+i])
		}
		*target = v
	}
	return svc.Project(args[0], pos, width, height)
}

func formatSummary(s assistant.MapSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Map: %s\n", s.Name)
	if s.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", s.Description)
	}
	if len(s.Enemies) > 0 {
		fmt.Fprintf(&b, "Enemies: %s\n", strings.Join(s.Enemies, ", "))
	}
	if s.RaidDuration.Day > 0 || s.RaidDuration.Night > 0 {
		fmt.Fprintf(&b, "Raid duration: %d min day / %d min night\n",
			s.RaidDuration.Day, s.RaidDuration.Night)
	}
	if s.Wiki != "" {
		fmt.Fprintf(&b, "Wiki: %s\n", s.Wiki)
	}
	if s.SVGPath != "" {
		fmt.Fprintf(&b, "Image: %s\n", s.SVGPath)
	}
	return strings.TrimRight(b.String(), "\n")
}

// dispatch runs a single command line through the dispatcher and prints the
// result.
func dispatch(d *dispatcher.Dispatcher, args []string) error {
	if len(args) == 0 || args[0] == "help" {
		fmt.Println("usage: raidmap <command> [args]")
		fmt.Println("commands:", strings.Join(d.Commands(), ", "))
		return nil
	}

	result, err := d.Dispatch(dispatcher.Event{
		Command:   args[0],
		Args:      args[1:],
		Timestamp: time.Now(),
	})
	if err != nil {
		return err
	}
	if s, ok := result.(string); ok && s != "" {
		fmt.Println(s)
	}
	return nil
}
