package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"pragyan-remote/internal/types"
)

// ModeChange is a request to switch endpoint mode.
type ModeChange struct {
	Manual  bool
	Address string
}

// Action is one parsed console line.
type Action struct {
	Command *types.Command
	Mode    *ModeChange
	Status  bool
	Help    bool
	Quit    bool
}

var movementVerbs = map[string]string{
	"f": types.DirectionForward, "forward": types.DirectionForward,
	"b": types.DirectionBackward, "back": types.DirectionBackward, "backward": types.DirectionBackward,
	"l": types.DirectionLeft, "left": types.DirectionLeft,
	"r": types.DirectionRight, "right": types.DirectionRight,
	"stop-feature": types.StopFeature, "stop_feature": types.StopFeature,
}

var knownFeatures = map[string]bool{
	types.FeatureMaya:            true,
	types.FeatureObjectDetection: true,
	types.FeatureLineFollowing:   true,
	types.FeatureAttendance:      true,
}

const consoleHelp = `commands:
  f|b|l|r            move forward, backward, left, right
  stop               stop moving
  stop-feature       stop the running feature
  feature NAME       start a feature (maya, object_detection, line_following, attend)
  command CMD        send a raw feature-typed command
  manual [IP]        use a manual robot address
  auto               derive the robot address from this host
  status             show the current endpoint
  quit
`

// ParseLine turns one console line into an Action. Blank lines yield an empty Action.
func ParseLine(line string) (Action, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Action{}, nil
	}

	verb := strings.ToLower(fields[0])
	args := fields[1:]

	if dir, ok := movementVerbs[verb]; ok {
		cmd := types.MovementCommand(dir)
		return Action{Command: &cmd}, nil
	}
	if knownFeatures[verb] {
		cmd := types.FeatureCommand(verb)
		return Action{Command: &cmd}, nil
	}

	switch verb {
	case "s", "stop":
		cmd := types.ControlCommand(types.DirectionStop)
		return Action{Command: &cmd}, nil
	case "feature":
		if len(args) != 1 {
			return Action{}, fmt.Errorf("usage: feature NAME")
		}
		cmd := types.FeatureCommand(args[0])
		return Action{Command: &cmd}, nil
	case "command":
		if len(args) != 1 {
			return Action{}, fmt.Errorf("usage: command CMD")
		}
		cmd := types.ControlCommand(args[0])
		return Action{Command: &cmd}, nil
	case "manual":
		address := ""
		if len(args) > 0 {
			address = args[0]
			if _, err := types.ParseNetworkAddress(address); err != nil {
				return Action{}, err
			}
		}
		return Action{Mode: &ModeChange{Manual: true, Address: address}}, nil
	case "auto":
		return Action{Mode: &ModeChange{Manual: false}}, nil
	case "status":
		return Action{Status: true}, nil
	case "help", "?":
		return Action{Help: true}, nil
	case "quit", "exit", "q":
		return Action{Quit: true}, nil
	}
	return Action{}, fmt.Errorf("unknown command %q (try help)", verb)
}

// RunConsole reads commands line by line from in until EOF, "quit" or ctx ends.
// Endpoint changes are printed to out as they are published.
func RunConsole(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var mu sync.Mutex
	printf := func(format string, args ...any) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(out, format, args...)
	}

	endpoints := opts.Resolver.Subscribe(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for endpoint := range endpoints {
			printf("endpoint %s\n", endpoint.BaseURL)
		}
	}()
	defer wg.Wait()
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			return err
		case line := <-lines:
			action, err := ParseLine(line)
			if err != nil {
				printf("error: %v\n", err)
				continue
			}
			switch {
			case action.Quit:
				return nil
			case action.Help:
				printf("%s", consoleHelp)
			case action.Status:
				manual, address := opts.Resolver.Mode()
				mode := types.ModeAuto
				if manual {
					mode = types.ModeManual
				}
				printf("mode %s manual=%q endpoint %s\n", mode, address, opts.Resolver.ResolveCurrent().BaseURL)
				if opts.StreamURL != nil {
					printf("video %s\n", opts.StreamURL())
				}
			case action.Mode != nil:
				opts.Resolver.SetMode(action.Mode.Manual, action.Mode.Address)
			case action.Command != nil:
				opts.Sender.Send(*action.Command)
				printf("sent %s\n", action.Command)
			}
		}
	}
}
