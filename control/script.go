package control

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// RunScript replays input events, one per line, against the controller.
// Coordinates are screen positions in the controller's viewport.
//
//	down X Y [shift]
//	move X Y [shift]
//	up
//	wheel DY
//	key K
//	regen
//	center
//
// Blank lines and lines starting with # are skipped. Execution stops at the
// first bad line; events before it have already been applied.
func (c *Controller) RunScript(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := c.runLine(strings.Fields(line)); err != nil {
			return errors.Wrapf(err, "line %d", lineNumber)
		}
	}
	return errors.Wrap(scanner.Err(), "reading script")
}

func (c *Controller) runLine(fields []string) error {
	command, args := fields[0], fields[1:]
	switch command {
	case "down", "move":
		if len(args) < 2 || len(args) > 3 {
			return errors.Errorf("%s takes X Y [shift]", command)
		}
		x, y, err := parseXY(args[0], args[1])
		if err != nil {
			return err
		}
		shift := false
		if len(args) == 3 {
			if args[2] != "shift" {
				return errors.Errorf("unknown modifier %q", args[2])
			}
			shift = true
		}
		if command == "down" {
			c.MouseDown(x, y, shift)
		} else {
			c.MouseMove(x, y, shift)
		}
	case "up":
		if err := noArgs(command, args); err != nil {
			return err
		}
		c.MouseUp()
	case "wheel":
		if len(args) != 1 {
			return errors.New("wheel takes DY")
		}
		dy, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return errors.Wrap(err, "wheel delta")
		}
		c.Wheel(dy)
	case "key":
		if len(args) != 1 {
			return errors.New("key takes a single key")
		}
		if !c.Key(args[0]) {
			return errors.Errorf("unbound key %q", args[0])
		}
	case "regen":
		if err := noArgs(command, args); err != nil {
			return err
		}
		c.Regenerate()
	case "center":
		if err := noArgs(command, args); err != nil {
			return err
		}
		c.CenterObstacle()
	default:
		return errors.Errorf("unknown command %q", command)
	}
	return nil
}

func parseXY(xs, ys string) (x, y float64, err error) {
	if x, err = strconv.ParseFloat(xs, 64); err != nil {
		return 0, 0, errors.Wrap(err, "x")
	}
	if y, err = strconv.ParseFloat(ys, 64); err != nil {
		return 0, 0, errors.Wrap(err, "y")
	}
	return x, y, nil
}

func noArgs(command string, args []string) error {
	if len(args) != 0 {
		return errors.Errorf("%s takes no arguments", command)
	}
	return nil
}
