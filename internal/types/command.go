package types

// CommandKind is the "type" field of a robot command.
type CommandKind string

const (
	KindInstant CommandKind = "instant"
	KindFeature CommandKind = "feature"
)

// Movement directions understood by the robot controller.
const (
	DirectionForward  = "F"
	DirectionBackward = "B"
	DirectionLeft     = "L"
	DirectionRight    = "R"
	DirectionStop     = "S"
	StopFeature       = "stop_feature"
)

// Features the robot controller can run.
const (
	FeatureMaya            = "maya"
	FeatureObjectDetection = "object_detection"
	FeatureLineFollowing   = "line_following"
	FeatureAttendance      = "attend"
)

// Command is a single outbound instruction. It is serialized as the JSON request body.
type Command struct {
	Kind    CommandKind `json:"type"`
	Command *string     `json:"command,omitempty"`
	Feature *string     `json:"feature,omitempty"`
}

// MovementCommand builds an instant command such as a direction or stop_feature.
func MovementCommand(direction string) Command {
	return Command{Kind: KindInstant, Command: &direction}
}

// ControlCommand builds a feature-typed command carrying a command string.
func ControlCommand(command string) Command {
	return Command{Kind: KindFeature, Command: &command}
}

// FeatureCommand builds a command that starts a named feature.
func FeatureCommand(feature string) Command {
	return Command{Kind: KindFeature, Feature: &feature}
}

func (c Command) String() string {
	switch {
	case c.Feature != nil:
		return string(c.Kind) + ":" + *c.Feature
	case c.Command != nil:
		return string(c.Kind) + ":" + *c.Command
	default:
		return string(c.Kind)
	}
}
