package models

import "strings"

// CommandType enumerates supported inventory command categories.
type CommandType string

const (
	CommandAdd     CommandType = "add"
	CommandRemove  CommandType = "remove"
	CommandQty     CommandType = "qty"
	CommandLow     CommandType = "low"
	CommandReport  CommandType = "report"
	CommandDemo    CommandType = "demo"
	CommandUnknown CommandType = "unknown"
)

// Command represents a parsed inventory instruction from the command line.
type Command struct {
	Type CommandType
	Raw  string
	Args []string
}

// ParseCommand derives a Command instance from CLI arguments. No arguments
// means the demo sequence, matching the original tool's behavior.
func ParseCommand(args []string) Command {
	if len(args) == 0 {
		return Command{Type: CommandDemo}
	}

	head := strings.ToLower(strings.TrimSpace(args[0]))
	cmd := Command{Raw: strings.Join(args, " ")}

	switch head {
	case string(CommandAdd):
		cmd.Type = CommandAdd
	case string(CommandRemove):
		cmd.Type = CommandRemove
	case string(CommandQty):
		cmd.Type = CommandQty
	case string(CommandLow):
		cmd.Type = CommandLow
	case string(CommandReport):
		cmd.Type = CommandReport
	case string(CommandDemo):
		cmd.Type = CommandDemo
	default:
		cmd.Type = CommandUnknown
	}

	if len(args) > 1 {
		cmd.Args = args[1:]
	}

	return cmd
}
