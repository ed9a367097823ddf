package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdSet    CommandType = "set"
	CmdCancel CommandType = "cancel"
	CmdCheck  CommandType = "check"
	CmdStatus CommandType = "status"
	CmdHelp   CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "set", "remind":
		cmd.Type = CmdSet
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "cancel", "stop":
		cmd.Type = CmdCancel
	case "check", "when":
		cmd.Type = CmdCheck
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "status":
		cmd.Type = CmdStatus
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available commands:*

*Reminders:*
• ` + "`/sunset set [address]`" + ` - Remind this channel 5 minutes before sunset every day
• ` + "`/sunset cancel`" + ` - Cancel this channel's sunset reminder
• ` + "`/sunset status`" + ` - Show whether this channel has a reminder

*Queries:*
• ` + "`/sunset check [address]`" + ` - Show today's sunset time for an address

When the address is omitted, the configured default address is used.`
}
