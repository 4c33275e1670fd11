package models

// Command is a read-only descriptor of a built-in bot command, supplied once
// per process by the command registry. The engine never mutates these.
type Command struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// GatedCommand is a command descriptor annotated with the per-guild disabled
// flag, as served to the dashboard.
type GatedCommand struct {
	Command
	Disabled bool `json:"disabled"`
}

// CommandGroup is one command category with its commands in registry order.
type CommandGroup struct {
	Category string         `json:"category"`
	Commands []GatedCommand `json:"commands"`
}

// GroupCommandsByCategory buckets commands by category, annotating each with
// the guild's disabled flag. Categories appear in first-seen registry order so
// the dashboard renders stably across requests.
func GroupCommandsByCategory(commands []Command, config *GuildConfig) []CommandGroup {
	index := make(map[string]int)
	var groups []CommandGroup

	for _, cmd := range commands {
		gated := GatedCommand{
			Command:  cmd,
			Disabled: config.IsCommandDisabled(cmd.Name),
		}

		i, ok := index[cmd.Category]
		if !ok {
			i = len(groups)
			index[cmd.Category] = i
			groups = append(groups, CommandGroup{Category: cmd.Category})
		}
		groups[i].Commands = append(groups[i].Commands, gated)
	}

	return groups
}
