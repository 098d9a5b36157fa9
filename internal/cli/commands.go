package cli

import (
	"sort"

	"github.com/sjatkinson/ksuid/internal/commands"
)

// commandInfo describes a built-in command.
type commandInfo struct {
	Name        string
	Description string
	Usage       func(app string) string
	Runner      func(args []string, ctx commands.CommandContext) int
}

var registry = []commandInfo{
	{
		Name:        "new",
		Description: "Generate one or more KSUIDs",
		Usage:       commands.NewUsage,
		Runner:      commands.RunNew,
	},
	{
		Name:        "inspect",
		Description: "Show the components of KSUIDs",
		Usage:       commands.InspectUsage,
		Runner:      commands.RunInspect,
	},
	{
		Name:        "compare",
		Description: "Compare two KSUIDs (-1, 0 or 1)",
		Usage:       commands.CompareUsage,
		Runner:      commands.RunCompare,
	},
	{
		Name:        "sort",
		Description: "Sort KSUIDs from arguments or stdin",
		Usage:       commands.SortUsage,
		Runner:      commands.RunSort,
	},
	{
		Name:        "init",
		Description: "Write a default config file",
		Usage:       commands.InitUsage,
		Runner:      commands.RunInit,
	},
	{
		Name:        "path",
		Description: "Print the config file path",
		Usage:       commands.PathUsage,
		Runner:      commands.RunPath,
	},
}

func getCommand(name string) *commandInfo {
	for i := range registry {
		if registry[i].Name == name {
			return &registry[i]
		}
	}
	return nil
}

// getAllCommands returns the registered commands sorted by name.
func getAllCommands() []commandInfo {
	cmds := make([]commandInfo, len(registry))
	copy(cmds, registry)
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
	return cmds
}

func isBuiltIn(name string) bool {
	return name == "help" || getCommand(name) != nil
}
