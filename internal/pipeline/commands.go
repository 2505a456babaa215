package pipeline

import (
	"regexp"
	"strings"
)

// CommandKind tags the recognized memory-command shapes.
type CommandKind int

const (
	// CommandNone means the query carries no memory command.
	CommandNone CommandKind = iota
	// CommandFact is a standalone fact ("remember X").
	CommandFact
	// CommandNote is a key/value note ("remember that X is Y").
	CommandNote
)

// Command is the result of classifying a raw query.
type Command struct {
	Kind  CommandKind
	Key   string
	Value string
}

var (
	notePattern = regexp.MustCompile(`(?i)remember that\s+(.+?)\s+is\s+(.+)`)
	factPattern = regexp.MustCompile(`(?i)remember\s+(.+)`)
)

// Classify recognizes the fixed set of memory-command shapes in a query.
// Pure function: no state, no side effects; anything unrecognized yields
// CommandNone. Memory commands never short-circuit answering, so the caller
// still runs retrieval on the full query afterward.
func Classify(message string) Command {
	if m := notePattern.FindStringSubmatch(message); m != nil {
		key := strings.TrimSpace(m[1])
		value := strings.TrimSpace(m[2])
		if key != "" && value != "" {
			return Command{Kind: CommandNote, Key: key, Value: value}
		}
	}
	if m := factPattern.FindStringSubmatch(message); m != nil {
		if value := strings.TrimSpace(m[1]); value != "" {
			return Command{Kind: CommandFact, Value: value}
		}
	}
	return Command{Kind: CommandNone}
}
