package main

import (
	"errors"
	"sort"
)

// commandEntry maps a REPL prefix to its handler. A prefix ending in a space
// takes arguments; a bare prefix must match the whole line.
type commandEntry struct {
	prefix  string
	handler func(args string) error
	hidden  bool // excluded from help aliases
}

// initCommands builds the command registry and sorts by prefix length descending.
func (s *Session) initCommands() {
	s.commands = []commandEntry{
		// --- query building ---
		{prefix: "type ", handler: s.cmdType},
		{prefix: "filter ", handler: s.cmdFilter},
		{prefix: "where ", handler: s.cmdFilter, hidden: true},
		{prefix: "or ", handler: s.cmdOr},
		{prefix: "select ", handler: s.cmdSelect},
		{prefix: "orderby ", handler: s.cmdOrderBy},
		{prefix: "order ", handler: s.cmdOrderBy, hidden: true},
		{prefix: "top ", handler: s.cmdTop},
		{prefix: "search ", handler: s.cmdSearch},
		{prefix: "reset", handler: func(_ string) error { return s.cmdReset() }},

		// --- output ---
		{prefix: "sql", handler: func(_ string) error { return s.cmdSQL() }},
		{prefix: "partial ", handler: s.cmdPartial},
		{prefix: "partial", handler: func(_ string) error { return s.cmdPartial("") }},

		// --- database connectivity ---
		{prefix: "connect ", handler: s.cmdConnect},
		{prefix: "connect", handler: func(_ string) error { return s.cmdConnect("") }},
		{prefix: "disconnect", handler: func(_ string) error { return s.cmdDisconnect() }},
		{prefix: "seed ", handler: s.cmdSeed},
		{prefix: "seed", handler: func(_ string) error { return s.cmdSeed("") }},
		{prefix: "run", handler: func(_ string) error { return s.cmdRun() }},
		{prefix: "exec", handler: func(_ string) error { return s.cmdRun() }, hidden: true},

		// --- misc ---
		{prefix: "help", handler: func(_ string) error { s.cmdHelp(); return nil }},
		{prefix: "type", handler: func(_ string) error { return errors.New("usage: type <entity-type>") }},
	}

	// Sort by prefix length descending so longest prefixes match first.
	sort.Slice(s.commands, func(i, j int) bool {
		return len(s.commands[i].prefix) > len(s.commands[j].prefix)
	})
}
