package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bawdo/docsql/nodes"
	"github.com/bawdo/docsql/query"
	"github.com/ergochat/readline"
)

var errNoFilter = errors.New("no filter defined (use 'filter <field> <op> <value>' first)")

// seedTable is the table the seed/run commands work against, named after the
// document root alias so generated queries execute unchanged.
const seedTable = "c"

// comparisonOps maps the REPL's operator spellings to tree operators.
var comparisonOps = map[string]nodes.BinaryOp{
	"eq": nodes.OpEq,
	"ne": nodes.OpNotEq,
	"gt": nodes.OpGt,
	"ge": nodes.OpGtEq,
	"lt": nodes.OpLt,
	"le": nodes.OpLtEq,
}

// Session holds the REPL state: the entity type, the query options being
// built, the assembler, and the database connection.
type Session struct {
	engine     string
	entityType string
	opts       *nodes.QueryOptions
	assembler  *query.Assembler
	commands   []commandEntry // command registry (sorted by prefix length desc)
	conn       *dbConn        // nil when disconnected
	lastDSN    string         // remembers the previous DSN for reconnect
	rl         *readline.Instance
	out        io.Writer // destination for REPL output (default os.Stdout)
}

// NewSession creates a session targeting the given database engine.
func NewSession(engine string, rl *readline.Instance) *Session {
	s := &Session{
		engine:     engine,
		entityType: "Doc",
		opts:       &nodes.QueryOptions{},
		assembler:  query.New(),
		rl:         rl,
		out:        os.Stdout,
	}
	s.initCommands()
	return s
}

// Execute parses and runs a single REPL command.
func (s *Session) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	lower := strings.ToLower(line)

	for _, cmd := range s.commands {
		if strings.HasSuffix(cmd.prefix, " ") {
			if strings.HasPrefix(lower, cmd.prefix) {
				return cmd.handler(line[len(cmd.prefix):])
			}
		} else {
			if lower == cmd.prefix {
				return cmd.handler("")
			}
		}
	}

	word := strings.Fields(line)[0]
	return fmt.Errorf("unknown command: %s (type 'help' for commands)", word)
}

// --- Tree building helpers ---

// parseField builds a property access from a dotted path, rooted at the
// implicit document root.
func parseField(path string) nodes.Node {
	parts := strings.Split(path, ".")
	var n nodes.Node = nodes.Property(parts[0])
	for _, part := range parts[1:] {
		n = nodes.PropertyOf(n, part)
	}
	return n
}

// parseValue builds a node from a literal token: null, booleans, quoted
// strings, Type'Member' enum literals, numbers. Anything else is taken as a
// field reference.
func parseValue(token string) nodes.Node {
	switch strings.ToLower(token) {
	case "null":
		return nodes.Null()
	case "true":
		return nodes.Constant("true", true)
	case "false":
		return nodes.Constant("false", false)
	}
	if strings.HasPrefix(token, "'") && strings.HasSuffix(token, "'") && len(token) >= 2 {
		return nodes.Constant(token, strings.Trim(token, "'"))
	}
	if i := strings.Index(token, "'"); i > 0 && strings.HasSuffix(token, "'") {
		return nodes.EnumConstant(strings.Trim(token[i:], "'"), token[:i])
	}
	if v, err := strconv.Atoi(token); err == nil {
		return nodes.Constant(token, v)
	}
	if v, err := strconv.ParseFloat(token, 64); err == nil {
		return nodes.Constant(token, v)
	}
	return parseField(token)
}

// parseComparison parses "<field> <op> <value>" into a binary node.
func parseComparison(args string) (nodes.Node, error) {
	parts := strings.SplitN(strings.TrimSpace(args), " ", 3)
	if len(parts) != 3 {
		return nil, errors.New("usage: <field> <op> <value> (ops: eq ne gt ge lt le)")
	}
	op, ok := comparisonOps[strings.ToLower(parts[1])]
	if !ok {
		return nil, fmt.Errorf("unknown operator %q (ops: eq ne gt ge lt le)", parts[1])
	}
	return nodes.NewBinaryNode(op, parseField(parts[0]), parseValue(strings.TrimSpace(parts[2]))), nil
}

// --- Command handlers ---

func (s *Session) cmdType(args string) error {
	name := strings.TrimSpace(args)
	if name == "" {
		return errors.New("usage: type <entity-type>")
	}
	s.entityType = name
	_, _ = fmt.Fprintf(s.out, "  Entity type set to %q\n", name)
	return nil
}

func (s *Session) cmdFilter(args string) error {
	cond, err := parseComparison(args)
	if err != nil {
		return err
	}
	if s.opts.Filter == nil {
		s.opts.Filter = cond
	} else {
		s.opts.Filter = nodes.And(s.opts.Filter, cond)
	}
	return s.showFilter()
}

func (s *Session) cmdOr(args string) error {
	if s.opts.Filter == nil {
		return errNoFilter
	}
	cond, err := parseComparison(args)
	if err != nil {
		return err
	}
	s.opts.Filter = nodes.Or(s.opts.Filter, cond)
	return s.showFilter()
}

func (s *Session) showFilter() error {
	rendered, err := s.assembler.Translator().TranslateFilter(s.opts.Filter)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.out, "  Filter: %s\n", rendered)
	return nil
}

func (s *Session) cmdSelect(args string) error {
	s.opts.Select = strings.TrimSpace(args)
	_, _ = fmt.Fprintf(s.out, "  Select list set to %q\n", s.opts.Select)
	return nil
}

func (s *Session) cmdOrderBy(args string) error {
	parts := strings.Fields(args)
	if len(parts) == 0 || len(parts) > 2 {
		return errors.New("usage: orderby <field> [asc|desc]")
	}
	dir := nodes.Asc
	if len(parts) == 2 {
		switch strings.ToLower(parts[1]) {
		case "asc":
		case "desc":
			dir = nodes.Desc
		default:
			return fmt.Errorf("unknown direction %q (asc or desc)", parts[1])
		}
	}
	expr := parseField(parts[0])
	if s.opts.OrderBy == nil {
		s.opts.OrderBy = nodes.OrderBy(expr, dir)
	} else {
		s.opts.OrderBy.Then(expr, dir)
	}
	rendered, err := s.assembler.Translator().TranslateOrderBy(s.opts.OrderBy)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.out, "  Order: %s\n", rendered)
	return nil
}

func (s *Session) cmdTop(args string) error {
	n, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil || n <= 0 {
		return errors.New("usage: top <positive integer>")
	}
	s.opts.Top = &n
	_, _ = fmt.Fprintf(s.out, "  Top set to %d\n", n)
	return nil
}

// cmdSearch builds a search tree from terms: terms are ANDed together, and a
// term preceded by "not" is negated.
func (s *Session) cmdSearch(args string) error {
	tokens := strings.Fields(args)
	if len(tokens) == 0 {
		return errors.New("usage: search [not] <term> ...")
	}
	var tree nodes.Node
	negate := false
	for _, token := range tokens {
		if strings.ToLower(token) == "not" {
			negate = true
			continue
		}
		var term nodes.Node = nodes.SearchTerm(token)
		if negate {
			term = nodes.Not(term)
			negate = false
		}
		if tree == nil {
			tree = term
		} else {
			tree = nodes.And(tree, term)
		}
	}
	if tree == nil {
		return errors.New("usage: search [not] <term> ...")
	}
	s.opts.Search = tree

	rendered, err := s.assembler.Translator().TranslateSearch(tree)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.out, "  Search: %s\n", rendered)
	return nil
}

func (s *Session) cmdSQL() error {
	var paging query.PagingOptions
	sqlStr, err := s.assembler.TranslateQuery(s.opts, s.entityType, &paging)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.out, "  %s\n", sqlStr)
	if paging.MaxItemCount > 0 {
		_, _ = fmt.Fprintf(s.out, "  MaxItemCount: %d\n", paging.MaxItemCount)
	}
	if s.opts.Search != nil {
		rendered, err := s.assembler.Translator().TranslateSearch(s.opts.Search)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(s.out, "  Search: %s\n", rendered)
	}
	return nil
}

// cmdPartial renders only the named clauses via the flag-driven form.
// No arguments means all clauses.
func (s *Session) cmdPartial(args string) error {
	var clauses query.Clause
	for _, name := range strings.Fields(strings.ToLower(args)) {
		switch name {
		case "select":
			clauses |= query.ClauseSelect
		case "where":
			clauses |= query.ClauseWhere
		case "orderby":
			clauses |= query.ClauseOrderBy
		case "top":
			clauses |= query.ClauseTop
		default:
			return fmt.Errorf("unknown clause %q (select, where, orderby, top)", name)
		}
	}
	if clauses == 0 {
		clauses = query.ClauseAll
	}
	sqlStr, err := s.assembler.TranslateClauses(s.opts, clauses, "")
	if err != nil {
		return err
	}
	if sqlStr == "" {
		_, _ = fmt.Fprintln(s.out, "  (empty)")
		return nil
	}
	_, _ = fmt.Fprintf(s.out, "  %s\n", sqlStr)
	return nil
}

func (s *Session) cmdReset() error {
	s.opts = &nodes.QueryOptions{}
	_, _ = fmt.Fprintln(s.out, "  Query cleared")
	return nil
}

// --- Database commands ---

func (s *Session) cmdConnect(args string) error {
	dsn := strings.TrimSpace(args)

	if s.conn != nil {
		return fmt.Errorf("already connected to %s (use 'disconnect' first)", sanitizeDSN(s.conn.dsn))
	}

	// Direct DSN provided — connect immediately.
	if dsn != "" {
		return s.connectWithDSN(dsn)
	}

	// Interactive: offer reconnect if we have a previous DSN, otherwise wizard.
	if s.lastDSN != "" {
		choice := prompt(s.rl, fmt.Sprintf("Reconnect to %s? (y/n/setup)", sanitizeDSN(s.lastDSN)), "y")
		switch strings.ToLower(choice) {
		case "y", "yes":
			return s.connectWithDSN(s.lastDSN)
		case "s", "setup":
			return s.connectViaWizard()
		default:
			_, _ = fmt.Fprintln(s.out, "  Connect cancelled")
			return nil
		}
	}

	return s.connectViaWizard()
}

func (s *Session) connectWithDSN(dsn string) error {
	conn, err := connect(s.engine, dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	s.conn = conn
	s.lastDSN = dsn
	_, _ = fmt.Fprintf(s.out, "  Connected to %s (%s)\n", sanitizeDSN(dsn), s.engine)
	return nil
}

func (s *Session) connectViaWizard() error {
	dsn := buildDSN(s.rl, s.engine)
	if dsn == "" {
		_, _ = fmt.Fprintln(s.out, "  No connection configured")
		return nil
	}
	_, _ = fmt.Fprintf(s.out, "  DSN: %s\n", sanitizeDSN(dsn))
	return s.connectWithDSN(dsn)
}

func (s *Session) cmdDisconnect() error {
	if s.conn == nil {
		return errors.New("not connected")
	}
	dsn := sanitizeDSN(s.conn.dsn)
	if err := s.conn.close(); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	s.conn = nil
	_, _ = fmt.Fprintf(s.out, "  Disconnected from %s\n", dsn)
	return nil
}

func (s *Session) cmdSeed(args string) error {
	if s.conn == nil {
		return errors.New("not connected (use 'connect <dsn>' first)")
	}
	n := 10
	if arg := strings.TrimSpace(args); arg != "" {
		v, err := strconv.Atoi(arg)
		if err != nil || v <= 0 {
			return errors.New("usage: seed [positive row count]")
		}
		n = v
	}
	if err := s.conn.seed(s.entityType, n); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.out, "  Seeded %d %q documents into %q\n", n, s.entityType, seedTable)
	return nil
}

// cmdRun executes the generated query against the connected database. The
// document store pages through MaxItemCount; relational engines page with a
// LIMIT suffix instead.
func (s *Session) cmdRun() error {
	if s.conn == nil {
		return errors.New("not connected (use 'connect <dsn>' first)")
	}
	if s.conn.engine != s.engine {
		_, _ = fmt.Fprintf(s.out, "  Warning: connected to %s but engine is set to %s\n", s.conn.engine, s.engine)
	}

	var paging query.PagingOptions
	sqlStr, err := s.assembler.TranslateQuery(s.opts, s.entityType, &paging)
	if err != nil {
		return err
	}
	if paging.MaxItemCount > 0 {
		sqlStr += " LIMIT " + strconv.Itoa(paging.MaxItemCount)
	}

	_, _ = fmt.Fprintf(s.out, "  %s;\n", sqlStr)
	result, err := s.conn.execQuery(sqlStr)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(s.out, result)
	return nil
}

func (s *Session) cmdHelp() {
	_, _ = fmt.Fprintln(s.out, `
  Query Building:
    type <name>               Set the entity type (discriminator value)
    filter <f> <op> <v>       AND a comparison onto the filter (eq ne gt ge lt le)
    or <f> <op> <v>           OR a comparison onto the filter
    select <cols>             Set the projection list (comma-separated)
    orderby <field> [asc|desc]  Append an order-by pair
    top <n>                   Set the top count
    search [not] <term> ...   Set the search expression
    reset                     Clear the query

  Output:
    sql                       Generate the full query (legacy form)
    partial [clauses...]      Generate selected clauses (select where orderby top)

  Database:
    connect [dsn]             Connect (interactive wizard without a DSN)
    disconnect                Close the connection
    seed [n]                  Create and fill the backing table with fixtures
    run                       Execute the generated query

  Other:
    help                      Show this help
    exit                      Quit`)
}
