package nxask

import (
	"regexp"
	"strings"
)

// QueryKind tells the pipeline which branch handles a message.
type QueryKind int

// Query kinds. The zero value is GeneralQuery so that anything unrecognized
// is treated as chat.
const (
	GeneralQuery QueryKind = iota
	CommandQuery
)

// String returns the wire name used in API responses.
func (k QueryKind) String() string {
	if k == CommandQuery {
		return "cisco_command"
	}
	return "general"
}

// Query is a single incoming chat message.
type Query struct {
	Text string `json:"message"`
}

// matcher tags a pattern with the kind it selects. The optional guard must
// also hold for the matcher to fire.
type matcher struct {
	kind  QueryKind
	re    *regexp.Regexp
	guard func(text string) bool
}

func (m matcher) match(text string) bool {
	if !m.re.MatchString(text) {
		return false
	}
	return m.guard == nil || m.guard(text)
}

// explainShowRe matches "explain" directly followed by "show".
var explainShowRe = regexp.MustCompile(`^explain\s+show`)

// matchers are evaluated in order and the first hit wins. Exclusions come
// first: a greeting or small talk is chat even when it also mentions a
// command keyword.
var matchers = []matcher{
	// Greetings and social closings.
	{kind: GeneralQuery, re: regexp.MustCompile(`^(hi|hello|hey|good\s+(morning|afternoon|evening)|greetings)`)},
	{kind: GeneralQuery, re: regexp.MustCompile(`^(how\s+are\s+you|what's\s+up|sup)`)},
	{kind: GeneralQuery, re: regexp.MustCompile(`^(thank\s+you|thanks|bye|goodbye)`)},
	{kind: GeneralQuery, re: regexp.MustCompile(`^(yes|no|ok|okay|sure)$`)},

	// General conversation.
	{kind: GeneralQuery, re: regexp.MustCompile(`^(what\s+is\s+your\s+name|who\s+are\s+you)`)},
	{kind: GeneralQuery, re: regexp.MustCompile(`^(what\s+can\s+you\s+do|help\s+me)`)},
	{kind: GeneralQuery, re: regexp.MustCompile(`^tell\s+me\s+about`)},
	{kind: GeneralQuery, re: regexp.MustCompile(`^explain\s+`), guard: func(text string) bool {
		return !explainShowRe.MatchString(text)
	}},
	{kind: GeneralQuery, re: regexp.MustCompile(`weather`)},
	{kind: GeneralQuery, re: regexp.MustCompile(`time`)},
	{kind: GeneralQuery, re: regexp.MustCompile(`date`)},

	// Command queries.
	{kind: CommandQuery, re: regexp.MustCompile(`^show\s+`)},
	{kind: CommandQuery, re: regexp.MustCompile(`cisco`)},
	{kind: CommandQuery, re: regexp.MustCompile(`nx-?os`)},
	{kind: CommandQuery, re: regexp.MustCompile(`nexus`)},
	{kind: CommandQuery, re: regexp.MustCompile(`^(configure|config)\s+`)},
	{kind: CommandQuery, re: regexp.MustCompile(`^(interface|int)\s+`)},
	{kind: CommandQuery, re: regexp.MustCompile(`^(vlan|route|bgp|ospf|eigrp)\s+`)},
	{kind: CommandQuery, re: regexp.MustCompile(`command`)},
	{kind: CommandQuery, re: regexp.MustCompile(`switch`)},
	{kind: CommandQuery, re: regexp.MustCompile(`router`)},
	{kind: CommandQuery, re: regexp.MustCompile(`what\s+is\s+show\s+`)},
	{kind: CommandQuery, re: regexp.MustCompile(`how\s+to\s+show\s+`)},
	{kind: CommandQuery, re: regexp.MustCompile(`explain\s+show\s+`)},
}

// Classify decides whether a message asks about a Cisco command.
// Ambiguous text is treated as general chat.
func Classify(text string) QueryKind {
	normalized := strings.ToLower(strings.TrimSpace(text))
	for _, m := range matchers {
		if m.match(normalized) {
			return m.kind
		}
	}
	return GeneralQuery
}
