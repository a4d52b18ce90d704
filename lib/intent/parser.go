// Package intent classifies free-text cost questions into a typed intent
// plus extracted parameters. Classification is a fixed-priority list of
// (match, extract) rules over keyword and regex heuristics: the first rule
// that matches wins, and anything unmatched falls through to KindGeneral,
// which downstream code hands to the text-generation service.
package intent

import (
	"regexp"
	"strings"
)

// Kind is the classified purpose of a query.
type Kind string

const (
	KindPhaseSpending   Kind = "phase_spending"
	KindItemPurchases   Kind = "item_purchases"
	KindCompareProjects Kind = "compare_projects"
	KindVendorSpending  Kind = "vendor_spending"
	KindProjectSummary  Kind = "project_summary"
	KindGeneral         Kind = "general"
)

// Result is the discriminated outcome of parsing a query. Only the fields
// relevant to Kind are populated.
type Result struct {
	Kind Kind

	Phase       string   // phase_spending; empty when extraction failed
	Item        string   // item_purchases; empty means all items
	ThisMonth   bool     // item_purchases scoped to the current month
	Projects    []string // compare_projects; may hold fewer than 2 names
	Vendor      string   // vendor_spending; empty means all vendors
	Project     string   // project_summary; empty with AllProjects set
	AllProjects bool     // project_summary over every project
	Raw         string   // original query, always set
}

// itemVocabulary is the fixed list of material names the item rule knows.
var itemVocabulary = []string{
	"cement", "concrete", "steel", "brick", "paint", "wire", "pipe",
	"lumber", "sand", "gravel", "rebar", "tile", "glass", "wood", "metal",
}

// knownPhaseNames are common construction phase labels used as literal
// match hints. The schema does not restrict phases to these.
var knownPhaseNames = []string{
	"grey", "gray", "foundation", "structure", "finishing",
	"electrical", "plumbing",
}

var (
	spendTermRe = regexp.MustCompile(`(?i)\b(spent|cost|costs|budget|total)\b`)
	phaseTermRe = regexp.MustCompile(`(?i)\b(phase|on|grey|gray|foundation|structure|finishing|electrical|plumbing)\b`)

	spendOnRe    = regexp.MustCompile(`(?i)\b(?:spent|cost|costs|budget|total)\s+(?:\w+\s+)?on\s+(?:the\s+)?([A-Za-z0-9][A-Za-z0-9 ]*?)(?:\s+phase)?\s*[?.!]*\s*$`)
	phaseNameRe  = regexp.MustCompile(`(?i)\bphase\s+([A-Za-z0-9]+)`)
	genericOnRe  = regexp.MustCompile(`(?i)\bon\s+(?:the\s+)?([A-Za-z][A-Za-z0-9 ]*?)(?:\s+phase)?\s*[?.!]*\s*$`)
	trailingTrim = regexp.MustCompile(`[?.!\s]+$`)

	actionVerbRe   = regexp.MustCompile(`(?i)\b(show|list|get)\b`)
	purchaseTermRe = regexp.MustCompile(`(?i)\b(purchases?|purchased|buy|buys|bought)\b`)
	showItemRe     = regexp.MustCompile(`(?i)\bshow\s+(?:me\s+)?(?:all\s+)?([A-Za-z]+)\s+purchase`)
	thisMonthRe    = regexp.MustCompile(`(?i)\bthis\s+month\b`)

	compareRe     = regexp.MustCompile(`(?i)\bcompare\b`)
	comparePairRe = regexp.MustCompile(`(?i)\bcompare\s+(?:project\s+)?(.+?)\s+(?:to|with|and)\s+(?:project\s+)?(.+?)\s*[?.!]*\s*$`)
	projectRefRe  = regexp.MustCompile(`(?i)\bproject\s+([A-Za-z0-9]+)`)

	vendorTermRe  = regexp.MustCompile(`(?i)\bvendors?\b`)
	supplierRe    = regexp.MustCompile(`(?i)\b(vendors?|suppliers?)\b`)
	vendorNameRe  = regexp.MustCompile(`(?i)\bvendor\s+([A-Za-z0-9][A-Za-z0-9 ]*?)\s+(?:spend|spending|cost|costs)\b`)
	projectTermRe = regexp.MustCompile(`(?i)\b(projects?|all\s+projects)\b`)
	summaryVerbRe = regexp.MustCompile(`(?i)\b(summary|summarize|status|overview|list|show|doing|going|progress)\b`)
	allProjectsRe = regexp.MustCompile(`(?i)\b(?:all|my|our|the)\s+projects\b|\bprojects\b\s*[?.!]*\s*$`)

	summaryOfRe    = regexp.MustCompile(`(?i)\b(?:summary|status|overview)\s+(?:of|for)\s+(?:the\s+)?(?:project\s+)?([A-Za-z0-9][A-Za-z0-9 ]*?)(?:\s+project)?\s*[?.!]*\s*$`)
	projectNamedRe = regexp.MustCompile(`(?i)\bproject\s+([A-Za-z0-9][A-Za-z0-9 ]*?)\s*[?.!]*\s*$`)
	howIsRe        = regexp.MustCompile(`(?i)\b(?:how\s+is|tell\s+me\s+about)\s+(?:the\s+)?([A-Za-z0-9][A-Za-z0-9 ]*?)(?:\s+project)?(?:\s+(?:doing|going))?\s*[?.!]*\s*$`)
)

// rule pairs a trigger predicate with a parameter extractor. Rules are
// evaluated strictly in order; precedence lives in the slice, not in
// nested conditionals, because several rules share surface keywords.
type rule struct {
	name    Kind
	match   func(q string) bool
	extract func(q string, r *Result)
}

var rules = []rule{
	{
		name: KindPhaseSpending,
		match: func(q string) bool {
			return spendTermRe.MatchString(q) && phaseTermRe.MatchString(q)
		},
		extract: func(q string, r *Result) {
			r.Phase = extractPhaseName(q)
		},
	},
	{
		name: KindItemPurchases,
		match: func(q string) bool {
			return actionVerbRe.MatchString(q) && purchaseTermRe.MatchString(q)
		},
		extract: func(q string, r *Result) {
			r.Item = extractItemName(q)
			r.ThisMonth = thisMonthRe.MatchString(q)
		},
	},
	{
		name:  KindCompareProjects,
		match: compareRe.MatchString,
		extract: func(q string, r *Result) {
			r.Projects = extractComparedProjects(q)
		},
	},
	{
		name: KindVendorSpending,
		match: func(q string) bool {
			if vendorTermRe.MatchString(q) {
				return true
			}
			return actionVerbRe.MatchString(q) && supplierRe.MatchString(q)
		},
		extract: func(q string, r *Result) {
			if m := vendorNameRe.FindStringSubmatch(q); m != nil {
				r.Vendor = strings.TrimSpace(m[1])
			}
		},
	},
	{
		name: KindProjectSummary,
		match: func(q string) bool {
			return projectTermRe.MatchString(q) && summaryVerbRe.MatchString(q)
		},
		extract: func(q string, r *Result) {
			if allProjectsRe.MatchString(q) {
				r.AllProjects = true
				return
			}
			r.Project = extractProjectName(q)
			if r.Project == "" {
				r.AllProjects = true
			}
		},
	},
}

// Parse classifies a raw user query. It is a pure function: no I/O, no
// shared state. The zero-match outcome is KindGeneral carrying the raw
// query for open-ended handling.
func Parse(query string) Result {
	q := strings.TrimSpace(query)
	result := Result{Kind: KindGeneral, Raw: query}

	for _, rule := range rules {
		if rule.match(q) {
			result.Kind = rule.name
			rule.extract(q, &result)
			return result
		}
	}
	return result
}

// extractPhaseName tries a sequence of increasingly loose captures and
// returns the first hit, or "" when nothing extracts (the caller handles
// phase-not-found).
func extractPhaseName(q string) string {
	if m := spendOnRe.FindStringSubmatch(q); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := phaseNameRe.FindStringSubmatch(q); m != nil {
		return strings.TrimSpace(m[1])
	}
	lower := strings.ToLower(q)
	for _, name := range knownPhaseNames {
		if idx := indexOfWord(lower, name); idx >= 0 {
			return q[idx : idx+len(name)]
		}
	}
	if m := genericOnRe.FindStringSubmatch(q); m != nil {
		return strings.TrimSpace(m[1])
	}
	// Last resort: final word before trailing punctuation.
	trimmed := trailingTrim.ReplaceAllString(q, "")
	fields := strings.Fields(trimmed)
	if len(fields) > 0 {
		return fields[len(fields)-1]
	}
	return ""
}

func extractItemName(q string) string {
	lower := strings.ToLower(q)
	for _, item := range itemVocabulary {
		if indexOfWord(lower, item) >= 0 {
			return item
		}
	}
	if m := showItemRe.FindStringSubmatch(q); m != nil {
		return strings.ToLower(strings.TrimSpace(m[1]))
	}
	return ""
}

func extractComparedProjects(q string) []string {
	if m := comparePairRe.FindStringSubmatch(q); m != nil {
		return []string{strings.TrimSpace(m[1]), strings.TrimSpace(m[2])}
	}
	var projects []string
	for _, m := range projectRefRe.FindAllStringSubmatch(q, -1) {
		projects = append(projects, strings.TrimSpace(m[1]))
	}
	return projects
}

func extractProjectName(q string) string {
	if m := summaryOfRe.FindStringSubmatch(q); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := projectNamedRe.FindStringSubmatch(q); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := howIsRe.FindStringSubmatch(q); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// indexOfWord reports the index of word in s when it appears with
// non-letter boundaries on both sides, or -1.
func indexOfWord(s, word string) int {
	start := 0
	for {
		idx := strings.Index(s[start:], word)
		if idx < 0 {
			return -1
		}
		idx += start
		beforeOK := idx == 0 || !isLetter(s[idx-1])
		end := idx + len(word)
		afterOK := end == len(s) || !isLetter(s[end])
		if beforeOK && afterOK {
			return idx
		}
		start = idx + 1
	}
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
