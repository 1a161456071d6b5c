package annotate

import (
	_ "embed"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRules []byte

var ErrInvalidRule = errors.New("invalid rule")

// Rule is a single find and replace operation.
// A literal rule replaces every non-overlapping occurrence of its match,
// a regex rule expands its template for every match of its expression.
type Rule struct {
	literal     string
	re          *regexp.Regexp
	replacement string
}

// LiteralRule replaces every occurrence of match with label wrapped in style.
func LiteralRule(match string, style Style, label string) Rule {
	return Rule{literal: match, replacement: style.Wrap(label)}
}

// RegexRule replaces every match of re with template wrapped in style.
// template may reference capture groups, see regexp.Regexp.Expand.
func RegexRule(re *regexp.Regexp, style Style, template string) Rule {
	return Rule{re: re, replacement: style.Wrap(template)}
}

// Apply returns line with the rule applied.
func (r Rule) Apply(line string) string {
	if r.re != nil {
		return r.re.ReplaceAllString(line, r.replacement)
	}
	if r.literal == "" {
		return line
	}

	return strings.ReplaceAll(line, r.literal, r.replacement)
}

// Rules is an ordered list of rules. Each rule sees the output of the previous one.
type Rules []Rule

// Apply returns line with every rule applied in order.
func (rs Rules) Apply(line string) string {
	for _, r := range rs {
		line = r.Apply(line)
	}

	return line
}

type literalEntry struct {
	Match string `yaml:"match"`
	Style string `yaml:"style"`
	Label string `yaml:"label"`
}

type regexEntry struct {
	Regex   string `yaml:"regex"`
	Style   string `yaml:"style"`
	Replace string `yaml:"replace"`
}

// ruleFile is the layout of a rule document. Groups are applied in field order.
type ruleFile struct {
	Literals []literalEntry `yaml:"literals"`
	Keywords []literalEntry `yaml:"keywords"`
	Sections []regexEntry   `yaml:"sections"`
}

// LoadRules decodes a rule document: type signature literals first, then highlighted keywords,
// then section location expressions. A keyword without label is wrapped as is.
func LoadRules(data []byte) (Rules, error) {
	var file ruleFile
	err := yaml.Unmarshal(data, &file)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode rules")
	}

	rules := make(Rules, 0, len(file.Literals)+len(file.Keywords)+len(file.Sections))
	for _, group := range [][]literalEntry{file.Literals, file.Keywords} {
		for i, entry := range group {
			if entry.Match == "" {
				return nil, errors.Wrapf(ErrInvalidRule, "literal %d has no match", i)
			}
			style, err := ParseStyle(entry.Style)
			if err != nil {
				return nil, errors.Wrapf(err, "literal %q", entry.Match)
			}
			label := entry.Label
			if label == "" {
				label = entry.Match
			}
			rules = append(rules, LiteralRule(entry.Match, style, label))
		}
	}

	for i, entry := range file.Sections {
		if entry.Regex == "" {
			return nil, errors.Wrapf(ErrInvalidRule, "section %d has no regex", i)
		}
		re, err := regexp.Compile(entry.Regex)
		if err != nil {
			return nil, errors.Wrapf(err, "section %d", i)
		}
		style, err := ParseStyle(entry.Style)
		if err != nil {
			return nil, errors.Wrapf(err, "section %q", entry.Regex)
		}
		rules = append(rules, RegexRule(re, style, entry.Replace))
	}

	return rules, nil
}

// DefaultRules returns the rules for gatb-core builds.
// It panics if the embedded rule document is invalid.
func DefaultRules() Rules {
	rules, err := LoadRules(defaultRules)
	if err != nil {
		panic(errors.Wrap(err, "embedded rules"))
	}

	return rules
}
