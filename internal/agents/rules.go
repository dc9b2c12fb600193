package agents

import "regexp"

// query is what a rule sees: the raw text plus the classifier's guess.
type query struct {
	input  string
	intent Intent
}

// rule pairs a predicate with the renderer used when it matches. match returns
// the captured values for render, or ok=false to pass to the next rule.
type rule struct {
	name   string
	match  func(q query) (captures []string, ok bool)
	render func(q query, captures []string) string
}

// evaluate runs rules in order; the first match wins. The last rule of every
// cascade matches unconditionally.
func evaluate(rules []rule, q query) (string, string) {
	for _, r := range rules {
		if captures, ok := r.match(q); ok {
			return r.name, r.render(q, captures)
		}
	}
	return "", ""
}

func regexMatch(re *regexp.Regexp) func(q query) ([]string, bool) {
	return func(q query) ([]string, bool) {
		m := re.FindStringSubmatch(q.input)
		if m == nil {
			return nil, false
		}
		return m[1:], true
	}
}

func always(query) ([]string, bool) { return nil, true }
