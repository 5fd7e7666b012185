// Package flags provides the feature-flag store used by the app shell.
//
// The store is passed explicitly to the components that read it; there
// is no ambient, tree-wide flag context to look up. A component that
// needs flags takes a *flags.Store parameter, which keeps the data flow
// visible and the components testable in isolation.
//
// A flag is a plain toggle, optionally combined with a targeting rule
// (an expr-lang expression evaluated against a caller-supplied
// environment):
//
//	store := flags.New()
//	store.Set("new-hero", true)
//	store.Define(flags.Flag{
//	    Key:     "beta-banner",
//	    Enabled: true,
//	    Rule:    `plan == "pro" && visits > 3`,
//	})
//
//	store.Enabled("new-hero")                                  // true
//	store.EnabledFor("beta-banner", map[string]any{"plan": "pro", "visits": 5})
//
// Rule evaluation fails closed: a rule error disables the flag for that
// evaluation.
package flags
