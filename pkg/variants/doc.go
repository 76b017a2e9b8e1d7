// Package variants implements the combinatorial core of vargen: filter
// classification and variant expansion.
//
// A variant is one complete assignment of a choice to every placeholder of
// a template. With no filters a template with choice counts c_1..c_n
// expands to the full cartesian product of Π c_i variants. Filter tokens
// narrow individual factors without touching the others: filtering one
// placeholder to k of its c choices scales the total by k/c, exactly.
//
// Filter tokens are classified once, globally, into template-name filters
// and choice-value filters. Choice-value resolution is deferred until
// expansion because templates may have disjoint vocabularies: a token is
// only unknown if every in-scope template rejected it.
package variants
