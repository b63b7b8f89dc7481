// Package query provides the boolean query tree produced by the address
// query compiler. Nodes are plain values: once handed out they are never
// mutated, so a tree can be rendered or compared any number of times.
package query

// Query is a node of the query tree. The set of node types is closed.
type Query interface {
	isQuery()
}

// Fuzziness is the edit-distance tolerance of a fuzzy or match clause,
// in the engine's own notation.
type Fuzziness string

const (
	// FuzzinessZero requires an exact match.
	FuzzinessZero Fuzziness = "0"
	// FuzzinessAuto scales the allowed edits with the term length.
	FuzzinessAuto Fuzziness = "AUTO"
)

// A Boost of 0 on any node means "not set"; the engine then applies 1.0.

// Term matches the exact, unanalysed value of a field.
type Term struct {
	Field string
	Value string
	Boost float64
}

// MatchPhrase matches the analysed tokens of Query in order.
type MatchPhrase struct {
	Field string
	Query string
	Boost float64
}

// Match matches the analysed tokens of a multi-token value, each token with
// the given fuzziness.
type Match struct {
	Field     string
	Query     string
	Fuzziness Fuzziness
	Boost     float64
}

// Fuzzy matches a single term within an edit distance.
type Fuzzy struct {
	Field     string
	Value     string
	Fuzziness Fuzziness
	Boost     float64
}

// Exists matches records that carry any value for Field.
type Exists struct {
	Field string
}

// Bool combines clauses. Must and MustNot decide eligibility and score,
// Filter decides eligibility only, Should adds score and, when
// MinimumShouldMatch is set, also eligibility.
type Bool struct {
	Must               []Query
	Should             []Query
	MustNot            []Query
	Filter             []Query
	MinimumShouldMatch int
	Boost              float64
}

// IsEmpty reports whether the bool has no clauses at all, in which case it
// matches every record.
func (b Bool) IsEmpty() bool {
	return len(b.Must) == 0 && len(b.Should) == 0 && len(b.MustNot) == 0 && len(b.Filter) == 0
}

func (Term) isQuery()        {}
func (MatchPhrase) isQuery() {}
func (Match) isQuery()       {}
func (Fuzzy) isQuery()       {}
func (Exists) isQuery()      {}
func (Bool) isQuery()        {}
