package query

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/olivere/elastic/v7"
)

// ErrUnknownQuery is returned when a node outside the closed set of query
// types (or a nil node) is rendered.
var ErrUnknownQuery = errors.New("unknown query node")

// Elastic converts a query tree into the equivalent olivere/elastic query,
// ready to be passed to a search service.
func Elastic(q Query) (elastic.Query, error) {
	switch n := q.(type) {
	case Term:
		tq := elastic.NewTermQuery(n.Field, n.Value)
		if n.Boost != 0 {
			tq = tq.Boost(n.Boost)
		}
		return tq, nil
	case MatchPhrase:
		mq := elastic.NewMatchPhraseQuery(n.Field, n.Query)
		if n.Boost != 0 {
			mq = mq.Boost(n.Boost)
		}
		return mq, nil
	case Match:
		mq := elastic.NewMatchQuery(n.Field, n.Query)
		if n.Fuzziness != "" {
			mq = mq.Fuzziness(string(n.Fuzziness))
		}
		if n.Boost != 0 {
			mq = mq.Boost(n.Boost)
		}
		return mq, nil
	case Fuzzy:
		fq := elastic.NewFuzzyQuery(n.Field, n.Value)
		if n.Fuzziness != "" {
			fq = fq.Fuzziness(string(n.Fuzziness))
		}
		if n.Boost != 0 {
			fq = fq.Boost(n.Boost)
		}
		return fq, nil
	case Exists:
		return elastic.NewExistsQuery(n.Field), nil
	case Bool:
		return elasticBool(n)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownQuery, q)
}

func elasticBool(b Bool) (elastic.Query, error) {
	bq := elastic.NewBoolQuery()

	must, err := elasticAll(b.Must)
	if err != nil {
		return nil, fmt.Errorf("must: %w", err)
	}
	should, err := elasticAll(b.Should)
	if err != nil {
		return nil, fmt.Errorf("should: %w", err)
	}
	mustNot, err := elasticAll(b.MustNot)
	if err != nil {
		return nil, fmt.Errorf("must_not: %w", err)
	}
	filter, err := elasticAll(b.Filter)
	if err != nil {
		return nil, fmt.Errorf("filter: %w", err)
	}

	bq.Must(must...).Should(should...).MustNot(mustNot...).Filter(filter...)
	if b.MinimumShouldMatch > 0 {
		bq.MinimumNumberShouldMatch(b.MinimumShouldMatch)
	}
	if b.Boost != 0 {
		bq.Boost(b.Boost)
	}
	return bq, nil
}

func elasticAll(qs []Query) ([]elastic.Query, error) {
	out := make([]elastic.Query, 0, len(qs))
	for _, q := range qs {
		eq, err := Elastic(q)
		if err != nil {
			return nil, err
		}
		out = append(out, eq)
	}
	return out, nil
}

// Source renders the query tree as the engine's JSON query DSL, in the
// generic map form produced by elastic.Query.Source.
func Source(q Query) (interface{}, error) {
	eq, err := Elastic(q)
	if err != nil {
		return nil, err
	}
	return eq.Source()
}

// JSON renders the query tree as DSL bytes.
func JSON(q Query) ([]byte, error) {
	src, err := Source(q)
	if err != nil {
		return nil, err
	}
	return json.Marshal(src)
}
