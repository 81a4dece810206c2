package cli

import (
	"fmt"
	"strings"
)

// records the outcome of one query for reporting
type QueryResult struct {
	Query   string   `json:"query"`             // the query as given on the command line
	Found   bool     `json:"found"`             // whether the query is an inserted key
	Key     string   `json:"key,omitempty"`     // the key rebuilt from the trie, when found
	Parents []string `json:"parents,omitempty"` // the FindParent chain, nearest first
}

func (qr QueryResult) String() string {
	if !qr.Found {
		return fmt.Sprintf("missing %s", qr.Query)
	}
	str := fmt.Sprintf("found %s", qr.Key)
	if len(qr.Parents) > 0 {
		str += " <- " + strings.Join(qr.Parents, " <- ")
	}
	return str
}
