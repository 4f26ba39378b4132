package shopify

import (
	"context"
	"encoding/json"
)

type fakeGraphQL struct {
	calls     int
	query     string
	variables map[string]any
	response  string
	err       error
}

func (f *fakeGraphQL) Do(_ context.Context, query string, variables map[string]any, out any) error {
	f.calls++
	f.query = query
	f.variables = variables
	if f.err != nil {
		return f.err
	}
	if out == nil || f.response == "" {
		return nil
	}
	return json.Unmarshal([]byte(f.response), out)
}
