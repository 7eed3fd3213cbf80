// pkg/opencuts/types.go

package opencuts

// Combination is one variable of the system under test.
// An empty Value is omitted so the backend treats it as unknown.
type Combination struct {
	Variable string `json:"variable"`
	Value    string `json:"value,omitempty"`
}

// Log is a named log attached to a run.
type Log struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Run is the RunInput accepted by the smartRun mutation.
type Run struct {
	Combination []Combination `json:"combination"`
	Comment     string        `json:"comment,omitempty"`
	Logs        []Log         `json:"logs"`
	Result      string        `json:"result"`
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type smartRunResponse struct {
	Data struct {
		SmartRun *struct {
			ID string `json:"id"`
		} `json:"smartRun"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}
