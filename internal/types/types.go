package types

import "github.com/gnolang/qmc/internal/qmc"

// Function is a Boolean function given by its minterms.
type Function struct {
	Name      string   `yaml:"name" json:"name"`
	Variables int      `yaml:"variables" json:"variables"`
	Minterms  []uint64 `yaml:"minterms" json:"minterms"`
}

// Outcome is the result of minimizing one function.
type Outcome struct {
	Filename   string        `json:"filename,omitempty"`
	Function   Function      `json:"function"`
	Solution   *qmc.Solution `json:"solution,omitempty"`
	Expression string        `json:"expression,omitempty"`
	Error      string        `json:"error,omitempty"`
}

// Failed reports whether the function could not be minimized.
func (o Outcome) Failed() bool {
	return o.Error != ""
}
