// Package testkit drives HTTP API tests from JSON scenario files.
//
// Each scenario describes one request and what must come back:
//
//	{
//	  "name": "menu with malformed id is not found",
//	  "requestMethod": "GET",
//	  "requestUrl": "/api/menus/not-a-uuid",
//	  "headers": {"Authorization": "Bearer {{userToken}}"},
//	  "expectedCode": 404,
//	  "responseFileName": "not_found_res.json"
//	}
//
// {{name}} placeholders in the URL, headers and body are filled from the
// vars passed to Run/RunDir, so scenarios can reference tokens and ids
// created by the test.
//
//	testkit.RunDir(t, handler, "testdata", testkit.Vars{"userToken": tok})
package testkit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Vars fills {{name}} placeholders.
type Vars map[string]string

func (v Vars) expand(s string) string {
	for k, val := range v {
		s = strings.ReplaceAll(s, "{{"+k+"}}", val)
	}
	return s
}

// Scenario describes a single REST API test case loaded from a JSON file.
type Scenario struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	RequestMethod   string            `json:"requestMethod"`
	RequestURL      string            `json:"requestUrl"`
	RequestBody     json.RawMessage   `json:"requestBody"`     // inline body
	RequestFileName string            `json:"requestFileName"` // or a file next to the scenario
	Headers         map[string]string `json:"headers"`

	ExpectedCode int `json:"expectedCode"`
	// ResponseFileName holds a JSON document the response must contain:
	// objects match by key (extra keys in the response are ignored), arrays
	// and scalars match exactly.
	ResponseFileName string `json:"responseFileName"`

	dir string
}

// LoadScenario reads and validates a scenario from a JSON file.
func LoadScenario(path string) (*Scenario, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("testkit: resolve path %q: %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("testkit: read %q: %w", abs, err)
	}

	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("testkit: parse %q: %w", abs, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("testkit: invalid scenario %q: %w", abs, err)
	}

	s.dir = filepath.Dir(abs)
	return &s, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.RequestURL == "" {
		return fmt.Errorf("requestUrl is required")
	}
	if s.ExpectedCode == 0 {
		return fmt.Errorf("expectedCode is required")
	}
	if s.RequestMethod == "" {
		s.RequestMethod = "GET"
	}
	return nil
}

// body returns the request body with placeholders filled, or nil.
func (s *Scenario) body(vars Vars) ([]byte, error) {
	switch {
	case len(s.RequestBody) > 0:
		return []byte(vars.expand(string(s.RequestBody))), nil
	case s.RequestFileName != "":
		data, err := os.ReadFile(s.resolve(s.RequestFileName))
		if err != nil {
			return nil, err
		}
		return []byte(vars.expand(string(data))), nil
	}
	return nil, nil
}

// expected returns the expected response document, or nil.
func (s *Scenario) expected() ([]byte, error) {
	if s.ResponseFileName == "" {
		return nil, nil
	}
	return os.ReadFile(s.resolve(s.ResponseFileName))
}

func (s *Scenario) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.dir, name)
}
