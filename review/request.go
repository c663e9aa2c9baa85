package review

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Request is the review input: one snippet and the comments made on it
type Request struct {
	CodeSnippet string
	Comments    []string
}

// rawRequest uses pointers so absent and null keys can be told apart from empty values
type rawRequest struct {
	CodeSnippet    *string   `json:"code_snippet" yaml:"code_snippet"`
	ReviewComments *[]string `json:"review_comments" yaml:"review_comments"`
}

// LoadRequest reads a review request. Files ending in .yaml or .yml are parsed as
// YAML, everything else as JSON.
func LoadRequest(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading input file: %w", err)
	}

	var req *Request
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		req, err = ParseYAMLRequest(data)
	default:
		req, err = ParseJSONRequest(data)
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return req, nil
}

// ParseJSONRequest decodes {"code_snippet": ..., "review_comments": [...]}
func ParseJSONRequest(data []byte) (*Request, error) {
	var raw rawRequest
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw.toRequest()
}

// ParseYAMLRequest decodes the same keys from YAML
func ParseYAMLRequest(data []byte) (*Request, error) {
	var raw rawRequest
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw.toRequest()
}

func (r rawRequest) toRequest() (*Request, error) {
	var missing []error
	if r.CodeSnippet == nil {
		missing = append(missing, errors.New(`missing required key "code_snippet"`))
	}
	if r.ReviewComments == nil {
		missing = append(missing, errors.New(`missing required key "review_comments"`))
	}
	if len(missing) > 0 {
		return nil, errors.Join(missing...)
	}

	return &Request{
		CodeSnippet: *r.CodeSnippet,
		Comments:    *r.ReviewComments,
	}, nil
}
