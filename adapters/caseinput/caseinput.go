// Package caseinput loads case files.
// A case file holds the extracted tasks of one documentation case plus
// optional explicit cost entries (materials, statutory work, staff,
// operational costs, travel) and the valuation context. JSON, YAML and
// HCL encodings are supported.
package caseinput

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"casecost/core/types"
	"casecost/internal/errors"
	"casecost/internal/logging"
)

// Format is a case file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// DetectFormat returns the format implied by a file extension
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", errors.NotSupported("case file extension " + filepath.Ext(path))
	}
}

// Load reads one case file
func Load(path string) (*types.Case, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("case file", path)
		}
		return nil, errors.Wrapf(errors.TypeInput, err, "cannot read case file %s", path)
	}

	c, err := Parse(data, format, path)
	if err != nil {
		return nil, err
	}
	logging.Debug("case file loaded",
		zap.String("path", path),
		zap.String("format", string(format)),
		zap.String("case_id", c.ID),
		zap.Int("tasks", len(c.Tasks)),
		zap.Int("items", len(c.Items)))
	return c, nil
}

// LoadAll reads several case files, stopping at the first failure
func LoadAll(paths []string) ([]types.Case, error) {
	cases := make([]types.Case, 0, len(paths))
	for _, p := range paths {
		c, err := Load(p)
		if err != nil {
			return nil, err
		}
		cases = append(cases, *c)
	}
	return cases, nil
}

// Parse decodes case data in the given format. filename is used in
// diagnostics only.
func Parse(data []byte, format Format, filename string) (*types.Case, error) {
	var doc document
	var err error

	switch format {
	case FormatJSON:
		err = decodeJSON(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatHCL:
		err = decodeHCL(data, filename, &doc)
	default:
		return nil, errors.NotSupported("case file format " + string(format))
	}
	if err != nil {
		return nil, errors.Parsing("cannot decode "+filename, err).
			WithContext("format", string(format))
	}

	if err := checkShape(&doc); err != nil {
		return nil, err
	}
	return doc.toCase()
}

func decodeJSON(data []byte, doc *document) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(doc)
}

// hclFile is the root of an HCL case file: exactly one labelled case block
type hclFile struct {
	Case document `hcl:"case,block"`
}

func decodeHCL(data []byte, filename string, doc *document) error {
	file, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return diags
	}

	var root hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return diags
	}
	*doc = root.Case
	return nil
}

var validate = validator.New()

// checkShape rejects malformed input. Content problems of extracted
// tasks are left to the task validator.
func checkShape(doc *document) error {
	err := validate.Struct(doc)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !asValidationErrors(err, &fieldErrs) {
		return errors.Wrap(errors.TypeInput, "invalid case file", err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fe.Namespace()+": failed "+fe.Tag())
	}
	return errors.Input("invalid case file: "+strings.Join(problems, "; ")).
		WithContext("fields", len(problems))
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if ok {
		*target = ve
	}
	return ok
}
