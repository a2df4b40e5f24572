package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/mbeaudry/quotient/internal/domain/quote"
	quotienterrors "github.com/mbeaudry/quotient/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseAssessment loads an assessment snapshot from disk, validates it, and
// returns the domain model.
func ParseAssessment(path string) (*quote.Assessment, error) {
	var doc assessmentDoc
	if err := parseDocument(path, &doc); err != nil {
		return nil, err
	}

	if err := validateStruct(&doc, "assessment"); err != nil {
		return nil, err
	}

	return doc.toDomain(), nil
}

// ParseCatalog loads the service catalog from disk, validates it, and returns
// the domain model. Items without an explicit id receive a generated one.
func ParseCatalog(path string) (quote.Catalog, error) {
	var doc catalogDoc
	if err := parseDocument(path, &doc); err != nil {
		return nil, err
	}

	if err := validateStruct(&doc, "catalog"); err != nil {
		return nil, err
	}

	return doc.toDomain(), nil
}

// ParseTunables loads tunable overrides from disk on top of the shipped
// defaults. An empty path returns the defaults unchanged.
func ParseTunables(path string) (Tunables, error) {
	tunables := DefaultTunables()
	if path == "" {
		return tunables, nil
	}

	if err := parseDocument(path, &tunables); err != nil {
		return Tunables{}, err
	}

	if err := validateStruct(&tunables, "tunables"); err != nil {
		return Tunables{}, err
	}

	return tunables, nil
}

func parseDocument(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return quotienterrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return quotienterrors.NewParseError(path, extractLine(err), err)
	}

	return nil
}

func validateStruct(doc any, docName string) error {
	err := validatorInstance().Struct(doc)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		first := fieldErrors[0]
		field := docName + "." + strings.ToLower(first.Field())
		return quotienterrors.NewValidationError(field, fmt.Sprintf("failed %q constraint", first.Tag()), err)
	}

	return quotienterrors.NewValidationError(docName, err.Error(), err)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
