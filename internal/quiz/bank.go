package quiz

import (
	"fmt"
	"os"

	"github.com/DanRulev/triviabot/pkg/validator"
	"gopkg.in/yaml.v3"
)

type bankFile struct {
	Questions []Question `yaml:"questions" validate:"required,min=1,dive"`
}

// LoadBank reads a YAML question bank from path.
func LoadBank(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bank %s: %w", path, err)
	}

	return ParseBank(data)
}

func ParseBank(data []byte) ([]Question, error) {
	var file bankFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse bank: %w", err)
	}

	if err := validator.ValidateStruct(file); err != nil {
		return nil, err
	}

	if err := ValidateBank(file.Questions); err != nil {
		return nil, err
	}

	return file.Questions, nil
}
