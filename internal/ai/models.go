package ai

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

// Provider is the AI backend family serving a model.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderTongyi Provider = "tongyi"
	ProviderCustom Provider = "custom"
)

//go:embed models.yaml
var modelsYAML []byte

type modelCatalog struct {
	OpenAI []string `yaml:"openai"`
	Tongyi []string `yaml:"tongyi"`
}

var loadCatalog = sync.OnceValue(func() modelCatalog {
	var c modelCatalog
	if err := yaml.Unmarshal(modelsYAML, &c); err != nil {
		panic(fmt.Sprintf("embedded models.yaml is invalid: %v", err))
	}
	return c
})

// DetectProvider decides which backend serves model. Models missing from
// both known lists belong to the custom provider.
func DetectProvider(model string) Provider {
	c := loadCatalog()
	switch {
	case slices.Contains(c.Tongyi, model):
		return ProviderTongyi
	case slices.Contains(c.OpenAI, model):
		return ProviderOpenAI
	default:
		return ProviderCustom
	}
}

// SupportedModels lists the known models of provider. The custom provider
// accepts any identifier, so it returns every known model.
func SupportedModels(provider Provider) []string {
	c := loadCatalog()
	switch provider {
	case ProviderTongyi:
		return slices.Clone(c.Tongyi)
	case ProviderOpenAI:
		return slices.Clone(c.OpenAI)
	default:
		return slices.Concat(c.OpenAI, c.Tongyi)
	}
}
