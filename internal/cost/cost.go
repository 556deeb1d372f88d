// Package cost projects benchmark spend for metered language-model
// players. A pilot run yields per-model token usage; scaling that
// usage to a target game count and applying per-million-token rates
// gives the projected bill before anyone commits to the full run.
package cost

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed pricing.yaml
var defaultPricingYAML []byte

// UsageSummary aggregates the token usage measured for one model.
type UsageSummary struct {
	Model        string `yaml:"model"`
	Samples      int    `yaml:"samples"`
	InputTokens  int    `yaml:"input_tokens"`
	OutputTokens int    `yaml:"output_tokens"`
}

// TotalTokens returns tokens consumed across all samples.
func (u UsageSummary) TotalTokens() int {
	return u.InputTokens + u.OutputTokens
}

// MeanInputTokens returns input tokens per sample, or zero when no
// samples were recorded.
func (u UsageSummary) MeanInputTokens() float64 {
	if u.Samples == 0 {
		return 0
	}
	return float64(u.InputTokens) / float64(u.Samples)
}

// MeanOutputTokens returns output tokens per sample, or zero when no
// samples were recorded.
func (u UsageSummary) MeanOutputTokens() float64 {
	if u.Samples == 0 {
		return 0
	}
	return float64(u.OutputTokens) / float64(u.Samples)
}

// MeanTotalTokens returns total tokens per sample, or zero when no
// samples were recorded.
func (u UsageSummary) MeanTotalTokens() float64 {
	if u.Samples == 0 {
		return 0
	}
	return float64(u.TotalTokens()) / float64(u.Samples)
}

// Pricing is the per-million-token rate card for one model.
type Pricing struct {
	Provider         string  `yaml:"provider"`
	Model            string  `yaml:"model"`
	InputPerMillion  float64 `yaml:"input_per_million"`
	OutputPerMillion float64 `yaml:"output_per_million"`
	Currency         string  `yaml:"currency"`
}

// Estimate is the projected spend for one model at the scaled usage.
type Estimate struct {
	Provider     string
	Model        string
	Currency     string
	InputTokens  int
	OutputTokens int
	InputCost    float64
	OutputCost   float64
}

// TotalCost returns input plus output cost.
func (e Estimate) TotalCost() float64 {
	return e.InputCost + e.OutputCost
}

// MergeUsage folds summaries into a per-model map, summing duplicates.
func MergeUsage(summaries []UsageSummary) map[string]UsageSummary {
	merged := make(map[string]UsageSummary, len(summaries))
	for _, s := range summaries {
		if existing, ok := merged[s.Model]; ok {
			existing.Samples += s.Samples
			existing.InputTokens += s.InputTokens
			existing.OutputTokens += s.OutputTokens
			merged[s.Model] = existing
			continue
		}
		merged[s.Model] = s
	}
	return merged
}

// Scale projects a usage summary to a target game count. The summary
// must carry at least one sample.
func Scale(u UsageSummary, games int) (UsageSummary, error) {
	if u.Samples == 0 {
		return UsageSummary{}, fmt.Errorf("cannot scale usage for %q: no samples recorded", u.Model)
	}
	factor := float64(games) / float64(u.Samples)
	return UsageSummary{
		Model:        u.Model,
		Samples:      games,
		InputTokens:  int(math.Round(float64(u.InputTokens) * factor)),
		OutputTokens: int(math.Round(float64(u.OutputTokens) * factor)),
	}, nil
}

// Quote prices a usage summary against a rate card.
func Quote(u UsageSummary, p Pricing) Estimate {
	return Estimate{
		Provider:     p.Provider,
		Model:        p.Model,
		Currency:     p.Currency,
		InputTokens:  u.InputTokens,
		OutputTokens: u.OutputTokens,
		InputCost:    float64(u.InputTokens) / 1e6 * p.InputPerMillion,
		OutputCost:   float64(u.OutputTokens) / 1e6 * p.OutputPerMillion,
	}
}

// Project scales and prices every model in pricings, in pricing order.
// A priced model without a usage summary is an error.
func Project(usage map[string]UsageSummary, games int, pricings []Pricing) ([]Estimate, error) {
	estimates := make([]Estimate, 0, len(pricings))
	for _, p := range pricings {
		u, ok := usage[p.Model]
		if !ok {
			return nil, fmt.Errorf("no usage summary for model %q", p.Model)
		}
		scaled, err := Scale(u, games)
		if err != nil {
			return nil, err
		}
		estimates = append(estimates, Quote(scaled, p))
	}
	return estimates, nil
}

type usageFile struct {
	Usage []UsageSummary `yaml:"usage"`
}

type pricingFile struct {
	Pricing []Pricing `yaml:"pricing"`
}

// ParseUsage decodes a usage YAML document.
func ParseUsage(data []byte) ([]UsageSummary, error) {
	var f usageFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse usage yaml: %w", err)
	}
	if len(f.Usage) == 0 {
		return nil, errors.New("usage file lists no models")
	}
	return f.Usage, nil
}

// LoadUsage reads a usage YAML file from disk.
func LoadUsage(path string) ([]UsageSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read usage file: %w", err)
	}
	return ParseUsage(data)
}

// ParsePricing decodes a pricing YAML document. Entries without a
// currency default to USD.
func ParsePricing(data []byte) ([]Pricing, error) {
	var f pricingFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse pricing yaml: %w", err)
	}
	if len(f.Pricing) == 0 {
		return nil, errors.New("pricing file lists no models")
	}
	for i := range f.Pricing {
		if f.Pricing[i].Currency == "" {
			f.Pricing[i].Currency = "USD"
		}
	}
	return f.Pricing, nil
}

// LoadPricing reads a pricing YAML file from disk.
func LoadPricing(path string) ([]Pricing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pricing file: %w", err)
	}
	return ParsePricing(data)
}

// DefaultPricing returns the embedded rate card.
func DefaultPricing() ([]Pricing, error) {
	return ParsePricing(defaultPricingYAML)
}
