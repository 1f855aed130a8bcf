package ml

import (
	"encoding/json"
	"fmt"
	"os"
)

// FeatureCount is the width of the vector the scaler and classifier were
// fitted on. Both artifacts must agree with it or loading fails.
const FeatureCount = 12

// Scaler holds standardization parameters exported from the fitted
// feature scaler.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// SVMModel holds the parameters exported from the fitted classifier.
// Kernel is either "rbf" or "linear".
type SVMModel struct {
	Kernel         string      `json:"kernel"`
	Gamma          float64     `json:"gamma"`
	SupportVectors [][]float64 `json:"support_vectors"`
	DualCoef       []float64   `json:"dual_coef"`
	Weights        []float64   `json:"weights"`
	Intercept      float64     `json:"intercept"`
}

func LoadScaler(path string) (*Scaler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scaler artifact %s: %w", path, err)
	}

	var scaler Scaler

	if err := json.Unmarshal(data, &scaler); err != nil {
		return nil, fmt.Errorf("failed to parse scaler artifact %s: %w", path, err)
	}

	if len(scaler.Mean) != FeatureCount || len(scaler.Scale) != FeatureCount {
		return nil, fmt.Errorf("scaler artifact %s: expected %d features, got mean=%d scale=%d",
			path, FeatureCount, len(scaler.Mean), len(scaler.Scale))
	}

	for i, s := range scaler.Scale {
		if s == 0 {
			return nil, fmt.Errorf("scaler artifact %s: zero scale at feature %d", path, i)
		}
	}

	return &scaler, nil
}

func LoadModel(path string) (*SVMModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact %s: %w", path, err)
	}

	var model SVMModel

	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact %s: %w", path, err)
	}

	switch model.Kernel {
	case "linear":
		if len(model.Weights) != FeatureCount {
			return nil, fmt.Errorf("model artifact %s: expected %d weights, got %d",
				path, FeatureCount, len(model.Weights))
		}
	case "rbf":
		if len(model.SupportVectors) == 0 {
			return nil, fmt.Errorf("model artifact %s: no support vectors", path)
		}
		if len(model.DualCoef) != len(model.SupportVectors) {
			return nil, fmt.Errorf("model artifact %s: %d dual coefficients for %d support vectors",
				path, len(model.DualCoef), len(model.SupportVectors))
		}
		for i, sv := range model.SupportVectors {
			if len(sv) != FeatureCount {
				return nil, fmt.Errorf("model artifact %s: support vector %d has width %d, expected %d",
					path, i, len(sv), FeatureCount)
			}
		}
	default:
		return nil, fmt.Errorf("model artifact %s: unsupported kernel %q", path, model.Kernel)
	}

	return &model, nil
}
