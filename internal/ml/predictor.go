package ml

import "math"

const (
	LabelPositive = "Has Heart Disease"
	LabelNegative = "No Heart Disease"
)

// FeatureVector is the ordered clinical input consumed by Predict:
// [age, gender, chestpain, restingBP, serumcholestrol, fastingbloodsugar,
// restingrelectro, maxheartrat, exerciseangia, oldpeak, slope, noofmajor].
type FeatureVector [FeatureCount]float64

// Predictor wraps the scaler and classifier artifacts. Both are loaded once
// at startup and never mutated, so a single Predictor is shared read-only
// across all requests.
type Predictor struct {
	scaler *Scaler
	model  *SVMModel
}

// NewPredictor loads both artifacts. Any loading error is fatal to startup.
func NewPredictor(scalerPath, modelPath string) (*Predictor, error) {
	scaler, err := LoadScaler(scalerPath)
	if err != nil {
		return nil, err
	}

	model, err := LoadModel(modelPath)
	if err != nil {
		return nil, err
	}

	return &Predictor{scaler: scaler, model: model}, nil
}

// Predict standardizes the raw vector, evaluates the classifier decision
// function, and maps class 1 to LabelPositive and anything else to
// LabelNegative. Identical inputs always yield identical labels.
func (p *Predictor) Predict(v FeatureVector) string {
	var scaled [FeatureCount]float64

	for i := 0; i < FeatureCount; i++ {
		scaled[i] = (v[i] - p.scaler.Mean[i]) / p.scaler.Scale[i]
	}

	if p.decision(scaled) > 0 {
		return LabelPositive
	}

	return LabelNegative
}

func (p *Predictor) decision(x [FeatureCount]float64) float64 {
	switch p.model.Kernel {
	case "linear":
		sum := p.model.Intercept
		for i, w := range p.model.Weights {
			sum += w * x[i]
		}
		return sum
	default: // "rbf", enforced at load time
		sum := p.model.Intercept
		for i, sv := range p.model.SupportVectors {
			var dist float64
			for j, s := range sv {
				d := x[j] - s
				dist += d * d
			}
			sum += p.model.DualCoef[i] * math.Exp(-p.model.Gamma*dist)
		}
		return sum
	}
}
