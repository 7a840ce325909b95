package model

// QualityLevel is the ordinal 1 (weak) to 4 (sophisticated) score produced
// by the rubric classifiers. Higher always means the facet's criteria are
// more fully satisfied.
type QualityLevel int

const (
	LevelWeak          QualityLevel = 1
	LevelEmerging      QualityLevel = 2
	LevelProficient    QualityLevel = 3
	LevelSophisticated QualityLevel = 4
)

// FacetEvaluation is the result of scoring one submitted answer.
type FacetEvaluation struct {
	Passed bool         `json:"passed" bson:"passed"`
	Level  QualityLevel `json:"level" bson:"level"`
	Nudges []string     `json:"nudges" bson:"nudges"`
}
