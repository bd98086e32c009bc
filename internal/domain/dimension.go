package domain

// Dimension es uno de los diez ejes fijos del persona.
type Dimension string

const (
	DimensionBasicInformation    Dimension = "basic_information"
	DimensionInterestsHobbies    Dimension = "interests_hobbies"
	DimensionPersonalityTraits   Dimension = "personality_traits"
	DimensionCommunicationStyle  Dimension = "communication_style"
	DimensionValuesBeliefs       Dimension = "values_beliefs"
	DimensionTechnologyUsage     Dimension = "technology_usage"
	DimensionSocialBehavior      Dimension = "social_behavior"
	DimensionGoalsAspirations    Dimension = "goals_aspirations"
	DimensionChallengesPainPoints Dimension = "challenges_pain_points"
	DimensionLifestyle           Dimension = "lifestyle"
)

// Dimensions lista los ejes en el orden declarado del reporte.
// El ensamblador y el reporte recorren siempre esta tabla, nunca branches ad hoc.
var Dimensions = []Dimension{
	DimensionBasicInformation,
	DimensionInterestsHobbies,
	DimensionPersonalityTraits,
	DimensionCommunicationStyle,
	DimensionValuesBeliefs,
	DimensionTechnologyUsage,
	DimensionSocialBehavior,
	DimensionGoalsAspirations,
	DimensionChallengesPainPoints,
	DimensionLifestyle,
}

// Title devuelve el encabezado legible del eje para el reporte.
func (d Dimension) Title() string {
	switch d {
	case DimensionBasicInformation:
		return "Basic Information"
	case DimensionInterestsHobbies:
		return "Interests and Hobbies"
	case DimensionPersonalityTraits:
		return "Personality Traits"
	case DimensionCommunicationStyle:
		return "Communication Style"
	case DimensionValuesBeliefs:
		return "Values and Beliefs"
	case DimensionTechnologyUsage:
		return "Technology Usage"
	case DimensionSocialBehavior:
		return "Social Behavior"
	case DimensionGoalsAspirations:
		return "Goals and Aspirations"
	case DimensionChallengesPainPoints:
		return "Challenges and Pain Points"
	case DimensionLifestyle:
		return "Lifestyle"
	}
	return string(d)
}
