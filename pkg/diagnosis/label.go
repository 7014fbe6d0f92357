package diagnosis

// Likelihood labels, ordered from most to least severe.
const (
	LabelSevere         = "High Probability of Severe Malaria"
	LabelHigh           = "High Probability of Malaria"
	LabelModerateToHigh = "Moderate to High Probability of Malaria"
	LabelModerate       = "Moderate Probability of Malaria"
	LabelPossibleGI     = "Possible Malaria (with GI Symptoms)"
	LabelPossibleFever  = "Possible Malaria (Fever Only)"
	LabelLow            = "Low Probability of Malaria / Consider Other Causes"
	LabelUnlikely       = "Malaria Unlikely Based on Symptoms"
)

// Labels lists every label the built-in rules can produce, most severe first.
var Labels = []string{
	LabelSevere,
	LabelHigh,
	LabelModerateToHigh,
	LabelModerate,
	LabelPossibleGI,
	LabelPossibleFever,
	LabelLow,
	LabelUnlikely,
}

// Disclaimer accompanies every result shown to a person.
const Disclaimer = "Disclaimer: This tool is for educational purposes only and provides a diagnosis " +
	"based on predefined rules. It is NOT a substitute for professional medical advice, diagnosis, " +
	"or treatment. Always consult a qualified healthcare professional for any health concerns."
