package adapter

// Fallback texts returned instead of model output.
const (
	// FallbackGeneral is returned for blank prompts, transport failures,
	// non-2xx statuses and envelopes without text.
	FallbackGeneral = "I'm sorry, I couldn't connect to the AI service. Here's a general response that might help."

	// FallbackSummary is returned when a 2xx body is not valid JSON. It is
	// also the summary used by summarization when no text is given.
	FallbackSummary = "This is a summary of the provided text. The key points include the main ideas and important details."
)
