package transcript

import (
	"fmt"
	"strings"
)

// ConceptRequest describes the podcast to generate a transcript for
type ConceptRequest struct {
	Topic           string   `json:"topic"`
	NumSpeakers     int      `json:"num_speakers"`
	CharacterNames  []string `json:"character_names"`
	ExpertiseLevel  string   `json:"expertise_level"`
	DurationMinutes int      `json:"duration_minutes"`
	FormatStyle     string   `json:"format_style"`
}

var expertiseDescriptions = map[string]string{
	"beginner":     "using simple terms and basic concepts, making it accessible to newcomers",
	"intermediate": "balancing basic and advanced concepts, with some technical terminology",
	"expert":       "using advanced concepts and technical terminology for a knowledgeable audience",
	"mixed":        "varying the complexity to accommodate different knowledge levels",
}

var formatDescriptions = map[string]string{
	"casual":       "a relaxed, conversational style with natural back-and-forth dialogue",
	"interview":    "a structured interview format with clear questions and detailed responses",
	"debate":       "a balanced debate with different viewpoints and respectful disagreements",
	"educational":  "an informative discussion that breaks down complex topics clearly",
	"storytelling": "an engaging narrative style that weaves information into a compelling story",
}

// ExpertiseLevels lists the accepted expertise level values
func ExpertiseLevels() []string {
	return []string{"beginner", "intermediate", "expert", "mixed"}
}

// FormatStyles lists the accepted format style values
func FormatStyles() []string {
	return []string{"casual", "interview", "debate", "educational", "storytelling"}
}

func describeExpertise(level string) string {
	if d, ok := expertiseDescriptions[level]; ok {
		return d
	}
	return expertiseDescriptions["mixed"]
}

func describeFormat(style string) string {
	if d, ok := formatDescriptions[style]; ok {
		return d
	}
	return formatDescriptions["casual"]
}

// BuildPrompt renders the LLM prompt for transcript generation
func BuildPrompt(req ConceptRequest) string {
	names := strings.Join(req.CharacterNames, ", ")
	expertise := describeExpertise(req.ExpertiseLevel)
	format := describeFormat(req.FormatStyle)

	return fmt.Sprintf(`Create a natural and engaging podcast transcript about %s.

Context:
- Format: %s
- Expertise Level: %s
- Duration: Aim for %d minutes of spoken content
- Speakers: %s

Requirements:
1. Format Rules (STRICTLY FOLLOW THESE):
   - Each line must follow the exact format: "SpeakerName: Their dialogue text"
   - One line per speaker turn, no multi-line dialogues
   - No empty lines between speakers
   - Speaker names must exactly match: %s
   - Example format:
     John: Hello everyone, welcome to the podcast.
     Sarah: Thanks for having me here.
     John: Let's dive into our topic.

2. Structure:
   - Start with a brief introduction of the speakers and topic
   - Develop the discussion naturally through %d minutes
   - End with clear conclusions or takeaways

3. Speaker Dynamics:
   - Maintain distinct personalities for each speaker
   - Include natural interactions and balanced dialogue
   - Ensure each speaker gets roughly equal speaking time

4. Content Flow:
   - Progress logically through subtopics
   - Include relevant examples and real-world applications
   - Mix serious discussion with appropriate lighter moments

Remember:
- Keep the expertise level consistent: %s
- Maintain the %s
- IMPORTANT: Strictly follow the format "SpeakerName: Text" with one line per speaker

Begin the transcript:`,
		req.Topic, format, expertise, req.DurationMinutes, names, names,
		req.DurationMinutes, expertise, format)
}
