package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/levelup/models"
)

// FallbackStudyPlan is returned for blank study plan input. On generation
// failure "the topic" is replaced by the requested topic.
const FallbackStudyPlan = "Here's a basic study plan template you can follow:\n\n" +
	"1. Day 1-2: Introduction to the topic\n" +
	"2. Day 3-5: Core concepts\n" +
	"3. Day 6-7: Practice exercises\n" +
	"4. Day 8-9: Advanced topics\n" +
	"5. Day 10: Review and self-assessment"

// NoImageProvided is the OCR answer for blank input.
const NoImageProvided = "No image provided"

const (
	fallbackQuestionExplanation = "This is a sample explanation for the correct answer."
	ocrPreviewLength            = 30
)

var fallbackOptions = [models.QuestionOptionCount]string{"Option A", "Option B", "Option C", "Option D"}

// FallbackQuiz returns the deterministic placeholder quiz used whenever a
// generated quiz is unusable.
func FallbackQuiz(topic string, difficulty models.Difficulty) models.Quiz {
	questions := make([]models.Question, 0, models.QuizQuestionCount)
	for i := range models.QuizQuestionCount {
		questions = append(questions, models.Question{
			Question:      fmt.Sprintf("Sample question %d?", i+1),
			Options:       fallbackOptions[:],
			CorrectAnswer: 0,
			Difficulty:    difficulty,
			Explanation:   fallbackQuestionExplanation,
		})
	}

	return models.Quiz{Topic: topic, Questions: questions}
}

func quizPrompt(topic string, difficulty models.Difficulty) string {
	return fmt.Sprintf(`Create a %[2]s difficulty quiz about %[1]s. Generate exactly 10 multiple choice questions.

Important: Your response must be a valid JSON object with this exact structure:
{
  "topic": "%[1]s",
  "questions": [
    {
      "question": "The actual question text",
      "options": ["First option", "Second option", "Third option", "Fourth option"],
      "correctAnswer": 0,
      "difficulty": "%[2]s",
      "explanation": "A clear explanation of why the correct answer is right"
    }
  ]
}

Requirements:
- Generate exactly 10 questions
- Each question must have exactly 4 options
- correctAnswer must be the index (0-3) of the correct option
- Ensure the JSON is properly formatted with no trailing commas
- Use double quotes for strings
- Do not include any text before or after the JSON object
- Make questions appropriate for the selected difficulty level
- Provide clear, educational explanations`, topic, difficulty)
}

func evaluationPrompt(quiz models.Quiz, answers []int) string {
	var wrong strings.Builder
	for i, q := range quiz.Questions {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			continue
		}

		chosen := "no answer"
		if i < len(answers) {
			chosen = optionText(q, answers[i])
		}
		fmt.Fprintf(&wrong, "- %s (They chose: %s, Correct: %s)\n", q.Question, chosen, optionText(q, q.CorrectAnswer))
	}

	return fmt.Sprintf(`The user took a quiz on %s and got %d out of %d questions correct.
Here are the questions they got wrong:
%s
Please provide:
1. A brief analysis of their performance
2. Specific areas they need to improve
3. Study tips for the topics they struggled with
4. Encouragement for their next attempt`,
		quiz.Topic, quiz.CorrectCount(answers), len(quiz.Questions), wrong.String())
}

func optionText(q models.Question, index int) string {
	if index < 0 || index >= len(q.Options) {
		return "no answer"
	}
	return q.Options[index]
}

// evaluationTemplate is the feedback used when generation falls back.
func evaluationTemplate(quiz models.Quiz, answers []int) string {
	correct := quiz.CorrectCount(answers)
	total := len(quiz.Questions)

	verdict := "okay"
	if float64(correct) > float64(total)/2 {
		verdict = "well"
	}

	return fmt.Sprintf(`You scored %d out of %d (%d%%).

Performance Analysis:
You did %s on this quiz, but there's room for improvement.

Areas to Improve:
Focus on the questions you got wrong and review those topics.

Study Tips:
- Review the explanations for the questions you missed
- Take notes on key concepts
- Practice with similar questions

Keep going! Each attempt helps you learn more and improve your understanding.`,
		correct, total, int(math.Round(quiz.Score(answers))), verdict)
}

func studyPlanPrompt(topic, deadline string) string {
	return fmt.Sprintf(`Create a detailed study plan for %s with deadline %s. Include:
1. Daily breakdown of topics
2. Learning objectives for each session
3. Recommended study materials and resources
4. Practice exercises and self-assessment methods
5. Time management tips`, topic, deadline)
}

func summaryPrompt(text string) string {
	return "Provide a comprehensive summary of the following text, highlighting key points and main ideas: " + text
}

// ocrPreview echoes the first runes of imageData.
func ocrPreview(imageData string) string {
	runes := []rune(imageData)
	if len(runes) > ocrPreviewLength {
		runes = runes[:ocrPreviewLength]
	}
	return fmt.Sprintf("Simulated OCR text from image: %s...", string(runes))
}
